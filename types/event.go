package types

import "time"

const (
	EventDeliveryRegistered = "DeliveryRegistered"
	EventOrderCreated       = "OrderCreated"
	EventOrderStatusChanged = "OrderStatusChanged"
)

// Event is the JSON envelope published after a workflow commits.
type Event struct {
	Type       string    `json:"type"`
	Id         int64     `json:"id"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload,omitempty"`
}
