package service

import (
	"Scoops/config"
	"Scoops/pkg/log"
	"Scoops/pkg/rocketmq"
	"Scoops/types"
	"context"
	"encoding/json"
	"strconv"
	"time"

	"go.uber.org/zap"
)

type IEventPublisher interface {
	// Publish is fire-and-forget: failures are logged, never returned.
	Publish(ctx context.Context, eventType string, id int64, payload any)
}

func newEvent(eventType string, id int64, payload any) types.Event {
	return types.Event{
		Type:       eventType,
		Id:         id,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

// LogPublisher only logs events; used when no broker is configured.
type LogPublisher struct{}

func (LogPublisher) Publish(ctx context.Context, eventType string, id int64, payload any) {
	log.L.Info("domain event", zap.String("type", eventType), zap.Int64("id", id))
}

type MQPublisher struct {
	Producer *rocketmq.Producer
}

func (p *MQPublisher) Publish(ctx context.Context, eventType string, id int64, payload any) {
	body, err := json.Marshal(newEvent(eventType, id, payload))
	if err != nil {
		log.L.Error("marshal event", zap.String("type", eventType), zap.Error(err))
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 3*time.Second)
	defer cancel()
	if err = p.Producer.SendMsg(ctx, eventType, strconv.FormatInt(id, 10), body); err != nil {
		log.L.Warn("publish event failed", zap.String("type", eventType), zap.Int64("id", id), zap.Error(err))
	}
}

// NewEventPublisher returns the rocketmq publisher when enabled and the log publisher otherwise.
func NewEventPublisher(conf *config.RocketMQConfig) (IEventPublisher, func(), error) {
	if !conf.Enabled {
		return LogPublisher{}, func() {}, nil
	}
	producer, err := rocketmq.NewProducer(conf)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := producer.Shutdown(); err != nil {
			log.L.Warn("shutdown producer", zap.Error(err))
		}
	}
	return &MQPublisher{Producer: producer}, cleanup, nil
}
