package handler

import (
	"Scoops/config"
	"Scoops/middleware"
	"Scoops/models"
	"Scoops/pkg/context"
	"Scoops/pkg/response"
	"Scoops/service"
	"Scoops/types"

	"github.com/gin-gonic/gin"
)

type Delivery struct {
	Config           *config.Config
	InventoryService service.IInventoryService
}

func (d *Delivery) RegisterRouter(r gin.IRouter) {
	g := r.Group("/deliveries")
	g.Use(middleware.Auth([]byte(d.Config.Jwt.Secret)), middleware.RequireRole(models.RoleAdmin))
	g.POST("", context.Wrap(d.Register))
	g.GET("", context.Wrap(d.List))
}

func (d *Delivery) Register(c *gin.Context) error {
	var req types.RegisterDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	delivery, err := d.InventoryService.RegisterDelivery(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, types.RegisterDeliveryResponse{
		Message:    "delivery registered, stock updated",
		DeliveryId: delivery.ID,
		Total:      delivery.Total,
	})
	return nil
}

func (d *Delivery) List(c *gin.Context) error {
	deliveries, err := d.InventoryService.ListDeliveries(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, deliveries)
	return nil
}
