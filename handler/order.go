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

type Order struct {
	Config       *config.Config
	OrderService service.IOrderService
}

func (o *Order) RegisterRouter(r gin.IRouter) {
	admin := middleware.RequireRole(models.RoleAdmin)

	g := r.Group("/orders")
	g.Use(middleware.Auth([]byte(o.Config.Jwt.Secret)))
	g.POST("", context.Wrap(o.Create))
	g.GET("/my-orders", context.Wrap(o.MyOrders))
	g.GET("/all-orders", admin, context.Wrap(o.AllOrders))
	g.GET("/:id", context.Wrap(o.Get))
	g.PATCH("/:id/status", admin, context.Wrap(o.UpdateStatus))
	g.PATCH("/:id/links", admin, context.Wrap(o.UpdateLinks))
	g.POST("/:id/pix", context.Wrap(o.Pix))
}

func (o *Order) Create(c *gin.Context) error {
	var req types.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	order, err := o.OrderService.Create(c.Request.Context(), context.GetLogin(c), &req)
	if err != nil {
		return err
	}
	response.Created(c, order)
	return nil
}

func (o *Order) MyOrders(c *gin.Context) error {
	orders, err := o.OrderService.ListForClient(c.Request.Context(), context.GetLogin(c))
	if err != nil {
		return err
	}
	response.Success(c, orders)
	return nil
}

func (o *Order) AllOrders(c *gin.Context) error {
	orders, err := o.OrderService.ListAll(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, orders)
	return nil
}

func (o *Order) Get(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	order, err := o.OrderService.Get(c.Request.Context(), id, context.GetLogin(c), isAdmin(c))
	if err != nil {
		return err
	}
	response.Success(c, order)
	return nil
}

func (o *Order) UpdateStatus(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req types.UpdateOrderStatusRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	if err = o.OrderService.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		return err
	}
	response.NoContent(c)
	return nil
}

func (o *Order) UpdateLinks(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req types.UpdateOrderLinksRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	order, err := o.OrderService.UpdateLinks(c.Request.Context(), id, &req)
	if err != nil {
		return err
	}
	response.Success(c, order)
	return nil
}

// Pix is open to the order owner and to admins.
func (o *Order) Pix(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if _, err = o.OrderService.Get(c.Request.Context(), id, context.GetLogin(c), isAdmin(c)); err != nil {
		return err
	}
	resp, err := o.OrderService.GeneratePix(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
