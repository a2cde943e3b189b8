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

type Supplier struct {
	Config          *config.Config
	SupplierService service.ISupplierService
}

func (s *Supplier) RegisterRouter(r gin.IRouter) {
	g := r.Group("/suppliers")
	g.Use(middleware.Auth([]byte(s.Config.Jwt.Secret)))
	g.POST("", context.Wrap(s.Create))
	g.GET("", context.Wrap(s.List))
	g.GET("/:id", context.Wrap(s.Get))
	g.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), context.Wrap(s.Delete))
}

func (s *Supplier) Create(c *gin.Context) error {
	var req types.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	supplier, err := s.SupplierService.Create(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Created(c, supplier)
	return nil
}

func (s *Supplier) List(c *gin.Context) error {
	suppliers, err := s.SupplierService.List(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, suppliers)
	return nil
}

func (s *Supplier) Get(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	supplier, err := s.SupplierService.Get(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, supplier)
	return nil
}

func (s *Supplier) Delete(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err = s.SupplierService.Delete(c.Request.Context(), id); err != nil {
		return err
	}
	response.NoContent(c)
	return nil
}
