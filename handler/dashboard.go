package handler

import (
	"Scoops/config"
	"Scoops/middleware"
	"Scoops/models"
	"Scoops/pkg/context"
	"Scoops/pkg/response"
	"Scoops/service"

	"github.com/gin-gonic/gin"
)

type Dashboard struct {
	Config           *config.Config
	DashboardService service.IDashboardService
}

func (d *Dashboard) RegisterRouter(r gin.IRouter) {
	r.GET("/dashboard",
		middleware.Auth([]byte(d.Config.Jwt.Secret)),
		middleware.RequireRole(models.RoleAdmin),
		context.Wrap(d.Stats),
	)
}

func (d *Dashboard) Stats(c *gin.Context) error {
	stats, err := d.DashboardService.Stats(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, stats)
	return nil
}
