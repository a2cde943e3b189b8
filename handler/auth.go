package handler

import (
	"Scoops/config"
	"Scoops/middleware"
	"Scoops/models"
	"Scoops/pkg/context"
	"Scoops/pkg/errorx"
	"Scoops/pkg/response"
	"Scoops/service"
	"Scoops/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	Config      *config.Config
	AuthService service.IAuthService
}

func (a *Auth) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(a.Config.Jwt.Secret))
	g := r.Group("/auth")
	g.POST("/register", context.Wrap(a.Register))
	g.POST("/login", context.Wrap(a.Login))
	g.POST("/refresh", context.Wrap(a.Refresh))
	g.POST("/logout", context.Wrap(a.Logout))
	g.PATCH("/users/:id/role", authorize, middleware.RequireRole(models.RoleAdmin), context.Wrap(a.UpdateRole))
}

func (a *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	if _, err := a.AuthService.Register(c.Request.Context(), &req); err != nil {
		// clients expect 400 for a taken login
		if errorx.Is(err, errorx.KindConflict) {
			return response.NewError(http.StatusBadRequest, "login already exists")
		}
		return err
	}
	response.Success(c, types.MessageResponse{Message: "user registered"})
	return nil
}

func (a *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	resp, err := a.AuthService.Login(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (a *Auth) Refresh(c *gin.Context) error {
	var req types.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	resp, err := a.AuthService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (a *Auth) Logout(c *gin.Context) error {
	var req types.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	if err := a.AuthService.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		return err
	}
	response.NoContent(c)
	return nil
}

func (a *Auth) UpdateRole(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req types.UpdateRoleRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	if err = a.AuthService.UpdateRole(c.Request.Context(), id, req.Role); err != nil {
		return err
	}
	response.NoContent(c)
	return nil
}
