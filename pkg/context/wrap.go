package context

import (
	"errors"
	"net/http"

	"Scoops/pkg/log"
	"Scoops/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxUserID = "user_id"
	CtxLogin  = "login"
	CtxRole   = "role"
)

type HandlerFunc func(*gin.Context) error

// Wrap turns an error-returning handler into a gin handler.
func Wrap(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := h(c)
		if err == nil {
			return
		}
		// response already sent
		if c.Writer.Written() {
			return
		}
		status, msg := response.StatusOf(err)
		if status >= http.StatusInternalServerError {
			log.L.Error("request failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.FullPath()),
				zap.Error(err),
			)
		}
		_ = c.Error(err)
		response.Fail(c, status, msg)
	}
}

func GetUserID(c *gin.Context) (int64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("user_id missing")
	}

	uid, ok := v.(int64)
	if !ok {
		return 0, errors.New("user_id has wrong type")
	}

	return uid, nil
}

func GetLogin(c *gin.Context) string {
	return c.GetString(CtxLogin)
}

func GetRole(c *gin.Context) string {
	return c.GetString(CtxRole)
}
