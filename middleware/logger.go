package middleware

import (
	"Scoops/pkg/context"
	"Scoops/pkg/log"
	"Scoops/pkg/utils"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GinZap writes one access log line per request.
func GinZap() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		}
		if uid, err := context.GetUserID(c); err == nil {
			fields = append(fields, zap.Int64("user_id", uid))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			log.L.Error("request", fields...)
		case c.Writer.Status() >= http.StatusBadRequest:
			log.L.Warn("request", fields...)
		default:
			log.L.Info("request", fields...)
		}
	}
}

// Recovery logs the panic with its trace and answers 500 without detail.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		log.L.Error("panic recovered",
			zap.String("path", c.Request.URL.Path),
			zap.String("trace", utils.PanicTrace(err)),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"code": http.StatusInternalServerError,
			"msg":  "internal server error",
		})
	})
}
