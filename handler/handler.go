package handler

import (
	"Scoops/models"
	"Scoops/pkg/context"
	"Scoops/pkg/log"
	"Scoops/pkg/response"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, response.NewError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// badRequest keeps binder and validator detail in the log and answers with field names only.
func badRequest(err error) error {
	log.L.Debug("bind request", zap.Error(err))

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return response.NewError(http.StatusBadRequest, "invalid request body")
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return response.NewError(http.StatusBadRequest, "invalid request: "+strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	default:
		return field + " is invalid"
	}
}

// lowerFirst turns the Go field name into its json spelling (SupplierId -> supplierId).
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

func isAdmin(c *gin.Context) bool {
	return models.Role(context.GetRole(c)) == models.RoleAdmin
}
