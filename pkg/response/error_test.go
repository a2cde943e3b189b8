package response

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"Scoops/pkg/errorx"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"biz error", NewError(http.StatusBadRequest, "login already exists"), http.StatusBadRequest, "login already exists"},
		{"not found", errorx.NotFound("order 7 not found"), http.StatusNotFound, "order 7 not found"},
		{"conflict", errorx.Conflict("dup"), http.StatusConflict, "dup"},
		{"unauthorized", errorx.Unauthorized("nope"), http.StatusUnauthorized, "nope"},
		{"forbidden", fmt.Errorf("get: %w", errorx.Forbidden("not yours")), http.StatusForbidden, "not yours"},
		{"validation", errorx.Validation("quantity must be positive"), http.StatusBadRequest, "quantity must be positive"},
		{"internal hides detail", errorx.Wrap(errors.New("dial tcp 10.0.0.3:3306"), "query"), http.StatusInternalServerError, internalMsg},
		{"plain error hides detail", errors.New("secret"), http.StatusInternalServerError, internalMsg},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := StatusOf(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
