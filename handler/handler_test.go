package handler

import (
	"Scoops/pkg/response"
	"Scoops/types"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bind(t *testing.T, body string, dst any) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	err := c.ShouldBindJSON(dst)
	require.Error(t, err)
	return err
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
		dst  any
		msg  string
	}{
		{"missing password", `{"login":"ana@scoops.com","password":""}`, &types.LoginRequest{}, "invalid request: password is required"},
		{"missing both", `{}`, &types.LoginRequest{}, "invalid request: login is required; password is required"},
		{"bad email", `{"name":"Gelato Co","cnpj":"1","contactEmail":"nope"}`, &types.CreateSupplierRequest{}, "invalid request: contactEmail must be a valid email"},
		{"malformed json", `{"login":`, &types.LoginRequest{}, "invalid request body"},
		{"wrong type", `{"supplierId":"x"}`, &types.RegisterDeliveryRequest{}, "invalid request body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := badRequest(bind(t, tt.body, tt.dst))

			status, msg := response.StatusOf(err)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, tt.msg, msg)
			assert.NotContains(t, msg, "Key:")
		})
	}
}
