package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-storefront/api/middleware"
	"go-storefront/internal/localization"
	"go-storefront/internal/models"
	"go-storefront/internal/repository"
	"go-storefront/internal/services"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKey    string
	}{
		{
			name:       "validation",
			err:        &models.ValidationError{Field: "cart", Err: models.ErrNilArgument},
			wantStatus: http.StatusBadRequest,
			wantKey:    localization.MsgInvalidRequest,
		},
		{
			name:       "product not found",
			err:        fmt.Errorf("product 9: %w", services.ErrProductNotFound),
			wantStatus: http.StatusNotFound,
			wantKey:    localization.MsgProductNotFound,
		},
		{
			name:       "repository not found",
			err:        fmt.Errorf("wrapped: %w", repository.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantKey:    localization.MsgProductNotFound,
		},
		{
			name:       "insufficient stock",
			err:        fmt.Errorf("product 1 has 2 left: %w", services.ErrInsufficientStock),
			wantStatus: http.StatusConflict,
			wantKey:    localization.MsgInsufficientStock,
		},
		{
			name:       "empty cart",
			err:        models.ErrEmptyCart,
			wantStatus: http.StatusConflict,
			wantKey:    localization.MsgCheckoutCartEmpty,
		},
		{
			name:       "anything else",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantKey:    localization.MsgInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, key := statusFor(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestRespondError_Localized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Culture("es"))
	r.GET("/fail", func(c *gin.Context) {
		respondError(c, services.ErrInsufficientStock)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"Stock insuficiente"}`, rec.Body.String())
}

func TestLocalReturnURL(t *testing.T) {
	tests := map[string]string{
		"/Cart":               "/Cart",
		"/Product?page=2":     "/Product?page=2",
		"":                    defaultReturnURL,
		"https://example.com": defaultReturnURL,
		"//example.com":       defaultReturnURL,
		"/\\example.com":      defaultReturnURL,
		"Cart":                defaultReturnURL,
	}

	for in, want := range tests {
		assert.Equal(t, want, localReturnURL(in), "returnUrl %q", in)
	}
}
