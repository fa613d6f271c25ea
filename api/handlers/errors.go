package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-storefront/api/middleware"
	"go-storefront/internal/localization"
	"go-storefront/internal/models"
	"go-storefront/internal/repository"
	"go-storefront/internal/services"
)

// statusFor maps a domain error onto an HTTP status and the message key
// shown to the user.
func statusFor(err error) (int, string) {
	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, localization.MsgInvalidRequest
	case errors.Is(err, services.ErrProductNotFound), errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, localization.MsgProductNotFound
	case errors.Is(err, services.ErrInsufficientStock):
		return http.StatusConflict, localization.MsgInsufficientStock
	case errors.Is(err, models.ErrEmptyCart):
		return http.StatusConflict, localization.MsgCheckoutCartEmpty
	default:
		return http.StatusInternalServerError, localization.MsgInternalError
	}
}

func respondError(c *gin.Context, err error) {
	status, key := statusFor(err)
	_ = c.Error(err)
	c.JSON(status, gin.H{"error": localization.Translate(middleware.CultureFrom(c), key)})
}

func respondMessage(c *gin.Context, status int, key string) {
	c.JSON(status, gin.H{"error": localization.Translate(middleware.CultureFrom(c), key)})
}
