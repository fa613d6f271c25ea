package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-storefront/internal/platform/metrics"
	"go-storefront/internal/services"
)

const defaultReturnURL = "/Product"

type LanguageHandler struct {
	languageService *services.LanguageService
	metrics         *metrics.Manager
}

// NewLanguageHandler accepts a nil metrics manager.
func NewLanguageHandler(languageService *services.LanguageService, m *metrics.Manager) *LanguageHandler {
	return &LanguageHandler{
		languageService: languageService,
		metrics:         m,
	}
}

// POST /Language/ChangeUiLanguage
func (h *LanguageHandler) ChangeUiLanguage(c *gin.Context) {
	culture := h.languageService.ChangeUiLanguage(c.Writer, c.PostForm("language"))
	if h.metrics != nil {
		h.metrics.CultureSwitches.WithLabelValues(culture).Inc()
	}

	c.Redirect(http.StatusSeeOther, localReturnURL(c.PostForm("returnUrl")))
}

// localReturnURL only lets through paths on this site.
func localReturnURL(raw string) string {
	if !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return defaultReturnURL
	}
	return raw
}
