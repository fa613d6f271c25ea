package middleware

import (
	"github.com/gin-gonic/gin"

	"go-storefront/internal/localization"
)

// Culture resolves the request culture: the culture cookie first, then
// Accept-Language, then fallback.
func Culture(fallback string) gin.HandlerFunc {
	if !localization.IsSupported(fallback) {
		fallback = localization.DefaultCulture
	}

	return func(c *gin.Context) {
		culture := ""
		if value, err := c.Cookie(localization.CookieName); err == nil {
			if parsed, err := localization.ParseCookieValue(value); err == nil {
				culture = localization.Normalize(parsed)
			}
		}
		if culture == "" {
			if header := c.GetHeader("Accept-Language"); header != "" {
				culture = localization.Match(header)
			} else {
				culture = fallback
			}
		}

		c.Set(CultureKey, culture)
		c.Header("Content-Language", culture)
		c.Next()
	}
}
