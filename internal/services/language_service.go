package services

import (
	"net/http"
	"time"

	"go-storefront/internal/localization"
	"go-storefront/internal/platform/logger"
)

const cultureCookieMaxAge = 365 * 24 * time.Hour

type LanguageService struct {
	log logger.Logger
}

func NewLanguageService(log logger.Logger) *LanguageService {
	return &LanguageService{log: log}
}

// SetCulture maps a language name to its culture code. Anything other than
// "French" or "Spanish" is English.
func (s *LanguageService) SetCulture(language string) string {
	switch language {
	case "French":
		return localization.French
	case "Spanish":
		return localization.Spanish
	default:
		return localization.English
	}
}

// ChangeUiLanguage writes the culture cookie for language and returns the
// culture it wrote.
func (s *LanguageService) ChangeUiLanguage(w http.ResponseWriter, language string) string {
	culture := s.SetCulture(language)
	s.UpdateCultureCookie(w, culture)
	s.log.Debugf("UI language set to %s (%q)", culture, language)
	return culture
}

func (s *LanguageService) UpdateCultureCookie(w http.ResponseWriter, culture string) {
	http.SetCookie(w, &http.Cookie{
		Name:     localization.CookieName,
		Value:    localization.MakeCookieValue(culture),
		Path:     "/",
		Expires:  time.Now().Add(cultureCookieMaxAge),
		SameSite: http.SameSiteLaxMode,
	})
}
