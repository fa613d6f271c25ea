package localization

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// CookieName and the "c=<culture>|uic=<culture>" value format match the
// cookie read by ASP.NET Core request localization.
const CookieName = ".AspNetCore.Culture"

const (
	English = "en"
	French  = "fr"
	Spanish = "es"

	DefaultCulture = English
)

var ErrMalformedCookie = errors.New("malformed culture cookie")

var supported = []language.Tag{
	language.English,
	language.French,
	language.Spanish,
}

var matcher = language.NewMatcher(supported)

func SupportedCultures() []string {
	return []string{English, French, Spanish}
}

func IsSupported(culture string) bool {
	switch culture {
	case English, French, Spanish:
		return true
	}
	return false
}

func MakeCookieValue(culture string) string {
	return fmt.Sprintf("c=%s|uic=%s", culture, culture)
}

// ParseCookieValue returns the UI culture, or the formatting culture when
// only that one is present.
func ParseCookieValue(value string) (string, error) {
	var culture, uiCulture string
	for _, part := range strings.Split(value, "|") {
		key, val, ok := strings.Cut(part, "=")
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrMalformedCookie, value)
		}
		switch key {
		case "c":
			culture = val
		case "uic":
			uiCulture = val
		}
	}

	if uiCulture != "" {
		return uiCulture, nil
	}
	if culture != "" {
		return culture, nil
	}
	return "", fmt.Errorf("%w: %q", ErrMalformedCookie, value)
}

// Match picks the supported culture closest to an Accept-Language header.
func Match(acceptLanguage string) string {
	if acceptLanguage == "" {
		return DefaultCulture
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultCulture
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultCulture
	}
	return SupportedCultures()[index]
}

// Normalize maps any culture string, such as "fr-FR", onto a supported one.
func Normalize(culture string) string {
	tag, err := language.Parse(culture)
	if err != nil {
		return DefaultCulture
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return DefaultCulture
	}
	return SupportedCultures()[index]
}
