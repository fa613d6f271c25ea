package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-storefront/internal/localization"
	"go-storefront/internal/platform/logger"
	"go-storefront/internal/platform/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func echoRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(handlers...)
	r.GET("/echo", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"session_id": SessionIDFrom(c),
			"culture":    CultureFrom(c),
		})
	})
	return r
}

func TestSession_IssuesCookieWhenMissing(t *testing.T) {
	r := echoRouter(Session("sid", time.Hour))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/echo", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sid", cookies[0].Name)
	assert.NoError(t, uuid.Validate(cookies[0].Value))
	assert.Contains(t, rec.Body.String(), cookies[0].Value)
}

func TestSession_KeepsValidCookie(t *testing.T) {
	r := echoRouter(Session("sid", time.Hour))
	id := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/echo", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: id})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Contains(t, rec.Body.String(), id)
}

func TestSession_ReplacesForgedCookie(t *testing.T) {
	r := echoRouter(Session("sid", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/echo", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "not-a-uuid"})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.NotContains(t, rec.Body.String(), "not-a-uuid")
}

func TestCulture(t *testing.T) {
	tests := []struct {
		name     string
		cookie   string
		header   string
		fallback string
		want     string
	}{
		{name: "cookie wins", cookie: "c=fr|uic=fr", header: "es", fallback: "en", want: "fr"},
		{name: "accept-language", header: "es-ES,es;q=0.9", fallback: "en", want: "es"},
		{name: "fallback", fallback: "fr", want: "fr"},
		{name: "unsupported fallback", fallback: "de", want: "en"},
		{name: "malformed cookie", cookie: "garbage", header: "fr", fallback: "en", want: "fr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := echoRouter(Culture(tt.fallback))
			req := httptest.NewRequest(http.MethodGet, "/echo", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: localization.CookieName, Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set("Accept-Language", tt.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Header().Get("Content-Language"))
			assert.Contains(t, rec.Body.String(), `"culture":"`+tt.want+`"`)
		})
	}
}

func TestMetrics_CountsByRoute(t *testing.T) {
	m := metrics.NewManager("test")
	r := echoRouter(Metrics(m))

	for i := 0; i < 2; i++ {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/echo", nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/echo", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}

func TestRequestLogger_PassesThrough(t *testing.T) {
	r := echoRouter(RequestLogger(logger.NewNop()))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/echo", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
