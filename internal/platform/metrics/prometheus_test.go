package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_OrderCounters(t *testing.T) {
	m := NewManager("test")

	m.OrderPlaced(2, 25)
	m.OrderPlaced(1, 10)
	m.OrderFailed("empty_cart")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.OrdersPlaced))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OrdersFailed.WithLabelValues("empty_cart")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.OrdersFailed.WithLabelValues("save")))
}

func TestManager_Handler(t *testing.T) {
	m := NewManager("test")
	m.CartItemsAdded.Add(3)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test_cart_items_added_total 3")
}
