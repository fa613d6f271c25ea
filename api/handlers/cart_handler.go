package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-storefront/api/middleware"
	"go-storefront/internal/localization"
	"go-storefront/internal/models"
	"go-storefront/internal/platform/metrics"
	"go-storefront/internal/services"
)

type CartHandler struct {
	cartService *services.CartService
	metrics     *metrics.Manager
}

// NewCartHandler accepts a nil metrics manager.
func NewCartHandler(cartService *services.CartService, m *metrics.Manager) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		metrics:     m,
	}
}

// cartView is the JSON view model of a cart.
func cartView(culture string, cart *models.Cart) gin.H {
	view := gin.H{
		"title":          localization.Translate(culture, localization.MsgCart),
		"lines":          cart.Lines(),
		"total_value":    cart.TotalValue(),
		"total_quantity": cart.TotalQuantity(),
	}

	average, err := cart.AverageValue()
	if errors.Is(err, models.ErrEmptyCart) {
		view["message"] = localization.Translate(culture, localization.MsgCartEmpty)
	} else {
		view["average_value"] = average
	}
	return view
}

// GET /Cart
func (h *CartHandler) Index(c *gin.Context) {
	cart, err := h.cartService.GetCart(c.Request.Context(), middleware.SessionIDFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": cartView(middleware.CultureFrom(c), cart),
	})
}

// POST /Cart/AddToCart/:id
// Quantity comes from the form, JSON body or query string and defaults to 1
func (h *CartHandler) AddToCart(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondMessage(c, http.StatusBadRequest, localization.MsgInvalidProductID)
		return
	}

	var req models.AddToCartRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(err)
		respondMessage(c, http.StatusBadRequest, localization.MsgInvalidQuantity)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cart, err := h.cartService.AddToCart(c.Request.Context(), middleware.SessionIDFrom(c), productID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.CartItemsAdded.Add(float64(req.Quantity))
	}

	culture := middleware.CultureFrom(c)
	c.JSON(http.StatusOK, gin.H{
		"message": localization.Translate(culture, localization.MsgItemAdded),
		"data":    cartView(culture, cart),
	})
}

// POST /Cart/RemoveFromCart/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondMessage(c, http.StatusBadRequest, localization.MsgInvalidProductID)
		return
	}

	cart, err := h.cartService.RemoveFromCart(c.Request.Context(), middleware.SessionIDFrom(c), productID)
	if err != nil {
		respondError(c, err)
		return
	}

	culture := middleware.CultureFrom(c)
	c.JSON(http.StatusOK, gin.H{
		"message": localization.Translate(culture, localization.MsgItemRemoved),
		"data":    cartView(culture, cart),
	})
}
