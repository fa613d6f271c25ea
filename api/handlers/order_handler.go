package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-storefront/api/middleware"
	"go-storefront/internal/localization"
	"go-storefront/internal/models"
	"go-storefront/internal/repository"
	"go-storefront/internal/services"
)

type OrderHandler struct {
	orderService *services.OrderService
	cartService  *services.CartService
}

func NewOrderHandler(orderService *services.OrderService, cartService *services.CartService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		cartService:  cartService,
	}
}

// GET /Order
// Cart summary shown before checkout
func (h *OrderHandler) Index(c *gin.Context) {
	cart, err := h.cartService.GetCart(c.Request.Context(), middleware.SessionIDFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	culture := middleware.CultureFrom(c)
	view := cartView(culture, cart)
	view["title"] = localization.Translate(culture, localization.MsgOrderSummaryHeader)
	view["action"] = localization.Translate(culture, localization.MsgCheckout)

	c.JSON(http.StatusOK, gin.H{
		"data": view,
	})
}

// POST /Order
// Form posts are redirected to the confirmation page, JSON posts get the order
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(err)
		respondMessage(c, http.StatusBadRequest, localization.MsgInvalidOrder)
		return
	}

	ctx := c.Request.Context()
	sessionID := middleware.SessionIDFrom(c)

	cart, err := h.cartService.GetCart(ctx, sessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	order := req.ToOrder()
	if err := h.orderService.SaveOrder(ctx, order, cart); err != nil {
		respondError(c, err)
		return
	}
	if err := h.cartService.ClearCart(ctx, sessionID); err != nil {
		respondError(c, err)
		return
	}

	if c.ContentType() == gin.MIMEJSON {
		c.JSON(http.StatusCreated, gin.H{
			"message": localization.Translate(middleware.CultureFrom(c), localization.MsgOrderCompleted),
			"data":    order,
			"total":   order.Total(),
		})
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/Order/Completed?id=%d", order.ID))
}

// GET /Order/Completed
func (h *OrderHandler) Completed(c *gin.Context) {
	culture := middleware.CultureFrom(c)
	resp := gin.H{
		"message": localization.Translate(culture, localization.MsgOrderCompleted),
	}

	if raw := c.Query("id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			respondMessage(c, http.StatusBadRequest, localization.MsgInvalidOrderID)
			return
		}
		order, err := h.orderService.GetOrder(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				respondMessage(c, http.StatusNotFound, localization.MsgOrderNotFound)
				return
			}
			respondError(c, err)
			return
		}
		resp["data"] = order
		resp["total"] = order.Total()
	}

	c.JSON(http.StatusOK, resp)
}
