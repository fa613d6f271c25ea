package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-storefront/api/middleware"
	"go-storefront/internal/localization"
	"go-storefront/internal/services"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// GET /Product
// Product list view model
func (h *ProductHandler) Index(c *gin.Context) {
	products, err := h.productService.GetAllProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	culture := middleware.CultureFrom(c)
	c.JSON(http.StatusOK, gin.H{
		"title":   localization.Translate(culture, localization.MsgProducts),
		"culture": culture,
		"data":    products,
	})
}

// GET /api/products
func (h *ProductHandler) GetAllProducts(c *gin.Context) {
	products, err := h.productService.GetAllProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": products,
		"meta": gin.H{
			"total": len(products),
		},
	})
}

// GET /api/products/:id
func (h *ProductHandler) GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondMessage(c, http.StatusBadRequest, localization.MsgInvalidProductID)
		return
	}

	product, err := h.productService.GetProductByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": product,
	})
}
