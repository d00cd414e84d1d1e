package handler

import (
	currencyapp "github.com/geoffkats/accounting-system/internal/application/currency"
	"github.com/gin-gonic/gin"
)

// CurrencyHandler handles currency registry endpoints
type CurrencyHandler struct {
	BaseHandler
	service *currencyapp.Service
}

// NewCurrencyHandler creates a new CurrencyHandler
func NewCurrencyHandler(service *currencyapp.Service) *CurrencyHandler {
	return &CurrencyHandler{service: service}
}

// RegisterRoutes registers the currency routes
func (h *CurrencyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/settings/currencies")
	group.GET("", h.List)
	group.GET("/base", h.GetBase)
	group.PUT("/:code/base", h.SetBase)
}

// List returns every currency, base currency first, then by code.
func (h *CurrencyHandler) List(c *gin.Context) {
	currencies, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, currencies)
}

// GetBase returns the base currency.
func (h *CurrencyHandler) GetBase(c *gin.Context) {
	base, err := h.service.GetBase(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, base)
}

// SetBase reassigns the base currency to the code in the path. An unknown
// code fails with 404 and changes nothing.
func (h *CurrencyHandler) SetBase(c *gin.Context) {
	code := c.Param("code")
	updated, err := h.service.SetBase(c.Request.Context(), code)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, updated)
}
