package handler

import (
	accountingapp "github.com/geoffkats/accounting-system/internal/application/accounting"
	"github.com/gin-gonic/gin"
)

// AccountHandler handles chart-of-accounts endpoints
type AccountHandler struct {
	BaseHandler
	service *accountingapp.Service
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(service *accountingapp.Service) *AccountHandler {
	return &AccountHandler{service: service}
}

// RegisterRoutes registers the account routes
func (h *AccountHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/accounts")
	group.GET("", h.List)
	group.GET("/:code", h.Get)
}

// List returns the chart of accounts ordered by code. With ?grouped=true the
// accounts come back grouped by classification in reporting order.
func (h *AccountHandler) List(c *gin.Context) {
	if c.Query("grouped") == "true" {
		groups, err := h.service.ListGrouped(c.Request.Context())
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, groups)
		return
	}

	accounts, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, accounts)
}

// Get returns a single account by code.
func (h *AccountHandler) Get(c *gin.Context) {
	account, err := h.service.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, account)
}
