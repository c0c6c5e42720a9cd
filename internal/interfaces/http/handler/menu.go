package handler

import (
	"github.com/gin-gonic/gin"

	appmenu "github.com/kalori/backend/internal/application/menu"
)

// MenuHandler serves the public menu
type MenuHandler struct {
	BaseHandler
	query *appmenu.QueryService
}

// NewMenuHandler creates a new MenuHandler
func NewMenuHandler(query *appmenu.QueryService) *MenuHandler {
	return &MenuHandler{query: query}
}

// RegisterRoutes registers the public menu route
func (h *MenuHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/menu", h.GetMenu)
}

// GetMenu returns the visible menu tree
func (h *MenuHandler) GetMenu(c *gin.Context) {
	categories, err := h.query.BuildMenu(c.Request.Context(), false)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, gin.H{"categories": categories})
}
