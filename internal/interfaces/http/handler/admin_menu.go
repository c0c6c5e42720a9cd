package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appmenu "github.com/kalori/backend/internal/application/menu"
	"github.com/kalori/backend/internal/interfaces/http/dto"
)

// AdminMenuHandler serves the admin menu console: the full menu view
// (hidden items included), item CRUD and per-category reorder
type AdminMenuHandler struct {
	BaseHandler
	query   *appmenu.QueryService
	service *appmenu.Service
}

// NewAdminMenuHandler creates a new AdminMenuHandler
func NewAdminMenuHandler(query *appmenu.QueryService, service *appmenu.Service) *AdminMenuHandler {
	return &AdminMenuHandler{query: query, service: service}
}

// RegisterRoutes registers the admin menu routes. The group is expected to
// carry the admin auth middleware.
func (h *AdminMenuHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/menu", h.GetMenu)
	rg.POST("/menu/items", h.CreateItem)
	rg.PATCH("/menu/items/:id", h.UpdateItem)
	rg.DELETE("/menu/items/:id", h.DeleteItem)
	rg.POST("/menu/order", h.Reorder)
}

// GetMenu returns the menu tree including hidden items
func (h *AdminMenuHandler) GetMenu(c *gin.Context) {
	categories, err := h.query.BuildMenu(c.Request.Context(), true)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, gin.H{"categories": categories})
}

// CreateItem creates a menu item
func (h *AdminMenuHandler) CreateItem(c *gin.Context) {
	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	item, err := h.service.CreateItem(c.Request.Context(), appmenu.CreateItemRequest{
		Name:         req.Name,
		Calories:     *req.Calories,
		ImagePath:    req.ImagePath,
		Hidden:       req.Hidden,
		CategorySlug: req.CategoryID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, gin.H{"item": item})
}

// UpdateItem applies a sparse patch to an item
func (h *AdminMenuHandler) UpdateItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid item id")
		return
	}

	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	item, err := h.service.UpdateItem(c.Request.Context(), id, appmenu.UpdateItemRequest{
		Name:      req.Name,
		Calories:  req.Calories,
		ImagePath: req.ImagePath,
		Hidden:    req.Hidden,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, gin.H{"item": item})
}

// DeleteItem removes an item. Unknown ids delete successfully.
func (h *AdminMenuHandler) DeleteItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid item id")
		return
	}

	if err := h.service.DeleteItem(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Reorder replaces a category's explicit item order
func (h *AdminMenuHandler) Reorder(c *gin.Context) {
	var req dto.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	err := h.service.Reorder(c.Request.Context(), appmenu.ReorderRequest{
		CategorySlug: req.CategoryID,
		Order:        req.Order,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, gin.H{"ok": true})
}
