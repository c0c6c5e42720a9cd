package handler

import (
	"github.com/gin-gonic/gin"

	appmenu "github.com/kalori/backend/internal/application/menu"
	"github.com/kalori/backend/internal/interfaces/http/dto"
)

// CategoryHandler serves the admin category console
type CategoryHandler struct {
	BaseHandler
	service *appmenu.Service
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(service *appmenu.Service) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// RegisterRoutes registers the admin category routes
func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/categories", h.List)
	rg.POST("/categories", h.Create)
}

// List returns all categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, gin.H{"categories": categories})
}

// Create creates a category. A slug collision surfaces from the store's
// unique constraint as a generic failure.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	category, err := h.service.CreateCategory(c.Request.Context(), appmenu.CreateCategoryRequest{
		Slug:  req.Slug,
		Label: req.Label,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, gin.H{"category": category})
}
