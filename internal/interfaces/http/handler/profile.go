package handler

import (
	"github.com/gin-gonic/gin"

	appidentity "github.com/kalori/backend/internal/application/identity"
	"github.com/kalori/backend/internal/interfaces/http/dto"
	"github.com/kalori/backend/internal/interfaces/http/middleware"
)

// ProfileHandler serves the signed-in user's health profile and its derived
// metrics
type ProfileHandler struct {
	BaseHandler
	profiles *appidentity.ProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profiles *appidentity.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// RegisterRoutes registers the profile routes. The group is expected to carry
// the user auth middleware.
func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", h.Get)
	rg.POST("/profile", h.Save)
	rg.GET("/profile/metrics", h.Metrics)
}

// Get returns the caller's profile and admin status
func (h *ProfileHandler) Get(c *gin.Context) {
	result, err := h.profiles.Get(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, result)
}

// Save upserts the caller's profile
func (h *ProfileHandler) Save(c *gin.Context) {
	var req dto.SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.profiles.Save(c.Request.Context(), middleware.GetIdentity(c), appidentity.SaveProfileRequest{
		Age:      req.Age,
		Weight:   req.Weight,
		Height:   req.Height,
		Gender:   req.Gender,
		Username: req.Username,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, result)
}

// Metrics returns the derived health metrics for the caller's saved profile
func (h *ProfileHandler) Metrics(c *gin.Context) {
	metrics, err := h.profiles.Metrics(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, gin.H{"metrics": metrics})
}
