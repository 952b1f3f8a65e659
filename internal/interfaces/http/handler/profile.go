package handler

import (
	"github.com/gin-gonic/gin"

	billingapp "github.com/paylog/backend/internal/application/billing"
)

// ProfileHandler handles billing profile API endpoints
type ProfileHandler struct {
	BaseHandler
	profileService *billingapp.ProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService *billingapp.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Create handles POST /profiles
func (h *ProfileHandler) Create(c *gin.Context) {
	var req billingapp.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	profile, err := h.profileService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, profile)
}

// Get handles GET /profiles/:id
func (h *ProfileHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid profile ID format")
		return
	}

	profile, err := h.profileService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, profile)
}

// List handles GET /profiles
func (h *ProfileHandler) List(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.profileService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Archive handles POST /profiles/:id/archive
func (h *ProfileHandler) Archive(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid profile ID format")
		return
	}

	if err := h.profileService.Archive(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Restore handles POST /profiles/:id/restore
func (h *ProfileHandler) Restore(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid profile ID format")
		return
	}

	if err := h.profileService.Restore(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
