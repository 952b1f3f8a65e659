package handler

import (
	"github.com/gin-gonic/gin"

	masterdataapp "github.com/paylog/backend/internal/application/masterdata"
)

// SetActiveRequest toggles the active flag on master data records
type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// EntityHandler handles legal entity API endpoints
type EntityHandler struct {
	BaseHandler
	entityService *masterdataapp.EntityService
}

// NewEntityHandler creates a new EntityHandler
func NewEntityHandler(entityService *masterdataapp.EntityService) *EntityHandler {
	return &EntityHandler{entityService: entityService}
}

// Create handles POST /entities
func (h *EntityHandler) Create(c *gin.Context) {
	var req masterdataapp.CreateEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	entity, err := h.entityService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, entity)
}

// Get handles GET /entities/:id
func (h *EntityHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid entity ID format")
		return
	}

	entity, err := h.entityService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, entity)
}

// List handles GET /entities
func (h *EntityHandler) List(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.entityService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// SetActive handles PUT /entities/:id/active
func (h *EntityHandler) SetActive(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid entity ID format")
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.entityService.SetActive(c.Request.Context(), id, *req.Active); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// CategoryHandler handles spend category API endpoints
type CategoryHandler struct {
	BaseHandler
	categoryService *masterdataapp.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *masterdataapp.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// Create handles POST /categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req masterdataapp.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, category)
}

// Get handles GET /categories/:id
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid category ID format")
		return
	}

	category, err := h.categoryService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, category)
}

// List handles GET /categories
func (h *CategoryHandler) List(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.categoryService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// SetActive handles PUT /categories/:id/active
func (h *CategoryHandler) SetActive(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid category ID format")
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.categoryService.SetActive(c.Request.Context(), id, *req.Active); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
