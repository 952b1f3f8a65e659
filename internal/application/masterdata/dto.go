package masterdata

import (
	"time"

	"github.com/google/uuid"

	"github.com/paylog/backend/internal/domain/masterdata"
)

// CreateEntityRequest represents a request to create a legal entity
type CreateEntityRequest struct {
	Code    string `json:"code" binding:"required,min=1,max=50"`
	Name    string `json:"name" binding:"required,min=1,max=200"`
	GSTIN   string `json:"gstin" binding:"omitempty,len=15"`
	Address string `json:"address"`
}

// EntityResponse represents a legal entity in API responses
type EntityResponse struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	GSTIN     string    `json:"gstin"`
	Address   string    `json:"address"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToEntityResponse converts a domain entity to its API representation
func ToEntityResponse(e *masterdata.Entity) *EntityResponse {
	return &EntityResponse{
		ID:        e.ID,
		Code:      e.Code,
		Name:      e.Name,
		GSTIN:     e.GSTIN,
		Address:   e.Address,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// CreateCategoryRequest represents a request to create a spend category
type CreateCategoryRequest struct {
	Code        string `json:"code" binding:"required,min=1,max=50"`
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description"`
}

// CategoryResponse represents a spend category in API responses
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToCategoryResponse converts a domain category to its API representation
func ToCategoryResponse(c *masterdata.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          c.ID,
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
