// Package masterdata holds the reference aggregates billing profiles
// point at: legal entities and spend categories.
package masterdata

import (
	"strings"
	"time"

	"github.com/paylog/backend/internal/domain/shared"
)

// Entity is a legal entity that receives vendor invoices.
type Entity struct {
	shared.BaseAggregateRoot
	Code     string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name     string `gorm:"type:varchar(200);not null"`
	GSTIN    string `gorm:"type:varchar(20)"`
	Address  string `gorm:"type:text"`
	IsActive bool   `gorm:"not null;default:true"`
}

func (Entity) TableName() string {
	return "entities"
}

// NewEntity creates a new active legal entity
func NewEntity(code, name string) (*Entity, error) {
	if err := validateCode(code); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}

	return &Entity{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              strings.ToUpper(code),
		Name:              strings.TrimSpace(name),
		IsActive:          true,
	}, nil
}

// Update updates the entity's details
func (e *Entity) Update(name, gstin, address string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if gstin != "" && len(gstin) != 15 {
		return shared.NewDomainError("INVALID_GSTIN", "GSTIN must be 15 characters")
	}

	e.Name = strings.TrimSpace(name)
	e.GSTIN = strings.ToUpper(gstin)
	e.Address = address
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	return nil
}

// SetActive toggles whether the entity accepts new profiles
func (e *Entity) SetActive(active bool) {
	e.IsActive = active
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
}

func validateCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Code cannot exceed 50 characters")
	}
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_CODE", "Code can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	return nil
}
