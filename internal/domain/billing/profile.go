// Package billing holds the invoicing aggregates: billing profiles,
// invoices, payments and credit notes. The ledger engine consumes
// read-only snapshots of these via their record converters.
package billing

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/paylog/backend/internal/domain/shared"
)

// ProfileStatus represents the status of a billing profile
type ProfileStatus string

const (
	ProfileStatusActive   ProfileStatus = "active"
	ProfileStatusArchived ProfileStatus = "archived"
)

// Profile represents one billing relationship: a vendor invoicing a
// legal entity under a spend category. Ledger runs are scoped to a
// single profile.
type Profile struct {
	shared.BaseAggregateRoot
	VendorID    uuid.UUID     `gorm:"type:uuid;not null;index"`
	EntityID    uuid.UUID     `gorm:"type:uuid;not null;index"`
	CategoryID  uuid.UUID     `gorm:"type:uuid;index"`
	Name        string        `gorm:"type:varchar(200);not null"`
	Description string        `gorm:"type:text"`
	Status      ProfileStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (Profile) TableName() string {
	return "billing_profiles"
}

// NewProfile creates a new billing profile
func NewProfile(vendorID, entityID uuid.UUID, name string) (*Profile, error) {
	if vendorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VENDOR", "Profile requires a vendor")
	}
	if entityID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ENTITY", "Profile requires a billing entity")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Profile name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Profile name cannot exceed 200 characters")
	}

	return &Profile{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		VendorID:          vendorID,
		EntityID:          entityID,
		Name:              strings.TrimSpace(name),
		Status:            ProfileStatusActive,
	}, nil
}

// Update updates the profile's name and description
func (p *Profile) Update(name, description string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Profile name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Profile name cannot exceed 200 characters")
	}

	p.Name = strings.TrimSpace(name)
	p.Description = description
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetCategory assigns the profile's spend category
func (p *Profile) SetCategory(categoryID uuid.UUID) {
	p.CategoryID = categoryID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// Archive archives the profile; archived profiles accept no new invoices
func (p *Profile) Archive() error {
	if p.Status == ProfileStatusArchived {
		return shared.NewDomainError("ALREADY_ARCHIVED", "Profile is already archived")
	}

	p.Status = ProfileStatusArchived
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// Restore reactivates an archived profile
func (p *Profile) Restore() error {
	if p.Status == ProfileStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Profile is already active")
	}

	p.Status = ProfileStatusActive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// IsActive returns true if the profile is active
func (p *Profile) IsActive() bool {
	return p.Status == ProfileStatusActive
}
