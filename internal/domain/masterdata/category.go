package masterdata

import (
	"strings"
	"time"

	"github.com/paylog/backend/internal/domain/shared"
)

// Category is a spend category used to classify billing profiles.
type Category struct {
	shared.BaseAggregateRoot
	Code        string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name        string `gorm:"type:varchar(200);not null"`
	Description string `gorm:"type:text"`
	IsActive    bool   `gorm:"not null;default:true"`
}

func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new active spend category
func NewCategory(code, name string) (*Category, error) {
	if err := validateCode(code); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}

	return &Category{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              strings.ToUpper(code),
		Name:              strings.TrimSpace(name),
		IsActive:          true,
	}, nil
}

// Update updates the category's details
func (c *Category) Update(name, description string) error {
	if err := validateName(name); err != nil {
		return err
	}

	c.Name = strings.TrimSpace(name)
	c.Description = description
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetActive toggles whether the category accepts new profiles
func (c *Category) SetActive(active bool) {
	c.IsActive = active
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}
