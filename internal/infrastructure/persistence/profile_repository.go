package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/paylog/backend/internal/domain/billing"
	"github.com/paylog/backend/internal/domain/shared"
)

// GormProfileRepository implements ProfileRepository using GORM
type GormProfileRepository struct {
	db *gorm.DB
}

// NewGormProfileRepository creates a new GormProfileRepository
func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

// FindByID finds a billing profile by its ID
func (r *GormProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Profile, error) {
	var profile billing.Profile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// FindAll finds all billing profiles matching the filter
func (r *GormProfileRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.Profile, error) {
	var profiles []billing.Profile
	query := applyFilter(r.db.WithContext(ctx).Model(&billing.Profile{}), filter, "name")

	if err := query.Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// FindActive returns all active billing profiles, for the ledger
// overview
func (r *GormProfileRepository) FindActive(ctx context.Context) ([]billing.Profile, error) {
	var profiles []billing.Profile
	if err := r.db.WithContext(ctx).
		Where("status = ?", billing.ProfileStatusActive).
		Order("name ASC").
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// FindByVendor finds all billing profiles for a vendor
func (r *GormProfileRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]billing.Profile, error) {
	var profiles []billing.Profile
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("name ASC").
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// Save creates or updates a billing profile
func (r *GormProfileRepository) Save(ctx context.Context, profile *billing.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

// Delete deletes a billing profile
func (r *GormProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&billing.Profile{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts billing profiles matching the filter
func (r *GormProfileRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applySearch(r.db.WithContext(ctx).Model(&billing.Profile{}), filter, "name")
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
