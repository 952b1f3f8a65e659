package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/paylog/backend/internal/domain/masterdata"
	"github.com/paylog/backend/internal/domain/shared"
)

// GormEntityRepository implements EntityRepository using GORM
type GormEntityRepository struct {
	db *gorm.DB
}

// NewGormEntityRepository creates a new GormEntityRepository
func NewGormEntityRepository(db *gorm.DB) *GormEntityRepository {
	return &GormEntityRepository{db: db}
}

// FindByID finds a legal entity by its ID
func (r *GormEntityRepository) FindByID(ctx context.Context, id uuid.UUID) (*masterdata.Entity, error) {
	var entity masterdata.Entity
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// FindByCode finds a legal entity by its code
func (r *GormEntityRepository) FindByCode(ctx context.Context, code string) (*masterdata.Entity, error) {
	var entity masterdata.Entity
	if err := r.db.WithContext(ctx).
		First(&entity, "code = ?", strings.ToUpper(code)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// FindAll finds all legal entities matching the filter
func (r *GormEntityRepository) FindAll(ctx context.Context, filter shared.Filter) ([]masterdata.Entity, error) {
	var entities []masterdata.Entity
	query := applyFilter(r.db.WithContext(ctx).Model(&masterdata.Entity{}), filter, "name", "code")

	if err := query.Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// Save creates or updates a legal entity
func (r *GormEntityRepository) Save(ctx context.Context, entity *masterdata.Entity) error {
	return r.db.WithContext(ctx).Save(entity).Error
}

// Delete deletes a legal entity
func (r *GormEntityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&masterdata.Entity{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts legal entities matching the filter
func (r *GormEntityRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applySearch(r.db.WithContext(ctx).Model(&masterdata.Entity{}), filter, "name", "code")
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByCode checks if a legal entity with the given code exists
func (r *GormEntityRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&masterdata.Entity{}).
		Where("code = ?", strings.ToUpper(code)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GormCategoryRepository implements CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// FindByID finds a spend category by its ID
func (r *GormCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*masterdata.Category, error) {
	var category masterdata.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// FindByCode finds a spend category by its code
func (r *GormCategoryRepository) FindByCode(ctx context.Context, code string) (*masterdata.Category, error) {
	var category masterdata.Category
	if err := r.db.WithContext(ctx).
		First(&category, "code = ?", strings.ToUpper(code)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// FindAll finds all spend categories matching the filter
func (r *GormCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]masterdata.Category, error) {
	var categories []masterdata.Category
	query := applyFilter(r.db.WithContext(ctx).Model(&masterdata.Category{}), filter, "name", "code")

	if err := query.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Save creates or updates a spend category
func (r *GormCategoryRepository) Save(ctx context.Context, category *masterdata.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// Delete deletes a spend category
func (r *GormCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&masterdata.Category{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts spend categories matching the filter
func (r *GormCategoryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applySearch(r.db.WithContext(ctx).Model(&masterdata.Category{}), filter, "name", "code")
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByCode checks if a spend category with the given code exists
func (r *GormCategoryRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&masterdata.Category{}).
		Where("code = ?", strings.ToUpper(code)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
