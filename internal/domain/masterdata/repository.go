package masterdata

import (
	"context"

	"github.com/google/uuid"

	"github.com/paylog/backend/internal/domain/shared"
)

// EntityRepository defines the interface for legal entity persistence
type EntityRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Entity, error)
	FindByCode(ctx context.Context, code string) (*Entity, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Entity, error)
	Save(ctx context.Context, entity *Entity) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindByCode(ctx context.Context, code string) (*Category, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Category, error)
	Save(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
}
