package partner

import (
	"context"

	"github.com/google/uuid"

	"github.com/paylog/backend/internal/domain/shared"
)

// VendorRepository defines the interface for vendor persistence
type VendorRepository interface {
	// FindByID finds a vendor by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Vendor, error)

	// FindByCode finds a vendor by its code
	FindByCode(ctx context.Context, code string) (*Vendor, error)

	// FindAll finds all vendors matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Vendor, error)

	// FindByStatus finds vendors by status
	FindByStatus(ctx context.Context, status VendorStatus, filter shared.Filter) ([]Vendor, error)

	// ListNames returns the names of all vendors, for duplicate checks
	ListNames(ctx context.Context) ([]string, error)

	// Save creates or updates a vendor
	Save(ctx context.Context, vendor *Vendor) error

	// Delete deletes a vendor
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts vendors matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsByCode checks if a vendor with the given code exists
	ExistsByCode(ctx context.Context, code string) (bool, error)
}
