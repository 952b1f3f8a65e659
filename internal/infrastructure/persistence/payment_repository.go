package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/paylog/backend/internal/domain/billing"
	"github.com/paylog/backend/internal/domain/shared"
)

// GormPaymentRepository implements PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// FindByID finds a payment by its ID
func (r *GormPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Payment, error) {
	var payment billing.Payment
	if err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// FindAll finds all payments matching the filter
func (r *GormPaymentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.Payment, error) {
	var payments []billing.Payment
	query := applyFilter(r.db.WithContext(ctx).Model(&billing.Payment{}), filter, "reference")

	if err := query.Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// FindByInvoice finds all payments recorded against an invoice
func (r *GormPaymentRepository) FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]billing.Payment, error) {
	var payments []billing.Payment
	if err := r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("date ASC, created_at ASC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// FindApprovedByInvoices returns approved payments for the given
// invoices grouped by invoice id, each group in date ascending order
func (r *GormPaymentRepository) FindApprovedByInvoices(ctx context.Context, invoiceIDs []uuid.UUID) (map[uuid.UUID][]billing.Payment, error) {
	grouped := make(map[uuid.UUID][]billing.Payment, len(invoiceIDs))
	if len(invoiceIDs) == 0 {
		return grouped, nil
	}

	var payments []billing.Payment
	if err := r.db.WithContext(ctx).
		Where("invoice_id IN ?", invoiceIDs).
		Where("status = ?", billing.PaymentStatusApproved).
		Order("date ASC, created_at ASC").
		Find(&payments).Error; err != nil {
		return nil, err
	}

	for i := range payments {
		p := payments[i]
		grouped[p.InvoiceID] = append(grouped[p.InvoiceID], p)
	}
	return grouped, nil
}

// Save creates or updates a payment
func (r *GormPaymentRepository) Save(ctx context.Context, payment *billing.Payment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

// Delete deletes a payment
func (r *GormPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&billing.Payment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts payments matching the filter
func (r *GormPaymentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applySearch(r.db.WithContext(ctx).Model(&billing.Payment{}), filter, "reference")
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
