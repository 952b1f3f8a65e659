package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/paylog/backend/internal/domain/shared"
)

// InvoiceQuery narrows invoice lookups for ledger runs. A nil date
// leaves that bound open.
type InvoiceQuery struct {
	ProfileID uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Search    string
}

// ProfileRepository defines the interface for billing profile persistence
type ProfileRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Profile, error)
	FindActive(ctx context.Context) ([]Profile, error)
	FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]Profile, error)
	Save(ctx context.Context, profile *Profile) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// InvoiceRepository defines the interface for invoice persistence
type InvoiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
	FindByNumber(ctx context.Context, number string) (*Invoice, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Invoice, error)

	// FindForLedger returns the invoices feeding a profile's ledger
	// run, in invoice-date ascending order with undated invoices last.
	FindForLedger(ctx context.Context, q InvoiceQuery) ([]Invoice, error)

	Save(ctx context.Context, invoice *Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByNumber(ctx context.Context, number string) (bool, error)
}

// PaymentRepository defines the interface for payment persistence
type PaymentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Payment, error)
	FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]Payment, error)

	// FindApprovedByInvoices returns approved payments for the given
	// invoices, grouped by invoice id, each group in date ascending
	// order. Pending and rejected payments never cross this boundary.
	FindApprovedByInvoices(ctx context.Context, invoiceIDs []uuid.UUID) (map[uuid.UUID][]Payment, error)

	Save(ctx context.Context, payment *Payment) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// CreditNoteRepository defines the interface for credit note persistence
type CreditNoteRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CreditNote, error)
	FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]CreditNote, error)
	Save(ctx context.Context, note *CreditNote) error
}
