// Package billing exposes the invoice, payment, profile and credit
// note application services.
package billing

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paylog/backend/internal/domain/billing"
	"github.com/paylog/backend/internal/domain/shared"
)

// LedgerInvalidator drops derived ledger state after invoice or
// payment mutations. The report service implements it; a nil
// invalidator is a no-op.
type LedgerInvalidator interface {
	InvalidateProfile(ctx context.Context, profileID uuid.UUID)
}

// InvoiceService handles invoice lifecycle operations
type InvoiceService struct {
	invoiceRepo billing.InvoiceRepository
	profileRepo billing.ProfileRepository
	invalidator LedgerInvalidator
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoiceRepo billing.InvoiceRepository, profileRepo billing.ProfileRepository, invalidator LedgerInvalidator) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		profileRepo: profileRepo,
		invalidator: invalidator,
	}
}

// Create creates a new draft invoice on an active profile
func (s *InvoiceService) Create(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	profile, err := s.profileRepo.FindByID(ctx, req.ProfileID)
	if err != nil {
		return nil, err
	}
	if !profile.IsActive() {
		return nil, shared.NewDomainError("PROFILE_ARCHIVED", "Cannot invoice an archived profile")
	}

	exists, err := s.invoiceRepo.ExistsByNumber(ctx, req.Number)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Invoice with this number already exists")
	}

	invoice, err := billing.NewInvoice(req.ProfileID, req.Number, req.Amount)
	if err != nil {
		return nil, err
	}
	if req.Description != "" {
		if err := invoice.UpdateDetails(req.Amount, req.Description); err != nil {
			return nil, err
		}
	}
	if req.InvoiceDate != nil || req.DueDate != nil {
		if err := invoice.SetDates(req.InvoiceDate, req.DueDate); err != nil {
			return nil, err
		}
	}
	if req.TDSApplicable {
		pct := decimal.Zero
		if req.TDSPercentage != nil {
			pct = *req.TDSPercentage
		}
		if err := invoice.SetTDS(true, pct); err != nil {
			return nil, err
		}
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	s.invalidate(ctx, invoice.ProfileID)
	return ToInvoiceResponse(invoice), nil
}

// Get retrieves an invoice by ID
func (s *InvoiceService) Get(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToInvoiceResponse(invoice), nil
}

// List retrieves invoices matching the filter, with pagination
func (s *InvoiceService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[InvoiceResponse], error) {
	invoices, err := s.invoiceRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.invoiceRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		items = append(items, *ToInvoiceResponse(&invoices[i]))
	}

	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update edits a draft invoice
func (s *InvoiceService) Update(ctx context.Context, id uuid.UUID, req UpdateInvoiceRequest) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil || req.Description != nil {
		amount := invoice.Amount
		description := invoice.Description
		if req.Amount != nil {
			amount = *req.Amount
		}
		if req.Description != nil {
			description = *req.Description
		}
		if err := invoice.UpdateDetails(amount, description); err != nil {
			return nil, err
		}
	}
	if req.InvoiceDate != nil || req.DueDate != nil {
		invoiceDate := invoice.InvoiceDate
		dueDate := invoice.DueDate
		if req.InvoiceDate != nil {
			invoiceDate = req.InvoiceDate
		}
		if req.DueDate != nil {
			dueDate = req.DueDate
		}
		if err := invoice.SetDates(invoiceDate, dueDate); err != nil {
			return nil, err
		}
	}
	if req.TDSApplicable != nil {
		pct := invoice.TDSPercentage
		if req.TDSPercentage != nil {
			pct = *req.TDSPercentage
		}
		if err := invoice.SetTDS(*req.TDSApplicable, pct); err != nil {
			return nil, err
		}
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	s.invalidate(ctx, invoice.ProfileID)
	return ToInvoiceResponse(invoice), nil
}

// Submit submits a draft invoice
func (s *InvoiceService) Submit(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	return s.transition(ctx, id, (*billing.Invoice).Submit)
}

// Approve approves a submitted invoice
func (s *InvoiceService) Approve(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	return s.transition(ctx, id, (*billing.Invoice).Approve)
}

// Cancel cancels a draft or submitted invoice
func (s *InvoiceService) Cancel(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	return s.transition(ctx, id, (*billing.Invoice).Cancel)
}

func (s *InvoiceService) transition(ctx context.Context, id uuid.UUID, apply func(*billing.Invoice) error) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(invoice); err != nil {
		return nil, err
	}
	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	s.invalidate(ctx, invoice.ProfileID)
	return ToInvoiceResponse(invoice), nil
}

func (s *InvoiceService) invalidate(ctx context.Context, profileID uuid.UUID) {
	if s.invalidator != nil {
		s.invalidator.InvalidateProfile(ctx, profileID)
	}
}
