package billing

import (
	"context"

	"github.com/google/uuid"

	"github.com/paylog/backend/internal/domain/billing"
	"github.com/paylog/backend/internal/domain/shared"
)

// CreditNoteService handles credit note issuance against approved
// invoices
type CreditNoteService struct {
	noteRepo    billing.CreditNoteRepository
	invoiceRepo billing.InvoiceRepository
}

// NewCreditNoteService creates a new CreditNoteService
func NewCreditNoteService(noteRepo billing.CreditNoteRepository, invoiceRepo billing.InvoiceRepository) *CreditNoteService {
	return &CreditNoteService{
		noteRepo:    noteRepo,
		invoiceRepo: invoiceRepo,
	}
}

// Create issues a credit note against an approved invoice. The note
// amount may not exceed the invoice amount.
func (s *CreditNoteService) Create(ctx context.Context, req CreateCreditNoteRequest) (*CreditNoteResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, req.InvoiceID)
	if err != nil {
		return nil, err
	}
	if !invoice.IsApproved() {
		return nil, shared.NewDomainError("INVOICE_NOT_APPROVED", "Credit notes can only be issued against approved invoices")
	}
	if req.Amount.GreaterThan(invoice.Amount) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Credit note amount cannot exceed the invoice amount")
	}

	note, err := billing.NewCreditNote(req.InvoiceID, req.Amount, req.Reason)
	if err != nil {
		return nil, err
	}

	if err := s.noteRepo.Save(ctx, note); err != nil {
		return nil, err
	}

	return ToCreditNoteResponse(note), nil
}

// ListByInvoice retrieves the credit notes issued against one invoice
func (s *CreditNoteService) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]CreditNoteResponse, error) {
	notes, err := s.noteRepo.FindByInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	items := make([]CreditNoteResponse, 0, len(notes))
	for i := range notes {
		items = append(items, *ToCreditNoteResponse(&notes[i]))
	}
	return items, nil
}

// Apply applies an issued credit note
func (s *CreditNoteService) Apply(ctx context.Context, id uuid.UUID) (*CreditNoteResponse, error) {
	return s.transition(ctx, id, (*billing.CreditNote).Apply)
}

// Void voids an issued credit note
func (s *CreditNoteService) Void(ctx context.Context, id uuid.UUID) (*CreditNoteResponse, error) {
	return s.transition(ctx, id, (*billing.CreditNote).Void)
}

func (s *CreditNoteService) transition(ctx context.Context, id uuid.UUID, apply func(*billing.CreditNote) error) (*CreditNoteResponse, error) {
	note, err := s.noteRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(note); err != nil {
		return nil, err
	}
	if err := s.noteRepo.Save(ctx, note); err != nil {
		return nil, err
	}
	return ToCreditNoteResponse(note), nil
}
