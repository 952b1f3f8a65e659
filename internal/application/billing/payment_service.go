package billing

import (
	"context"

	"github.com/google/uuid"

	"github.com/paylog/backend/internal/domain/billing"
	"github.com/paylog/backend/internal/domain/shared"
)

// PaymentService handles payment recording and approval
type PaymentService struct {
	paymentRepo billing.PaymentRepository
	invoiceRepo billing.InvoiceRepository
	invalidator LedgerInvalidator
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(paymentRepo billing.PaymentRepository, invoiceRepo billing.InvoiceRepository, invalidator LedgerInvalidator) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		invoiceRepo: invoiceRepo,
		invalidator: invalidator,
	}
}

// Create records a pending payment against an approved invoice
func (s *PaymentService) Create(ctx context.Context, req CreatePaymentRequest) (*PaymentResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, req.InvoiceID)
	if err != nil {
		return nil, err
	}
	if !invoice.IsApproved() {
		return nil, shared.NewDomainError("INVOICE_NOT_APPROVED", "Payments can only be recorded against approved invoices")
	}

	payment, err := billing.NewPayment(req.InvoiceID, req.Amount, req.Date, req.Reference)
	if err != nil {
		return nil, err
	}

	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}

	return ToPaymentResponse(payment), nil
}

// Get retrieves a payment by ID
func (s *PaymentService) Get(ctx context.Context, id uuid.UUID) (*PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToPaymentResponse(payment), nil
}

// List retrieves payments matching the filter, with pagination
func (s *PaymentService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[PaymentResponse], error) {
	payments, err := s.paymentRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.paymentRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		items = append(items, *ToPaymentResponse(&payments[i]))
	}

	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// ListByInvoice retrieves all payments for one invoice
func (s *PaymentService) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]PaymentResponse, error) {
	payments, err := s.paymentRepo.FindByInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	items := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		items = append(items, *ToPaymentResponse(&payments[i]))
	}
	return items, nil
}

// Approve approves a pending payment; the payment enters the ledger
// from this point on
func (s *PaymentService) Approve(ctx context.Context, id uuid.UUID) (*PaymentResponse, error) {
	return s.transition(ctx, id, (*billing.Payment).Approve)
}

// Reject rejects a pending payment
func (s *PaymentService) Reject(ctx context.Context, id uuid.UUID) (*PaymentResponse, error) {
	return s.transition(ctx, id, (*billing.Payment).Reject)
}

func (s *PaymentService) transition(ctx context.Context, id uuid.UUID, apply func(*billing.Payment) error) (*PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(payment); err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}

	// Status changes move the payment in or out of the ledger, so the
	// owning profile's cached summary is stale.
	if s.invalidator != nil {
		if invoice, err := s.invoiceRepo.FindByID(ctx, payment.InvoiceID); err == nil {
			s.invalidator.InvalidateProfile(ctx, invoice.ProfileID)
		}
	}

	return ToPaymentResponse(payment), nil
}
