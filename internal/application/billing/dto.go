package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paylog/backend/internal/domain/billing"
)

// CreateProfileRequest represents a request to create a billing profile
type CreateProfileRequest struct {
	VendorID    uuid.UUID `json:"vendor_id" binding:"required"`
	EntityID    uuid.UUID `json:"entity_id" binding:"required"`
	CategoryID  uuid.UUID `json:"category_id"`
	Name        string    `json:"name" binding:"required,min=1,max=200"`
	Description string    `json:"description"`
}

// ProfileResponse represents a billing profile in API responses
type ProfileResponse struct {
	ID          uuid.UUID `json:"id"`
	VendorID    uuid.UUID `json:"vendor_id"`
	EntityID    uuid.UUID `json:"entity_id"`
	CategoryID  uuid.UUID `json:"category_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToProfileResponse converts a domain profile to its API representation
func ToProfileResponse(p *billing.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:          p.ID,
		VendorID:    p.VendorID,
		EntityID:    p.EntityID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Description: p.Description,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// CreateInvoiceRequest represents a request to create a draft invoice
type CreateInvoiceRequest struct {
	ProfileID     uuid.UUID        `json:"profile_id" binding:"required"`
	Number        string           `json:"number" binding:"required,min=1,max=50"`
	Description   string           `json:"description"`
	Amount        decimal.Decimal  `json:"amount" binding:"required"`
	InvoiceDate   *time.Time       `json:"invoice_date"`
	DueDate       *time.Time       `json:"due_date"`
	TDSApplicable bool             `json:"tds_applicable"`
	TDSPercentage *decimal.Decimal `json:"tds_percentage"`
}

// UpdateInvoiceRequest represents a request to edit a draft invoice
type UpdateInvoiceRequest struct {
	Description   *string          `json:"description"`
	Amount        *decimal.Decimal `json:"amount"`
	InvoiceDate   *time.Time       `json:"invoice_date"`
	DueDate       *time.Time       `json:"due_date"`
	TDSApplicable *bool            `json:"tds_applicable"`
	TDSPercentage *decimal.Decimal `json:"tds_percentage"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID            uuid.UUID       `json:"id"`
	ProfileID     uuid.UUID       `json:"profile_id"`
	Number        string          `json:"number"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	InvoiceDate   *time.Time      `json:"invoice_date"`
	DueDate       *time.Time      `json:"due_date"`
	TDSApplicable bool            `json:"tds_applicable"`
	TDSPercentage decimal.Decimal `json:"tds_percentage"`
	Status        string          `json:"status"`
	Version       int             `json:"version"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToInvoiceResponse converts a domain invoice to its API representation
func ToInvoiceResponse(i *billing.Invoice) *InvoiceResponse {
	return &InvoiceResponse{
		ID:            i.ID,
		ProfileID:     i.ProfileID,
		Number:        i.Number,
		Description:   i.Description,
		Amount:        i.Amount,
		InvoiceDate:   i.InvoiceDate,
		DueDate:       i.DueDate,
		TDSApplicable: i.TDSApplicable,
		TDSPercentage: i.TDSPercentage,
		Status:        string(i.Status),
		Version:       i.Version,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

// CreatePaymentRequest represents a request to record a payment
type CreatePaymentRequest struct {
	InvoiceID uuid.UUID       `json:"invoice_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Date      time.Time       `json:"date" binding:"required"`
	Reference string          `json:"reference" binding:"max=200"`
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID        uuid.UUID       `json:"id"`
	InvoiceID uuid.UUID       `json:"invoice_id"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	Reference string          `json:"reference"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToPaymentResponse converts a domain payment to its API representation
func ToPaymentResponse(p *billing.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:        p.ID,
		InvoiceID: p.InvoiceID,
		Amount:    p.Amount,
		Date:      p.Date,
		Reference: p.Reference,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// CreateCreditNoteRequest represents a request to issue a credit note
type CreateCreditNoteRequest struct {
	InvoiceID uuid.UUID       `json:"invoice_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Reason    string          `json:"reason" binding:"required"`
}

// CreditNoteResponse represents a credit note in API responses
type CreditNoteResponse struct {
	ID        uuid.UUID       `json:"id"`
	InvoiceID uuid.UUID       `json:"invoice_id"`
	Amount    decimal.Decimal `json:"amount"`
	Reason    string          `json:"reason"`
	Status    string          `json:"status"`
	AppliedAt *time.Time      `json:"applied_at"`
	CreatedAt time.Time       `json:"created_at"`
}

// ToCreditNoteResponse converts a domain credit note to its API representation
func ToCreditNoteResponse(c *billing.CreditNote) *CreditNoteResponse {
	return &CreditNoteResponse{
		ID:        c.ID,
		InvoiceID: c.InvoiceID,
		Amount:    c.Amount,
		Reason:    c.Reason,
		Status:    string(c.Status),
		AppliedAt: c.AppliedAt,
		CreatedAt: c.CreatedAt,
	}
}
