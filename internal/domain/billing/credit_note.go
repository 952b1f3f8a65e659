package billing

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paylog/backend/internal/domain/shared"
)

// CreditNoteStatus represents the lifecycle state of a credit note
type CreditNoteStatus string

const (
	CreditNoteStatusIssued  CreditNoteStatus = "issued"
	CreditNoteStatusApplied CreditNoteStatus = "applied"
	CreditNoteStatusVoided  CreditNoteStatus = "voided"
)

// CreditNote is a negative adjustment scoped to one invoice, used to
// settle approved invoices that can no longer be cancelled. Credit
// notes do not enter the ledger; they adjust the invoice out of band.
type CreditNote struct {
	shared.BaseAggregateRoot
	InvoiceID uuid.UUID        `gorm:"type:uuid;not null;index"`
	Amount    decimal.Decimal  `gorm:"type:decimal(18,2);not null"`
	Reason    string           `gorm:"type:text;not null"`
	Status    CreditNoteStatus `gorm:"type:varchar(20);not null;default:'issued'"`
	AppliedAt *time.Time
}

// TableName returns the table name for GORM
func (CreditNote) TableName() string {
	return "credit_notes"
}

// NewCreditNote issues a credit note against an invoice
func NewCreditNote(invoiceID uuid.UUID, amount decimal.Decimal, reason string) (*CreditNote, error) {
	if invoiceID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INVOICE", "Credit note requires an invoice")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Credit note amount must be positive")
	}
	if strings.TrimSpace(reason) == "" {
		return nil, shared.NewDomainError("INVALID_REASON", "Credit note requires a reason")
	}

	return &CreditNote{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		InvoiceID:         invoiceID,
		Amount:            amount,
		Reason:            strings.TrimSpace(reason),
		Status:            CreditNoteStatusIssued,
	}, nil
}

// Apply marks the credit note as applied to its invoice
func (c *CreditNote) Apply() error {
	if c.Status != CreditNoteStatusIssued {
		return shared.NewDomainError("INVALID_TRANSITION", "Only issued credit notes can be applied")
	}

	now := time.Now()
	c.Status = CreditNoteStatusApplied
	c.AppliedAt = &now
	c.UpdatedAt = now
	c.IncrementVersion()

	return nil
}

// Void voids an issued credit note
func (c *CreditNote) Void() error {
	if c.Status != CreditNoteStatusIssued {
		return shared.NewDomainError("INVALID_TRANSITION", "Only issued credit notes can be voided")
	}

	c.Status = CreditNoteStatusVoided
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}
