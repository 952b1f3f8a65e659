package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paylog/backend/internal/domain/ledger"
	"github.com/paylog/backend/internal/domain/shared"
)

// PaymentStatus represents the lifecycle state of a payment
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// Payment represents money remitted against one invoice. Only
// approved payments participate in the ledger; the repository query
// boundary enforces that.
type Payment struct {
	shared.BaseAggregateRoot
	InvoiceID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Date      time.Time       `gorm:"type:date;not null;index"`
	Reference string          `gorm:"type:varchar(200)"`
	Status    PaymentStatus   `gorm:"type:varchar(20);not null;default:'pending';index"`
}

// TableName returns the table name for GORM
func (Payment) TableName() string {
	return "payments"
}

// NewPayment records a pending payment against an invoice
func NewPayment(invoiceID uuid.UUID, amount decimal.Decimal, date time.Time, reference string) (*Payment, error) {
	if invoiceID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INVOICE", "Payment requires an invoice")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if date.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Payment date is required")
	}
	if len(reference) > 200 {
		return nil, shared.NewDomainError("INVALID_REFERENCE", "Payment reference cannot exceed 200 characters")
	}

	return &Payment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		InvoiceID:         invoiceID,
		Amount:            amount,
		Date:              date,
		Reference:         reference,
		Status:            PaymentStatusPending,
	}, nil
}

// Approve moves a pending payment to approved
func (p *Payment) Approve() error {
	if p.Status != PaymentStatusPending {
		return shared.NewDomainError("INVALID_TRANSITION", "Only pending payments can be approved")
	}

	p.Status = PaymentStatusApproved
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// Reject moves a pending payment to rejected
func (p *Payment) Reject() error {
	if p.Status != PaymentStatusPending {
		return shared.NewDomainError("INVALID_TRANSITION", "Only pending payments can be rejected")
	}

	p.Status = PaymentStatusRejected
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// IsApproved returns true if the payment is approved
func (p *Payment) IsApproved() bool {
	return p.Status == PaymentStatusApproved
}

// ToLedgerRecord converts the payment to the snapshot the ledger
// engine reads. Callers must only convert approved payments.
func (p *Payment) ToLedgerRecord() ledger.PaymentRecord {
	return ledger.PaymentRecord{
		ID:        p.ID.String(),
		InvoiceID: p.InvoiceID.String(),
		Reference: p.Reference,
		Amount:    p.Amount,
		Date:      p.Date,
	}
}
