package billing

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paylog/backend/internal/domain/ledger"
	"github.com/paylog/backend/internal/domain/shared"
)

// InvoiceStatus represents the lifecycle state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSubmitted InvoiceStatus = "submitted"
	InvoiceStatusApproved  InvoiceStatus = "approved"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

var hundred = decimal.NewFromInt(100)

// Invoice represents a vendor invoice raised against a billing
// profile. The amount is the gross value; TDS is deducted at ledger
// time, never stored back onto the invoice.
type Invoice struct {
	shared.BaseAggregateRoot
	ProfileID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Number        string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Description   string          `gorm:"type:text"`
	Amount        decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	InvoiceDate   *time.Time      `gorm:"type:date;index"`
	DueDate       *time.Time      `gorm:"type:date"`
	TDSApplicable bool            `gorm:"not null;default:false"`
	TDSPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	Status        InvoiceStatus   `gorm:"type:varchar(20);not null;default:'draft';index"`
}

// TableName returns the table name for GORM
func (Invoice) TableName() string {
	return "invoices"
}

// NewInvoice creates a new draft invoice
func NewInvoice(profileID uuid.UUID, number string, amount decimal.Decimal) (*Invoice, error) {
	if profileID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROFILE", "Invoice requires a billing profile")
	}
	if err := validateInvoiceNumber(number); err != nil {
		return nil, err
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Invoice amount cannot be negative")
	}

	return &Invoice{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ProfileID:         profileID,
		Number:            strings.ToUpper(strings.TrimSpace(number)),
		Amount:            amount,
		TDSPercentage:     decimal.Zero,
		Status:            InvoiceStatusDraft,
	}, nil
}

// UpdateDetails updates amount and description; only drafts are editable
func (i *Invoice) UpdateDetails(amount decimal.Decimal, description string) error {
	if i.Status != InvoiceStatusDraft {
		return shared.NewDomainError("NOT_EDITABLE", "Only draft invoices can be edited")
	}
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Invoice amount cannot be negative")
	}

	i.Amount = amount
	i.Description = description
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

// SetDates sets the invoice and due dates. The invoice date may stay
// nil; such invoices are excluded from the chronological ledger until
// dated.
func (i *Invoice) SetDates(invoiceDate, dueDate *time.Time) error {
	if i.Status != InvoiceStatusDraft {
		return shared.NewDomainError("NOT_EDITABLE", "Only draft invoices can be edited")
	}
	if invoiceDate != nil && dueDate != nil && dueDate.Before(*invoiceDate) {
		return shared.NewDomainError("INVALID_DATES", "Due date cannot precede the invoice date")
	}

	i.InvoiceDate = invoiceDate
	i.DueDate = dueDate
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

// SetTDS sets the invoice's TDS treatment
func (i *Invoice) SetTDS(applicable bool, percentage decimal.Decimal) error {
	if i.Status != InvoiceStatusDraft {
		return shared.NewDomainError("NOT_EDITABLE", "Only draft invoices can be edited")
	}
	if applicable && (percentage.IsNegative() || percentage.GreaterThan(hundred)) {
		return shared.NewDomainError("INVALID_TDS_PERCENTAGE", "TDS percentage must be between 0 and 100")
	}

	i.TDSApplicable = applicable
	if applicable {
		i.TDSPercentage = percentage
	} else {
		i.TDSPercentage = decimal.Zero
	}
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

// Submit moves a draft invoice to submitted
func (i *Invoice) Submit() error {
	if i.Status != InvoiceStatusDraft {
		return shared.NewDomainError("INVALID_TRANSITION", "Only draft invoices can be submitted")
	}

	i.Status = InvoiceStatusSubmitted
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

// Approve moves a submitted invoice to approved
func (i *Invoice) Approve() error {
	if i.Status != InvoiceStatusSubmitted {
		return shared.NewDomainError("INVALID_TRANSITION", "Only submitted invoices can be approved")
	}

	i.Status = InvoiceStatusApproved
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

// Cancel cancels a draft or submitted invoice. Approved invoices
// cannot be cancelled; they are settled through credit notes instead.
func (i *Invoice) Cancel() error {
	switch i.Status {
	case InvoiceStatusDraft, InvoiceStatusSubmitted:
	case InvoiceStatusApproved:
		return shared.NewDomainError("INVALID_TRANSITION", "Approved invoices cannot be cancelled, issue a credit note")
	default:
		return shared.NewDomainError("INVALID_TRANSITION", "Invoice is already cancelled")
	}

	i.Status = InvoiceStatusCancelled
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

// IsApproved returns true if the invoice is approved
func (i *Invoice) IsApproved() bool {
	return i.Status == InvoiceStatusApproved
}

// ToLedgerRecord converts the invoice to the snapshot the ledger
// engine reads
func (i *Invoice) ToLedgerRecord() ledger.InvoiceRecord {
	description := i.Description
	if description == "" {
		description = "Invoice " + i.Number
	}
	return ledger.InvoiceRecord{
		ID:            i.ID.String(),
		Number:        i.Number,
		Description:   description,
		Amount:        i.Amount,
		Date:          i.InvoiceDate,
		DueDate:       i.DueDate,
		TDSApplicable: i.TDSApplicable,
		TDSPercentage: i.TDSPercentage,
	}
}

func validateInvoiceNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return shared.NewDomainError("INVALID_NUMBER", "Invoice number cannot be empty")
	}
	if len(number) > 50 {
		return shared.NewDomainError("INVALID_NUMBER", "Invoice number cannot exceed 50 characters")
	}
	return nil
}
