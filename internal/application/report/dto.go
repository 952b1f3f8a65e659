package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paylog/backend/internal/domain/ledger"
)

// LedgerQuery narrows a per-profile ledger request. Dates and search
// filter the invoice set before the engine runs; EntryType filters the
// emitted entries afterwards.
type LedgerQuery struct {
	ProfileID uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	EntryType string // "invoice", "payment" or empty for both
	Search    string
}

// LedgerProfileResponse is one row of the profile overview report
type LedgerProfileResponse struct {
	ProfileID          uuid.UUID       `json:"profile_id"`
	ProfileName        string          `json:"profile_name"`
	VendorID           uuid.UUID       `json:"vendor_id"`
	VendorName         string          `json:"vendor_name"`
	TotalInvoiced      decimal.Decimal `json:"total_invoiced"`
	TotalPaid          decimal.Decimal `json:"total_paid"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	InvoiceCount       int             `json:"invoice_count"`
	UnpaidInvoiceCount int             `json:"unpaid_invoice_count"`
	OverdueCount       int             `json:"overdue_invoice_count"`
}

// LedgerResponse is the engine output for one profile plus the echoed
// filters
type LedgerResponse struct {
	ProfileID   uuid.UUID        `json:"profile_id"`
	ProfileName string           `json:"profile_name"`
	Entries     []ledger.Entry   `json:"entries"`
	Summary     ledger.Summary   `json:"summary"`
	Filters     LedgerFiltersDTO `json:"filters"`
}

// LedgerFiltersDTO echoes the applied filters back to the caller
type LedgerFiltersDTO struct {
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	EntryType string     `json:"entry_type,omitempty"`
	Search    string     `json:"search,omitempty"`
}
