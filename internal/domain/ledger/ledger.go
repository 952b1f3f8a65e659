package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// EntryType discriminates the two kinds of ledger entries.
type EntryType string

const (
	EntryTypeInvoice EntryType = "invoice"
	EntryTypePayment EntryType = "payment"
)

// settlementEpsilon absorbs sub-paisa rounding when deciding whether
// an invoice is fully paid.
var settlementEpsilon = decimal.New(1, -2) // 0.01

// InvoiceRecord is the invoice snapshot the engine reads. Invoices
// without a Date cannot be placed on a chronological ledger and are
// skipped, not rejected.
type InvoiceRecord struct {
	ID            string
	Number        string
	Description   string
	Amount        decimal.Decimal
	Date          *time.Time
	DueDate       *time.Time
	TDSApplicable bool
	TDSPercentage decimal.Decimal
}

// PaymentRecord is an approved payment snapshot. The engine assumes
// pending and rejected payments were filtered out at the query
// boundary.
type PaymentRecord struct {
	ID        string
	InvoiceID string
	Reference string
	Amount    decimal.Decimal
	Date      time.Time
}

// Entry is one row of the computed ledger. Entries are derived view
// data, recomputed on every request and never persisted.
//
// PayableAmount is set only on invoice entries and PaidAmount only on
// payment entries; the other side is nil.
type Entry struct {
	ID               string           `json:"id"`
	Type             EntryType        `json:"type"`
	Date             time.Time        `json:"date"`
	Description      string           `json:"description"`
	InvoiceID        string           `json:"invoice_id"`
	InvoiceNumber    string           `json:"invoice_number"`
	PayableAmount    *decimal.Decimal `json:"payable_amount"`
	PaidAmount       *decimal.Decimal `json:"paid_amount"`
	TDSAmountApplied decimal.Decimal  `json:"tds_amount_applied"`
	RunningBalance   decimal.Decimal  `json:"running_balance"`
}

// Summary aggregates one ledger run. TotalPayable and
// OutstandingBalance are derived from the other totals so the
// identities
//
//	TotalPayable       == TotalInvoiced - TotalTDSDeducted
//	OutstandingBalance == TotalPayable - TotalPaid
//
// hold by construction.
type Summary struct {
	TotalInvoiced       decimal.Decimal `json:"total_invoiced"`
	TotalTDSDeducted    decimal.Decimal `json:"total_tds_deducted"`
	TotalPayable        decimal.Decimal `json:"total_payable"`
	TotalPaid           decimal.Decimal `json:"total_paid"`
	OutstandingBalance  decimal.Decimal `json:"outstanding_balance"`
	InvoiceCount        int             `json:"invoice_count"`
	PaymentCount        int             `json:"payment_count"`
	UnpaidInvoiceCount  int             `json:"unpaid_invoice_count"`
	OverdueInvoiceCount int             `json:"overdue_invoice_count"`
}

// Result is the engine output for one billing profile.
type Result struct {
	Entries []Entry `json:"entries"`
	Summary Summary `json:"summary"`
}

// event is a pending ledger row before the balance walk.
type event struct {
	entryType EntryType
	date      time.Time
	invoice   *InvoiceRecord
	payment   *PaymentRecord
}

// BuildLedger merges the invoices and their approved payments into a
// single sequence sorted ascending by date and walks it once,
// maintaining a running balance that starts at 0. At equal dates
// invoice events precede payment events, and payments keep the
// per-invoice order they were supplied in; this ordering is what makes
// running balances deterministic.
//
// asOf is the reference instant for the overdue check. Payments whose
// InvoiceID matches no invoice in the set are dropped silently; an
// empty invoice set yields empty entries and an all-zero summary.
// Over-payment driving the balance negative is valid output.
func BuildLedger(invoices []InvoiceRecord, paymentsByInvoice map[string][]PaymentRecord, asOf time.Time) Result {
	events := make([]event, 0, len(invoices))
	for i := range invoices {
		inv := &invoices[i]
		if inv.Date == nil {
			continue
		}
		events = append(events, event{entryType: EntryTypeInvoice, date: *inv.Date, invoice: inv})
	}

	// Payments enumerate after invoices and in invoice iteration
	// order, so the stable sort below preserves the tie-break.
	for i := range invoices {
		group := paymentsByInvoice[invoices[i].ID]
		for j := range group {
			p := &group[j]
			events = append(events, event{entryType: EntryTypePayment, date: p.Date, payment: p})
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].date.Before(events[j].date)
	})

	var (
		entries        = make([]Entry, 0, len(events))
		runningBalance = decimal.Zero
		summary        Summary
		seenInvoices   = make(map[string]bool, len(invoices))
		payableByID    = make(map[string]decimal.Decimal, len(invoices))
	)

	for _, ev := range events {
		switch ev.entryType {
		case EntryTypeInvoice:
			inv := ev.invoice
			tds := applicableTDS(inv)
			payable := tds.PayableAmount
			runningBalance = runningBalance.Add(payable)
			payableByID[inv.ID] = payable

			if !seenInvoices[inv.ID] {
				seenInvoices[inv.ID] = true
				summary.TotalInvoiced = summary.TotalInvoiced.Add(inv.Amount)
				summary.TotalTDSDeducted = summary.TotalTDSDeducted.Add(tds.TDSAmount)
				summary.InvoiceCount++
			}

			entries = append(entries, Entry{
				ID:               "invoice-" + inv.ID,
				Type:             EntryTypeInvoice,
				Date:             *inv.Date,
				Description:      inv.Description,
				InvoiceID:        inv.ID,
				InvoiceNumber:    inv.Number,
				PayableAmount:    &payable,
				TDSAmountApplied: tds.TDSAmount,
				RunningBalance:   runningBalance,
			})

		case EntryTypePayment:
			p := ev.payment
			runningBalance = runningBalance.Sub(p.Amount)
			summary.TotalPaid = summary.TotalPaid.Add(p.Amount)
			summary.PaymentCount++

			paid := p.Amount
			entries = append(entries, Entry{
				ID:             "payment-" + p.ID,
				Type:           EntryTypePayment,
				Date:           p.Date,
				Description:    p.Reference,
				InvoiceID:      p.InvoiceID,
				PaidAmount:     &paid,
				RunningBalance: runningBalance,
			})
		}
	}

	summary.TotalPayable = summary.TotalInvoiced.Sub(summary.TotalTDSDeducted)
	summary.OutstandingBalance = summary.TotalPayable.Sub(summary.TotalPaid)

	// Second pass over the full invoice set for the unpaid and
	// overdue counts. Dateless invoices participate here even though
	// they emit no entry.
	for i := range invoices {
		inv := &invoices[i]
		payable, ok := payableByID[inv.ID]
		if !ok {
			payable = applicableTDS(inv).PayableAmount
		}

		paid := decimal.Zero
		for _, p := range paymentsByInvoice[inv.ID] {
			paid = paid.Add(p.Amount)
		}

		if payable.Sub(paid).GreaterThan(settlementEpsilon) {
			summary.UnpaidInvoiceCount++
			if inv.DueDate != nil && inv.DueDate.Before(asOf) {
				summary.OverdueInvoiceCount++
			}
		}
	}

	return Result{Entries: entries, Summary: summary}
}

// applicableTDS resolves an invoice's TDS split. Invoices not flagged
// TDS-applicable contribute zero withholding regardless of any stray
// percentage; a snapshot that fails the calculator's range checks is
// treated the same way rather than aborting the whole ledger.
func applicableTDS(inv *InvoiceRecord) TDSResult {
	if !inv.TDSApplicable {
		return TDSResult{TDSAmount: decimal.Zero, PayableAmount: inv.Amount}
	}
	res, err := CalculateTDS(inv.Amount, inv.TDSPercentage, false)
	if err != nil {
		return TDSResult{TDSAmount: decimal.Zero, PayableAmount: inv.Amount}
	}
	return res
}
