package report

import (
	"bytes"
	"context"
	"encoding/csv"

	"github.com/shopspring/decimal"
)

var csvHeader = []string{
	"date", "type", "description", "invoice_number",
	"payable_amount", "paid_amount", "tds_amount_applied", "running_balance",
}

// ExportLedgerCSV renders the ledger for one profile as CSV, one row
// per entry plus a trailing summary row. Amounts are fixed to two
// decimal places.
func (s *LedgerService) ExportLedgerCSV(ctx context.Context, q LedgerQuery) ([]byte, error) {
	resp, err := s.GetLedgerByProfile(ctx, q)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	for _, e := range resp.Entries {
		row := []string{
			e.Date.Format("2006-01-02"),
			string(e.Type),
			e.Description,
			e.InvoiceNumber,
			fixedOrEmpty(e.PayableAmount),
			fixedOrEmpty(e.PaidAmount),
			e.TDSAmountApplied.StringFixed(2),
			e.RunningBalance.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	summary := resp.Summary
	if err := w.Write([]string{
		"", "summary", "", "",
		summary.TotalPayable.StringFixed(2),
		summary.TotalPaid.StringFixed(2),
		summary.TotalTDSDeducted.StringFixed(2),
		summary.OutstandingBalance.StringFixed(2),
	}); err != nil {
		return nil, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func fixedOrEmpty(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.StringFixed(2)
}
