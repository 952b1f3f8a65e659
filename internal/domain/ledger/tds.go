// Package ledger implements the reconciliation core for vendor billing
// profiles: TDS (tax deducted at source) calculation and the
// chronological running-balance ledger built from invoices and their
// approved payments. Everything in this package is a pure computation
// over snapshots handed in by the application layer.
package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/paylog/backend/internal/domain/shared"
)

var hundred = decimal.NewFromInt(100)

// TDSResult holds the outcome of a TDS calculation. The invariant
// PayableAmount + TDSAmount == gross holds exactly because the payable
// side is always derived from the (possibly rounded) TDS amount.
type TDSResult struct {
	TDSAmount     decimal.Decimal `json:"tds_amount"`
	PayableAmount decimal.Decimal `json:"payable_amount"`
}

// CalculateTDS computes the withheld and net payable amounts for a
// gross invoice amount at the given withholding percentage.
//
// gross must be non-negative and percentage must lie in [0,100];
// out-of-range values return shared.ErrInvalidArgument rather than
// being clamped. When roundToWhole is set the TDS amount is rounded
// half-up to the nearest whole currency unit before the payable side
// is derived.
func CalculateTDS(gross, percentage decimal.Decimal, roundToWhole bool) (TDSResult, error) {
	if gross.IsNegative() {
		return TDSResult{}, fmt.Errorf("%w: gross amount must not be negative, got %s",
			shared.ErrInvalidArgument, gross)
	}
	if percentage.IsNegative() || percentage.GreaterThan(hundred) {
		return TDSResult{}, fmt.Errorf("%w: tds percentage must be between 0 and 100, got %s",
			shared.ErrInvalidArgument, percentage)
	}

	tds := gross.Mul(percentage).Div(hundred)
	if roundToWhole {
		tds = tds.Round(0)
	}

	return TDSResult{
		TDSAmount:     tds,
		PayableAmount: gross.Sub(tds),
	}, nil
}
