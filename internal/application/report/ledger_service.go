// Package report assembles the ledger reports served to the reporting
// UI: the profile overview and the per-profile running-balance ledger.
package report

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/paylog/backend/internal/domain/billing"
	"github.com/paylog/backend/internal/domain/ledger"
	"github.com/paylog/backend/internal/domain/partner"
)

// SummaryCache caches per-profile ledger summaries for the profile
// overview. A miss is not an error; the service recomputes and
// repopulates. Implementations must tolerate concurrent access.
type SummaryCache interface {
	Get(ctx context.Context, profileID uuid.UUID) (*ledger.Summary, bool)
	Set(ctx context.Context, profileID uuid.UUID, summary ledger.Summary)
	Invalidate(ctx context.Context, profileID uuid.UUID)
}

// LedgerService runs the reconciliation engine over persisted
// invoices and payments
type LedgerService struct {
	profileRepo billing.ProfileRepository
	invoiceRepo billing.InvoiceRepository
	paymentRepo billing.PaymentRepository
	vendorRepo  partner.VendorRepository
	cache       SummaryCache
	now         func() time.Time
}

// NewLedgerService creates a new LedgerService. cache may be nil;
// summaries are then recomputed on every overview request.
func NewLedgerService(
	profileRepo billing.ProfileRepository,
	invoiceRepo billing.InvoiceRepository,
	paymentRepo billing.PaymentRepository,
	vendorRepo partner.VendorRepository,
	cache SummaryCache,
) *LedgerService {
	return &LedgerService{
		profileRepo: profileRepo,
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		vendorRepo:  vendorRepo,
		cache:       cache,
		now:         time.Now,
	}
}

// GetLedgerProfiles returns every active billing profile with its
// ledger summary stats, running the engine once per profile
func (s *LedgerService) GetLedgerProfiles(ctx context.Context) ([]LedgerProfileResponse, error) {
	profiles, err := s.profileRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]LedgerProfileResponse, 0, len(profiles))
	for i := range profiles {
		profile := &profiles[i]

		summary, err := s.profileSummary(ctx, profile.ID)
		if err != nil {
			return nil, err
		}

		row := LedgerProfileResponse{
			ProfileID:          profile.ID,
			ProfileName:        profile.Name,
			VendorID:           profile.VendorID,
			TotalInvoiced:      summary.TotalInvoiced,
			TotalPaid:          summary.TotalPaid,
			OutstandingBalance: summary.OutstandingBalance,
			InvoiceCount:       summary.InvoiceCount,
			UnpaidInvoiceCount: summary.UnpaidInvoiceCount,
			OverdueCount:       summary.OverdueInvoiceCount,
		}
		if vendor, err := s.vendorRepo.FindByID(ctx, profile.VendorID); err == nil {
			row.VendorName = vendor.Name
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// GetLedgerByProfile builds the full ledger for one profile. Date and
// search filters narrow the invoice set before the engine runs, so
// running balances reflect only the filtered window; the entry-type
// filter is applied to the emitted entries.
func (s *LedgerService) GetLedgerByProfile(ctx context.Context, q LedgerQuery) (*LedgerResponse, error) {
	profile, err := s.profileRepo.FindByID(ctx, q.ProfileID)
	if err != nil {
		return nil, err
	}

	result, err := s.runEngine(ctx, billing.InvoiceQuery{
		ProfileID: q.ProfileID,
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
		Search:    q.Search,
	})
	if err != nil {
		return nil, err
	}

	entries := result.Entries
	if q.EntryType != "" {
		filtered := make([]ledger.Entry, 0, len(entries))
		for _, e := range entries {
			if string(e.Type) == q.EntryType {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	return &LedgerResponse{
		ProfileID:   profile.ID,
		ProfileName: profile.Name,
		Entries:     entries,
		Summary:     result.Summary,
		Filters: LedgerFiltersDTO{
			StartDate: q.StartDate,
			EndDate:   q.EndDate,
			EntryType: q.EntryType,
			Search:    q.Search,
		},
	}, nil
}

// InvalidateProfile drops the cached summary after invoice or payment
// mutations touching the profile
func (s *LedgerService) InvalidateProfile(ctx context.Context, profileID uuid.UUID) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, profileID)
	}
}

func (s *LedgerService) profileSummary(ctx context.Context, profileID uuid.UUID) (ledger.Summary, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, profileID); ok {
			return *cached, nil
		}
	}

	result, err := s.runEngine(ctx, billing.InvoiceQuery{ProfileID: profileID})
	if err != nil {
		return ledger.Summary{}, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, profileID, result.Summary)
	}
	return result.Summary, nil
}

func (s *LedgerService) runEngine(ctx context.Context, q billing.InvoiceQuery) (ledger.Result, error) {
	invoices, err := s.invoiceRepo.FindForLedger(ctx, q)
	if err != nil {
		return ledger.Result{}, err
	}

	ids := make([]uuid.UUID, 0, len(invoices))
	for i := range invoices {
		ids = append(ids, invoices[i].ID)
	}

	paymentsByInvoice, err := s.paymentRepo.FindApprovedByInvoices(ctx, ids)
	if err != nil {
		return ledger.Result{}, err
	}

	records := make([]ledger.InvoiceRecord, 0, len(invoices))
	grouped := make(map[string][]ledger.PaymentRecord, len(paymentsByInvoice))
	for i := range invoices {
		inv := &invoices[i]
		records = append(records, inv.ToLedgerRecord())
		for _, p := range paymentsByInvoice[inv.ID] {
			grouped[inv.ID.String()] = append(grouped[inv.ID.String()], p.ToLedgerRecord())
		}
	}

	return ledger.BuildLedger(records, grouped, s.now()), nil
}
