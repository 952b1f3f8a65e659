package report

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/paylog/backend/internal/domain/billing"
	"github.com/paylog/backend/internal/domain/ledger"
	"github.com/paylog/backend/internal/domain/partner"
	"github.com/paylog/backend/internal/domain/shared"
)

// Mock repositories

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.Profile, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]billing.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindActive(ctx context.Context) ([]billing.Profile, error) {
	args := m.Called(ctx)
	return args.Get(0).([]billing.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]billing.Profile, error) {
	args := m.Called(ctx, vendorID)
	return args.Get(0).([]billing.Profile), args.Error(1)
}

func (m *MockProfileRepository) Save(ctx context.Context, profile *billing.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProfileRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByNumber(ctx context.Context, number string) (*billing.Invoice, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.Invoice, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindForLedger(ctx context.Context, q billing.InvoiceQuery) ([]billing.Invoice, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Save(ctx context.Context, invoice *billing.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.Payment, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]billing.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]billing.Payment, error) {
	args := m.Called(ctx, invoiceID)
	return args.Get(0).([]billing.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindApprovedByInvoices(ctx context.Context, invoiceIDs []uuid.UUID) (map[uuid.UUID][]billing.Payment, error) {
	args := m.Called(ctx, invoiceIDs)
	return args.Get(0).(map[uuid.UUID][]billing.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Save(ctx context.Context, payment *billing.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPaymentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindByCode(ctx context.Context, code string) (*partner.Vendor, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Vendor, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindByStatus(ctx context.Context, status partner.VendorStatus, filter shared.Filter) ([]partner.Vendor, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).([]partner.Vendor), args.Error(1)
}

func (m *MockVendorRepository) ListNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockVendorRepository) Save(ctx context.Context, vendor *partner.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockVendorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVendorRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVendorRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

// memoryCache is a trivial SummaryCache for exercising the cache path
type memoryCache struct {
	store map[uuid.UUID]ledger.Summary
	hits  int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{store: make(map[uuid.UUID]ledger.Summary)}
}

func (c *memoryCache) Get(_ context.Context, id uuid.UUID) (*ledger.Summary, bool) {
	s, ok := c.store[id]
	if !ok {
		return nil, false
	}
	c.hits++
	return &s, true
}

func (c *memoryCache) Set(_ context.Context, id uuid.UUID, s ledger.Summary) {
	c.store[id] = s
}

func (c *memoryCache) Invalidate(_ context.Context, id uuid.UUID) {
	delete(c.store, id)
}

// Fixtures

type ledgerFixture struct {
	profile *billing.Profile
	invoice *billing.Invoice
	payment *billing.Payment
}

// newLedgerFixture builds a profile with one approved TDS invoice
// (1000 gross, 10%) fully paid with 900.
func newLedgerFixture(t *testing.T) ledgerFixture {
	t.Helper()

	profile, err := billing.NewProfile(uuid.New(), uuid.New(), "Acme / PayLog India")
	require.NoError(t, err)

	invoice, err := billing.NewInvoice(profile.ID, "INV-001", decimal.NewFromInt(1000))
	require.NoError(t, err)
	invDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, invoice.SetDates(&invDate, nil))
	require.NoError(t, invoice.SetTDS(true, decimal.NewFromInt(10)))
	require.NoError(t, invoice.Submit())
	require.NoError(t, invoice.Approve())

	payment, err := billing.NewPayment(invoice.ID, decimal.NewFromInt(900),
		time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), "UTR-1")
	require.NoError(t, err)
	require.NoError(t, payment.Approve())

	return ledgerFixture{profile: profile, invoice: invoice, payment: payment}
}

func newServiceWithFixture(t *testing.T, fx ledgerFixture, cache SummaryCache) *LedgerService {
	t.Helper()

	profileRepo := new(MockProfileRepository)
	invoiceRepo := new(MockInvoiceRepository)
	paymentRepo := new(MockPaymentRepository)
	vendorRepo := new(MockVendorRepository)

	profileRepo.On("FindByID", mock.Anything, fx.profile.ID).Return(fx.profile, nil)
	profileRepo.On("FindActive", mock.Anything).Return([]billing.Profile{*fx.profile}, nil)
	invoiceRepo.On("FindForLedger", mock.Anything, mock.AnythingOfType("billing.InvoiceQuery")).
		Return([]billing.Invoice{*fx.invoice}, nil)
	paymentRepo.On("FindApprovedByInvoices", mock.Anything, mock.Anything).
		Return(map[uuid.UUID][]billing.Payment{fx.invoice.ID: {*fx.payment}}, nil)
	vendorRepo.On("FindByID", mock.Anything, fx.profile.VendorID).Return(nil, shared.ErrNotFound)

	svc := NewLedgerService(profileRepo, invoiceRepo, paymentRepo, vendorRepo, cache)
	svc.now = func() time.Time { return time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC) }
	return svc
}

// Tests

func TestGetLedgerByProfile(t *testing.T) {
	fx := newLedgerFixture(t)
	svc := newServiceWithFixture(t, fx, nil)

	resp, err := svc.GetLedgerByProfile(context.Background(), LedgerQuery{ProfileID: fx.profile.ID})
	require.NoError(t, err)

	require.Len(t, resp.Entries, 2)
	assert.Equal(t, ledger.EntryTypeInvoice, resp.Entries[0].Type)
	assert.True(t, resp.Entries[0].TDSAmountApplied.Equal(decimal.NewFromInt(100)))
	assert.True(t, resp.Entries[0].RunningBalance.Equal(decimal.NewFromInt(900)))
	assert.True(t, resp.Entries[1].RunningBalance.IsZero())

	s := resp.Summary
	assert.True(t, s.TotalInvoiced.Equal(decimal.NewFromInt(1000)))
	assert.True(t, s.TotalTDSDeducted.Equal(decimal.NewFromInt(100)))
	assert.True(t, s.TotalPayable.Equal(decimal.NewFromInt(900)))
	assert.True(t, s.TotalPaid.Equal(decimal.NewFromInt(900)))
	assert.True(t, s.OutstandingBalance.IsZero())
	assert.Equal(t, 0, s.UnpaidInvoiceCount)
}

func TestGetLedgerByProfileEntryTypeFilter(t *testing.T) {
	fx := newLedgerFixture(t)
	svc := newServiceWithFixture(t, fx, nil)

	resp, err := svc.GetLedgerByProfile(context.Background(), LedgerQuery{
		ProfileID: fx.profile.ID,
		EntryType: "payment",
	})
	require.NoError(t, err)

	require.Len(t, resp.Entries, 1)
	assert.Equal(t, ledger.EntryTypePayment, resp.Entries[0].Type)
	// summary still reflects the full run
	assert.Equal(t, 1, resp.Summary.InvoiceCount)
	assert.Equal(t, "payment", resp.Filters.EntryType)
}

func TestGetLedgerByProfileUnknownProfile(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	id := uuid.New()
	profileRepo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	svc := NewLedgerService(profileRepo, new(MockInvoiceRepository), new(MockPaymentRepository), new(MockVendorRepository), nil)

	_, err := svc.GetLedgerByProfile(context.Background(), LedgerQuery{ProfileID: id})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGetLedgerProfiles(t *testing.T) {
	fx := newLedgerFixture(t)

	t.Run("computes summary per profile", func(t *testing.T) {
		svc := newServiceWithFixture(t, fx, nil)

		rows, err := svc.GetLedgerProfiles(context.Background())
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, fx.profile.ID, rows[0].ProfileID)
		assert.True(t, rows[0].OutstandingBalance.IsZero())
		assert.Equal(t, 1, rows[0].InvoiceCount)
	})

	t.Run("second request hits the cache", func(t *testing.T) {
		cache := newMemoryCache()
		svc := newServiceWithFixture(t, fx, cache)

		_, err := svc.GetLedgerProfiles(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, cache.hits)

		_, err = svc.GetLedgerProfiles(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, cache.hits)
	})

	t.Run("invalidation forces recompute", func(t *testing.T) {
		cache := newMemoryCache()
		svc := newServiceWithFixture(t, fx, cache)

		_, err := svc.GetLedgerProfiles(context.Background())
		require.NoError(t, err)
		svc.InvalidateProfile(context.Background(), fx.profile.ID)

		_, err = svc.GetLedgerProfiles(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, cache.hits)
	})
}

func TestExportLedgerCSV(t *testing.T) {
	fx := newLedgerFixture(t)
	svc := newServiceWithFixture(t, fx, nil)

	data, err := svc.ExportLedgerCSV(context.Background(), LedgerQuery{ProfileID: fx.profile.ID})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4) // header + 2 entries + summary row

	assert.Equal(t, strings.Join(csvHeader, ","), lines[0])
	assert.Contains(t, lines[1], "2024-01-01,invoice")
	assert.Contains(t, lines[1], "900.00")
	assert.Contains(t, lines[2], "2024-01-15,payment")
	assert.Contains(t, lines[3], "summary")
	assert.Contains(t, lines[3], "0.00")
}
