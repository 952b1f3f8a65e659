package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	reportapp "github.com/paylog/backend/internal/application/report"
	"github.com/paylog/backend/internal/domain/billing"
	"github.com/paylog/backend/internal/domain/shared"
	"github.com/paylog/backend/internal/interfaces/http/dto"
)

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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindActive(ctx context.Context) ([]billing.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]billing.Profile, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindForLedger(ctx context.Context, q billing.InvoiceQuery) ([]billing.Invoice, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]billing.Payment, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindApprovedByInvoices(ctx context.Context, invoiceIDs []uuid.UUID) (map[uuid.UUID][]billing.Payment, error) {
	args := m.Called(ctx, invoiceIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
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

type ledgerRouterFixture struct {
	profileRepo *MockProfileRepository
	invoiceRepo *MockInvoiceRepository
	paymentRepo *MockPaymentRepository
	vendorRepo  *MockVendorRepository
	router      *gin.Engine
}

func newLedgerRouter() *ledgerRouterFixture {
	f := &ledgerRouterFixture{
		profileRepo: new(MockProfileRepository),
		invoiceRepo: new(MockInvoiceRepository),
		paymentRepo: new(MockPaymentRepository),
		vendorRepo:  new(MockVendorRepository),
	}
	svc := reportapp.NewLedgerService(f.profileRepo, f.invoiceRepo, f.paymentRepo, f.vendorRepo, nil)
	h := NewLedgerReportHandler(svc)

	f.router = gin.New()
	f.router.GET("/reports/ledger", h.ListProfiles)
	f.router.GET("/reports/ledger/:id", h.GetByProfile)
	f.router.GET("/reports/ledger/:id/export", h.Export)
	return f
}

func approvedInvoice(t *testing.T, profileID uuid.UUID, number string, amount decimal.Decimal, date time.Time) billing.Invoice {
	t.Helper()
	inv, err := billing.NewInvoice(profileID, number, amount)
	require.NoError(t, err)
	require.NoError(t, inv.SetDates(&date, nil))
	require.NoError(t, inv.Submit())
	require.NoError(t, inv.Approve())
	return *inv
}

func TestLedgerReportGetByProfile(t *testing.T) {
	f := newLedgerRouter()

	profileID := uuid.New()
	profile, err := billing.NewProfile(uuid.New(), uuid.New(), "Acme Monthly")
	require.NoError(t, err)
	profile.ID = profileID

	inv := approvedInvoice(t, profileID, "INV-001", decimal.NewFromInt(1000), time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))

	f.profileRepo.On("FindByID", mock.Anything, profileID).Return(profile, nil)
	f.invoiceRepo.On("FindForLedger", mock.Anything, mock.AnythingOfType("billing.InvoiceQuery")).Return([]billing.Invoice{inv}, nil)
	f.paymentRepo.On("FindApprovedByInvoices", mock.Anything, mock.Anything).Return(map[uuid.UUID][]billing.Payment{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/ledger/"+profileID.String(), nil)
	f.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]any)
	assert.Equal(t, "Acme Monthly", data["profile_name"])
	entries := data["entries"].([]any)
	require.Len(t, entries, 1)

	summary := data["summary"].(map[string]any)
	assert.Equal(t, "1000", summary["total_invoiced"])
}

func TestLedgerReportGetByProfileValidation(t *testing.T) {
	f := newLedgerRouter()

	t.Run("rejects malformed profile id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/reports/ledger/nope", nil)
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects bad entry_type", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/reports/ledger/"+uuid.NewString()+"?entry_type=refund", nil)
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects bad start_date", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/reports/ledger/"+uuid.NewString()+"?start_date=10-01-2024", nil)
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("returns 404 for unknown profile", func(t *testing.T) {
		id := uuid.New()
		f.profileRepo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/reports/ledger/"+id.String(), nil)
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestLedgerReportExport(t *testing.T) {
	f := newLedgerRouter()

	profileID := uuid.New()
	profile, err := billing.NewProfile(uuid.New(), uuid.New(), "Acme Monthly")
	require.NoError(t, err)
	profile.ID = profileID

	f.profileRepo.On("FindByID", mock.Anything, profileID).Return(profile, nil)
	f.invoiceRepo.On("FindForLedger", mock.Anything, mock.AnythingOfType("billing.InvoiceQuery")).Return([]billing.Invoice{}, nil)
	f.paymentRepo.On("FindApprovedByInvoices", mock.Anything, mock.Anything).Return(map[uuid.UUID][]billing.Payment{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/ledger/"+profileID.String()+"/export", nil)
	f.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Body.String(), "date,type")
}
