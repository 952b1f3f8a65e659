package partner

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/paylog/backend/internal/domain/partner"
	"github.com/paylog/backend/internal/domain/shared"
)

// MockVendorRepository is a mock implementation of VendorRepository
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

func TestVendorServiceCreate(t *testing.T) {
	t.Run("creates vendor with TDS defaults", func(t *testing.T) {
		repo := new(MockVendorRepository)
		service := NewVendorService(repo)

		repo.On("ExistsByCode", mock.Anything, "VEN-001").Return(false, nil)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*partner.Vendor")).Return(nil)

		pct := decimal.NewFromInt(10)
		resp, err := service.Create(context.Background(), CreateVendorRequest{
			Code:          "VEN-001",
			Name:          "Acme Supplies",
			TDSApplicable: true,
			TDSPercentage: &pct,
		})

		require.NoError(t, err)
		assert.Equal(t, "VEN-001", resp.Code)
		assert.True(t, resp.TDSApplicable)
		assert.True(t, resp.TDSPercentage.Equal(pct))
		repo.AssertExpectations(t)
	})

	t.Run("rejects duplicate code", func(t *testing.T) {
		repo := new(MockVendorRepository)
		service := NewVendorService(repo)

		repo.On("ExistsByCode", mock.Anything, "VEN-001").Return(true, nil)

		_, err := service.Create(context.Background(), CreateVendorRequest{
			Code: "VEN-001",
			Name: "Acme Supplies",
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestVendorServiceUpdate(t *testing.T) {
	t.Run("partial update keeps unspecified fields", func(t *testing.T) {
		repo := new(MockVendorRepository)
		service := NewVendorService(repo)

		vendor, err := partner.NewVendor("VEN-001", "Acme")
		require.NoError(t, err)
		require.NoError(t, vendor.SetContact("Priya", "9876543210", "priya@acme.example"))

		repo.On("FindByID", mock.Anything, vendor.ID).Return(vendor, nil)
		repo.On("Save", mock.Anything, vendor).Return(nil)

		phone := "9123456789"
		resp, err := service.Update(context.Background(), vendor.ID, UpdateVendorRequest{Phone: &phone})

		require.NoError(t, err)
		assert.Equal(t, "9123456789", resp.Phone)
		assert.Equal(t, "Priya", resp.ContactName)
		assert.Equal(t, "priya@acme.example", resp.Email)
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := new(MockVendorRepository)
		service := NewVendorService(repo)

		id := uuid.New()
		repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		_, err := service.Update(context.Background(), id, UpdateVendorRequest{})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestVendorServiceCheckDuplicateName(t *testing.T) {
	names := []string{"Acme Supplies", "Globex Traders", "ACME SUPPLIES PVT LTD"}

	t.Run("flags near-identical name", func(t *testing.T) {
		repo := new(MockVendorRepository)
		service := NewVendorService(repo)
		repo.On("ListNames", mock.Anything).Return(names, nil)

		resp, err := service.CheckDuplicateName(context.Background(), CheckDuplicateRequest{Name: "acme supplies"})

		require.NoError(t, err)
		assert.True(t, resp.IsLikelyDuplicate)
		require.NotEmpty(t, resp.Matches)
		assert.Equal(t, "Acme Supplies", resp.Matches[0].Value)
		assert.Equal(t, 1.0, resp.Matches[0].Score)
	})

	t.Run("clean name passes", func(t *testing.T) {
		repo := new(MockVendorRepository)
		service := NewVendorService(repo)
		repo.On("ListNames", mock.Anything).Return(names, nil)

		resp, err := service.CheckDuplicateName(context.Background(), CheckDuplicateRequest{Name: "Initech Solutions"})

		require.NoError(t, err)
		assert.False(t, resp.IsLikelyDuplicate)
		assert.Empty(t, resp.Matches)
	})

	t.Run("honors custom threshold", func(t *testing.T) {
		repo := new(MockVendorRepository)
		service := NewVendorService(repo)
		repo.On("ListNames", mock.Anything).Return(names, nil)

		loose := 0.3
		resp, err := service.CheckDuplicateName(context.Background(), CheckDuplicateRequest{
			Name:      "Acme Traders",
			Threshold: &loose,
		})

		require.NoError(t, err)
		assert.Equal(t, loose, resp.Threshold)
		assert.True(t, resp.IsLikelyDuplicate)
	})
}

func TestVendorServiceList(t *testing.T) {
	repo := new(MockVendorRepository)
	service := NewVendorService(repo)

	v1, err := partner.NewVendor("VEN-001", "Acme")
	require.NoError(t, err)
	v2, err := partner.NewVendor("VEN-002", "Globex")
	require.NoError(t, err)

	filter := shared.DefaultFilter()
	repo.On("FindAll", mock.Anything, filter).Return([]partner.Vendor{*v1, *v2}, nil)
	repo.On("Count", mock.Anything, filter).Return(int64(2), nil)

	result, err := service.List(context.Background(), filter)

	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, int64(2), result.Total)
	assert.Equal(t, 1, result.TotalPages)
}
