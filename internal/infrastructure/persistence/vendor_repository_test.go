package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/paylog/backend/internal/domain/partner"
	"github.com/paylog/backend/internal/domain/shared"
)

// newMockVendorRepository creates a GormVendorRepository with a mocked SQL connection
func newMockVendorRepository(t *testing.T) (*GormVendorRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormVendorRepository(gormDB), mock, mockDB
}

func vendorRows(id uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "code", "name", "status", "tds_applicable", "tds_percentage"}).
		AddRow(id, "ACME-01", "Acme Corp", "active", true, decimal.NewFromInt(2))
}

func TestNewGormVendorRepository(t *testing.T) {
	t.Run("creates repository with valid DB", func(t *testing.T) {
		repo, _, mockDB := newMockVendorRepository(t)
		defer mockDB.Close()

		assert.NotNil(t, repo)
		assert.NotNil(t, repo.db)
	})
}

func TestGormVendorRepository_FindByID(t *testing.T) {
	t.Run("finds existing vendor", func(t *testing.T) {
		repo, mock, mockDB := newMockVendorRepository(t)
		defer mockDB.Close()

		vendorID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "vendors" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(vendorID, 1).
			WillReturnRows(vendorRows(vendorID))

		vendor, err := repo.FindByID(context.Background(), vendorID)

		assert.NoError(t, err)
		assert.NotNil(t, vendor)
		assert.Equal(t, vendorID, vendor.ID)
		assert.Equal(t, "ACME-01", vendor.Code)
		assert.True(t, vendor.TDSApplicable)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns error for non-existent vendor", func(t *testing.T) {
		repo, mock, mockDB := newMockVendorRepository(t)
		defer mockDB.Close()

		vendorID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "vendors" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(vendorID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		vendor, err := repo.FindByID(context.Background(), vendorID)

		assert.Error(t, err)
		assert.Nil(t, vendor)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormVendorRepository_FindByCode(t *testing.T) {
	t.Run("uppercases the code before lookup", func(t *testing.T) {
		repo, mock, mockDB := newMockVendorRepository(t)
		defer mockDB.Close()

		vendorID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "vendors" WHERE code = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("ACME-01", 1).
			WillReturnRows(vendorRows(vendorID))

		vendor, err := repo.FindByCode(context.Background(), "acme-01")

		assert.NoError(t, err)
		assert.NotNil(t, vendor)
		assert.Equal(t, "ACME-01", vendor.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormVendorRepository_FindAll(t *testing.T) {
	t.Run("applies search across name, code, phone and email", func(t *testing.T) {
		repo, mock, mockDB := newMockVendorRepository(t)
		defer mockDB.Close()

		filter := shared.DefaultFilter()
		filter.Search = "acme"

		mock.ExpectQuery(`SELECT \* FROM "vendors" WHERE .?name ILIKE \$1 OR code ILIKE \$2 OR phone ILIKE \$3 OR email ILIKE \$4.? ORDER BY created_at DESC LIMIT .*`).
			WithArgs("%acme%", "%acme%", "%acme%", "%acme%", 20).
			WillReturnRows(vendorRows(uuid.New()))

		vendors, err := repo.FindAll(context.Background(), filter)

		assert.NoError(t, err)
		assert.Len(t, vendors, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("falls back to created_at ordering for unsafe order columns", func(t *testing.T) {
		repo, mock, mockDB := newMockVendorRepository(t)
		defer mockDB.Close()

		filter := shared.DefaultFilter()
		filter.OrderBy = "name; DROP TABLE vendors"

		mock.ExpectQuery(`SELECT \* FROM "vendors" ORDER BY created_at DESC LIMIT .*`).
			WithArgs(20).
			WillReturnRows(vendorRows(uuid.New()))

		vendors, err := repo.FindAll(context.Background(), filter)

		assert.NoError(t, err)
		assert.Len(t, vendors, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormVendorRepository_FindByStatus(t *testing.T) {
	t.Run("filters by status", func(t *testing.T) {
		repo, mock, mockDB := newMockVendorRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "vendors" WHERE status = \$1 ORDER BY created_at DESC LIMIT .*`).
			WithArgs("active", 20).
			WillReturnRows(vendorRows(uuid.New()))

		vendors, err := repo.FindByStatus(context.Background(), partner.VendorStatusActive, shared.DefaultFilter())

		assert.NoError(t, err)
		assert.Len(t, vendors, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormVendorRepository_ListNames(t *testing.T) {
	t.Run("returns name column only", func(t *testing.T) {
		repo, mock, mockDB := newMockVendorRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"name"}).
			AddRow("Acme Corp").
			AddRow("Globex Ltd")

		mock.ExpectQuery(`SELECT "name" FROM "vendors" ORDER BY name ASC`).
			WillReturnRows(rows)

		names, err := repo.ListNames(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, []string{"Acme Corp", "Globex Ltd"}, names)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormVendorRepository_Delete(t *testing.T) {
	t.Run("returns not found when no rows affected", func(t *testing.T) {
		repo, mock, mockDB := newMockVendorRepository(t)
		defer mockDB.Close()

		vendorID := uuid.New()

		mock.ExpectExec(`DELETE FROM "vendors" WHERE id = \$1`).
			WithArgs(vendorID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), vendorID)

		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("deletes existing vendor", func(t *testing.T) {
		repo, mock, mockDB := newMockVendorRepository(t)
		defer mockDB.Close()

		vendorID := uuid.New()

		mock.ExpectExec(`DELETE FROM "vendors" WHERE id = \$1`).
			WithArgs(vendorID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), vendorID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormVendorRepository_ExistsByCode(t *testing.T) {
	t.Run("reports existing code", func(t *testing.T) {
		repo, mock, mockDB := newMockVendorRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "vendors" WHERE code = \$1`).
			WithArgs("ACME-01").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.ExistsByCode(context.Background(), "acme-01")

		assert.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
