package partner

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVendor(t *testing.T) {
	t.Run("creates active vendor with uppercased code", func(t *testing.T) {
		v, err := NewVendor("ven-001", "Acme Supplies")
		require.NoError(t, err)
		assert.Equal(t, "VEN-001", v.Code)
		assert.Equal(t, "Acme Supplies", v.Name)
		assert.Equal(t, VendorStatusActive, v.Status)
		assert.True(t, v.IsActive())
		assert.False(t, v.TDSApplicable)
		assert.Equal(t, 1, v.GetVersion())
	})

	t.Run("rejects empty code", func(t *testing.T) {
		_, err := NewVendor("", "Acme")
		assert.Error(t, err)
	})

	t.Run("rejects code with invalid characters", func(t *testing.T) {
		_, err := NewVendor("VEN 001!", "Acme")
		assert.Error(t, err)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		_, err := NewVendor("VEN-001", "   ")
		assert.Error(t, err)
	})
}

func TestVendorSetContact(t *testing.T) {
	v, err := NewVendor("VEN-001", "Acme")
	require.NoError(t, err)

	t.Run("accepts valid contact", func(t *testing.T) {
		require.NoError(t, v.SetContact("Priya", "+91 98765 43210", "priya@acme.example"))
		assert.Equal(t, "Priya", v.ContactName)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		assert.Error(t, v.SetContact("Priya", "", "not-an-email"))
	})

	t.Run("rejects phone with letters", func(t *testing.T) {
		assert.Error(t, v.SetContact("Priya", "call-me-maybe", ""))
	})
}

func TestVendorSetTaxIdentifiers(t *testing.T) {
	v, err := NewVendor("VEN-001", "Acme")
	require.NoError(t, err)

	t.Run("accepts valid PAN and normalizes case", func(t *testing.T) {
		require.NoError(t, v.SetTaxIdentifiers("abcde1234f", ""))
		assert.Equal(t, "ABCDE1234F", v.PAN)
	})

	t.Run("rejects malformed PAN", func(t *testing.T) {
		assert.Error(t, v.SetTaxIdentifiers("12345ABCDE", ""))
	})

	t.Run("rejects GSTIN of wrong length", func(t *testing.T) {
		assert.Error(t, v.SetTaxIdentifiers("", "SHORT"))
	})
}

func TestVendorSetTDSDefaults(t *testing.T) {
	v, err := NewVendor("VEN-001", "Acme")
	require.NoError(t, err)

	t.Run("sets applicable percentage", func(t *testing.T) {
		require.NoError(t, v.SetTDSDefaults(true, decimal.NewFromInt(10)))
		assert.True(t, v.TDSApplicable)
		assert.True(t, v.TDSPercentage.Equal(decimal.NewFromInt(10)))
	})

	t.Run("rejects percentage outside range", func(t *testing.T) {
		assert.Error(t, v.SetTDSDefaults(true, decimal.NewFromInt(101)))
		assert.Error(t, v.SetTDSDefaults(true, decimal.NewFromInt(-1)))
	})

	t.Run("clearing applicability resets percentage", func(t *testing.T) {
		require.NoError(t, v.SetTDSDefaults(false, decimal.NewFromInt(50)))
		assert.False(t, v.TDSApplicable)
		assert.True(t, v.TDSPercentage.IsZero())
	})
}

func TestVendorStatusTransitions(t *testing.T) {
	v, err := NewVendor("VEN-001", "Acme")
	require.NoError(t, err)

	t.Run("cannot activate an active vendor", func(t *testing.T) {
		assert.Error(t, v.Activate())
	})

	t.Run("deactivate then reactivate", func(t *testing.T) {
		require.NoError(t, v.Deactivate())
		assert.False(t, v.IsActive())
		assert.Error(t, v.Deactivate())
		require.NoError(t, v.Activate())
		assert.True(t, v.IsActive())
	})
}

func TestVendorUpdateBumpsVersion(t *testing.T) {
	v, err := NewVendor("VEN-001", "Acme")
	require.NoError(t, err)

	before := v.GetVersion()
	require.NoError(t, v.Update("Acme Supplies Pvt Ltd"))
	assert.Equal(t, before+1, v.GetVersion())
	assert.Equal(t, "Acme Supplies Pvt Ltd", v.Name)
}
