package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paylog/backend/internal/domain/partner"
	"github.com/paylog/backend/internal/domain/shared/fuzzy"
)

// CreateVendorRequest represents a request to create a new vendor
type CreateVendorRequest struct {
	Code          string           `json:"code" binding:"required,min=1,max=50"`
	Name          string           `json:"name" binding:"required,min=1,max=200"`
	ContactName   string           `json:"contact_name" binding:"max=100"`
	Phone         string           `json:"phone" binding:"max=50"`
	Email         string           `json:"email" binding:"omitempty,email,max=200"`
	Address       string           `json:"address" binding:"max=500"`
	PAN           string           `json:"pan" binding:"max=10"`
	GSTIN         string           `json:"gstin" binding:"max=20"`
	BankName      string           `json:"bank_name" binding:"max=200"`
	BankAccount   string           `json:"bank_account" binding:"max=100"`
	BankIFSC      string           `json:"bank_ifsc" binding:"max=20"`
	TDSApplicable bool             `json:"tds_applicable"`
	TDSPercentage *decimal.Decimal `json:"tds_percentage"`
	Notes         string           `json:"notes"`
}

// UpdateVendorRequest represents a request to update a vendor
type UpdateVendorRequest struct {
	Name          *string          `json:"name" binding:"omitempty,min=1,max=200"`
	ContactName   *string          `json:"contact_name" binding:"omitempty,max=100"`
	Phone         *string          `json:"phone" binding:"omitempty,max=50"`
	Email         *string          `json:"email" binding:"omitempty,email,max=200"`
	Address       *string          `json:"address" binding:"omitempty,max=500"`
	PAN           *string          `json:"pan" binding:"omitempty,max=10"`
	GSTIN         *string          `json:"gstin" binding:"omitempty,max=20"`
	BankName      *string          `json:"bank_name" binding:"omitempty,max=200"`
	BankAccount   *string          `json:"bank_account" binding:"omitempty,max=100"`
	BankIFSC      *string          `json:"bank_ifsc" binding:"omitempty,max=20"`
	TDSApplicable *bool            `json:"tds_applicable"`
	TDSPercentage *decimal.Decimal `json:"tds_percentage"`
	Notes         *string          `json:"notes"`
}

// CheckDuplicateRequest represents a duplicate-name check before
// vendor creation
type CheckDuplicateRequest struct {
	Name      string   `json:"name" binding:"required,min=1,max=200"`
	Threshold *float64 `json:"threshold" binding:"omitempty,gt=0,lte=1"`
}

// DuplicateCheckResponse is advisory: it warns, it never blocks
type DuplicateCheckResponse struct {
	IsLikelyDuplicate bool          `json:"is_likely_duplicate"`
	Threshold         float64       `json:"threshold"`
	Matches           []fuzzy.Match `json:"matches"`
}

// VendorResponse represents a vendor in API responses
type VendorResponse struct {
	ID            uuid.UUID       `json:"id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	ContactName   string          `json:"contact_name"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	Address       string          `json:"address"`
	PAN           string          `json:"pan"`
	GSTIN         string          `json:"gstin"`
	BankName      string          `json:"bank_name"`
	BankAccount   string          `json:"bank_account"`
	BankIFSC      string          `json:"bank_ifsc"`
	TDSApplicable bool            `json:"tds_applicable"`
	TDSPercentage decimal.Decimal `json:"tds_percentage"`
	Status        string          `json:"status"`
	Notes         string          `json:"notes"`
	Version       int             `json:"version"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToVendorResponse converts a domain vendor to its API representation
func ToVendorResponse(v *partner.Vendor) *VendorResponse {
	return &VendorResponse{
		ID:            v.ID,
		Code:          v.Code,
		Name:          v.Name,
		ContactName:   v.ContactName,
		Phone:         v.Phone,
		Email:         v.Email,
		Address:       v.Address,
		PAN:           v.PAN,
		GSTIN:         v.GSTIN,
		BankName:      v.BankName,
		BankAccount:   v.BankAccount,
		BankIFSC:      v.BankIFSC,
		TDSApplicable: v.TDSApplicable,
		TDSPercentage: v.TDSPercentage,
		Status:        string(v.Status),
		Notes:         v.Notes,
		Version:       v.Version,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}
