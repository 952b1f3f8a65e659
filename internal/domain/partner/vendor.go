// Package partner holds the vendor aggregate: the counterparty a
// billing profile belongs to.
package partner

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/paylog/backend/internal/domain/shared"
)

// VendorStatus represents the status of a vendor
type VendorStatus string

const (
	VendorStatusActive   VendorStatus = "active"
	VendorStatusInactive VendorStatus = "inactive"
)

var (
	hundred  = decimal.NewFromInt(100)
	panRegex = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
)

// Vendor represents a vendor in the partner context
// It is the aggregate root for vendor-related operations
type Vendor struct {
	shared.BaseAggregateRoot
	Code          string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name          string          `gorm:"type:varchar(200);not null;index"`
	ContactName   string          `gorm:"type:varchar(100)"`
	Phone         string          `gorm:"type:varchar(50);index"`
	Email         string          `gorm:"type:varchar(200);index"`
	Address       string          `gorm:"type:text"`
	PAN           string          `gorm:"type:varchar(10);index"` // Indian tax identification (PAN)
	GSTIN         string          `gorm:"type:varchar(20)"`
	BankName      string          `gorm:"type:varchar(200)"`
	BankAccount   string          `gorm:"type:varchar(100)"`
	BankIFSC      string          `gorm:"type:varchar(20)"`
	TDSApplicable bool            `gorm:"not null;default:false"` // Default for new invoices on this vendor's profiles
	TDSPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	Status        VendorStatus    `gorm:"type:varchar(20);not null;default:'active'"`
	Notes         string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Vendor) TableName() string {
	return "vendors"
}

// NewVendor creates a new vendor with required fields
func NewVendor(code, name string) (*Vendor, error) {
	if err := validateVendorCode(code); err != nil {
		return nil, err
	}
	if err := validateVendorName(name); err != nil {
		return nil, err
	}

	return &Vendor{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              strings.ToUpper(code),
		Name:              strings.TrimSpace(name),
		Status:            VendorStatusActive,
		TDSPercentage:     decimal.Zero,
	}, nil
}

// Update updates the vendor's basic information
func (v *Vendor) Update(name string) error {
	if err := validateVendorName(name); err != nil {
		return err
	}

	v.Name = strings.TrimSpace(name)
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	return nil
}

// SetContact sets the vendor's contact information
func (v *Vendor) SetContact(contactName, phone, email string) error {
	if contactName != "" && len(contactName) > 100 {
		return shared.NewDomainError("INVALID_CONTACT_NAME", "Contact name cannot exceed 100 characters")
	}
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return err
		}
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
	}

	v.ContactName = contactName
	v.Phone = phone
	v.Email = email
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	return nil
}

// SetAddress sets the vendor's address
func (v *Vendor) SetAddress(address string) error {
	if len(address) > 500 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 500 characters")
	}

	v.Address = address
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	return nil
}

// SetTaxIdentifiers sets the vendor's PAN and GSTIN
func (v *Vendor) SetTaxIdentifiers(pan, gstin string) error {
	pan = strings.ToUpper(strings.TrimSpace(pan))
	if pan != "" && !panRegex.MatchString(pan) {
		return shared.NewDomainError("INVALID_PAN", "PAN must match the format AAAAA9999A")
	}
	if gstin != "" && len(gstin) != 15 {
		return shared.NewDomainError("INVALID_GSTIN", "GSTIN must be 15 characters")
	}

	v.PAN = pan
	v.GSTIN = strings.ToUpper(strings.TrimSpace(gstin))
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	return nil
}

// SetBankInfo sets the vendor's bank information
func (v *Vendor) SetBankInfo(bankName, bankAccount, ifsc string) error {
	if bankName != "" && len(bankName) > 200 {
		return shared.NewDomainError("INVALID_BANK_NAME", "Bank name cannot exceed 200 characters")
	}
	if bankAccount != "" && len(bankAccount) > 100 {
		return shared.NewDomainError("INVALID_BANK_ACCOUNT", "Bank account cannot exceed 100 characters")
	}
	if ifsc != "" && len(ifsc) > 20 {
		return shared.NewDomainError("INVALID_BANK_IFSC", "IFSC code cannot exceed 20 characters")
	}

	v.BankName = bankName
	v.BankAccount = bankAccount
	v.BankIFSC = strings.ToUpper(ifsc)
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	return nil
}

// SetTDSDefaults sets the default TDS treatment applied to new
// invoices raised against this vendor's profiles
func (v *Vendor) SetTDSDefaults(applicable bool, percentage decimal.Decimal) error {
	if applicable && (percentage.IsNegative() || percentage.GreaterThan(hundred)) {
		return shared.NewDomainError("INVALID_TDS_PERCENTAGE", "TDS percentage must be between 0 and 100")
	}

	v.TDSApplicable = applicable
	if applicable {
		v.TDSPercentage = percentage
	} else {
		v.TDSPercentage = decimal.Zero
	}
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	return nil
}

// SetNotes sets the vendor's notes
func (v *Vendor) SetNotes(notes string) {
	v.Notes = notes
	v.UpdatedAt = time.Now()
	v.IncrementVersion()
}

// Activate activates the vendor
func (v *Vendor) Activate() error {
	if v.Status == VendorStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Vendor is already active")
	}

	v.Status = VendorStatusActive
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	return nil
}

// Deactivate deactivates the vendor
func (v *Vendor) Deactivate() error {
	if v.Status == VendorStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Vendor is already inactive")
	}

	v.Status = VendorStatusInactive
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	return nil
}

// IsActive returns true if the vendor is active
func (v *Vendor) IsActive() bool {
	return v.Status == VendorStatusActive
}

// Validation functions

func validateVendorCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Vendor code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Vendor code cannot exceed 50 characters")
	}
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_CODE", "Vendor code can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}

func validateVendorName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Vendor name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Vendor name cannot exceed 200 characters")
	}
	return nil
}

func validatePhone(phone string) error {
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone number cannot exceed 50 characters")
	}
	for _, r := range phone {
		if !((r >= '0' && r <= '9') || r == '+' || r == '-' || r == ' ' || r == '(' || r == ')') {
			return shared.NewDomainError("INVALID_PHONE", "Phone number contains invalid characters")
		}
	}
	return nil
}

func validateEmail(email string) error {
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || !strings.Contains(email[at:], ".") {
		return shared.NewDomainError("INVALID_EMAIL", "Email format is invalid")
	}
	return nil
}
