package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paylog/backend/internal/domain/partner"
	"github.com/paylog/backend/internal/domain/shared"
	"github.com/paylog/backend/internal/domain/shared/fuzzy"
)

// VendorService handles vendor-related business operations
type VendorService struct {
	vendorRepo partner.VendorRepository
}

// NewVendorService creates a new VendorService
func NewVendorService(vendorRepo partner.VendorRepository) *VendorService {
	return &VendorService{
		vendorRepo: vendorRepo,
	}
}

// Create creates a new vendor
func (s *VendorService) Create(ctx context.Context, req CreateVendorRequest) (*VendorResponse, error) {
	exists, err := s.vendorRepo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Vendor with this code already exists")
	}

	vendor, err := partner.NewVendor(req.Code, req.Name)
	if err != nil {
		return nil, err
	}

	if req.ContactName != "" || req.Phone != "" || req.Email != "" {
		if err := vendor.SetContact(req.ContactName, req.Phone, req.Email); err != nil {
			return nil, err
		}
	}
	if req.Address != "" {
		if err := vendor.SetAddress(req.Address); err != nil {
			return nil, err
		}
	}
	if req.PAN != "" || req.GSTIN != "" {
		if err := vendor.SetTaxIdentifiers(req.PAN, req.GSTIN); err != nil {
			return nil, err
		}
	}
	if req.BankName != "" || req.BankAccount != "" || req.BankIFSC != "" {
		if err := vendor.SetBankInfo(req.BankName, req.BankAccount, req.BankIFSC); err != nil {
			return nil, err
		}
	}
	if req.TDSApplicable {
		pct := decimal.Zero
		if req.TDSPercentage != nil {
			pct = *req.TDSPercentage
		}
		if err := vendor.SetTDSDefaults(true, pct); err != nil {
			return nil, err
		}
	}
	if req.Notes != "" {
		vendor.SetNotes(req.Notes)
	}

	if err := s.vendorRepo.Save(ctx, vendor); err != nil {
		return nil, err
	}

	return ToVendorResponse(vendor), nil
}

// Get retrieves a vendor by ID
func (s *VendorService) Get(ctx context.Context, id uuid.UUID) (*VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToVendorResponse(vendor), nil
}

// List retrieves vendors matching the filter, with pagination
func (s *VendorService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[VendorResponse], error) {
	vendors, err := s.vendorRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.vendorRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]VendorResponse, 0, len(vendors))
	for i := range vendors {
		items = append(items, *ToVendorResponse(&vendors[i]))
	}

	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update updates a vendor's details
func (s *VendorService) Update(ctx context.Context, id uuid.UUID, req UpdateVendorRequest) (*VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := vendor.Update(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.ContactName != nil || req.Phone != nil || req.Email != nil {
		contactName := vendor.ContactName
		phone := vendor.Phone
		email := vendor.Email
		if req.ContactName != nil {
			contactName = *req.ContactName
		}
		if req.Phone != nil {
			phone = *req.Phone
		}
		if req.Email != nil {
			email = *req.Email
		}
		if err := vendor.SetContact(contactName, phone, email); err != nil {
			return nil, err
		}
	}
	if req.Address != nil {
		if err := vendor.SetAddress(*req.Address); err != nil {
			return nil, err
		}
	}
	if req.PAN != nil || req.GSTIN != nil {
		pan := vendor.PAN
		gstin := vendor.GSTIN
		if req.PAN != nil {
			pan = *req.PAN
		}
		if req.GSTIN != nil {
			gstin = *req.GSTIN
		}
		if err := vendor.SetTaxIdentifiers(pan, gstin); err != nil {
			return nil, err
		}
	}
	if req.BankName != nil || req.BankAccount != nil || req.BankIFSC != nil {
		bankName := vendor.BankName
		bankAccount := vendor.BankAccount
		ifsc := vendor.BankIFSC
		if req.BankName != nil {
			bankName = *req.BankName
		}
		if req.BankAccount != nil {
			bankAccount = *req.BankAccount
		}
		if req.BankIFSC != nil {
			ifsc = *req.BankIFSC
		}
		if err := vendor.SetBankInfo(bankName, bankAccount, ifsc); err != nil {
			return nil, err
		}
	}
	if req.TDSApplicable != nil {
		pct := vendor.TDSPercentage
		if req.TDSPercentage != nil {
			pct = *req.TDSPercentage
		}
		if err := vendor.SetTDSDefaults(*req.TDSApplicable, pct); err != nil {
			return nil, err
		}
	}
	if req.Notes != nil {
		vendor.SetNotes(*req.Notes)
	}

	if err := s.vendorRepo.Save(ctx, vendor); err != nil {
		return nil, err
	}

	return ToVendorResponse(vendor), nil
}

// Activate activates a vendor
func (s *VendorService) Activate(ctx context.Context, id uuid.UUID) error {
	vendor, err := s.vendorRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := vendor.Activate(); err != nil {
		return err
	}
	return s.vendorRepo.Save(ctx, vendor)
}

// Deactivate deactivates a vendor
func (s *VendorService) Deactivate(ctx context.Context, id uuid.UUID) error {
	vendor, err := s.vendorRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := vendor.Deactivate(); err != nil {
		return err
	}
	return s.vendorRepo.Save(ctx, vendor)
}

// CheckDuplicateName scores the proposed name against all existing
// vendor names and reports likely duplicates. The check is advisory;
// creation is never blocked on it.
func (s *VendorService) CheckDuplicateName(ctx context.Context, req CheckDuplicateRequest) (*DuplicateCheckResponse, error) {
	threshold := fuzzy.DefaultThreshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}

	names, err := s.vendorRepo.ListNames(ctx)
	if err != nil {
		return nil, err
	}

	matches := fuzzy.FindSimilar(req.Name, names, threshold)

	return &DuplicateCheckResponse{
		IsLikelyDuplicate: len(matches) > 0,
		Threshold:         threshold,
		Matches:           matches,
	}, nil
}
