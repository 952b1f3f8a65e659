package billing

import (
	"context"

	"github.com/google/uuid"

	"github.com/paylog/backend/internal/domain/billing"
	"github.com/paylog/backend/internal/domain/masterdata"
	"github.com/paylog/backend/internal/domain/partner"
	"github.com/paylog/backend/internal/domain/shared"
)

// ProfileService handles billing profile operations
type ProfileService struct {
	profileRepo billing.ProfileRepository
	vendorRepo  partner.VendorRepository
	entityRepo  masterdata.EntityRepository
}

// NewProfileService creates a new ProfileService
func NewProfileService(profileRepo billing.ProfileRepository, vendorRepo partner.VendorRepository, entityRepo masterdata.EntityRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		vendorRepo:  vendorRepo,
		entityRepo:  entityRepo,
	}
}

// Create creates a new billing profile linking a vendor to an entity
func (s *ProfileService) Create(ctx context.Context, req CreateProfileRequest) (*ProfileResponse, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, req.VendorID)
	if err != nil {
		return nil, err
	}
	if !vendor.IsActive() {
		return nil, shared.NewDomainError("VENDOR_INACTIVE", "Cannot create a profile for an inactive vendor")
	}

	entity, err := s.entityRepo.FindByID(ctx, req.EntityID)
	if err != nil {
		return nil, err
	}
	if !entity.IsActive {
		return nil, shared.NewDomainError("ENTITY_INACTIVE", "Cannot create a profile for an inactive entity")
	}

	profile, err := billing.NewProfile(req.VendorID, req.EntityID, req.Name)
	if err != nil {
		return nil, err
	}
	if req.Description != "" {
		if err := profile.Update(req.Name, req.Description); err != nil {
			return nil, err
		}
	}
	if req.CategoryID != uuid.Nil {
		profile.SetCategory(req.CategoryID)
	}

	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	return ToProfileResponse(profile), nil
}

// Get retrieves a profile by ID
func (s *ProfileService) Get(ctx context.Context, id uuid.UUID) (*ProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToProfileResponse(profile), nil
}

// List retrieves profiles matching the filter, with pagination
func (s *ProfileService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[ProfileResponse], error) {
	profiles, err := s.profileRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.profileRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]ProfileResponse, 0, len(profiles))
	for i := range profiles {
		items = append(items, *ToProfileResponse(&profiles[i]))
	}

	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Archive archives a profile
func (s *ProfileService) Archive(ctx context.Context, id uuid.UUID) error {
	profile, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := profile.Archive(); err != nil {
		return err
	}
	return s.profileRepo.Save(ctx, profile)
}

// Restore reactivates an archived profile
func (s *ProfileService) Restore(ctx context.Context, id uuid.UUID) error {
	profile, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := profile.Restore(); err != nil {
		return err
	}
	return s.profileRepo.Save(ctx, profile)
}
