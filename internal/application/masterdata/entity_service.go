// Package masterdata exposes the entity and category reference-data
// services.
package masterdata

import (
	"context"

	"github.com/google/uuid"

	"github.com/paylog/backend/internal/domain/masterdata"
	"github.com/paylog/backend/internal/domain/shared"
)

// EntityService handles legal entity operations
type EntityService struct {
	entityRepo masterdata.EntityRepository
}

// NewEntityService creates a new EntityService
func NewEntityService(entityRepo masterdata.EntityRepository) *EntityService {
	return &EntityService{entityRepo: entityRepo}
}

// Create creates a new legal entity
func (s *EntityService) Create(ctx context.Context, req CreateEntityRequest) (*EntityResponse, error) {
	exists, err := s.entityRepo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Entity with this code already exists")
	}

	entity, err := masterdata.NewEntity(req.Code, req.Name)
	if err != nil {
		return nil, err
	}
	if req.GSTIN != "" || req.Address != "" {
		if err := entity.Update(req.Name, req.GSTIN, req.Address); err != nil {
			return nil, err
		}
	}

	if err := s.entityRepo.Save(ctx, entity); err != nil {
		return nil, err
	}
	return ToEntityResponse(entity), nil
}

// Get retrieves an entity by ID
func (s *EntityService) Get(ctx context.Context, id uuid.UUID) (*EntityResponse, error) {
	entity, err := s.entityRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToEntityResponse(entity), nil
}

// List retrieves entities matching the filter, with pagination
func (s *EntityService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[EntityResponse], error) {
	entities, err := s.entityRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.entityRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]EntityResponse, 0, len(entities))
	for i := range entities {
		items = append(items, *ToEntityResponse(&entities[i]))
	}

	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// SetActive toggles an entity's active flag
func (s *EntityService) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	entity, err := s.entityRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	entity.SetActive(active)
	return s.entityRepo.Save(ctx, entity)
}
