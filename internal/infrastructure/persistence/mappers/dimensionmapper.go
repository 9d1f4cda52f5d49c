package mappers

import (
	"fmt"

	"github.com/solvia-inc/solvia/internal/domain/catalog"
	"github.com/solvia-inc/solvia/internal/infrastructure/persistence/models"
)

// DimensionMapper converts domain and sector entities to and from their models.
type DimensionMapper interface {
	DomainToEntity(model *models.DomainModel) (*catalog.Domain, error)
	DomainToModel(entity *catalog.Domain) (*models.DomainModel, error)
	DomainsToEntities(rows []*models.DomainModel) ([]*catalog.Domain, error)
	SectorToEntity(model *models.SectorModel) (*catalog.Sector, error)
	SectorToModel(entity *catalog.Sector) (*models.SectorModel, error)
	SectorsToEntities(rows []*models.SectorModel) ([]*catalog.Sector, error)
}

type dimensionMapperImpl struct{}

// NewDimensionMapper creates a new dimension mapper
func NewDimensionMapper() DimensionMapper {
	return &dimensionMapperImpl{}
}

func (m *dimensionMapperImpl) DomainToEntity(model *models.DomainModel) (*catalog.Domain, error) {
	if model == nil {
		return nil, nil
	}
	return catalog.ReconstructDomain(
		model.ID,
		model.Description,
		model.WebText,
		model.Prefix,
		model.Slug,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *dimensionMapperImpl) DomainToModel(entity *catalog.Domain) (*models.DomainModel, error) {
	if entity == nil {
		return nil, fmt.Errorf("domain entity is nil")
	}
	return &models.DomainModel{
		ID:          entity.ID(),
		Description: entity.Description(),
		WebText:     entity.WebText(),
		Prefix:      entity.Prefix(),
		Slug:        entity.Slug(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

func (m *dimensionMapperImpl) DomainsToEntities(rows []*models.DomainModel) ([]*catalog.Domain, error) {
	entities := make([]*catalog.Domain, 0, len(rows))
	for _, row := range rows {
		entity, err := m.DomainToEntity(row)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (m *dimensionMapperImpl) SectorToEntity(model *models.SectorModel) (*catalog.Sector, error) {
	if model == nil {
		return nil, nil
	}
	return catalog.ReconstructSector(
		model.ID,
		model.Description,
		model.WebText,
		model.Prefix,
		model.Slug,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *dimensionMapperImpl) SectorToModel(entity *catalog.Sector) (*models.SectorModel, error) {
	if entity == nil {
		return nil, fmt.Errorf("sector entity is nil")
	}
	return &models.SectorModel{
		ID:          entity.ID(),
		Description: entity.Description(),
		WebText:     entity.WebText(),
		Prefix:      entity.Prefix(),
		Slug:        entity.Slug(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

func (m *dimensionMapperImpl) SectorsToEntities(rows []*models.SectorModel) ([]*catalog.Sector, error) {
	entities := make([]*catalog.Sector, 0, len(rows))
	for _, row := range rows {
		entity, err := m.SectorToEntity(row)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
