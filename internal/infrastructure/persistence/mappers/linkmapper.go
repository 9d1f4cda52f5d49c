package mappers

import (
	"fmt"

	"github.com/solvia-inc/solvia/internal/domain/catalog"
	"github.com/solvia-inc/solvia/internal/infrastructure/persistence/models"
)

// LinkMapper converts association rows (junction + snapshot payload) between
// domain records and persistence models.
type LinkMapper interface {
	DomainLinkToRecord(model *models.SolutionDomainModel) *catalog.DomainLink
	DomainLinkToModel(link *catalog.DomainLink) (*models.SolutionDomainModel, error)
	SectorLinkToRecord(model *models.SolutionSectorModel) *catalog.SectorLink
	SectorLinkToModel(link *catalog.SectorLink) (*models.SolutionSectorModel, error)
	DomainSectorLinkToRecord(model *models.SolutionDomainSectorModel) *catalog.DomainSectorLink
	DomainSectorLinkToModel(link *catalog.DomainSectorLink) (*models.SolutionDomainSectorModel, error)
}

type linkMapperImpl struct{}

// NewLinkMapper creates a new link mapper
func NewLinkMapper() LinkMapper {
	return &linkMapperImpl{}
}

func (m *linkMapperImpl) DomainLinkToRecord(model *models.SolutionDomainModel) *catalog.DomainLink {
	if model == nil {
		return nil
	}
	return &catalog.DomainLink{
		SolutionID:   model.SolutionID,
		DomainID:     model.DomainID,
		Presentation: ColumnsToPresentation(model.PresentationColumns),
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func (m *linkMapperImpl) DomainLinkToModel(link *catalog.DomainLink) (*models.SolutionDomainModel, error) {
	if link == nil {
		return nil, fmt.Errorf("domain link is nil")
	}
	return &models.SolutionDomainModel{
		SolutionID:          link.SolutionID,
		DomainID:            link.DomainID,
		PresentationColumns: PresentationToColumns(link.Presentation),
	}, nil
}

func (m *linkMapperImpl) SectorLinkToRecord(model *models.SolutionSectorModel) *catalog.SectorLink {
	if model == nil {
		return nil
	}
	return &catalog.SectorLink{
		SolutionID:     model.SolutionID,
		SectorID:       model.SectorID,
		AltDescription: model.AltDescription,
		AltText:        model.AltText,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}

func (m *linkMapperImpl) SectorLinkToModel(link *catalog.SectorLink) (*models.SolutionSectorModel, error) {
	if link == nil {
		return nil, fmt.Errorf("sector link is nil")
	}
	return &models.SolutionSectorModel{
		SolutionID:     link.SolutionID,
		SectorID:       link.SectorID,
		AltDescription: link.AltDescription,
		AltText:        link.AltText,
	}, nil
}

func (m *linkMapperImpl) DomainSectorLinkToRecord(model *models.SolutionDomainSectorModel) *catalog.DomainSectorLink {
	if model == nil {
		return nil
	}
	return &catalog.DomainSectorLink{
		SolutionID:   model.SolutionID,
		DomainID:     model.DomainID,
		SectorID:     model.SectorID,
		Presentation: ColumnsToPresentation(model.PresentationColumns),
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func (m *linkMapperImpl) DomainSectorLinkToModel(link *catalog.DomainSectorLink) (*models.SolutionDomainSectorModel, error) {
	if link == nil {
		return nil, fmt.Errorf("domain sector link is nil")
	}
	return &models.SolutionDomainSectorModel{
		SolutionID:          link.SolutionID,
		DomainID:            link.DomainID,
		SectorID:            link.SectorID,
		PresentationColumns: PresentationToColumns(link.Presentation),
	}, nil
}
