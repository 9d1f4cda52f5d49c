package mappers

import (
	"fmt"

	"github.com/solvia-inc/solvia/internal/domain/catalog"
	"github.com/solvia-inc/solvia/internal/infrastructure/persistence/models"
)

// TraitMapper converts benefit/feature/problem rows to the shared trait
// entity and back. Each kind keeps its own table; only the Go type is shared.
type TraitMapper interface {
	BenefitToEntity(model *models.BenefitModel) (*catalog.Trait, error)
	FeatureToEntity(model *models.FeatureModel) (*catalog.Trait, error)
	ProblemToEntity(model *models.ProblemModel) (*catalog.Trait, error)
	ToBenefitModel(entity *catalog.Trait) (*models.BenefitModel, error)
	ToFeatureModel(entity *catalog.Trait) (*models.FeatureModel, error)
	ToProblemModel(entity *catalog.Trait) (*models.ProblemModel, error)
}

type traitMapperImpl struct{}

// NewTraitMapper creates a new trait mapper
func NewTraitMapper() TraitMapper {
	return &traitMapperImpl{}
}

func (m *traitMapperImpl) BenefitToEntity(model *models.BenefitModel) (*catalog.Trait, error) {
	if model == nil {
		return nil, nil
	}
	return catalog.ReconstructTrait(model.ID, catalog.TraitBenefit,
		model.Pragma, model.Title, model.Description, model.Icon,
		model.CreatedAt, model.UpdatedAt)
}

func (m *traitMapperImpl) FeatureToEntity(model *models.FeatureModel) (*catalog.Trait, error) {
	if model == nil {
		return nil, nil
	}
	return catalog.ReconstructTrait(model.ID, catalog.TraitFeature,
		model.Pragma, model.Title, model.Description, model.Icon,
		model.CreatedAt, model.UpdatedAt)
}

func (m *traitMapperImpl) ProblemToEntity(model *models.ProblemModel) (*catalog.Trait, error) {
	if model == nil {
		return nil, nil
	}
	return catalog.ReconstructTrait(model.ID, catalog.TraitProblem,
		model.Pragma, model.Title, model.Description, model.Icon,
		model.CreatedAt, model.UpdatedAt)
}

func (m *traitMapperImpl) ToBenefitModel(entity *catalog.Trait) (*models.BenefitModel, error) {
	if entity == nil {
		return nil, fmt.Errorf("trait entity is nil")
	}
	return &models.BenefitModel{
		ID:          entity.ID(),
		Pragma:      entity.Pragma(),
		Title:       entity.Title(),
		Description: entity.Description(),
		Icon:        entity.Icon(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

func (m *traitMapperImpl) ToFeatureModel(entity *catalog.Trait) (*models.FeatureModel, error) {
	if entity == nil {
		return nil, fmt.Errorf("trait entity is nil")
	}
	return &models.FeatureModel{
		ID:          entity.ID(),
		Pragma:      entity.Pragma(),
		Title:       entity.Title(),
		Description: entity.Description(),
		Icon:        entity.Icon(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

func (m *traitMapperImpl) ToProblemModel(entity *catalog.Trait) (*models.ProblemModel, error) {
	if entity == nil {
		return nil, fmt.Errorf("trait entity is nil")
	}
	return &models.ProblemModel{
		ID:          entity.ID(),
		Pragma:      entity.Pragma(),
		Title:       entity.Title(),
		Description: entity.Description(),
		Icon:        entity.Icon(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}
