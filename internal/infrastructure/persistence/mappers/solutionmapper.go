// Package mappers converts between catalog domain entities and persistence
// models. Repositories own relationship loading; mappers only translate rows.
package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/solvia-inc/solvia/internal/domain/catalog"
	"github.com/solvia-inc/solvia/internal/infrastructure/persistence/models"
)

// SolutionMapper handles the conversion between solution entities and models.
type SolutionMapper interface {
	ToEntity(model *models.SolutionModel) (*catalog.Solution, error)
	ToModel(entity *catalog.Solution) (*models.SolutionModel, error)
	ToEntities(rows []*models.SolutionModel) ([]*catalog.Solution, error)
}

type solutionMapperImpl struct{}

// NewSolutionMapper creates a new solution mapper
func NewSolutionMapper() SolutionMapper {
	return &solutionMapperImpl{}
}

// PresentationToColumns converts the presentation value object to its column
// block. Shared by the solution repository and both snapshot repositories.
func PresentationToColumns(p catalog.Presentation) models.PresentationColumns {
	return models.PresentationColumns{
		Title:            p.Title,
		Subtitle:         p.Subtitle,
		Description:      p.Description,
		Icon:             p.Icon,
		CTAPrimaryText:   p.CTAPrimaryText,
		CTAPrimaryLink:   p.CTAPrimaryLink,
		CTASecondaryText: p.CTASecondaryText,
		CTASecondaryLink: p.CTASecondaryLink,
		ProblemsPragma:   p.ProblemsPragma,
		ProblemsTitle:    p.ProblemsTitle,
		FeaturesPragma:   p.FeaturesPragma,
		FeaturesTitle:    p.FeaturesTitle,
		BenefitsPragma:   p.BenefitsPragma,
		BenefitsTitle:    p.BenefitsTitle,
	}
}

// ColumnsToPresentation is the inverse of PresentationToColumns.
func ColumnsToPresentation(c models.PresentationColumns) catalog.Presentation {
	return catalog.Presentation{
		Title:            c.Title,
		Subtitle:         c.Subtitle,
		Description:      c.Description,
		Icon:             c.Icon,
		CTAPrimaryText:   c.CTAPrimaryText,
		CTAPrimaryLink:   c.CTAPrimaryLink,
		CTASecondaryText: c.CTASecondaryText,
		CTASecondaryLink: c.CTASecondaryLink,
		ProblemsPragma:   c.ProblemsPragma,
		ProblemsTitle:    c.ProblemsTitle,
		FeaturesPragma:   c.FeaturesPragma,
		FeaturesTitle:    c.FeaturesTitle,
		BenefitsPragma:   c.BenefitsPragma,
		BenefitsTitle:    c.BenefitsTitle,
	}
}

func (m *solutionMapperImpl) ToEntity(model *models.SolutionModel) (*catalog.Solution, error) {
	if model == nil {
		return nil, nil
	}

	var multimedia map[string]interface{}
	if model.Multimedia != nil {
		if err := json.Unmarshal(model.Multimedia, &multimedia); err != nil {
			return nil, fmt.Errorf("failed to unmarshal multimedia: %w", err)
		}
	}

	return catalog.ReconstructSolution(
		model.ID,
		model.Slug,
		ColumnsToPresentation(model.PresentationColumns),
		multimedia,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *solutionMapperImpl) ToModel(entity *catalog.Solution) (*models.SolutionModel, error) {
	if entity == nil {
		return nil, fmt.Errorf("solution entity is nil")
	}

	var multimedia datatypes.JSON
	if len(entity.Multimedia()) > 0 {
		raw, err := json.Marshal(entity.Multimedia())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal multimedia: %w", err)
		}
		multimedia = raw
	}

	return &models.SolutionModel{
		ID:                  entity.ID(),
		Slug:                entity.Slug(),
		PresentationColumns: PresentationToColumns(entity.Presentation()),
		Multimedia:          multimedia,
		CreatedAt:           entity.CreatedAt(),
		UpdatedAt:           entity.UpdatedAt(),
	}, nil
}

func (m *solutionMapperImpl) ToEntities(rows []*models.SolutionModel) ([]*catalog.Solution, error) {
	entities := make([]*catalog.Solution, 0, len(rows))
	for _, row := range rows {
		entity, err := m.ToEntity(row)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
