package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/solvia-inc/solvia/internal/domain/catalog"
	"github.com/solvia-inc/solvia/internal/shared/errors"
	"github.com/solvia-inc/solvia/internal/shared/logger"
	"github.com/solvia-inc/solvia/internal/shared/services/richtext"
)

// SolutionDTO is the read model returned by solution queries.
type SolutionDTO struct {
	ID              uint                   `json:"id"`
	Slug            string                 `json:"slug"`
	Presentation    catalog.Presentation   `json:"presentation"`
	DescriptionHTML string                 `json:"description_html,omitempty"`
	Multimedia      map[string]interface{} `json:"multimedia,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

func solutionToDTO(s *catalog.Solution) *SolutionDTO {
	return &SolutionDTO{
		ID:           s.ID(),
		Slug:         s.Slug(),
		Presentation: s.Presentation(),
		Multimedia:   s.Multimedia(),
		CreatedAt:    s.CreatedAt(),
		UpdatedAt:    s.UpdatedAt(),
	}
}

type GetSolutionUseCase struct {
	solutionRepo catalog.SolutionRepository
	richText     richtext.Service
	logger       logger.Interface
}

func NewGetSolutionUseCase(
	solutionRepo catalog.SolutionRepository,
	richText richtext.Service,
	logger logger.Interface,
) *GetSolutionUseCase {
	return &GetSolutionUseCase{
		solutionRepo: solutionRepo,
		richText:     richText,
		logger:       logger,
	}
}

func (uc *GetSolutionUseCase) Execute(ctx context.Context, id uint) (*SolutionDTO, error) {
	solution, err := uc.solutionRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get solution", "error", err, "solution_id", id)
		return nil, fmt.Errorf("failed to get solution: %w", err)
	}
	if solution == nil {
		return nil, errors.NewNotFoundError("solution not found")
	}
	return uc.toDTO(solution)
}

// ExecuteBySlug resolves a solution by its public slug, rendering the
// description markdown for the catalog page.
func (uc *GetSolutionUseCase) ExecuteBySlug(ctx context.Context, slug string) (*SolutionDTO, error) {
	if slug == "" {
		return nil, errors.NewValidationError("slug is required")
	}

	solution, err := uc.solutionRepo.GetBySlug(ctx, slug)
	if err != nil {
		uc.logger.Errorw("failed to get solution by slug", "error", err, "slug", slug)
		return nil, fmt.Errorf("failed to get solution: %w", err)
	}
	if solution == nil {
		return nil, errors.NewNotFoundError("solution not found")
	}
	return uc.toDTO(solution)
}

func (uc *GetSolutionUseCase) toDTO(solution *catalog.Solution) (*SolutionDTO, error) {
	dto := solutionToDTO(solution)
	if desc := solution.Presentation().Description; desc != "" {
		html, err := uc.richText.ToHTMLSanitized(desc)
		if err != nil {
			uc.logger.Warnw("failed to render solution description", "error", err, "solution_id", solution.ID())
		} else {
			dto.DescriptionHTML = html
		}
	}
	return dto, nil
}
