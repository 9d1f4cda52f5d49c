package usecases

import (
	"context"

	"github.com/solvia-inc/solvia/internal/domain/catalog"
	"github.com/solvia-inc/solvia/internal/shared/errors"
	"github.com/solvia-inc/solvia/internal/shared/logger"
	"github.com/solvia-inc/solvia/internal/shared/services/richtext"
	"github.com/solvia-inc/solvia/internal/shared/utils"
)

type CreateSolutionCommand struct {
	Slug             string
	Title            string
	Subtitle         string
	Description      string
	Icon             string
	CTAPrimaryText   string
	CTAPrimaryLink   string
	CTASecondaryText string
	CTASecondaryLink string
	Multimedia       map[string]interface{}
}

type CreateSolutionResult struct {
	ID   uint
	Slug string
}

type CreateSolutionUseCase struct {
	solutionRepo catalog.SolutionRepository
	richText     richtext.Service
	logger       logger.Interface
}

func NewCreateSolutionUseCase(
	solutionRepo catalog.SolutionRepository,
	richText richtext.Service,
	logger logger.Interface,
) *CreateSolutionUseCase {
	return &CreateSolutionUseCase{
		solutionRepo: solutionRepo,
		richText:     richText,
		logger:       logger,
	}
}

func (uc *CreateSolutionUseCase) Execute(ctx context.Context, cmd CreateSolutionCommand) (*CreateSolutionResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create solution command", "error", err)
		return nil, err
	}

	slug := cmd.Slug
	if slug == "" {
		slug = utils.Slugify(cmd.Title)
	}

	solution, err := catalog.NewSolution(slug, catalog.Presentation{
		Title:            cmd.Title,
		Subtitle:         cmd.Subtitle,
		Description:      uc.richText.SanitizeText(cmd.Description),
		Icon:             cmd.Icon,
		CTAPrimaryText:   cmd.CTAPrimaryText,
		CTAPrimaryLink:   cmd.CTAPrimaryLink,
		CTASecondaryText: cmd.CTASecondaryText,
		CTASecondaryLink: cmd.CTASecondaryLink,
	}, cmd.Multimedia)
	if err != nil {
		return nil, err
	}

	if err := uc.solutionRepo.Create(ctx, solution); err != nil {
		uc.logger.Errorw("failed to create solution", "error", err, "slug", slug)
		return nil, err
	}

	uc.logger.Infow("solution created", "solution_id", solution.ID(), "slug", slug)

	return &CreateSolutionResult{
		ID:   solution.ID(),
		Slug: solution.Slug(),
	}, nil
}

func (uc *CreateSolutionUseCase) validateCommand(cmd CreateSolutionCommand) error {
	if cmd.Title == "" {
		return errors.NewValidationError("title is required")
	}
	if cmd.Slug == "" && utils.Slugify(cmd.Title) == "" {
		return errors.NewValidationError("a slug could not be derived from the title")
	}
	return nil
}
