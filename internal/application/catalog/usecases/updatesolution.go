package usecases

import (
	"context"
	"fmt"

	"github.com/solvia-inc/solvia/internal/domain/catalog"
	"github.com/solvia-inc/solvia/internal/shared/errors"
	"github.com/solvia-inc/solvia/internal/shared/logger"
	"github.com/solvia-inc/solvia/internal/shared/services/richtext"
)

// UpdateSolutionCommand carries optional fields; only set pointers are
// written, and only columns on the allow-list ever reach the database.
type UpdateSolutionCommand struct {
	SolutionID       uint
	Title            *string
	Subtitle         *string
	Description      *string
	Icon             *string
	CTAPrimaryText   *string
	CTAPrimaryLink   *string
	CTASecondaryText *string
	CTASecondaryLink *string
}

type UpdateSolutionUseCase struct {
	solutionRepo catalog.SolutionRepository
	richText     richtext.Service
	logger       logger.Interface
}

func NewUpdateSolutionUseCase(
	solutionRepo catalog.SolutionRepository,
	richText richtext.Service,
	logger logger.Interface,
) *UpdateSolutionUseCase {
	return &UpdateSolutionUseCase{
		solutionRepo: solutionRepo,
		richText:     richText,
		logger:       logger,
	}
}

func (uc *UpdateSolutionUseCase) Execute(ctx context.Context, cmd UpdateSolutionCommand) error {
	if cmd.SolutionID == 0 {
		return errors.NewValidationError("solution ID is required")
	}

	update := catalog.PresentationUpdate{
		Title:            cmd.Title,
		Subtitle:         cmd.Subtitle,
		Description:      cmd.Description,
		Icon:             cmd.Icon,
		CTAPrimaryText:   cmd.CTAPrimaryText,
		CTAPrimaryLink:   cmd.CTAPrimaryLink,
		CTASecondaryText: cmd.CTASecondaryText,
		CTASecondaryLink: cmd.CTASecondaryLink,
	}
	if update.Description != nil {
		sanitized := uc.richText.SanitizeText(*update.Description)
		update.Description = &sanitized
	}
	if update.IsEmpty() {
		return errors.NewValidationError("no fields to update")
	}

	affected, err := uc.solutionRepo.UpdateFields(ctx, cmd.SolutionID, update)
	if err != nil {
		uc.logger.Errorw("failed to update solution", "error", err, "solution_id", cmd.SolutionID)
		return fmt.Errorf("failed to update solution: %w", err)
	}
	if affected == 0 {
		exists, err := uc.solutionRepo.Exists(ctx, cmd.SolutionID)
		if err != nil {
			return fmt.Errorf("failed to check solution existence: %w", err)
		}
		if !exists {
			return errors.NewNotFoundError("solution not found")
		}
	}

	uc.logger.Infow("solution updated", "solution_id", cmd.SolutionID)
	return nil
}
