package usecases

import (
	"context"
	"fmt"

	"github.com/solvia-inc/solvia/internal/domain/catalog"
	"github.com/solvia-inc/solvia/internal/shared/errors"
	"github.com/solvia-inc/solvia/internal/shared/logger"
)

// DeleteSolutionUseCase removes the solution row only. Association rows are
// left untouched; dimension deletion is what sweeps junctions, solution
// deletion never has.
type DeleteSolutionUseCase struct {
	solutionRepo catalog.SolutionRepository
	logger       logger.Interface
}

func NewDeleteSolutionUseCase(solutionRepo catalog.SolutionRepository, logger logger.Interface) *DeleteSolutionUseCase {
	return &DeleteSolutionUseCase{
		solutionRepo: solutionRepo,
		logger:       logger,
	}
}

func (uc *DeleteSolutionUseCase) Execute(ctx context.Context, solutionID uint) error {
	if solutionID == 0 {
		return errors.NewValidationError("solution ID is required")
	}

	affected, err := uc.solutionRepo.Delete(ctx, solutionID)
	if err != nil {
		uc.logger.Errorw("failed to delete solution", "error", err, "solution_id", solutionID)
		return fmt.Errorf("failed to delete solution: %w", err)
	}
	if affected == 0 {
		return errors.NewNotFoundError("solution not found")
	}

	uc.logger.Infow("solution deleted", "solution_id", solutionID)
	return nil
}
