package usecases

import (
	"context"
	"fmt"

	"github.com/solvia-inc/solvia/internal/domain/catalog"
	"github.com/solvia-inc/solvia/internal/shared/db"
	"github.com/solvia-inc/solvia/internal/shared/errors"
	"github.com/solvia-inc/solvia/internal/shared/logger"
)

type AssociateTraitCommand struct {
	Kind       catalog.TraitKind
	SolutionID uint
	TraitID    uint
}

// AssociateTraitUseCase links a benefit, feature or problem to a solution.
// After inserting the junction it always rewrites the solution's denormalized
// (pragma, title) pair for that dimension to the child's text; the most
// recently associated child wins.
type AssociateTraitUseCase struct {
	solutionRepo  catalog.SolutionRepository
	traitRepo     catalog.TraitRepository
	traitLinkRepo catalog.TraitLinkRepository
	txMgr         *db.TransactionManager
	logger        logger.Interface
}

func NewAssociateTraitUseCase(
	solutionRepo catalog.SolutionRepository,
	traitRepo catalog.TraitRepository,
	traitLinkRepo catalog.TraitLinkRepository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *AssociateTraitUseCase {
	return &AssociateTraitUseCase{
		solutionRepo:  solutionRepo,
		traitRepo:     traitRepo,
		traitLinkRepo: traitLinkRepo,
		txMgr:         txMgr,
		logger:        logger,
	}
}

func (uc *AssociateTraitUseCase) Execute(ctx context.Context, cmd AssociateTraitCommand) (*AssociateResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid associate trait command", "error", err)
		return nil, err
	}

	var result AssociateResult
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		exists, err := uc.solutionRepo.Exists(txCtx, cmd.SolutionID)
		if err != nil {
			return fmt.Errorf("failed to check solution existence: %w", err)
		}
		if !exists {
			return errors.NewNotFoundError("solution not found")
		}

		trait, err := uc.traitRepo.GetByID(txCtx, cmd.Kind, cmd.TraitID)
		if err != nil {
			return fmt.Errorf("failed to get %s: %w", cmd.Kind, err)
		}
		if trait == nil {
			return errors.NewNotFoundError(fmt.Sprintf("%s not found", cmd.Kind))
		}

		linked, err := uc.traitLinkRepo.Exists(txCtx, cmd.Kind, cmd.SolutionID, cmd.TraitID)
		if err != nil {
			return fmt.Errorf("failed to check %s association: %w", cmd.Kind, err)
		}
		if linked {
			result = AssociateResult{Created: false, Message: messageAlreadyExisted}
			return nil
		}

		if err := uc.traitLinkRepo.Create(txCtx, cmd.Kind, cmd.SolutionID, cmd.TraitID); err != nil {
			return fmt.Errorf("failed to create %s association: %w", cmd.Kind, err)
		}

		if err := uc.solutionRepo.SetDimensionHighlight(txCtx, cmd.SolutionID, cmd.Kind, trait.Pragma(), trait.Title()); err != nil {
			return fmt.Errorf("failed to update solution highlight: %w", err)
		}

		result = AssociateResult{Created: true, Message: fmt.Sprintf("solution associated with %s", cmd.Kind)}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to associate trait",
			"error", err, "kind", cmd.Kind, "solution_id", cmd.SolutionID, "trait_id", cmd.TraitID)
		return nil, err
	}

	uc.logger.Infow("trait association processed",
		"kind", cmd.Kind, "solution_id", cmd.SolutionID, "trait_id", cmd.TraitID, "created", result.Created)
	return &result, nil
}

func (uc *AssociateTraitUseCase) validateCommand(cmd AssociateTraitCommand) error {
	if !cmd.Kind.Valid() {
		return errors.NewValidationError("unknown trait kind")
	}
	if cmd.SolutionID == 0 {
		return errors.NewValidationError("solution ID is required")
	}
	if cmd.TraitID == 0 {
		return errors.NewValidationError("trait ID is required")
	}
	return nil
}
