package usecases

import (
	"context"
	"fmt"

	"github.com/solvia-inc/solvia/internal/domain/catalog"
	"github.com/solvia-inc/solvia/internal/shared/db"
	"github.com/solvia-inc/solvia/internal/shared/errors"
	"github.com/solvia-inc/solvia/internal/shared/logger"
	"github.com/solvia-inc/solvia/internal/shared/services/richtext"
)

// CreateTraitCommand creates a benefit, feature or problem. When SolutionID
// is set the entity insert, the junction insert and the solution highlight
// update run in one transaction (create-and-associate).
type CreateTraitCommand struct {
	Kind        catalog.TraitKind
	Pragma      string
	Title       string
	Description string
	Icon        string
	SolutionID  uint
}

type CreateTraitResult struct {
	ID         uint
	Associated bool
}

type CreateTraitUseCase struct {
	traitRepo     catalog.TraitRepository
	traitLinkRepo catalog.TraitLinkRepository
	solutionRepo  catalog.SolutionRepository
	txMgr         *db.TransactionManager
	richText      richtext.Service
	logger        logger.Interface
}

func NewCreateTraitUseCase(
	traitRepo catalog.TraitRepository,
	traitLinkRepo catalog.TraitLinkRepository,
	solutionRepo catalog.SolutionRepository,
	txMgr *db.TransactionManager,
	richText richtext.Service,
	logger logger.Interface,
) *CreateTraitUseCase {
	return &CreateTraitUseCase{
		traitRepo:     traitRepo,
		traitLinkRepo: traitLinkRepo,
		solutionRepo:  solutionRepo,
		txMgr:         txMgr,
		richText:      richText,
		logger:        logger,
	}
}

func (uc *CreateTraitUseCase) Execute(ctx context.Context, cmd CreateTraitCommand) (*CreateTraitResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create trait command", "error", err)
		return nil, err
	}

	trait, err := catalog.NewTrait(
		cmd.Kind,
		cmd.Pragma,
		cmd.Title,
		uc.richText.SanitizeText(cmd.Description),
		cmd.Icon,
	)
	if err != nil {
		return nil, err
	}

	if cmd.SolutionID == 0 {
		if err := uc.traitRepo.Create(ctx, trait); err != nil {
			uc.logger.Errorw("failed to create trait", "error", err, "kind", cmd.Kind)
			return nil, err
		}
		uc.logger.Infow("trait created", "kind", cmd.Kind, "trait_id", trait.ID())
		return &CreateTraitResult{ID: trait.ID()}, nil
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		exists, err := uc.solutionRepo.Exists(txCtx, cmd.SolutionID)
		if err != nil {
			return fmt.Errorf("failed to check solution existence: %w", err)
		}
		if !exists {
			return errors.NewNotFoundError("solution not found")
		}

		if err := uc.traitRepo.Create(txCtx, trait); err != nil {
			return fmt.Errorf("failed to create %s: %w", cmd.Kind, err)
		}
		if err := uc.traitLinkRepo.Create(txCtx, cmd.Kind, cmd.SolutionID, trait.ID()); err != nil {
			return fmt.Errorf("failed to create %s association: %w", cmd.Kind, err)
		}
		if err := uc.solutionRepo.SetDimensionHighlight(txCtx, cmd.SolutionID, cmd.Kind, trait.Pragma(), trait.Title()); err != nil {
			return fmt.Errorf("failed to update solution highlight: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to create and associate trait",
			"error", err, "kind", cmd.Kind, "solution_id", cmd.SolutionID)
		return nil, err
	}

	uc.logger.Infow("trait created and associated",
		"kind", cmd.Kind, "trait_id", trait.ID(), "solution_id", cmd.SolutionID)
	return &CreateTraitResult{ID: trait.ID(), Associated: true}, nil
}

func (uc *CreateTraitUseCase) validateCommand(cmd CreateTraitCommand) error {
	if !cmd.Kind.Valid() {
		return errors.NewValidationError("unknown trait kind")
	}
	if cmd.Title == "" {
		return errors.NewValidationError("title is required")
	}
	return nil
}
