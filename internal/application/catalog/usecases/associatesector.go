package usecases

import (
	"context"
	"fmt"

	"github.com/solvia-inc/solvia/internal/domain/catalog"
	"github.com/solvia-inc/solvia/internal/shared/db"
	"github.com/solvia-inc/solvia/internal/shared/errors"
	"github.com/solvia-inc/solvia/internal/shared/logger"
)

type AssociateSectorCommand struct {
	SolutionID uint
	SectorID   uint
}

type AssociateSectorUseCase struct {
	solutionRepo   catalog.SolutionRepository
	sectorRepo     catalog.SectorRepository
	sectorLinkRepo catalog.SectorLinkRepository
	txMgr          *db.TransactionManager
	logger         logger.Interface
}

func NewAssociateSectorUseCase(
	solutionRepo catalog.SolutionRepository,
	sectorRepo catalog.SectorRepository,
	sectorLinkRepo catalog.SectorLinkRepository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *AssociateSectorUseCase {
	return &AssociateSectorUseCase{
		solutionRepo:   solutionRepo,
		sectorRepo:     sectorRepo,
		sectorLinkRepo: sectorLinkRepo,
		txMgr:          txMgr,
		logger:         logger,
	}
}

func (uc *AssociateSectorUseCase) Execute(ctx context.Context, cmd AssociateSectorCommand) (*AssociateResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid associate sector command", "error", err)
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

		exists, err = uc.sectorRepo.Exists(txCtx, cmd.SectorID)
		if err != nil {
			return fmt.Errorf("failed to check sector existence: %w", err)
		}
		if !exists {
			return errors.NewNotFoundError("sector not found")
		}

		linked, err := uc.sectorLinkRepo.Exists(txCtx, cmd.SolutionID, cmd.SectorID)
		if err != nil {
			return fmt.Errorf("failed to check sector association: %w", err)
		}
		if linked {
			result = AssociateResult{Created: false, Message: messageAlreadyExisted}
			return nil
		}

		// alternate text starts empty; it only overrides once edited
		if err := uc.sectorLinkRepo.Create(txCtx, &catalog.SectorLink{
			SolutionID: cmd.SolutionID,
			SectorID:   cmd.SectorID,
		}); err != nil {
			return fmt.Errorf("failed to create sector association: %w", err)
		}

		result = AssociateResult{Created: true, Message: "solution associated with sector"}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to associate sector",
			"error", err, "solution_id", cmd.SolutionID, "sector_id", cmd.SectorID)
		return nil, err
	}

	uc.logger.Infow("sector association processed",
		"solution_id", cmd.SolutionID, "sector_id", cmd.SectorID, "created", result.Created)
	return &result, nil
}

func (uc *AssociateSectorUseCase) validateCommand(cmd AssociateSectorCommand) error {
	if cmd.SolutionID == 0 {
		return errors.NewValidationError("solution ID is required")
	}
	if cmd.SectorID == 0 {
		return errors.NewValidationError("sector ID is required")
	}
	return nil
}
