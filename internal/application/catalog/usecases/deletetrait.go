package usecases

import (
	"context"
	"fmt"

	"github.com/solvia-inc/solvia/internal/domain/catalog"
	"github.com/solvia-inc/solvia/internal/shared/db"
	"github.com/solvia-inc/solvia/internal/shared/errors"
	"github.com/solvia-inc/solvia/internal/shared/logger"
)

// DeleteTraitUseCase removes a benefit, feature or problem together with its
// junction rows, children first, in one transaction.
type DeleteTraitUseCase struct {
	traitRepo     catalog.TraitRepository
	traitLinkRepo catalog.TraitLinkRepository
	txMgr         *db.TransactionManager
	logger        logger.Interface
}

func NewDeleteTraitUseCase(
	traitRepo catalog.TraitRepository,
	traitLinkRepo catalog.TraitLinkRepository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *DeleteTraitUseCase {
	return &DeleteTraitUseCase{
		traitRepo:     traitRepo,
		traitLinkRepo: traitLinkRepo,
		txMgr:         txMgr,
		logger:        logger,
	}
}

func (uc *DeleteTraitUseCase) Execute(ctx context.Context, kind catalog.TraitKind, traitID uint) error {
	if !kind.Valid() {
		return errors.NewValidationError("unknown trait kind")
	}
	if traitID == 0 {
		return errors.NewValidationError("trait ID is required")
	}

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.traitLinkRepo.DeleteByTrait(txCtx, kind, traitID); err != nil {
			return fmt.Errorf("failed to delete %s associations: %w", kind, err)
		}

		affected, err := uc.traitRepo.Delete(txCtx, kind, traitID)
		if err != nil {
			return fmt.Errorf("failed to delete %s: %w", kind, err)
		}
		if affected == 0 {
			return errors.NewNotFoundError(fmt.Sprintf("%s not found", kind))
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to delete trait", "error", err, "kind", kind, "trait_id", traitID)
		return err
	}

	uc.logger.Infow("trait deleted", "kind", kind, "trait_id", traitID)
	return nil
}
