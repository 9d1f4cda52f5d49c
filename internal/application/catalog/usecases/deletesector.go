package usecases

import (
	"context"
	"fmt"

	"github.com/solvia-inc/solvia/internal/domain/catalog"
	"github.com/solvia-inc/solvia/internal/shared/db"
	"github.com/solvia-inc/solvia/internal/shared/errors"
	"github.com/solvia-inc/solvia/internal/shared/logger"
)

// DeleteSectorUseCase removes a sector and every junction row referencing it,
// children first, in one transaction.
type DeleteSectorUseCase struct {
	sectorRepo           catalog.SectorRepository
	sectorLinkRepo       catalog.SectorLinkRepository
	domainSectorLinkRepo catalog.DomainSectorLinkRepository
	txMgr                *db.TransactionManager
	logger               logger.Interface
}

func NewDeleteSectorUseCase(
	sectorRepo catalog.SectorRepository,
	sectorLinkRepo catalog.SectorLinkRepository,
	domainSectorLinkRepo catalog.DomainSectorLinkRepository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *DeleteSectorUseCase {
	return &DeleteSectorUseCase{
		sectorRepo:           sectorRepo,
		sectorLinkRepo:       sectorLinkRepo,
		domainSectorLinkRepo: domainSectorLinkRepo,
		txMgr:                txMgr,
		logger:               logger,
	}
}

func (uc *DeleteSectorUseCase) Execute(ctx context.Context, sectorID uint) error {
	if sectorID == 0 {
		return errors.NewValidationError("sector ID is required")
	}

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.sectorLinkRepo.DeleteBySector(txCtx, sectorID); err != nil {
			return fmt.Errorf("failed to delete sector associations: %w", err)
		}
		if _, err := uc.domainSectorLinkRepo.DeleteBySector(txCtx, sectorID); err != nil {
			return fmt.Errorf("failed to delete domain sector associations: %w", err)
		}

		affected, err := uc.sectorRepo.Delete(txCtx, sectorID)
		if err != nil {
			return fmt.Errorf("failed to delete sector: %w", err)
		}
		if affected == 0 {
			return errors.NewNotFoundError("sector not found")
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to delete sector", "error", err, "sector_id", sectorID)
		return err
	}

	uc.logger.Infow("sector deleted", "sector_id", sectorID)
	return nil
}
