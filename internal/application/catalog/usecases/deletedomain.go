package usecases

import (
	"context"
	"fmt"

	"github.com/solvia-inc/solvia/internal/domain/catalog"
	"github.com/solvia-inc/solvia/internal/shared/db"
	"github.com/solvia-inc/solvia/internal/shared/errors"
	"github.com/solvia-inc/solvia/internal/shared/logger"
)

// DeleteDomainUseCase removes a domain and every junction row referencing it.
// Junction rows go first; the store has no foreign keys to cascade for us, and
// a junction row pointing at a missing domain would silently vanish from
// joins instead of failing.
type DeleteDomainUseCase struct {
	domainRepo           catalog.DomainRepository
	domainLinkRepo       catalog.DomainLinkRepository
	domainSectorLinkRepo catalog.DomainSectorLinkRepository
	txMgr                *db.TransactionManager
	logger               logger.Interface
}

func NewDeleteDomainUseCase(
	domainRepo catalog.DomainRepository,
	domainLinkRepo catalog.DomainLinkRepository,
	domainSectorLinkRepo catalog.DomainSectorLinkRepository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *DeleteDomainUseCase {
	return &DeleteDomainUseCase{
		domainRepo:           domainRepo,
		domainLinkRepo:       domainLinkRepo,
		domainSectorLinkRepo: domainSectorLinkRepo,
		txMgr:                txMgr,
		logger:               logger,
	}
}

func (uc *DeleteDomainUseCase) Execute(ctx context.Context, domainID uint) error {
	if domainID == 0 {
		return errors.NewValidationError("domain ID is required")
	}

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		// zero junction rows deleted is fine; an unassociated domain is valid
		if _, err := uc.domainLinkRepo.DeleteByDomain(txCtx, domainID); err != nil {
			return fmt.Errorf("failed to delete domain associations: %w", err)
		}
		if _, err := uc.domainSectorLinkRepo.DeleteByDomain(txCtx, domainID); err != nil {
			return fmt.Errorf("failed to delete domain sector associations: %w", err)
		}

		affected, err := uc.domainRepo.Delete(txCtx, domainID)
		if err != nil {
			return fmt.Errorf("failed to delete domain: %w", err)
		}
		if affected == 0 {
			return errors.NewNotFoundError("domain not found")
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to delete domain", "error", err, "domain_id", domainID)
		return err
	}

	uc.logger.Infow("domain deleted", "domain_id", domainID)
	return nil
}
