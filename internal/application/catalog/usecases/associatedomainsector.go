package usecases

import (
	"context"
	"fmt"

	"github.com/solvia-inc/solvia/internal/domain/catalog"
	"github.com/solvia-inc/solvia/internal/shared/db"
	"github.com/solvia-inc/solvia/internal/shared/errors"
	"github.com/solvia-inc/solvia/internal/shared/logger"
)

type AssociateDomainSectorCommand struct {
	SolutionID uint
	DomainID   uint
	SectorID   uint
}

// AssociateDomainSectorUseCase creates the sector-scoped snapshot row for a
// (solution, domain, sector) triple. It verifies all three entities exist but
// not that the pairwise memberships do; that looser precondition is the
// established behavior for the triple.
type AssociateDomainSectorUseCase struct {
	solutionRepo         catalog.SolutionRepository
	domainRepo           catalog.DomainRepository
	sectorRepo           catalog.SectorRepository
	domainSectorLinkRepo catalog.DomainSectorLinkRepository
	txMgr                *db.TransactionManager
	logger               logger.Interface
}

func NewAssociateDomainSectorUseCase(
	solutionRepo catalog.SolutionRepository,
	domainRepo catalog.DomainRepository,
	sectorRepo catalog.SectorRepository,
	domainSectorLinkRepo catalog.DomainSectorLinkRepository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *AssociateDomainSectorUseCase {
	return &AssociateDomainSectorUseCase{
		solutionRepo:         solutionRepo,
		domainRepo:           domainRepo,
		sectorRepo:           sectorRepo,
		domainSectorLinkRepo: domainSectorLinkRepo,
		txMgr:                txMgr,
		logger:               logger,
	}
}

func (uc *AssociateDomainSectorUseCase) Execute(ctx context.Context, cmd AssociateDomainSectorCommand) (*AssociateResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid associate domain sector command", "error", err)
		return nil, err
	}

	var result AssociateResult
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		solution, err := uc.solutionRepo.GetByID(txCtx, cmd.SolutionID)
		if err != nil {
			return fmt.Errorf("failed to get solution: %w", err)
		}
		if solution == nil {
			return errors.NewNotFoundError("solution not found")
		}

		exists, err := uc.domainRepo.Exists(txCtx, cmd.DomainID)
		if err != nil {
			return fmt.Errorf("failed to check domain existence: %w", err)
		}
		if !exists {
			return errors.NewNotFoundError("domain not found")
		}

		exists, err = uc.sectorRepo.Exists(txCtx, cmd.SectorID)
		if err != nil {
			return fmt.Errorf("failed to check sector existence: %w", err)
		}
		if !exists {
			return errors.NewNotFoundError("sector not found")
		}

		linked, err := uc.domainSectorLinkRepo.Exists(txCtx, cmd.SolutionID, cmd.DomainID, cmd.SectorID)
		if err != nil {
			return fmt.Errorf("failed to check domain sector association: %w", err)
		}
		if linked {
			result = AssociateResult{Created: false, Message: messageAlreadyExisted}
			return nil
		}

		if err := uc.domainSectorLinkRepo.Create(txCtx, &catalog.DomainSectorLink{
			SolutionID:   cmd.SolutionID,
			DomainID:     cmd.DomainID,
			SectorID:     cmd.SectorID,
			Presentation: solution.Presentation(),
		}); err != nil {
			return fmt.Errorf("failed to create domain sector association: %w", err)
		}

		result = AssociateResult{Created: true, Message: "solution associated with domain and sector"}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to associate domain sector",
			"error", err, "solution_id", cmd.SolutionID, "domain_id", cmd.DomainID, "sector_id", cmd.SectorID)
		return nil, err
	}

	uc.logger.Infow("domain sector association processed",
		"solution_id", cmd.SolutionID, "domain_id", cmd.DomainID, "sector_id", cmd.SectorID,
		"created", result.Created)
	return &result, nil
}

func (uc *AssociateDomainSectorUseCase) validateCommand(cmd AssociateDomainSectorCommand) error {
	if cmd.SolutionID == 0 {
		return errors.NewValidationError("solution ID is required")
	}
	if cmd.DomainID == 0 {
		return errors.NewValidationError("domain ID is required")
	}
	if cmd.SectorID == 0 {
		return errors.NewValidationError("sector ID is required")
	}
	return nil
}
