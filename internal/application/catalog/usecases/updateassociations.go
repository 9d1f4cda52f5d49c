package usecases

import (
	"context"
	"fmt"

	"github.com/solvia-inc/solvia/internal/domain/catalog"
	"github.com/solvia-inc/solvia/internal/shared/errors"
	"github.com/solvia-inc/solvia/internal/shared/logger"
)

// UpdateSolutionDomainCommand edits the scoped snapshot of a
// (solution, domain) pair. Only the junction row changes; the solution's own
// presentation is never touched from here.
type UpdateSolutionDomainCommand struct {
	SolutionID uint
	DomainID   uint
	Update     catalog.PresentationUpdate
}

type UpdateSolutionDomainUseCase struct {
	domainLinkRepo catalog.DomainLinkRepository
	logger         logger.Interface
}

func NewUpdateSolutionDomainUseCase(domainLinkRepo catalog.DomainLinkRepository, logger logger.Interface) *UpdateSolutionDomainUseCase {
	return &UpdateSolutionDomainUseCase{domainLinkRepo: domainLinkRepo, logger: logger}
}

func (uc *UpdateSolutionDomainUseCase) Execute(ctx context.Context, cmd UpdateSolutionDomainCommand) error {
	if cmd.SolutionID == 0 || cmd.DomainID == 0 {
		return errors.NewValidationError("solution ID and domain ID are required")
	}
	if cmd.Update.IsEmpty() {
		return errors.NewValidationError("no fields to update")
	}

	affected, err := uc.domainLinkRepo.UpdateFields(ctx, cmd.SolutionID, cmd.DomainID, cmd.Update)
	if err != nil {
		uc.logger.Errorw("failed to update domain association",
			"error", err, "solution_id", cmd.SolutionID, "domain_id", cmd.DomainID)
		return fmt.Errorf("failed to update domain association: %w", err)
	}
	if affected == 0 {
		exists, err := uc.domainLinkRepo.Exists(ctx, cmd.SolutionID, cmd.DomainID)
		if err != nil {
			return fmt.Errorf("failed to check domain association: %w", err)
		}
		if !exists {
			return errors.NewNotFoundError("domain association not found")
		}
	}

	uc.logger.Infow("domain association updated",
		"solution_id", cmd.SolutionID, "domain_id", cmd.DomainID)
	return nil
}

// UpdateSolutionSectorCommand edits the alternate text of a
// (solution, sector) pair.
type UpdateSolutionSectorCommand struct {
	SolutionID uint
	SectorID   uint
	Update     catalog.SectorLinkUpdate
}

type UpdateSolutionSectorUseCase struct {
	sectorLinkRepo catalog.SectorLinkRepository
	logger         logger.Interface
}

func NewUpdateSolutionSectorUseCase(sectorLinkRepo catalog.SectorLinkRepository, logger logger.Interface) *UpdateSolutionSectorUseCase {
	return &UpdateSolutionSectorUseCase{sectorLinkRepo: sectorLinkRepo, logger: logger}
}

func (uc *UpdateSolutionSectorUseCase) Execute(ctx context.Context, cmd UpdateSolutionSectorCommand) error {
	if cmd.SolutionID == 0 || cmd.SectorID == 0 {
		return errors.NewValidationError("solution ID and sector ID are required")
	}
	if cmd.Update.IsEmpty() {
		return errors.NewValidationError("no fields to update")
	}

	affected, err := uc.sectorLinkRepo.UpdateFields(ctx, cmd.SolutionID, cmd.SectorID, cmd.Update)
	if err != nil {
		uc.logger.Errorw("failed to update sector association",
			"error", err, "solution_id", cmd.SolutionID, "sector_id", cmd.SectorID)
		return fmt.Errorf("failed to update sector association: %w", err)
	}
	if affected == 0 {
		exists, err := uc.sectorLinkRepo.Exists(ctx, cmd.SolutionID, cmd.SectorID)
		if err != nil {
			return fmt.Errorf("failed to check sector association: %w", err)
		}
		if !exists {
			return errors.NewNotFoundError("sector association not found")
		}
	}

	uc.logger.Infow("sector association updated",
		"solution_id", cmd.SolutionID, "sector_id", cmd.SectorID)
	return nil
}

// UpdateSolutionDomainSectorCommand edits the sector-scoped snapshot of a
// (solution, domain, sector) triple. Only the triple row itself is required
// to exist; the pairwise memberships are not re-verified.
type UpdateSolutionDomainSectorCommand struct {
	SolutionID uint
	DomainID   uint
	SectorID   uint
	Update     catalog.PresentationUpdate
}

type UpdateSolutionDomainSectorUseCase struct {
	domainSectorLinkRepo catalog.DomainSectorLinkRepository
	logger               logger.Interface
}

func NewUpdateSolutionDomainSectorUseCase(domainSectorLinkRepo catalog.DomainSectorLinkRepository, logger logger.Interface) *UpdateSolutionDomainSectorUseCase {
	return &UpdateSolutionDomainSectorUseCase{domainSectorLinkRepo: domainSectorLinkRepo, logger: logger}
}

func (uc *UpdateSolutionDomainSectorUseCase) Execute(ctx context.Context, cmd UpdateSolutionDomainSectorCommand) error {
	if cmd.SolutionID == 0 || cmd.DomainID == 0 || cmd.SectorID == 0 {
		return errors.NewValidationError("solution ID, domain ID and sector ID are required")
	}
	if cmd.Update.IsEmpty() {
		return errors.NewValidationError("no fields to update")
	}

	affected, err := uc.domainSectorLinkRepo.UpdateFields(ctx, cmd.SolutionID, cmd.DomainID, cmd.SectorID, cmd.Update)
	if err != nil {
		uc.logger.Errorw("failed to update domain sector association",
			"error", err, "solution_id", cmd.SolutionID, "domain_id", cmd.DomainID, "sector_id", cmd.SectorID)
		return fmt.Errorf("failed to update domain sector association: %w", err)
	}
	if affected == 0 {
		exists, err := uc.domainSectorLinkRepo.Exists(ctx, cmd.SolutionID, cmd.DomainID, cmd.SectorID)
		if err != nil {
			return fmt.Errorf("failed to check domain sector association: %w", err)
		}
		if !exists {
			return errors.NewNotFoundError("domain sector association not found")
		}
	}

	uc.logger.Infow("domain sector association updated",
		"solution_id", cmd.SolutionID, "domain_id", cmd.DomainID, "sector_id", cmd.SectorID)
	return nil
}
