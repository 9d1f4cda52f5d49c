package usecases

import (
	"context"
	"fmt"

	"github.com/solvia-inc/solvia/internal/domain/catalog"
	"github.com/solvia-inc/solvia/internal/shared/errors"
	"github.com/solvia-inc/solvia/internal/shared/logger"
)

// DisassociateResult reports whether a junction row was actually removed.
type DisassociateResult struct {
	Deleted bool `json:"deleted"`
}

type DisassociateDomainUseCase struct {
	domainLinkRepo catalog.DomainLinkRepository
	logger         logger.Interface
}

func NewDisassociateDomainUseCase(domainLinkRepo catalog.DomainLinkRepository, logger logger.Interface) *DisassociateDomainUseCase {
	return &DisassociateDomainUseCase{domainLinkRepo: domainLinkRepo, logger: logger}
}

func (uc *DisassociateDomainUseCase) Execute(ctx context.Context, solutionID, domainID uint) (*DisassociateResult, error) {
	if solutionID == 0 || domainID == 0 {
		return nil, errors.NewValidationError("solution ID and domain ID are required")
	}

	affected, err := uc.domainLinkRepo.Delete(ctx, solutionID, domainID)
	if err != nil {
		uc.logger.Errorw("failed to disassociate domain",
			"error", err, "solution_id", solutionID, "domain_id", domainID)
		return nil, fmt.Errorf("failed to disassociate domain: %w", err)
	}

	uc.logger.Infow("domain disassociated",
		"solution_id", solutionID, "domain_id", domainID, "deleted", affected > 0)
	return &DisassociateResult{Deleted: affected > 0}, nil
}

type DisassociateSectorUseCase struct {
	sectorLinkRepo catalog.SectorLinkRepository
	logger         logger.Interface
}

func NewDisassociateSectorUseCase(sectorLinkRepo catalog.SectorLinkRepository, logger logger.Interface) *DisassociateSectorUseCase {
	return &DisassociateSectorUseCase{sectorLinkRepo: sectorLinkRepo, logger: logger}
}

func (uc *DisassociateSectorUseCase) Execute(ctx context.Context, solutionID, sectorID uint) (*DisassociateResult, error) {
	if solutionID == 0 || sectorID == 0 {
		return nil, errors.NewValidationError("solution ID and sector ID are required")
	}

	affected, err := uc.sectorLinkRepo.Delete(ctx, solutionID, sectorID)
	if err != nil {
		uc.logger.Errorw("failed to disassociate sector",
			"error", err, "solution_id", solutionID, "sector_id", sectorID)
		return nil, fmt.Errorf("failed to disassociate sector: %w", err)
	}

	uc.logger.Infow("sector disassociated",
		"solution_id", solutionID, "sector_id", sectorID, "deleted", affected > 0)
	return &DisassociateResult{Deleted: affected > 0}, nil
}

type DisassociateDomainSectorUseCase struct {
	domainSectorLinkRepo catalog.DomainSectorLinkRepository
	logger               logger.Interface
}

func NewDisassociateDomainSectorUseCase(domainSectorLinkRepo catalog.DomainSectorLinkRepository, logger logger.Interface) *DisassociateDomainSectorUseCase {
	return &DisassociateDomainSectorUseCase{domainSectorLinkRepo: domainSectorLinkRepo, logger: logger}
}

func (uc *DisassociateDomainSectorUseCase) Execute(ctx context.Context, solutionID, domainID, sectorID uint) (*DisassociateResult, error) {
	if solutionID == 0 || domainID == 0 || sectorID == 0 {
		return nil, errors.NewValidationError("solution ID, domain ID and sector ID are required")
	}

	affected, err := uc.domainSectorLinkRepo.Delete(ctx, solutionID, domainID, sectorID)
	if err != nil {
		uc.logger.Errorw("failed to disassociate domain sector",
			"error", err, "solution_id", solutionID, "domain_id", domainID, "sector_id", sectorID)
		return nil, fmt.Errorf("failed to disassociate domain sector: %w", err)
	}

	uc.logger.Infow("domain sector disassociated",
		"solution_id", solutionID, "domain_id", domainID, "sector_id", sectorID, "deleted", affected > 0)
	return &DisassociateResult{Deleted: affected > 0}, nil
}

type DisassociateTraitUseCase struct {
	traitLinkRepo catalog.TraitLinkRepository
	logger        logger.Interface
}

func NewDisassociateTraitUseCase(traitLinkRepo catalog.TraitLinkRepository, logger logger.Interface) *DisassociateTraitUseCase {
	return &DisassociateTraitUseCase{traitLinkRepo: traitLinkRepo, logger: logger}
}

func (uc *DisassociateTraitUseCase) Execute(ctx context.Context, kind catalog.TraitKind, solutionID, traitID uint) (*DisassociateResult, error) {
	if !kind.Valid() {
		return nil, errors.NewValidationError("unknown trait kind")
	}
	if solutionID == 0 || traitID == 0 {
		return nil, errors.NewValidationError("solution ID and trait ID are required")
	}

	affected, err := uc.traitLinkRepo.Delete(ctx, kind, solutionID, traitID)
	if err != nil {
		uc.logger.Errorw("failed to disassociate trait",
			"error", err, "kind", kind, "solution_id", solutionID, "trait_id", traitID)
		return nil, fmt.Errorf("failed to disassociate %s: %w", kind, err)
	}

	uc.logger.Infow("trait disassociated",
		"kind", kind, "solution_id", solutionID, "trait_id", traitID, "deleted", affected > 0)
	return &DisassociateResult{Deleted: affected > 0}, nil
}
