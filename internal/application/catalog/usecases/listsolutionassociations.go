package usecases

import (
	"context"
	"fmt"

	"github.com/solvia-inc/solvia/internal/domain/catalog"
	"github.com/solvia-inc/solvia/internal/shared/errors"
	"github.com/solvia-inc/solvia/internal/shared/logger"
)

// SolutionAssociationsDTO aggregates everything hanging off one solution:
// domain links with their scoped snapshots, sector links with their alternate
// text, the three-way snapshots, and the traits of each kind.
type SolutionAssociationsDTO struct {
	SolutionID    uint                        `json:"solution_id"`
	Domains       []*catalog.DomainLink       `json:"domains"`
	Sectors       []*catalog.SectorLink       `json:"sectors"`
	DomainSectors []*catalog.DomainSectorLink `json:"domain_sectors"`
	Benefits      []*TraitDTO                 `json:"benefits"`
	Features      []*TraitDTO                 `json:"features"`
	Problems      []*TraitDTO                 `json:"problems"`
}

type ListSolutionAssociationsUseCase struct {
	solutionRepo         catalog.SolutionRepository
	domainLinkRepo       catalog.DomainLinkRepository
	sectorLinkRepo       catalog.SectorLinkRepository
	domainSectorLinkRepo catalog.DomainSectorLinkRepository
	traitRepo            catalog.TraitRepository
	traitLinkRepo        catalog.TraitLinkRepository
	logger               logger.Interface
}

func NewListSolutionAssociationsUseCase(
	solutionRepo catalog.SolutionRepository,
	domainLinkRepo catalog.DomainLinkRepository,
	sectorLinkRepo catalog.SectorLinkRepository,
	domainSectorLinkRepo catalog.DomainSectorLinkRepository,
	traitRepo catalog.TraitRepository,
	traitLinkRepo catalog.TraitLinkRepository,
	logger logger.Interface,
) *ListSolutionAssociationsUseCase {
	return &ListSolutionAssociationsUseCase{
		solutionRepo:         solutionRepo,
		domainLinkRepo:       domainLinkRepo,
		sectorLinkRepo:       sectorLinkRepo,
		domainSectorLinkRepo: domainSectorLinkRepo,
		traitRepo:            traitRepo,
		traitLinkRepo:        traitLinkRepo,
		logger:               logger,
	}
}

func (uc *ListSolutionAssociationsUseCase) Execute(ctx context.Context, solutionID uint) (*SolutionAssociationsDTO, error) {
	if solutionID == 0 {
		return nil, errors.NewValidationError("solution ID is required")
	}

	exists, err := uc.solutionRepo.Exists(ctx, solutionID)
	if err != nil {
		return nil, fmt.Errorf("failed to check solution existence: %w", err)
	}
	if !exists {
		return nil, errors.NewNotFoundError("solution not found")
	}

	dto := &SolutionAssociationsDTO{SolutionID: solutionID}

	if dto.Domains, err = uc.domainLinkRepo.ListBySolution(ctx, solutionID); err != nil {
		uc.logger.Errorw("failed to list domain associations", "error", err, "solution_id", solutionID)
		return nil, fmt.Errorf("failed to list domain associations: %w", err)
	}
	if dto.Sectors, err = uc.sectorLinkRepo.ListBySolution(ctx, solutionID); err != nil {
		uc.logger.Errorw("failed to list sector associations", "error", err, "solution_id", solutionID)
		return nil, fmt.Errorf("failed to list sector associations: %w", err)
	}
	if dto.DomainSectors, err = uc.domainSectorLinkRepo.ListBySolution(ctx, solutionID); err != nil {
		uc.logger.Errorw("failed to list domain sector associations", "error", err, "solution_id", solutionID)
		return nil, fmt.Errorf("failed to list domain sector associations: %w", err)
	}

	if dto.Benefits, err = uc.listTraits(ctx, catalog.TraitBenefit, solutionID); err != nil {
		return nil, err
	}
	if dto.Features, err = uc.listTraits(ctx, catalog.TraitFeature, solutionID); err != nil {
		return nil, err
	}
	if dto.Problems, err = uc.listTraits(ctx, catalog.TraitProblem, solutionID); err != nil {
		return nil, err
	}

	return dto, nil
}

func (uc *ListSolutionAssociationsUseCase) listTraits(ctx context.Context, kind catalog.TraitKind, solutionID uint) ([]*TraitDTO, error) {
	ids, err := uc.traitLinkRepo.ListTraitIDsBySolution(ctx, kind, solutionID)
	if err != nil {
		uc.logger.Errorw("failed to list trait associations", "error", err, "kind", kind, "solution_id", solutionID)
		return nil, fmt.Errorf("failed to list %s associations: %w", kind, err)
	}

	traits, err := uc.traitRepo.ListByIDs(ctx, kind, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load %ss: %w", kind, err)
	}

	dtos := make([]*TraitDTO, 0, len(traits))
	for _, trait := range traits {
		dtos = append(dtos, traitToDTO(trait))
	}
	return dtos, nil
}
