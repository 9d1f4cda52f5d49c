package usecases

import (
	"context"
	"fmt"

	"github.com/solvia-inc/solvia/internal/domain/catalog"
	"github.com/solvia-inc/solvia/internal/shared/db"
	"github.com/solvia-inc/solvia/internal/shared/errors"
	"github.com/solvia-inc/solvia/internal/shared/logger"
	"github.com/solvia-inc/solvia/internal/shared/services/richtext"
	"github.com/solvia-inc/solvia/internal/shared/utils"
)

type CreateSectorCommand struct {
	Description string
	WebText     string
	Prefix      string
	Slug        string
}

type CreateSectorResult struct {
	SectorID            uint
	SolutionsLinked     int
	DomainSectorsLinked int
}

// CreateSectorUseCase creates a sector and fans it out across the whole
// catalog in one transaction: a (solution, sector) row with empty alternate
// text for every existing solution, and a (solution, domain, sector) snapshot
// row for every existing (solution, domain) pair, each copying the snapshot
// already stored on the pair. Domains stay scoped to one solution; sectors
// are catalog-wide.
type CreateSectorUseCase struct {
	solutionRepo         catalog.SolutionRepository
	sectorRepo           catalog.SectorRepository
	sectorLinkRepo       catalog.SectorLinkRepository
	domainLinkRepo       catalog.DomainLinkRepository
	domainSectorLinkRepo catalog.DomainSectorLinkRepository
	txMgr                *db.TransactionManager
	richText             richtext.Service
	logger               logger.Interface
}

func NewCreateSectorUseCase(
	solutionRepo catalog.SolutionRepository,
	sectorRepo catalog.SectorRepository,
	sectorLinkRepo catalog.SectorLinkRepository,
	domainLinkRepo catalog.DomainLinkRepository,
	domainSectorLinkRepo catalog.DomainSectorLinkRepository,
	txMgr *db.TransactionManager,
	richText richtext.Service,
	logger logger.Interface,
) *CreateSectorUseCase {
	return &CreateSectorUseCase{
		solutionRepo:         solutionRepo,
		sectorRepo:           sectorRepo,
		sectorLinkRepo:       sectorLinkRepo,
		domainLinkRepo:       domainLinkRepo,
		domainSectorLinkRepo: domainSectorLinkRepo,
		txMgr:                txMgr,
		richText:             richText,
		logger:               logger,
	}
}

func (uc *CreateSectorUseCase) Execute(ctx context.Context, cmd CreateSectorCommand) (*CreateSectorResult, error) {
	if cmd.Description == "" {
		return nil, errors.NewValidationError("description is required")
	}

	slug := cmd.Slug
	if slug == "" {
		slug = utils.Slugify(cmd.Description)
	}

	sector, err := catalog.NewSector(
		cmd.Description,
		uc.richText.SanitizeText(cmd.WebText),
		cmd.Prefix,
		slug,
	)
	if err != nil {
		return nil, err
	}

	var solutionsLinked, domainSectorsLinked int
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.sectorRepo.Create(txCtx, sector); err != nil {
			return fmt.Errorf("failed to create sector: %w", err)
		}

		solutionIDs, err := uc.solutionRepo.ListIDs(txCtx)
		if err != nil {
			return fmt.Errorf("failed to list solutions: %w", err)
		}

		sectorLinks := make([]*catalog.SectorLink, 0, len(solutionIDs))
		for _, solutionID := range solutionIDs {
			sectorLinks = append(sectorLinks, &catalog.SectorLink{
				SolutionID: solutionID,
				SectorID:   sector.ID(),
			})
		}
		if err := uc.sectorLinkRepo.CreateBatch(txCtx, sectorLinks); err != nil {
			return fmt.Errorf("failed to create sector associations: %w", err)
		}
		solutionsLinked = len(sectorLinks)

		domainLinks, err := uc.domainLinkRepo.ListAll(txCtx)
		if err != nil {
			return fmt.Errorf("failed to list domain associations: %w", err)
		}

		// triple rows snapshot the solution's current presentation, not the
		// possibly-diverged (solution, domain) copy
		presentations := make(map[uint]catalog.Presentation, len(solutionIDs))
		tripleLinks := make([]*catalog.DomainSectorLink, 0, len(domainLinks))
		for _, link := range domainLinks {
			presentation, ok := presentations[link.SolutionID]
			if !ok {
				solution, err := uc.solutionRepo.GetByID(txCtx, link.SolutionID)
				if err != nil {
					return fmt.Errorf("failed to get solution: %w", err)
				}
				if solution == nil {
					continue
				}
				presentation = solution.Presentation()
				presentations[link.SolutionID] = presentation
			}
			tripleLinks = append(tripleLinks, &catalog.DomainSectorLink{
				SolutionID:   link.SolutionID,
				DomainID:     link.DomainID,
				SectorID:     sector.ID(),
				Presentation: presentation,
			})
		}
		if err := uc.domainSectorLinkRepo.CreateBatch(txCtx, tripleLinks); err != nil {
			return fmt.Errorf("failed to create domain sector associations: %w", err)
		}
		domainSectorsLinked = len(tripleLinks)

		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to create sector", "error", err)
		return nil, err
	}

	uc.logger.Infow("sector created",
		"sector_id", sector.ID(),
		"solutions_linked", solutionsLinked,
		"domain_sectors_linked", domainSectorsLinked,
	)

	return &CreateSectorResult{
		SectorID:            sector.ID(),
		SolutionsLinked:     solutionsLinked,
		DomainSectorsLinked: domainSectorsLinked,
	}, nil
}
