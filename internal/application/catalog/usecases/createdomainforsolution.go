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

type CreateDomainForSolutionCommand struct {
	SolutionID  uint
	Description string
	WebText     string
	Prefix      string
	Slug        string
}

type CreateDomainForSolutionResult struct {
	DomainID   uint
	SolutionID uint
}

// CreateDomainForSolutionUseCase creates a classification domain scoped to
// one solution: the domain row and a (solution, domain) snapshot row carrying
// a copy of the solution's presentation, both in one transaction. A rollback
// leaves neither. Unlike sectors, a new domain touches no other solution.
type CreateDomainForSolutionUseCase struct {
	solutionRepo   catalog.SolutionRepository
	domainRepo     catalog.DomainRepository
	domainLinkRepo catalog.DomainLinkRepository
	txMgr          *db.TransactionManager
	richText       richtext.Service
	logger         logger.Interface
}

func NewCreateDomainForSolutionUseCase(
	solutionRepo catalog.SolutionRepository,
	domainRepo catalog.DomainRepository,
	domainLinkRepo catalog.DomainLinkRepository,
	txMgr *db.TransactionManager,
	richText richtext.Service,
	logger logger.Interface,
) *CreateDomainForSolutionUseCase {
	return &CreateDomainForSolutionUseCase{
		solutionRepo:   solutionRepo,
		domainRepo:     domainRepo,
		domainLinkRepo: domainLinkRepo,
		txMgr:          txMgr,
		richText:       richText,
		logger:         logger,
	}
}

func (uc *CreateDomainForSolutionUseCase) Execute(ctx context.Context, cmd CreateDomainForSolutionCommand) (*CreateDomainForSolutionResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create domain command", "error", err)
		return nil, err
	}

	slug := cmd.Slug
	if slug == "" {
		slug = utils.Slugify(cmd.Description)
	}

	domain, err := catalog.NewDomain(
		cmd.Description,
		uc.richText.SanitizeText(cmd.WebText),
		cmd.Prefix,
		slug,
	)
	if err != nil {
		return nil, err
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		solution, err := uc.solutionRepo.GetByID(txCtx, cmd.SolutionID)
		if err != nil {
			return fmt.Errorf("failed to get solution: %w", err)
		}
		if solution == nil {
			return errors.NewNotFoundError("solution not found")
		}

		if err := uc.domainRepo.Create(txCtx, domain); err != nil {
			return fmt.Errorf("failed to create domain: %w", err)
		}

		// snapshot copy; the link row diverges from the solution from here on
		if err := uc.domainLinkRepo.Create(txCtx, &catalog.DomainLink{
			SolutionID:   solution.ID(),
			DomainID:     domain.ID(),
			Presentation: solution.Presentation(),
		}); err != nil {
			return fmt.Errorf("failed to create domain association: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to create domain for solution",
			"error", err, "solution_id", cmd.SolutionID)
		return nil, err
	}

	uc.logger.Infow("domain created for solution",
		"domain_id", domain.ID(), "solution_id", cmd.SolutionID)

	return &CreateDomainForSolutionResult{
		DomainID:   domain.ID(),
		SolutionID: cmd.SolutionID,
	}, nil
}

func (uc *CreateDomainForSolutionUseCase) validateCommand(cmd CreateDomainForSolutionCommand) error {
	if cmd.SolutionID == 0 {
		return errors.NewValidationError("solution ID is required")
	}
	if cmd.Description == "" {
		return errors.NewValidationError("description is required")
	}
	return nil
}
