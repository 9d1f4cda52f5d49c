package usecases

import (
	"context"
	"fmt"

	"github.com/solvia-inc/solvia/internal/domain/catalog"
	"github.com/solvia-inc/solvia/internal/shared/db"
	"github.com/solvia-inc/solvia/internal/shared/errors"
	"github.com/solvia-inc/solvia/internal/shared/logger"
)

// AssociateResult is shared by every associate use case. Re-associating an
// existing pair is a successful no-op, never an error.
type AssociateResult struct {
	Created bool   `json:"created"`
	Message string `json:"message"`
}

const messageAlreadyExisted = "relation already existed"

type AssociateDomainCommand struct {
	SolutionID uint
	DomainID   uint
}

type AssociateDomainUseCase struct {
	solutionRepo   catalog.SolutionRepository
	domainRepo     catalog.DomainRepository
	domainLinkRepo catalog.DomainLinkRepository
	txMgr          *db.TransactionManager
	logger         logger.Interface
}

func NewAssociateDomainUseCase(
	solutionRepo catalog.SolutionRepository,
	domainRepo catalog.DomainRepository,
	domainLinkRepo catalog.DomainLinkRepository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *AssociateDomainUseCase {
	return &AssociateDomainUseCase{
		solutionRepo:   solutionRepo,
		domainRepo:     domainRepo,
		domainLinkRepo: domainLinkRepo,
		txMgr:          txMgr,
		logger:         logger,
	}
}

func (uc *AssociateDomainUseCase) Execute(ctx context.Context, cmd AssociateDomainCommand) (*AssociateResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid associate domain command", "error", err)
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

		linked, err := uc.domainLinkRepo.Exists(txCtx, cmd.SolutionID, cmd.DomainID)
		if err != nil {
			return fmt.Errorf("failed to check domain association: %w", err)
		}
		if linked {
			result = AssociateResult{Created: false, Message: messageAlreadyExisted}
			return nil
		}

		if err := uc.domainLinkRepo.Create(txCtx, &catalog.DomainLink{
			SolutionID:   cmd.SolutionID,
			DomainID:     cmd.DomainID,
			Presentation: solution.Presentation(),
		}); err != nil {
			return fmt.Errorf("failed to create domain association: %w", err)
		}

		result = AssociateResult{Created: true, Message: "solution associated with domain"}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to associate domain",
			"error", err, "solution_id", cmd.SolutionID, "domain_id", cmd.DomainID)
		return nil, err
	}

	uc.logger.Infow("domain association processed",
		"solution_id", cmd.SolutionID, "domain_id", cmd.DomainID, "created", result.Created)
	return &result, nil
}

func (uc *AssociateDomainUseCase) validateCommand(cmd AssociateDomainCommand) error {
	if cmd.SolutionID == 0 {
		return errors.NewValidationError("solution ID is required")
	}
	if cmd.DomainID == 0 {
		return errors.NewValidationError("domain ID is required")
	}
	return nil
}
