package usecases

import (
	"context"
	"fmt"

	"github.com/solvia-inc/solvia/internal/domain/catalog"
	"github.com/solvia-inc/solvia/internal/shared/constants"
	"github.com/solvia-inc/solvia/internal/shared/logger"
)

type ListSolutionsCommand struct {
	Page     int
	PageSize int
}

type ListSolutionsResult struct {
	Solutions []*SolutionDTO
	Total     int64
	Page      int
	PageSize  int
}

type ListSolutionsUseCase struct {
	solutionRepo catalog.SolutionRepository
	logger       logger.Interface
}

func NewListSolutionsUseCase(solutionRepo catalog.SolutionRepository, logger logger.Interface) *ListSolutionsUseCase {
	return &ListSolutionsUseCase{
		solutionRepo: solutionRepo,
		logger:       logger,
	}
}

func (uc *ListSolutionsUseCase) Execute(ctx context.Context, cmd ListSolutionsCommand) (*ListSolutionsResult, error) {
	page := cmd.Page
	if page < 1 {
		page = 1
	}
	pageSize := cmd.PageSize
	if pageSize < 1 || pageSize > constants.MaxPageSize {
		pageSize = constants.DefaultPageSize
	}

	solutions, total, err := uc.solutionRepo.List(ctx, page, pageSize)
	if err != nil {
		uc.logger.Errorw("failed to list solutions", "error", err)
		return nil, fmt.Errorf("failed to list solutions: %w", err)
	}

	dtos := make([]*SolutionDTO, 0, len(solutions))
	for _, solution := range solutions {
		dtos = append(dtos, solutionToDTO(solution))
	}

	return &ListSolutionsResult{
		Solutions: dtos,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}
