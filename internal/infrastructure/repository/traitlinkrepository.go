package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/solvia-inc/solvia/internal/domain/catalog"
	"github.com/solvia-inc/solvia/internal/infrastructure/persistence/models"
	"github.com/solvia-inc/solvia/internal/shared/db"
	appErrors "github.com/solvia-inc/solvia/internal/shared/errors"
	"github.com/solvia-inc/solvia/internal/shared/logger"
)

// TraitLinkRepositoryImpl implements catalog.TraitLinkRepository over the
// three plain (solution, trait) junction tables.
type TraitLinkRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewTraitLinkRepository creates a new trait link repository instance
func NewTraitLinkRepository(gdb *gorm.DB, logger logger.Interface) catalog.TraitLinkRepository {
	return &TraitLinkRepositoryImpl{
		db:     gdb,
		logger: logger,
	}
}

// traitLinkModel returns a junction model value for the kind, plus the name
// of its trait-id column.
func traitLinkModel(kind catalog.TraitKind, solutionID, traitID uint) (interface{}, string, error) {
	switch kind {
	case catalog.TraitBenefit:
		return &models.SolutionBenefitModel{SolutionID: solutionID, BenefitID: traitID}, "benefit_id", nil
	case catalog.TraitFeature:
		return &models.SolutionFeatureModel{SolutionID: solutionID, FeatureID: traitID}, "feature_id", nil
	case catalog.TraitProblem:
		return &models.SolutionProblemModel{SolutionID: solutionID, ProblemID: traitID}, "problem_id", nil
	}
	return nil, "", fmt.Errorf("unknown trait kind: %s", kind)
}

func (r *TraitLinkRepositoryImpl) Create(ctx context.Context, kind catalog.TraitKind, solutionID, traitID uint) error {
	model, _, err := traitLinkModel(kind, solutionID, traitID)
	if err != nil {
		return err
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if appErrors.IsDuplicateError(err) {
			return appErrors.NewConflictError(fmt.Sprintf("solution is already associated with this %s", kind))
		}
		r.logger.Errorw("failed to create trait link",
			"kind", kind, "solution_id", solutionID, "trait_id", traitID, "error", err)
		return fmt.Errorf("failed to create %s link: %w", kind, err)
	}
	return nil
}

func (r *TraitLinkRepositoryImpl) Exists(ctx context.Context, kind catalog.TraitKind, solutionID, traitID uint) (bool, error) {
	model, column, err := traitLinkModel(kind, 0, 0)
	if err != nil {
		return false, err
	}

	var count int64
	err = db.GetTxFromContext(ctx, r.db).
		Model(model).
		Where(fmt.Sprintf("solution_id = ? AND %s = ?", column), solutionID, traitID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check %s link existence: %w", kind, err)
	}
	return count > 0, nil
}

func (r *TraitLinkRepositoryImpl) ListTraitIDsBySolution(ctx context.Context, kind catalog.TraitKind, solutionID uint) ([]uint, error) {
	model, column, err := traitLinkModel(kind, 0, 0)
	if err != nil {
		return nil, err
	}

	var ids []uint
	err = db.GetTxFromContext(ctx, r.db).
		Model(model).
		Where("solution_id = ?", solutionID).
		Order(column).
		Pluck(column, &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list %s links: %w", kind, err)
	}
	return ids, nil
}

func (r *TraitLinkRepositoryImpl) Delete(ctx context.Context, kind catalog.TraitKind, solutionID, traitID uint) (int64, error) {
	model, column, err := traitLinkModel(kind, 0, 0)
	if err != nil {
		return 0, err
	}

	result := db.GetTxFromContext(ctx, r.db).
		Where(fmt.Sprintf("solution_id = ? AND %s = ?", column), solutionID, traitID).
		Delete(model)
	if result.Error != nil {
		r.logger.Errorw("failed to delete trait link",
			"kind", kind, "solution_id", solutionID, "trait_id", traitID, "error", result.Error)
		return 0, fmt.Errorf("failed to delete %s link: %w", kind, result.Error)
	}
	return result.RowsAffected, nil
}

func (r *TraitLinkRepositoryImpl) DeleteByTrait(ctx context.Context, kind catalog.TraitKind, traitID uint) (int64, error) {
	model, column, err := traitLinkModel(kind, 0, 0)
	if err != nil {
		return 0, err
	}

	result := db.GetTxFromContext(ctx, r.db).
		Where(fmt.Sprintf("%s = ?", column), traitID).
		Delete(model)
	if result.Error != nil {
		r.logger.Errorw("failed to delete trait links by trait", "kind", kind, "trait_id", traitID, "error", result.Error)
		return 0, fmt.Errorf("failed to delete %s links: %w", kind, result.Error)
	}
	return result.RowsAffected, nil
}
