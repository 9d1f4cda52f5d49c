package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/solvia-inc/solvia/internal/domain/catalog"
	"github.com/solvia-inc/solvia/internal/infrastructure/persistence/mappers"
	"github.com/solvia-inc/solvia/internal/infrastructure/persistence/models"
	"github.com/solvia-inc/solvia/internal/shared/db"
	"github.com/solvia-inc/solvia/internal/shared/logger"
)

// TraitRepositoryImpl implements catalog.TraitRepository. Benefits, features
// and problems each keep their own table; the trait kind picks it.
type TraitRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TraitMapper
	logger logger.Interface
}

// NewTraitRepository creates a new trait repository instance
func NewTraitRepository(gdb *gorm.DB, logger logger.Interface) catalog.TraitRepository {
	return &TraitRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewTraitMapper(),
		logger: logger,
	}
}

// traitModel returns a fresh model value for the kind's table.
func traitModel(kind catalog.TraitKind) (interface{}, error) {
	switch kind {
	case catalog.TraitBenefit:
		return &models.BenefitModel{}, nil
	case catalog.TraitFeature:
		return &models.FeatureModel{}, nil
	case catalog.TraitProblem:
		return &models.ProblemModel{}, nil
	}
	return nil, fmt.Errorf("unknown trait kind: %s", kind)
}

func (r *TraitRepositoryImpl) Create(ctx context.Context, trait *catalog.Trait) error {
	handle := db.GetTxFromContext(ctx, r.db)

	switch trait.Kind() {
	case catalog.TraitBenefit:
		model, err := r.mapper.ToBenefitModel(trait)
		if err != nil {
			return err
		}
		if err := handle.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create benefit: %w", err)
		}
		return trait.SetID(model.ID)
	case catalog.TraitFeature:
		model, err := r.mapper.ToFeatureModel(trait)
		if err != nil {
			return err
		}
		if err := handle.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create feature: %w", err)
		}
		return trait.SetID(model.ID)
	case catalog.TraitProblem:
		model, err := r.mapper.ToProblemModel(trait)
		if err != nil {
			return err
		}
		if err := handle.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create problem: %w", err)
		}
		return trait.SetID(model.ID)
	}
	return fmt.Errorf("unknown trait kind: %s", trait.Kind())
}

func (r *TraitRepositoryImpl) GetByID(ctx context.Context, kind catalog.TraitKind, id uint) (*catalog.Trait, error) {
	handle := db.GetTxFromContext(ctx, r.db)

	switch kind {
	case catalog.TraitBenefit:
		var model models.BenefitModel
		if err := handle.First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to get benefit: %w", err)
		}
		return r.mapper.BenefitToEntity(&model)
	case catalog.TraitFeature:
		var model models.FeatureModel
		if err := handle.First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to get feature: %w", err)
		}
		return r.mapper.FeatureToEntity(&model)
	case catalog.TraitProblem:
		var model models.ProblemModel
		if err := handle.First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to get problem: %w", err)
		}
		return r.mapper.ProblemToEntity(&model)
	}
	return nil, fmt.Errorf("unknown trait kind: %s", kind)
}

func (r *TraitRepositoryImpl) List(ctx context.Context, kind catalog.TraitKind) ([]*catalog.Trait, error) {
	return r.listWhere(ctx, kind, nil)
}

func (r *TraitRepositoryImpl) ListByIDs(ctx context.Context, kind catalog.TraitKind, ids []uint) ([]*catalog.Trait, error) {
	if len(ids) == 0 {
		return []*catalog.Trait{}, nil
	}
	return r.listWhere(ctx, kind, ids)
}

func (r *TraitRepositoryImpl) listWhere(ctx context.Context, kind catalog.TraitKind, ids []uint) ([]*catalog.Trait, error) {
	handle := db.GetTxFromContext(ctx, r.db).Order("id")
	if ids != nil {
		handle = handle.Where("id IN ?", ids)
	}

	traits := []*catalog.Trait{}
	switch kind {
	case catalog.TraitBenefit:
		var rows []*models.BenefitModel
		if err := handle.Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to list benefits: %w", err)
		}
		for _, row := range rows {
			trait, err := r.mapper.BenefitToEntity(row)
			if err != nil {
				return nil, err
			}
			traits = append(traits, trait)
		}
	case catalog.TraitFeature:
		var rows []*models.FeatureModel
		if err := handle.Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to list features: %w", err)
		}
		for _, row := range rows {
			trait, err := r.mapper.FeatureToEntity(row)
			if err != nil {
				return nil, err
			}
			traits = append(traits, trait)
		}
	case catalog.TraitProblem:
		var rows []*models.ProblemModel
		if err := handle.Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to list problems: %w", err)
		}
		for _, row := range rows {
			trait, err := r.mapper.ProblemToEntity(row)
			if err != nil {
				return nil, err
			}
			traits = append(traits, trait)
		}
	default:
		return nil, fmt.Errorf("unknown trait kind: %s", kind)
	}
	return traits, nil
}

func (r *TraitRepositoryImpl) Exists(ctx context.Context, kind catalog.TraitKind, id uint) (bool, error) {
	model, err := traitModel(kind)
	if err != nil {
		return false, err
	}

	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(model).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check %s existence: %w", kind, err)
	}
	return count > 0, nil
}

func (r *TraitRepositoryImpl) UpdateFields(ctx context.Context, kind catalog.TraitKind, id uint, update catalog.TraitUpdate) (int64, error) {
	model, err := traitModel(kind)
	if err != nil {
		return 0, err
	}

	columns := traitUpdateColumns(update)
	if len(columns) == 0 {
		return 0, nil
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(model).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		r.logger.Errorw("failed to update trait", "kind", kind, "id", id, "error", result.Error)
		return 0, fmt.Errorf("failed to update %s: %w", kind, result.Error)
	}
	return result.RowsAffected, nil
}

func (r *TraitRepositoryImpl) Delete(ctx context.Context, kind catalog.TraitKind, id uint) (int64, error) {
	model, err := traitModel(kind)
	if err != nil {
		return 0, err
	}

	result := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).Delete(model)
	if result.Error != nil {
		r.logger.Errorw("failed to delete trait", "kind", kind, "id", id, "error", result.Error)
		return 0, fmt.Errorf("failed to delete %s: %w", kind, result.Error)
	}
	return result.RowsAffected, nil
}
