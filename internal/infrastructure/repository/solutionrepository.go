// Package repository implements the catalog repositories on GORM. Every
// method resolves its handle through db.GetTxFromContext so it joins the
// caller's transaction when one is in flight.
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
	appErrors "github.com/solvia-inc/solvia/internal/shared/errors"
	"github.com/solvia-inc/solvia/internal/shared/logger"
)

// SolutionRepositoryImpl implements the catalog.SolutionRepository interface
type SolutionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SolutionMapper
	logger logger.Interface
}

// NewSolutionRepository creates a new solution repository instance
func NewSolutionRepository(gdb *gorm.DB, logger logger.Interface) catalog.SolutionRepository {
	return &SolutionRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewSolutionMapper(),
		logger: logger,
	}
}

// Create inserts a new solution row and writes the generated ID back to the entity.
func (r *SolutionRepositoryImpl) Create(ctx context.Context, solution *catalog.Solution) error {
	model, err := r.mapper.ToModel(solution)
	if err != nil {
		return fmt.Errorf("failed to map solution entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if appErrors.IsDuplicateError(err) {
			return appErrors.NewConflictError("solution with this slug already exists")
		}
		r.logger.Errorw("failed to create solution", "error", err)
		return fmt.Errorf("failed to create solution: %w", err)
	}

	return solution.SetID(model.ID)
}

// GetByID returns the solution, or (nil, nil) when the row does not exist.
func (r *SolutionRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.Solution, error) {
	var model models.SolutionModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get solution: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

// GetBySlug returns the solution with the given slug, or (nil, nil).
func (r *SolutionRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*catalog.Solution, error) {
	var model models.SolutionModel
	if err := db.GetTxFromContext(ctx, r.db).Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get solution by slug: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

// List returns one page of solutions plus the total row count.
func (r *SolutionRepositoryImpl) List(ctx context.Context, page, pageSize int) ([]*catalog.Solution, int64, error) {
	handle := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := handle.Model(&models.SolutionModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count solutions: %w", err)
	}

	var rows []*models.SolutionModel
	if err := handle.
		Order("id").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list solutions: %w", err)
	}

	entities, err := r.mapper.ToEntities(rows)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

// ListIDs returns the IDs of every solution, used by the sector fan-out.
func (r *SolutionRepositoryImpl) ListIDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.SolutionModel{}).
		Order("id").
		Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list solution ids: %w", err)
	}
	return ids, nil
}

// Exists reports whether a solution row with the given ID exists.
func (r *SolutionRepositoryImpl) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.SolutionModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check solution existence: %w", err)
	}
	return count > 0, nil
}

// UpdateFields applies a partial presentation update to the solution row only;
// scoped snapshot rows are never touched from here.
func (r *SolutionRepositoryImpl) UpdateFields(ctx context.Context, id uint, update catalog.PresentationUpdate) (int64, error) {
	columns := presentationUpdateColumns(update)
	if len(columns) == 0 {
		return 0, nil
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SolutionModel{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		r.logger.Errorw("failed to update solution", "id", id, "error", result.Error)
		return 0, fmt.Errorf("failed to update solution: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// SetDimensionHighlight writes the (pragma, title) pair for one trait
// dimension. Issued on every trait association; the last association wins.
func (r *SolutionRepositoryImpl) SetDimensionHighlight(ctx context.Context, id uint, kind catalog.TraitKind, pragma, title string) error {
	var columns map[string]interface{}
	switch kind {
	case catalog.TraitBenefit:
		columns = map[string]interface{}{"benefits_pragma": pragma, "benefits_title": title}
	case catalog.TraitFeature:
		columns = map[string]interface{}{"features_pragma": pragma, "features_title": title}
	case catalog.TraitProblem:
		columns = map[string]interface{}{"problems_pragma": pragma, "problems_title": title}
	default:
		return fmt.Errorf("unknown trait kind: %s", kind)
	}

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.SolutionModel{}).
		Where("id = ?", id).
		Updates(columns).Error; err != nil {
		return fmt.Errorf("failed to set %s highlight: %w", kind, err)
	}
	return nil
}

// Delete removes the solution row and reports how many rows were hit.
func (r *SolutionRepositoryImpl) Delete(ctx context.Context, id uint) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.SolutionModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete solution", "id", id, "error", result.Error)
		return 0, fmt.Errorf("failed to delete solution: %w", result.Error)
	}
	return result.RowsAffected, nil
}
