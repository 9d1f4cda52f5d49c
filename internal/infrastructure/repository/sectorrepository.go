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

// SectorRepositoryImpl implements the catalog.SectorRepository interface
type SectorRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.DimensionMapper
	logger logger.Interface
}

// NewSectorRepository creates a new sector repository instance
func NewSectorRepository(gdb *gorm.DB, logger logger.Interface) catalog.SectorRepository {
	return &SectorRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewDimensionMapper(),
		logger: logger,
	}
}

func (r *SectorRepositoryImpl) Create(ctx context.Context, sector *catalog.Sector) error {
	model, err := r.mapper.SectorToModel(sector)
	if err != nil {
		return fmt.Errorf("failed to map sector entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create sector", "error", err)
		return fmt.Errorf("failed to create sector: %w", err)
	}

	return sector.SetID(model.ID)
}

func (r *SectorRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.Sector, error) {
	var model models.SectorModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get sector: %w", err)
	}
	return r.mapper.SectorToEntity(&model)
}

func (r *SectorRepositoryImpl) List(ctx context.Context) ([]*catalog.Sector, error) {
	var rows []*models.SectorModel
	if err := db.GetTxFromContext(ctx, r.db).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list sectors: %w", err)
	}
	return r.mapper.SectorsToEntities(rows)
}

func (r *SectorRepositoryImpl) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.SectorModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check sector existence: %w", err)
	}
	return count > 0, nil
}

func (r *SectorRepositoryImpl) UpdateFields(ctx context.Context, id uint, update catalog.DimensionUpdate) (int64, error) {
	columns := dimensionUpdateColumns(update)
	if len(columns) == 0 {
		return 0, nil
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SectorModel{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		r.logger.Errorw("failed to update sector", "id", id, "error", result.Error)
		return 0, fmt.Errorf("failed to update sector: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *SectorRepositoryImpl) Delete(ctx context.Context, id uint) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.SectorModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete sector", "id", id, "error", result.Error)
		return 0, fmt.Errorf("failed to delete sector: %w", result.Error)
	}
	return result.RowsAffected, nil
}
