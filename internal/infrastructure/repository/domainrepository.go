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

// DomainRepositoryImpl implements the catalog.DomainRepository interface
type DomainRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.DimensionMapper
	logger logger.Interface
}

// NewDomainRepository creates a new domain repository instance
func NewDomainRepository(gdb *gorm.DB, logger logger.Interface) catalog.DomainRepository {
	return &DomainRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewDimensionMapper(),
		logger: logger,
	}
}

func (r *DomainRepositoryImpl) Create(ctx context.Context, domain *catalog.Domain) error {
	model, err := r.mapper.DomainToModel(domain)
	if err != nil {
		return fmt.Errorf("failed to map domain entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create domain", "error", err)
		return fmt.Errorf("failed to create domain: %w", err)
	}

	return domain.SetID(model.ID)
}

func (r *DomainRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.Domain, error) {
	var model models.DomainModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get domain: %w", err)
	}
	return r.mapper.DomainToEntity(&model)
}

func (r *DomainRepositoryImpl) List(ctx context.Context) ([]*catalog.Domain, error) {
	var rows []*models.DomainModel
	if err := db.GetTxFromContext(ctx, r.db).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list domains: %w", err)
	}
	return r.mapper.DomainsToEntities(rows)
}

func (r *DomainRepositoryImpl) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.DomainModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check domain existence: %w", err)
	}
	return count > 0, nil
}

func (r *DomainRepositoryImpl) UpdateFields(ctx context.Context, id uint, update catalog.DimensionUpdate) (int64, error) {
	columns := dimensionUpdateColumns(update)
	if len(columns) == 0 {
		return 0, nil
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.DomainModel{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		r.logger.Errorw("failed to update domain", "id", id, "error", result.Error)
		return 0, fmt.Errorf("failed to update domain: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *DomainRepositoryImpl) Delete(ctx context.Context, id uint) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.DomainModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete domain", "id", id, "error", result.Error)
		return 0, fmt.Errorf("failed to delete domain: %w", result.Error)
	}
	return result.RowsAffected, nil
}
