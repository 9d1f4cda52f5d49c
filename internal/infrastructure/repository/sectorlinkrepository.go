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

// SectorLinkRepositoryImpl implements catalog.SectorLinkRepository
type SectorLinkRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.LinkMapper
	logger logger.Interface
}

// NewSectorLinkRepository creates a new sector link repository instance
func NewSectorLinkRepository(gdb *gorm.DB, logger logger.Interface) catalog.SectorLinkRepository {
	return &SectorLinkRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewLinkMapper(),
		logger: logger,
	}
}

func (r *SectorLinkRepositoryImpl) Create(ctx context.Context, link *catalog.SectorLink) error {
	model, err := r.mapper.SectorLinkToModel(link)
	if err != nil {
		return err
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if appErrors.IsDuplicateError(err) {
			return appErrors.NewConflictError("solution is already associated with this sector")
		}
		r.logger.Errorw("failed to create sector link",
			"solution_id", link.SolutionID, "sector_id", link.SectorID, "error", err)
		return fmt.Errorf("failed to create sector link: %w", err)
	}
	return nil
}

// CreateBatch inserts rows for a sector fan-out. Individual rows are mapped
// first so one bad record aborts before any insert happens.
func (r *SectorLinkRepositoryImpl) CreateBatch(ctx context.Context, links []*catalog.SectorLink) error {
	if len(links) == 0 {
		return nil
	}

	rows := make([]*models.SolutionSectorModel, 0, len(links))
	for _, link := range links {
		model, err := r.mapper.SectorLinkToModel(link)
		if err != nil {
			return err
		}
		rows = append(rows, model)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(&rows).Error; err != nil {
		r.logger.Errorw("failed to batch create sector links", "count", len(rows), "error", err)
		return fmt.Errorf("failed to batch create sector links: %w", err)
	}
	return nil
}

func (r *SectorLinkRepositoryImpl) Get(ctx context.Context, solutionID, sectorID uint) (*catalog.SectorLink, error) {
	var model models.SolutionSectorModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("solution_id = ? AND sector_id = ?", solutionID, sectorID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get sector link: %w", err)
	}
	return r.mapper.SectorLinkToRecord(&model), nil
}

func (r *SectorLinkRepositoryImpl) Exists(ctx context.Context, solutionID, sectorID uint) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.SolutionSectorModel{}).
		Where("solution_id = ? AND sector_id = ?", solutionID, sectorID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check sector link existence: %w", err)
	}
	return count > 0, nil
}

func (r *SectorLinkRepositoryImpl) ListBySolution(ctx context.Context, solutionID uint) ([]*catalog.SectorLink, error) {
	var rows []*models.SolutionSectorModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("solution_id = ?", solutionID).
		Order("sector_id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sector links: %w", err)
	}

	links := make([]*catalog.SectorLink, 0, len(rows))
	for _, row := range rows {
		links = append(links, r.mapper.SectorLinkToRecord(row))
	}
	return links, nil
}

func (r *SectorLinkRepositoryImpl) UpdateFields(ctx context.Context, solutionID, sectorID uint, update catalog.SectorLinkUpdate) (int64, error) {
	columns := sectorLinkUpdateColumns(update)
	if len(columns) == 0 {
		return 0, nil
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SolutionSectorModel{}).
		Where("solution_id = ? AND sector_id = ?", solutionID, sectorID).
		Updates(columns)
	if result.Error != nil {
		r.logger.Errorw("failed to update sector link",
			"solution_id", solutionID, "sector_id", sectorID, "error", result.Error)
		return 0, fmt.Errorf("failed to update sector link: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *SectorLinkRepositoryImpl) Delete(ctx context.Context, solutionID, sectorID uint) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Where("solution_id = ? AND sector_id = ?", solutionID, sectorID).
		Delete(&models.SolutionSectorModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete sector link",
			"solution_id", solutionID, "sector_id", sectorID, "error", result.Error)
		return 0, fmt.Errorf("failed to delete sector link: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *SectorLinkRepositoryImpl) DeleteBySector(ctx context.Context, sectorID uint) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Where("sector_id = ?", sectorID).
		Delete(&models.SolutionSectorModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete sector links by sector", "sector_id", sectorID, "error", result.Error)
		return 0, fmt.Errorf("failed to delete sector links: %w", result.Error)
	}
	return result.RowsAffected, nil
}
