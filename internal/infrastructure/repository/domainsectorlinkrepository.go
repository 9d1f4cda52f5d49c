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

// DomainSectorLinkRepositoryImpl implements catalog.DomainSectorLinkRepository
type DomainSectorLinkRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.LinkMapper
	logger logger.Interface
}

// NewDomainSectorLinkRepository creates a new domain sector link repository instance
func NewDomainSectorLinkRepository(gdb *gorm.DB, logger logger.Interface) catalog.DomainSectorLinkRepository {
	return &DomainSectorLinkRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewLinkMapper(),
		logger: logger,
	}
}

func (r *DomainSectorLinkRepositoryImpl) Create(ctx context.Context, link *catalog.DomainSectorLink) error {
	model, err := r.mapper.DomainSectorLinkToModel(link)
	if err != nil {
		return err
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if appErrors.IsDuplicateError(err) {
			return appErrors.NewConflictError("solution is already associated with this domain and sector")
		}
		r.logger.Errorw("failed to create domain sector link",
			"solution_id", link.SolutionID, "domain_id", link.DomainID, "sector_id", link.SectorID, "error", err)
		return fmt.Errorf("failed to create domain sector link: %w", err)
	}
	return nil
}

func (r *DomainSectorLinkRepositoryImpl) CreateBatch(ctx context.Context, links []*catalog.DomainSectorLink) error {
	if len(links) == 0 {
		return nil
	}

	rows := make([]*models.SolutionDomainSectorModel, 0, len(links))
	for _, link := range links {
		model, err := r.mapper.DomainSectorLinkToModel(link)
		if err != nil {
			return err
		}
		rows = append(rows, model)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(&rows).Error; err != nil {
		r.logger.Errorw("failed to batch create domain sector links", "count", len(rows), "error", err)
		return fmt.Errorf("failed to batch create domain sector links: %w", err)
	}
	return nil
}

func (r *DomainSectorLinkRepositoryImpl) Get(ctx context.Context, solutionID, domainID, sectorID uint) (*catalog.DomainSectorLink, error) {
	var model models.SolutionDomainSectorModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("solution_id = ? AND domain_id = ? AND sector_id = ?", solutionID, domainID, sectorID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get domain sector link: %w", err)
	}
	return r.mapper.DomainSectorLinkToRecord(&model), nil
}

func (r *DomainSectorLinkRepositoryImpl) Exists(ctx context.Context, solutionID, domainID, sectorID uint) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.SolutionDomainSectorModel{}).
		Where("solution_id = ? AND domain_id = ? AND sector_id = ?", solutionID, domainID, sectorID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check domain sector link existence: %w", err)
	}
	return count > 0, nil
}

func (r *DomainSectorLinkRepositoryImpl) ListBySolution(ctx context.Context, solutionID uint) ([]*catalog.DomainSectorLink, error) {
	var rows []*models.SolutionDomainSectorModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("solution_id = ?", solutionID).
		Order("domain_id, sector_id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list domain sector links: %w", err)
	}

	links := make([]*catalog.DomainSectorLink, 0, len(rows))
	for _, row := range rows {
		links = append(links, r.mapper.DomainSectorLinkToRecord(row))
	}
	return links, nil
}

func (r *DomainSectorLinkRepositoryImpl) UpdateFields(ctx context.Context, solutionID, domainID, sectorID uint, update catalog.PresentationUpdate) (int64, error) {
	columns := presentationUpdateColumns(update)
	if len(columns) == 0 {
		return 0, nil
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SolutionDomainSectorModel{}).
		Where("solution_id = ? AND domain_id = ? AND sector_id = ?", solutionID, domainID, sectorID).
		Updates(columns)
	if result.Error != nil {
		r.logger.Errorw("failed to update domain sector link",
			"solution_id", solutionID, "domain_id", domainID, "sector_id", sectorID, "error", result.Error)
		return 0, fmt.Errorf("failed to update domain sector link: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *DomainSectorLinkRepositoryImpl) Delete(ctx context.Context, solutionID, domainID, sectorID uint) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Where("solution_id = ? AND domain_id = ? AND sector_id = ?", solutionID, domainID, sectorID).
		Delete(&models.SolutionDomainSectorModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete domain sector link",
			"solution_id", solutionID, "domain_id", domainID, "sector_id", sectorID, "error", result.Error)
		return 0, fmt.Errorf("failed to delete domain sector link: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *DomainSectorLinkRepositoryImpl) DeleteByDomain(ctx context.Context, domainID uint) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Where("domain_id = ?", domainID).
		Delete(&models.SolutionDomainSectorModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete domain sector links by domain", "domain_id", domainID, "error", result.Error)
		return 0, fmt.Errorf("failed to delete domain sector links: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *DomainSectorLinkRepositoryImpl) DeleteBySector(ctx context.Context, sectorID uint) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Where("sector_id = ?", sectorID).
		Delete(&models.SolutionDomainSectorModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete domain sector links by sector", "sector_id", sectorID, "error", result.Error)
		return 0, fmt.Errorf("failed to delete domain sector links: %w", result.Error)
	}
	return result.RowsAffected, nil
}
