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

// DomainLinkRepositoryImpl implements catalog.DomainLinkRepository
type DomainLinkRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.LinkMapper
	logger logger.Interface
}

// NewDomainLinkRepository creates a new domain link repository instance
func NewDomainLinkRepository(gdb *gorm.DB, logger logger.Interface) catalog.DomainLinkRepository {
	return &DomainLinkRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewLinkMapper(),
		logger: logger,
	}
}

func (r *DomainLinkRepositoryImpl) Create(ctx context.Context, link *catalog.DomainLink) error {
	model, err := r.mapper.DomainLinkToModel(link)
	if err != nil {
		return err
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if appErrors.IsDuplicateError(err) {
			return appErrors.NewConflictError("solution is already associated with this domain")
		}
		r.logger.Errorw("failed to create domain link",
			"solution_id", link.SolutionID, "domain_id", link.DomainID, "error", err)
		return fmt.Errorf("failed to create domain link: %w", err)
	}
	return nil
}

func (r *DomainLinkRepositoryImpl) Get(ctx context.Context, solutionID, domainID uint) (*catalog.DomainLink, error) {
	var model models.SolutionDomainModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("solution_id = ? AND domain_id = ?", solutionID, domainID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get domain link: %w", err)
	}
	return r.mapper.DomainLinkToRecord(&model), nil
}

func (r *DomainLinkRepositoryImpl) Exists(ctx context.Context, solutionID, domainID uint) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.SolutionDomainModel{}).
		Where("solution_id = ? AND domain_id = ?", solutionID, domainID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check domain link existence: %w", err)
	}
	return count > 0, nil
}

func (r *DomainLinkRepositoryImpl) ListBySolution(ctx context.Context, solutionID uint) ([]*catalog.DomainLink, error) {
	var rows []*models.SolutionDomainModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("solution_id = ?", solutionID).
		Order("domain_id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list domain links: %w", err)
	}

	links := make([]*catalog.DomainLink, 0, len(rows))
	for _, row := range rows {
		links = append(links, r.mapper.DomainLinkToRecord(row))
	}
	return links, nil
}

func (r *DomainLinkRepositoryImpl) ListAll(ctx context.Context) ([]*catalog.DomainLink, error) {
	var rows []*models.SolutionDomainModel
	err := db.GetTxFromContext(ctx, r.db).
		Order("solution_id, domain_id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list domain links: %w", err)
	}

	links := make([]*catalog.DomainLink, 0, len(rows))
	for _, row := range rows {
		links = append(links, r.mapper.DomainLinkToRecord(row))
	}
	return links, nil
}

func (r *DomainLinkRepositoryImpl) UpdateFields(ctx context.Context, solutionID, domainID uint, update catalog.PresentationUpdate) (int64, error) {
	columns := presentationUpdateColumns(update)
	if len(columns) == 0 {
		return 0, nil
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SolutionDomainModel{}).
		Where("solution_id = ? AND domain_id = ?", solutionID, domainID).
		Updates(columns)
	if result.Error != nil {
		r.logger.Errorw("failed to update domain link",
			"solution_id", solutionID, "domain_id", domainID, "error", result.Error)
		return 0, fmt.Errorf("failed to update domain link: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *DomainLinkRepositoryImpl) Delete(ctx context.Context, solutionID, domainID uint) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Where("solution_id = ? AND domain_id = ?", solutionID, domainID).
		Delete(&models.SolutionDomainModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete domain link",
			"solution_id", solutionID, "domain_id", domainID, "error", result.Error)
		return 0, fmt.Errorf("failed to delete domain link: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *DomainLinkRepositoryImpl) DeleteByDomain(ctx context.Context, domainID uint) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Where("domain_id = ?", domainID).
		Delete(&models.SolutionDomainModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete domain links by domain", "domain_id", domainID, "error", result.Error)
		return 0, fmt.Errorf("failed to delete domain links: %w", result.Error)
	}
	return result.RowsAffected, nil
}
