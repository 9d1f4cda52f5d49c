package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/solvia-inc/solvia/internal/domain/catalog"
	"github.com/solvia-inc/solvia/internal/shared/errors"
	"github.com/solvia-inc/solvia/internal/shared/logger"
)

// DimensionDTO is the read model shared by domain and sector queries.
type DimensionDTO struct {
	ID          uint      `json:"id"`
	Description string    `json:"description"`
	WebText     string    `json:"web_text"`
	Prefix      string    `json:"prefix"`
	Slug        string    `json:"slug"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func domainToDTO(d *catalog.Domain) *DimensionDTO {
	return &DimensionDTO{
		ID:          d.ID(),
		Description: d.Description(),
		WebText:     d.WebText(),
		Prefix:      d.Prefix(),
		Slug:        d.Slug(),
		CreatedAt:   d.CreatedAt(),
		UpdatedAt:   d.UpdatedAt(),
	}
}

func sectorToDTO(s *catalog.Sector) *DimensionDTO {
	return &DimensionDTO{
		ID:          s.ID(),
		Description: s.Description(),
		WebText:     s.WebText(),
		Prefix:      s.Prefix(),
		Slug:        s.Slug(),
		CreatedAt:   s.CreatedAt(),
		UpdatedAt:   s.UpdatedAt(),
	}
}

type GetDomainUseCase struct {
	domainRepo catalog.DomainRepository
	logger     logger.Interface
}

func NewGetDomainUseCase(domainRepo catalog.DomainRepository, logger logger.Interface) *GetDomainUseCase {
	return &GetDomainUseCase{domainRepo: domainRepo, logger: logger}
}

func (uc *GetDomainUseCase) Execute(ctx context.Context, id uint) (*DimensionDTO, error) {
	domain, err := uc.domainRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get domain", "error", err, "domain_id", id)
		return nil, fmt.Errorf("failed to get domain: %w", err)
	}
	if domain == nil {
		return nil, errors.NewNotFoundError("domain not found")
	}
	return domainToDTO(domain), nil
}

type ListDomainsUseCase struct {
	domainRepo catalog.DomainRepository
	logger     logger.Interface
}

func NewListDomainsUseCase(domainRepo catalog.DomainRepository, logger logger.Interface) *ListDomainsUseCase {
	return &ListDomainsUseCase{domainRepo: domainRepo, logger: logger}
}

func (uc *ListDomainsUseCase) Execute(ctx context.Context) ([]*DimensionDTO, error) {
	domains, err := uc.domainRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list domains", "error", err)
		return nil, fmt.Errorf("failed to list domains: %w", err)
	}

	dtos := make([]*DimensionDTO, 0, len(domains))
	for _, domain := range domains {
		dtos = append(dtos, domainToDTO(domain))
	}
	return dtos, nil
}

type GetSectorUseCase struct {
	sectorRepo catalog.SectorRepository
	logger     logger.Interface
}

func NewGetSectorUseCase(sectorRepo catalog.SectorRepository, logger logger.Interface) *GetSectorUseCase {
	return &GetSectorUseCase{sectorRepo: sectorRepo, logger: logger}
}

func (uc *GetSectorUseCase) Execute(ctx context.Context, id uint) (*DimensionDTO, error) {
	sector, err := uc.sectorRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get sector", "error", err, "sector_id", id)
		return nil, fmt.Errorf("failed to get sector: %w", err)
	}
	if sector == nil {
		return nil, errors.NewNotFoundError("sector not found")
	}
	return sectorToDTO(sector), nil
}

type ListSectorsUseCase struct {
	sectorRepo catalog.SectorRepository
	logger     logger.Interface
}

func NewListSectorsUseCase(sectorRepo catalog.SectorRepository, logger logger.Interface) *ListSectorsUseCase {
	return &ListSectorsUseCase{sectorRepo: sectorRepo, logger: logger}
}

func (uc *ListSectorsUseCase) Execute(ctx context.Context) ([]*DimensionDTO, error) {
	sectors, err := uc.sectorRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list sectors", "error", err)
		return nil, fmt.Errorf("failed to list sectors: %w", err)
	}

	dtos := make([]*DimensionDTO, 0, len(sectors))
	for _, sector := range sectors {
		dtos = append(dtos, sectorToDTO(sector))
	}
	return dtos, nil
}
