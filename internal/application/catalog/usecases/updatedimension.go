package usecases

import (
	"context"
	"fmt"

	"github.com/solvia-inc/solvia/internal/domain/catalog"
	"github.com/solvia-inc/solvia/internal/shared/errors"
	"github.com/solvia-inc/solvia/internal/shared/logger"
	"github.com/solvia-inc/solvia/internal/shared/services/richtext"
)

type UpdateDimensionCommand struct {
	ID          uint
	Description *string
	WebText     *string
	Prefix      *string
	Slug        *string
}

func (cmd UpdateDimensionCommand) toUpdate(richText richtext.Service) catalog.DimensionUpdate {
	update := catalog.DimensionUpdate{
		Description: cmd.Description,
		WebText:     cmd.WebText,
		Prefix:      cmd.Prefix,
		Slug:        cmd.Slug,
	}
	if update.WebText != nil {
		sanitized := richText.SanitizeText(*update.WebText)
		update.WebText = &sanitized
	}
	return update
}

type UpdateDomainUseCase struct {
	domainRepo catalog.DomainRepository
	richText   richtext.Service
	logger     logger.Interface
}

func NewUpdateDomainUseCase(domainRepo catalog.DomainRepository, richText richtext.Service, logger logger.Interface) *UpdateDomainUseCase {
	return &UpdateDomainUseCase{domainRepo: domainRepo, richText: richText, logger: logger}
}

func (uc *UpdateDomainUseCase) Execute(ctx context.Context, cmd UpdateDimensionCommand) error {
	if cmd.ID == 0 {
		return errors.NewValidationError("domain ID is required")
	}
	update := cmd.toUpdate(uc.richText)
	if update.IsEmpty() {
		return errors.NewValidationError("no fields to update")
	}

	affected, err := uc.domainRepo.UpdateFields(ctx, cmd.ID, update)
	if err != nil {
		uc.logger.Errorw("failed to update domain", "error", err, "domain_id", cmd.ID)
		return fmt.Errorf("failed to update domain: %w", err)
	}
	if affected == 0 {
		exists, err := uc.domainRepo.Exists(ctx, cmd.ID)
		if err != nil {
			return fmt.Errorf("failed to check domain existence: %w", err)
		}
		if !exists {
			return errors.NewNotFoundError("domain not found")
		}
	}

	uc.logger.Infow("domain updated", "domain_id", cmd.ID)
	return nil
}

type UpdateSectorUseCase struct {
	sectorRepo catalog.SectorRepository
	richText   richtext.Service
	logger     logger.Interface
}

func NewUpdateSectorUseCase(sectorRepo catalog.SectorRepository, richText richtext.Service, logger logger.Interface) *UpdateSectorUseCase {
	return &UpdateSectorUseCase{sectorRepo: sectorRepo, richText: richText, logger: logger}
}

func (uc *UpdateSectorUseCase) Execute(ctx context.Context, cmd UpdateDimensionCommand) error {
	if cmd.ID == 0 {
		return errors.NewValidationError("sector ID is required")
	}
	update := cmd.toUpdate(uc.richText)
	if update.IsEmpty() {
		return errors.NewValidationError("no fields to update")
	}

	affected, err := uc.sectorRepo.UpdateFields(ctx, cmd.ID, update)
	if err != nil {
		uc.logger.Errorw("failed to update sector", "error", err, "sector_id", cmd.ID)
		return fmt.Errorf("failed to update sector: %w", err)
	}
	if affected == 0 {
		exists, err := uc.sectorRepo.Exists(ctx, cmd.ID)
		if err != nil {
			return fmt.Errorf("failed to check sector existence: %w", err)
		}
		if !exists {
			return errors.NewNotFoundError("sector not found")
		}
	}

	uc.logger.Infow("sector updated", "sector_id", cmd.ID)
	return nil
}
