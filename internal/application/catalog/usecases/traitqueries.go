package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/solvia-inc/solvia/internal/domain/catalog"
	"github.com/solvia-inc/solvia/internal/shared/errors"
	"github.com/solvia-inc/solvia/internal/shared/logger"
)

// TraitDTO is the read model for benefits, features and problems.
type TraitDTO struct {
	ID          uint              `json:"id"`
	Kind        catalog.TraitKind `json:"kind"`
	Pragma      string            `json:"pragma"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Icon        string            `json:"icon"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func traitToDTO(t *catalog.Trait) *TraitDTO {
	return &TraitDTO{
		ID:          t.ID(),
		Kind:        t.Kind(),
		Pragma:      t.Pragma(),
		Title:       t.Title(),
		Description: t.Description(),
		Icon:        t.Icon(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

type GetTraitUseCase struct {
	traitRepo catalog.TraitRepository
	logger    logger.Interface
}

func NewGetTraitUseCase(traitRepo catalog.TraitRepository, logger logger.Interface) *GetTraitUseCase {
	return &GetTraitUseCase{traitRepo: traitRepo, logger: logger}
}

func (uc *GetTraitUseCase) Execute(ctx context.Context, kind catalog.TraitKind, id uint) (*TraitDTO, error) {
	if !kind.Valid() {
		return nil, errors.NewValidationError("unknown trait kind")
	}

	trait, err := uc.traitRepo.GetByID(ctx, kind, id)
	if err != nil {
		uc.logger.Errorw("failed to get trait", "error", err, "kind", kind, "trait_id", id)
		return nil, fmt.Errorf("failed to get %s: %w", kind, err)
	}
	if trait == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("%s not found", kind))
	}
	return traitToDTO(trait), nil
}

type ListTraitsUseCase struct {
	traitRepo catalog.TraitRepository
	logger    logger.Interface
}

func NewListTraitsUseCase(traitRepo catalog.TraitRepository, logger logger.Interface) *ListTraitsUseCase {
	return &ListTraitsUseCase{traitRepo: traitRepo, logger: logger}
}

func (uc *ListTraitsUseCase) Execute(ctx context.Context, kind catalog.TraitKind) ([]*TraitDTO, error) {
	if !kind.Valid() {
		return nil, errors.NewValidationError("unknown trait kind")
	}

	traits, err := uc.traitRepo.List(ctx, kind)
	if err != nil {
		uc.logger.Errorw("failed to list traits", "error", err, "kind", kind)
		return nil, fmt.Errorf("failed to list %ss: %w", kind, err)
	}

	dtos := make([]*TraitDTO, 0, len(traits))
	for _, trait := range traits {
		dtos = append(dtos, traitToDTO(trait))
	}
	return dtos, nil
}

type UpdateTraitCommand struct {
	Kind        catalog.TraitKind
	ID          uint
	Pragma      *string
	Title       *string
	Description *string
	Icon        *string
}

type UpdateTraitUseCase struct {
	traitRepo catalog.TraitRepository
	logger    logger.Interface
}

func NewUpdateTraitUseCase(traitRepo catalog.TraitRepository, logger logger.Interface) *UpdateTraitUseCase {
	return &UpdateTraitUseCase{traitRepo: traitRepo, logger: logger}
}

func (uc *UpdateTraitUseCase) Execute(ctx context.Context, cmd UpdateTraitCommand) error {
	if !cmd.Kind.Valid() {
		return errors.NewValidationError("unknown trait kind")
	}
	if cmd.ID == 0 {
		return errors.NewValidationError("trait ID is required")
	}

	update := catalog.TraitUpdate{
		Pragma:      cmd.Pragma,
		Title:       cmd.Title,
		Description: cmd.Description,
		Icon:        cmd.Icon,
	}
	if update.IsEmpty() {
		return errors.NewValidationError("no fields to update")
	}

	affected, err := uc.traitRepo.UpdateFields(ctx, cmd.Kind, cmd.ID, update)
	if err != nil {
		uc.logger.Errorw("failed to update trait", "error", err, "kind", cmd.Kind, "trait_id", cmd.ID)
		return fmt.Errorf("failed to update %s: %w", cmd.Kind, err)
	}
	if affected == 0 {
		exists, err := uc.traitRepo.Exists(ctx, cmd.Kind, cmd.ID)
		if err != nil {
			return fmt.Errorf("failed to check %s existence: %w", cmd.Kind, err)
		}
		if !exists {
			return errors.NewNotFoundError(fmt.Sprintf("%s not found", cmd.Kind))
		}
	}

	uc.logger.Infow("trait updated", "kind", cmd.Kind, "trait_id", cmd.ID)
	return nil
}
