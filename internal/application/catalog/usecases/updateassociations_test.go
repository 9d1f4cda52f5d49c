package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solvia-inc/solvia/internal/domain/catalog"
	appErrors "github.com/solvia-inc/solvia/internal/shared/errors"
	"github.com/solvia-inc/solvia/internal/shared/services/richtext"
)

func titlePtr(s string) *string { return &s }

func TestUpdateSolutionDomain_TouchesOnlyTheJunction(t *testing.T) {
	update := catalog.PresentationUpdate{Title: titlePtr("Scoped title")}

	repo := new(mockDomainLinkRepository)
	repo.On("UpdateFields", context.Background(), uint(1), uint(10), update).Return(int64(1), nil)

	uc := NewUpdateSolutionDomainUseCase(repo, noopLogger{})
	err := uc.Execute(context.Background(), UpdateSolutionDomainCommand{
		SolutionID: 1,
		DomainID:   10,
		Update:     update,
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateSolutionDomain_MissingRowFailsNotFound(t *testing.T) {
	update := catalog.PresentationUpdate{Title: titlePtr("Scoped title")}

	repo := new(mockDomainLinkRepository)
	repo.On("UpdateFields", context.Background(), uint(1), uint(10), update).Return(int64(0), nil)
	repo.On("Exists", context.Background(), uint(1), uint(10)).Return(false, nil)

	uc := NewUpdateSolutionDomainUseCase(repo, noopLogger{})
	err := uc.Execute(context.Background(), UpdateSolutionDomainCommand{
		SolutionID: 1,
		DomainID:   10,
		Update:     update,
	})
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFoundError(err))
}

func TestUpdateSolutionDomain_NoFieldsIsValidationError(t *testing.T) {
	uc := NewUpdateSolutionDomainUseCase(new(mockDomainLinkRepository), noopLogger{})
	err := uc.Execute(context.Background(), UpdateSolutionDomainCommand{SolutionID: 1, DomainID: 10})
	require.Error(t, err)
	assert.True(t, appErrors.IsValidationError(err))
}

func TestUpdateSolutionSector_UpdatesAltText(t *testing.T) {
	update := catalog.SectorLinkUpdate{AltDescription: titlePtr("Retail pitch")}

	repo := new(mockSectorLinkRepository)
	repo.On("UpdateFields", context.Background(), uint(1), uint(20), update).Return(int64(1), nil)

	uc := NewUpdateSolutionSectorUseCase(repo, noopLogger{})
	err := uc.Execute(context.Background(), UpdateSolutionSectorCommand{
		SolutionID: 1,
		SectorID:   20,
		Update:     update,
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateSolutionDomainSector_RequiresOnlyTheTripleRow(t *testing.T) {
	update := catalog.PresentationUpdate{Subtitle: titlePtr("Sector-scoped subtitle")}

	repo := new(mockDomainSectorLinkRepository)
	repo.On("UpdateFields", context.Background(), uint(1), uint(10), uint(20), update).Return(int64(1), nil)

	uc := NewUpdateSolutionDomainSectorUseCase(repo, noopLogger{})
	err := uc.Execute(context.Background(), UpdateSolutionDomainSectorCommand{
		SolutionID: 1,
		DomainID:   10,
		SectorID:   20,
		Update:     update,
	})
	require.NoError(t, err)
	// no pairwise existence lookups happen, only the triple update itself
	repo.AssertExpectations(t)
}

func TestUpdateSolution_SideEffectFreeOnUnknownID(t *testing.T) {
	repo := new(mockSolutionRepository)
	repo.On("UpdateFields", context.Background(), uint(42), catalog.PresentationUpdate{
		Title: titlePtr("New"),
	}).Return(int64(0), nil)
	repo.On("Exists", context.Background(), uint(42)).Return(false, nil)

	uc := NewUpdateSolutionUseCase(repo, richtext.NewService(), noopLogger{})
	err := uc.Execute(context.Background(), UpdateSolutionCommand{
		SolutionID: 42,
		Title:      titlePtr("New"),
	})
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFoundError(err))
}
