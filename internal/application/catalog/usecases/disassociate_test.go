package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solvia-inc/solvia/internal/domain/catalog"
	appErrors "github.com/solvia-inc/solvia/internal/shared/errors"
)

func TestDisassociateDomain_ReportsDeleted(t *testing.T) {
	repo := new(mockDomainLinkRepository)
	repo.On("Delete", context.Background(), uint(1), uint(10)).Return(int64(1), nil)

	uc := NewDisassociateDomainUseCase(repo, noopLogger{})
	result, err := uc.Execute(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.True(t, result.Deleted)
	repo.AssertExpectations(t)
}

func TestDisassociateDomain_MissingRowIsNotAnError(t *testing.T) {
	repo := new(mockDomainLinkRepository)
	repo.On("Delete", context.Background(), uint(1), uint(10)).Return(int64(0), nil)

	uc := NewDisassociateDomainUseCase(repo, noopLogger{})
	result, err := uc.Execute(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.False(t, result.Deleted)
}

func TestDisassociateDomain_RejectsZeroIDs(t *testing.T) {
	uc := NewDisassociateDomainUseCase(new(mockDomainLinkRepository), noopLogger{})
	_, err := uc.Execute(context.Background(), 0, 10)
	require.Error(t, err)
	assert.True(t, appErrors.IsValidationError(err))
}

func TestDisassociateSector_ReportsDeleted(t *testing.T) {
	repo := new(mockSectorLinkRepository)
	repo.On("Delete", context.Background(), uint(1), uint(20)).Return(int64(1), nil)

	uc := NewDisassociateSectorUseCase(repo, noopLogger{})
	result, err := uc.Execute(context.Background(), 1, 20)
	require.NoError(t, err)
	assert.True(t, result.Deleted)
}

func TestDisassociateDomainSector_ReportsDeleted(t *testing.T) {
	repo := new(mockDomainSectorLinkRepository)
	repo.On("Delete", context.Background(), uint(1), uint(10), uint(20)).Return(int64(1), nil)

	uc := NewDisassociateDomainSectorUseCase(repo, noopLogger{})
	result, err := uc.Execute(context.Background(), 1, 10, 20)
	require.NoError(t, err)
	assert.True(t, result.Deleted)
}

func TestDisassociateTrait_ReportsDeleted(t *testing.T) {
	repo := new(mockTraitLinkRepository)
	repo.On("Delete", context.Background(), catalog.TraitBenefit, uint(1), uint(5)).Return(int64(1), nil)

	uc := NewDisassociateTraitUseCase(repo, noopLogger{})
	result, err := uc.Execute(context.Background(), catalog.TraitBenefit, 1, 5)
	require.NoError(t, err)
	assert.True(t, result.Deleted)
}

func TestDisassociateTrait_RejectsUnknownKind(t *testing.T) {
	uc := NewDisassociateTraitUseCase(new(mockTraitLinkRepository), noopLogger{})
	_, err := uc.Execute(context.Background(), catalog.TraitKind("color"), 1, 5)
	require.Error(t, err)
	assert.True(t, appErrors.IsValidationError(err))
}
