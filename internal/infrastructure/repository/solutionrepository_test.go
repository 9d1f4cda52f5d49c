package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solvia-inc/solvia/internal/domain/catalog"
	appErrors "github.com/solvia-inc/solvia/internal/shared/errors"
)

func TestSolutionRepository_CreateAndGet(t *testing.T) {
	gdb := setupRepoDB(t)
	repo := NewSolutionRepository(gdb, testLogger())

	created := mustCreateSolution(t, repo, "crm-suite")

	found, err := repo.GetByID(context.Background(), created.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "crm-suite", found.Slug())
	assert.Equal(t, "Title crm-suite", found.Presentation().Title)

	bySlug, err := repo.GetBySlug(context.Background(), "crm-suite")
	require.NoError(t, err)
	require.NotNil(t, bySlug)
	assert.Equal(t, created.ID(), bySlug.ID())
}

func TestSolutionRepository_CreateDuplicateSlug(t *testing.T) {
	gdb := setupRepoDB(t)
	repo := NewSolutionRepository(gdb, testLogger())

	mustCreateSolution(t, repo, "crm-suite")

	dup, err := catalog.NewSolution("crm-suite", catalog.Presentation{Title: "Other"}, nil)
	require.NoError(t, err)
	err = repo.Create(context.Background(), dup)
	require.Error(t, err)
	assert.True(t, appErrors.IsConflictError(err))
}

func TestSolutionRepository_GetByIDMissingReturnsNil(t *testing.T) {
	gdb := setupRepoDB(t)
	repo := NewSolutionRepository(gdb, testLogger())

	found, err := repo.GetByID(context.Background(), 9999)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSolutionRepository_UpdateFieldsPartial(t *testing.T) {
	gdb := setupRepoDB(t)
	repo := NewSolutionRepository(gdb, testLogger())

	created := mustCreateSolution(t, repo, "crm-suite")

	affected, err := repo.UpdateFields(context.Background(), created.ID(), catalog.PresentationUpdate{
		Title: strPtr("New Title"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	found, err := repo.GetByID(context.Background(), created.ID())
	require.NoError(t, err)
	assert.Equal(t, "New Title", found.Presentation().Title)
	// untouched fields keep their values
	assert.Equal(t, "Subtitle crm-suite", found.Presentation().Subtitle)
}

func TestSolutionRepository_UpdateFieldsEmptyIsNoop(t *testing.T) {
	gdb := setupRepoDB(t)
	repo := NewSolutionRepository(gdb, testLogger())

	created := mustCreateSolution(t, repo, "crm-suite")

	affected, err := repo.UpdateFields(context.Background(), created.ID(), catalog.PresentationUpdate{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestSolutionRepository_SetDimensionHighlight(t *testing.T) {
	gdb := setupRepoDB(t)
	repo := NewSolutionRepository(gdb, testLogger())

	created := mustCreateSolution(t, repo, "crm-suite")

	err := repo.SetDimensionHighlight(context.Background(), created.ID(), catalog.TraitBenefit, "fast", "Fast onboarding")
	require.NoError(t, err)

	found, err := repo.GetByID(context.Background(), created.ID())
	require.NoError(t, err)
	assert.Equal(t, "fast", found.Presentation().BenefitsPragma)
	assert.Equal(t, "Fast onboarding", found.Presentation().BenefitsTitle)
}

func TestSolutionRepository_ListAndListIDs(t *testing.T) {
	gdb := setupRepoDB(t)
	repo := NewSolutionRepository(gdb, testLogger())

	first := mustCreateSolution(t, repo, "alpha")
	second := mustCreateSolution(t, repo, "beta")

	solutions, total, err := repo.List(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, solutions, 2)

	ids, err := repo.ListIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []uint{first.ID(), second.ID()}, ids)
}

func TestSolutionRepository_DeleteReportsAffectedRows(t *testing.T) {
	gdb := setupRepoDB(t)
	repo := NewSolutionRepository(gdb, testLogger())

	created := mustCreateSolution(t, repo, "crm-suite")

	affected, err := repo.Delete(context.Background(), created.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = repo.Delete(context.Background(), created.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}
