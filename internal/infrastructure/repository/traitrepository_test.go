package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solvia-inc/solvia/internal/domain/catalog"
)

func TestTraitRepository_KindsAreSeparateTables(t *testing.T) {
	gdb := setupRepoDB(t)
	repo := NewTraitRepository(gdb, testLogger())

	benefit := mustCreateTrait(t, repo, catalog.TraitBenefit, "fast")
	feature := mustCreateTrait(t, repo, catalog.TraitFeature, "dashboards")

	// separate tables, so both start at id 1
	assert.Equal(t, uint(1), benefit.ID())
	assert.Equal(t, uint(1), feature.ID())

	foundBenefit, err := repo.GetByID(context.Background(), catalog.TraitBenefit, 1)
	require.NoError(t, err)
	require.NotNil(t, foundBenefit)
	assert.Equal(t, "fast", foundBenefit.Pragma())

	foundFeature, err := repo.GetByID(context.Background(), catalog.TraitFeature, 1)
	require.NoError(t, err)
	require.NotNil(t, foundFeature)
	assert.Equal(t, "dashboards", foundFeature.Pragma())

	missing, err := repo.GetByID(context.Background(), catalog.TraitProblem, 1)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTraitRepository_ListByIDs(t *testing.T) {
	gdb := setupRepoDB(t)
	repo := NewTraitRepository(gdb, testLogger())

	first := mustCreateTrait(t, repo, catalog.TraitProblem, "manual-work")
	mustCreateTrait(t, repo, catalog.TraitProblem, "data-silos")
	third := mustCreateTrait(t, repo, catalog.TraitProblem, "slow-reports")

	traits, err := repo.ListByIDs(context.Background(), catalog.TraitProblem, []uint{first.ID(), third.ID()})
	require.NoError(t, err)
	require.Len(t, traits, 2)
	assert.Equal(t, "manual-work", traits[0].Pragma())
	assert.Equal(t, "slow-reports", traits[1].Pragma())

	empty, err := repo.ListByIDs(context.Background(), catalog.TraitProblem, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestTraitRepository_UpdateAndDelete(t *testing.T) {
	gdb := setupRepoDB(t)
	repo := NewTraitRepository(gdb, testLogger())

	trait := mustCreateTrait(t, repo, catalog.TraitFeature, "dashboards")

	affected, err := repo.UpdateFields(context.Background(), catalog.TraitFeature, trait.ID(), catalog.TraitUpdate{
		Title: strPtr("Live dashboards"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	found, err := repo.GetByID(context.Background(), catalog.TraitFeature, trait.ID())
	require.NoError(t, err)
	assert.Equal(t, "Live dashboards", found.Title())
	assert.Equal(t, "dashboards", found.Pragma())

	affected, err = repo.Delete(context.Background(), catalog.TraitFeature, trait.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	found, err = repo.GetByID(context.Background(), catalog.TraitFeature, trait.ID())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestTraitLinkRepository_CreateListDelete(t *testing.T) {
	gdb := setupRepoDB(t)
	solutions := NewSolutionRepository(gdb, testLogger())
	traits := NewTraitRepository(gdb, testLogger())
	links := NewTraitLinkRepository(gdb, testLogger())

	solution := mustCreateSolution(t, solutions, "crm-suite")
	benefit := mustCreateTrait(t, traits, catalog.TraitBenefit, "fast")
	other := mustCreateTrait(t, traits, catalog.TraitBenefit, "cheap")

	require.NoError(t, links.Create(context.Background(), catalog.TraitBenefit, solution.ID(), benefit.ID()))
	require.NoError(t, links.Create(context.Background(), catalog.TraitBenefit, solution.ID(), other.ID()))

	exists, err := links.Exists(context.Background(), catalog.TraitBenefit, solution.ID(), benefit.ID())
	require.NoError(t, err)
	assert.True(t, exists)

	// linking a benefit says nothing about the feature junction
	exists, err = links.Exists(context.Background(), catalog.TraitFeature, solution.ID(), benefit.ID())
	require.NoError(t, err)
	assert.False(t, exists)

	ids, err := links.ListTraitIDsBySolution(context.Background(), catalog.TraitBenefit, solution.ID())
	require.NoError(t, err)
	assert.Equal(t, []uint{benefit.ID(), other.ID()}, ids)

	affected, err := links.Delete(context.Background(), catalog.TraitBenefit, solution.ID(), benefit.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	ids, err = links.ListTraitIDsBySolution(context.Background(), catalog.TraitBenefit, solution.ID())
	require.NoError(t, err)
	assert.Equal(t, []uint{other.ID()}, ids)
}

func TestTraitLinkRepository_DuplicatePairConflicts(t *testing.T) {
	gdb := setupRepoDB(t)
	solutions := NewSolutionRepository(gdb, testLogger())
	traits := NewTraitRepository(gdb, testLogger())
	links := NewTraitLinkRepository(gdb, testLogger())

	solution := mustCreateSolution(t, solutions, "crm-suite")
	problem := mustCreateTrait(t, traits, catalog.TraitProblem, "manual-work")

	require.NoError(t, links.Create(context.Background(), catalog.TraitProblem, solution.ID(), problem.ID()))
	err := links.Create(context.Background(), catalog.TraitProblem, solution.ID(), problem.ID())
	require.Error(t, err)
}

func TestTraitLinkRepository_DeleteByTrait(t *testing.T) {
	gdb := setupRepoDB(t)
	solutions := NewSolutionRepository(gdb, testLogger())
	traits := NewTraitRepository(gdb, testLogger())
	links := NewTraitLinkRepository(gdb, testLogger())

	first := mustCreateSolution(t, solutions, "alpha")
	second := mustCreateSolution(t, solutions, "beta")
	feature := mustCreateTrait(t, traits, catalog.TraitFeature, "dashboards")

	require.NoError(t, links.Create(context.Background(), catalog.TraitFeature, first.ID(), feature.ID()))
	require.NoError(t, links.Create(context.Background(), catalog.TraitFeature, second.ID(), feature.ID()))

	affected, err := links.DeleteByTrait(context.Background(), catalog.TraitFeature, feature.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)
}
