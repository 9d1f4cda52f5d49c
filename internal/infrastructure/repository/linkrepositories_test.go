package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solvia-inc/solvia/internal/domain/catalog"
	appErrors "github.com/solvia-inc/solvia/internal/shared/errors"
)

func TestDomainLinkRepository_CreateGetAndDuplicate(t *testing.T) {
	gdb := setupRepoDB(t)
	solutions := NewSolutionRepository(gdb, testLogger())
	domains := NewDomainRepository(gdb, testLogger())
	links := NewDomainLinkRepository(gdb, testLogger())

	solution := mustCreateSolution(t, solutions, "crm-suite")
	domain := mustCreateDomain(t, domains, "health")

	err := links.Create(context.Background(), &catalog.DomainLink{
		SolutionID:   solution.ID(),
		DomainID:     domain.ID(),
		Presentation: solution.Presentation(),
	})
	require.NoError(t, err)

	found, err := links.Get(context.Background(), solution.ID(), domain.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, solution.Presentation().Title, found.Presentation.Title)

	err = links.Create(context.Background(), &catalog.DomainLink{
		SolutionID: solution.ID(),
		DomainID:   domain.ID(),
	})
	require.Error(t, err)
	assert.True(t, appErrors.IsConflictError(err))
}

func TestDomainLinkRepository_SnapshotIsIndependent(t *testing.T) {
	gdb := setupRepoDB(t)
	solutions := NewSolutionRepository(gdb, testLogger())
	domains := NewDomainRepository(gdb, testLogger())
	links := NewDomainLinkRepository(gdb, testLogger())

	solution := mustCreateSolution(t, solutions, "crm-suite")
	domain := mustCreateDomain(t, domains, "health")

	require.NoError(t, links.Create(context.Background(), &catalog.DomainLink{
		SolutionID:   solution.ID(),
		DomainID:     domain.ID(),
		Presentation: solution.Presentation(),
	}))

	// mutating the solution after association must not touch the snapshot
	_, err := solutions.UpdateFields(context.Background(), solution.ID(), catalog.PresentationUpdate{
		Title: strPtr("Changed"),
	})
	require.NoError(t, err)

	link, err := links.Get(context.Background(), solution.ID(), domain.ID())
	require.NoError(t, err)
	assert.Equal(t, "Title crm-suite", link.Presentation.Title)

	// and mutating the snapshot must not touch the solution
	_, err = links.UpdateFields(context.Background(), solution.ID(), domain.ID(), catalog.PresentationUpdate{
		Subtitle: strPtr("Scoped subtitle"),
	})
	require.NoError(t, err)

	reloaded, err := solutions.GetByID(context.Background(), solution.ID())
	require.NoError(t, err)
	assert.Equal(t, "Subtitle crm-suite", reloaded.Presentation().Subtitle)
}

func TestDomainLinkRepository_DeleteByDomain(t *testing.T) {
	gdb := setupRepoDB(t)
	solutions := NewSolutionRepository(gdb, testLogger())
	domains := NewDomainRepository(gdb, testLogger())
	links := NewDomainLinkRepository(gdb, testLogger())

	first := mustCreateSolution(t, solutions, "alpha")
	second := mustCreateSolution(t, solutions, "beta")
	domain := mustCreateDomain(t, domains, "health")

	for _, s := range []*catalog.Solution{first, second} {
		require.NoError(t, links.Create(context.Background(), &catalog.DomainLink{
			SolutionID: s.ID(), DomainID: domain.ID(),
		}))
	}

	affected, err := links.DeleteByDomain(context.Background(), domain.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	all, err := links.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSectorLinkRepository_CreateBatchAndDefaults(t *testing.T) {
	gdb := setupRepoDB(t)
	solutions := NewSolutionRepository(gdb, testLogger())
	sectors := NewSectorRepository(gdb, testLogger())
	links := NewSectorLinkRepository(gdb, testLogger())

	first := mustCreateSolution(t, solutions, "alpha")
	second := mustCreateSolution(t, solutions, "beta")
	sector := mustCreateSector(t, sectors, "retail")

	err := links.CreateBatch(context.Background(), []*catalog.SectorLink{
		{SolutionID: first.ID(), SectorID: sector.ID()},
		{SolutionID: second.ID(), SectorID: sector.ID()},
	})
	require.NoError(t, err)

	link, err := links.Get(context.Background(), first.ID(), sector.ID())
	require.NoError(t, err)
	require.NotNil(t, link)
	assert.Empty(t, link.AltDescription)
	assert.Empty(t, link.AltText)

	listed, err := links.ListBySolution(context.Background(), first.ID())
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestSectorLinkRepository_UpdateAltFields(t *testing.T) {
	gdb := setupRepoDB(t)
	solutions := NewSolutionRepository(gdb, testLogger())
	sectors := NewSectorRepository(gdb, testLogger())
	links := NewSectorLinkRepository(gdb, testLogger())

	solution := mustCreateSolution(t, solutions, "crm-suite")
	sector := mustCreateSector(t, sectors, "retail")

	require.NoError(t, links.Create(context.Background(), &catalog.SectorLink{
		SolutionID: solution.ID(), SectorID: sector.ID(),
	}))

	affected, err := links.UpdateFields(context.Background(), solution.ID(), sector.ID(), catalog.SectorLinkUpdate{
		AltDescription: strPtr("Retail pitch"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	link, err := links.Get(context.Background(), solution.ID(), sector.ID())
	require.NoError(t, err)
	assert.Equal(t, "Retail pitch", link.AltDescription)
	assert.Empty(t, link.AltText)
}

func TestDomainSectorLinkRepository_TripleUniqueness(t *testing.T) {
	gdb := setupRepoDB(t)
	solutions := NewSolutionRepository(gdb, testLogger())
	domains := NewDomainRepository(gdb, testLogger())
	sectors := NewSectorRepository(gdb, testLogger())
	links := NewDomainSectorLinkRepository(gdb, testLogger())

	solution := mustCreateSolution(t, solutions, "crm-suite")
	domain := mustCreateDomain(t, domains, "health")
	firstSector := mustCreateSector(t, sectors, "retail")
	secondSector := mustCreateSector(t, sectors, "logistics")

	require.NoError(t, links.Create(context.Background(), &catalog.DomainSectorLink{
		SolutionID: solution.ID(), DomainID: domain.ID(), SectorID: firstSector.ID(),
	}))

	// same pair with a different sector is a distinct row
	require.NoError(t, links.Create(context.Background(), &catalog.DomainSectorLink{
		SolutionID: solution.ID(), DomainID: domain.ID(), SectorID: secondSector.ID(),
	}))

	err := links.Create(context.Background(), &catalog.DomainSectorLink{
		SolutionID: solution.ID(), DomainID: domain.ID(), SectorID: firstSector.ID(),
	})
	require.Error(t, err)
	assert.True(t, appErrors.IsConflictError(err))

	listed, err := links.ListBySolution(context.Background(), solution.ID())
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestDomainSectorLinkRepository_DeleteBySector(t *testing.T) {
	gdb := setupRepoDB(t)
	solutions := NewSolutionRepository(gdb, testLogger())
	domains := NewDomainRepository(gdb, testLogger())
	sectors := NewSectorRepository(gdb, testLogger())
	links := NewDomainSectorLinkRepository(gdb, testLogger())

	solution := mustCreateSolution(t, solutions, "crm-suite")
	domain := mustCreateDomain(t, domains, "health")
	sector := mustCreateSector(t, sectors, "retail")
	other := mustCreateSector(t, sectors, "logistics")

	require.NoError(t, links.Create(context.Background(), &catalog.DomainSectorLink{
		SolutionID: solution.ID(), DomainID: domain.ID(), SectorID: sector.ID(),
	}))
	require.NoError(t, links.Create(context.Background(), &catalog.DomainSectorLink{
		SolutionID: solution.ID(), DomainID: domain.ID(), SectorID: other.ID(),
	}))

	affected, err := links.DeleteBySector(context.Background(), sector.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	remaining, err := links.ListBySolution(context.Background(), solution.ID())
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, other.ID(), remaining[0].SectorID)
}
