package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/solvia-inc/solvia/internal/domain/catalog"
	"github.com/solvia-inc/solvia/internal/infrastructure/persistence/models"
	"github.com/solvia-inc/solvia/internal/shared/logger"
)

// setupRepoDB opens a per-test in-memory database with the full catalog
// schema migrated. Each test gets its own named database so state never
// leaks between tests.
func setupRepoDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, gdb.AutoMigrate(
		&models.SolutionModel{},
		&models.DomainModel{},
		&models.SectorModel{},
		&models.BenefitModel{},
		&models.FeatureModel{},
		&models.ProblemModel{},
		&models.SolutionDomainModel{},
		&models.SolutionSectorModel{},
		&models.SolutionDomainSectorModel{},
		&models.SolutionBenefitModel{},
		&models.SolutionFeatureModel{},
		&models.SolutionProblemModel{},
	))
	return gdb
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}

func mustCreateSolution(t *testing.T, repo catalog.SolutionRepository, slug string) *catalog.Solution {
	t.Helper()
	solution, err := catalog.NewSolution(slug, catalog.Presentation{
		Title:       "Title " + slug,
		Subtitle:    "Subtitle " + slug,
		Description: "Description " + slug,
	}, nil)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), solution))
	require.NotZero(t, solution.ID())
	return solution
}

func mustCreateDomain(t *testing.T, repo catalog.DomainRepository, slug string) *catalog.Domain {
	t.Helper()
	domain, err := catalog.NewDomain("Domain "+slug, "web text", "pfx", slug)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), domain))
	require.NotZero(t, domain.ID())
	return domain
}

func mustCreateSector(t *testing.T, repo catalog.SectorRepository, slug string) *catalog.Sector {
	t.Helper()
	sector, err := catalog.NewSector("Sector "+slug, "web text", "pfx", slug)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), sector))
	require.NotZero(t, sector.ID())
	return sector
}

func mustCreateTrait(t *testing.T, repo catalog.TraitRepository, kind catalog.TraitKind, pragma string) *catalog.Trait {
	t.Helper()
	trait, err := catalog.NewTrait(kind, pragma, "Title "+pragma, "Description "+pragma, "icon")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), trait))
	require.NotZero(t, trait.ID())
	return trait
}

func strPtr(s string) *string { return &s }
