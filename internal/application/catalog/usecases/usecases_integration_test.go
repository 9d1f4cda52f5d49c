package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/solvia-inc/solvia/internal/domain/catalog"
	"github.com/solvia-inc/solvia/internal/infrastructure/persistence/models"
	"github.com/solvia-inc/solvia/internal/infrastructure/repository"
	"github.com/solvia-inc/solvia/internal/shared/db"
	appErrors "github.com/solvia-inc/solvia/internal/shared/errors"
	"github.com/solvia-inc/solvia/internal/shared/services/richtext"
)

// catalogEnv wires real repositories over an in-memory database so the
// transactional use cases run against actual commit/rollback semantics.
type catalogEnv struct {
	gdb               *gorm.DB
	txMgr             *db.TransactionManager
	solutions         catalog.SolutionRepository
	domains           catalog.DomainRepository
	sectors           catalog.SectorRepository
	traits            catalog.TraitRepository
	domainLinks       catalog.DomainLinkRepository
	sectorLinks       catalog.SectorLinkRepository
	domainSectorLinks catalog.DomainSectorLinkRepository
	traitLinks        catalog.TraitLinkRepository
	richText          richtext.Service
}

func setupCatalogEnv(t *testing.T) *catalogEnv {
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

	log := noopLogger{}
	return &catalogEnv{
		gdb:               gdb,
		txMgr:             db.NewTransactionManager(gdb),
		solutions:         repository.NewSolutionRepository(gdb, log),
		domains:           repository.NewDomainRepository(gdb, log),
		sectors:           repository.NewSectorRepository(gdb, log),
		traits:            repository.NewTraitRepository(gdb, log),
		domainLinks:       repository.NewDomainLinkRepository(gdb, log),
		sectorLinks:       repository.NewSectorLinkRepository(gdb, log),
		domainSectorLinks: repository.NewDomainSectorLinkRepository(gdb, log),
		traitLinks:        repository.NewTraitLinkRepository(gdb, log),
		richText:          richtext.NewService(),
	}
}

func (env *catalogEnv) createSolution(t *testing.T, slug string) *catalog.Solution {
	t.Helper()
	solution, err := catalog.NewSolution(slug, catalog.Presentation{
		Title:       "Title " + slug,
		Subtitle:    "Subtitle " + slug,
		Description: "Description " + slug,
	}, nil)
	require.NoError(t, err)
	require.NoError(t, env.solutions.Create(context.Background(), solution))
	return solution
}

func (env *catalogEnv) createDomainFor(t *testing.T, solutionID uint, slug string) uint {
	t.Helper()
	uc := NewCreateDomainForSolutionUseCase(
		env.solutions, env.domains, env.domainLinks, env.txMgr, env.richText, noopLogger{})
	result, err := uc.Execute(context.Background(), CreateDomainForSolutionCommand{
		SolutionID:  solutionID,
		Description: "Domain " + slug,
		Slug:        slug,
	})
	require.NoError(t, err)
	return result.DomainID
}

func TestCreateDomainForSolution_CopiesSnapshot(t *testing.T) {
	env := setupCatalogEnv(t)
	solution := env.createSolution(t, "crm-suite")

	uc := NewCreateDomainForSolutionUseCase(
		env.solutions, env.domains, env.domainLinks, env.txMgr, env.richText, noopLogger{})
	result, err := uc.Execute(context.Background(), CreateDomainForSolutionCommand{
		SolutionID:  solution.ID(),
		Description: "Healthcare",
		WebText:     "web",
		Prefix:      "hc",
		Slug:        "healthcare",
	})
	require.NoError(t, err)
	assert.Equal(t, solution.ID(), result.SolutionID)
	assert.NotZero(t, result.DomainID)

	link, err := env.domainLinks.Get(context.Background(), solution.ID(), result.DomainID)
	require.NoError(t, err)
	require.NotNil(t, link)
	assert.Equal(t, solution.Presentation().Title, link.Presentation.Title)
	assert.Equal(t, solution.Presentation().Description, link.Presentation.Description)
}

func TestCreateDomainForSolution_MissingSolutionLeavesNothing(t *testing.T) {
	env := setupCatalogEnv(t)

	uc := NewCreateDomainForSolutionUseCase(
		env.solutions, env.domains, env.domainLinks, env.txMgr, env.richText, noopLogger{})
	_, err := uc.Execute(context.Background(), CreateDomainForSolutionCommand{
		SolutionID:  999,
		Description: "Healthcare",
	})
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFoundError(err))

	// rollback: the domain row must not survive
	domains, err := env.domains.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, domains)
}

func TestAssociateDomain_Idempotent(t *testing.T) {
	env := setupCatalogEnv(t)
	solution := env.createSolution(t, "crm-suite")
	domainID := env.createDomainFor(t, solution.ID(), "healthcare")

	uc := NewAssociateDomainUseCase(env.solutions, env.domains, env.domainLinks, env.txMgr, noopLogger{})
	result, err := uc.Execute(context.Background(), AssociateDomainCommand{
		SolutionID: solution.ID(),
		DomainID:   domainID,
	})
	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Equal(t, "relation already existed", result.Message)

	var count int64
	env.gdb.Model(&models.SolutionDomainModel{}).
		Where("solution_id = ? AND domain_id = ?", solution.ID(), domainID).
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAssociateDomain_CreatesWhenMissing(t *testing.T) {
	env := setupCatalogEnv(t)
	first := env.createSolution(t, "alpha")
	second := env.createSolution(t, "beta")
	domainID := env.createDomainFor(t, first.ID(), "healthcare")

	uc := NewAssociateDomainUseCase(env.solutions, env.domains, env.domainLinks, env.txMgr, noopLogger{})
	result, err := uc.Execute(context.Background(), AssociateDomainCommand{
		SolutionID: second.ID(),
		DomainID:   domainID,
	})
	require.NoError(t, err)
	assert.True(t, result.Created)

	link, err := env.domainLinks.Get(context.Background(), second.ID(), domainID)
	require.NoError(t, err)
	require.NotNil(t, link)
	assert.Equal(t, second.Presentation().Title, link.Presentation.Title)
}

func TestAssociate_MissingSolutionWritesNothing(t *testing.T) {
	env := setupCatalogEnv(t)
	solution := env.createSolution(t, "crm-suite")
	domainID := env.createDomainFor(t, solution.ID(), "healthcare")

	uc := NewAssociateDomainUseCase(env.solutions, env.domains, env.domainLinks, env.txMgr, noopLogger{})
	_, err := uc.Execute(context.Background(), AssociateDomainCommand{
		SolutionID: 999,
		DomainID:   domainID,
	})
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFoundError(err))

	var count int64
	env.gdb.Model(&models.SolutionDomainModel{}).Where("solution_id = ?", 999).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateSector_FansOutAcrossCatalog(t *testing.T) {
	env := setupCatalogEnv(t)
	first := env.createSolution(t, "alpha")
	second := env.createSolution(t, "beta")
	domainID := env.createDomainFor(t, first.ID(), "healthcare")

	uc := NewCreateSectorUseCase(
		env.solutions, env.sectors, env.sectorLinks, env.domainLinks, env.domainSectorLinks,
		env.txMgr, env.richText, noopLogger{})
	result, err := uc.Execute(context.Background(), CreateSectorCommand{
		Description: "Retail",
		Slug:        "retail",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.SolutionsLinked)
	assert.Equal(t, 1, result.DomainSectorsLinked)

	for _, s := range []*catalog.Solution{first, second} {
		link, err := env.sectorLinks.Get(context.Background(), s.ID(), result.SectorID)
		require.NoError(t, err)
		require.NotNil(t, link)
		assert.Empty(t, link.AltDescription)
	}

	triple, err := env.domainSectorLinks.Get(context.Background(), first.ID(), domainID, result.SectorID)
	require.NoError(t, err)
	require.NotNil(t, triple)
	assert.Equal(t, first.Presentation().Title, triple.Presentation.Title)

	// second solution has no domain, so no triple row for it
	missing, err := env.domainSectorLinks.Get(context.Background(), second.ID(), domainID, result.SectorID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDeleteDomain_CascadesThenAssociateFailsNotFound(t *testing.T) {
	env := setupCatalogEnv(t)
	first := env.createSolution(t, "alpha")
	second := env.createSolution(t, "beta")
	domainID := env.createDomainFor(t, first.ID(), "healthcare")

	associate := NewAssociateDomainUseCase(env.solutions, env.domains, env.domainLinks, env.txMgr, noopLogger{})
	_, err := associate.Execute(context.Background(), AssociateDomainCommand{
		SolutionID: second.ID(), DomainID: domainID,
	})
	require.NoError(t, err)

	deleteUC := NewDeleteDomainUseCase(env.domains, env.domainLinks, env.domainSectorLinks, env.txMgr, noopLogger{})
	require.NoError(t, deleteUC.Execute(context.Background(), domainID))

	var count int64
	env.gdb.Model(&models.SolutionDomainModel{}).Where("domain_id = ?", domainID).Count(&count)
	assert.Equal(t, int64(0), count)

	_, err = associate.Execute(context.Background(), AssociateDomainCommand{
		SolutionID: first.ID(), DomainID: domainID,
	})
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFoundError(err))
}

func TestDeleteSector_SweepsBothJunctionTables(t *testing.T) {
	env := setupCatalogEnv(t)
	solution := env.createSolution(t, "crm-suite")
	env.createDomainFor(t, solution.ID(), "healthcare")

	createSector := NewCreateSectorUseCase(
		env.solutions, env.sectors, env.sectorLinks, env.domainLinks, env.domainSectorLinks,
		env.txMgr, env.richText, noopLogger{})
	result, err := createSector.Execute(context.Background(), CreateSectorCommand{Description: "Retail"})
	require.NoError(t, err)

	deleteUC := NewDeleteSectorUseCase(env.sectors, env.sectorLinks, env.domainSectorLinks, env.txMgr, noopLogger{})
	require.NoError(t, deleteUC.Execute(context.Background(), result.SectorID))

	var count int64
	env.gdb.Model(&models.SolutionSectorModel{}).Where("sector_id = ?", result.SectorID).Count(&count)
	assert.Equal(t, int64(0), count)
	env.gdb.Model(&models.SolutionDomainSectorModel{}).Where("sector_id = ?", result.SectorID).Count(&count)
	assert.Equal(t, int64(0), count)

	assert.True(t, appErrors.IsNotFoundError(deleteUC.Execute(context.Background(), result.SectorID)))
}

func TestAssociateTrait_UpdatesHighlightLastWriterWins(t *testing.T) {
	env := setupCatalogEnv(t)
	solution := env.createSolution(t, "crm-suite")

	first, err := catalog.NewTrait(catalog.TraitBenefit, "fast", "Fast onboarding", "", "")
	require.NoError(t, err)
	require.NoError(t, env.traits.Create(context.Background(), first))
	second, err := catalog.NewTrait(catalog.TraitBenefit, "cheap", "Low cost", "", "")
	require.NoError(t, err)
	require.NoError(t, env.traits.Create(context.Background(), second))

	uc := NewAssociateTraitUseCase(env.solutions, env.traits, env.traitLinks, env.txMgr, noopLogger{})

	result, err := uc.Execute(context.Background(), AssociateTraitCommand{
		Kind: catalog.TraitBenefit, SolutionID: solution.ID(), TraitID: first.ID(),
	})
	require.NoError(t, err)
	assert.True(t, result.Created)

	reloaded, err := env.solutions.GetByID(context.Background(), solution.ID())
	require.NoError(t, err)
	assert.Equal(t, "fast", reloaded.Presentation().BenefitsPragma)
	assert.Equal(t, "Fast onboarding", reloaded.Presentation().BenefitsTitle)

	// the most recently associated benefit overwrites the pair
	result, err = uc.Execute(context.Background(), AssociateTraitCommand{
		Kind: catalog.TraitBenefit, SolutionID: solution.ID(), TraitID: second.ID(),
	})
	require.NoError(t, err)
	assert.True(t, result.Created)

	reloaded, err = env.solutions.GetByID(context.Background(), solution.ID())
	require.NoError(t, err)
	assert.Equal(t, "cheap", reloaded.Presentation().BenefitsPragma)
	assert.Equal(t, "Low cost", reloaded.Presentation().BenefitsTitle)
}

func TestAssociateTrait_Idempotent(t *testing.T) {
	env := setupCatalogEnv(t)
	solution := env.createSolution(t, "crm-suite")

	trait, err := catalog.NewTrait(catalog.TraitProblem, "manual-work", "Manual work", "", "")
	require.NoError(t, err)
	require.NoError(t, env.traits.Create(context.Background(), trait))

	uc := NewAssociateTraitUseCase(env.solutions, env.traits, env.traitLinks, env.txMgr, noopLogger{})
	for i, wantCreated := range []bool{true, false} {
		result, err := uc.Execute(context.Background(), AssociateTraitCommand{
			Kind: catalog.TraitProblem, SolutionID: solution.ID(), TraitID: trait.ID(),
		})
		require.NoError(t, err, "call %d", i)
		assert.Equal(t, wantCreated, result.Created)
	}

	var count int64
	env.gdb.Model(&models.SolutionProblemModel{}).Where("solution_id = ?", solution.ID()).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAssociateTrait_MissingTraitFailsNotFound(t *testing.T) {
	env := setupCatalogEnv(t)
	solution := env.createSolution(t, "crm-suite")

	uc := NewAssociateTraitUseCase(env.solutions, env.traits, env.traitLinks, env.txMgr, noopLogger{})
	_, err := uc.Execute(context.Background(), AssociateTraitCommand{
		Kind: catalog.TraitFeature, SolutionID: solution.ID(), TraitID: 999,
	})
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFoundError(err))
}

func TestDeleteTrait_CascadesJunctions(t *testing.T) {
	env := setupCatalogEnv(t)
	solution := env.createSolution(t, "crm-suite")

	trait, err := catalog.NewTrait(catalog.TraitFeature, "dashboards", "Dashboards", "", "")
	require.NoError(t, err)
	require.NoError(t, env.traits.Create(context.Background(), trait))
	require.NoError(t, env.traitLinks.Create(context.Background(), catalog.TraitFeature, solution.ID(), trait.ID()))

	uc := NewDeleteTraitUseCase(env.traits, env.traitLinks, env.txMgr, noopLogger{})
	require.NoError(t, uc.Execute(context.Background(), catalog.TraitFeature, trait.ID()))

	ids, err := env.traitLinks.ListTraitIDsBySolution(context.Background(), catalog.TraitFeature, solution.ID())
	require.NoError(t, err)
	assert.Empty(t, ids)

	found, err := env.traits.GetByID(context.Background(), catalog.TraitFeature, trait.ID())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestDeleteSolution_LeavesJunctionRows(t *testing.T) {
	env := setupCatalogEnv(t)
	solution := env.createSolution(t, "crm-suite")
	domainID := env.createDomainFor(t, solution.ID(), "healthcare")

	uc := NewDeleteSolutionUseCase(env.solutions, noopLogger{})
	require.NoError(t, uc.Execute(context.Background(), solution.ID()))

	// established behavior: solution deletion does not sweep its junctions
	var count int64
	env.gdb.Model(&models.SolutionDomainModel{}).
		Where("solution_id = ? AND domain_id = ?", solution.ID(), domainID).
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateTrait_CreateAndAssociate(t *testing.T) {
	env := setupCatalogEnv(t)
	solution := env.createSolution(t, "crm-suite")

	uc := NewCreateTraitUseCase(env.traits, env.traitLinks, env.solutions, env.txMgr, env.richText, noopLogger{})
	result, err := uc.Execute(context.Background(), CreateTraitCommand{
		Kind:       catalog.TraitBenefit,
		Pragma:     "fast",
		Title:      "Fast onboarding",
		SolutionID: solution.ID(),
	})
	require.NoError(t, err)
	assert.True(t, result.Associated)

	ids, err := env.traitLinks.ListTraitIDsBySolution(context.Background(), catalog.TraitBenefit, solution.ID())
	require.NoError(t, err)
	assert.Equal(t, []uint{result.ID}, ids)

	reloaded, err := env.solutions.GetByID(context.Background(), solution.ID())
	require.NoError(t, err)
	assert.Equal(t, "fast", reloaded.Presentation().BenefitsPragma)
}

func TestCreateTrait_MissingSolutionRollsBackEntity(t *testing.T) {
	env := setupCatalogEnv(t)

	uc := NewCreateTraitUseCase(env.traits, env.traitLinks, env.solutions, env.txMgr, env.richText, noopLogger{})
	_, err := uc.Execute(context.Background(), CreateTraitCommand{
		Kind:       catalog.TraitBenefit,
		Pragma:     "fast",
		Title:      "Fast onboarding",
		SolutionID: 999,
	})
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFoundError(err))

	traits, err := env.traits.List(context.Background(), catalog.TraitBenefit)
	require.NoError(t, err)
	assert.Empty(t, traits)
}
