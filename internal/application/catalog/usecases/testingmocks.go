package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/solvia-inc/solvia/internal/domain/catalog"
	"github.com/solvia-inc/solvia/internal/shared/logger"
)

// noopLogger satisfies logger.Interface for tests that do not assert on log
// output.
type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (n noopLogger) With(args ...any) logger.Interface             { return n }
func (n noopLogger) Named(name string) logger.Interface            { return n }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

type mockSolutionRepository struct {
	mock.Mock
}

func (m *mockSolutionRepository) Create(ctx context.Context, solution *catalog.Solution) error {
	args := m.Called(ctx, solution)
	return args.Error(0)
}

func (m *mockSolutionRepository) GetByID(ctx context.Context, id uint) (*catalog.Solution, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Solution), args.Error(1)
}

func (m *mockSolutionRepository) GetBySlug(ctx context.Context, slug string) (*catalog.Solution, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Solution), args.Error(1)
}

func (m *mockSolutionRepository) List(ctx context.Context, page, pageSize int) ([]*catalog.Solution, int64, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*catalog.Solution), args.Get(1).(int64), args.Error(2)
}

func (m *mockSolutionRepository) ListIDs(ctx context.Context) ([]uint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *mockSolutionRepository) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockSolutionRepository) UpdateFields(ctx context.Context, id uint, update catalog.PresentationUpdate) (int64, error) {
	args := m.Called(ctx, id, update)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSolutionRepository) SetDimensionHighlight(ctx context.Context, id uint, kind catalog.TraitKind, pragma, title string) error {
	args := m.Called(ctx, id, kind, pragma, title)
	return args.Error(0)
}

func (m *mockSolutionRepository) Delete(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockDomainLinkRepository struct {
	mock.Mock
}

func (m *mockDomainLinkRepository) Create(ctx context.Context, link *catalog.DomainLink) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *mockDomainLinkRepository) Get(ctx context.Context, solutionID, domainID uint) (*catalog.DomainLink, error) {
	args := m.Called(ctx, solutionID, domainID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.DomainLink), args.Error(1)
}

func (m *mockDomainLinkRepository) Exists(ctx context.Context, solutionID, domainID uint) (bool, error) {
	args := m.Called(ctx, solutionID, domainID)
	return args.Bool(0), args.Error(1)
}

func (m *mockDomainLinkRepository) ListBySolution(ctx context.Context, solutionID uint) ([]*catalog.DomainLink, error) {
	args := m.Called(ctx, solutionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.DomainLink), args.Error(1)
}

func (m *mockDomainLinkRepository) ListAll(ctx context.Context) ([]*catalog.DomainLink, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.DomainLink), args.Error(1)
}

func (m *mockDomainLinkRepository) UpdateFields(ctx context.Context, solutionID, domainID uint, update catalog.PresentationUpdate) (int64, error) {
	args := m.Called(ctx, solutionID, domainID, update)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockDomainLinkRepository) Delete(ctx context.Context, solutionID, domainID uint) (int64, error) {
	args := m.Called(ctx, solutionID, domainID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockDomainLinkRepository) DeleteByDomain(ctx context.Context, domainID uint) (int64, error) {
	args := m.Called(ctx, domainID)
	return args.Get(0).(int64), args.Error(1)
}

type mockSectorLinkRepository struct {
	mock.Mock
}

func (m *mockSectorLinkRepository) Create(ctx context.Context, link *catalog.SectorLink) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *mockSectorLinkRepository) CreateBatch(ctx context.Context, links []*catalog.SectorLink) error {
	args := m.Called(ctx, links)
	return args.Error(0)
}

func (m *mockSectorLinkRepository) Get(ctx context.Context, solutionID, sectorID uint) (*catalog.SectorLink, error) {
	args := m.Called(ctx, solutionID, sectorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.SectorLink), args.Error(1)
}

func (m *mockSectorLinkRepository) Exists(ctx context.Context, solutionID, sectorID uint) (bool, error) {
	args := m.Called(ctx, solutionID, sectorID)
	return args.Bool(0), args.Error(1)
}

func (m *mockSectorLinkRepository) ListBySolution(ctx context.Context, solutionID uint) ([]*catalog.SectorLink, error) {
	args := m.Called(ctx, solutionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.SectorLink), args.Error(1)
}

func (m *mockSectorLinkRepository) UpdateFields(ctx context.Context, solutionID, sectorID uint, update catalog.SectorLinkUpdate) (int64, error) {
	args := m.Called(ctx, solutionID, sectorID, update)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSectorLinkRepository) Delete(ctx context.Context, solutionID, sectorID uint) (int64, error) {
	args := m.Called(ctx, solutionID, sectorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSectorLinkRepository) DeleteBySector(ctx context.Context, sectorID uint) (int64, error) {
	args := m.Called(ctx, sectorID)
	return args.Get(0).(int64), args.Error(1)
}

type mockDomainSectorLinkRepository struct {
	mock.Mock
}

func (m *mockDomainSectorLinkRepository) Create(ctx context.Context, link *catalog.DomainSectorLink) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *mockDomainSectorLinkRepository) CreateBatch(ctx context.Context, links []*catalog.DomainSectorLink) error {
	args := m.Called(ctx, links)
	return args.Error(0)
}

func (m *mockDomainSectorLinkRepository) Get(ctx context.Context, solutionID, domainID, sectorID uint) (*catalog.DomainSectorLink, error) {
	args := m.Called(ctx, solutionID, domainID, sectorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.DomainSectorLink), args.Error(1)
}

func (m *mockDomainSectorLinkRepository) Exists(ctx context.Context, solutionID, domainID, sectorID uint) (bool, error) {
	args := m.Called(ctx, solutionID, domainID, sectorID)
	return args.Bool(0), args.Error(1)
}

func (m *mockDomainSectorLinkRepository) ListBySolution(ctx context.Context, solutionID uint) ([]*catalog.DomainSectorLink, error) {
	args := m.Called(ctx, solutionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.DomainSectorLink), args.Error(1)
}

func (m *mockDomainSectorLinkRepository) UpdateFields(ctx context.Context, solutionID, domainID, sectorID uint, update catalog.PresentationUpdate) (int64, error) {
	args := m.Called(ctx, solutionID, domainID, sectorID, update)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockDomainSectorLinkRepository) Delete(ctx context.Context, solutionID, domainID, sectorID uint) (int64, error) {
	args := m.Called(ctx, solutionID, domainID, sectorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockDomainSectorLinkRepository) DeleteByDomain(ctx context.Context, domainID uint) (int64, error) {
	args := m.Called(ctx, domainID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockDomainSectorLinkRepository) DeleteBySector(ctx context.Context, sectorID uint) (int64, error) {
	args := m.Called(ctx, sectorID)
	return args.Get(0).(int64), args.Error(1)
}

type mockTraitLinkRepository struct {
	mock.Mock
}

func (m *mockTraitLinkRepository) Create(ctx context.Context, kind catalog.TraitKind, solutionID, traitID uint) error {
	args := m.Called(ctx, kind, solutionID, traitID)
	return args.Error(0)
}

func (m *mockTraitLinkRepository) Exists(ctx context.Context, kind catalog.TraitKind, solutionID, traitID uint) (bool, error) {
	args := m.Called(ctx, kind, solutionID, traitID)
	return args.Bool(0), args.Error(1)
}

func (m *mockTraitLinkRepository) ListTraitIDsBySolution(ctx context.Context, kind catalog.TraitKind, solutionID uint) ([]uint, error) {
	args := m.Called(ctx, kind, solutionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *mockTraitLinkRepository) Delete(ctx context.Context, kind catalog.TraitKind, solutionID, traitID uint) (int64, error) {
	args := m.Called(ctx, kind, solutionID, traitID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTraitLinkRepository) DeleteByTrait(ctx context.Context, kind catalog.TraitKind, traitID uint) (int64, error) {
	args := m.Called(ctx, kind, traitID)
	return args.Get(0).(int64), args.Error(1)
}
