package catalog

import "context"

// DimensionUpdate is the partial-update carrier for domains and sectors.
type DimensionUpdate struct {
	Description *string
	WebText     *string
	Prefix      *string
	Slug        *string
}

// IsEmpty reports whether no field is set.
func (u DimensionUpdate) IsEmpty() bool {
	return u.Description == nil && u.WebText == nil && u.Prefix == nil && u.Slug == nil
}

// TraitUpdate is the partial-update carrier for benefits, features and problems.
type TraitUpdate struct {
	Pragma      *string
	Title       *string
	Description *string
	Icon        *string
}

// IsEmpty reports whether no field is set.
func (u TraitUpdate) IsEmpty() bool {
	return u.Pragma == nil && u.Title == nil && u.Description == nil && u.Icon == nil
}

// SolutionRepository persists the root solution entity. Get methods return
// (nil, nil) when the row does not exist; callers translate that into the
// not-found domain error.
type SolutionRepository interface {
	Create(ctx context.Context, solution *Solution) error
	GetByID(ctx context.Context, id uint) (*Solution, error)
	GetBySlug(ctx context.Context, slug string) (*Solution, error)
	List(ctx context.Context, page, pageSize int) ([]*Solution, int64, error)
	ListIDs(ctx context.Context) ([]uint, error)
	Exists(ctx context.Context, id uint) (bool, error)
	UpdateFields(ctx context.Context, id uint, update PresentationUpdate) (int64, error)
	SetDimensionHighlight(ctx context.Context, id uint, kind TraitKind, pragma, title string) error
	Delete(ctx context.Context, id uint) (int64, error)
}

// DomainRepository persists classification domains.
type DomainRepository interface {
	Create(ctx context.Context, domain *Domain) error
	GetByID(ctx context.Context, id uint) (*Domain, error)
	List(ctx context.Context) ([]*Domain, error)
	Exists(ctx context.Context, id uint) (bool, error)
	UpdateFields(ctx context.Context, id uint, update DimensionUpdate) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

// SectorRepository persists classification sectors.
type SectorRepository interface {
	Create(ctx context.Context, sector *Sector) error
	GetByID(ctx context.Context, id uint) (*Sector, error)
	List(ctx context.Context) ([]*Sector, error)
	Exists(ctx context.Context, id uint) (bool, error)
	UpdateFields(ctx context.Context, id uint, update DimensionUpdate) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

// TraitRepository persists benefits, features and problems; the kind selects
// the backing table.
type TraitRepository interface {
	Create(ctx context.Context, trait *Trait) error
	GetByID(ctx context.Context, kind TraitKind, id uint) (*Trait, error)
	List(ctx context.Context, kind TraitKind) ([]*Trait, error)
	ListByIDs(ctx context.Context, kind TraitKind, ids []uint) ([]*Trait, error)
	Exists(ctx context.Context, kind TraitKind, id uint) (bool, error)
	UpdateFields(ctx context.Context, kind TraitKind, id uint, update TraitUpdate) (int64, error)
	Delete(ctx context.Context, kind TraitKind, id uint) (int64, error)
}

// DomainLinkRepository persists (solution, domain) snapshot rows. Delete
// methods report affected rows so callers can distinguish no-op from hit.
type DomainLinkRepository interface {
	Create(ctx context.Context, link *DomainLink) error
	Get(ctx context.Context, solutionID, domainID uint) (*DomainLink, error)
	Exists(ctx context.Context, solutionID, domainID uint) (bool, error)
	ListBySolution(ctx context.Context, solutionID uint) ([]*DomainLink, error)
	ListAll(ctx context.Context) ([]*DomainLink, error)
	UpdateFields(ctx context.Context, solutionID, domainID uint, update PresentationUpdate) (int64, error)
	Delete(ctx context.Context, solutionID, domainID uint) (int64, error)
	DeleteByDomain(ctx context.Context, domainID uint) (int64, error)
}

// SectorLinkRepository persists (solution, sector) rows.
type SectorLinkRepository interface {
	Create(ctx context.Context, link *SectorLink) error
	CreateBatch(ctx context.Context, links []*SectorLink) error
	Get(ctx context.Context, solutionID, sectorID uint) (*SectorLink, error)
	Exists(ctx context.Context, solutionID, sectorID uint) (bool, error)
	ListBySolution(ctx context.Context, solutionID uint) ([]*SectorLink, error)
	UpdateFields(ctx context.Context, solutionID, sectorID uint, update SectorLinkUpdate) (int64, error)
	Delete(ctx context.Context, solutionID, sectorID uint) (int64, error)
	DeleteBySector(ctx context.Context, sectorID uint) (int64, error)
}

// DomainSectorLinkRepository persists the three-way snapshot rows.
type DomainSectorLinkRepository interface {
	Create(ctx context.Context, link *DomainSectorLink) error
	CreateBatch(ctx context.Context, links []*DomainSectorLink) error
	Get(ctx context.Context, solutionID, domainID, sectorID uint) (*DomainSectorLink, error)
	Exists(ctx context.Context, solutionID, domainID, sectorID uint) (bool, error)
	ListBySolution(ctx context.Context, solutionID uint) ([]*DomainSectorLink, error)
	UpdateFields(ctx context.Context, solutionID, domainID, sectorID uint, update PresentationUpdate) (int64, error)
	Delete(ctx context.Context, solutionID, domainID, sectorID uint) (int64, error)
	DeleteByDomain(ctx context.Context, domainID uint) (int64, error)
	DeleteBySector(ctx context.Context, sectorID uint) (int64, error)
}

// TraitLinkRepository persists the plain (solution, trait) junctions.
type TraitLinkRepository interface {
	Create(ctx context.Context, kind TraitKind, solutionID, traitID uint) error
	Exists(ctx context.Context, kind TraitKind, solutionID, traitID uint) (bool, error)
	ListTraitIDsBySolution(ctx context.Context, kind TraitKind, solutionID uint) ([]uint, error)
	Delete(ctx context.Context, kind TraitKind, solutionID, traitID uint) (int64, error)
	DeleteByTrait(ctx context.Context, kind TraitKind, traitID uint) (int64, error)
}
