package catalog

import "time"

// DomainLink is the (solution, domain) association row together with its
// scoped snapshot. The snapshot starts as a copy of the solution presentation
// and is edited independently afterwards.
type DomainLink struct {
	SolutionID   uint
	DomainID     uint
	Presentation Presentation
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SectorLink is the (solution, sector) association row. The two alternate
// text fields default to empty and override the solution copy when set.
type SectorLink struct {
	SolutionID     uint
	SectorID       uint
	AltDescription string
	AltText        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DomainSectorLink is the three-way (solution, domain, sector) association
// row with its own sector-scoped snapshot.
type DomainSectorLink struct {
	SolutionID   uint
	DomainID     uint
	SectorID     uint
	Presentation Presentation
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PresentationUpdate is the partial-update carrier for snapshot rows and the
// solution itself. Nil fields are left untouched; the repository maps the
// non-nil ones onto a fixed allow-list of columns, nothing else.
type PresentationUpdate struct {
	Title            *string
	Subtitle         *string
	Description      *string
	Icon             *string
	CTAPrimaryText   *string
	CTAPrimaryLink   *string
	CTASecondaryText *string
	CTASecondaryLink *string
	ProblemsPragma   *string
	ProblemsTitle    *string
	FeaturesPragma   *string
	FeaturesTitle    *string
	BenefitsPragma   *string
	BenefitsTitle    *string
}

// IsEmpty reports whether no field is set.
func (u PresentationUpdate) IsEmpty() bool {
	return u.Title == nil && u.Subtitle == nil && u.Description == nil && u.Icon == nil &&
		u.CTAPrimaryText == nil && u.CTAPrimaryLink == nil &&
		u.CTASecondaryText == nil && u.CTASecondaryLink == nil &&
		u.ProblemsPragma == nil && u.ProblemsTitle == nil &&
		u.FeaturesPragma == nil && u.FeaturesTitle == nil &&
		u.BenefitsPragma == nil && u.BenefitsTitle == nil
}

// SectorLinkUpdate is the partial-update carrier for (solution, sector) rows.
type SectorLinkUpdate struct {
	AltDescription *string
	AltText        *string
}

// IsEmpty reports whether no field is set.
func (u SectorLinkUpdate) IsEmpty() bool {
	return u.AltDescription == nil && u.AltText == nil
}
