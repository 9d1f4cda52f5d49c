// Package catalog holds the catalog domain model: the solution aggregate, the
// classification dimensions it can be scoped to, and the association records
// binding them together.
package catalog

import (
	"fmt"
	"time"
)

// Presentation is the value object carrying every presentational field of a
// solution. It is copied wholesale into a scoped snapshot when a solution is
// associated to a domain or a (domain, sector) pair; from then on the copy and
// the original diverge freely.
type Presentation struct {
	Title            string
	Subtitle         string
	Description      string
	Icon             string
	CTAPrimaryText   string
	CTAPrimaryLink   string
	CTASecondaryText string
	CTASecondaryLink string
	ProblemsPragma   string
	ProblemsTitle    string
	FeaturesPragma   string
	FeaturesTitle    string
	BenefitsPragma   string
	BenefitsTitle    string
}

// Solution is the root catalog entity every dimension is ultimately
// associated to.
type Solution struct {
	id           uint
	slug         string
	presentation Presentation
	multimedia   map[string]interface{}
	createdAt    time.Time
	updatedAt    time.Time
}

// NewSolution creates a new solution.
func NewSolution(slug string, presentation Presentation, multimedia map[string]interface{}) (*Solution, error) {
	if slug == "" {
		return nil, fmt.Errorf("solution slug is required")
	}
	if presentation.Title == "" {
		return nil, fmt.Errorf("solution title is required")
	}

	if multimedia == nil {
		multimedia = make(map[string]interface{})
	}

	now := time.Now()
	return &Solution{
		slug:         slug,
		presentation: presentation,
		multimedia:   multimedia,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructSolution reconstructs a solution from persistence.
func ReconstructSolution(
	id uint,
	slug string,
	presentation Presentation,
	multimedia map[string]interface{},
	createdAt, updatedAt time.Time,
) (*Solution, error) {
	if id == 0 {
		return nil, fmt.Errorf("solution ID cannot be zero")
	}
	if slug == "" {
		return nil, fmt.Errorf("solution slug is required")
	}
	if multimedia == nil {
		multimedia = make(map[string]interface{})
	}

	return &Solution{
		id:           id,
		slug:         slug,
		presentation: presentation,
		multimedia:   multimedia,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (s *Solution) ID() uint {
	return s.id
}

func (s *Solution) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("solution ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("solution ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Solution) Slug() string {
	return s.slug
}

func (s *Solution) Presentation() Presentation {
	return s.presentation
}

func (s *Solution) Multimedia() map[string]interface{} {
	return s.multimedia
}

func (s *Solution) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Solution) UpdatedAt() time.Time {
	return s.updatedAt
}

// SetDimensionHighlight records the (pragma, title) pair shown for one trait
// dimension on the solution page. The most recently associated trait wins.
func (s *Solution) SetDimensionHighlight(kind TraitKind, pragma, title string) error {
	switch kind {
	case TraitBenefit:
		s.presentation.BenefitsPragma = pragma
		s.presentation.BenefitsTitle = title
	case TraitFeature:
		s.presentation.FeaturesPragma = pragma
		s.presentation.FeaturesTitle = title
	case TraitProblem:
		s.presentation.ProblemsPragma = pragma
		s.presentation.ProblemsTitle = title
	default:
		return fmt.Errorf("unknown trait kind: %s", kind)
	}
	s.updatedAt = time.Now()
	return nil
}
