package catalog

import (
	"fmt"
	"time"
)

// TraitKind distinguishes the three structurally identical tagging entities.
// Each kind lives in its own table and junction table; the kind selects them.
type TraitKind string

const (
	TraitBenefit TraitKind = "benefit"
	TraitFeature TraitKind = "feature"
	TraitProblem TraitKind = "problem"
)

// Valid reports whether the kind is one of the known trait kinds.
func (k TraitKind) Valid() bool {
	switch k {
	case TraitBenefit, TraitFeature, TraitProblem:
		return true
	}
	return false
}

// Trait is a benefit, feature or problem. All three carry the same shape:
// a short pragma label, a title, and descriptive text.
type Trait struct {
	id          uint
	kind        TraitKind
	pragma      string
	title       string
	description string
	icon        string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewTrait creates a new trait of the given kind.
func NewTrait(kind TraitKind, pragma, title, description, icon string) (*Trait, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown trait kind: %s", kind)
	}
	if title == "" {
		return nil, fmt.Errorf("%s title is required", kind)
	}

	now := time.Now()
	return &Trait{
		kind:        kind,
		pragma:      pragma,
		title:       title,
		description: description,
		icon:        icon,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructTrait reconstructs a trait from persistence.
func ReconstructTrait(id uint, kind TraitKind, pragma, title, description, icon string, createdAt, updatedAt time.Time) (*Trait, error) {
	if id == 0 {
		return nil, fmt.Errorf("trait ID cannot be zero")
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown trait kind: %s", kind)
	}

	return &Trait{
		id:          id,
		kind:        kind,
		pragma:      pragma,
		title:       title,
		description: description,
		icon:        icon,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Trait) ID() uint {
	return t.id
}

func (t *Trait) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("trait ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("trait ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Trait) Kind() TraitKind      { return t.kind }
func (t *Trait) Pragma() string       { return t.pragma }
func (t *Trait) Title() string        { return t.title }
func (t *Trait) Description() string  { return t.description }
func (t *Trait) Icon() string         { return t.icon }
func (t *Trait) CreatedAt() time.Time { return t.createdAt }
func (t *Trait) UpdatedAt() time.Time { return t.updatedAt }
