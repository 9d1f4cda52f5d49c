package catalog

import (
	"fmt"
	"time"
)

// Domain is a classification dimension ("ámbito") a solution can be scoped to.
// A domain exists independently of any solution until associated.
type Domain struct {
	id          uint
	description string
	webText     string
	prefix      string
	slug        string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewDomain creates a new domain.
func NewDomain(description, webText, prefix, slug string) (*Domain, error) {
	if description == "" {
		return nil, fmt.Errorf("domain description is required")
	}
	if slug == "" {
		return nil, fmt.Errorf("domain slug is required")
	}

	now := time.Now()
	return &Domain{
		description: description,
		webText:     webText,
		prefix:      prefix,
		slug:        slug,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructDomain reconstructs a domain from persistence.
func ReconstructDomain(id uint, description, webText, prefix, slug string, createdAt, updatedAt time.Time) (*Domain, error) {
	if id == 0 {
		return nil, fmt.Errorf("domain ID cannot be zero")
	}
	if description == "" {
		return nil, fmt.Errorf("domain description is required")
	}

	return &Domain{
		id:          id,
		description: description,
		webText:     webText,
		prefix:      prefix,
		slug:        slug,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (d *Domain) ID() uint {
	return d.id
}

func (d *Domain) SetID(id uint) error {
	if d.id != 0 {
		return fmt.Errorf("domain ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("domain ID cannot be zero")
	}
	d.id = id
	return nil
}

func (d *Domain) Description() string  { return d.description }
func (d *Domain) WebText() string      { return d.webText }
func (d *Domain) Prefix() string       { return d.prefix }
func (d *Domain) Slug() string         { return d.slug }
func (d *Domain) CreatedAt() time.Time { return d.createdAt }
func (d *Domain) UpdatedAt() time.Time { return d.updatedAt }

// Sector is the second classification dimension. Unlike domains, a new sector
// is fanned out across the whole catalog at creation time.
type Sector struct {
	id          uint
	description string
	webText     string
	prefix      string
	slug        string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewSector creates a new sector.
func NewSector(description, webText, prefix, slug string) (*Sector, error) {
	if description == "" {
		return nil, fmt.Errorf("sector description is required")
	}
	if slug == "" {
		return nil, fmt.Errorf("sector slug is required")
	}

	now := time.Now()
	return &Sector{
		description: description,
		webText:     webText,
		prefix:      prefix,
		slug:        slug,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructSector reconstructs a sector from persistence.
func ReconstructSector(id uint, description, webText, prefix, slug string, createdAt, updatedAt time.Time) (*Sector, error) {
	if id == 0 {
		return nil, fmt.Errorf("sector ID cannot be zero")
	}
	if description == "" {
		return nil, fmt.Errorf("sector description is required")
	}

	return &Sector{
		id:          id,
		description: description,
		webText:     webText,
		prefix:      prefix,
		slug:        slug,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (s *Sector) ID() uint {
	return s.id
}

func (s *Sector) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("sector ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("sector ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Sector) Description() string  { return s.description }
func (s *Sector) WebText() string      { return s.webText }
func (s *Sector) Prefix() string       { return s.prefix }
func (s *Sector) Slug() string         { return s.slug }
func (s *Sector) CreatedAt() time.Time { return s.createdAt }
func (s *Sector) UpdatedAt() time.Time { return s.updatedAt }
