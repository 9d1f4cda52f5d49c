package models

import (
	"time"

	"github.com/solvia-inc/solvia/internal/shared/constants"
)

// DomainModel represents a classification domain ("ámbito"). The Spanish
// column names are kept where the legacy schema used them.
type DomainModel struct {
	ID          uint   `gorm:"primarykey"`
	Description string `gorm:"not null;size:255"`
	WebText     string `gorm:"column:textoweb;size:255"`
	Prefix      string `gorm:"column:prefijo;size:100"`
	Slug        string `gorm:"not null;size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (DomainModel) TableName() string {
	return constants.TableDomains
}

// SectorModel represents a classification sector.
type SectorModel struct {
	ID          uint   `gorm:"primarykey"`
	Description string `gorm:"not null;size:255"`
	WebText     string `gorm:"column:textoweb;size:255"`
	Prefix      string `gorm:"column:prefijo;size:100"`
	Slug        string `gorm:"not null;size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (SectorModel) TableName() string {
	return constants.TableSectors
}
