package models

import (
	"time"

	"github.com/solvia-inc/solvia/internal/shared/constants"
)

// SolutionDomainModel is the (solution, domain) junction plus the scoped
// snapshot of the solution's presentational fields taken at association time.
// The composite unique index is what makes the idempotent-associate
// check-then-insert race safe under concurrency.
//
// Note: No foreign key constraints or associations.
// All relationships are managed by application business logic.
type SolutionDomainModel struct {
	ID         uint `gorm:"primarykey"`
	SolutionID uint `gorm:"not null;uniqueIndex:idx_solution_domain"`
	DomainID   uint `gorm:"not null;uniqueIndex:idx_solution_domain"`
	PresentationColumns
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (SolutionDomainModel) TableName() string {
	return constants.TableSolutionDomains
}

// SolutionSectorModel is the (solution, sector) junction. It carries two
// free-text overrides instead of a full snapshot; both default to empty.
type SolutionSectorModel struct {
	ID             uint   `gorm:"primarykey"`
	SolutionID     uint   `gorm:"not null;uniqueIndex:idx_solution_sector"`
	SectorID       uint   `gorm:"not null;uniqueIndex:idx_solution_sector"`
	AltDescription string `gorm:"column:descalternativa;not null;default:'';size:255"`
	AltText        string `gorm:"column:textoalternativo;not null;default:'';type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (SolutionSectorModel) TableName() string {
	return constants.TableSolutionSectors
}

// SolutionDomainSectorModel is the three-way junction carrying the same
// snapshot block as SolutionDomainModel, further scoped by sector.
type SolutionDomainSectorModel struct {
	ID         uint `gorm:"primarykey"`
	SolutionID uint `gorm:"not null;uniqueIndex:idx_solution_domain_sector"`
	DomainID   uint `gorm:"not null;uniqueIndex:idx_solution_domain_sector"`
	SectorID   uint `gorm:"not null;uniqueIndex:idx_solution_domain_sector"`
	PresentationColumns
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (SolutionDomainSectorModel) TableName() string {
	return constants.TableSolutionDomainSectors
}

// SolutionBenefitModel is the plain (solution, benefit) junction.
type SolutionBenefitModel struct {
	ID         uint `gorm:"primarykey"`
	SolutionID uint `gorm:"not null;uniqueIndex:idx_solution_benefit"`
	BenefitID  uint `gorm:"not null;uniqueIndex:idx_solution_benefit"`
	CreatedAt  time.Time
}

// TableName specifies the table name for GORM
func (SolutionBenefitModel) TableName() string {
	return constants.TableSolutionBenefits
}

// SolutionFeatureModel is the plain (solution, feature) junction.
type SolutionFeatureModel struct {
	ID         uint `gorm:"primarykey"`
	SolutionID uint `gorm:"not null;uniqueIndex:idx_solution_feature"`
	FeatureID  uint `gorm:"not null;uniqueIndex:idx_solution_feature"`
	CreatedAt  time.Time
}

// TableName specifies the table name for GORM
func (SolutionFeatureModel) TableName() string {
	return constants.TableSolutionFeatures
}

// SolutionProblemModel is the plain (solution, problem) junction.
type SolutionProblemModel struct {
	ID         uint `gorm:"primarykey"`
	SolutionID uint `gorm:"not null;uniqueIndex:idx_solution_problem"`
	ProblemID  uint `gorm:"not null;uniqueIndex:idx_solution_problem"`
	CreatedAt  time.Time
}

// TableName specifies the table name for GORM
func (SolutionProblemModel) TableName() string {
	return constants.TableSolutionProblems
}
