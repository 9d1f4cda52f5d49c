package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/solvia-inc/solvia/internal/shared/constants"
)

// PresentationColumns is the denormalized presentational field set owned by a
// solution. The same column block is copied verbatim into the scoped snapshot
// tables (solution_domains, solution_domain_sectors) at association time, after
// which each copy evolves independently.
type PresentationColumns struct {
	Title            string `gorm:"not null;size:255"`
	Subtitle         string `gorm:"size:255"`
	Description      string `gorm:"type:text"`
	Icon             string `gorm:"size:255"`
	CTAPrimaryText   string `gorm:"column:cta_primary_text;size:255"`
	CTAPrimaryLink   string `gorm:"column:cta_primary_link;size:255"`
	CTASecondaryText string `gorm:"column:cta_secondary_text;size:255"`
	CTASecondaryLink string `gorm:"column:cta_secondary_link;size:255"`
	ProblemsPragma   string `gorm:"size:255"`
	ProblemsTitle    string `gorm:"size:255"`
	FeaturesPragma   string `gorm:"size:255"`
	FeaturesTitle    string `gorm:"size:255"`
	BenefitsPragma   string `gorm:"size:255"`
	BenefitsTitle    string `gorm:"size:255"`
}

// SolutionModel represents the database persistence model for solutions.
// This is the anti-corruption layer between domain and database.
type SolutionModel struct {
	ID   uint   `gorm:"primarykey"`
	Slug string `gorm:"uniqueIndex;not null;size:255"`
	PresentationColumns
	Multimedia datatypes.JSON
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (SolutionModel) TableName() string {
	return constants.TableSolutions
}
