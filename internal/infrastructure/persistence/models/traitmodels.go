package models

import (
	"time"

	"github.com/solvia-inc/solvia/internal/shared/constants"
)

// BenefitModel represents a benefit a solution can be tagged with.
type BenefitModel struct {
	ID          uint   `gorm:"primarykey"`
	Pragma      string `gorm:"size:255"`
	Title       string `gorm:"not null;size:255"`
	Description string `gorm:"type:text"`
	Icon        string `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (BenefitModel) TableName() string {
	return constants.TableBenefits
}

// FeatureModel represents a feature ("característica").
type FeatureModel struct {
	ID          uint   `gorm:"primarykey"`
	Pragma      string `gorm:"size:255"`
	Title       string `gorm:"not null;size:255"`
	Description string `gorm:"type:text"`
	Icon        string `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (FeatureModel) TableName() string {
	return constants.TableFeatures
}

// ProblemModel represents a problem a solution addresses.
type ProblemModel struct {
	ID          uint   `gorm:"primarykey"`
	Pragma      string `gorm:"size:255"`
	Title       string `gorm:"not null;size:255"`
	Description string `gorm:"type:text"`
	Icon        string `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (ProblemModel) TableName() string {
	return constants.TableProblems
}
