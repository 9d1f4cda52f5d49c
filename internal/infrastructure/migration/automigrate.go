package migration

import (
	"github.com/solvia-inc/solvia/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.SolutionModel{},
		&models.DomainModel{},
		&models.SectorModel{},
		&models.BenefitModel{},
		&models.FeatureModel{},
		&models.ProblemModel{},
		&models.SolutionDomainModel{},
		&models.SolutionSectorModel{},
		&models.SolutionDomainSectorModel{},
		&models.SolutionBenefitModel{},
		&models.SolutionFeatureModel{},
		&models.SolutionProblemModel{},
	}
}
