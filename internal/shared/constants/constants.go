package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Context keys
	ContextKeyUserID = "user_id"
	ContextKeyRole   = "role"

	// Roles
	RoleAdmin = "admin"

	// Table names
	TableSolutions             = "solutions"
	TableDomains               = "domains"
	TableSectors               = "sectors"
	TableBenefits              = "benefits"
	TableFeatures              = "features"
	TableProblems              = "problems"
	TableSolutionDomains       = "solution_domains"
	TableSolutionSectors       = "solution_sectors"
	TableSolutionDomainSectors = "solution_domain_sectors"
	TableSolutionBenefits      = "solution_benefits"
	TableSolutionFeatures      = "solution_features"
	TableSolutionProblems      = "solution_problems"
)
