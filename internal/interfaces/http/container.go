package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/solvia-inc/solvia/internal/application/catalog/usecases"
	"github.com/solvia-inc/solvia/internal/domain/catalog"
	"github.com/solvia-inc/solvia/internal/infrastructure/auth"
	"github.com/solvia-inc/solvia/internal/infrastructure/config"
	"github.com/solvia-inc/solvia/internal/infrastructure/repository"
	"github.com/solvia-inc/solvia/internal/interfaces/http/handlers"
	catalogHandlers "github.com/solvia-inc/solvia/internal/interfaces/http/handlers/catalog"
	"github.com/solvia-inc/solvia/internal/interfaces/http/middleware"
	"github.com/solvia-inc/solvia/internal/shared/db"
	"github.com/solvia-inc/solvia/internal/shared/logger"
	"github.com/solvia-inc/solvia/internal/shared/services/richtext"
)

// Container wires repositories, use cases, handlers and middleware into a
// ready-to-serve gin engine.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface

	repos *repositories
	hdlrs *allHandlers

	authMiddleware *middleware.AuthMiddleware
}

type repositories struct {
	solution         catalog.SolutionRepository
	domain           catalog.DomainRepository
	sector           catalog.SectorRepository
	trait            catalog.TraitRepository
	domainLink       catalog.DomainLinkRepository
	sectorLink       catalog.SectorLinkRepository
	domainSectorLink catalog.DomainSectorLinkRepository
	traitLink        catalog.TraitLinkRepository
}

type allHandlers struct {
	auth        *handlers.AuthHandler
	solution    *catalogHandlers.SolutionHandler
	dimension   *catalogHandlers.DimensionHandler
	trait       *catalogHandlers.TraitHandler
	association *catalogHandlers.AssociationHandler
}

func NewContainer(gormDB *gorm.DB, cfg *config.Config, log logger.Interface) *Container {
	c := &Container{
		engine: gin.New(),
		db:     gormDB,
		cfg:    cfg,
		log:    log,
	}

	c.repos = &repositories{
		solution:         repository.NewSolutionRepository(gormDB, log),
		domain:           repository.NewDomainRepository(gormDB, log),
		sector:           repository.NewSectorRepository(gormDB, log),
		trait:            repository.NewTraitRepository(gormDB, log),
		domainLink:       repository.NewDomainLinkRepository(gormDB, log),
		sectorLink:       repository.NewSectorLinkRepository(gormDB, log),
		domainSectorLink: repository.NewDomainSectorLinkRepository(gormDB, log),
		traitLink:        repository.NewTraitLinkRepository(gormDB, log),
	}

	txMgr := db.NewTransactionManager(gormDB)
	richText := richtext.NewService()

	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	hasher := auth.NewBcryptPasswordHasher(0)
	c.authMiddleware = middleware.NewAuthMiddleware(jwtSvc, log)

	r := c.repos
	c.hdlrs = &allHandlers{
		auth: handlers.NewAuthHandler(cfg.Auth.Admin, hasher, jwtSvc),
		solution: catalogHandlers.NewSolutionHandler(
			usecases.NewCreateSolutionUseCase(r.solution, richText, log),
			usecases.NewGetSolutionUseCase(r.solution, richText, log),
			usecases.NewListSolutionsUseCase(r.solution, log),
			usecases.NewUpdateSolutionUseCase(r.solution, richText, log),
			usecases.NewDeleteSolutionUseCase(r.solution, log),
			usecases.NewListSolutionAssociationsUseCase(
				r.solution, r.domainLink, r.sectorLink, r.domainSectorLink, r.trait, r.traitLink, log),
		),
		dimension: catalogHandlers.NewDimensionHandler(
			usecases.NewCreateDomainForSolutionUseCase(r.solution, r.domain, r.domainLink, txMgr, richText, log),
			usecases.NewGetDomainUseCase(r.domain, log),
			usecases.NewListDomainsUseCase(r.domain, log),
			usecases.NewUpdateDomainUseCase(r.domain, richText, log),
			usecases.NewDeleteDomainUseCase(r.domain, r.domainLink, r.domainSectorLink, txMgr, log),
			usecases.NewCreateSectorUseCase(r.solution, r.sector, r.sectorLink, r.domainLink, r.domainSectorLink, txMgr, richText, log),
			usecases.NewGetSectorUseCase(r.sector, log),
			usecases.NewListSectorsUseCase(r.sector, log),
			usecases.NewUpdateSectorUseCase(r.sector, richText, log),
			usecases.NewDeleteSectorUseCase(r.sector, r.sectorLink, r.domainSectorLink, txMgr, log),
		),
		trait: catalogHandlers.NewTraitHandler(
			usecases.NewCreateTraitUseCase(r.trait, r.traitLink, r.solution, txMgr, richText, log),
			usecases.NewGetTraitUseCase(r.trait, log),
			usecases.NewListTraitsUseCase(r.trait, log),
			usecases.NewUpdateTraitUseCase(r.trait, log),
			usecases.NewDeleteTraitUseCase(r.trait, r.traitLink, txMgr, log),
		),
		association: catalogHandlers.NewAssociationHandler(
			usecases.NewAssociateDomainUseCase(r.solution, r.domain, r.domainLink, txMgr, log),
			usecases.NewAssociateSectorUseCase(r.solution, r.sector, r.sectorLink, txMgr, log),
			usecases.NewAssociateDomainSectorUseCase(r.solution, r.domain, r.sector, r.domainSectorLink, txMgr, log),
			usecases.NewAssociateTraitUseCase(r.solution, r.trait, r.traitLink, txMgr, log),
			usecases.NewUpdateSolutionDomainUseCase(r.domainLink, log),
			usecases.NewUpdateSolutionSectorUseCase(r.sectorLink, log),
			usecases.NewUpdateSolutionDomainSectorUseCase(r.domainSectorLink, log),
			usecases.NewDisassociateDomainUseCase(r.domainLink, log),
			usecases.NewDisassociateSectorUseCase(r.sectorLink, log),
			usecases.NewDisassociateDomainSectorUseCase(r.domainSectorLink, log),
			usecases.NewDisassociateTraitUseCase(r.traitLink, log),
		),
	}

	return c
}

// Engine returns the underlying gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}
