package routes

import (
	"github.com/gin-gonic/gin"

	catalogHandlers "github.com/solvia-inc/solvia/internal/interfaces/http/handlers/catalog"
	"github.com/solvia-inc/solvia/internal/interfaces/http/middleware"
)

// CatalogRouteConfig holds dependencies for catalog routes.
type CatalogRouteConfig struct {
	SolutionHandler    *catalogHandlers.SolutionHandler
	DimensionHandler   *catalogHandlers.DimensionHandler
	TraitHandler       *catalogHandlers.TraitHandler
	AssociationHandler *catalogHandlers.AssociationHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// SetupCatalogRoutes configures the catalog routes. Reads are public; every
// write goes through the admin guard.
func SetupCatalogRoutes(engine *gin.Engine, cfg *CatalogRouteConfig) {
	admin := func(group *gin.RouterGroup) *gin.RouterGroup {
		g := group.Group("")
		g.Use(cfg.AuthMiddleware.RequireAuth())
		g.Use(cfg.AuthMiddleware.RequireAdmin())
		return g
	}

	solutions := engine.Group("/solutions")
	{
		solutions.GET("", cfg.SolutionHandler.ListSolutions)
		solutions.GET("/:id", cfg.SolutionHandler.GetSolution)
		solutions.GET("/slug/:slug", cfg.SolutionHandler.GetSolutionBySlug)
		solutions.GET("/:id/associations", cfg.SolutionHandler.ListSolutionAssociations)

		solutionsAdmin := admin(solutions)
		{
			solutionsAdmin.POST("", cfg.SolutionHandler.CreateSolution)
			solutionsAdmin.PATCH("/:id", cfg.SolutionHandler.UpdateSolution)
			solutionsAdmin.DELETE("/:id", cfg.SolutionHandler.DeleteSolution)

			// Domain membership and the (solution, domain) snapshot.
			solutionsAdmin.POST("/:id/domains", cfg.DimensionHandler.CreateDomainForSolution)
			solutionsAdmin.POST("/:id/domains/:domain_id", cfg.AssociationHandler.AssociateDomain)
			solutionsAdmin.PATCH("/:id/domains/:domain_id", cfg.AssociationHandler.UpdateDomainLink)
			solutionsAdmin.DELETE("/:id/domains/:domain_id", cfg.AssociationHandler.DisassociateDomain)

			// Sector membership and its alternate text.
			solutionsAdmin.POST("/:id/sectors/:sector_id", cfg.AssociationHandler.AssociateSector)
			solutionsAdmin.PATCH("/:id/sectors/:sector_id", cfg.AssociationHandler.UpdateSectorLink)
			solutionsAdmin.DELETE("/:id/sectors/:sector_id", cfg.AssociationHandler.DisassociateSector)

			// The sector-scoped (solution, domain, sector) snapshot.
			solutionsAdmin.POST("/:id/domains/:domain_id/sectors/:sector_id", cfg.AssociationHandler.AssociateDomainSector)
			solutionsAdmin.PATCH("/:id/domains/:domain_id/sectors/:sector_id", cfg.AssociationHandler.UpdateDomainSectorLink)
			solutionsAdmin.DELETE("/:id/domains/:domain_id/sectors/:sector_id", cfg.AssociationHandler.DisassociateDomainSector)

			// Benefit/feature/problem membership.
			solutionsAdmin.POST("/:id/traits/:kind/:trait_id", cfg.AssociationHandler.AssociateTrait)
			solutionsAdmin.DELETE("/:id/traits/:kind/:trait_id", cfg.AssociationHandler.DisassociateTrait)
		}
	}

	domains := engine.Group("/domains")
	{
		domains.GET("", cfg.DimensionHandler.ListDomains)
		domains.GET("/:id", cfg.DimensionHandler.GetDomain)

		domainsAdmin := admin(domains)
		{
			domainsAdmin.PATCH("/:id", cfg.DimensionHandler.UpdateDomain)
			domainsAdmin.DELETE("/:id", cfg.DimensionHandler.DeleteDomain)
		}
	}

	sectors := engine.Group("/sectors")
	{
		sectors.GET("", cfg.DimensionHandler.ListSectors)
		sectors.GET("/:id", cfg.DimensionHandler.GetSector)

		sectorsAdmin := admin(sectors)
		{
			sectorsAdmin.POST("", cfg.DimensionHandler.CreateSector)
			sectorsAdmin.PATCH("/:id", cfg.DimensionHandler.UpdateSector)
			sectorsAdmin.DELETE("/:id", cfg.DimensionHandler.DeleteSector)
		}
	}

	traits := engine.Group("/traits")
	{
		traits.GET("/:kind", cfg.TraitHandler.ListTraits)
		traits.GET("/:kind/:id", cfg.TraitHandler.GetTrait)

		traitsAdmin := admin(traits)
		{
			traitsAdmin.POST("/:kind", cfg.TraitHandler.CreateTrait)
			traitsAdmin.PATCH("/:kind/:id", cfg.TraitHandler.UpdateTrait)
			traitsAdmin.DELETE("/:kind/:id", cfg.TraitHandler.DeleteTrait)
		}
	}
}
