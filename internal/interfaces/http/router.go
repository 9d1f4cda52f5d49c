package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/solvia-inc/solvia/internal/interfaces/http/middleware"
	"github.com/solvia-inc/solvia/internal/interfaces/http/routes"
)

// SetupRoutes registers global middleware and all route groups on the
// container's engine.
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.Recovery())
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())
	c.engine.Use(middleware.ErrorHandler())

	c.engine.GET("/health", func(ctx *gin.Context) {
		sqlDB, err := c.db.DB()
		if err != nil || sqlDB.Ping() != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	routes.SetupAuthRoutes(c.engine, &routes.AuthRouteConfig{
		AuthHandler: c.hdlrs.auth,
	})

	routes.SetupCatalogRoutes(c.engine, &routes.CatalogRouteConfig{
		SolutionHandler:    c.hdlrs.solution,
		DimensionHandler:   c.hdlrs.dimension,
		TraitHandler:       c.hdlrs.trait,
		AssociationHandler: c.hdlrs.association,
		AuthMiddleware:     c.authMiddleware,
	})
}
