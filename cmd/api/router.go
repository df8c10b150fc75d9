package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"publishing-crm/internal/shared/middleware"
	"publishing-crm/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthorRoutes(v1, c)
		setupAgentRoutes(v1, c)
		setupPublisherRoutes(v1, c)
		setupBookRoutes(v1, c)
		setupDealRoutes(v1, c)
		setupProspectRoutes(v1, c)
		setupRepresentationRoutes(v1, c)
		setupNoteRoutes(v1, c)
		setupActivityRoutes(v1, c)
		setupSearchRoutes(v1, c)
		setupDashboardRoutes(v1, c)
	}

	return router
}

func setupAuthorRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authors := v1.Group("/authors")
	{
		authors.POST("", c.AuthorHandler.Create)
		authors.GET("", c.AuthorHandler.List)
		authors.GET("/:id", c.AuthorHandler.GetByID)
		authors.PUT("/:id", c.AuthorHandler.Update)
		authors.DELETE("/:id", c.AuthorHandler.Delete)
	}
}

func setupAgentRoutes(v1 *gin.RouterGroup, c *container.Container) {
	agents := v1.Group("/agents")
	{
		agents.POST("", c.AgentHandler.Create)
		agents.GET("", c.AgentHandler.List)
		agents.GET("/:id", c.AgentHandler.GetByID)
		agents.PUT("/:id", c.AgentHandler.Update)
		agents.DELETE("/:id", c.AgentHandler.Delete)
	}
}

func setupPublisherRoutes(v1 *gin.RouterGroup, c *container.Container) {
	publishers := v1.Group("/publishers")
	{
		publishers.POST("", c.PublisherHandler.Create)
		publishers.GET("", c.PublisherHandler.List)
		publishers.GET("/:id", c.PublisherHandler.GetByID)
		publishers.PUT("/:id", c.PublisherHandler.Update)
		publishers.DELETE("/:id", c.PublisherHandler.Delete)
	}
}

func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	books := v1.Group("/books")
	{
		books.POST("", c.BookHandler.Create)
		books.GET("", c.BookHandler.List)
		books.GET("/:id", c.BookHandler.GetByID)
		books.PUT("/:id", c.BookHandler.Update)
		books.DELETE("/:id", c.BookHandler.Delete)
	}
}

func setupDealRoutes(v1 *gin.RouterGroup, c *container.Container) {
	deals := v1.Group("/deals")
	{
		deals.POST("", c.DealHandler.Create)
		deals.GET("", c.DealHandler.List)
		deals.GET("/:id", c.DealHandler.GetByID)
		deals.GET("/:id/economics", c.DealHandler.Economics)
		deals.PUT("/:id", c.DealHandler.Update)
		deals.DELETE("/:id", c.DealHandler.Delete)
	}
}

func setupProspectRoutes(v1 *gin.RouterGroup, c *container.Container) {
	prospects := v1.Group("/prospects")
	{
		prospects.POST("", c.ProspectHandler.Create)
		prospects.GET("", c.ProspectHandler.List)
		prospects.GET("/:id", c.ProspectHandler.GetByID)
		prospects.PUT("/:id", c.ProspectHandler.Update)
		prospects.DELETE("/:id", c.ProspectHandler.Delete)
		prospects.POST("/:id/transition", c.ProspectHandler.Transition)
		prospects.POST("/:id/convert", c.ProspectHandler.Convert)
		prospects.POST("/:id/decline", c.ProspectHandler.Decline)
	}
}

func setupRepresentationRoutes(v1 *gin.RouterGroup, c *container.Container) {
	representations := v1.Group("/representations")
	{
		representations.POST("", c.RepresentationHandler.Create)
		representations.GET("", c.RepresentationHandler.List)
		representations.GET("/:id", c.RepresentationHandler.GetByID)
		representations.PUT("/:id", c.RepresentationHandler.Update)
		representations.DELETE("/:id", c.RepresentationHandler.Delete)
		representations.POST("/:id/end", c.RepresentationHandler.End)
	}
}

func setupNoteRoutes(v1 *gin.RouterGroup, c *container.Container) {
	notes := v1.Group("/notes")
	{
		notes.POST("", c.NoteHandler.Create)
		notes.GET("", c.NoteHandler.List)
		notes.GET("/:id", c.NoteHandler.GetByID)
		notes.PUT("/:id", c.NoteHandler.Update)
		notes.DELETE("/:id", c.NoteHandler.Delete)
	}
}

func setupActivityRoutes(v1 *gin.RouterGroup, c *container.Container) {
	activities := v1.Group("/activities")
	{
		activities.GET("", c.ActivityHandler.List)
		activities.GET("/:type/:id", c.ActivityHandler.ListForTrackable)
	}
}

func setupSearchRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.GET("/search", c.SearchHandler.Search)
}

func setupDashboardRoutes(v1 *gin.RouterGroup, c *container.Container) {
	dashboard := v1.Group("/dashboard")
	{
		dashboard.GET("", c.DashboardHandler.Overview)
		dashboard.GET("/metrics/:metric", c.DashboardHandler.MetricChange)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.HealthCheck(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
