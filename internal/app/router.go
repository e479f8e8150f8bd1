package app

import (
	"tryout_backend/docs"
	"tryout_backend/internal/config"
	"tryout_backend/internal/middleware"
	"tryout_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)
	a.registerAdminRoutes(router, c, cfg)
	a.registerNoteRoutes(router, c)
}

// Public surface: everything a student touches while taking a test,
// plus login and health.
func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)

		public.POST("/auth/login", c.auth.Login)

		public.GET("/categories", c.category.List)
		public.GET("/categories/:id", c.category.Get)

		public.GET("/subcategories", c.subCategory.List)
		public.GET("/subcategories/:id", c.subCategory.Get)

		public.GET("/questions/test/:subCategoryId", c.question.ListForTest)

		public.POST("/students", c.student.Register)

		sessions := public.Group("/test-sessions")
		{
			sessions.POST("/start", c.testSession.Start)
			sessions.GET("/:id", c.testSession.Get)
			sessions.PUT("/:id/answer", c.testSession.SaveAnswer)
			sessions.POST("/:id/submit", c.testSession.Submit)
			sessions.GET("/:id/results", c.testSession.Results)
		}
	}
}

// Admin surface: content management and reporting, behind the JWT guard.
func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api")
	admin.Use(middleware.AuthMiddleware(cfg))
	{
		admin.GET("/auth/profile", c.auth.Profile)

		admin.POST("/categories", c.category.Create)
		admin.PUT("/categories/:id", c.category.Update)
		admin.DELETE("/categories/:id", c.category.Delete)

		admin.POST("/subcategories", c.subCategory.Create)
		admin.PUT("/subcategories/:id", c.subCategory.Update)
		admin.DELETE("/subcategories/:id", c.subCategory.Delete)

		admin.GET("/questions", c.question.List)
		admin.GET("/questions/:id", c.question.Get)
		admin.POST("/questions", c.question.Create)
		admin.POST("/questions/bulk", c.question.BulkCreate)
		admin.PUT("/questions/:id", c.question.Update)
		admin.DELETE("/questions/:id", c.question.Delete)

		admin.GET("/students", c.student.List)
		admin.GET("/students/stats/overview", c.student.Stats)
		admin.GET("/students/:id", c.student.Get)
		admin.PUT("/students/:id", c.student.Update)
		admin.DELETE("/students/:id", c.student.Delete)

		admin.GET("/test-sessions", c.testSession.List)
		admin.GET("/test-sessions/stats/overview", c.testSession.Stats)
	}
}

// Notes surface: no auth, mirroring its standalone origin.
func (a *App) registerNoteRoutes(router *gin.Engine, c *controllers) {
	notes := router.Group("/api/notes")
	{
		notes.GET("", c.note.List)
		notes.GET("/:id", c.note.Get)
		notes.POST("", c.note.Create)
		notes.PUT("/:id", c.note.Update)
		notes.DELETE("/:id", c.note.Delete)
	}

	noteCategories := router.Group("/api/note-categories")
	{
		noteCategories.GET("", c.noteCategory.List)
		noteCategories.GET("/:id", c.noteCategory.Get)
		noteCategories.GET("/:id/notes", c.noteCategory.Notes)
		noteCategories.POST("", c.noteCategory.Create)
		noteCategories.PUT("/:id", c.noteCategory.Update)
		noteCategories.DELETE("/:id", c.noteCategory.Delete)
	}
}
