package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gaon-interior/cmd/api/auth"
	"gaon-interior/cmd/api/handlers"
	"gaon-interior/cmd/api/middleware"
	"gaon-interior/cmd/api/services"
	_ "gaon-interior/docs"
)

// Services groups everything the router wires into handlers.
type Services struct {
	Insights   *services.InsightService
	Projects   *services.ProjectService
	Admin      *services.AdminService
	JWTManager *auth.JWTManager
}

func New(svcs Services) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLoggingMiddleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.GET("/insights", handlers.ListInsightsHandler(svcs.Insights))
		api.GET("/insights/:id", handlers.GetInsightHandler(svcs.Insights))

		api.GET("/projects", handlers.ListProjectsHandler(svcs.Projects))
		api.GET("/projects/:id", handlers.GetProjectHandler(svcs.Projects))
	}

	// 관리자 라우트: JWT 검증(role=admin) 뒤에만 열린다.
	admin := api.Group("/admin", middleware.AdminAuthMiddleware(svcs.JWTManager))
	{
		admin.POST("/insights", handlers.CreateInsightHandler(svcs.Insights))
		admin.PUT("/insights/:id", handlers.UpdateInsightHandler(svcs.Insights))
		admin.DELETE("/insights/:id", handlers.DeleteInsightHandler(svcs.Insights))
		admin.POST("/insights/migrate-dates", handlers.MigrateInsightDatesHandler(svcs.Admin))

		admin.POST("/projects", handlers.CreateProjectHandler(svcs.Projects))
		admin.PUT("/projects/:id", handlers.UpdateProjectHandler(svcs.Projects))
		admin.DELETE("/projects/:id", handlers.DeleteProjectHandler(svcs.Projects))
		// ":id" 파라미터 라우트와 충돌하지 않도록 별도 경로를 쓴다.
		admin.PUT("/project-order", handlers.ReorderProjectsHandler(svcs.Projects))
	}

	return r
}
