package app

import (
	"smart_survey_backend/docs"
	"smart_survey_backend/internal/config"
	"smart_survey_backend/internal/middleware"
	"smart_survey_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.GET("/test", c.health.Ping)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
	}

	// 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg, repos.tokens))
	{
		auth := authGroup.Group("/auth")
		{
			auth.POST("/logout", c.auth.Logout)
			auth.GET("/me", c.auth.Me)
		}

		survey := authGroup.Group("/survey")
		{
			survey.GET("/questions", c.survey.GetQuestions)
			survey.POST("/submit", c.survey.Submit)
			survey.GET("/results", c.survey.GetResults)
			survey.GET("/status", c.survey.CheckStatus)
		}

		authGroup.GET("/user", c.auth.CurrentUser)
	}
}
