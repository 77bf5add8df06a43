package app

import (
	"thinkquest_backend/docs"
	"thinkquest_backend/internal/config"
	"thinkquest_backend/internal/middleware"
	"thinkquest_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.GET("/problems", c.problem.List)
		public.GET("/problems/:id", c.problem.Get)
		public.GET("/problems/:id/personas", c.problem.Personas)
		public.GET("/rpm-avatar-proxy", c.avatar.Proxy)
	}

	// Authenticated routes
	auth := router.Group("/api")
	auth.Use(middleware.AuthMiddleware(cfg))
	{
		auth.GET("/me", c.auth.Profile)
		auth.PUT("/me", c.auth.UpdateProfile)
		auth.POST("/update-avatar", c.avatar.UpdateAvatar)

		auth.GET("/quiz", c.quiz.Questions)
		auth.POST("/quiz/submit", c.quiz.Submit)
		auth.POST("/quiz/skip", c.quiz.Skip)

		// Quest routes are gated on quiz completion or skip.
		quest := auth.Group("")
		quest.Use(middleware.QuizGateMiddleware(repos.user))
		{
			quest.GET("/progress", c.progress.Get)
			quest.POST("/progress/problem", c.progress.SelectProblem)
			quest.POST("/progress/stages/:stage", c.progress.SubmitStage)
			quest.POST("/progress/reset", c.progress.Reset)

			quest.POST("/gemini-score", c.score.Score)
			quest.POST("/gemini-score-prototype", c.score.ScorePrototype)
			quest.POST("/gemini-chat", c.chat.Chat)
			quest.POST("/gemini-persona", c.chat.PersonaFeedback)

			quest.POST("/complete-quest", c.quest.CompleteQuest)
			quest.GET("/leaderboard", c.quest.Leaderboard)
		}
	}
}
