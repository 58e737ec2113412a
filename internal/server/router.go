package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/gabevillegas628/dsap-backend/internal/handlers"
	"github.com/gabevillegas628/dsap-backend/internal/middleware"
)

type RouterConfig struct {
	AuthMiddleware    *middleware.AuthMiddleware
	AnalysisHandler   *handlers.AnalysisHandler
	ReviewHandler     *handlers.ReviewHandler
	DiscussionHandler *handlers.DiscussionHandler
	CloneHandler      *handlers.CloneHandler
	UserHandler       *handlers.UserHandler
	StatusHandler     *handlers.StatusHandler
	SSEHandler        *handlers.SSEHandler
	AllowOrigins      []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	api.Use(cfg.AuthMiddleware.RequireAuth())
	{
		api.GET("/statuses", cfg.StatusHandler.ListStatuses)

		api.GET("/clones", cfg.CloneHandler.ListMine)
		api.GET("/clones/:cloneId/analysis", cfg.AnalysisHandler.GetAnalysis)
		api.PUT("/clones/:cloneId/answers", cfg.AnalysisHandler.SetAnswer)
		api.PUT("/clones/:cloneId/step", cfg.AnalysisHandler.SetStep)
		api.POST("/clones/:cloneId/save", cfg.AnalysisHandler.Save)
		api.POST("/clones/:cloneId/submit", cfg.AnalysisHandler.SubmitForReview)
		api.GET("/clones/:cloneId/feedback/:questionId", cfg.AnalysisHandler.QuestionFeedback)

		api.GET("/clones/:cloneId/messages", cfg.DiscussionHandler.ListMessages)
		api.POST("/clones/:cloneId/messages", cfg.DiscussionHandler.PostMessage)

		staff := api.Group("/")
		staff.Use(cfg.AuthMiddleware.RequireStaff())
		{
			staff.GET("/users", cfg.UserHandler.ListByRole)
			staff.POST("/clones", cfg.CloneHandler.Create)
			staff.PUT("/clones/:cloneId/assign", cfg.CloneHandler.Assign)
			staff.GET("/review/waiting", cfg.ReviewHandler.ListWaiting)
			staff.GET("/review/:progressId", cfg.ReviewHandler.GetSubmission)
			staff.POST("/review/:progressId/comments", cfg.ReviewHandler.AddComments)
			staff.PUT("/review/:progressId/comments/visibility", cfg.ReviewHandler.SetCommentVisibility)
			staff.PUT("/review/:progressId/status", cfg.ReviewHandler.UpdateStatus)
		}
	}

	protected := router.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	protected.GET("/sse/stream", cfg.SSEHandler.Stream)

	return router
}
