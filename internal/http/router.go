package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/skillup-backend/internal/http/handlers"
	httpMW "github.com/yungbote/skillup-backend/internal/http/middleware"
	"github.com/yungbote/skillup-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	ServiceName    string
	AllowOrigins   []string
	AuthMiddleware *httpMW.AuthMiddleware

	HealthHandler          *httpH.HealthHandler
	GenerationHandler      *httpH.GenerationHandler
	UserHandler            *httpH.UserHandler
	LearningPathHandler    *httpH.LearningPathHandler
	GoalHandler            *httpH.GoalHandler
	ProgressHandler        *httpH.ProgressHandler
	SuggestedSkillsHandler *httpH.SuggestedSkillsHandler
	DashboardHandler       *httpH.DashboardHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.AllowOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		r.GET("/readyz", cfg.HealthHandler.Ready)
	}

	api := r.Group("/api")
	{
		// Generation (public)
		if cfg.GenerationHandler != nil {
			api.POST("/content-generation", cfg.GenerationHandler.ContentGeneration)
			api.POST("/generate-skills", cfg.GenerationHandler.GenerateSkills)
		}
	}

	protected := api.Group("/")
	{
		// Middleware
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		// User (Me)
		if cfg.UserHandler != nil {
			protected.GET("/me", cfg.UserHandler.GetMe)
			protected.PUT("/me", cfg.UserHandler.PutMe)
		}

		// Learning paths
		if cfg.LearningPathHandler != nil {
			protected.GET("/learning-paths", cfg.LearningPathHandler.ListLearningPaths)
			protected.POST("/learning-paths", cfg.LearningPathHandler.CreateLearningPath)
			protected.GET("/learning-paths/:id", cfg.LearningPathHandler.GetLearningPath)
			protected.DELETE("/learning-paths/:id", cfg.LearningPathHandler.DeleteLearningPath)
			protected.POST("/learning-paths/:id/progress", cfg.LearningPathHandler.RecomputeProgress)
		}

		// Goals
		if cfg.GoalHandler != nil {
			protected.GET("/learning-paths/:id/goals", cfg.GoalHandler.ListGoals)
			protected.POST("/learning-paths/:id/goals", cfg.GoalHandler.AddGoal)
			protected.PATCH("/goals/:id", cfg.GoalHandler.SetCompletion)
			protected.DELETE("/goals/:id", cfg.GoalHandler.DeleteGoal)
		}

		// Progress tracker
		if cfg.ProgressHandler != nil {
			protected.GET("/progress", cfg.ProgressHandler.Tracker)
		}

		// Suggested skills
		if cfg.SuggestedSkillsHandler != nil {
			protected.POST("/suggested-skills", cfg.SuggestedSkillsHandler.CreateSuggestedSkills)
			protected.GET("/suggested-skills", cfg.SuggestedSkillsHandler.ListSuggestedSkills)
		}

		// Dashboard
		if cfg.DashboardHandler != nil {
			protected.GET("/dashboard", cfg.DashboardHandler.GetDashboard)
		}
	}

	return r
}
