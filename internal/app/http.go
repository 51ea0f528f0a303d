package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/skillup-backend/internal/data/db"
	apphttp "github.com/yungbote/skillup-backend/internal/http"
	httpH "github.com/yungbote/skillup-backend/internal/http/handlers"
	httpMW "github.com/yungbote/skillup-backend/internal/http/middleware"
	"github.com/yungbote/skillup-backend/internal/pkg/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health          *httpH.HealthHandler
	Generation      *httpH.GenerationHandler
	User            *httpH.UserHandler
	LearningPath    *httpH.LearningPathHandler
	Goal            *httpH.GoalHandler
	Progress        *httpH.ProgressHandler
	SuggestedSkills *httpH.SuggestedSkillsHandler
	Dashboard       *httpH.DashboardHandler
}

func wireHandlers(log *logger.Logger, dbs *db.Service, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:          httpH.NewHealthHandler(dbs),
		Generation:      httpH.NewGenerationHandler(log, services.Generator),
		User:            httpH.NewUserHandler(services.User),
		LearningPath:    httpH.NewLearningPathHandler(log, services.LearningPath, services.Goal, services.Progress),
		Goal:            httpH.NewGoalHandler(log, services.Goal),
		Progress:        httpH.NewProgressHandler(log, services.Progress),
		SuggestedSkills: httpH.NewSuggestedSkillsHandler(log, services.Skills),
		Dashboard:       httpH.NewDashboardHandler(log, services.Dashboard),
	}
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, services.Auth),
	}
}

func wireRouter(log *logger.Logger, cfg Config, handlers Handlers, middleware Middleware) *gin.Engine {
	serviceName := ""
	if cfg.Otel.Enabled {
		serviceName = cfg.Otel.ServiceName
	}
	return apphttp.NewRouter(apphttp.RouterConfig{
		Log:                    log,
		ServiceName:            serviceName,
		AllowOrigins:           cfg.AllowOrigins(),
		AuthMiddleware:         middleware.Auth,
		HealthHandler:          handlers.Health,
		GenerationHandler:      handlers.Generation,
		UserHandler:            handlers.User,
		LearningPathHandler:    handlers.LearningPath,
		GoalHandler:            handlers.Goal,
		ProgressHandler:        handlers.Progress,
		SuggestedSkillsHandler: handlers.SuggestedSkills,
		DashboardHandler:       handlers.Dashboard,
	})
}
