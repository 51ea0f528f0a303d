package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/skillup-backend/internal/http/response"
	"github.com/yungbote/skillup-backend/internal/pkg/logger"
	"github.com/yungbote/skillup-backend/internal/services"
)

type DashboardHandler struct {
	log       *logger.Logger
	dashboard services.DashboardService
}

func NewDashboardHandler(log *logger.Logger, dashboard services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		log:       log.With("handler", "DashboardHandler"),
		dashboard: dashboard,
	}
}

// GET /api/dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	d, err := h.dashboard.Get(requestDB(c), userID)
	if err != nil {
		h.log.Error("GetDashboard failed", "user_id", userID, "error", err)
		response.RespondServiceError(c, err, "load_dashboard_failed")
		return
	}
	response.RespondOK(c, d)
}
