package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/skillup-backend/internal/http/response"
	"github.com/yungbote/skillup-backend/internal/pkg/logger"
	"github.com/yungbote/skillup-backend/internal/services"
)

type ProgressHandler struct {
	log      *logger.Logger
	progress services.ProgressService
}

func NewProgressHandler(log *logger.Logger, progress services.ProgressService) *ProgressHandler {
	return &ProgressHandler{
		log:      log.With("handler", "ProgressHandler"),
		progress: progress,
	}
}

// GET /api/progress
// Recomputes and stores progress for every path the caller owns.
func (h *ProgressHandler) Tracker(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	entries, err := h.progress.Tracker(requestDB(c), userID)
	if err != nil {
		h.log.Error("Tracker failed", "user_id", userID, "error", err)
		response.RespondServiceError(c, err, "load_progress_failed")
		return
	}
	if entries == nil {
		entries = []*services.TrackerEntry{}
	}
	response.RespondOK(c, gin.H{"progress": entries})
}
