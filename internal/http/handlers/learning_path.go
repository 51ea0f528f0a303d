package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/skillup-backend/internal/http/response"
	"github.com/yungbote/skillup-backend/internal/pkg/logger"
	"github.com/yungbote/skillup-backend/internal/services"
)

type LearningPathHandler struct {
	log      *logger.Logger
	paths    services.LearningPathService
	goals    services.GoalService
	progress services.ProgressService
}

func NewLearningPathHandler(
	log *logger.Logger,
	paths services.LearningPathService,
	goals services.GoalService,
	progress services.ProgressService,
) *LearningPathHandler {
	return &LearningPathHandler{
		log:      log.With("handler", "LearningPathHandler"),
		paths:    paths,
		goals:    goals,
		progress: progress,
	}
}

// GET /api/learning-paths
func (h *LearningPathHandler) ListLearningPaths(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	rows, err := h.paths.ListPathsWithGoals(requestDB(c), userID)
	if err != nil {
		h.log.Error("ListLearningPaths failed", "user_id", userID, "error", err)
		response.RespondServiceError(c, err, "load_learning_paths_failed")
		return
	}
	if rows == nil {
		rows = []*services.LearningPathWithGoals{}
	}
	response.RespondOK(c, gin.H{"learningPaths": rows})
}

// POST /api/learning-paths
// body: { "title": "...", "description": "..." }
func (h *LearningPathHandler) CreateLearningPath(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", errInvalidBody)
		return
	}
	res, err := h.paths.CreatePath(requestDB(c), userID, req.Title, req.Description)
	if err != nil {
		response.RespondServiceError(c, err, "create_learning_path_failed")
		return
	}
	response.RespondCreated(c, res)
}

// GET /api/learning-paths/:id
func (h *LearningPathHandler) GetLearningPath(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "invalid_learning_path_id")
	if !ok {
		return
	}
	dbc := requestDB(c)
	path, err := h.paths.GetPath(dbc, userID, id)
	if err != nil {
		response.RespondServiceError(c, err, "load_learning_path_failed")
		return
	}
	goals, err := h.goals.ListGoals(dbc, userID, id)
	if err != nil {
		h.log.Error("GetLearningPath failed (load goals)", "learning_path_id", id, "error", err)
		response.RespondServiceError(c, err, "load_goals_failed")
		return
	}
	response.RespondOK(c, services.LearningPathWithGoals{LearningPath: path, Goals: goals})
}

// DELETE /api/learning-paths/:id
func (h *LearningPathHandler) DeleteLearningPath(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "invalid_learning_path_id")
	if !ok {
		return
	}
	if err := h.paths.DeletePath(requestDB(c), userID, id); err != nil {
		response.RespondServiceError(c, err, "delete_learning_path_failed")
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// POST /api/learning-paths/:id/progress
func (h *LearningPathHandler) RecomputeProgress(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "invalid_learning_path_id")
	if !ok {
		return
	}
	res, err := h.progress.Recompute(requestDB(c), userID, id)
	if err != nil {
		response.RespondServiceError(c, err, "recompute_progress_failed")
		return
	}
	response.RespondOK(c, res)
}
