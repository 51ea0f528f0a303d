package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/skillup-backend/internal/domain"
	"github.com/yungbote/skillup-backend/internal/http/response"
	"github.com/yungbote/skillup-backend/internal/pkg/logger"
	"github.com/yungbote/skillup-backend/internal/services"
)

type GoalHandler struct {
	log   *logger.Logger
	goals services.GoalService
}

func NewGoalHandler(log *logger.Logger, goals services.GoalService) *GoalHandler {
	return &GoalHandler{
		log:   log.With("handler", "GoalHandler"),
		goals: goals,
	}
}

// GET /api/learning-paths/:id/goals
func (h *GoalHandler) ListGoals(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "invalid_learning_path_id")
	if !ok {
		return
	}
	goals, err := h.goals.ListGoals(requestDB(c), userID, id)
	if err != nil {
		response.RespondServiceError(c, err, "load_goals_failed")
		return
	}
	if goals == nil {
		goals = []*types.Goal{}
	}
	response.RespondOK(c, gin.H{"goals": goals})
}

// POST /api/learning-paths/:id/goals
// body: { "title": "..." }
func (h *GoalHandler) AddGoal(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "invalid_learning_path_id")
	if !ok {
		return
	}
	var req struct {
		Title string `json:"title"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", errInvalidBody)
		return
	}
	goal, err := h.goals.AddGoal(requestDB(c), userID, id, req.Title)
	if err != nil {
		response.RespondServiceError(c, err, "add_goal_failed")
		return
	}
	response.RespondCreated(c, gin.H{"goal": goal})
}

// PATCH /api/goals/:id
// body: { "completed": true }
func (h *GoalHandler) SetCompletion(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "invalid_goal_id")
	if !ok {
		return
	}
	var req struct {
		Completed *bool `json:"completed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Completed == nil {
		response.RespondError(c, http.StatusBadRequest, "missing_completed", errInvalidBody)
		return
	}
	goal, err := h.goals.SetCompletion(requestDB(c), userID, id, *req.Completed)
	if err != nil {
		response.RespondServiceError(c, err, "update_goal_failed")
		return
	}
	response.RespondOK(c, gin.H{"goal": goal})
}

// DELETE /api/goals/:id
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "invalid_goal_id")
	if !ok {
		return
	}
	if err := h.goals.DeleteGoal(requestDB(c), userID, id); err != nil {
		response.RespondServiceError(c, err, "delete_goal_failed")
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
