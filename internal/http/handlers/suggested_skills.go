package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/skillup-backend/internal/domain"
	"github.com/yungbote/skillup-backend/internal/http/response"
	"github.com/yungbote/skillup-backend/internal/pkg/logger"
	"github.com/yungbote/skillup-backend/internal/services"
)

type SuggestedSkillsHandler struct {
	log    *logger.Logger
	skills services.SkillsService
}

func NewSuggestedSkillsHandler(log *logger.Logger, skills services.SkillsService) *SuggestedSkillsHandler {
	return &SuggestedSkillsHandler{
		log:    log.With("handler", "SuggestedSkillsHandler"),
		skills: skills,
	}
}

// POST /api/suggested-skills
// body: { "jobTitle": "...", "courseName": "..." }
func (h *SuggestedSkillsHandler) CreateSuggestedSkills(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req skillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", errInvalidBody)
		return
	}
	row, err := h.skills.GenerateAndSave(requestDB(c), userID, req.JobTitle, req.CourseName)
	if err != nil {
		if isGenerationError(err) {
			h.log.Warn("CreateSuggestedSkills generation failed", "user_id", userID, "error", err)
			respondSkillsFailure(c, err)
			return
		}
		response.RespondServiceError(c, err, "save_suggested_skills_failed")
		return
	}
	response.RespondCreated(c, gin.H{"suggestedSkills": row})
}

// GET /api/suggested-skills
func (h *SuggestedSkillsHandler) ListSuggestedSkills(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	rows, err := h.skills.List(requestDB(c), userID)
	if err != nil {
		response.RespondServiceError(c, err, "load_suggested_skills_failed")
		return
	}
	if rows == nil {
		rows = []*types.SuggestedSkills{}
	}
	response.RespondOK(c, gin.H{"suggestedSkills": rows})
}
