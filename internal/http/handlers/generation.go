package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/skillup-backend/internal/modules/learning/suggest"
	pkgerrors "github.com/yungbote/skillup-backend/internal/pkg/errors"
	"github.com/yungbote/skillup-backend/internal/pkg/logger"
)

const (
	msgSkillsGenerated    = "Skills generated successfully"
	msgSkillsInvalidShape = "Invalid skills structure"
	msgSkillsParseFailed  = "Failed to parse skills"
	msgSkillsCallFailed   = "Failed to generate skills"
)

// GenerationHandler serves the two unauthenticated generation endpoints.
// Their bodies are flat, not the error envelope, and always carry the full
// array shape.
type GenerationHandler struct {
	log       *logger.Logger
	generator suggest.Generator
}

func NewGenerationHandler(log *logger.Logger, generator suggest.Generator) *GenerationHandler {
	return &GenerationHandler{
		log:       log.With("handler", "GenerationHandler"),
		generator: generator,
	}
}

type skillsBody struct {
	Message      string   `json:"message"`
	Skills       []string `json:"skills"`
	Descriptions []string `json:"descriptions"`
}

// POST /api/content-generation
// body: { "title": "..." }
func (h *GenerationHandler) ContentGeneration(c *gin.Context) {
	var req struct {
		Title string `json:"title"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, suggest.EmptyPathSuggestions())
		return
	}
	out, err := h.generator.SuggestPath(c.Request.Context(), req.Title)
	if err != nil {
		h.log.Warn("content generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, suggest.EmptyPathSuggestions())
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/generate-skills
// body: { "jobTitle": "...", "courseName": "..." }
func (h *GenerationHandler) GenerateSkills(c *gin.Context) {
	var req skillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, skillsBody{
			Message:      msgSkillsInvalidShape,
			Skills:       []string{},
			Descriptions: []string{},
		})
		return
	}
	out, err := h.generator.SuggestSkills(c.Request.Context(), req.JobTitle, req.CourseName)
	if err != nil {
		h.log.Warn("skill generation failed", "error", err)
		respondSkillsFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, skillsBody{
		Message:      msgSkillsGenerated,
		Skills:       out.Skills,
		Descriptions: out.Descriptions,
	})
}

type skillsRequest struct {
	JobTitle   string `json:"jobTitle"`
	CourseName string `json:"courseName"`
}

// respondSkillsFailure writes 400 when the model answered with the wrong
// shape and 500 when the call or the JSON parse failed.
func respondSkillsFailure(c *gin.Context, err error) {
	status, msg := http.StatusInternalServerError, msgSkillsCallFailed
	switch {
	case errors.Is(err, pkgerrors.ErrInvalidShape):
		status, msg = http.StatusBadRequest, msgSkillsInvalidShape
	case errors.Is(err, pkgerrors.ErrUnparseable):
		msg = msgSkillsParseFailed
	}
	c.JSON(status, skillsBody{
		Message:      msg,
		Skills:       []string{},
		Descriptions: []string{},
	})
}

func isGenerationError(err error) bool {
	return errors.Is(err, pkgerrors.ErrUpstream) ||
		errors.Is(err, pkgerrors.ErrUnparseable) ||
		errors.Is(err, pkgerrors.ErrInvalidShape)
}
