package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/skillup-backend/internal/http/response"
	"github.com/yungbote/skillup-backend/internal/services"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GET /api/me
func (uh *UserHandler) GetMe(c *gin.Context) {
	me, err := uh.userService.GetMe(requestDB(c))
	if err != nil {
		response.RespondServiceError(c, err, "load_user_failed")
		return
	}
	response.RespondOK(c, gin.H{"me": me})
}

// PUT /api/me
// body: { "role": "free" | "premium" }
func (uh *UserHandler) PutMe(c *gin.Context) {
	var req struct {
		Role string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", errInvalidBody)
		return
	}
	me, err := uh.userService.SetRole(requestDB(c), req.Role)
	if err != nil {
		response.RespondServiceError(c, err, "save_user_failed")
		return
	}
	response.RespondOK(c, gin.H{"me": me})
}
