package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/skillup-backend/internal/http/response"
	"github.com/yungbote/skillup-backend/internal/pkg/ctxutil"
	"github.com/yungbote/skillup-backend/internal/pkg/dbctx"
)

func requestDB(c *gin.Context) dbctx.Context {
	return dbctx.Context{Ctx: c.Request.Context()}
}

// requireUser returns the authenticated subject or writes a 401.
func requireUser(c *gin.Context) (string, bool) {
	uid := ctxutil.UserID(c.Request.Context())
	if uid == "" {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return "", false
	}
	return uid, true
}

// pathID parses the :id param or writes a 400 with code.
func pathID(c *gin.Context, code string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil || id == uuid.Nil {
		response.RespondError(c, http.StatusBadRequest, code, errInvalidID)
		return uuid.Nil, false
	}
	return id, true
}
