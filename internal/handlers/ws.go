package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskboard-dev/taskboard/internal/errs"
	"github.com/taskboard-dev/taskboard/internal/utils"
)

// WebSocket streams the caller's change events until either side closes.
func (h *Handler) WebSocket(c *gin.Context) {
	userID, err := utils.GetCurrentUserID(c)

	if err != nil {
		respondError(c, errs.ErrMissingToken, http.StatusForbidden, "")
		return
	}

	if err := h.hub.Serve(c.Writer, c.Request, userID); err != nil {
		h.log.Debug().Err(err).Str("user_id", userID).Msg("websocket session ended")
		_ = c.Error(err)
	}
}
