package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskboard-dev/taskboard/internal/errs"
	"github.com/taskboard-dev/taskboard/internal/types"
	"github.com/taskboard-dev/taskboard/internal/utils"
)

func (h *Handler) CurrentUser(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondError(ctx, errs.ErrMissingToken, http.StatusForbidden, "")
		return
	}

	user, err := h.accounts.CurrentUser(ctx.Request.Context(), userID)

	if err != nil {
		respondError(ctx, err, http.StatusInternalServerError, "Failed to retrieve user")
		return
	}

	ctx.JSON(http.StatusOK, types.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
}
