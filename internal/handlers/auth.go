package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskboard-dev/taskboard/internal/services"
	"github.com/taskboard-dev/taskboard/internal/types"
)

// RegisterRequest carries no binding rules: the account service checks the
// password before anything else.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Register(ctx *gin.Context) {
	var body RegisterRequest

	if err := bindJSON(ctx, &body); err != nil {
		respondError(ctx, err, http.StatusBadRequest, "Invalid request")
		return
	}

	user, err := h.accounts.Register(ctx.Request.Context(), services.RegisterInput{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
	})

	if err != nil {
		respondError(ctx, err, http.StatusBadRequest, "Failed to register user")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user": types.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	})
}

func (h *Handler) Login(ctx *gin.Context) {
	var body LoginRequest

	if err := bindJSON(ctx, &body); err != nil {
		respondError(ctx, err, http.StatusBadRequest, "Invalid request")
		return
	}

	token, err := h.accounts.Login(ctx.Request.Context(), body.Email, body.Password)

	if err != nil {
		respondError(ctx, err, http.StatusInternalServerError, "Internal server error")
		return
	}

	ctx.JSON(http.StatusOK, types.TokenResponse{Token: token})
}
