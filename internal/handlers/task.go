package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskboard-dev/taskboard/internal/errs"
	"github.com/taskboard-dev/taskboard/internal/services"
	"github.com/taskboard-dev/taskboard/internal/types"
	"github.com/taskboard-dev/taskboard/internal/utils"
)

type CreateTaskRequest struct {
	ProjectID   string `json:"projectId" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    *int   `json:"priority"`
}

// UpdateTaskRequest has no projectId: a task cannot move between projects.
// A null clears the stored value.
type UpdateTaskRequest struct {
	Title       types.Nullable[string] `json:"title"`
	Description types.Nullable[string] `json:"description"`
	Status      types.Nullable[string] `json:"status"`
	Priority    types.Nullable[int]    `json:"priority"`
}

func (h *Handler) CreateTask(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondError(ctx, errs.ErrMissingToken, http.StatusForbidden, "")
		return
	}

	var body CreateTaskRequest

	if err := bindJSON(ctx, &body); err != nil {
		respondError(ctx, err, http.StatusBadRequest, "Invalid request")
		return
	}

	task, err := h.tasks.Create(ctx.Request.Context(), userID, services.TaskInput{
		ProjectID:   body.ProjectID,
		Title:       body.Title,
		Description: body.Description,
		Status:      body.Status,
		Priority:    body.Priority,
	})

	if err != nil {
		respondError(ctx, err, http.StatusBadRequest, "Failed to create task")
		return
	}

	ctx.JSON(http.StatusCreated, task)
}

func (h *Handler) ListTasks(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondError(ctx, errs.ErrMissingToken, http.StatusForbidden, "")
		return
	}

	tasks, err := h.tasks.List(ctx.Request.Context(), userID)

	if err != nil {
		respondError(ctx, err, http.StatusInternalServerError, "Failed to retrieve tasks")
		return
	}

	ctx.JSON(http.StatusOK, tasks)
}

func (h *Handler) UpdateTask(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondError(ctx, errs.ErrMissingToken, http.StatusForbidden, "")
		return
	}

	taskID, err := utils.GetIDParam(ctx)

	if err != nil {
		respondError(ctx, err, http.StatusBadRequest, "Invalid request")
		return
	}

	var body UpdateTaskRequest

	if err := bindJSON(ctx, &body); err != nil {
		respondError(ctx, err, http.StatusBadRequest, "Invalid request")
		return
	}

	task, err := h.tasks.Update(ctx.Request.Context(), userID, taskID, services.TaskPatch{
		Title:       body.Title,
		Description: body.Description,
		Status:      body.Status,
		Priority:    body.Priority,
	})

	if err != nil {
		respondError(ctx, err, http.StatusBadRequest, "Failed to update task")
		return
	}

	ctx.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondError(ctx, errs.ErrMissingToken, http.StatusForbidden, "")
		return
	}

	taskID, err := utils.GetIDParam(ctx)

	if err != nil {
		respondError(ctx, err, http.StatusBadRequest, "Invalid request")
		return
	}

	if err := h.tasks.Delete(ctx.Request.Context(), userID, taskID); err != nil {
		respondError(ctx, err, http.StatusBadRequest, "Failed to delete task")
		return
	}

	ctx.JSON(http.StatusOK, types.MessageResponse{Message: "Task deleted"})
}
