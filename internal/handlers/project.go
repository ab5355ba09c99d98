package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskboard-dev/taskboard/internal/errs"
	"github.com/taskboard-dev/taskboard/internal/services"
	"github.com/taskboard-dev/taskboard/internal/types"
	"github.com/taskboard-dev/taskboard/internal/utils"
)

// Any owner field sent by the client is dropped here: the owner is always
// the caller.
type CreateProjectRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
}

// UpdateProjectRequest tells absent fields from nulls: a null clears the
// stored value.
type UpdateProjectRequest struct {
	Name        types.Nullable[string] `json:"name"`
	Description types.Nullable[string] `json:"description"`
	StartDate   types.Nullable[string] `json:"startDate"`
	EndDate     types.Nullable[string] `json:"endDate"`
}

func (h *Handler) CreateProject(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondError(ctx, errs.ErrMissingToken, http.StatusForbidden, "")
		return
	}

	var body CreateProjectRequest

	if err := bindJSON(ctx, &body); err != nil {
		respondError(ctx, err, http.StatusBadRequest, "Invalid request")
		return
	}

	startDate, err := utils.ParseDate("startDate", body.StartDate)
	if err != nil {
		respondError(ctx, err, http.StatusBadRequest, "Invalid request")
		return
	}

	endDate, err := utils.ParseDate("endDate", body.EndDate)
	if err != nil {
		respondError(ctx, err, http.StatusBadRequest, "Invalid request")
		return
	}

	project, err := h.projects.Create(ctx.Request.Context(), userID, services.ProjectInput{
		Name:        body.Name,
		Description: body.Description,
		StartDate:   startDate,
		EndDate:     endDate,
	})

	if err != nil {
		respondError(ctx, err, http.StatusBadRequest, "Failed to create project")
		return
	}

	ctx.JSON(http.StatusCreated, project)
}

func (h *Handler) ListProjects(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondError(ctx, errs.ErrMissingToken, http.StatusForbidden, "")
		return
	}

	projects, err := h.projects.List(ctx.Request.Context(), userID)

	if err != nil {
		respondError(ctx, err, http.StatusInternalServerError, "Failed to retrieve projects")
		return
	}

	ctx.JSON(http.StatusOK, projects)
}

func (h *Handler) UpdateProject(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondError(ctx, errs.ErrMissingToken, http.StatusForbidden, "")
		return
	}

	projectID, err := utils.GetIDParam(ctx)

	if err != nil {
		respondError(ctx, err, http.StatusBadRequest, "Invalid request")
		return
	}

	var body UpdateProjectRequest

	if err := bindJSON(ctx, &body); err != nil {
		respondError(ctx, err, http.StatusBadRequest, "Invalid request")
		return
	}

	startDate, err := utils.ParseNullableDate("startDate", body.StartDate)
	if err != nil {
		respondError(ctx, err, http.StatusBadRequest, "Invalid request")
		return
	}

	endDate, err := utils.ParseNullableDate("endDate", body.EndDate)
	if err != nil {
		respondError(ctx, err, http.StatusBadRequest, "Invalid request")
		return
	}

	project, err := h.projects.Update(ctx.Request.Context(), userID, projectID, services.ProjectPatch{
		Name:        body.Name,
		Description: body.Description,
		StartDate:   startDate,
		EndDate:     endDate,
	})

	if err != nil {
		respondError(ctx, err, http.StatusBadRequest, "Failed to update project")
		return
	}

	ctx.JSON(http.StatusOK, project)
}

func (h *Handler) DeleteProject(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondError(ctx, errs.ErrMissingToken, http.StatusForbidden, "")
		return
	}

	projectID, err := utils.GetIDParam(ctx)

	if err != nil {
		respondError(ctx, err, http.StatusBadRequest, "Invalid request")
		return
	}

	removed, err := h.projects.Delete(ctx.Request.Context(), userID, projectID)

	if err != nil {
		respondError(ctx, err, http.StatusBadRequest, "Failed to delete project")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":      "Project and its tasks deleted",
		"deletedTasks": removed,
	})
}
