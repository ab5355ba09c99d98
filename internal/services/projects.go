package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/taskboard-dev/taskboard/internal/errs"
	"github.com/taskboard-dev/taskboard/internal/models"
	"github.com/taskboard-dev/taskboard/internal/realtime"
	"github.com/taskboard-dev/taskboard/internal/store"
	"github.com/taskboard-dev/taskboard/internal/types"
)

type ProjectInput struct {
	Name        string
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
}

// ProjectPatch holds the fields to change. Unset fields are kept; a null
// clears the field, except Name which cannot be cleared.
type ProjectPatch struct {
	Name        types.Nullable[string]
	Description types.Nullable[string]
	StartDate   types.Nullable[time.Time]
	EndDate     types.Nullable[time.Time]
}

// ProjectService scopes every project operation to its owner.
type ProjectService struct {
	projects store.ProjectStore
	cascade  *Cascade
	notifier Notifier
}

func NewProjectService(s store.Store, notifier Notifier) *ProjectService {
	return &ProjectService{
		projects: s,
		cascade:  NewCascade(s),
		notifier: notifierOrNop(notifier),
	}
}

func (s *ProjectService) Create(ctx context.Context, ownerID string, in ProjectInput) (*models.Project, error) {
	name := strings.TrimSpace(in.Name)

	if name == "" {
		return nil, validationError("name is required")
	}

	project := &models.Project{
		BaseModel:   models.BaseModel{ID: uuid.NewString()},
		OwnerID:     ownerID,
		Name:        name,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
	}

	if err := s.projects.CreateProject(ctx, project); err != nil {
		return nil, storeError(err)
	}

	s.notifier.Publish(ownerID, realtime.Event{Type: realtime.ProjectCreated, ProjectID: project.ID})

	return project, nil
}

func (s *ProjectService) List(ctx context.Context, ownerID string) ([]models.Project, error) {
	projects, err := s.projects.ListProjectsByOwner(ctx, ownerID)

	if err != nil {
		return nil, storeError(err)
	}

	return projects, nil
}

func (s *ProjectService) Update(ctx context.Context, ownerID, id string, patch ProjectPatch) (*models.Project, error) {
	if patch.Name.Set && strings.TrimSpace(patch.Name.Value) == "" {
		return nil, validationError("name cannot be empty")
	}

	project, err := s.projects.FindProject(ctx, id, ownerID)

	if err != nil {
		return nil, scopedLookupError(err)
	}

	if patch.Name.Set {
		project.Name = strings.TrimSpace(patch.Name.Value)
	}
	if patch.Description.Set {
		project.Description = patch.Description.Value
	}
	if patch.StartDate.Set {
		project.StartDate = patch.StartDate.Ptr()
	}
	if patch.EndDate.Set {
		project.EndDate = patch.EndDate.Ptr()
	}

	if err := s.projects.SaveProject(ctx, project); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, errs.ErrNotFoundOrUnauthorized
		}
		return nil, storeError(err)
	}

	s.notifier.Publish(ownerID, realtime.Event{Type: realtime.ProjectUpdated, ProjectID: project.ID})

	return project, nil
}

// Delete removes an owned project and its tasks, returning how many tasks
// went with it.
func (s *ProjectService) Delete(ctx context.Context, ownerID, id string) (int64, error) {
	if _, err := s.projects.FindProject(ctx, id, ownerID); err != nil {
		return 0, scopedLookupError(err)
	}

	removed, err := s.cascade.DeleteProject(ctx, id)

	if err != nil {
		return removed, err
	}

	s.notifier.Publish(ownerID, realtime.Event{Type: realtime.ProjectDeleted, ProjectID: id})

	return removed, nil
}
