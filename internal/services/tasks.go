package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/taskboard-dev/taskboard/internal/errs"
	"github.com/taskboard-dev/taskboard/internal/models"
	"github.com/taskboard-dev/taskboard/internal/realtime"
	"github.com/taskboard-dev/taskboard/internal/store"
	"github.com/taskboard-dev/taskboard/internal/types"
)

type TaskInput struct {
	ProjectID   string
	Title       string
	Description string
	Status      string
	Priority    *int
}

// TaskPatch holds the fields to change. Unset fields are kept; a null
// clears the field, except Title which cannot be cleared. The project a task
// belongs to cannot be changed.
type TaskPatch struct {
	Title       types.Nullable[string]
	Description types.Nullable[string]
	Status      types.Nullable[string]
	Priority    types.Nullable[int]
}

type taskStore interface {
	store.ProjectStore
	store.TaskStore
}

// TaskService resolves task ownership through the task's project.
type TaskService struct {
	store    taskStore
	notifier Notifier
	// enforceProjectOwnership makes Create check the project's owner too.
	enforceProjectOwnership bool
}

func NewTaskService(s store.Store, notifier Notifier, enforceProjectOwnership bool) *TaskService {
	return &TaskService{
		store:                   s,
		notifier:                notifierOrNop(notifier),
		enforceProjectOwnership: enforceProjectOwnership,
	}
}

// Create stores a task under in.ProjectID. Unless ownership enforcement is
// on, the project is neither looked up nor checked.
func (s *TaskService) Create(ctx context.Context, userID string, in TaskInput) (*models.Task, error) {
	title := strings.TrimSpace(in.Title)
	projectID := strings.TrimSpace(in.ProjectID)

	if title == "" {
		return nil, validationError("title is required")
	}

	if projectID == "" {
		return nil, validationError("projectId is required")
	}

	if s.enforceProjectOwnership {
		if _, err := s.store.FindProject(ctx, projectID, userID); err != nil {
			return nil, scopedLookupError(err)
		}
	}

	task := &models.Task{
		BaseModel:   models.BaseModel{ID: uuid.NewString()},
		ProjectID:   projectID,
		Title:       title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
	}

	if err := s.store.CreateTask(ctx, task); err != nil {
		return nil, storeError(err)
	}

	s.notifier.Publish(userID, realtime.Event{Type: realtime.TaskCreated, ProjectID: projectID, TaskID: task.ID})

	return task, nil
}

// List returns the tasks of every project owned by userID, each carrying a
// summary of its project.
func (s *TaskService) List(ctx context.Context, userID string) ([]models.Task, error) {
	projects, err := s.store.ListProjectsByOwner(ctx, userID)

	if err != nil {
		return nil, storeError(err)
	}

	summaries := make(map[string]*models.ProjectSummary, len(projects))
	ids := make([]string, 0, len(projects))

	for _, project := range projects {
		summaries[project.ID] = &models.ProjectSummary{ID: project.ID, Name: project.Name}
		ids = append(ids, project.ID)
	}

	tasks, err := s.store.ListTasksByProjects(ctx, ids)

	if err != nil {
		return nil, storeError(err)
	}

	owned := make([]models.Task, 0, len(tasks))

	for _, task := range tasks {
		summary, ok := summaries[task.ProjectID]
		if !ok {
			continue
		}
		task.Project = summary
		owned = append(owned, task)
	}

	return owned, nil
}

// resolve loads a task and its project, failing with
// ErrNotFoundOrUnauthorized unless the project belongs to userID.
func (s *TaskService) resolve(ctx context.Context, userID, id string) (*models.Task, *models.Project, error) {
	task, err := s.store.FindTask(ctx, id)

	if err != nil {
		return nil, nil, scopedLookupError(err)
	}

	project, err := s.store.FindProject(ctx, task.ProjectID, userID)

	if err != nil {
		return nil, nil, scopedLookupError(err)
	}

	return task, project, nil
}

func (s *TaskService) Update(ctx context.Context, userID, id string, patch TaskPatch) (*models.Task, error) {
	if patch.Title.Set && strings.TrimSpace(patch.Title.Value) == "" {
		return nil, validationError("title cannot be empty")
	}

	task, project, err := s.resolve(ctx, userID, id)

	if err != nil {
		return nil, err
	}

	if patch.Title.Set {
		task.Title = strings.TrimSpace(patch.Title.Value)
	}
	if patch.Description.Set {
		task.Description = patch.Description.Value
	}
	if patch.Status.Set {
		task.Status = patch.Status.Value
	}
	if patch.Priority.Set {
		task.Priority = patch.Priority.Ptr()
	}

	if err := s.store.SaveTask(ctx, task); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, errs.ErrNotFoundOrUnauthorized
		}
		return nil, storeError(err)
	}

	task.Project = &models.ProjectSummary{ID: project.ID, Name: project.Name}

	s.notifier.Publish(userID, realtime.Event{Type: realtime.TaskUpdated, ProjectID: task.ProjectID, TaskID: task.ID})

	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, userID, id string) error {
	task, _, err := s.resolve(ctx, userID, id)

	if err != nil {
		return err
	}

	if err := s.store.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return errs.ErrNotFoundOrUnauthorized
		}
		return storeError(err)
	}

	s.notifier.Publish(userID, realtime.Event{Type: realtime.TaskDeleted, ProjectID: task.ProjectID, TaskID: id})

	return nil
}
