// Package store persists users, projects and tasks. It knows nothing about
// ownership: callers pass the owner explicitly where a query is scoped.
package store

import (
	"context"
	"errors"

	"github.com/taskboard-dev/taskboard/internal/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByID(ctx context.Context, id string) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type ProjectStore interface {
	CreateProject(ctx context.Context, project *models.Project) error
	// FindProject returns the project only when it is owned by ownerID.
	FindProject(ctx context.Context, id, ownerID string) (*models.Project, error)
	ListProjectsByOwner(ctx context.Context, ownerID string) ([]models.Project, error)
	SaveProject(ctx context.Context, project *models.Project) error
	DeleteProject(ctx context.Context, id string) error
}

type TaskStore interface {
	CreateTask(ctx context.Context, task *models.Task) error
	FindTask(ctx context.Context, id string) (*models.Task, error)
	ListTasksByProjects(ctx context.Context, projectIDs []string) ([]models.Task, error)
	SaveTask(ctx context.Context, task *models.Task) error
	DeleteTask(ctx context.Context, id string) error
	// DeleteTasksByProject removes every task referencing projectID and
	// reports how many were removed.
	DeleteTasksByProject(ctx context.Context, projectID string) (int64, error)
}

type Store interface {
	UserStore
	ProjectStore
	TaskStore

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
