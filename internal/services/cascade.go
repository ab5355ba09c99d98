package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskboard-dev/taskboard/internal/errs"
	"github.com/taskboard-dev/taskboard/internal/store"
)

type cascadeStore interface {
	DeleteTasksByProject(ctx context.Context, projectID string) (int64, error)
	DeleteProject(ctx context.Context, id string) error
}

// Cascade removes a project together with the tasks that reference it.
// Tasks go first; if that fails the project is left in place. The two steps
// are not atomic, so a crash in between leaves an empty project behind.
type Cascade struct {
	store cascadeStore
}

func NewCascade(s cascadeStore) *Cascade {
	return &Cascade{store: s}
}

// DeleteProject reports how many tasks were removed. Ownership must already
// have been checked by the caller.
func (c *Cascade) DeleteProject(ctx context.Context, projectID string) (int64, error) {
	removed, err := c.store.DeleteTasksByProject(ctx, projectID)

	if err != nil {
		return 0, fmt.Errorf("delete tasks of project %s: %w", projectID, storeError(err))
	}

	if err := c.store.DeleteProject(ctx, projectID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return removed, errs.ErrNotFoundOrUnauthorized
		}
		return removed, fmt.Errorf("delete project %s: %w", projectID, storeError(err))
	}

	return removed, nil
}
