package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/taskboard-dev/taskboard/db"
	"github.com/taskboard-dev/taskboard/internal/config"
	"github.com/taskboard-dev/taskboard/internal/realtime"
	"github.com/taskboard-dev/taskboard/internal/store"
)

func newTestStore(t *testing.T) *store.GormStore {
	t.Helper()

	gormDB, err := db.Connect(config.DBConfig{
		Driver: config.DriverSQLite,
		DSN:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))

	s := store.NewGormStore(gormDB)
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	return s
}

type published struct {
	userID string
	event  realtime.Event
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []published
}

func (n *recordingNotifier) Publish(userID string, event realtime.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, published{userID: userID, event: event})
}

func (n *recordingNotifier) types() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]string, 0, len(n.events))
	for _, p := range n.events {
		out = append(out, p.event.Type)
	}
	return out
}
