package services

import "github.com/taskboard-dev/taskboard/internal/realtime"

// Notifier receives change events after a successful write.
type Notifier interface {
	Publish(userID string, event realtime.Event)
}

type nopNotifier struct{}

func (nopNotifier) Publish(string, realtime.Event) {}

func notifierOrNop(n Notifier) Notifier {
	if n == nil {
		return nopNotifier{}
	}
	return n
}
