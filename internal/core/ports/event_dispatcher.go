package ports

import (
	"context"

	"github.com/hellostack/portal/internal/core/domain"
)

// Event is a unit of background work produced by request handling.
type Event struct {
	// Key picks the worker; events with the same key are handled in order.
	Key       string
	SignIn    *domain.SignInEvent
	BugReport *domain.BugReport
}

// EventDispatcher queues events for fire-and-forget handling.
type EventDispatcher interface {
	Enqueue(event Event)
}

// EventProcessor handles a dequeued event.
type EventProcessor interface {
	Process(ctx context.Context, event Event) error
}
