package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/hellostack/portal/internal/core/ports"
)

var errEmptyEvent = errors.New("event carries no payload")

// EventService handles background events pulled off the dispatcher.
type EventService struct {
	log zerolog.Logger
}

func NewEventService(log zerolog.Logger) *EventService {
	return &EventService{log: log}
}

// Process records a single event.
func (s *EventService) Process(_ context.Context, ev ports.Event) error {
	switch {
	case ev.SignIn != nil:
		s.log.Info().
			Str("user_id", ev.SignIn.IdentityID).
			Bool("is_new_user", ev.SignIn.IsNewUser).
			Str("provider", ev.SignIn.Provider).
			Msg("user signed in")
	case ev.BugReport != nil:
		s.log.Debug().
			Str("title", ev.BugReport.Title).
			Msg("bug report queued for follow-up")
	default:
		return errEmptyEvent
	}
	return nil
}
