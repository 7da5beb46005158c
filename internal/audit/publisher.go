package audit

import (
	"log/slog"
	"time"
)

// Publisher hands events to the worker through a bounded channel. Emit never
// blocks the request path: when the channel is full the event is dropped and
// counted in the log.
type Publisher struct {
	events chan<- Event
	logger *slog.Logger
}

func NewPublisher(events chan<- Event, logger *slog.Logger) *Publisher {
	return &Publisher{events: events, logger: logger}
}

func (p *Publisher) Emit(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	select {
	case p.events <- event:
	default:
		p.logger.Warn("audit event dropped, inbox full",
			"turn_id", event.TurnID,
			"stage", event.Stage,
		)
	}
}
