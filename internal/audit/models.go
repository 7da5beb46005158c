// Package audit captures the orchestration decisions made during each
// conversational turn. Events are advisory; the loan pipeline never fails
// because an audit write failed.
package audit

import (
	"context"
	"time"
)

// Event is one orchestration decision. Keep it transport-agnostic so stores
// and sinks can fan out.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	TurnID    string    `json:"turnId"`
	Stage     string    `json:"stage"`
	Action    string    `json:"action"`
	Decision  string    `json:"decision,omitempty"`
	Reason    string    `json:"reason,omitempty"`
}

// Store is append-only persistence for events.
type Store interface {
	Append(ctx context.Context, event Event) error
	List(ctx context.Context) ([]Event, error)
}

// Sink forwards events to an external system such as Kafka.
type Sink interface {
	Publish(ctx context.Context, event Event) error
}
