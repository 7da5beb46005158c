package audit

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type captureSink struct {
	events []Event
}

func (s *captureSink) Publish(_ context.Context, e Event) error {
	s.events = append(s.events, e)
	return nil
}

func TestWorkerDrainsIntoStoreAndSink(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	inbox := make(chan Event, 8)
	store := NewInMemoryStore()
	sink := &captureSink{}
	worker := NewWorker(store, sink, inbox, logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = worker.Run(ctx)
		close(done)
	}()

	pub := NewPublisher(inbox, logger)
	pub.Emit(Event{TurnID: "t1", Stage: "underwrite", Action: "evaluate eligibility", Decision: "approved"})
	pub.Emit(Event{TurnID: "t1", Stage: "sanction", Action: "generate letter"})

	require.Eventually(t, func() bool {
		events, err := store.List(context.Background())
		require.NoError(t, err)
		return len(events) == 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done

	events, err := store.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, "underwrite", events[0].Stage)
	require.False(t, events[0].Timestamp.IsZero())
	require.Len(t, sink.events, 2)
}

func TestPublisherDropsWhenInboxFull(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	inbox := make(chan Event, 1)
	pub := NewPublisher(inbox, logger)

	pub.Emit(Event{TurnID: "t1"})
	pub.Emit(Event{TurnID: "t2"}) // dropped, must not block

	require.Len(t, inbox, 1)
}
