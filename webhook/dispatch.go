package webhook

import (
	"context"
	"fmt"
	"log"
)

// ErrUnknownEvent is returned for event types with no registered handler.
type ErrUnknownEvent struct {
	Type EventType
}

func (e ErrUnknownEvent) Error() string {
	return fmt.Sprintf("no handler for event type %q", e.Type)
}

// Dispatcher routes a verified event to the matching sync handler. It does
// no retrying of its own: a handler failure propagates to the HTTP response
// so the provider's delivery machinery re-attempts.
type Dispatcher struct {
	syncer *Syncer
	feed   *Feed
}

func NewDispatcher(syncer *Syncer, feed *Feed) *Dispatcher {
	return &Dispatcher{syncer: syncer, feed: feed}
}

// Dispatch runs the handler for the event type. Each invocation is a single
// store transaction; conflicting concurrent writes for the same clerk id are
// serialized by the database, not here.
func (d *Dispatcher) Dispatch(ctx context.Context, evt *Event) (SyncResult, error) {
	var (
		result SyncResult
		err    error
	)

	switch evt.Type {
	case EventUserCreated:
		result, err = d.syncer.SyncUser(ctx, evt.Data)
	case EventUserUpdated:
		result, err = d.syncer.UpdateUser(ctx, evt.Data)
	case EventUserDeleted:
		result, err = d.syncer.DeleteUser(ctx, evt.Data)
	default:
		return SyncResult{}, ErrUnknownEvent{Type: evt.Type}
	}

	if err != nil {
		return SyncResult{}, err
	}

	log.Printf("✅ Synced %s for clerk user %s (created=%v)", result.Type, result.ClerkID, result.Created)
	if d.feed != nil {
		d.feed.Broadcast(result)
	}
	return result, nil
}
