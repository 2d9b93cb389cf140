package store

import (
	"context"
	"errors"

	"waitwise/internal/domain"
)

// ErrNotFound is returned when an event is not registered
var ErrNotFound = errors.New("store: not found")

// Store defines the contract for event and waitlist state.
// Callers that read and then mutate an event's waitlist must hold Lock(eventID)
// for the duration of the sequence.
type Store interface {
	GetEvent(ctx context.Context, id string) (*domain.Event, error)
	PutEvent(ctx context.Context, event *domain.Event) error
	HasEvent(ctx context.Context, id string) bool

	// Entries returns the event's waitlist in insertion order.
	// The pointers are live: mutating an entry mutates stored state.
	Entries(ctx context.Context, eventID string) ([]*domain.WaitlistEntry, error)
	AppendEntry(ctx context.Context, entry *domain.WaitlistEntry) error

	// Lock acquires the per-event mutex and returns its release func.
	// The mutex exists only once the event is stored.
	Lock(eventID string) func()
}
