package store

import (
	"context"
	"fmt"
	"sync"

	"waitwise/internal/domain"
)

// memoryStore keeps all state in process memory.
// Events are stored by pointer so table occupancy changes are shared with readers
// holding the event lock.
type memoryStore struct {
	mu        sync.RWMutex
	events    map[string]*domain.Event
	waitlists map[string][]*domain.WaitlistEntry

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() Store {
	return &memoryStore{
		events:    make(map[string]*domain.Event),
		waitlists: make(map[string][]*domain.WaitlistEntry),
		locks:     make(map[string]*sync.Mutex),
	}
}

func (m *memoryStore) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	event, ok := m.events[id]
	if !ok {
		return nil, ErrNotFound
	}
	return event, nil
}

func (m *memoryStore) PutEvent(ctx context.Context, event *domain.Event) error {
	if event == nil || event.ID == "" {
		return fmt.Errorf("store.PutEvent: event id is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.events[event.ID] = event
	if _, ok := m.waitlists[event.ID]; !ok {
		m.waitlists[event.ID] = []*domain.WaitlistEntry{}
	}

	m.locksMu.Lock()
	if _, ok := m.locks[event.ID]; !ok {
		m.locks[event.ID] = &sync.Mutex{}
	}
	m.locksMu.Unlock()
	return nil
}

func (m *memoryStore) HasEvent(ctx context.Context, id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.events[id]
	return ok
}

func (m *memoryStore) Entries(ctx context.Context, eventID string) ([]*domain.WaitlistEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entries, ok := m.waitlists[eventID]
	if !ok {
		return nil, ErrNotFound
	}

	out := make([]*domain.WaitlistEntry, len(entries))
	copy(out, entries)
	return out, nil
}

func (m *memoryStore) AppendEntry(ctx context.Context, entry *domain.WaitlistEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries, ok := m.waitlists[entry.EventID]
	if !ok {
		return ErrNotFound
	}
	m.waitlists[entry.EventID] = append(entries, entry)
	return nil
}

// Lock only hands out mutexes registered by PutEvent. Unknown IDs get a no-op
// release; the caller's subsequent read reports the missing event.
func (m *memoryStore) Lock(eventID string) func() {
	m.locksMu.Lock()
	l, ok := m.locks[eventID]
	m.locksMu.Unlock()
	if !ok {
		return func() {}
	}

	l.Lock()
	return l.Unlock
}
