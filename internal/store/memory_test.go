package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"waitwise/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutEventRegistersWaitlist(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.PutEvent(ctx, &domain.Event{ID: "e1", EventType: domain.EventTypeOutdoor}))
	assert.True(t, s.HasEvent(ctx, "e1"))

	entries, err := s.Entries(ctx, "e1")
	require.NoError(t, err)
	assert.Empty(t, entries)

	got, err := s.GetEvent(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "e1", got.ID)
}

func TestPutEventRequiresID(t *testing.T) {
	assert.Error(t, NewMemoryStore().PutEvent(context.Background(), &domain.Event{}))
}

func TestMissingEvent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.GetEvent(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Entries(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.AppendEntry(ctx, &domain.WaitlistEntry{ID: "x", EventID: "nope"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, s.HasEvent(ctx, "nope"))
}

func TestEntriesKeepInsertionOrderAndShareState(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.PutEvent(ctx, &domain.Event{ID: "e1"}))

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, s.AppendEntry(ctx, &domain.WaitlistEntry{ID: id, EventID: "e1", Status: domain.EntryStatusQueued}))
	}

	entries, err := s.Entries(ctx, "e1")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "a", entries[0].ID)
	assert.Equal(t, "c", entries[2].ID)

	entries[1].Status = domain.EntryStatusSeated

	again, err := s.Entries(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, domain.EntryStatusSeated, again[1].Status)
}

func TestLockSerializesPerEvent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.PutEvent(ctx, &domain.Event{ID: "e1"}))

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := s.Lock("e1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, counter)
}

func TestLockIgnoresUnknownEvents(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for i := 0; i < 1000; i++ {
		id := fmt.Sprintf("missing-%d", i)
		unlock := s.Lock(id)
		_, err := s.Entries(ctx, id)
		assert.ErrorIs(t, err, ErrNotFound)
		unlock()
	}

	m := s.(*memoryStore)
	assert.Empty(t, m.locks)
	assert.Empty(t, m.events)

	require.NoError(t, s.PutEvent(ctx, &domain.Event{ID: "e1"}))
	require.NoError(t, s.PutEvent(ctx, &domain.Event{ID: "e1"}))
	assert.Len(t, m.locks, 1)
}

func TestSeedDemoDataIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, SeedDemoData(ctx, s))
	require.NoError(t, SeedDemoData(ctx, s))

	festival, err := s.GetEvent(ctx, DemoFestivalEventID)
	require.NoError(t, err)
	assert.Equal(t, "Demo Festival Event", festival.Name)
	assert.Equal(t, 5000, festival.MaxCapacity)
	assert.True(t, festival.OfflineEnabled)

	legacy, err := s.GetEvent(ctx, DemoLegacyEventID)
	require.NoError(t, err)
	assert.Equal(t, 500, legacy.MaxCapacity)

	entries, err := s.Entries(ctx, DemoFestivalEventID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, DemoEntryID, entries[0].ID)
	assert.Equal(t, 3, entries[0].Position)
	assert.Equal(t, 25, entries[0].EstimatedWait)
}
