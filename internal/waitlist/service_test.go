package waitlist

import (
	"context"
	"fmt"
	"math"
	"sync"
	"testing"

	"waitwise/internal/domain"
	"waitwise/internal/shared/apperror"
	"waitwise/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (Service, store.Store) {
	t.Helper()
	s := store.NewMemoryStore()
	require.NoError(t, s.PutEvent(context.Background(), &domain.Event{
		ID:          "event-1",
		EventType:   domain.EventTypeOutdoor,
		MaxCapacity: 100,
	}))
	return NewService(s, nil), s
}

func join(t *testing.T, svc Service, name string, size int, entryType domain.EntryType) *domain.WaitlistEntry {
	t.Helper()
	entry, err := svc.Join(context.Background(), "event-1", &JoinWaitlistRequest{Name: name, PartySize: size, Type: entryType})
	require.NoError(t, err)
	return entry
}

func TestJoinAssignsPositionAndEstimate(t *testing.T) {
	svc, _ := newTestService(t)

	first := join(t, svc, "Sarah Johnson", 4, "")
	assert.Equal(t, domain.EntryStatusQueued, first.Status)
	assert.Equal(t, domain.EntryTypeWaitlist, first.Type)
	assert.Equal(t, 1, first.Position)
	assert.Equal(t, 8, first.EstimatedWait)
	assert.Nil(t, first.AssignedTableID)

	second := join(t, svc, "Ravi Patel", 2, domain.EntryTypeReservation)
	assert.Equal(t, 2, second.Position)
	assert.Equal(t, 16, second.EstimatedWait)
	assert.Equal(t, domain.EntryTypeReservation, second.Type)
}

func TestJoinRejectsActiveDuplicateIgnoringCase(t *testing.T) {
	svc, _ := newTestService(t)
	join(t, svc, "Sarah Johnson", 4, "")

	_, err := svc.Join(context.Background(), "event-1", &JoinWaitlistRequest{Name: "SARAH johnson", PartySize: 2})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrAlreadyExists)
	assert.Equal(t, "Guest already on waitlist", apperror.From(err).Message)
}

func TestJoinAllowsReturningGuestAfterSeating(t *testing.T) {
	svc, s := newTestService(t)
	first := join(t, svc, "Sarah Johnson", 4, "")

	entries, err := s.Entries(context.Background(), "event-1")
	require.NoError(t, err)
	entries[0].Status = domain.EntryStatusSeated

	again := join(t, svc, "sarah johnson", 4, "")
	assert.NotEqual(t, first.ID, again.ID)
	assert.Equal(t, 1, again.Position)
}

func TestJoinUnknownEvent(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Join(context.Background(), "missing", &JoinWaitlistRequest{Name: "Al", PartySize: 1})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestJoinKeepsOptionalGuestFields(t *testing.T) {
	svc, _ := newTestService(t)
	phone := "+15551234567"
	entry, err := svc.Join(context.Background(), "event-1", &JoinWaitlistRequest{
		Name:                    "Mina",
		PartySize:               2,
		PhoneNumber:             &phone,
		NotificationPreferences: &domain.NotificationPreferences{SMS: true},
	})
	require.NoError(t, err)
	assert.Equal(t, phone, *entry.PhoneNumber)
	assert.True(t, entry.NotificationPreferences.SMS)
	assert.False(t, entry.NotificationPreferences.Push)
}

func TestConcurrentJoinsGetDistinctPositions(t *testing.T) {
	svc, _ := newTestService(t)

	var wg sync.WaitGroup
	positions := make(chan int, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			entry, err := svc.Join(context.Background(), "event-1", &JoinWaitlistRequest{Name: fmt.Sprintf("Guest %d", i), PartySize: 1})
			if assert.NoError(t, err) {
				positions <- entry.Position
			}
		}(i)
	}
	wg.Wait()
	close(positions)

	seen := map[int]bool{}
	for p := range positions {
		assert.False(t, seen[p], "duplicate position %d", p)
		seen[p] = true
	}
	assert.Len(t, seen, 20)
}

func TestGetEntry(t *testing.T) {
	svc, _ := newTestService(t)
	entry := join(t, svc, "Sarah Johnson", 4, "")

	got, err := svc.GetEntry(context.Background(), "event-1", entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.ID, got.ID)

	_, err = svc.GetEntry(context.Background(), "event-1", "nope")
	require.Error(t, err)
	assert.Equal(t, "Entry not found", apperror.From(err).Message)

	_, err = svc.GetEntry(context.Background(), "missing", entry.ID)
	assert.Equal(t, "Event not found", apperror.From(err).Message)
}

func TestListFiltersAndPaginates(t *testing.T) {
	svc, s := newTestService(t)
	for i := 0; i < 5; i++ {
		join(t, svc, fmt.Sprintf("Walk-in %d", i), 2, domain.EntryTypeWaitlist)
	}
	for i := 0; i < 3; i++ {
		join(t, svc, fmt.Sprintf("Booked %d", i), 2, domain.EntryTypeReservation)
	}
	entries, err := s.Entries(context.Background(), "event-1")
	require.NoError(t, err)
	entries[0].Status = domain.EntryStatusSeated

	ctx := context.Background()

	page, err := svc.List(ctx, "event-1", ListQuery{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, 8, page.Total)
	assert.Equal(t, 1, page.TotalPages)

	page, err = svc.List(ctx, "event-1", ListQuery{Page: 2, PageSize: 3, Type: domain.EntryTypeWaitlist})
	require.NoError(t, err)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "Walk-in 3", page.Data[0].Name)

	page, err = svc.List(ctx, "event-1", ListQuery{Page: 1, PageSize: 20, Type: domain.EntryTypeWaitlist, Status: domain.EntryStatusQueued})
	require.NoError(t, err)
	assert.Equal(t, 4, page.Total)

	page, err = svc.List(ctx, "event-1", ListQuery{Page: 9, PageSize: 20})
	require.NoError(t, err)
	assert.Empty(t, page.Data)
	assert.Equal(t, 8, page.Total)

	page, err = svc.List(ctx, "event-1", ListQuery{Page: 1, PageSize: 20, Status: domain.EntryStatusExpired})
	require.NoError(t, err)
	assert.Equal(t, 0, page.Total)
	assert.Equal(t, 0, page.TotalPages)
	assert.NotNil(t, page.Data)
}

func TestListPageBeyondRangeIsEmpty(t *testing.T) {
	svc, _ := newTestService(t)
	join(t, svc, "Solo", 2, domain.EntryTypeWaitlist)

	for _, page := range []int{2, math.MaxInt / 10, 100000000000000001, math.MaxInt} {
		resp, err := svc.List(context.Background(), "event-1", ListQuery{Page: page, PageSize: 100})
		require.NoError(t, err)
		assert.Empty(t, resp.Data)
		assert.NotNil(t, resp.Data)
		assert.Equal(t, 1, resp.Total)
		assert.Equal(t, 1, resp.TotalPages)
		assert.Equal(t, page, resp.Page)
	}
}
