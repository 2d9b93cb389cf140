package store

import (
	"context"
	"fmt"
	"time"

	"waitwise/internal/domain"
)

// Demo fixture ids used by the mobile clients
const (
	DemoFestivalEventID = "550e8400-e29b-41d4-a716-446655440000"
	DemoLegacyEventID   = "223"
	DemoEntryID         = "880e8400-e29b-41d4-a716-446655440003"
)

// SeedDemoData inserts the demo events and the demo waitlist entry.
// Records that already exist are left alone, so calling it twice is harmless.
func SeedDemoData(ctx context.Context, s Store) error {
	events := []*domain.Event{
		{
			ID:             DemoFestivalEventID,
			Name:           "Demo Festival Event",
			EventType:      domain.EventTypeOutdoor,
			MaxCapacity:    5000,
			StartTime:      time.Date(2026, time.June, 15, 14, 0, 0, 0, time.UTC),
			EndTime:        time.Date(2026, time.June, 15, 23, 0, 0, 0, time.UTC),
			OfflineEnabled: true,
			Tables:         []domain.Table{},
		},
		{
			ID:             DemoLegacyEventID,
			Name:           "Legacy Demo Venue",
			EventType:      domain.EventTypeOutdoor,
			MaxCapacity:    500,
			StartTime:      time.Date(2026, time.March, 20, 17, 0, 0, 0, time.UTC),
			EndTime:        time.Date(2026, time.March, 20, 23, 0, 0, 0, time.UTC),
			OfflineEnabled: true,
			Tables:         []domain.Table{},
		},
	}

	now := time.Now().UTC()
	for _, ev := range events {
		if s.HasEvent(ctx, ev.ID) {
			continue
		}
		ev.CreatedAt = now
		if err := s.PutEvent(ctx, ev); err != nil {
			return fmt.Errorf("seed event %s: %w", ev.ID, err)
		}
	}

	unlock := s.Lock(DemoFestivalEventID)
	defer unlock()

	entries, err := s.Entries(ctx, DemoFestivalEventID)
	if err != nil {
		return fmt.Errorf("seed entries: %w", err)
	}
	for _, e := range entries {
		if e.ID == DemoEntryID {
			return nil
		}
	}

	entry := &domain.WaitlistEntry{
		ID:            DemoEntryID,
		EventID:       DemoFestivalEventID,
		Name:          "Sarah Johnson",
		PartySize:     4,
		Type:          domain.EntryTypeWaitlist,
		Status:        domain.EntryStatusQueued,
		Position:      3,
		EstimatedWait: 25,
		JoinedAt:      now,
	}
	if err := s.AppendEntry(ctx, entry); err != nil {
		return fmt.Errorf("seed entry %s: %w", entry.ID, err)
	}
	return nil
}
