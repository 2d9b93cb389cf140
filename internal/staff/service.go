package staff

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"waitwise/internal/domain"
	"waitwise/internal/notifications"
	"waitwise/internal/shared/apperror"
	"waitwise/internal/shared/constants"
	"waitwise/internal/store"
	"waitwise/pkg/cache"
	"waitwise/pkg/logger"
)

// Service covers the staff side of the live queue
type Service interface {
	SetCacheService(cacheService cache.Service, dashboardTTL time.Duration)

	Promote(ctx context.Context, eventID string, req *PromoteRequest) (*PromoteResponse, error)
	Seat(ctx context.Context, eventID string, req *SeatRequest) (*domain.WaitlistEntry, error)
	Dashboard(ctx context.Context, eventID string) (*DashboardResponse, error)
}

type service struct {
	store        store.Store
	publisher    notifications.Publisher
	cacheService cache.Service
	dashboardTTL time.Duration
}

func NewService(s store.Store, publisher notifications.Publisher) Service {
	if publisher == nil {
		publisher = notifications.NoopPublisher{}
	}
	return &service{
		store:        s,
		publisher:    publisher,
		dashboardTTL: constants.TTL_DASHBOARD,
	}
}

// SetCacheService enables the Redis dashboard cache
func (s *service) SetCacheService(cacheService cache.Service, dashboardTTL time.Duration) {
	s.cacheService = cacheService
	if dashboardTTL > 0 {
		s.dashboardTTL = dashboardTTL
	}
}

// Promote notifies the first count QUEUED parties, optionally of one type.
// For table events every party must get a table or nothing changes: the batch
// is planned on a copy of the floor and committed only when it all fits.
// Earlier parties are not left notified when a later one has no table.
func (s *service) Promote(ctx context.Context, eventID string, req *PromoteRequest) (*PromoteResponse, error) {
	count := DefaultPromoteCount
	if req.Count != nil {
		count = *req.Count
	}

	unlock := s.store.Lock(eventID)
	defer unlock()

	event, entries, err := s.load(ctx, eventID)
	if err != nil {
		return nil, err
	}

	batch := make([]*domain.WaitlistEntry, 0, count)
	for _, e := range entries {
		if len(batch) == count {
			break
		}
		if e.Status != domain.EntryStatusQueued {
			continue
		}
		if req.Type != "" && e.Type != req.Type {
			continue
		}
		batch = append(batch, e)
	}

	tableIDs := make([]int, len(batch))
	if event.UsesTables() {
		plan := event.Clone()
		for i, e := range batch {
			table := plan.BestTable(e.PartySize, nil)
			if table == nil {
				return nil, apperror.NoCapacity("No table available for current queue")
			}
			table.Occupied = true
			tableIDs[i] = table.ID
		}
	}

	promoted := make([]*domain.WaitlistEntry, 0, len(batch))
	for i, e := range batch {
		if event.UsesTables() {
			event.TableByID(tableIDs[i]).Occupied = true
			e.AssignTable(tableIDs[i])
		}
		e.Status = domain.EntryStatusNotified

		out := *e
		promoted = append(promoted, &out)
	}

	if len(promoted) > 0 {
		s.invalidateDashboard(ctx, eventID)
		for _, e := range promoted {
			payload := map[string]any{
				"name":      e.Name,
				"partySize": e.PartySize,
				"sms":       e.NotificationPreferences.SMS,
				"push":      e.NotificationPreferences.Push,
			}
			if e.AssignedTableID != nil {
				payload["tableId"] = *e.AssignedTableID
			}
			if e.PhoneNumber != nil {
				payload["phoneNumber"] = *e.PhoneNumber
			}
			notifications.PublishAsync(s.publisher, notifications.NewDomainEvent(
				notifications.EventTypeGuestNotified, eventID, e.ID, payload,
			))
		}
	}
	logger.GetDefault().LogGuestsPromoted(ctx, eventID, len(promoted))

	return &PromoteResponse{Promoted: promoted, Count: len(promoted)}, nil
}

// Seat moves a QUEUED or NOTIFIED party to SEATED.
// A table assigned at promotion stays occupied; the party takes the table
// chosen here.
func (s *service) Seat(ctx context.Context, eventID string, req *SeatRequest) (*domain.WaitlistEntry, error) {
	unlock := s.store.Lock(eventID)
	defer unlock()

	event, entries, err := s.load(ctx, eventID)
	if err != nil {
		return nil, err
	}

	var entry *domain.WaitlistEntry
	for _, e := range entries {
		if e.ID == req.EntryID {
			entry = e
			break
		}
	}
	if entry == nil {
		return nil, apperror.EntryNotFound(eventID, req.EntryID)
	}

	if !entry.Status.CanSeat() {
		return nil, apperror.InvalidInput("Only queued/notified guests can be seated")
	}

	if event.UsesTables() {
		table := event.BestTable(entry.PartySize, req.TableID)
		if table == nil {
			return nil, apperror.TableOccupied("Requested table unavailable")
		}
		table.Occupied = true
		entry.AssignTable(table.ID)
	}
	entry.Status = domain.EntryStatusSeated

	reason := ""
	if req.Reason != nil {
		reason = *req.Reason
	}

	s.invalidateDashboard(ctx, eventID)
	logger.GetDefault().LogGuestSeated(ctx, eventID, entry.ID, entry.AssignedTableID, reason)

	payload := map[string]any{"partySize": entry.PartySize}
	if entry.AssignedTableID != nil {
		payload["tableId"] = *entry.AssignedTableID
	}
	if reason != "" {
		payload["reason"] = reason
	}
	notifications.PublishAsync(s.publisher, notifications.NewDomainEvent(
		notifications.EventTypeGuestSeated, eventID, entry.ID, payload,
	))

	out := *entry
	return &out, nil
}

// Dashboard aggregates occupancy and queue depth, served from Redis when enabled.
// The event lock is held until the cache write lands so a concurrent mutation
// cannot invalidate the key before a stale snapshot is stored.
func (s *service) Dashboard(ctx context.Context, eventID string) (*DashboardResponse, error) {
	unlock := s.store.Lock(eventID)
	defer unlock()

	if s.cacheService == nil {
		return s.buildDashboard(ctx, eventID)
	}

	var dashboard DashboardResponse
	err := s.cacheService.GetOrSet(ctx, constants.BuildDashboardKey(eventID), s.dashboardTTL, func() (interface{}, error) {
		return s.buildDashboard(ctx, eventID)
	}, &dashboard)
	if err != nil {
		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		logger.GetDefault().Warn("dashboard cache unavailable, computing directly", slog.String("event_id", eventID), slog.Any("error", err))
		return s.buildDashboard(ctx, eventID)
	}
	return &dashboard, nil
}

// buildDashboard computes the dashboard from the store. Caller holds the event lock.
func (s *service) buildDashboard(ctx context.Context, eventID string) (*DashboardResponse, error) {
	event, entries, err := s.load(ctx, eventID)
	if err != nil {
		return nil, err
	}

	dashboard := &DashboardResponse{
		EventID:        eventID,
		MaxCapacity:    event.MaxCapacity,
		RecentActivity: make([]ActivityItem, 0, RecentActivityLimit),
	}

	for _, e := range entries {
		switch {
		case e.Status == domain.EntryStatusSeated:
			dashboard.Occupancy += e.PartySize
		case e.Status == domain.EntryStatusQueued && e.Type == domain.EntryTypeReservation:
			dashboard.QueuedReservations++
		case e.Status == domain.EntryStatusQueued && e.Type == domain.EntryTypeWaitlist:
			dashboard.QueuedWaitlist++
		}
	}

	if event.UsesTables() {
		available := event.AvailableTables()
		dashboard.AvailableTables = &available
	}

	for _, e := range entries[max(0, len(entries)-RecentActivityLimit):] {
		dashboard.RecentActivity = append(dashboard.RecentActivity, ActivityItem{
			EntryID: e.ID,
			Name:    e.Name,
			Status:  e.Status,
		})
	}

	return dashboard, nil
}

// load fetches the event and its live queue. Caller holds the event lock.
func (s *service) load(ctx context.Context, eventID string) (*domain.Event, []*domain.WaitlistEntry, error) {
	event, err := s.store.GetEvent(ctx, eventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, apperror.EventNotFound(eventID)
		}
		return nil, nil, fmt.Errorf("service.staff: %w", err)
	}

	entries, err := s.store.Entries(ctx, eventID)
	if err != nil {
		return nil, nil, fmt.Errorf("service.staff: %w", err)
	}
	return event, entries, nil
}

func (s *service) invalidateDashboard(ctx context.Context, eventID string) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.Delete(ctx, constants.BuildDashboardKey(eventID)); err != nil {
		logger.GetDefault().Warn("dashboard cache invalidation failed", slog.String("event_id", eventID), slog.Any("error", err))
	}
}
