package waitlist

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

	"github.com/google/uuid"
)

// Service interface for waitlist operations
type Service interface {
	SetCacheService(cacheService cache.Service)

	Join(ctx context.Context, eventID string, req *JoinWaitlistRequest) (*domain.WaitlistEntry, error)
	GetEntry(ctx context.Context, eventID, entryID string) (*domain.WaitlistEntry, error)
	List(ctx context.Context, eventID string, query ListQuery) (*PageResponse, error)
}

type service struct {
	store        store.Store
	publisher    notifications.Publisher
	cacheService cache.Service
}

// NewService creates a new waitlist service
func NewService(s store.Store, publisher notifications.Publisher) Service {
	if publisher == nil {
		publisher = notifications.NoopPublisher{}
	}
	return &service{
		store:     s,
		publisher: publisher,
	}
}

// SetCacheService injects the cache used for dashboard invalidation
func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

// Join appends a party to the event's queue.
// Position counts the parties still QUEUED, so it is a snapshot at join time.
func (s *service) Join(ctx context.Context, eventID string, req *JoinWaitlistRequest) (*domain.WaitlistEntry, error) {
	unlock := s.store.Lock(eventID)
	defer unlock()

	entries, err := s.entries(ctx, eventID)
	if err != nil {
		return nil, err
	}

	for _, e := range entries {
		if e.SameGuest(req.Name) && e.Status.IsActive() {
			return nil, apperror.AlreadyExists("Guest already on waitlist")
		}
	}

	entryType := req.Type
	if entryType == "" {
		entryType = domain.EntryTypeWaitlist
	}

	position := domain.CountQueued(entries) + 1
	entry := &domain.WaitlistEntry{
		ID:              uuid.NewString(),
		EventID:         eventID,
		Name:            req.Name,
		PartySize:       req.PartySize,
		Type:            entryType,
		Status:          domain.EntryStatusQueued,
		Position:        position,
		EstimatedWait:   domain.EstimateWait(position),
		JoinedAt:        time.Now().UTC(),
		PhoneNumber:     req.PhoneNumber,
		SpecialRequests: req.SpecialRequests,
	}
	if req.NotificationPreferences != nil {
		entry.NotificationPreferences = *req.NotificationPreferences
	}

	if err := s.store.AppendEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("service.waitlist.Join: %w", err)
	}

	s.invalidateDashboard(ctx, eventID)
	logger.GetDefault().LogGuestJoined(ctx, eventID, entry.ID, position)
	notifications.PublishAsync(s.publisher, notifications.NewDomainEvent(
		notifications.EventTypeGuestJoined, eventID, entry.ID,
		map[string]any{"partySize": entry.PartySize, "type": entry.Type, "position": position},
	))

	out := *entry
	return &out, nil
}

func (s *service) GetEntry(ctx context.Context, eventID, entryID string) (*domain.WaitlistEntry, error) {
	unlock := s.store.Lock(eventID)
	defer unlock()

	entries, err := s.entries(ctx, eventID)
	if err != nil {
		return nil, err
	}

	for _, e := range entries {
		if e.ID == entryID {
			out := *e
			return &out, nil
		}
	}
	return nil, apperror.EntryNotFound(eventID, entryID)
}

// List filters by type and status, then returns the requested 1-based page
func (s *service) List(ctx context.Context, eventID string, query ListQuery) (*PageResponse, error) {
	unlock := s.store.Lock(eventID)
	defer unlock()

	entries, err := s.entries(ctx, eventID)
	if err != nil {
		return nil, err
	}

	filtered := make([]*domain.WaitlistEntry, 0, len(entries))
	for _, e := range entries {
		if query.Type != "" && e.Type != query.Type {
			continue
		}
		if query.Status != "" && e.Status != query.Status {
			continue
		}
		out := *e
		filtered = append(filtered, &out)
	}

	total := len(filtered)
	totalPages := 0
	if total > 0 {
		totalPages = (total-1)/query.PageSize + 1
	}

	// Pages past the end are empty; compared before multiplying so huge pages cannot overflow.
	start := total
	if query.Page-1 < totalPages {
		start = (query.Page - 1) * query.PageSize
	}
	end := min(start+query.PageSize, total)

	return &PageResponse{
		Data:       filtered[start:end],
		Page:       query.Page,
		PageSize:   query.PageSize,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

// entries loads the queue, translating a missing event. Caller holds the event lock.
func (s *service) entries(ctx context.Context, eventID string) ([]*domain.WaitlistEntry, error) {
	entries, err := s.store.Entries(ctx, eventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperror.EventNotFound(eventID)
		}
		return nil, fmt.Errorf("service.waitlist: %w", err)
	}
	return entries, nil
}

func (s *service) invalidateDashboard(ctx context.Context, eventID string) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.Delete(ctx, constants.BuildDashboardKey(eventID)); err != nil {
		logger.GetDefault().Warn("dashboard cache invalidation failed", slog.String("event_id", eventID), slog.Any("error", err))
	}
}
