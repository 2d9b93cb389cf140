package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"waitwise/internal/domain"
	"waitwise/internal/notifications"
	"waitwise/internal/shared/apperror"
	"waitwise/internal/store"
	"waitwise/pkg/logger"

	"github.com/google/uuid"
)

type Service interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*domain.Event, error)
	GetEvent(ctx context.Context, id string) (*domain.Event, error)
}

type service struct {
	store     store.Store
	publisher notifications.Publisher
}

func NewService(s store.Store, publisher notifications.Publisher) Service {
	if publisher == nil {
		publisher = notifications.NoopPublisher{}
	}
	return &service{
		store:     s,
		publisher: publisher,
	}
}

func (s *service) CreateEvent(ctx context.Context, req CreateEventRequest) (*domain.Event, error) {
	offline := true
	if req.OfflineEnabled != nil {
		offline = *req.OfflineEnabled
	}

	event := &domain.Event{
		ID:             uuid.NewString(),
		Name:           req.Name,
		EventType:      req.EventType,
		MaxCapacity:    req.MaxCapacity,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		TotalTables:    req.TotalTables,
		TotalSeats:     req.TotalSeats,
		OfflineEnabled: offline,
		CreatedAt:      time.Now().UTC(),
		Tables:         []domain.Table{},
	}

	if event.UsesTables() && req.TotalTables != nil {
		event.Tables = domain.NewTables(*req.TotalTables)
	}

	if err := s.store.PutEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("service.events.CreateEvent: %w", err)
	}

	logger.GetDefault().LogEventCreated(ctx, event.ID, string(event.EventType))
	notifications.PublishAsync(s.publisher, notifications.NewDomainEvent(
		notifications.EventTypeEventCreated, event.ID, "",
		map[string]any{"name": event.Name, "eventType": event.EventType, "maxCapacity": event.MaxCapacity},
	))

	return event.Clone(), nil
}

// GetEvent returns a snapshot of the event taken under its lock
func (s *service) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	unlock := s.store.Lock(id)
	defer unlock()

	event, err := s.store.GetEvent(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperror.EventNotFound(id)
		}
		return nil, fmt.Errorf("service.events.GetEvent: %w", err)
	}
	return event.Clone(), nil
}
