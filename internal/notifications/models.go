package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventType names a waitlist domain event
type EventType string

const (
	EventTypeEventCreated  EventType = "EVENT_CREATED"
	EventTypeGuestJoined   EventType = "GUEST_JOINED"
	EventTypeGuestNotified EventType = "GUEST_NOTIFIED"
	EventTypeGuestSeated   EventType = "GUEST_SEATED"
)

// DomainEvent is the message published for every queue mutation
type DomainEvent struct {
	ID         string         `json:"id"`
	Type       EventType      `json:"type"`
	EventID    string         `json:"eventId"`
	EntryID    string         `json:"entryId,omitempty"`
	Payload    map[string]any `json:"payload,omitempty"`
	OccurredAt time.Time      `json:"occurredAt"`
}

// NewDomainEvent stamps a new event with an id and the current time
func NewDomainEvent(eventType EventType, eventID, entryID string, payload map[string]any) *DomainEvent {
	return &DomainEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		EventID:    eventID,
		EntryID:    entryID,
		Payload:    payload,
		OccurredAt: time.Now().UTC(),
	}
}

// PartitionKey keeps every message for one event on the same partition
func (e *DomainEvent) PartitionKey() string {
	return e.EventID
}

// ToJSON serializes the event for the wire
func (e *DomainEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}
