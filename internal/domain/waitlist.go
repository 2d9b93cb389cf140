package domain

import (
	"strings"
	"time"
)

// EntryType distinguishes walk-in waitlist guests from booked reservations
type EntryType string

const (
	EntryTypeReservation EntryType = "reservation"
	EntryTypeWaitlist    EntryType = "waitlist"
)

// IsValid checks if the entry type is known
func (t EntryType) IsValid() bool {
	return t == EntryTypeReservation || t == EntryTypeWaitlist
}

// EntryStatus represents where a guest is in the queue lifecycle
type EntryStatus string

const (
	EntryStatusQueued    EntryStatus = "QUEUED"
	EntryStatusNotified  EntryStatus = "NOTIFIED"
	EntryStatusSeated    EntryStatus = "SEATED"
	EntryStatusNoShow    EntryStatus = "NO_SHOW"
	EntryStatusCancelled EntryStatus = "CANCELLED"
	EntryStatusExpired   EntryStatus = "EXPIRED"
)

// IsValid checks if the entry status is known
func (s EntryStatus) IsValid() bool {
	switch s {
	case EntryStatusQueued, EntryStatusNotified, EntryStatusSeated,
		EntryStatusNoShow, EntryStatusCancelled, EntryStatusExpired:
		return true
	default:
		return false
	}
}

// IsActive returns true while the guest still holds a place in line
func (s EntryStatus) IsActive() bool {
	return s == EntryStatusQueued || s == EntryStatusNotified
}

// CanSeat returns true if a guest in this status may be seated
func (s EntryStatus) CanSeat() bool {
	return s.IsActive()
}

// Wait estimate tuning
const (
	MinutesPerPosition = 8
	MinimumWaitMinutes = 5
)

// EstimateWait returns the quoted wait in minutes for a queue position
func EstimateWait(position int) int {
	return max(MinimumWaitMinutes, position*MinutesPerPosition)
}

// NotificationPreferences holds the channels a guest opted into
type NotificationPreferences struct {
	SMS  bool `json:"sms"`
	Push bool `json:"push"`
}

// WaitlistEntry represents a party waiting for, or holding, a spot at an event
type WaitlistEntry struct {
	ID                      string                  `json:"id"`
	EventID                 string                  `json:"eventId"`
	Name                    string                  `json:"name"`
	PartySize               int                     `json:"partySize"`
	Type                    EntryType               `json:"type"`
	Status                  EntryStatus             `json:"status"`
	Position                int                     `json:"position"`
	EstimatedWait           int                     `json:"estimatedWait"`
	JoinedAt                time.Time               `json:"joinedAt"`
	AssignedTableID         *int                    `json:"assignedTableId"`
	PhoneNumber             *string                 `json:"phoneNumber,omitempty"`
	SpecialRequests         *string                 `json:"specialRequests,omitempty"`
	NotificationPreferences NotificationPreferences `json:"notificationPreferences"`
}

// SameGuest reports whether name refers to this entry's guest, ignoring case
func (we *WaitlistEntry) SameGuest(name string) bool {
	return strings.EqualFold(we.Name, name)
}

// AssignTable records the table the party was given
func (we *WaitlistEntry) AssignTable(id int) {
	we.AssignedTableID = &id
}

// CountQueued counts entries still waiting to be promoted
func CountQueued(entries []*WaitlistEntry) int {
	n := 0
	for _, e := range entries {
		if e.Status == EntryStatusQueued {
			n++
		}
	}
	return n
}
