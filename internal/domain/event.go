package domain

import (
	"fmt"
	"time"
)

// EventType represents the kind of venue an event runs in
type EventType string

const (
	EventTypeOutdoor      EventType = "OUTDOOR"
	EventTypeIndoorTables EventType = "INDOOR_TABLES"
	EventTypeIndoorSeated EventType = "INDOOR_SEATED"
)

// IsValid checks if the event type is one of the known venue kinds
func (t EventType) IsValid() bool {
	switch t {
	case EventTypeOutdoor, EventTypeIndoorTables, EventTypeIndoorSeated:
		return true
	default:
		return false
	}
}

// Table layout constants
const (
	// DefaultTableCapacity is the number of guests every generated table seats
	DefaultTableCapacity = 4

	// TablesPerRow is the width of the generated floor grid
	TablesPerRow = 4
)

// Table is a seating unit owned by an INDOOR_TABLES event
type Table struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
	Occupied bool   `json:"occupied"`
}

// NewTables lays out n tables on a grid, ids 1..n, all free
func NewTables(n int) []Table {
	if n <= 0 {
		return []Table{}
	}

	tables := make([]Table, 0, n)
	for i := 0; i < n; i++ {
		tables = append(tables, Table{
			ID:       i + 1,
			Name:     fmt.Sprintf("Table %d", i+1),
			Capacity: DefaultTableCapacity,
			Row:      i / TablesPerRow,
			Col:      i % TablesPerRow,
		})
	}
	return tables
}

// Event represents a venue session guests can queue for
type Event struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	EventType      EventType `json:"eventType"`
	MaxCapacity    int       `json:"maxCapacity"`
	StartTime      time.Time `json:"startTime"`
	EndTime        time.Time `json:"endTime"`
	TotalTables    *int      `json:"totalTables"`
	TotalSeats     *int      `json:"totalSeats"`
	OfflineEnabled bool      `json:"offlineEnabled"`
	CreatedAt      time.Time `json:"createdAt"`
	Tables         []Table   `json:"tables"`
}

// UsesTables returns true if guests are allocated to tables for this event
func (e *Event) UsesTables() bool {
	return e.EventType == EventTypeIndoorTables
}

// AvailableTables counts the tables nobody is sitting at
func (e *Event) AvailableTables() int {
	free := 0
	for _, t := range e.Tables {
		if !t.Occupied {
			free++
		}
	}
	return free
}

// BestTable picks a free table for a party.
// A preferred table wins when it is free and large enough. Otherwise the
// smallest table that fits is chosen, lowest id first among equal capacities.
// Returns nil when nothing fits.
func (e *Event) BestTable(partySize int, preferredID *int) *Table {
	var best *Table
	for i := range e.Tables {
		t := &e.Tables[i]
		if t.Occupied || t.Capacity < partySize {
			continue
		}
		if preferredID != nil && t.ID == *preferredID {
			return t
		}
		if best == nil || t.Capacity < best.Capacity || (t.Capacity == best.Capacity && t.ID < best.ID) {
			best = t
		}
	}
	return best
}

// TableByID returns the table with the given id, or nil
func (e *Event) TableByID(id int) *Table {
	for i := range e.Tables {
		if e.Tables[i].ID == id {
			return &e.Tables[i]
		}
	}
	return nil
}

// Clone returns a copy of the event whose tables can be mutated independently
func (e *Event) Clone() *Event {
	c := *e
	c.Tables = make([]Table, len(e.Tables))
	copy(c.Tables, e.Tables)
	if e.TotalTables != nil {
		v := *e.TotalTables
		c.TotalTables = &v
	}
	if e.TotalSeats != nil {
		v := *e.TotalSeats
		c.TotalSeats = &v
	}
	return &c
}
