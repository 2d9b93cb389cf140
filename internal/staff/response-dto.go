package staff

import "waitwise/internal/domain"

// PromoteResponse lists the parties moved to NOTIFIED
type PromoteResponse struct {
	Promoted []*domain.WaitlistEntry `json:"promoted"`
	Count    int                     `json:"count"`
}

// ActivityItem is one row of the dashboard's recent activity feed
type ActivityItem struct {
	EntryID string             `json:"entryId"`
	Name    string             `json:"name"`
	Status  domain.EntryStatus `json:"status"`
}

// DashboardResponse is the staff occupancy snapshot for an event
type DashboardResponse struct {
	EventID            string         `json:"eventId"`
	Occupancy          int            `json:"occupancy"`
	MaxCapacity        int            `json:"maxCapacity"`
	QueuedReservations int            `json:"queuedReservations"`
	QueuedWaitlist     int            `json:"queuedWaitlist"`
	AvailableTables    *int           `json:"availableTables"`
	RecentActivity     []ActivityItem `json:"recentActivity"`
}

// RecentActivityLimit caps the dashboard activity feed
const RecentActivityLimit = 5
