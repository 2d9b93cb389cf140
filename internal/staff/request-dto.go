package staff

import "waitwise/internal/domain"

// PromoteRequest asks to notify the next parties in line
type PromoteRequest struct {
	Count *int             `json:"count" validate:"omitempty,min=1,max=20"`
	Type  domain.EntryType `json:"type" validate:"omitempty,oneof=reservation waitlist"`
}

// DefaultPromoteCount applies when the request omits count
const DefaultPromoteCount = 1

// SeatRequest seats one party, optionally at a chosen table
type SeatRequest struct {
	EntryID string  `json:"entryId" validate:"required"`
	TableID *int    `json:"tableId"`
	Reason  *string `json:"reason"`
}
