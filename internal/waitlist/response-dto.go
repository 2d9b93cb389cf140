package waitlist

import "waitwise/internal/domain"

// PageResponse is one page of a filtered waitlist
type PageResponse struct {
	Data       []*domain.WaitlistEntry `json:"data"`
	Page       int                     `json:"page"`
	PageSize   int                     `json:"pageSize"`
	Total      int                     `json:"total"`
	TotalPages int                     `json:"totalPages"`
}
