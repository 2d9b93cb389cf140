package waitlist

import "waitwise/internal/domain"

// JoinWaitlistRequest is the guest payload for joining an event queue
type JoinWaitlistRequest struct {
	Name                    string                          `json:"name" validate:"required,min=2,max=120"`
	PartySize               int                             `json:"partySize" validate:"gt=0"`
	Type                    domain.EntryType                `json:"type" validate:"omitempty,oneof=reservation waitlist"`
	PhoneNumber             *string                         `json:"phoneNumber"`
	SpecialRequests         *string                         `json:"specialRequests"`
	NotificationPreferences *domain.NotificationPreferences `json:"notificationPreferences"`
}

// ListQuery holds the staff listing filters and page window
type ListQuery struct {
	Page     int                `form:"page,default=1" validate:"min=1"`
	PageSize int                `form:"pageSize,default=20" validate:"min=1,max=100"`
	Type     domain.EntryType   `form:"type" validate:"omitempty,oneof=reservation waitlist"`
	Status   domain.EntryStatus `form:"status" validate:"omitempty,oneof=QUEUED NOTIFIED SEATED NO_SHOW CANCELLED EXPIRED"`
}
