package events

import (
	"time"

	"waitwise/internal/domain"

	"github.com/go-playground/validator/v10"
)

// CreateEventRequest is the payload for registering an event
type CreateEventRequest struct {
	Name           string           `json:"name" validate:"required,min=2,max=160"`
	EventType      domain.EventType `json:"eventType" validate:"required,oneof=OUTDOOR INDOOR_TABLES INDOOR_SEATED"`
	MaxCapacity    int              `json:"maxCapacity" validate:"gt=0"`
	StartTime      time.Time        `json:"startTime" validate:"required"`
	EndTime        time.Time        `json:"endTime" validate:"required"`
	TotalTables    *int             `json:"totalTables" validate:"omitempty,gt=0"`
	TotalSeats     *int             `json:"totalSeats" validate:"omitempty,gt=0"`
	OfflineEnabled *bool            `json:"offlineEnabled"`
}

// validateCreateEvent enforces the cross-field rules of CreateEventRequest
func validateCreateEvent(sl validator.StructLevel) {
	req := sl.Current().Interface().(CreateEventRequest)

	if !req.StartTime.IsZero() && !req.EndTime.After(req.StartTime) {
		sl.ReportError(req.EndTime, "EndTime", "endTime", "gtfield", "StartTime")
	}
	if req.EventType == domain.EventTypeIndoorTables && req.TotalTables == nil {
		sl.ReportError(req.TotalTables, "TotalTables", "totalTables", "required_for_indoor_tables", "")
	}
	if req.EventType == domain.EventTypeIndoorSeated && req.TotalSeats == nil {
		sl.ReportError(req.TotalSeats, "TotalSeats", "totalSeats", "required_for_indoor_seated", "")
	}
}

// NewValidator returns a validator with the event rules registered
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(validateCreateEvent, CreateEventRequest{})
	return v
}
