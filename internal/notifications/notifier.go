package notifications

import (
	"context"
	"log/slog"

	"waitwise/pkg/logger"
)

// Channel is a way of reaching a guest
type Channel string

const (
	ChannelSMS  Channel = "sms"
	ChannelPush Channel = "push"
)

// GuestAlert tells a party their table is ready
type GuestAlert struct {
	EventID     string
	EntryID     string
	Name        string
	PhoneNumber string
	TableID     *int
	Channel     Channel
}

// Notifier delivers a guest alert on one channel
type Notifier interface {
	Notify(ctx context.Context, alert GuestAlert) error
}

// LogNotifier records alerts in the application log instead of sending them
type LogNotifier struct {
	logger *logger.Logger
}

func NewLogNotifier(l *logger.Logger) *LogNotifier {
	if l == nil {
		l = logger.GetDefault()
	}
	return &LogNotifier{logger: l}
}

func (n *LogNotifier) Notify(ctx context.Context, alert GuestAlert) error {
	attrs := []any{
		slog.String("channel", string(alert.Channel)),
		slog.String("event_id", alert.EventID),
		slog.String("entry_id", alert.EntryID),
		slog.String("guest", alert.Name),
	}
	if alert.TableID != nil {
		attrs = append(attrs, slog.Int("table_id", *alert.TableID))
	}
	n.logger.InfoContext(ctx, "Guest alerted", attrs...)
	return nil
}

// alertsFor expands a GUEST_NOTIFIED event into one alert per opted-in channel
func alertsFor(event *DomainEvent) []GuestAlert {
	base := GuestAlert{EventID: event.EventID, EntryID: event.EntryID}
	if name, ok := event.Payload["name"].(string); ok {
		base.Name = name
	}
	if phone, ok := event.Payload["phoneNumber"].(string); ok {
		base.PhoneNumber = phone
	}
	// JSON numbers decode as float64
	if table, ok := event.Payload["tableId"].(float64); ok {
		id := int(table)
		base.TableID = &id
	}

	var alerts []GuestAlert
	if sms, _ := event.Payload["sms"].(bool); sms && base.PhoneNumber != "" {
		alert := base
		alert.Channel = ChannelSMS
		alerts = append(alerts, alert)
	}
	if push, _ := event.Payload["push"].(bool); push {
		alert := base
		alert.Channel = ChannelPush
		alerts = append(alerts, alert)
	}
	return alerts
}
