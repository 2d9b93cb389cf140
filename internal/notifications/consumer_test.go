package notifications

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	alerts   []GuestAlert
	failures int
}

func (r *recordingNotifier) Notify(ctx context.Context, alert GuestAlert) error {
	if r.failures > 0 {
		r.failures--
		return errors.New("gateway down")
	}
	r.alerts = append(r.alerts, alert)
	return nil
}

func testHandler(n Notifier) *alertHandler {
	cfg := DefaultConsumerConfig()
	cfg.RetryBackoffDuration = time.Millisecond
	return &alertHandler{notifier: n, config: cfg}
}

func message(t *testing.T, event *DomainEvent) *sarama.ConsumerMessage {
	t.Helper()
	value, err := event.ToJSON()
	require.NoError(t, err)
	return &sarama.ConsumerMessage{Topic: "waitlist-events", Value: value}
}

func TestProcessMessageAlertsOptedInChannels(t *testing.T) {
	n := &recordingNotifier{}
	event := NewDomainEvent(EventTypeGuestNotified, "event-1", "entry-1", map[string]any{
		"name":        "Sarah Johnson",
		"phoneNumber": "+15550100",
		"tableId":     3,
		"sms":         true,
		"push":        true,
	})

	require.NoError(t, testHandler(n).processMessage(context.Background(), message(t, event)))

	require.Len(t, n.alerts, 2)
	assert.Equal(t, ChannelSMS, n.alerts[0].Channel)
	assert.Equal(t, ChannelPush, n.alerts[1].Channel)
	assert.Equal(t, "Sarah Johnson", n.alerts[0].Name)
	assert.Equal(t, 3, *n.alerts[0].TableID)
}

func TestProcessMessageSkipsSMSWithoutPhone(t *testing.T) {
	n := &recordingNotifier{}
	event := NewDomainEvent(EventTypeGuestNotified, "event-1", "entry-1", map[string]any{"sms": true})

	require.NoError(t, testHandler(n).processMessage(context.Background(), message(t, event)))
	assert.Empty(t, n.alerts)
}

func TestProcessMessageIgnoresOtherEvents(t *testing.T) {
	n := &recordingNotifier{}
	event := NewDomainEvent(EventTypeGuestSeated, "event-1", "entry-1", map[string]any{"push": true})

	require.NoError(t, testHandler(n).processMessage(context.Background(), message(t, event)))
	assert.Empty(t, n.alerts)
}

func TestProcessMessageRetriesNotifier(t *testing.T) {
	n := &recordingNotifier{failures: 2}
	event := NewDomainEvent(EventTypeGuestNotified, "event-1", "entry-1", map[string]any{"push": true})

	require.NoError(t, testHandler(n).processMessage(context.Background(), message(t, event)))
	assert.Len(t, n.alerts, 1)
}

func TestProcessMessageGivesUp(t *testing.T) {
	n := &recordingNotifier{failures: 10}
	event := NewDomainEvent(EventTypeGuestNotified, "event-1", "entry-1", map[string]any{"push": true})

	err := testHandler(n).processMessage(context.Background(), message(t, event))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 4 attempts")
}

func TestProcessMessageRejectsGarbage(t *testing.T) {
	err := testHandler(&recordingNotifier{}).processMessage(context.Background(), &sarama.ConsumerMessage{Value: []byte("{")})
	assert.Error(t, err)
}
