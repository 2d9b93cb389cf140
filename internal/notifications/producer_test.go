package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKafkaPublisherSendsKeyedMessage(t *testing.T) {
	cfg := mocks.NewTestConfig()
	cfg.Producer.Return.Successes = true
	producer := mocks.NewSyncProducer(t, cfg)

	event := NewDomainEvent(EventTypeGuestSeated, "event-1", "entry-1", map[string]any{"tableId": 2})

	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		assert.Equal(t, "waitlist-events", msg.Topic)

		key, err := msg.Key.Encode()
		require.NoError(t, err)
		assert.Equal(t, "event-1", string(key))

		value, err := msg.Value.Encode()
		require.NoError(t, err)
		var decoded DomainEvent
		require.NoError(t, json.Unmarshal(value, &decoded))
		assert.Equal(t, EventTypeGuestSeated, decoded.Type)
		assert.Equal(t, "entry-1", decoded.EntryID)

		headers := map[string]string{}
		for _, h := range msg.Headers {
			headers[string(h.Key)] = string(h.Value)
		}
		assert.Equal(t, "GUEST_SEATED", headers["event_type"])
		assert.Equal(t, "entry-1", headers["entry_id"])
		return nil
	})

	pub := NewKafkaPublisherWithProducer(producer, "waitlist-events")
	require.NoError(t, pub.Publish(context.Background(), event))
	require.NoError(t, pub.Close())
}

func TestKafkaPublisherPropagatesFailure(t *testing.T) {
	cfg := mocks.NewTestConfig()
	cfg.Producer.Return.Successes = true
	producer := mocks.NewSyncProducer(t, cfg)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	pub := NewKafkaPublisherWithProducer(producer, "waitlist-events")
	err := pub.Publish(context.Background(), NewDomainEvent(EventTypeGuestJoined, "e", "g", nil))

	assert.True(t, errors.Is(err, sarama.ErrOutOfBrokers))
	require.NoError(t, pub.Close())
}

func TestDefaultSaramaConfig(t *testing.T) {
	cfg := DefaultKafkaProducerConfig().SaramaConfig()
	assert.True(t, cfg.Producer.Return.Successes)
	assert.True(t, cfg.Producer.Idempotent)
	assert.Equal(t, 1, cfg.Net.MaxOpenRequests)
	assert.Equal(t, sarama.WaitForAll, cfg.Producer.RequiredAcks)
}

func TestNoopPublisher(t *testing.T) {
	var p Publisher = NoopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), NewDomainEvent(EventTypeEventCreated, "e", "", nil)))
	assert.NoError(t, p.Close())
}
