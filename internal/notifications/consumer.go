package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"waitwise/pkg/logger"

	"github.com/IBM/sarama"
)

// AlertConsumer reads domain events and alerts guests whose table is ready
type AlertConsumer interface {
	StartConsumers(ctx context.Context, numWorkers int) error
	Stop() error
}

type ConsumerConfig struct {
	Brokers              []string
	GroupID              string
	Topics               []string
	SessionTimeoutMs     int
	HeartbeatMs          int
	RetryBackoffMs       int
	MaxProcessingTime    time.Duration
	OffsetOldest         bool
	MaxRetries           int
	RetryBackoffDuration time.Duration
}

func DefaultConsumerConfig() *ConsumerConfig {
	return &ConsumerConfig{
		Brokers:              []string{"localhost:9092"},
		GroupID:              "waitwise-guest-alerts",
		Topics:               []string{"waitlist-events"},
		SessionTimeoutMs:     30000,
		HeartbeatMs:          3000,
		RetryBackoffMs:       100,
		MaxProcessingTime:    time.Minute,
		OffsetOldest:         false,
		MaxRetries:           3,
		RetryBackoffDuration: time.Second,
	}
}

// SaramaConfig builds the consumer group settings
func (c *ConsumerConfig) SaramaConfig() *sarama.Config {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Consumer.Group.Session.Timeout = time.Duration(c.SessionTimeoutMs) * time.Millisecond
	saramaConfig.Consumer.Group.Heartbeat.Interval = time.Duration(c.HeartbeatMs) * time.Millisecond
	saramaConfig.Consumer.Retry.Backoff = time.Duration(c.RetryBackoffMs) * time.Millisecond
	saramaConfig.Consumer.MaxProcessingTime = c.MaxProcessingTime
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = true
	saramaConfig.Consumer.Offsets.AutoCommit.Interval = time.Second

	if c.OffsetOldest {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	} else {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	}
	return saramaConfig
}

type KafkaAlertConsumer struct {
	consumerGroup sarama.ConsumerGroup
	config        *ConsumerConfig
	notifier      Notifier
	cancel        context.CancelFunc
	wg            sync.WaitGroup
}

func NewKafkaAlertConsumer(config *ConsumerConfig, notifier Notifier) (*KafkaAlertConsumer, error) {
	consumerGroup, err := sarama.NewConsumerGroup(config.Brokers, config.GroupID, config.SaramaConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}
	return NewKafkaAlertConsumerWithGroup(consumerGroup, config, notifier), nil
}

// NewKafkaAlertConsumerWithGroup wraps an existing consumer group
func NewKafkaAlertConsumerWithGroup(group sarama.ConsumerGroup, config *ConsumerConfig, notifier Notifier) *KafkaAlertConsumer {
	return &KafkaAlertConsumer{
		consumerGroup: group,
		config:        config,
		notifier:      notifier,
	}
}

func (kc *KafkaAlertConsumer) StartConsumers(ctx context.Context, numWorkers int) error {
	ctx, kc.cancel = context.WithCancel(ctx)
	log := logger.GetDefault()
	log.Info("Starting guest alert consumers", slog.Int("workers", numWorkers), slog.Any("topics", kc.config.Topics))

	go kc.handleErrors()

	for i := 0; i < numWorkers; i++ {
		kc.wg.Add(1)
		go func(workerID int) {
			defer kc.wg.Done()
			kc.runWorker(ctx, workerID)
		}(i)
	}
	return nil
}

func (kc *KafkaAlertConsumer) runWorker(ctx context.Context, workerID int) {
	handler := &alertHandler{notifier: kc.notifier, config: kc.config, workerID: workerID}
	log := logger.GetDefault()

	for {
		if err := kc.consumerGroup.Consume(ctx, kc.config.Topics, handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return
			}
			log.Warn("Alert consumer error", slog.Int("worker", workerID), slog.Any("error", err))
			time.Sleep(time.Second)
		}
		if ctx.Err() != nil {
			return
		}
	}
}

func (kc *KafkaAlertConsumer) handleErrors() {
	for err := range kc.consumerGroup.Errors() {
		logger.GetDefault().Warn("Consumer group error", slog.Any("error", err))
	}
}

func (kc *KafkaAlertConsumer) Stop() error {
	if kc.cancel != nil {
		kc.cancel()
	}
	kc.wg.Wait()

	if err := kc.consumerGroup.Close(); err != nil {
		return fmt.Errorf("failed to close consumer group: %w", err)
	}
	logger.GetDefault().Info("Guest alert consumer stopped")
	return nil
}

// alertHandler implements sarama.ConsumerGroupHandler
type alertHandler struct {
	notifier Notifier
	config   *ConsumerConfig
	workerID int
}

func (h *alertHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *alertHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *alertHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			if err := h.processMessage(session.Context(), message); err != nil {
				logger.GetDefault().Warn("Failed to process domain event",
					slog.Int("worker", h.workerID),
					slog.Int64("offset", message.Offset),
					slog.Any("error", err),
				)
				continue
			}
			session.MarkMessage(message, "")

		case <-session.Context().Done():
			return nil
		}
	}
}

// processMessage alerts the guest for GUEST_NOTIFIED events and skips the rest
func (h *alertHandler) processMessage(ctx context.Context, message *sarama.ConsumerMessage) error {
	var event DomainEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if event.Type != EventTypeGuestNotified {
		return nil
	}

	for _, alert := range alertsFor(&event) {
		if err := h.notifyWithRetry(ctx, alert); err != nil {
			return err
		}
	}
	return nil
}

func (h *alertHandler) notifyWithRetry(ctx context.Context, alert GuestAlert) error {
	var err error
	for attempt := 0; attempt <= h.config.MaxRetries; attempt++ {
		if err = h.notifier.Notify(ctx, alert); err == nil {
			return nil
		}
		if attempt == h.config.MaxRetries {
			break
		}

		// Exponential backoff
		delay := h.config.RetryBackoffDuration * time.Duration(1<<attempt)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return fmt.Errorf("notify %s after %d attempts: %w", alert.Channel, h.config.MaxRetries+1, err)
}
