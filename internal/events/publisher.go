// Package events publishes lifecycle change events to Kafka so downstream
// consumers (notifications, analytics) can react without polling the database.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
	"go.uber.org/zap"

	"github.com/elitebooker/elitebooker-backend/pkg/logger"
)

// Event is one lifecycle change record. TenantID doubles as the partition
// key so every salon's events stay ordered.
type Event struct {
	Type       string                 `json:"type"`
	TenantID   string                 `json:"tenant_id"`
	EntityID   string                 `json:"entity_id"`
	ActorID    string                 `json:"actor_id,omitempty"`
	OccurredAt time.Time              `json:"occurred_at"`
	Payload    map[string]interface{} `json:"payload,omitempty"`
}

// Event types emitted by the platform
const (
	TypeSalonCreated     = "salon.created"
	TypeWaitlistJoined   = "waitlist.joined"
	TypeWaitlistStatus   = "waitlist.status_changed"
	TypeConsentPublished = "consent.published"
	TypeConsentArchived  = "consent.archived"
)

// Publisher emits lifecycle events. Publishing is fire-and-forget; a broker
// outage must never fail the request that triggered the event.
type Publisher interface {
	Publish(ctx context.Context, event Event)
	Close()
}

// KafkaPublisher implements Publisher on top of franz-go
type KafkaPublisher struct {
	client *kgo.Client
	topic  string
}

// KafkaConfig holds Kafka producer settings
type KafkaConfig struct {
	Brokers  []string
	ClientID string
	Topic    string
}

// NewKafkaPublisher creates a Publisher producing to the configured topic
func NewKafkaPublisher(cfg KafkaConfig) (*KafkaPublisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ClientID(cfg.ClientID),
		kgo.ProducerBatchCompression(kgo.Lz4Compression()),
	)
	if err != nil {
		return nil, err
	}
	return &KafkaPublisher{client: client, topic: cfg.Topic}, nil
}

// Publish emits one event asynchronously. Failures are logged and dropped.
func (p *KafkaPublisher) Publish(ctx context.Context, event Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	value, err := json.Marshal(event)
	if err != nil {
		logger.Error("failed to marshal event", zap.String("type", event.Type), zap.Error(err))
		return
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(event.TenantID),
		Value: value,
	}
	p.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
		if err != nil {
			logger.Error("failed to publish event",
				zap.String("type", event.Type),
				zap.String("tenant_id", event.TenantID),
				zap.Error(err))
		}
	})
}

// Close flushes pending records and shuts the producer down
func (p *KafkaPublisher) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p.client.Flush(ctx)
	p.client.Close()
}

// NopPublisher discards all events. Used when Kafka is disabled and in tests.
type NopPublisher struct{}

// Publish discards the event
func (NopPublisher) Publish(context.Context, Event) {}

// Close is a no-op
func (NopPublisher) Close() {}
