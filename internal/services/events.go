package services

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/sbilibin2017/barterup-bff/internal/logger"
	"github.com/sbilibin2017/barterup-bff/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

// EventPublisher publishes domain events. Failures are logged, never returned.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, userID uuid.UUID, payload any)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// KafkaPublisher publishes events to Kafka, keyed by user id.
type KafkaPublisher struct {
	writer KafkaWriter
	now    func() time.Time
}

// NewKafkaPublisher creates a publisher. A nil writer disables publishing.
func NewKafkaPublisher(writer KafkaWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer, now: time.Now}
}

// Publish sends one event.
func (p *KafkaPublisher) Publish(ctx context.Context, eventType string, userID uuid.UUID, payload any) {
	if p.writer == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "type", eventType, "user_id", userID)
		return
	}

	evt := models.Event{
		EventID:   uuid.NewString(),
		Type:      eventType,
		UserID:    userID.String(),
		Timestamp: p.now().Unix(),
		Payload:   payload,
	}

	data, err := json.Marshal(evt)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", evt.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(evt.UserID),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", evt.EventID, "type", eventType, "error", err)
		return
	}
	logger.Log.Infow("Event published to Kafka", "event_id", evt.EventID, "type", eventType)
}

// Close closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
