package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/mayurihegde/evently-backend/config"
)

// EventChange is the message published whenever an event is created,
// updated, or cancelled. Downstream consumers (mail-out, feeds) subscribe
// to the topic; this service only fans out.
type EventChange struct {
	MessageID      string    `json:"message_id"`
	EventID        uint      `json:"event_id"`
	OrganizationID uint      `json:"organization_id"`
	Action         string    `json:"action"`
	Title          string    `json:"title"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// Publisher writes event-change messages to Kafka. When no broker is
// configured it degrades to a disabled no-op so local development does
// not require Kafka.
type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(cfg *config.Config) *Publisher {
	if cfg.KafkaBrokers == "" {
		log.Println("Kafka disabled: no brokers configured")
		return &Publisher{}
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(strings.Split(cfg.KafkaBrokers, ",")...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: 5 * time.Second,
	}
	log.Printf("Kafka publisher ready, topic %s", cfg.KafkaTopic)
	return &Publisher{writer: writer}
}

func (p *Publisher) Enabled() bool {
	return p != nil && p.writer != nil
}

func (p *Publisher) PublishEventChange(ctx context.Context, change EventChange) error {
	if !p.Enabled() {
		return nil
	}

	change.MessageID = uuid.NewString()
	change.OccurredAt = time.Now().UTC()

	payload, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("encode event change: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(fmt.Sprintf("event-%d", change.EventID)),
		Value: payload,
	})
}

func (p *Publisher) Close() error {
	if !p.Enabled() {
		return nil
	}
	return p.writer.Close()
}
