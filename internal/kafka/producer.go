package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// BookingEvent is published on every booking mutation.
type BookingEvent struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	BookingID     int64     `json:"booking_id"`
	Reference     string    `json:"reference"`
	ClientID      int64     `json:"client_id"`
	TravelOfferID int64     `json:"travel_offer_id"`
	Status        int       `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type Producer struct {
	brokers []string
	writer  *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}

	return &Producer{
		brokers: brokers,
		writer:  writer,
	}
}

// Publish writes payload as JSON to topic. Key is the booking reference so
// events of one booking keep their order within a partition.
func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	message := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}

	logrus.WithFields(logrus.Fields{"topic": topic, "key": key}).Debug("published to kafka")
	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}

// CheckConnection dials the first broker and reads partitions.
func (p *Producer) CheckConnection(ctx context.Context) error {
	if len(p.brokers) == 0 {
		return fmt.Errorf("no kafka brokers configured")
	}
	conn, err := kafka.DialContext(ctx, "tcp", p.brokers[0])
	if err != nil {
		return fmt.Errorf("failed to connect to Kafka: %w", err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions()
	if err != nil {
		return fmt.Errorf("failed to read partitions: %w", err)
	}

	logrus.WithField("partitions", len(partitions)).Info("connected to kafka")
	return nil
}
