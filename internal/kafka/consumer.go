package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(brokers []string, groupID, topic string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Consume reads until ctx is cancelled or handler fails. A cancelled context
// is a clean stop and returns nil.
func (c *Consumer) Consume(ctx context.Context, handler func(context.Context, kafka.Message) error) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return nil
			}
			return err
		}

		if err := handler(ctx, msg); err != nil {
			return err
		}
	}
}

// BookingEventHandler decodes booking events and passes them to fn.
// Malformed payloads are logged and skipped so one bad message does not stall the group.
func BookingEventHandler(fn func(context.Context, BookingEvent) error) func(context.Context, kafka.Message) error {
	return func(ctx context.Context, msg kafka.Message) error {
		var event BookingEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logrus.WithError(err).WithField("offset", msg.Offset).Warn("skip undecodable booking event")
			return nil
		}
		return fn(ctx, event)
	}
}
