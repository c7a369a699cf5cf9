package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/goglobe/internal/kafka"
	"github.com/sirupsen/logrus"
)

// Sender delivers booking notifications to clients. Delivery is a structured
// log line until an SMTP relay is configured.
type Sender struct {
	log logrus.FieldLogger
}

func NewSender(log logrus.FieldLogger) *Sender {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Sender{log: log}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{
		"client_id": event.ClientID,
		"reference": event.Reference,
		"event":     event.Type,
	}).Info(Subject(event))
	return nil
}

// Subject renders the notification headline for an event.
func Subject(event kafka.BookingEvent) string {
	switch event.Type {
	case "booking_created":
		return fmt.Sprintf("Your booking %s for offer %d is confirmed", event.Reference, event.TravelOfferID)
	case "booking_updated":
		return fmt.Sprintf("Your booking %s has been updated", event.Reference)
	case "booking_deleted":
		return fmt.Sprintf("Your booking %s has been removed", event.Reference)
	default:
		return fmt.Sprintf("Booking %s: %s", event.Reference, event.Type)
	}
}
