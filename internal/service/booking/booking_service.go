package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/goglobe/internal/domain"
	"github.com/Domenick1991/goglobe/internal/kafka"
	"github.com/Domenick1991/goglobe/internal/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	UpdateBooking(ctx context.Context, id int64, input UpdateBookingInput) (*domain.Booking, error)
	DeleteBooking(ctx context.Context, id int64) error
	GetBooking(ctx context.Context, id int64) (*domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	ListClientBookings(ctx context.Context, clientID int64) ([]domain.Booking, error)
	ListOfferBookings(ctx context.Context, travelOfferID int64) ([]domain.Booking, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type CreateBookingInput struct {
	ClientID      int64 `json:"client_id"`
	TravelOfferID int64 `json:"travel_offer_id"`
}

// UpdateBookingInput leaves a field unchanged when its pointer is nil.
// Status is always required and validated.
type UpdateBookingInput struct {
	ClientID      *int64               `json:"client_id"`
	TravelOfferID *int64               `json:"travel_offer_id"`
	Status        domain.BookingStatus `json:"status"`
}

type BookingService struct {
	bookings           repository.BookingRepository
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	reference          func() string
	now                func() time.Time
	log                logrus.FieldLogger
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func WithReferenceGenerator(generate func() string) BookingServiceOption {
	return func(s *BookingService) {
		s.reference = generate
	}
}

func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

func WithLogger(log logrus.FieldLogger) BookingServiceOption {
	return func(s *BookingService) {
		s.log = log
	}
}

// NewBookingService wires the booking workflow. producer may be nil, in which case no events are published.
func NewBookingService(
	bookings repository.BookingRepository,
	producer Producer,
	bookingTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		producer:     producer,
		bookingTopic: bookingTopic,
		reference:    NewReferenceGenerator(nil).Generate,
		now:          time.Now,
		log:          logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateBooking assigns a fresh reference and always stores the booking as Confirmed.
func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if input.ClientID <= 0 {
		return nil, fmt.Errorf("%w: client id must be positive", ErrInvalidInput)
	}
	if input.TravelOfferID <= 0 {
		return nil, fmt.Errorf("%w: travel offer id must be positive", ErrInvalidInput)
	}

	reference, err := UniqueReference(ctx, s.bookings, s.reference)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}

	booking := &domain.Booking{
		Reference:     reference,
		ClientID:      input.ClientID,
		TravelOfferID: input.TravelOfferID,
		Status:        domain.BookingStatusConfirmed,
		Date:          s.now().UTC(),
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		s.log.WithError(err).WithField("reference", reference).Error("create booking")
		return nil, fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}

	s.publish(ctx, "booking_created", booking)
	return booking, nil
}

func (s *BookingService) UpdateBooking(ctx context.Context, id int64, input UpdateBookingInput) (*domain.Booking, error) {
	existing, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.applyUpdate(ctx, existing, input)
}

// applyUpdate validates before touching anything, so a rejected status leaves existing as it was.
func (s *BookingService) applyUpdate(ctx context.Context, existing *domain.Booking, input UpdateBookingInput) (*domain.Booking, error) {
	if err := ValidateStatus(input.Status); err != nil {
		return nil, err
	}

	updated := *existing
	if input.ClientID != nil {
		updated.ClientID = *input.ClientID
	}
	if input.TravelOfferID != nil {
		updated.TravelOfferID = *input.TravelOfferID
	}
	updated.Status = input.Status

	if err := s.bookings.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.WithError(err).WithField("booking_id", existing.ID).Error("update booking")
		return nil, fmt.Errorf("%w: %w", ErrUpdateFailed, err)
	}

	s.publish(ctx, "booking_updated", &updated)
	return &updated, nil
}

func (s *BookingService) DeleteBooking(ctx context.Context, id int64) error {
	existing, err := s.GetBooking(ctx, id)
	if err != nil {
		return err
	}
	if err := s.bookings.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.publish(ctx, "booking_deleted", existing)
	return nil
}

func (s *BookingService) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return b, err
}

func (s *BookingService) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	b, err := s.bookings.GetByReference(ctx, reference)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return b, err
}

func (s *BookingService) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

func (s *BookingService) ListClientBookings(ctx context.Context, clientID int64) ([]domain.Booking, error) {
	return s.bookings.ListByClient(ctx, clientID)
}

func (s *BookingService) ListOfferBookings(ctx context.Context, travelOfferID int64) ([]domain.Booking, error) {
	return s.bookings.ListByTravelOffer(ctx, travelOfferID)
}

// publish never fails the caller; a broker outage only costs notifications.
func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		ID:            uuid.NewString(),
		Type:          eventType,
		BookingID:     booking.ID,
		Reference:     booking.Reference,
		ClientID:      booking.ClientID,
		TravelOfferID: booking.TravelOfferID,
		Status:        int(booking.Status),
		OccurredAt:    s.now().UTC(),
	}
	topics := []string{s.bookingTopic}
	if s.notificationsTopic != "" {
		topics = append(topics, s.notificationsTopic)
	}
	for _, topic := range topics {
		if err := s.producer.Publish(ctx, topic, booking.Reference, event); err != nil {
			s.log.WithError(err).WithFields(logrus.Fields{
				"event":     eventType,
				"reference": booking.Reference,
				"topic":     topic,
			}).Warn("failed to publish booking event")
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
