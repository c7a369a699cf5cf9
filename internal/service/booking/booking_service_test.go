package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/goglobe/internal/domain"
	"github.com/Domenick1991/goglobe/internal/kafka"
	"github.com/Domenick1991/goglobe/internal/repository"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

func newTestService(repo *MockBookingRepository, producer Producer, opts ...BookingServiceOption) *BookingService {
	log, _ := test.NewNullLogger()
	base := []BookingServiceOption{WithClock(func() time.Time { return fixedNow }), WithLogger(log)}
	return NewBookingService(repo, producer, "booking_topic", append(base, opts...)...)
}

func TestBookingService_CreateBooking_Success(t *testing.T) {
	repo := &MockBookingRepository{}
	producer := &MockProducer{}
	service := newTestService(repo, producer, WithNotificationsTopic("notifications"))
	ctx := context.Background()

	repo.On("GetByReference", ctx, mock.AnythingOfType("string")).Return(nil, repository.ErrNotFound).Once()
	repo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Booking).ID = 77
	}).Return(nil).Once()
	producer.On("Publish", ctx, "booking_topic", mock.Anything, mock.AnythingOfType("kafka.BookingEvent")).Return(nil).Once()
	producer.On("Publish", ctx, "notifications", mock.Anything, mock.AnythingOfType("kafka.BookingEvent")).Return(nil).Once()

	booking, err := service.CreateBooking(ctx, CreateBookingInput{ClientID: 5, TravelOfferID: 9})

	require.NoError(t, err)
	assert.Equal(t, int64(77), booking.ID)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, int64(5), booking.ClientID)
	assert.Equal(t, int64(9), booking.TravelOfferID)
	assert.Len(t, booking.Reference, ReferenceLength)
	assert.Equal(t, fixedNow, booking.Date)

	event := producer.Calls[0].Arguments.Get(3).(kafka.BookingEvent)
	assert.Equal(t, "booking_created", event.Type)
	assert.Equal(t, booking.Reference, event.Reference)
	assert.Equal(t, int(domain.BookingStatusConfirmed), event.Status)

	repo.AssertExpectations(t)
	producer.AssertExpectations(t)
}

func TestBookingService_CreateBooking_SkipsTakenReferences(t *testing.T) {
	repo := &MockBookingRepository{}
	service := newTestService(repo, nil, WithReferenceGenerator(sequence("AAAAAAAAAAA", "BBBBBBBBBBB")))
	ctx := context.Background()

	repo.On("GetByReference", ctx, "AAAAAAAAAAA").Return(&domain.Booking{ID: 1, Reference: "AAAAAAAAAAA"}, nil).Once()
	repo.On("GetByReference", ctx, "BBBBBBBBBBB").Return(nil, repository.ErrNotFound).Once()
	repo.On("Create", ctx, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Reference == "BBBBBBBBBBB"
	})).Return(nil).Once()

	booking, err := service.CreateBooking(ctx, CreateBookingInput{ClientID: 1, TravelOfferID: 2})
	require.NoError(t, err)
	assert.Equal(t, "BBBBBBBBBBB", booking.Reference)
	repo.AssertExpectations(t)
}

func TestBookingService_CreateBooking_ValidationErrors(t *testing.T) {
	service := newTestService(&MockBookingRepository{}, nil)

	testCases := []struct {
		name  string
		input CreateBookingInput
	}{
		{name: "zero client", input: CreateBookingInput{ClientID: 0, TravelOfferID: 9}},
		{name: "negative offer", input: CreateBookingInput{ClientID: 5, TravelOfferID: -1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			booking, err := service.CreateBooking(context.Background(), tc.input)
			assert.Nil(t, booking)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestBookingService_CreateBooking_RepositoryError(t *testing.T) {
	repo := &MockBookingRepository{}
	producer := &MockProducer{}
	service := newTestService(repo, producer)
	ctx := context.Background()

	dbErr := errors.New("insert violates foreign key")
	repo.On("GetByReference", ctx, mock.Anything).Return(nil, repository.ErrNotFound).Once()
	repo.On("Create", ctx, mock.Anything).Return(dbErr).Once()

	booking, err := service.CreateBooking(ctx, CreateBookingInput{ClientID: 5, TravelOfferID: 9})

	assert.Nil(t, booking)
	assert.ErrorIs(t, err, ErrCreateFailed)
	assert.ErrorIs(t, err, dbErr)
	producer.AssertNotCalled(t, "Publish")
}

func TestBookingService_CreateBooking_LookupError(t *testing.T) {
	repo := &MockBookingRepository{}
	service := newTestService(repo, nil)
	ctx := context.Background()

	repo.On("GetByReference", ctx, mock.Anything).Return(nil, errors.New("db down")).Once()

	_, err := service.CreateBooking(ctx, CreateBookingInput{ClientID: 5, TravelOfferID: 9})
	assert.ErrorIs(t, err, ErrCreateFailed)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookingService_CreateBooking_PublishFailureIsIgnored(t *testing.T) {
	repo := &MockBookingRepository{}
	producer := &MockProducer{}
	service := newTestService(repo, producer)
	ctx := context.Background()

	repo.On("GetByReference", ctx, mock.Anything).Return(nil, repository.ErrNotFound).Once()
	repo.On("Create", ctx, mock.Anything).Return(nil).Once()
	producer.On("Publish", ctx, "booking_topic", mock.Anything, mock.Anything).Return(errors.New("broker unavailable")).Once()

	booking, err := service.CreateBooking(ctx, CreateBookingInput{ClientID: 5, TravelOfferID: 9})
	assert.NoError(t, err)
	assert.NotNil(t, booking)
	producer.AssertExpectations(t)
}

func TestBookingService_UpdateBooking_Cancel(t *testing.T) {
	repo := &MockBookingRepository{}
	service := newTestService(repo, nil)
	ctx := context.Background()

	existing := &domain.Booking{ID: 3, Reference: "Ref", ClientID: 5, TravelOfferID: 9, Status: domain.BookingStatusConfirmed, Date: fixedNow}
	repo.On("GetByID", ctx, int64(3)).Return(existing, nil).Once()
	repo.On("Update", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil).Once()

	updated, err := service.UpdateBooking(ctx, 3, UpdateBookingInput{Status: domain.BookingStatusCancelled})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, updated.Status)
	assert.Equal(t, int64(5), updated.ClientID)
	assert.Equal(t, int64(9), updated.TravelOfferID)
	repo.AssertExpectations(t)
}

func TestBookingService_UpdateBooking_PartialFields(t *testing.T) {
	repo := &MockBookingRepository{}
	service := newTestService(repo, nil)
	ctx := context.Background()

	existing := &domain.Booking{ID: 3, ClientID: 5, TravelOfferID: 9, Status: domain.BookingStatusConfirmed}
	newOffer := int64(12)
	repo.On("GetByID", ctx, int64(3)).Return(existing, nil).Once()
	repo.On("Update", ctx, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.ClientID == 5 && b.TravelOfferID == 12 && b.Status == domain.BookingStatusPending
	})).Return(nil).Once()

	updated, err := service.UpdateBooking(ctx, 3, UpdateBookingInput{TravelOfferID: &newOffer, Status: domain.BookingStatusPending})
	require.NoError(t, err)
	assert.Equal(t, int64(12), updated.TravelOfferID)
	repo.AssertExpectations(t)
}

func TestBookingService_UpdateBooking_InvalidStatusLeavesRecordUntouched(t *testing.T) {
	for _, status := range []domain.BookingStatus{0, 4, -1, 99} {
		repo := &MockBookingRepository{}
		service := newTestService(repo, nil)
		ctx := context.Background()

		existing := &domain.Booking{ID: 3, ClientID: 5, TravelOfferID: 9, Status: domain.BookingStatusConfirmed}
		repo.On("GetByID", ctx, int64(3)).Return(existing, nil).Once()

		newClient := int64(8)
		updated, err := service.UpdateBooking(ctx, 3, UpdateBookingInput{ClientID: &newClient, Status: status})

		assert.Nil(t, updated)
		assert.ErrorIs(t, err, ErrInvalidStatus)
		assert.Equal(t, domain.BookingStatusConfirmed, existing.Status)
		assert.Equal(t, int64(5), existing.ClientID)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	}
}

func TestBookingService_UpdateBooking_NotFound(t *testing.T) {
	repo := &MockBookingRepository{}
	service := newTestService(repo, nil)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(404)).Return(nil, repository.ErrNotFound).Once()

	_, err := service.UpdateBooking(ctx, 404, UpdateBookingInput{Status: domain.BookingStatusPending})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBookingService_UpdateBooking_StorageError(t *testing.T) {
	repo := &MockBookingRepository{}
	service := newTestService(repo, nil)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(3)).Return(&domain.Booking{ID: 3, Status: domain.BookingStatusPending}, nil).Once()
	repo.On("Update", ctx, mock.Anything).Return(errors.New("deadlock detected")).Once()

	_, err := service.UpdateBooking(ctx, 3, UpdateBookingInput{Status: domain.BookingStatusConfirmed})
	assert.ErrorIs(t, err, ErrUpdateFailed)
}

func TestBookingService_DeleteBooking(t *testing.T) {
	repo := &MockBookingRepository{}
	producer := &MockProducer{}
	service := newTestService(repo, producer)
	ctx := context.Background()

	existing := &domain.Booking{ID: 3, Reference: "DelRef", Status: domain.BookingStatusCancelled}
	repo.On("GetByID", ctx, int64(3)).Return(existing, nil).Once()
	repo.On("Delete", ctx, int64(3)).Return(nil).Once()
	producer.On("Publish", ctx, "booking_topic", "DelRef", mock.Anything).Return(nil).Once()

	assert.NoError(t, service.DeleteBooking(ctx, 3))
	repo.AssertExpectations(t)
	producer.AssertExpectations(t)
}

func TestBookingService_DeleteBooking_NotFound(t *testing.T) {
	repo := &MockBookingRepository{}
	service := newTestService(repo, nil)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(5)).Return(nil, repository.ErrNotFound).Once()

	assert.ErrorIs(t, service.DeleteBooking(ctx, 5), ErrNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestBookingService_GetByReference_NotFound(t *testing.T) {
	repo := &MockBookingRepository{}
	service := newTestService(repo, nil)
	ctx := context.Background()

	repo.On("GetByReference", ctx, "nope").Return(nil, repository.ErrNotFound).Once()

	_, err := service.GetByReference(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
