package booking

import (
	"context"

	"github.com/Domenick1991/goglobe/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByClient(ctx context.Context, clientID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByTravelOffer(ctx context.Context, travelOfferID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, travelOfferID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}
