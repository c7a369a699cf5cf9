package api

import (
	"context"

	"github.com/Domenick1991/goglobe/internal/domain"
	"github.com/Domenick1991/goglobe/internal/service/booking"
	"github.com/Domenick1991/goglobe/internal/service/catalog"
	"github.com/Domenick1991/goglobe/internal/service/users"
	"github.com/stretchr/testify/mock"
)

type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) CreateBooking(ctx context.Context, input booking.CreateBookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) UpdateBooking(ctx context.Context, id int64, input booking.UpdateBookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) DeleteBooking(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBookingUseCase) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) ListClientBookings(ctx context.Context, clientID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) ListOfferBookings(ctx context.Context, travelOfferID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, travelOfferID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockOfferUseCase struct {
	mock.Mock
}

func (m *MockOfferUseCase) List(ctx context.Context) ([]domain.TravelOffer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.TravelOffer), args.Error(1)
}

func (m *MockOfferUseCase) GetByID(ctx context.Context, id int64) (*domain.TravelOffer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TravelOffer), args.Error(1)
}

func (m *MockOfferUseCase) Create(ctx context.Context, offer *domain.TravelOffer) error {
	return m.Called(ctx, offer).Error(0)
}

func (m *MockOfferUseCase) Update(ctx context.Context, offer *domain.TravelOffer) error {
	return m.Called(ctx, offer).Error(0)
}

func (m *MockOfferUseCase) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOfferUseCase) ListProperties(ctx context.Context, offerID int64) ([]domain.Property, error) {
	args := m.Called(ctx, offerID)
	return args.Get(0).([]domain.Property), args.Error(1)
}

func (m *MockOfferUseCase) AttachProperty(ctx context.Context, offerID, propertyID int64) error {
	return m.Called(ctx, offerID, propertyID).Error(0)
}

func (m *MockOfferUseCase) DetachProperty(ctx context.Context, offerID, propertyID int64) error {
	return m.Called(ctx, offerID, propertyID).Error(0)
}

type MockAgencyUseCase struct {
	mock.Mock
}

func (m *MockAgencyUseCase) List(ctx context.Context) ([]domain.Agency, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Agency), args.Error(1)
}

func (m *MockAgencyUseCase) GetByID(ctx context.Context, id int64) (*domain.Agency, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Agency), args.Error(1)
}

func (m *MockAgencyUseCase) Create(ctx context.Context, agency *domain.Agency) error {
	return m.Called(ctx, agency).Error(0)
}

func (m *MockAgencyUseCase) Update(ctx context.Context, id int64, patch catalog.AgencyPatch) (*domain.Agency, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Agency), args.Error(1)
}

func (m *MockAgencyUseCase) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockHotelUseCase struct {
	mock.Mock
}

func (m *MockHotelUseCase) List(ctx context.Context) ([]domain.Hotel, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Hotel), args.Error(1)
}

func (m *MockHotelUseCase) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

func (m *MockHotelUseCase) Create(ctx context.Context, hotel *domain.Hotel) error {
	return m.Called(ctx, hotel).Error(0)
}

func (m *MockHotelUseCase) Update(ctx context.Context, hotel *domain.Hotel) error {
	return m.Called(ctx, hotel).Error(0)
}

func (m *MockHotelUseCase) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockHotelUseCase) ListRooms(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	args := m.Called(ctx, hotelID)
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockHotelUseCase) CreateRoom(ctx context.Context, room *domain.Room) error {
	return m.Called(ctx, room).Error(0)
}

func (m *MockHotelUseCase) DeleteRoom(ctx context.Context, hotelID, roomID int64) error {
	return m.Called(ctx, hotelID, roomID).Error(0)
}

type MockPropertyUseCase struct {
	mock.Mock
}

func (m *MockPropertyUseCase) List(ctx context.Context) ([]domain.Property, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Property), args.Error(1)
}

func (m *MockPropertyUseCase) Create(ctx context.Context, p *domain.Property) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPropertyUseCase) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockLocationUseCase struct {
	mock.Mock
}

func (m *MockLocationUseCase) ListCities(ctx context.Context) ([]domain.City, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.City), args.Error(1)
}

func (m *MockLocationUseCase) ListCountries(ctx context.Context) ([]domain.Country, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Country), args.Error(1)
}

type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) Register(ctx context.Context, input users.RegisterInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUseCase) Login(ctx context.Context, email, password string) (*users.LoginResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.LoginResult), args.Error(1)
}

func (m *MockUserUseCase) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUseCase) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
