package catalog

import (
	"context"
	"testing"

	"github.com/Domenick1991/goglobe/internal/domain"
	"github.com/Domenick1991/goglobe/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAgencyRepository struct {
	mock.Mock
}

func (m *MockAgencyRepository) List(ctx context.Context) ([]domain.Agency, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Agency), args.Error(1)
}

func (m *MockAgencyRepository) GetByID(ctx context.Context, id int64) (*domain.Agency, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Agency), args.Error(1)
}

func (m *MockAgencyRepository) Create(ctx context.Context, agency *domain.Agency) error {
	return m.Called(ctx, agency).Error(0)
}

func (m *MockAgencyRepository) Update(ctx context.Context, agency *domain.Agency) error {
	return m.Called(ctx, agency).Error(0)
}

func (m *MockAgencyRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockHotelRepository struct {
	mock.Mock
}

func (m *MockHotelRepository) List(ctx context.Context) ([]domain.Hotel, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Hotel), args.Error(1)
}

func (m *MockHotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

func (m *MockHotelRepository) Create(ctx context.Context, hotel *domain.Hotel) error {
	return m.Called(ctx, hotel).Error(0)
}

func (m *MockHotelRepository) Update(ctx context.Context, hotel *domain.Hotel) error {
	return m.Called(ctx, hotel).Error(0)
}

func (m *MockHotelRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockHotelRepository) ListRooms(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	args := m.Called(ctx, hotelID)
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockHotelRepository) CreateRoom(ctx context.Context, room *domain.Room) error {
	return m.Called(ctx, room).Error(0)
}

func (m *MockHotelRepository) DeleteRoom(ctx context.Context, hotelID, roomID int64) error {
	return m.Called(ctx, hotelID, roomID).Error(0)
}

type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) List(ctx context.Context) ([]domain.Property, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Property), args.Error(1)
}

func (m *MockPropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPropertyRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func strPtr(s string) *string { return &s }

func TestAgencyService_Update_AppliesOnlyProvidedFields(t *testing.T) {
	repo := &MockAgencyRepository{}
	service := NewAgencyService(repo)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(1)).Return(&domain.Agency{ID: 1, Name: "Old", Address: "Main st. 1", Logo: "old.png"}, nil).Once()
	repo.On("Update", ctx, &domain.Agency{ID: 1, Name: "Old", Address: "Main st. 1", Logo: "new.png"}).Return(nil).Once()

	updated, err := service.Update(ctx, 1, AgencyPatch{Logo: strPtr("new.png")})
	require.NoError(t, err)
	assert.Equal(t, "Old", updated.Name)
	assert.Equal(t, "new.png", updated.Logo)
	repo.AssertExpectations(t)
}

func TestAgencyService_Update_EmptyName(t *testing.T) {
	repo := &MockAgencyRepository{}
	service := NewAgencyService(repo)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(1)).Return(&domain.Agency{ID: 1, Name: "Old"}, nil).Once()

	_, err := service.Update(ctx, 1, AgencyPatch{Name: strPtr("  ")})
	assert.ErrorIs(t, err, ErrInvalid)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAgencyService_Delete_NotFound(t *testing.T) {
	repo := &MockAgencyRepository{}
	service := NewAgencyService(repo)
	ctx := context.Background()

	repo.On("Delete", ctx, int64(2)).Return(repository.ErrNotFound).Once()
	assert.ErrorIs(t, service.Delete(ctx, 2), ErrNotFound)
}

func TestHotelService_Create_Validation(t *testing.T) {
	service := NewHotelService(&MockHotelRepository{})

	for _, h := range []*domain.Hotel{{Name: "", StarCount: 3}, {Name: "Hilton", StarCount: 0}, {Name: "Hilton", StarCount: 6}} {
		assert.ErrorIs(t, service.Create(context.Background(), h), ErrInvalid)
	}
}

func TestHotelService_CreateRoom_UnknownHotel(t *testing.T) {
	repo := &MockHotelRepository{}
	service := NewHotelService(repo)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(8)).Return(nil, repository.ErrNotFound).Once()

	err := service.CreateRoom(ctx, &domain.Room{HotelID: 8, Type: "Double"})
	assert.ErrorIs(t, err, ErrNotFound)
	repo.AssertNotCalled(t, "CreateRoom", mock.Anything, mock.Anything)
}

func TestHotelService_CreateRoom(t *testing.T) {
	repo := &MockHotelRepository{}
	service := NewHotelService(repo)
	ctx := context.Background()

	room := &domain.Room{HotelID: 8, Type: "Suite"}
	repo.On("GetByID", ctx, int64(8)).Return(&domain.Hotel{ID: 8, Name: "Sea View", StarCount: 4}, nil).Once()
	repo.On("CreateRoom", ctx, room).Return(nil).Once()

	assert.NoError(t, service.CreateRoom(ctx, room))
	repo.AssertExpectations(t)
}

func TestPropertyService_Create(t *testing.T) {
	repo := &MockPropertyRepository{}
	service := NewPropertyService(repo)
	ctx := context.Background()

	assert.ErrorIs(t, service.Create(ctx, &domain.Property{Name: "Transfer", Kind: "maybe"}), ErrInvalid)

	p := &domain.Property{Name: "Transfer", Kind: domain.PropertyKindIncluded}
	repo.On("Create", ctx, p).Return(repository.ErrConflict).Once()
	assert.ErrorIs(t, service.Create(ctx, p), ErrConflict)
}
