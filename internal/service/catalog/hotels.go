package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/Domenick1991/goglobe/internal/domain"
	"github.com/Domenick1991/goglobe/internal/repository"
)

type HotelUseCase interface {
	List(ctx context.Context) ([]domain.Hotel, error)
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
	Create(ctx context.Context, hotel *domain.Hotel) error
	Update(ctx context.Context, hotel *domain.Hotel) error
	Delete(ctx context.Context, id int64) error
	ListRooms(ctx context.Context, hotelID int64) ([]domain.Room, error)
	CreateRoom(ctx context.Context, room *domain.Room) error
	DeleteRoom(ctx context.Context, hotelID, roomID int64) error
}

type HotelService struct {
	repo repository.HotelRepository
}

func NewHotelService(repo repository.HotelRepository) *HotelService {
	return &HotelService{repo: repo}
}

func (s *HotelService) List(ctx context.Context) ([]domain.Hotel, error) {
	return s.repo.List(ctx)
}

func (s *HotelService) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	h, err := s.repo.GetByID(ctx, id)
	return h, mapErr(err)
}

func (s *HotelService) Create(ctx context.Context, hotel *domain.Hotel) error {
	if err := validateHotel(hotel); err != nil {
		return err
	}
	return mapErr(s.repo.Create(ctx, hotel))
}

func (s *HotelService) Update(ctx context.Context, hotel *domain.Hotel) error {
	if err := validateHotel(hotel); err != nil {
		return err
	}
	return mapErr(s.repo.Update(ctx, hotel))
}

func (s *HotelService) Delete(ctx context.Context, id int64) error {
	return mapErr(s.repo.Delete(ctx, id))
}

func (s *HotelService) ListRooms(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	if _, err := s.GetByID(ctx, hotelID); err != nil {
		return nil, err
	}
	return s.repo.ListRooms(ctx, hotelID)
}

func (s *HotelService) CreateRoom(ctx context.Context, room *domain.Room) error {
	if strings.TrimSpace(room.Type) == "" {
		return fmt.Errorf("%w: room type is required", ErrInvalid)
	}
	if _, err := s.GetByID(ctx, room.HotelID); err != nil {
		return err
	}
	return mapErr(s.repo.CreateRoom(ctx, room))
}

func (s *HotelService) DeleteRoom(ctx context.Context, hotelID, roomID int64) error {
	return mapErr(s.repo.DeleteRoom(ctx, hotelID, roomID))
}

func validateHotel(h *domain.Hotel) error {
	if strings.TrimSpace(h.Name) == "" {
		return fmt.Errorf("%w: hotel name is required", ErrInvalid)
	}
	if h.StarCount < 1 || h.StarCount > 5 {
		return fmt.Errorf("%w: star count must be between 1 and 5", ErrInvalid)
	}
	return nil
}

var _ HotelUseCase = (*HotelService)(nil)
