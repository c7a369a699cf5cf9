package catalog

import (
	"context"

	"github.com/Domenick1991/goglobe/internal/domain"
	"github.com/Domenick1991/goglobe/internal/repository"
)

type LocationUseCase interface {
	ListCities(ctx context.Context) ([]domain.City, error)
	ListCountries(ctx context.Context) ([]domain.Country, error)
}

type LocationService struct {
	repo repository.LocationRepository
}

func NewLocationService(repo repository.LocationRepository) *LocationService {
	return &LocationService{repo: repo}
}

func (s *LocationService) ListCities(ctx context.Context) ([]domain.City, error) {
	return s.repo.ListCities(ctx)
}

func (s *LocationService) ListCountries(ctx context.Context) ([]domain.Country, error) {
	return s.repo.ListCountries(ctx)
}

var _ LocationUseCase = (*LocationService)(nil)
