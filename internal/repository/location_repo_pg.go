package repository

import (
	"context"

	"github.com/Domenick1991/goglobe/internal/domain"
)

type LocationRepository interface {
	ListCities(ctx context.Context) ([]domain.City, error)
	ListCountries(ctx context.Context) ([]domain.Country, error)
}

type PGLocationRepository struct {
	db DB
}

func NewLocationRepository(db DB) LocationRepository {
	return &PGLocationRepository{db: db}
}

func (r *PGLocationRepository) ListCities(ctx context.Context) ([]domain.City, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM cities ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cities := make([]domain.City, 0)
	for rows.Next() {
		var c domain.City
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}
	return cities, rows.Err()
}

func (r *PGLocationRepository) ListCountries(ctx context.Context) ([]domain.Country, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM countries ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	countries := make([]domain.Country, 0)
	for rows.Next() {
		var c domain.Country
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		countries = append(countries, c)
	}
	return countries, rows.Err()
}

var _ LocationRepository = (*PGLocationRepository)(nil)
