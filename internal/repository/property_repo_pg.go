package repository

import (
	"context"

	"github.com/Domenick1991/goglobe/internal/domain"
)

type PropertyRepository interface {
	List(ctx context.Context) ([]domain.Property, error)
	Create(ctx context.Context, property *domain.Property) error
	Delete(ctx context.Context, id int64) error
}

type PGPropertyRepository struct {
	db DB
}

func NewPropertyRepository(db DB) PropertyRepository {
	return &PGPropertyRepository{db: db}
}

func (r *PGPropertyRepository) List(ctx context.Context) ([]domain.Property, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, kind FROM properties ORDER BY kind, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	props := make([]domain.Property, 0)
	for rows.Next() {
		var p domain.Property
		if err := rows.Scan(&p.ID, &p.Name, &p.Kind); err != nil {
			return nil, err
		}
		props = append(props, p)
	}
	return props, rows.Err()
}

func (r *PGPropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	return mapErr(r.db.QueryRow(ctx, `INSERT INTO properties (name, kind) VALUES ($1, $2) RETURNING id`, p.Name, p.Kind).Scan(&p.ID))
}

func (r *PGPropertyRepository) Delete(ctx context.Context, id int64) error {
	return expectAffected(r.db.Exec(ctx, `DELETE FROM properties WHERE id=$1`, id))
}

var _ PropertyRepository = (*PGPropertyRepository)(nil)
