package repository

import (
	"context"

	"github.com/Domenick1991/goglobe/internal/domain"
)

type AgencyRepository interface {
	List(ctx context.Context) ([]domain.Agency, error)
	GetByID(ctx context.Context, id int64) (*domain.Agency, error)
	Create(ctx context.Context, agency *domain.Agency) error
	Update(ctx context.Context, agency *domain.Agency) error
	Delete(ctx context.Context, id int64) error
}

type PGAgencyRepository struct {
	db DB
}

func NewAgencyRepository(db DB) AgencyRepository {
	return &PGAgencyRepository{db: db}
}

func (r *PGAgencyRepository) List(ctx context.Context) ([]domain.Agency, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, address, logo FROM agencies ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	agencies := make([]domain.Agency, 0)
	for rows.Next() {
		var a domain.Agency
		if err := rows.Scan(&a.ID, &a.Name, &a.Address, &a.Logo); err != nil {
			return nil, err
		}
		agencies = append(agencies, a)
	}
	return agencies, rows.Err()
}

func (r *PGAgencyRepository) GetByID(ctx context.Context, id int64) (*domain.Agency, error) {
	var a domain.Agency
	err := r.db.QueryRow(ctx, `SELECT id, name, address, logo FROM agencies WHERE id=$1`, id).
		Scan(&a.ID, &a.Name, &a.Address, &a.Logo)
	if err != nil {
		return nil, mapErr(err)
	}
	return &a, nil
}

func (r *PGAgencyRepository) Create(ctx context.Context, a *domain.Agency) error {
	err := r.db.QueryRow(ctx, `INSERT INTO agencies (name, address, logo) VALUES ($1, $2, $3) RETURNING id`,
		a.Name, a.Address, a.Logo).Scan(&a.ID)
	return mapErr(err)
}

func (r *PGAgencyRepository) Update(ctx context.Context, a *domain.Agency) error {
	return expectAffected(r.db.Exec(ctx, `UPDATE agencies SET name=$1, address=$2, logo=$3 WHERE id=$4`,
		a.Name, a.Address, a.Logo, a.ID))
}

func (r *PGAgencyRepository) Delete(ctx context.Context, id int64) error {
	return expectAffected(r.db.Exec(ctx, `DELETE FROM agencies WHERE id=$1`, id))
}

var _ AgencyRepository = (*PGAgencyRepository)(nil)
