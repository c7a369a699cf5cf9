package repository

import (
	"context"

	"github.com/Domenick1991/goglobe/internal/domain"
	"github.com/jackc/pgx/v5"
)

type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}

type PGUserRepository struct {
	db DB
}

func NewUserRepository(db DB) UserRepository {
	return &PGUserRepository{db: db}
}

const userColumns = `id, name, surname, email, password, kind, birth_date`

func (r *PGUserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (r *PGUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id))
}

func (r *PGUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email)=lower($1)`, email))
}

func (r *PGUserRepository) Create(ctx context.Context, u *domain.User) error {
	err := r.db.QueryRow(ctx, `INSERT INTO users (name, surname, email, password, kind, birth_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`, u.Name, u.Surname, u.Email, u.PasswordHash, u.Kind, u.BirthDate).Scan(&u.ID)
	return mapErr(err)
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Name, &u.Surname, &u.Email, &u.PasswordHash, &u.Kind, &u.BirthDate); err != nil {
		return nil, mapErr(err)
	}
	return &u, nil
}

var _ UserRepository = (*PGUserRepository)(nil)
