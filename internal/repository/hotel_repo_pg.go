package repository

import (
	"context"

	"github.com/Domenick1991/goglobe/internal/domain"
	"github.com/jackc/pgx/v5"
)

type HotelRepository interface {
	List(ctx context.Context) ([]domain.Hotel, error)
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
	Create(ctx context.Context, hotel *domain.Hotel) error
	Update(ctx context.Context, hotel *domain.Hotel) error
	Delete(ctx context.Context, id int64) error
	ListRooms(ctx context.Context, hotelID int64) ([]domain.Room, error)
	CreateRoom(ctx context.Context, room *domain.Room) error
	DeleteRoom(ctx context.Context, hotelID, roomID int64) error
}

type PGHotelRepository struct {
	db DB
}

func NewHotelRepository(db DB) HotelRepository {
	return &PGHotelRepository{db: db}
}

func (r *PGHotelRepository) List(ctx context.Context) ([]domain.Hotel, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, star_count FROM hotels ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hotels := make([]domain.Hotel, 0)
	for rows.Next() {
		var h domain.Hotel
		if err := rows.Scan(&h.ID, &h.Name, &h.StarCount); err != nil {
			return nil, err
		}
		hotels = append(hotels, h)
	}
	return hotels, rows.Err()
}

func (r *PGHotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	var h domain.Hotel
	if err := r.db.QueryRow(ctx, `SELECT id, name, star_count FROM hotels WHERE id=$1`, id).Scan(&h.ID, &h.Name, &h.StarCount); err != nil {
		return nil, mapErr(err)
	}
	return &h, nil
}

func (r *PGHotelRepository) Create(ctx context.Context, h *domain.Hotel) error {
	return mapErr(r.db.QueryRow(ctx, `INSERT INTO hotels (name, star_count) VALUES ($1, $2) RETURNING id`, h.Name, h.StarCount).Scan(&h.ID))
}

func (r *PGHotelRepository) Update(ctx context.Context, h *domain.Hotel) error {
	return expectAffected(r.db.Exec(ctx, `UPDATE hotels SET name=$1, star_count=$2 WHERE id=$3`, h.Name, h.StarCount, h.ID))
}

// Delete removes the hotel together with its rooms in one transaction.
func (r *PGHotelRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM rooms WHERE hotel_id=$1`, id); err != nil {
		return err
	}
	if err := expectAffected(tx.Exec(ctx, `DELETE FROM hotels WHERE id=$1`, id)); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *PGHotelRepository) ListRooms(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	rows, err := r.db.Query(ctx, `SELECT id, hotel_id, type FROM rooms WHERE hotel_id=$1 ORDER BY id`, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := make([]domain.Room, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, *room)
	}
	return rooms, rows.Err()
}

func (r *PGHotelRepository) CreateRoom(ctx context.Context, room *domain.Room) error {
	return mapErr(r.db.QueryRow(ctx, `INSERT INTO rooms (hotel_id, type) VALUES ($1, $2) RETURNING id`, room.HotelID, room.Type).Scan(&room.ID))
}

func (r *PGHotelRepository) DeleteRoom(ctx context.Context, hotelID, roomID int64) error {
	return expectAffected(r.db.Exec(ctx, `DELETE FROM rooms WHERE id=$1 AND hotel_id=$2`, roomID, hotelID))
}

func scanRoom(row pgx.Row) (*domain.Room, error) {
	var room domain.Room
	if err := row.Scan(&room.ID, &room.HotelID, &room.Type); err != nil {
		return nil, mapErr(err)
	}
	return &room, nil
}

var _ HotelRepository = (*PGHotelRepository)(nil)
