package repository

import (
	"context"

	"github.com/Domenick1991/goglobe/internal/domain"
	"github.com/jackc/pgx/v5"
)

type BookingRepository interface {
	List(ctx context.Context) ([]domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	ListByClient(ctx context.Context, clientID int64) ([]domain.Booking, error)
	ListByTravelOffer(ctx context.Context, travelOfferID int64) ([]domain.Booking, error)
	Create(ctx context.Context, booking *domain.Booking) error
	Update(ctx context.Context, booking *domain.Booking) error
	Delete(ctx context.Context, id int64) error
}

type PGBookingRepository struct {
	db DB
}

func NewBookingRepository(db DB) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `id, booking_reference, client_id, travel_offer_id, status, date`

func (r *PGBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	return r.query(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY id`)
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id=$1`, id)
	return scanBooking(row)
}

func (r *PGBookingRepository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE booking_reference=$1`, reference)
	return scanBooking(row)
}

func (r *PGBookingRepository) ListByClient(ctx context.Context, clientID int64) ([]domain.Booking, error) {
	return r.query(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE client_id=$1 ORDER BY date DESC`, clientID)
}

func (r *PGBookingRepository) ListByTravelOffer(ctx context.Context, travelOfferID int64) ([]domain.Booking, error) {
	return r.query(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE travel_offer_id=$1 ORDER BY date DESC`, travelOfferID)
}

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	err := r.db.QueryRow(ctx, `INSERT INTO bookings (booking_reference, client_id, travel_offer_id, status, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`, booking.Reference, booking.ClientID, booking.TravelOfferID, booking.Status, booking.Date).
		Scan(&booking.ID)
	return mapErr(err)
}

func (r *PGBookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	return expectAffected(r.db.Exec(ctx, `UPDATE bookings SET client_id=$1, travel_offer_id=$2, status=$3 WHERE id=$4`,
		booking.ClientID, booking.TravelOfferID, booking.Status, booking.ID))
}

func (r *PGBookingRepository) Delete(ctx context.Context, id int64) error {
	return expectAffected(r.db.Exec(ctx, `DELETE FROM bookings WHERE id=$1`, id))
}

func (r *PGBookingRepository) query(ctx context.Context, sql string, args ...any) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.Reference, &b.ClientID, &b.TravelOfferID, &b.Status, &b.Date); err != nil {
		return nil, mapErr(err)
	}
	return &b, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
