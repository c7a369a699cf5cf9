package repository

import (
	"context"

	"github.com/Domenick1991/goglobe/internal/domain"
	"github.com/jackc/pgx/v5"
)

type TravelOfferRepository interface {
	List(ctx context.Context) ([]domain.TravelOffer, error)
	GetByID(ctx context.Context, id int64) (*domain.TravelOffer, error)
	Create(ctx context.Context, offer *domain.TravelOffer) error
	Update(ctx context.Context, offer *domain.TravelOffer) error
	Delete(ctx context.Context, id int64) error
	ListProperties(ctx context.Context, offerID int64) ([]domain.Property, error)
	AttachProperty(ctx context.Context, offerID, propertyID int64) error
	DetachProperty(ctx context.Context, offerID, propertyID int64) error
}

type PGTravelOfferRepository struct {
	db DB
}

func NewTravelOfferRepository(db DB) TravelOfferRepository {
	return &PGTravelOfferRepository{db: db}
}

const offerColumns = `id, agency_id, hotel_id, city_id, country_id, description, departure_date, return_date, person_count, price, is_feeding_included`

func (r *PGTravelOfferRepository) List(ctx context.Context) ([]domain.TravelOffer, error) {
	rows, err := r.db.Query(ctx, `SELECT `+offerColumns+` FROM travel_offers ORDER BY departure_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	offers := make([]domain.TravelOffer, 0)
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		offers = append(offers, *o)
	}
	return offers, rows.Err()
}

func (r *PGTravelOfferRepository) GetByID(ctx context.Context, id int64) (*domain.TravelOffer, error) {
	return scanOffer(r.db.QueryRow(ctx, `SELECT `+offerColumns+` FROM travel_offers WHERE id=$1`, id))
}

func (r *PGTravelOfferRepository) Create(ctx context.Context, o *domain.TravelOffer) error {
	err := r.db.QueryRow(ctx, `INSERT INTO travel_offers (agency_id, hotel_id, city_id, country_id, description, departure_date, return_date, person_count, price, is_feeding_included)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		o.AgencyID, o.HotelID, o.CityID, o.CountryID, o.Description, o.DepartureDate, o.ReturnDate, o.PersonCount, o.Price, o.IsFeedingIncluded).
		Scan(&o.ID)
	return mapErr(err)
}

func (r *PGTravelOfferRepository) Update(ctx context.Context, o *domain.TravelOffer) error {
	return expectAffected(r.db.Exec(ctx, `UPDATE travel_offers
		SET agency_id=$1, hotel_id=$2, city_id=$3, country_id=$4, description=$5,
		    departure_date=$6, return_date=$7, person_count=$8, price=$9, is_feeding_included=$10
		WHERE id=$11`,
		o.AgencyID, o.HotelID, o.CityID, o.CountryID, o.Description, o.DepartureDate, o.ReturnDate, o.PersonCount, o.Price, o.IsFeedingIncluded, o.ID))
}

func (r *PGTravelOfferRepository) Delete(ctx context.Context, id int64) error {
	return expectAffected(r.db.Exec(ctx, `DELETE FROM travel_offers WHERE id=$1`, id))
}

func (r *PGTravelOfferRepository) ListProperties(ctx context.Context, offerID int64) ([]domain.Property, error) {
	rows, err := r.db.Query(ctx, `SELECT p.id, p.name, p.kind
		FROM properties p
		JOIN travel_properties tp ON tp.property_id = p.id
		WHERE tp.travel_offer_id=$1
		ORDER BY p.id`, offerID)
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

func (r *PGTravelOfferRepository) AttachProperty(ctx context.Context, offerID, propertyID int64) error {
	_, err := r.db.Exec(ctx, `INSERT INTO travel_properties (travel_offer_id, property_id) VALUES ($1, $2)`, offerID, propertyID)
	return mapErr(err)
}

func (r *PGTravelOfferRepository) DetachProperty(ctx context.Context, offerID, propertyID int64) error {
	return expectAffected(r.db.Exec(ctx, `DELETE FROM travel_properties WHERE travel_offer_id=$1 AND property_id=$2`, offerID, propertyID))
}

func scanOffer(row pgx.Row) (*domain.TravelOffer, error) {
	var o domain.TravelOffer
	if err := row.Scan(&o.ID, &o.AgencyID, &o.HotelID, &o.CityID, &o.CountryID, &o.Description,
		&o.DepartureDate, &o.ReturnDate, &o.PersonCount, &o.Price, &o.IsFeedingIncluded); err != nil {
		return nil, mapErr(err)
	}
	return &o, nil
}

var _ TravelOfferRepository = (*PGTravelOfferRepository)(nil)
