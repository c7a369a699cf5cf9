package domain

import "time"

type TravelOffer struct {
	ID                int64
	AgencyID          int64
	HotelID           int64
	CityID            int64
	CountryID         int64
	Description       string
	DepartureDate     time.Time
	ReturnDate        time.Time
	PersonCount       int
	Price             float64
	IsFeedingIncluded bool
}

type PropertyKind string

const (
	PropertyKindIncluded PropertyKind = "included"
	PropertyKindExcluded PropertyKind = "excluded"
)

func (k PropertyKind) Valid() bool {
	return k == PropertyKindIncluded || k == PropertyKindExcluded
}

// Property is something an offer explicitly includes or excludes (transfers, insurance, ...).
// Kind is persisted as the row discriminator.
type Property struct {
	ID   int64
	Name string
	Kind PropertyKind
}
