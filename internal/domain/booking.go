package domain

import "time"

type BookingStatus int

const (
	BookingStatusPending   BookingStatus = 1
	BookingStatusConfirmed BookingStatus = 2
	BookingStatusCancelled BookingStatus = 3
)

// Valid reports whether s is one of the known statuses.
func (s BookingStatus) Valid() bool {
	return s >= BookingStatusPending && s <= BookingStatusCancelled
}

func (s BookingStatus) String() string {
	switch s {
	case BookingStatusPending:
		return "PENDING"
	case BookingStatusConfirmed:
		return "CONFIRMED"
	case BookingStatusCancelled:
		return "CANCELLED"
	default:
		return "UNKNOWN"
	}
}

type Booking struct {
	ID            int64
	Reference     string
	ClientID      int64
	TravelOfferID int64
	Status        BookingStatus
	Date          time.Time
}
