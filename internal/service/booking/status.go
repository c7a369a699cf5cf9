package booking

import (
	"fmt"

	"github.com/Domenick1991/goglobe/internal/domain"
)

// ValidateStatus accepts only Pending, Confirmed and Cancelled. Any status may
// move to any other; there is no transition graph.
func ValidateStatus(status domain.BookingStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidStatus, int(status))
	}
	return nil
}
