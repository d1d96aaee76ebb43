package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRecordNotFound   = errors.New("record not found")
	ErrSeatsUnavailable = errors.New("seat(s) are already booked")
)

// SeatsUnavailableError reports a booking conflict. Seats holds the
// conflicting labels when they are known; a commit-time conflict may surface
// without them, in which case the caller re-reads the ledger to fill them in.
type SeatsUnavailableError struct {
	Seats []string
}

func (e *SeatsUnavailableError) Error() string {
	if len(e.Seats) == 0 {
		return ErrSeatsUnavailable.Error()
	}

	return fmt.Sprintf("seat(s) are already booked: %s", strings.Join(e.Seats, ", "))
}

func (e *SeatsUnavailableError) Unwrap() error {
	return ErrSeatsUnavailable
}
