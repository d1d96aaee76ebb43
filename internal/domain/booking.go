package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxSeatsPerBooking caps the number of seats a single booking may claim.
const MaxSeatsPerBooking = 6

// Booking is a committed reservation. It is created exactly once and never
// mutated afterwards; Seats is sorted and free of duplicates.
type Booking struct {
	ID          int
	Reference   uuid.UUID
	UserID      int
	ShowID      int
	Seats       []string
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
}

type BookingSummary struct {
	BookingID   int
	MovieTitle  string
	CinemaName  string
	ScreenName  string
	ShowTime    time.Time
	Seats       []string
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
}

type BookingRepository interface {
	// Create persists the booking and its seats as a single atomic unit.
	// When any requested seat is already taken for the same show, nothing
	// is committed and the error unwraps to ErrSeatsUnavailable. A missing
	// user or show surfaces as ErrRecordNotFound. ID and CreatedAt are
	// assigned on success.
	Create(ctx context.Context, booking *Booking) error

	// GetBookedSeats returns the union of seat labels across all committed
	// bookings of a show, sorted. A show with no bookings yields an empty
	// slice. Only committed rows are ever observed.
	GetBookedSeats(ctx context.Context, showID int) ([]string, error)

	GetSummariesByUser(ctx context.Context, userID int) ([]BookingSummary, error)
}
