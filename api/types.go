// Package api holds the request and response types of the public HTTP
// interface. The wire format is JSON with camelCase field names.
package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Machine-readable error codes returned in ErrorResponse.Code.
const (
	CodeNotFound         = "NOT_FOUND"
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeSeatsUnavailable = "SEATS_UNAVAILABLE"
	CodeStorageFailure   = "STORAGE_FAILURE"
)

type ErrorResponse struct {
	Code             string    `json:"code"`
	Message          string    `json:"message"`
	ConflictingSeats []string  `json:"conflictingSeats,omitempty"`
	RequestID        string    `json:"requestId,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Code             string            `json:"code"`
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validationErrors"`
	RequestID        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type UpsertUserRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email,max=120"`
}

type UserResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Cinema struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type CinemaListResponse struct {
	Cinemas []Cinema `json:"cinemas"`
}

type City struct {
	Name        string   `json:"name"`
	CinemaCount int      `json:"cinemaCount"`
	Cinemas     []Cinema `json:"cinemas"`
}

type CityListResponse struct {
	Cities []City `json:"cities"`
}

type Movie struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Duration    int             `json:"duration"`
	Genre       string          `json:"genre"`
	Rating      decimal.Decimal `json:"rating"`
	PosterURL   string          `json:"posterUrl"`
	Language    string          `json:"language"`
}

type MovieListResponse struct {
	Movies []Movie `json:"movies"`
}

type Show struct {
	ID         int             `json:"id"`
	StartTime  time.Time       `json:"startTime"`
	Price      decimal.Decimal `json:"price"`
	ScreenName string          `json:"screenName"`
}

type CinemaShowtimes struct {
	Cinema
	Shows []Show `json:"shows"`
}

type MovieCinemasResponse struct {
	Cinemas []CinemaShowtimes `json:"cinemas"`
}

type MovieShowtimes struct {
	Movie
	Shows []Show `json:"shows"`
}

type CinemaMoviesResponse struct {
	Movies []MovieShowtimes `json:"movies"`
}

type SeatStatusResponse struct {
	ShowID      int             `json:"showId"`
	BookedSeats []string        `json:"bookedSeats"`
	Price       decimal.Decimal `json:"price"`
}

type CreateBookingRequest struct {
	UserID int      `json:"userId" validate:"required,min=1"`
	ShowID int      `json:"showId" validate:"required,min=1"`
	Seats  []string `json:"seats" validate:"required,min=1,max=6,unique,dive,seat_label"`
}

type BookingResponse struct {
	BookingID   int             `json:"bookingId"`
	Reference   uuid.UUID       `json:"reference"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Seats       []string        `json:"seats"`
}

type BookingSummary struct {
	BookingID   int             `json:"bookingId"`
	MovieTitle  string          `json:"movieTitle"`
	CinemaName  string          `json:"cinemaName"`
	ScreenName  string          `json:"screenName"`
	ShowTime    time.Time       `json:"showTime"`
	Seats       []string        `json:"seats"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type UserBookingListResponse struct {
	Bookings []BookingSummary `json:"bookings"`
}
