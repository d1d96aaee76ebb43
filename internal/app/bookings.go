package app

import (
	"errors"
	"net/http"
	"slices"

	"github.com/cinetick/cinetick/api"
	"github.com/cinetick/cinetick/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateBookingHandler books seats for a show. The flow is: validate the
// request, pre-check the requested seats against the ledger, then hand the
// booking to the repository, whose transactional insert is the authoritative
// conflict check. The pre-check can act on a stale snapshot; only the commit
// decides who wins a contested seat.
func (app *Application) CreateBookingHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateBookingRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	show, err := app.showRepo.GetById(r.Context(), input.ShowID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	bookedSeats, err := app.bookedSeats(r.Context(), input.ShowID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if conflicts := intersect(input.Seats, bookedSeats); len(conflicts) > 0 {
		logger.Warn("booking rejected at pre-check", "show_id", input.ShowID, "conflicts", conflicts)
		app.seatsUnavailableResponse(w, r, conflicts)
		return
	}

	seats := slices.Clone(input.Seats)
	slices.Sort(seats)

	booking := domain.Booking{
		Reference:   uuid.New(),
		UserID:      input.UserID,
		ShowID:      input.ShowID,
		Seats:       seats,
		TotalAmount: show.Price.Mul(decimal.NewFromInt(int64(len(seats)))),
	}

	err = app.bookingRepo.Create(r.Context(), &booking)
	if err != nil {
		var seatsErr *domain.SeatsUnavailableError

		switch {
		case errors.As(err, &seatsErr):
			conflicts := seatsErr.Seats
			if len(conflicts) == 0 {
				conflicts = app.commitConflicts(r, input.ShowID, seats)
			}

			logger.Warn("booking lost seat race at commit", "show_id", input.ShowID, "conflicts", conflicts)
			app.seatsUnavailableResponse(w, r, conflicts)
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.invalidateBookedSeats(r.Context(), input.ShowID)

	logger.Info("booking created",
		"booking_id", booking.ID,
		"reference", booking.Reference,
		"show_id", booking.ShowID,
		"seat_count", len(booking.Seats),
		"total_amount", booking.TotalAmount,
	)

	resp := api.BookingResponse{
		BookingID:   booking.ID,
		Reference:   booking.Reference,
		TotalAmount: booking.TotalAmount,
		Seats:       booking.Seats,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// commitConflicts recovers the conflicting labels after a commit-time seat
// race by re-reading the authoritative ledger, bypassing the cache.
func (app *Application) commitConflicts(r *http.Request, showID int, seats []string) []string {
	bookedSeats, err := app.bookingRepo.GetBookedSeats(r.Context(), showID)
	if err != nil {
		app.contextGetLogger(r).Warn("could not resolve conflicting seats", "show_id", showID, "error", err)
		return nil
	}

	return intersect(seats, bookedSeats)
}

func intersect(requested, booked []string) []string {
	taken := make(map[string]bool, len(booked))
	for _, seat := range booked {
		taken[seat] = true
	}

	var conflicts []string
	for _, seat := range requested {
		if taken[seat] {
			conflicts = append(conflicts, seat)
		}
	}

	return conflicts
}
