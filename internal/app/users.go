package app

import (
	"errors"
	"net/http"

	"github.com/cinetick/cinetick/api"
	"github.com/cinetick/cinetick/internal/domain"
)

// UpsertUserHandler creates a user keyed by email, or returns the existing
// one (refreshing the name) when the email is already known.
func (app *Application) UpsertUserHandler(w http.ResponseWriter, r *http.Request) {
	var input api.UpsertUserRequest

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

	user := domain.User{
		Name:  input.Name,
		Email: input.Email,
	}

	created, err := app.userRepo.Upsert(r.Context(), &user)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	resp := api.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}

	err = app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetUserBookingsHandler lists a user's bookings, newest first.
func (app *Application) GetUserBookingsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := readIDParam(r, "userId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if _, err := app.userRepo.GetById(r.Context(), userID); err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	summaries, err := app.bookingRepo.GetSummariesByUser(r.Context(), userID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.UserBookingListResponse{
		Bookings: toBookingSummaries(summaries),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toBookingSummaries(summaries []domain.BookingSummary) []api.BookingSummary {
	bookingSummaries := make([]api.BookingSummary, len(summaries))

	for i, v := range summaries {
		bookingSummaries[i] = api.BookingSummary{
			BookingID:   v.BookingID,
			MovieTitle:  v.MovieTitle,
			CinemaName:  v.CinemaName,
			ScreenName:  v.ScreenName,
			ShowTime:    v.ShowTime,
			Seats:       v.Seats,
			TotalAmount: v.TotalAmount,
			CreatedAt:   v.CreatedAt,
		}
	}

	return bookingSummaries
}
