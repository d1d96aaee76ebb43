package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cinetick/cinetick/api"
	"github.com/cinetick/cinetick/internal/domain"
	"github.com/redis/go-redis/v9"
)

// bookedSeatsTTL bounds how stale a cached ledger snapshot may get when an
// invalidation is lost. The cache only ever feeds reads and the advisory
// pre-check; the commit itself always runs against the database.
const bookedSeatsTTL = 30 * time.Second

func bookedSeatsKey(showID int) string {
	return fmt.Sprintf("booked_seats:%d", showID)
}

// GetSeatStatusHandler reports the booked seats and the ticket price of a
// show.
func (app *Application) GetSeatStatusHandler(w http.ResponseWriter, r *http.Request) {
	showID, err := readIDParam(r, "showId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	show, err := app.showRepo.GetById(r.Context(), showID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	bookedSeats, err := app.bookedSeats(r.Context(), showID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.SeatStatusResponse{
		ShowID:      show.ID,
		BookedSeats: bookedSeats,
		Price:       show.Price,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// bookedSeats returns the committed seat ledger of a show, served from the
// Redis cache when possible. A cache outage degrades to a database read.
func (app *Application) bookedSeats(ctx context.Context, showID int) ([]string, error) {
	cached, err := app.redis.Get(ctx, bookedSeatsKey(showID)).Bytes()
	if err == nil {
		var seats []string
		if err := json.Unmarshal(cached, &seats); err == nil {
			return seats, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		app.logger.Warn("seat ledger cache read failed", "show_id", showID, "error", err)
	}

	seats, err := app.bookingRepo.GetBookedSeats(ctx, showID)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(seats)
	if err != nil {
		return nil, err
	}

	err = app.redis.Set(ctx, bookedSeatsKey(showID), payload, bookedSeatsTTL).Err()
	if err != nil {
		app.logger.Warn("seat ledger cache write failed", "show_id", showID, "error", err)
	}

	return seats, nil
}

// invalidateBookedSeats drops the cached ledger of a show after a commit.
// Failure is tolerable, the entry expires on its own.
func (app *Application) invalidateBookedSeats(ctx context.Context, showID int) {
	err := app.redis.Del(ctx, bookedSeatsKey(showID)).Err()
	if err != nil {
		app.logger.Warn("seat ledger cache invalidation failed", "show_id", showID, "error", err)
	}
}
