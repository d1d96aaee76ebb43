package domain

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Cinema struct {
	ID       int
	Name     string
	Location string
}

// City returns the city segment of the cinema location, which by convention
// is everything after the last ", " (e.g. "Juhu Beach Road, Mumbai").
func (c Cinema) City() string {
	if i := strings.LastIndex(c.Location, ", "); i >= 0 {
		return c.Location[i+2:]
	}

	return c.Location
}

type Movie struct {
	ID          int
	Title       string
	Description string
	Duration    int
	Genre       string
	Rating      decimal.Decimal
	PosterURL   string
	Language    string
}

// ShowListing is a show as presented in catalog listings, carrying the
// screen name alongside the scheduling data.
type ShowListing struct {
	ID         int
	StartTime  time.Time
	Price      decimal.Decimal
	ScreenName string
}

type CinemaShows struct {
	Cinema
	Shows []ShowListing
}

type MovieShows struct {
	Movie
	Shows []ShowListing
}

type CinemaRepository interface {
	GetAll(ctx context.Context) ([]Cinema, error)
	GetByCity(ctx context.Context, city string) ([]Cinema, error)
	GetByMovie(ctx context.Context, movieID int) ([]CinemaShows, error)
}

type MovieRepository interface {
	GetAll(ctx context.Context) ([]Movie, error)
	GetByCinema(ctx context.Context, cinemaID int) ([]MovieShows, error)
}
