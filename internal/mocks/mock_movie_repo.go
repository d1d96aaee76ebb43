package mocks

import (
	"context"

	"github.com/cinetick/cinetick/internal/domain"
)

type MockMovieRepo struct {
	domain.MovieRepository
	GetAllFunc      func(ctx context.Context) ([]domain.Movie, error)
	GetByCinemaFunc func(ctx context.Context, cinemaID int) ([]domain.MovieShows, error)
}

func (m *MockMovieRepo) GetAll(ctx context.Context) ([]domain.Movie, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockMovieRepo) GetByCinema(ctx context.Context, cinemaID int) ([]domain.MovieShows, error) {
	return m.GetByCinemaFunc(ctx, cinemaID)
}
