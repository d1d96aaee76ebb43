package mocks

import (
	"context"

	"github.com/cinetick/cinetick/internal/domain"
)

type MockCinemaRepo struct {
	domain.CinemaRepository
	GetAllFunc     func(ctx context.Context) ([]domain.Cinema, error)
	GetByCityFunc  func(ctx context.Context, city string) ([]domain.Cinema, error)
	GetByMovieFunc func(ctx context.Context, movieID int) ([]domain.CinemaShows, error)
}

func (m *MockCinemaRepo) GetAll(ctx context.Context) ([]domain.Cinema, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockCinemaRepo) GetByCity(ctx context.Context, city string) ([]domain.Cinema, error) {
	return m.GetByCityFunc(ctx, city)
}

func (m *MockCinemaRepo) GetByMovie(ctx context.Context, movieID int) ([]domain.CinemaShows, error) {
	return m.GetByMovieFunc(ctx, movieID)
}
