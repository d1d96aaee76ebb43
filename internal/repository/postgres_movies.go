package repository

import (
	"context"

	"github.com/cinetick/cinetick/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

func (p *PostgresMovieRepository) GetAll(ctx context.Context) ([]domain.Movie, error) {
	query := `
		SELECT id, title, description, duration, genre, rating, poster_url, language
		FROM movies
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := make([]domain.Movie, 0)

	for rows.Next() {
		var movie domain.Movie

		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Description,
			&movie.Duration,
			&movie.Genre,
			&movie.Rating,
			&movie.PosterURL,
			&movie.Language,
		)
		if err != nil {
			return nil, err
		}

		movies = append(movies, movie)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}

func (p *PostgresMovieRepository) GetByCinema(ctx context.Context, cinemaID int) ([]domain.MovieShows, error) {
	query := `
		SELECT
			m.id, m.title, m.description, m.duration, m.genre, m.rating,
			m.poster_url, m.language,
			s.id, s.start_time, s.price, sc.name
		FROM shows s
		JOIN screens sc ON s.screen_id = sc.id
		JOIN movies m ON s.movie_id = m.id
		WHERE sc.cinema_id = $1
		ORDER BY m.id, s.start_time, s.id
	`

	rows, err := p.db.Query(ctx, query, cinemaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := make([]domain.MovieShows, 0)

	for rows.Next() {
		var (
			movie domain.Movie
			show  domain.ShowListing
		)

		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Description,
			&movie.Duration,
			&movie.Genre,
			&movie.Rating,
			&movie.PosterURL,
			&movie.Language,
			&show.ID,
			&show.StartTime,
			&show.Price,
			&show.ScreenName,
		)
		if err != nil {
			return nil, err
		}

		if len(movies) == 0 || movies[len(movies)-1].ID != movie.ID {
			movies = append(movies, domain.MovieShows{Movie: movie})
		}

		last := &movies[len(movies)-1]
		last.Shows = append(last.Shows, show)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}
