package repository

import (
	"context"

	"github.com/cinetick/cinetick/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresCinemaRepository struct {
	db *pgxpool.Pool
}

func NewPostgresCinemaRepository(db *pgxpool.Pool) *PostgresCinemaRepository {
	return &PostgresCinemaRepository{
		db: db,
	}
}

func (p *PostgresCinemaRepository) GetAll(ctx context.Context) ([]domain.Cinema, error) {
	query := `
		SELECT id, name, location
		FROM cinemas
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCinemas(rows)
}

func (p *PostgresCinemaRepository) GetByCity(ctx context.Context, city string) ([]domain.Cinema, error) {
	query := `
		SELECT id, name, location
		FROM cinemas
		WHERE location LIKE '%, ' || $1
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query, city)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCinemas(rows)
}

func scanCinemas(rows pgx.Rows) ([]domain.Cinema, error) {
	cinemas := make([]domain.Cinema, 0)

	for rows.Next() {
		var cinema domain.Cinema

		err := rows.Scan(&cinema.ID, &cinema.Name, &cinema.Location)
		if err != nil {
			return nil, err
		}

		cinemas = append(cinemas, cinema)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return cinemas, nil
}

// GetByMovie returns the cinemas screening a movie, each with its shows for
// that movie. Rows arrive ordered by cinema, so grouping is a single pass.
func (p *PostgresCinemaRepository) GetByMovie(ctx context.Context, movieID int) ([]domain.CinemaShows, error) {
	query := `
		SELECT c.id, c.name, c.location, s.id, s.start_time, s.price, sc.name
		FROM shows s
		JOIN screens sc ON s.screen_id = sc.id
		JOIN cinemas c ON sc.cinema_id = c.id
		WHERE s.movie_id = $1
		ORDER BY c.id, s.start_time, s.id
	`

	rows, err := p.db.Query(ctx, query, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cinemas := make([]domain.CinemaShows, 0)

	for rows.Next() {
		var (
			cinema domain.Cinema
			show   domain.ShowListing
		)

		err := rows.Scan(
			&cinema.ID,
			&cinema.Name,
			&cinema.Location,
			&show.ID,
			&show.StartTime,
			&show.Price,
			&show.ScreenName,
		)
		if err != nil {
			return nil, err
		}

		if len(cinemas) == 0 || cinemas[len(cinemas)-1].ID != cinema.ID {
			cinemas = append(cinemas, domain.CinemaShows{Cinema: cinema})
		}

		last := &cinemas[len(cinemas)-1]
		last.Shows = append(last.Shows, show)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cinemas, nil
}
