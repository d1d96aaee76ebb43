package repository

import (
	"context"
	"errors"

	"github.com/cinetick/cinetick/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

// Create writes the booking row and one booking_seats row per label in a
// single transaction. The primary key on booking_seats (show_id, seat_label)
// is the serialization point: a concurrent booking that claims an overlapping
// seat makes the whole transaction abort with a unique violation, so no seat
// can ever be committed twice and no partial booking survives a conflict.
func (p *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO bookings (reference, user_id, show_id, total_amount)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at
		`

		err := tx.QueryRow(
			ctx,
			query,
			booking.Reference,
			booking.UserID,
			booking.ShowID,
			booking.TotalAmount).Scan(&booking.ID, &booking.CreatedAt)

		if err != nil {
			return err
		}

		rows := make([][]any, 0, len(booking.Seats))
		for _, seat := range booking.Seats {
			rows = append(rows, []any{
				booking.ID,
				booking.ShowID,
				seat,
			})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"booking_seats"},
			[]string{"booking_id", "show_id", "seat_label"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return err
		}

		return nil
	})

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				return &domain.SeatsUnavailableError{}
			case pgerrcode.ForeignKeyViolation:
				return domain.ErrRecordNotFound
			}
		}

		return err
	}

	return nil
}

func (p *PostgresBookingRepository) GetBookedSeats(ctx context.Context, showID int) ([]string, error) {
	query := `
		SELECT seat_label
		FROM booking_seats
		WHERE show_id = $1
		ORDER BY seat_label
	`

	rows, err := p.db.Query(ctx, query, showID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]string, 0)

	for rows.Next() {
		var seat string

		if err := rows.Scan(&seat); err != nil {
			return nil, err
		}

		seats = append(seats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}

func (p *PostgresBookingRepository) GetSummariesByUser(ctx context.Context, userID int) ([]domain.BookingSummary, error) {
	query := `
		SELECT
			b.id,
			m.title,
			c.name,
			sc.name,
			s.start_time,
			array_agg(bs.seat_label ORDER BY bs.seat_label),
			b.total_amount,
			b.created_at
		FROM bookings b
		JOIN booking_seats bs ON bs.booking_id = b.id
		JOIN shows s ON b.show_id = s.id
		JOIN movies m ON s.movie_id = m.id
		JOIN screens sc ON s.screen_id = sc.id
		JOIN cinemas c ON sc.cinema_id = c.id
		WHERE b.user_id = $1
		GROUP BY b.id, m.title, c.name, sc.name, s.start_time
		ORDER BY b.created_at DESC
	`

	rows, err := p.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]domain.BookingSummary, 0)

	for rows.Next() {
		var summary domain.BookingSummary

		err := rows.Scan(
			&summary.BookingID,
			&summary.MovieTitle,
			&summary.CinemaName,
			&summary.ScreenName,
			&summary.ShowTime,
			&summary.Seats,
			&summary.TotalAmount,
			&summary.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
