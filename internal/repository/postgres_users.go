package repository

import (
	"context"
	"errors"

	"github.com/cinetick/cinetick/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{
		db: db,
	}
}

func (p *PostgresUserRepository) Upsert(ctx context.Context, user *domain.User) (bool, error) {
	// xmax = 0 distinguishes a freshly inserted row from an updated one.
	query := `
		INSERT INTO users (name, email)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, created_at, (xmax = 0)
	`

	var created bool

	err := p.db.QueryRow(ctx, query, user.Name, user.Email).Scan(
		&user.ID,
		&user.CreatedAt,
		&created,
	)
	if err != nil {
		return false, err
	}

	return created, nil
}

func (p *PostgresUserRepository) GetById(ctx context.Context, id int) (*domain.User, error) {
	query := `
		SELECT id, name, email, created_at
		FROM users
		WHERE id = $1
	`

	var user domain.User

	err := p.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &user, nil
}
