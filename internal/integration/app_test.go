package integration_test

import (
	"log/slog"
	"os"

	"github.com/cinetick/cinetick/internal/app"
	"github.com/cinetick/cinetick/internal/repository"
	appvalidator "github.com/cinetick/cinetick/internal/validator"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App   *app.Application
	DB    *pgxpool.Pool
	Redis redis.UniversalClient
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	application := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator,
		repository.NewPostgresUserRepository(db),
		repository.NewPostgresCinemaRepository(db),
		repository.NewPostgresMovieRepository(db),
		repository.NewPostgresShowRepository(db),
		repository.NewPostgresBookingRepository(db),
	)

	return &TestApp{
		App:   application,
		DB:    db,
		Redis: redisClient,
	}, nil
}
