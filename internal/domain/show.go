package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Show is a single screening. Shows are immutable once created; the price is
// snapshotted into each booking at commit time.
type Show struct {
	ID        int
	MovieID   int
	ScreenID  int
	StartTime time.Time
	Price     decimal.Decimal
}

type ShowRepository interface {
	GetById(ctx context.Context, id int) (*Show, error)
}
