package domain

import (
	"context"
	"time"
)

type User struct {
	ID        int
	Name      string
	Email     string
	CreatedAt time.Time
}

type UserRepository interface {
	// Upsert creates the user, or updates the stored name when a user with
	// the same email already exists. It reports whether a new row was
	// created and fills in ID and CreatedAt either way.
	Upsert(ctx context.Context, user *User) (created bool, err error)
	GetById(ctx context.Context, id int) (*User, error)
}
