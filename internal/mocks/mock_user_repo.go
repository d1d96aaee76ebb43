package mocks

import (
	"context"

	"github.com/cinetick/cinetick/internal/domain"
)

type MockUserRepo struct {
	domain.UserRepository
	UpsertFunc  func(ctx context.Context, user *domain.User) (bool, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.User, error)
}

func (m *MockUserRepo) Upsert(ctx context.Context, user *domain.User) (bool, error) {
	return m.UpsertFunc(ctx, user)
}

func (m *MockUserRepo) GetById(ctx context.Context, id int) (*domain.User, error) {
	return m.GetByIdFunc(ctx, id)
}
