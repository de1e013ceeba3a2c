package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mediasocial/internal/domain"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) GetSimple(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}
