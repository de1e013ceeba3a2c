package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mediasocial/internal/domain"
)

type VoteRepository struct {
	mock.Mock
}

func (m *VoteRepository) AddVoter(ctx context.Context, entityType domain.EntityType, entityID, voterID int64, notifID *int64, flag domain.VoteFlag) error {
	args := m.Called(ctx, entityType, entityID, voterID, notifID, flag)
	return args.Error(0)
}

func (m *VoteRepository) UpdateVoter(ctx context.Context, entityType domain.EntityType, entityID, voterID int64, notifID *int64, flag domain.VoteFlag) error {
	args := m.Called(ctx, entityType, entityID, voterID, notifID, flag)
	return args.Error(0)
}

func (m *VoteRepository) RemoveVoter(ctx context.Context, entityType domain.EntityType, entityID, voterID int64) error {
	args := m.Called(ctx, entityType, entityID, voterID)
	return args.Error(0)
}

func (m *VoteRepository) GetVoters(ctx context.Context, entityType domain.EntityType, entityID int64) ([]domain.Voter, error) {
	args := m.Called(ctx, entityType, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Voter), args.Error(1)
}

func (m *VoteRepository) GetVotedNotifID(ctx context.Context, entityType domain.EntityType, entityID int64, flag domain.VoteFlag) (int64, error) {
	args := m.Called(ctx, entityType, entityID, flag)
	return args.Get(0).(int64), args.Error(1)
}

func (m *VoteRepository) GetVote(ctx context.Context, entityType domain.EntityType, entityID, voterID int64) (*domain.Vote, error) {
	args := m.Called(ctx, entityType, entityID, voterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vote), args.Error(1)
}
