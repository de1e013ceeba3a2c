package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mediasocial/internal/domain"
)

type Notifier struct {
	mock.Mock
}

func (m *Notifier) NotifyCommentReply(ctx context.Context, parent, reply *domain.Comment) error {
	args := m.Called(ctx, parent, reply)
	return args.Error(0)
}

func (m *Notifier) NotifyCommentVoted(ctx context.Context, comment *domain.Comment, flag domain.VoteFlag) (int64, error) {
	args := m.Called(ctx, comment, flag)
	return args.Get(0).(int64), args.Error(1)
}
