package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mediasocial/internal/domain"
)

type NotificationService struct {
	mock.Mock
}

func (m *NotificationService) List(ctx context.Context, userID int64, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error) {
	args := m.Called(ctx, userID, unreadOnly, params)
	return args.Get(0).(domain.PaginatedResponse[domain.Notification]), args.Error(1)
}

func (m *NotificationService) MarkAsRead(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *NotificationService) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *NotificationService) MarkAllAsRead(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *NotificationService) GetUnreadCount(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *NotificationService) NotifyCommentReply(ctx context.Context, parent, reply *domain.Comment) error {
	args := m.Called(ctx, parent, reply)
	return args.Error(0)
}

func (m *NotificationService) NotifyCommentVoted(ctx context.Context, c *domain.Comment, flag domain.VoteFlag) (int64, error) {
	args := m.Called(ctx, c, flag)
	return args.Get(0).(int64), args.Error(1)
}
