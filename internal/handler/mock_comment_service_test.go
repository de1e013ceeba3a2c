package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mediasocial/internal/domain"
	"mediasocial/internal/service/comment"
)

// mockCommentService lives here because the comment package's own tests
// import mocks.

type mockCommentService struct {
	mock.Mock
}

func (m *mockCommentService) comment(args mock.Arguments) (*domain.Comment, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *mockCommentService) comments(args mock.Arguments) ([]domain.Comment, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *mockCommentService) Create(ctx context.Context, posterID int64, input domain.CreateCommentInput) (*domain.Comment, error) {
	return m.comment(m.Called(ctx, posterID, input))
}

func (m *mockCommentService) Get(ctx context.Context, id int64) (*domain.Comment, error) {
	return m.comment(m.Called(ctx, id))
}

func (m *mockCommentService) FindByText(ctx context.Context, body string) (*domain.Comment, error) {
	return m.comment(m.Called(ctx, body))
}

func (m *mockCommentService) UpdateText(ctx context.Context, userID, id int64, input domain.UpdateCommentInput) (*domain.Comment, error) {
	return m.comment(m.Called(ctx, userID, id, input))
}

func (m *mockCommentService) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *mockCommentService) ListReplies(ctx context.Context, parentID int64, limit int) ([]domain.Comment, error) {
	return m.comments(m.Called(ctx, parentID, limit))
}

func (m *mockCommentService) CountReplies(ctx context.Context, parentID int64) (int64, error) {
	args := m.Called(ctx, parentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCommentService) ListRootComments(ctx context.Context, kind domain.ContextKind, contextID int64) ([]domain.Comment, error) {
	return m.comments(m.Called(ctx, kind, contextID))
}

func (m *mockCommentService) Vote(ctx context.Context, voterID, commentID int64, flag domain.VoteFlag) (*domain.Comment, error) {
	return m.comment(m.Called(ctx, voterID, commentID, flag))
}

func (m *mockCommentService) Unvote(ctx context.Context, voterID, commentID int64) (*domain.Comment, error) {
	return m.comment(m.Called(ctx, voterID, commentID))
}

func (m *mockCommentService) SetNotificationService(notifier comment.Notifier) {
	m.Called(notifier)
}
