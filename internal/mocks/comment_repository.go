package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mediasocial/internal/domain"
)

type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) Add(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *CommentRepository) Get(ctx context.Context, id int64) (*domain.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *CommentRepository) GetByText(ctx context.Context, body string) (*domain.Comment, error) {
	args := m.Called(ctx, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *CommentRepository) Remove(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CommentRepository) UpdateText(ctx context.Context, id int64, text string) error {
	args := m.Called(ctx, id, text)
	return args.Error(0)
}

func (m *CommentRepository) GetSubComments(ctx context.Context, parentID int64, limit int) ([]domain.Comment, error) {
	args := m.Called(ctx, parentID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *CommentRepository) GetSubCommentCount(ctx context.Context, parentID int64) (int64, error) {
	args := m.Called(ctx, parentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CommentRepository) GetRootComments(ctx context.Context, kind domain.ContextKind, contextID int64) ([]domain.Comment, error) {
	args := m.Called(ctx, kind, contextID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *CommentRepository) LinkRootComment(ctx context.Context, kind domain.ContextKind, contextID, commentID int64) error {
	args := m.Called(ctx, kind, contextID, commentID)
	return args.Error(0)
}

func (m *CommentRepository) NextID(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
