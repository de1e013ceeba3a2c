package notification

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mediasocial/internal/domain"
	"mediasocial/internal/mocks"
)

var (
	alice = &domain.UserProfile{ID: 42, Username: "alice"}
	bob   = &domain.UserProfile{ID: 43, Username: "bob"}
)

func TestService_NotifyCommentVoted(t *testing.T) {
	ctx := context.Background()
	comment := &domain.Comment{ID: 1, Poster: alice, Body: "a take"}

	testCases := []struct {
		name     string
		flag     domain.VoteFlag
		wantType domain.NotificationType
	}{
		{"Upvote", domain.VoteUp, domain.NotifCommentUpvoted},
		{"Downvote", domain.VoteDown, domain.NotifCommentDownvoted},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(mocks.NotificationRepository)
			repo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
				return n.UserID == 42 && n.Type == tc.wantType &&
					n.EntityType == domain.EntityComment && n.EntityID == 1
			})).Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Notification).ID = 7
			}).Return(nil).Once()

			id, err := NewService(repo, "en", nil).NotifyCommentVoted(ctx, comment, tc.flag)
			require.NoError(t, err)
			assert.Equal(t, int64(7), id)
			repo.AssertExpectations(t)
		})
	}
}

func TestService_NotifyCommentReply(t *testing.T) {
	repo := new(mocks.NotificationRepository)
	parent := &domain.Comment{ID: 1, Poster: alice}
	reply := &domain.Comment{ID: 2, Poster: bob, Body: strings.Repeat("word ", 30)}

	repo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.UserID == 42 && n.Type == domain.NotifCommentReply && n.EntityID == 2 &&
			strings.HasPrefix(n.Message, "bob replied") && strings.Contains(n.Message, "...")
	})).Return(nil).Once()

	require.NoError(t, NewService(repo, "en", nil).NotifyCommentReply(context.Background(), parent, reply))
	repo.AssertExpectations(t)
}

func TestService_MarkAsRead(t *testing.T) {
	ctx := context.Background()

	t.Run("Own Notification", func(t *testing.T) {
		repo := new(mocks.NotificationRepository)
		repo.On("GetByID", mock.Anything, int64(7)).Return(&domain.Notification{ID: 7, UserID: 42}, nil).Once()
		repo.On("MarkAsRead", mock.Anything, int64(7)).Return(nil).Once()

		assert.NoError(t, NewService(repo, "en", nil).MarkAsRead(ctx, 42, 7))
		repo.AssertExpectations(t)
	})

	t.Run("Someone Else's", func(t *testing.T) {
		repo := new(mocks.NotificationRepository)
		repo.On("GetByID", mock.Anything, int64(7)).Return(&domain.Notification{ID: 7, UserID: 43}, nil).Once()

		assert.ErrorIs(t, NewService(repo, "en", nil).MarkAsRead(ctx, 42, 7), domain.ErrNotFound)
		repo.AssertNotCalled(t, "MarkAsRead", mock.Anything, mock.Anything)
	})
}

func TestService_List(t *testing.T) {
	repo := new(mocks.NotificationRepository)
	params := domain.PaginationParams{Page: 1, PageSize: 20}
	repo.On("ListByUser", mock.Anything, int64(42), false, params).
		Return([]domain.Notification{{ID: 1}, {ID: 2}}, int64(25), nil).Once()

	result, err := NewService(repo, "en", nil).List(context.Background(), 42, false, domain.PaginationParams{})
	require.NoError(t, err)
	assert.Len(t, result.Data, 2)
	assert.Equal(t, 2, result.TotalPages)
	assert.True(t, result.HasNext)
	repo.AssertExpectations(t)
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Own Notification", func(t *testing.T) {
		repo := new(mocks.NotificationRepository)
		repo.On("GetByID", mock.Anything, int64(7)).Return(&domain.Notification{ID: 7, UserID: 42}, nil).Once()
		repo.On("Delete", mock.Anything, int64(7)).Return(nil).Once()

		assert.NoError(t, NewService(repo, "en", nil).Delete(ctx, 42, 7))
		repo.AssertExpectations(t)
	})

	t.Run("Someone Else's", func(t *testing.T) {
		repo := new(mocks.NotificationRepository)
		repo.On("GetByID", mock.Anything, int64(7)).Return(&domain.Notification{ID: 7, UserID: 43}, nil).Once()

		assert.ErrorIs(t, NewService(repo, "en", nil).Delete(ctx, 42, 7), domain.ErrNotFound)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
