package notification

import (
	"context"
	"unicode/utf8"

	"go.uber.org/zap"

	"mediasocial/internal/domain"
	"mediasocial/internal/pkg/i18n"
	"mediasocial/internal/repository"
)

const snippetLength = 60

type Service interface {
	List(ctx context.Context, userID int64, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error)
	MarkAsRead(ctx context.Context, userID, id int64) error
	MarkAllAsRead(ctx context.Context, userID int64) error
	GetUnreadCount(ctx context.Context, userID int64) (int64, error)
	Delete(ctx context.Context, userID, id int64) error

	NotifyCommentReply(ctx context.Context, parent, reply *domain.Comment) error
	NotifyCommentVoted(ctx context.Context, comment *domain.Comment, flag domain.VoteFlag) (int64, error)
}

type service struct {
	notifRepo repository.NotificationRepository
	locale    string
	log       *zap.Logger
}

// NewService renders notification texts in locale, falling back to English.
func NewService(notifRepo repository.NotificationRepository, locale string, log *zap.Logger) Service {
	if log == nil {
		log = zap.NewNop()
	}
	if locale == "" {
		locale = i18n.DefaultLocale
	}
	return &service{
		notifRepo: notifRepo,
		locale:    locale,
		log:       log.Named("notification"),
	}
}

func (s *service) List(ctx context.Context, userID int64, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error) {
	params.Validate()
	notifications, total, err := s.notifRepo.ListByUser(ctx, userID, unreadOnly, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Notification]{}, err
	}
	return domain.NewPaginatedResponse(notifications, params.Page, params.PageSize, total), nil
}

// MarkAsRead marks one of userID's notifications as read.
func (s *service) MarkAsRead(ctx context.Context, userID, id int64) error {
	if err := s.checkRecipient(ctx, userID, id); err != nil {
		return err
	}
	return s.notifRepo.MarkAsRead(ctx, id)
}

func (s *service) checkRecipient(ctx context.Context, userID, id int64) error {
	notif, err := s.notifRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if notif.UserID != userID {
		// other users' notifications are not revealed
		return domain.NewNotFoundError("notification", id)
	}
	return nil
}

// Delete removes one of userID's notifications. Votes and comments pointing at
// it keep their rows with the reference cleared.
func (s *service) Delete(ctx context.Context, userID, id int64) error {
	if err := s.checkRecipient(ctx, userID, id); err != nil {
		return err
	}
	return s.notifRepo.Delete(ctx, id)
}

func (s *service) MarkAllAsRead(ctx context.Context, userID int64) error {
	return s.notifRepo.MarkAllAsRead(ctx, userID)
}

func (s *service) GetUnreadCount(ctx context.Context, userID int64) (int64, error) {
	return s.notifRepo.CountUnread(ctx, userID)
}

func (s *service) NotifyCommentReply(ctx context.Context, parent, reply *domain.Comment) error {
	notif := &domain.Notification{
		UserID:     parent.Poster.ID,
		Type:       domain.NotifCommentReply,
		Title:      i18n.Translate(s.locale, i18n.KeyReplyTitle),
		Message:    i18n.Sprintf(s.locale, i18n.KeyReplyMessage, reply.Poster.Username, snippet(reply.Body)),
		EntityType: domain.EntityComment,
		EntityID:   reply.ID,
	}
	if err := s.notifRepo.Create(ctx, notif); err != nil {
		return err
	}
	s.log.Debug("reply notification created", zap.Int64("notification_id", notif.ID), zap.Int64("comment_id", reply.ID))
	return nil
}

// NotifyCommentVoted creates the notification shared by every vote with flag
// on the comment and returns its id.
func (s *service) NotifyCommentVoted(ctx context.Context, comment *domain.Comment, flag domain.VoteFlag) (int64, error) {
	notif := &domain.Notification{
		UserID:     comment.Poster.ID,
		Type:       domain.NotifCommentUpvoted,
		Title:      i18n.Translate(s.locale, i18n.KeyUpvoteTitle),
		Message:    i18n.Sprintf(s.locale, i18n.KeyUpvoteMessage, snippet(comment.Body)),
		EntityType: domain.EntityComment,
		EntityID:   comment.ID,
	}
	if flag == domain.VoteDown {
		notif.Type = domain.NotifCommentDownvoted
		notif.Title = i18n.Translate(s.locale, i18n.KeyDownvoteTitle)
		notif.Message = i18n.Sprintf(s.locale, i18n.KeyDownvoteMessage, snippet(comment.Body))
	}

	if err := s.notifRepo.Create(ctx, notif); err != nil {
		return 0, err
	}
	return notif.ID, nil
}

func snippet(body string) string {
	if utf8.RuneCountInString(body) <= snippetLength {
		return body
	}
	runes := []rune(body)
	return string(runes[:snippetLength]) + "..."
}
