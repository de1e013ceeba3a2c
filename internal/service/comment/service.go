package comment

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"mediasocial/internal/domain"
	"mediasocial/internal/repository"
)

const (
	defaultReplyLimit = 10
	maxReplyLimit     = 100
)

type Service interface {
	Create(ctx context.Context, posterID int64, input domain.CreateCommentInput) (*domain.Comment, error)
	Get(ctx context.Context, id int64) (*domain.Comment, error)
	FindByText(ctx context.Context, body string) (*domain.Comment, error)
	UpdateText(ctx context.Context, userID, id int64, input domain.UpdateCommentInput) (*domain.Comment, error)
	Delete(ctx context.Context, userID, id int64) error
	ListReplies(ctx context.Context, parentID int64, limit int) ([]domain.Comment, error)
	CountReplies(ctx context.Context, parentID int64) (int64, error)
	ListRootComments(ctx context.Context, kind domain.ContextKind, contextID int64) ([]domain.Comment, error)
	Vote(ctx context.Context, voterID, commentID int64, flag domain.VoteFlag) (*domain.Comment, error)
	Unvote(ctx context.Context, voterID, commentID int64) (*domain.Comment, error)

	SetNotificationService(notifier Notifier)
}

// Notifier creates the notifications comments and votes point at.
type Notifier interface {
	NotifyCommentReply(ctx context.Context, parent, reply *domain.Comment) error
	NotifyCommentVoted(ctx context.Context, comment *domain.Comment, flag domain.VoteFlag) (int64, error)
}

type service struct {
	commentRepo repository.CommentRepository
	voteRepo    repository.VoteRepository
	userRepo    repository.UserRepository
	notifRepo   repository.NotificationRepository
	notifier    Notifier
	log         *zap.Logger
	now         func() time.Time
}

func NewService(commentRepo repository.CommentRepository, voteRepo repository.VoteRepository, userRepo repository.UserRepository, notifRepo repository.NotificationRepository, log *zap.Logger) Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{
		commentRepo: commentRepo,
		voteRepo:    voteRepo,
		userRepo:    userRepo,
		notifRepo:   notifRepo,
		log:         log.Named("comment"),
		now:         time.Now,
	}
}

func (s *service) SetNotificationService(notifier Notifier) {
	s.notifier = notifier
}

func (s *service) Create(ctx context.Context, posterID int64, input domain.CreateCommentInput) (*domain.Comment, error) {
	body, err := validateBody(input.Body)
	if err != nil {
		return nil, err
	}
	if input.Context != nil {
		if input.ParentID != nil {
			return nil, domain.NewValidationError("context", "only root comments can be attached to a context")
		}
		if !input.Context.Kind.IsValid() {
			return nil, domain.NewValidationError("context", "unknown kind "+string(input.Context.Kind))
		}
	}

	poster, err := s.userRepo.GetSimple(ctx, posterID)
	if err != nil {
		return nil, err
	}
	if input.NotifID != nil {
		if err := s.checkNotificationOwner(ctx, posterID, *input.NotifID); err != nil {
			return nil, err
		}
	}

	var parent *domain.Comment
	if input.ParentID != nil {
		parent, err = s.commentRepo.Get(ctx, *input.ParentID)
		if err != nil {
			return nil, err
		}
	}

	id, err := s.commentRepo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ID:           id,
		Poster:       poster,
		ParentID:     input.ParentID,
		ParentRootID: id,
		NotifID:      input.NotifID,
		Body:         body,
		CreatedAt:    s.now().UTC().Truncate(time.Second),
	}
	if parent != nil {
		comment.ParentRootID = parent.ParentRootID
	}

	if err := s.commentRepo.Add(ctx, comment); err != nil {
		return nil, err
	}

	if input.Context != nil {
		if err := s.commentRepo.LinkRootComment(ctx, input.Context.Kind, input.Context.ID, id); err != nil {
			// a root created for a context must stay linked to it
			if rmErr := s.commentRepo.Remove(ctx, id); rmErr != nil {
				s.log.Error("remove unlinked comment", zap.Int64("comment_id", id), zap.Error(rmErr))
			}
			return nil, err
		}
	}

	if parent != nil && s.notifier != nil && parent.Poster.ID != posterID {
		if err := s.notifier.NotifyCommentReply(ctx, parent, comment); err != nil {
			s.log.Warn("notify comment reply", zap.Int64("comment_id", id), zap.Error(err))
		}
	}

	s.log.Debug("comment created",
		zap.Int64("comment_id", id),
		zap.Int64("poster_id", posterID),
		zap.Int64("parent_root_id", comment.ParentRootID),
	)
	return s.commentRepo.Get(ctx, id)
}

func (s *service) Get(ctx context.Context, id int64) (*domain.Comment, error) {
	return s.commentRepo.Get(ctx, id)
}

func (s *service) FindByText(ctx context.Context, body string) (*domain.Comment, error) {
	if body == "" {
		return nil, domain.NewValidationError("body", "required")
	}
	return s.commentRepo.GetByText(ctx, body)
}

func (s *service) UpdateText(ctx context.Context, userID, id int64, input domain.UpdateCommentInput) (*domain.Comment, error) {
	body, err := validateBody(input.Body)
	if err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment.Poster.ID != userID {
		return nil, &domain.ForbiddenError{Reason: "insufficient permissions to edit this comment"}
	}

	if err := s.commentRepo.UpdateText(ctx, id, body); err != nil {
		return nil, err
	}
	comment.Body = body
	return comment, nil
}

func (s *service) Delete(ctx context.Context, userID, id int64) error {
	comment, err := s.commentRepo.Get(ctx, id)
	if err != nil {
		return err
	}
	if comment.Poster.ID != userID {
		return &domain.ForbiddenError{Reason: "insufficient permissions to delete this comment"}
	}
	return s.commentRepo.Remove(ctx, id)
}

func (s *service) ListReplies(ctx context.Context, parentID int64, limit int) ([]domain.Comment, error) {
	if limit <= 0 {
		limit = defaultReplyLimit
	}
	if limit > maxReplyLimit {
		limit = maxReplyLimit
	}
	return s.commentRepo.GetSubComments(ctx, parentID, limit)
}

func (s *service) CountReplies(ctx context.Context, parentID int64) (int64, error) {
	return s.commentRepo.GetSubCommentCount(ctx, parentID)
}

func (s *service) ListRootComments(ctx context.Context, kind domain.ContextKind, contextID int64) ([]domain.Comment, error) {
	if !kind.IsValid() {
		return nil, domain.NewValidationError("context kind", "unknown kind "+string(kind))
	}
	return s.commentRepo.GetRootComments(ctx, kind, contextID)
}

// Vote records or changes voterID's vote. Repeating the current vote is a no-op.
func (s *service) Vote(ctx context.Context, voterID, commentID int64, flag domain.VoteFlag) (*domain.Comment, error) {
	if !flag.IsValid() {
		return nil, domain.NewValidationError("flag", "must be 1 or -1")
	}

	comment, err := s.commentRepo.Get(ctx, commentID)
	if err != nil {
		return nil, err
	}

	current, err := s.voteRepo.GetVote(ctx, domain.EntityComment, commentID, voterID)
	switch {
	case err == nil && current.Flag == flag:
		return comment, nil
	case err == nil:
		notifID, err := s.voteNotification(ctx, comment, voterID, flag)
		if err != nil {
			return nil, err
		}
		if err := s.voteRepo.UpdateVoter(ctx, domain.EntityComment, commentID, voterID, notifID, flag); err != nil {
			return nil, err
		}
	case errors.Is(err, domain.ErrNotFound):
		notifID, err := s.voteNotification(ctx, comment, voterID, flag)
		if err != nil {
			return nil, err
		}
		if err := s.voteRepo.AddVoter(ctx, domain.EntityComment, commentID, voterID, notifID, flag); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return s.commentRepo.Get(ctx, commentID)
}

func (s *service) Unvote(ctx context.Context, voterID, commentID int64) (*domain.Comment, error) {
	if _, err := s.commentRepo.Get(ctx, commentID); err != nil {
		return nil, err
	}
	if err := s.voteRepo.RemoveVoter(ctx, domain.EntityComment, commentID, voterID); err != nil {
		return nil, err
	}
	return s.commentRepo.Get(ctx, commentID)
}

// voteNotification returns the notification a new or flipped vote is attached
// to. Votes with the same flag share one notification per comment.
func (s *service) voteNotification(ctx context.Context, comment *domain.Comment, voterID int64, flag domain.VoteFlag) (*int64, error) {
	if s.notifier == nil || comment.Poster.ID == voterID {
		return nil, nil
	}

	notifID, err := s.voteRepo.GetVotedNotifID(ctx, domain.EntityComment, comment.ID, flag)
	if err == nil {
		return &notifID, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	notifID, err = s.notifier.NotifyCommentVoted(ctx, comment, flag)
	if err != nil {
		s.log.Warn("notify comment vote", zap.Int64("comment_id", comment.ID), zap.Error(err))
		return nil, nil
	}
	return &notifID, nil
}

// checkNotificationOwner allows a comment to reference only a notification its
// poster received. Other users' notifications are reported as missing.
func (s *service) checkNotificationOwner(ctx context.Context, posterID, notifID int64) error {
	notif, err := s.notifRepo.GetByID(ctx, notifID)
	if err != nil {
		return err
	}
	if notif.UserID != posterID {
		return domain.NewNotFoundError("notification", notifID)
	}
	return nil
}

func validateBody(body string) (string, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return "", domain.NewValidationError("body", "required")
	}
	if utf8.RuneCountInString(body) > domain.MaxCommentLength {
		return "", domain.NewValidationError("body", "too long")
	}
	return body, nil
}
