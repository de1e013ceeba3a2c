package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"mediasocial/internal/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, notif *domain.Notification) error
	GetByID(ctx context.Context, id int64) (*domain.Notification, error)
	ListByUser(ctx context.Context, userID int64, unreadOnly bool, params domain.PaginationParams) ([]domain.Notification, int64, error)
	MarkAsRead(ctx context.Context, id int64) error
	MarkAllAsRead(ctx context.Context, userID int64) error
	CountUnread(ctx context.Context, userID int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}

const notificationColumns = `notification_id, user_id, type, title, message, entity_type, entity_id, is_read, read_at, created_at`

type notificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notif *domain.Notification) error {
	query := `
		INSERT INTO notifications (user_id, type, title, message, entity_type, entity_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING notification_id, created_at`

	err := r.db.QueryRowxContext(ctx, query,
		notif.UserID, notif.Type, notif.Title, notif.Message, notif.EntityType, notif.EntityID,
	).Scan(&notif.ID, &notif.CreatedAt)
	if err != nil {
		if pqErrorCode(err) == pqForeignKeyViolation {
			return domain.NewValidationError("user_id", "recipient does not exist")
		}
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

func (r *notificationRepository) GetByID(ctx context.Context, id int64) (*domain.Notification, error) {
	var notif domain.Notification
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE notification_id = $1`
	err := r.db.GetContext(ctx, &notif, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("notification", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get notification %d: %w", id, err)
	}
	return &notif, nil
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID int64, unreadOnly bool, params domain.PaginationParams) ([]domain.Notification, int64, error) {
	params.Validate()

	where := `WHERE user_id = $1`
	if unreadOnly {
		where += ` AND is_read = false`
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM notifications ` + where
	if err := r.db.GetContext(ctx, &total, countQuery, userID); err != nil {
		return nil, 0, fmt.Errorf("count notifications: %w", err)
	}

	query := `
		SELECT ` + notificationColumns + ` FROM notifications
		` + where + `
		ORDER BY created_at DESC, notification_id DESC
		LIMIT $2 OFFSET $3`

	notifications := []domain.Notification{}
	if err := r.db.SelectContext(ctx, &notifications, query, userID, params.PageSize, params.Offset()); err != nil {
		return nil, 0, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, total, nil
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id int64) error {
	query := `UPDATE notifications SET is_read = true, read_at = COALESCE(read_at, ` + utcNow + `) WHERE notification_id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("mark notification %d read: %w", id, err)
	}
	return expectAffected(res, "notification", id)
}

func (r *notificationRepository) MarkAllAsRead(ctx context.Context, userID int64) error {
	query := `UPDATE notifications SET is_read = true, read_at = ` + utcNow + ` WHERE user_id = $1 AND is_read = false`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("mark notifications of user %d read: %w", userID, err)
	}
	return nil
}

func (r *notificationRepository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = false`
	if err := r.db.GetContext(ctx, &count, query, userID); err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return count, nil
}

func (r *notificationRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notifications WHERE notification_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete notification %d: %w", id, err)
	}
	return expectAffected(res, "notification", id)
}
