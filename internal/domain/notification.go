package domain

import "time"

type Notification struct {
	ID         int64            `json:"id" db:"notification_id"`
	UserID     int64            `json:"user_id" db:"user_id"`
	Type       NotificationType `json:"type" db:"type"`
	Title      string           `json:"title" db:"title"`
	Message    string           `json:"message" db:"message"`
	EntityType EntityType       `json:"entity_type" db:"entity_type"`
	EntityID   int64            `json:"entity_id" db:"entity_id"`
	IsRead     bool             `json:"is_read" db:"is_read"`
	ReadAt     *time.Time       `json:"read_at,omitempty" db:"read_at"`
	CreatedAt  time.Time        `json:"created_at" db:"created_at"`
}

type NotificationType string

const (
	NotifCommentReply     NotificationType = "COMMENT_REPLY"
	NotifCommentUpvoted   NotificationType = "COMMENT_UPVOTED"
	NotifCommentDownvoted NotificationType = "COMMENT_DOWNVOTED"
)
