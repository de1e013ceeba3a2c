package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"mediasocial/internal/domain"
)

type Repositories struct {
	User         UserRepository
	Vote         VoteRepository
	Comment      CommentRepository
	Notification NotificationRepository
}

func NewRepositories(db *sqlx.DB, resolveConcurrency int) *Repositories {
	users := NewUserRepository(db)
	votes := NewVoteRepository(db)
	return &Repositories{
		User:         users,
		Vote:         votes,
		Comment:      NewCommentRepository(db, users, votes, resolveConcurrency),
		Notification: NewNotificationRepository(db),
	}
}

// Postgres error codes the repositories translate.
const (
	pqForeignKeyViolation = "23503"
	pqUniqueViolation     = "23505"
)

// utcNow is the current time for TIMESTAMP (without time zone) columns,
// which hold UTC regardless of the session time zone.
const utcNow = `(NOW() AT TIME ZONE 'UTC')`

// entityTable locates the row an entity name refers to.
type entityTable struct {
	table string
	idCol string
}

var entityTables = map[string]entityTable{
	"comment":      {table: "comments", idCol: "comment_id"},
	"review":       {table: "reviews", idCol: "review_id"},
	"video":        {table: "videos", idCol: "video_id"},
	"user":         {table: "users", idCol: "user_id"},
	"notification": {table: "notifications", idCol: "notification_id"},
}

func containsID(ctx context.Context, db sqlx.QueryerContext, entity string, id int64) (bool, error) {
	t, ok := entityTables[entity]
	if !ok {
		return false, fmt.Errorf("unknown entity %q", entity)
	}

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM ` + t.table + ` WHERE ` + t.idCol + ` = $1)`
	if err := sqlx.GetContext(ctx, db, &exists, query, id); err != nil {
		return false, fmt.Errorf("check %s %d: %w", entity, id, err)
	}
	return exists, nil
}

// ensureExists fails with a NotFoundError when the entity row is absent.
func ensureExists(ctx context.Context, db sqlx.QueryerContext, entity string, id int64) error {
	exists, err := containsID(ctx, db, entity, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NewNotFoundError(entity, id)
	}
	return nil
}

func pqErrorCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}
