package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"

	"mediasocial/internal/domain"
)

type CommentRepository interface {
	Add(ctx context.Context, comment *domain.Comment) error
	Get(ctx context.Context, id int64) (*domain.Comment, error)
	GetByText(ctx context.Context, body string) (*domain.Comment, error)
	Remove(ctx context.Context, id int64) error
	UpdateText(ctx context.Context, id int64, text string) error
	GetSubComments(ctx context.Context, parentID int64, limit int) ([]domain.Comment, error)
	GetSubCommentCount(ctx context.Context, parentID int64) (int64, error)
	GetRootComments(ctx context.Context, kind domain.ContextKind, contextID int64) ([]domain.Comment, error)
	LinkRootComment(ctx context.Context, kind domain.ContextKind, contextID, commentID int64) error
	NextID(ctx context.Context) (int64, error)
}

// IdentityLookup resolves the poster of a comment.
type IdentityLookup interface {
	GetSimple(ctx context.Context, userID int64) (*domain.UserProfile, error)
}

// VoterLister resolves the voters of an entity.
type VoterLister interface {
	GetVoters(ctx context.Context, entityType domain.EntityType, entityID int64) ([]domain.Voter, error)
}

// rootCommentLink describes the relation tying root comments to a context.
type rootCommentLink struct {
	hostEntity string
	joinTable  string
	contextCol string
}

var rootCommentLinks = map[domain.ContextKind]rootCommentLink{
	domain.ContextReview: {hostEntity: "review", joinTable: "reviews_has_comments", contextCol: "reviews_review_id"},
	domain.ContextVideo:  {hostEntity: "video", joinTable: "video_has_comments", contextCol: "video_video_id"},
}

func lookupRootCommentLink(kind domain.ContextKind) (rootCommentLink, error) {
	link, ok := rootCommentLinks[kind]
	if !ok {
		return rootCommentLink{}, domain.NewValidationError("context kind", fmt.Sprintf("%q cannot host comments", kind))
	}
	return link, nil
}

const commentColumns = `c.comment_id, c.users_writer_id, c.parent_id, c.parent_root_id, c.commented_on_notif_id, c.comment_txt, c.comment_created`

const defaultResolveConcurrency = 4

type commentRepository struct {
	db                 *sqlx.DB
	users              IdentityLookup
	votes              VoterLister
	resolveConcurrency int
}

func NewCommentRepository(db *sqlx.DB, users IdentityLookup, votes VoterLister, resolveConcurrency int) CommentRepository {
	if resolveConcurrency < 1 {
		resolveConcurrency = defaultResolveConcurrency
	}
	return &commentRepository{
		db:                 db,
		users:              users,
		votes:              votes,
		resolveConcurrency: resolveConcurrency,
	}
}

func (r *commentRepository) Add(ctx context.Context, comment *domain.Comment) error {
	switch {
	case comment == nil:
		return domain.NewValidationError("comment", "the object to add is not a comment")
	case comment.ID <= 0:
		return domain.NewValidationError("id", "must be assigned before adding")
	case comment.Poster == nil || comment.Poster.ID <= 0:
		return domain.NewValidationError("poster", "missing")
	case comment.ParentRootID <= 0:
		return domain.NewValidationError("parent_root_id", "missing")
	case comment.CreatedAt.IsZero():
		return domain.NewValidationError("created_at", "missing")
	}

	exists, err := containsID(ctx, r.db, "comment", comment.ID)
	if err != nil {
		return err
	}
	if exists {
		return domain.NewConflictError("comment", comment.ID)
	}

	query := `
		INSERT INTO comments (comment_id, users_writer_id, parent_id, parent_root_id, commented_on_notif_id, comment_txt, comment_created)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = r.db.ExecContext(ctx, query,
		comment.ID, comment.Poster.ID, comment.ParentID, comment.ParentRootID,
		comment.NotifID, comment.Body, comment.CreatedStr(),
	)
	if err != nil {
		switch pqErrorCode(err) {
		case pqUniqueViolation:
			return domain.NewConflictError("comment", comment.ID)
		case pqForeignKeyViolation:
			return domain.NewValidationError("comment", err.Error())
		}
		return fmt.Errorf("insert comment %d: %w", comment.ID, err)
	}
	return nil
}

func (r *commentRepository) Get(ctx context.Context, id int64) (*domain.Comment, error) {
	var row commentRow
	query := `SELECT ` + commentColumns + ` FROM comments c WHERE c.comment_id = $1`
	err := r.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("comment", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get comment %d: %w", id, err)
	}

	comment, err := r.resolve(ctx, row)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetByText returns the lowest-id comment whose body equals body exactly.
func (r *commentRepository) GetByText(ctx context.Context, body string) (*domain.Comment, error) {
	var id int64
	query := `SELECT comment_id FROM comments WHERE comment_txt = $1 ORDER BY comment_id ASC LIMIT 1`
	err := r.db.GetContext(ctx, &id, query, body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("comment with body", body)
	}
	if err != nil {
		return nil, fmt.Errorf("find comment by body: %w", err)
	}
	return r.Get(ctx, id)
}

func (r *commentRepository) Remove(ctx context.Context, id int64) error {
	query := `DELETE FROM comments WHERE comment_id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete comment %d: %w", id, err)
	}
	return expectAffected(res, "comment", id)
}

func (r *commentRepository) UpdateText(ctx context.Context, id int64, text string) error {
	query := `UPDATE comments SET comment_txt = $2 WHERE comment_id = $1`
	res, err := r.db.ExecContext(ctx, query, id, text)
	if err != nil {
		return fmt.Errorf("update comment %d: %w", id, err)
	}
	return expectAffected(res, "comment", id)
}

// GetSubComments lists direct replies newest first. A limit below one
// returns every reply.
func (r *commentRepository) GetSubComments(ctx context.Context, parentID int64, limit int) ([]domain.Comment, error) {
	if err := ensureExists(ctx, r.db, "comment", parentID); err != nil {
		return nil, err
	}

	query := `
		SELECT ` + commentColumns + `
		FROM comments c
		WHERE c.parent_id = $1
		ORDER BY c.comment_created DESC, c.comment_id DESC`
	args := []any{parentID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	var rows []commentRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list replies of comment %d: %w", parentID, err)
	}
	return r.resolveAll(ctx, rows)
}

func (r *commentRepository) GetSubCommentCount(ctx context.Context, parentID int64) (int64, error) {
	if err := ensureExists(ctx, r.db, "comment", parentID); err != nil {
		return 0, err
	}

	var count int64
	query := `SELECT COUNT(*) FROM comments WHERE parent_id = $1`
	if err := r.db.GetContext(ctx, &count, query, parentID); err != nil {
		return 0, fmt.Errorf("count replies of comment %d: %w", parentID, err)
	}
	return count, nil
}

func (r *commentRepository) GetRootComments(ctx context.Context, kind domain.ContextKind, contextID int64) ([]domain.Comment, error) {
	link, err := lookupRootCommentLink(kind)
	if err != nil {
		return nil, err
	}
	if err := ensureExists(ctx, r.db, link.hostEntity, contextID); err != nil {
		return nil, err
	}

	query := `
		SELECT ` + commentColumns + `
		FROM comments c
		INNER JOIN ` + link.joinTable + ` l ON c.comment_id = l.comments_comment_id
		WHERE l.` + link.contextCol + ` = $1
		ORDER BY c.comment_created DESC, c.comment_id DESC`

	var rows []commentRow
	if err := r.db.SelectContext(ctx, &rows, query, contextID); err != nil {
		return nil, fmt.Errorf("list %s %d root comments: %w", kind, contextID, err)
	}
	return r.resolveAll(ctx, rows)
}

func (r *commentRepository) LinkRootComment(ctx context.Context, kind domain.ContextKind, contextID, commentID int64) error {
	link, err := lookupRootCommentLink(kind)
	if err != nil {
		return err
	}
	if err := ensureExists(ctx, r.db, link.hostEntity, contextID); err != nil {
		return err
	}
	if err := ensureExists(ctx, r.db, "comment", commentID); err != nil {
		return err
	}

	query := `INSERT INTO ` + link.joinTable + ` (` + link.contextCol + `, comments_comment_id) VALUES ($1, $2)`
	_, err = r.db.ExecContext(ctx, query, contextID, commentID)
	if pqErrorCode(err) == pqUniqueViolation {
		return domain.NewConflictError(string(kind)+" comment link", fmt.Sprintf("%d/%d", contextID, commentID))
	}
	if err != nil {
		return fmt.Errorf("link comment %d to %s %d: %w", commentID, kind, contextID, err)
	}
	return nil
}

func (r *commentRepository) NextID(ctx context.Context) (int64, error) {
	var id int64
	if err := r.db.GetContext(ctx, &id, `SELECT nextval('comments_comment_id_seq')`); err != nil {
		return 0, fmt.Errorf("allocate comment id: %w", err)
	}
	return id, nil
}

func (r *commentRepository) resolve(ctx context.Context, row commentRow) (domain.Comment, error) {
	poster, err := r.users.GetSimple(ctx, row.WriterID)
	if err != nil {
		return domain.Comment{}, err
	}
	voters, err := r.votes.GetVoters(ctx, domain.EntityComment, row.ID)
	if err != nil {
		return domain.Comment{}, err
	}
	return assembleComment(row, poster, voters)
}

// resolveAll resolves rows concurrently and keeps their query order.
func (r *commentRepository) resolveAll(ctx context.Context, rows []commentRow) ([]domain.Comment, error) {
	comments := make([]domain.Comment, len(rows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.resolveConcurrency)
	for i, row := range rows {
		g.Go(func() error {
			c, err := r.resolve(gctx, row)
			if err != nil {
				return err
			}
			comments[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return comments, nil
}

func expectAffected(res sql.Result, entity string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s %d rows affected: %w", entity, id, err)
	}
	if n == 0 {
		return domain.NewNotFoundError(entity, id)
	}
	return nil
}
