package repository

import (
	"time"

	"mediasocial/internal/domain"
)

// commentRow is one raw row of the comments table.
type commentRow struct {
	ID           int64     `db:"comment_id"`
	WriterID     int64     `db:"users_writer_id"`
	ParentID     *int64    `db:"parent_id"`
	ParentRootID int64     `db:"parent_root_id"`
	NotifID      *int64    `db:"commented_on_notif_id"`
	Body         string    `db:"comment_txt"`
	CreatedAt    time.Time `db:"comment_created"`
}

// assembleComment maps a row and its resolved poster and voters into a
// comment. It never touches storage.
func assembleComment(row commentRow, poster *domain.UserProfile, voters []domain.Voter) (domain.Comment, error) {
	switch {
	case row.ID <= 0:
		return domain.Comment{}, domain.NewValidationError("comment_id", "missing")
	case row.WriterID <= 0:
		return domain.Comment{}, domain.NewValidationError("users_writer_id", "missing")
	case row.ParentRootID <= 0:
		return domain.Comment{}, domain.NewValidationError("parent_root_id", "missing")
	case row.CreatedAt.IsZero():
		return domain.Comment{}, domain.NewValidationError("comment_created", "missing")
	case poster == nil:
		return domain.Comment{}, domain.NewValidationError("poster", "missing")
	case poster.ID != row.WriterID:
		return domain.Comment{}, domain.NewValidationError("poster", "does not match users_writer_id")
	}

	if voters == nil {
		voters = []domain.Voter{}
	}

	return domain.Comment{
		ID:           row.ID,
		Poster:       poster,
		ParentID:     row.ParentID,
		ParentRootID: row.ParentRootID,
		NotifID:      row.NotifID,
		Body:         row.Body,
		CreatedAt:    row.CreatedAt.UTC(),
		Voters:       voters,
	}, nil
}
