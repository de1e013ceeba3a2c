package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"mediasocial/internal/domain"
)

// VoteRepository is the vote ledger shared by every votable entity type.
type VoteRepository interface {
	AddVoter(ctx context.Context, entityType domain.EntityType, entityID, voterID int64, notifID *int64, flag domain.VoteFlag) error
	UpdateVoter(ctx context.Context, entityType domain.EntityType, entityID, voterID int64, notifID *int64, flag domain.VoteFlag) error
	RemoveVoter(ctx context.Context, entityType domain.EntityType, entityID, voterID int64) error
	GetVoters(ctx context.Context, entityType domain.EntityType, entityID int64) ([]domain.Voter, error)
	GetVotedNotifID(ctx context.Context, entityType domain.EntityType, entityID int64, flag domain.VoteFlag) (int64, error)
	GetVote(ctx context.Context, entityType domain.EntityType, entityID, voterID int64) (*domain.Vote, error)
}

var voteTables = map[domain.EntityType]string{
	domain.EntityComment: "comment_votes",
	domain.EntityReview:  "review_votes",
	domain.EntityVideo:   "video_votes",
}

func voteTable(entityType domain.EntityType) (string, error) {
	table, ok := voteTables[entityType]
	if !ok {
		return "", domain.NewValidationError("entity_type", fmt.Sprintf("%q is not votable", entityType))
	}
	return table, nil
}

func validFlag(flag domain.VoteFlag) error {
	if !flag.IsValid() {
		return domain.NewValidationError("flag", fmt.Sprintf("%d is not a vote flag", flag))
	}
	return nil
}

type voteRepository struct {
	db *sqlx.DB
}

func NewVoteRepository(db *sqlx.DB) VoteRepository {
	return &voteRepository{db: db}
}

func (r *voteRepository) AddVoter(ctx context.Context, entityType domain.EntityType, entityID, voterID int64, notifID *int64, flag domain.VoteFlag) error {
	table, err := voteTable(entityType)
	if err != nil {
		return err
	}
	if err := validFlag(flag); err != nil {
		return err
	}

	query := `
		INSERT INTO ` + table + ` (entity_id, users_voter_id, notif_id, vote_flag, voted_at)
		VALUES ($1, $2, $3, $4, ` + utcNow + `)
		ON CONFLICT (entity_id, users_voter_id) DO NOTHING`

	res, err := r.db.ExecContext(ctx, query, entityID, voterID, notifID, flag)
	if err != nil {
		if pqErrorCode(err) == pqForeignKeyViolation {
			return domain.NewValidationError("vote", err.Error())
		}
		return fmt.Errorf("add %s vote: %w", entityType, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("add %s vote: %w", entityType, err)
	}
	if n == 0 {
		return domain.NewConflictError(string(entityType)+" vote", fmt.Sprintf("%d/%d", entityID, voterID))
	}
	return nil
}

// UpdateVoter changes the flag of an existing vote. The vote moves to notifID
// so it never points at a notification of the other flag.
func (r *voteRepository) UpdateVoter(ctx context.Context, entityType domain.EntityType, entityID, voterID int64, notifID *int64, flag domain.VoteFlag) error {
	table, err := voteTable(entityType)
	if err != nil {
		return err
	}
	if err := validFlag(flag); err != nil {
		return err
	}

	query := `UPDATE ` + table + ` SET vote_flag = $3, notif_id = $4, voted_at = ` + utcNow + ` WHERE entity_id = $1 AND users_voter_id = $2`
	res, err := r.db.ExecContext(ctx, query, entityID, voterID, flag, notifID)
	if err != nil {
		return fmt.Errorf("update %s vote: %w", entityType, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update %s vote: %w", entityType, err)
	}
	if n == 0 {
		return domain.NewNotFoundError(string(entityType)+" vote", fmt.Sprintf("%d/%d", entityID, voterID))
	}
	return nil
}

func (r *voteRepository) RemoveVoter(ctx context.Context, entityType domain.EntityType, entityID, voterID int64) error {
	table, err := voteTable(entityType)
	if err != nil {
		return err
	}

	query := `DELETE FROM ` + table + ` WHERE entity_id = $1 AND users_voter_id = $2`
	if _, err := r.db.ExecContext(ctx, query, entityID, voterID); err != nil {
		return fmt.Errorf("remove %s vote: %w", entityType, err)
	}
	return nil
}

func (r *voteRepository) GetVoters(ctx context.Context, entityType domain.EntityType, entityID int64) ([]domain.Voter, error) {
	table, err := voteTable(entityType)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT users_voter_id, vote_flag
		FROM ` + table + `
		WHERE entity_id = $1
		ORDER BY voted_at ASC, users_voter_id ASC`

	rows, err := r.db.QueryxContext(ctx, query, entityID)
	if err != nil {
		return nil, fmt.Errorf("list %s voters: %w", entityType, err)
	}
	defer rows.Close()

	voters := []domain.Voter{}
	for rows.Next() {
		var v domain.Voter
		if err := rows.Scan(&v.UserID, &v.Flag); err != nil {
			return nil, fmt.Errorf("scan %s voter: %w", entityType, err)
		}
		voters = append(voters, v)
	}
	return voters, rows.Err()
}

// GetVotedNotifID returns the notification of the most recent vote with flag.
func (r *voteRepository) GetVotedNotifID(ctx context.Context, entityType domain.EntityType, entityID int64, flag domain.VoteFlag) (int64, error) {
	table, err := voteTable(entityType)
	if err != nil {
		return 0, err
	}
	if err := validFlag(flag); err != nil {
		return 0, err
	}

	var notifID int64
	query := `
		SELECT notif_id
		FROM ` + table + `
		WHERE entity_id = $1 AND vote_flag = $2 AND notif_id IS NOT NULL
		ORDER BY voted_at DESC, users_voter_id DESC
		LIMIT 1`
	err = r.db.GetContext(ctx, &notifID, query, entityID, flag)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.NewNotFoundError(string(entityType)+" vote notification", fmt.Sprintf("%d/%s", entityID, flag))
	}
	if err != nil {
		return 0, fmt.Errorf("get %s vote notification: %w", entityType, err)
	}
	return notifID, nil
}

func (r *voteRepository) GetVote(ctx context.Context, entityType domain.EntityType, entityID, voterID int64) (*domain.Vote, error) {
	table, err := voteTable(entityType)
	if err != nil {
		return nil, err
	}

	vote := domain.Vote{EntityType: entityType, EntityID: entityID, VoterID: voterID}
	query := `SELECT notif_id, vote_flag, voted_at FROM ` + table + ` WHERE entity_id = $1 AND users_voter_id = $2`
	err = r.db.QueryRowxContext(ctx, query, entityID, voterID).Scan(&vote.NotifID, &vote.Flag, &vote.VotedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError(string(entityType)+" vote", fmt.Sprintf("%d/%d", entityID, voterID))
	}
	if err != nil {
		return nil, fmt.Errorf("get %s vote: %w", entityType, err)
	}
	return &vote, nil
}
