package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"mediasocial/internal/domain"
)

// UserRepository is the identity lookup used to resolve comment posters.
type UserRepository interface {
	GetSimple(ctx context.Context, userID int64) (*domain.UserProfile, error)
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetSimple(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	var user domain.UserProfile
	query := `SELECT user_id, username, avatar_url, karma FROM users WHERE user_id = $1`
	err := r.db.GetContext(ctx, &user, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("user", userID)
	}
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", userID, err)
	}
	return &user, nil
}
