package domain

// UserProfile is the lightweight identity attached to comments.
type UserProfile struct {
	ID        int64   `json:"id" db:"user_id"`
	Username  string  `json:"username" db:"username"`
	AvatarURL *string `json:"avatar_url,omitempty" db:"avatar_url"`
	Karma     int     `json:"karma" db:"karma"`
}
