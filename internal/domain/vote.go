package domain

import "time"

// EntityType tags the table family owning a voted-on row.
type EntityType string

const (
	EntityComment EntityType = "comment"
	EntityReview  EntityType = "review"
	EntityVideo   EntityType = "video"
)

func (t EntityType) IsValid() bool {
	switch t {
	case EntityComment, EntityReview, EntityVideo:
		return true
	default:
		return false
	}
}

type VoteFlag int16

const (
	VoteDown VoteFlag = -1
	VoteUp   VoteFlag = 1
)

func (f VoteFlag) IsValid() bool {
	return f == VoteUp || f == VoteDown
}

func (f VoteFlag) String() string {
	switch f {
	case VoteUp:
		return "up"
	case VoteDown:
		return "down"
	default:
		return "invalid"
	}
}

type Vote struct {
	EntityType EntityType `json:"entity_type"`
	EntityID   int64      `json:"entity_id"`
	VoterID    int64      `json:"voter_id"`
	NotifID    *int64     `json:"notif_id,omitempty"`
	Flag       VoteFlag   `json:"flag"`
	VotedAt    time.Time  `json:"voted_at"`
}

// Voter is one resolved vote on an entity.
type Voter struct {
	UserID int64    `json:"user_id"`
	Flag   VoteFlag `json:"flag"`
}
