package domain

import "time"

// StorageTimeLayout is the text layout timestamps are written with.
const StorageTimeLayout = "2006-01-02 15:04:05"

const MaxCommentLength = 2000

type Comment struct {
	ID           int64        `json:"id"`
	Poster       *UserProfile `json:"poster"`
	ParentID     *int64       `json:"parent_id"`
	ParentRootID int64        `json:"parent_root_id"`
	NotifID      *int64       `json:"notif_id,omitempty"`
	Body         string       `json:"body"`
	CreatedAt    time.Time    `json:"created_at"`
	Voters       []Voter      `json:"voters"`
}

// IsRoot reports whether the comment starts a thread.
func (c *Comment) IsRoot() bool {
	return c.ParentID == nil
}

// Score is the sum of all vote flags.
func (c *Comment) Score() int {
	score := 0
	for _, v := range c.Voters {
		score += int(v.Flag)
	}
	return score
}

func (c *Comment) HasVoter(userID int64) bool {
	for _, v := range c.Voters {
		if v.UserID == userID {
			return true
		}
	}
	return false
}

// CreatedStr formats the creation time in the storage layout.
func (c *Comment) CreatedStr() string {
	return c.CreatedAt.UTC().Format(StorageTimeLayout)
}

// ContextKind names the kind of entity hosting root comments.
type ContextKind string

const (
	ContextReview ContextKind = "review"
	ContextVideo  ContextKind = "video"
)

func (k ContextKind) IsValid() bool {
	switch k {
	case ContextReview, ContextVideo:
		return true
	default:
		return false
	}
}

type CommentContext struct {
	Kind ContextKind `json:"kind"`
	ID   int64       `json:"id"`
}

type CreateCommentInput struct {
	ParentID *int64          `json:"parent_id"`
	NotifID  *int64          `json:"notif_id"`
	Context  *CommentContext `json:"context"`
	Body     string          `json:"body"`
}

type UpdateCommentInput struct {
	Body string `json:"body"`
}

type VoteInput struct {
	Flag VoteFlag `json:"flag"`
}
