package comment

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mediasocial/internal/domain"
	"mediasocial/internal/mocks"
)

type ledgerVote struct {
	voterID int64
	notifID *int64
	flag    domain.VoteFlag
	seq     int
}

// memoryLedger keeps the votes of a single comment and follows the ledger
// rules: one vote per voter, the voted notification is the one of the most
// recent vote with that flag.
type memoryLedger struct {
	seq   int
	votes []*ledgerVote
}

func (l *memoryLedger) find(voterID int64) *ledgerVote {
	for _, v := range l.votes {
		if v.voterID == voterID {
			return v
		}
	}
	return nil
}

func (l *memoryLedger) tick() int {
	l.seq++
	return l.seq
}

func (l *memoryLedger) AddVoter(_ context.Context, _ domain.EntityType, entityID, voterID int64, notifID *int64, flag domain.VoteFlag) error {
	if l.find(voterID) != nil {
		return domain.NewConflictError("comment vote", fmt.Sprintf("%d/%d", entityID, voterID))
	}
	l.votes = append(l.votes, &ledgerVote{voterID: voterID, notifID: notifID, flag: flag, seq: l.tick()})
	return nil
}

func (l *memoryLedger) UpdateVoter(_ context.Context, _ domain.EntityType, entityID, voterID int64, notifID *int64, flag domain.VoteFlag) error {
	v := l.find(voterID)
	if v == nil {
		return domain.NewNotFoundError("comment vote", fmt.Sprintf("%d/%d", entityID, voterID))
	}
	v.flag, v.notifID, v.seq = flag, notifID, l.tick()
	return nil
}

func (l *memoryLedger) RemoveVoter(_ context.Context, _ domain.EntityType, _, voterID int64) error {
	for i, v := range l.votes {
		if v.voterID == voterID {
			l.votes = append(l.votes[:i], l.votes[i+1:]...)
			return nil
		}
	}
	return nil
}

func (l *memoryLedger) GetVoters(context.Context, domain.EntityType, int64) ([]domain.Voter, error) {
	voters := []domain.Voter{}
	for _, v := range l.votes {
		voters = append(voters, domain.Voter{UserID: v.voterID, Flag: v.flag})
	}
	return voters, nil
}

func (l *memoryLedger) GetVotedNotifID(_ context.Context, _ domain.EntityType, entityID int64, flag domain.VoteFlag) (int64, error) {
	var latest *ledgerVote
	for _, v := range l.votes {
		if v.flag == flag && v.notifID != nil && (latest == nil || v.seq > latest.seq) {
			latest = v
		}
	}
	if latest == nil {
		return 0, domain.NewNotFoundError("comment vote notification", fmt.Sprintf("%d/%s", entityID, flag))
	}
	return *latest.notifID, nil
}

func (l *memoryLedger) GetVote(_ context.Context, entityType domain.EntityType, entityID, voterID int64) (*domain.Vote, error) {
	v := l.find(voterID)
	if v == nil {
		return nil, domain.NewNotFoundError("comment vote", fmt.Sprintf("%d/%d", entityID, voterID))
	}
	return &domain.Vote{EntityType: entityType, EntityID: entityID, VoterID: voterID, NotifID: v.notifID, Flag: v.flag}, nil
}

// flagNotifier hands out sequential notification ids and remembers the flag
// each one was created for.
type flagNotifier struct {
	created map[int64]domain.VoteFlag
}

func (n *flagNotifier) NotifyCommentReply(context.Context, *domain.Comment, *domain.Comment) error {
	return nil
}

func (n *flagNotifier) NotifyCommentVoted(_ context.Context, _ *domain.Comment, flag domain.VoteFlag) (int64, error) {
	id := int64(len(n.created) + 1)
	n.created[id] = flag
	return id, nil
}

func TestService_VoteNotificationsFollowFlag(t *testing.T) {
	ctx := context.Background()
	ledger := &memoryLedger{}
	notifier := &flagNotifier{created: map[int64]domain.VoteFlag{}}
	comments := new(mocks.CommentRepository)
	comments.On("Get", mock.Anything, int64(1)).Return(&domain.Comment{ID: 1, Poster: alice}, nil)

	svc := NewService(comments, ledger, new(mocks.UserRepository), new(mocks.NotificationRepository), nil)
	svc.SetNotificationService(notifier)

	steps := []struct {
		voterID int64
		flag    domain.VoteFlag
	}{
		{43, domain.VoteUp},
		{43, domain.VoteDown},
		{44, domain.VoteDown},
	}
	for _, step := range steps {
		_, err := svc.Vote(ctx, step.voterID, 1, step.flag)
		require.NoError(t, err)
	}

	for _, v := range ledger.votes {
		require.NotNil(t, v.notifID, "voter %d", v.voterID)
		assert.Equal(t, v.flag, notifier.created[*v.notifID], "voter %d", v.voterID)
	}
	assert.Equal(t, map[int64]domain.VoteFlag{1: domain.VoteUp, 2: domain.VoteDown}, notifier.created)

	// the flipped vote and the later downvote share one notification
	assert.Equal(t, *ledger.find(43).notifID, *ledger.find(44).notifID)
}
