package impl

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusconnect/campus/internal/entities"
	"github.com/campusconnect/campus/internal/service"
	storageinterface "github.com/campusconnect/campus/internal/storage"
)

func TestTally(t *testing.T) {
	tt := []struct {
		name      string
		c         counters
		prev      entities.VoteValue
		requested entities.VoteValue

		want      counters
		effective entities.VoteValue
	}{
		{"first up", counters{3, 1}, entities.NoVote, entities.UpVote, counters{4, 1}, entities.UpVote},
		{"first down", counters{3, 1}, entities.NoVote, entities.DownVote, counters{3, 2}, entities.DownVote},
		{"retract up", counters{4, 1}, entities.UpVote, entities.UpVote, counters{3, 1}, entities.NoVote},
		{"retract down", counters{3, 2}, entities.DownVote, entities.DownVote, counters{3, 1}, entities.NoVote},
		{"switch to down", counters{4, 1}, entities.UpVote, entities.DownVote, counters{3, 2}, entities.DownVote},
		{"switch to up", counters{3, 2}, entities.DownVote, entities.UpVote, counters{4, 1}, entities.UpVote},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			c, effective := tally(tc.c, tc.prev, tc.requested)
			assert.Equal(t, tc.want, c)
			assert.Equal(t, tc.effective, effective)
		})
	}
}

// Replays vote sequences and checks counters always equal the live votes split by sign.
func TestTally_MatchesLiveVotes(t *testing.T) {
	sequences := [][]entities.VoteValue{
		{entities.UpVote, entities.UpVote},
		{entities.DownVote, entities.DownVote},
		{entities.UpVote, entities.DownVote},
		{entities.UpVote, entities.DownVote, entities.UpVote, entities.UpVote, entities.DownVote},
		{entities.DownVote, entities.UpVote, entities.UpVote},
	}

	for _, seq := range sequences {
		var c counters
		live := entities.NoVote

		for _, v := range seq {
			c, live = tally(c, live, v)

			want := counters{}
			want.add(live, 1)
			require.Equal(t, want, c, "sequence %v", seq)
			require.GreaterOrEqual(t, c.up, 0)
			require.GreaterOrEqual(t, c.down, 0)
		}
	}
}

func TestParseDirection(t *testing.T) {
	v, err := parseDirection("up")
	require.NoError(t, err)
	assert.Equal(t, entities.UpVote, v)

	v, err = parseDirection("down")
	require.NoError(t, err)
	assert.Equal(t, entities.DownVote, v)

	_, err = parseDirection("sideways")
	require.ErrorIs(t, err, service.ErrInvalidArgument)
}

func TestSrv_VoteGossip(t *testing.T) {
	const gossipID, accountID = int64(10), int64(20)

	tt := []struct {
		name      string
		gossip    *entities.Gossip
		prev      *entities.Vote
		direction string

		res *entities.VoteResult
		err error
	}{
		{
			name:      "first vote",
			gossip:    &entities.Gossip{ID: gossipID, Upvotes: 2, Downvotes: 1},
			direction: "up",
			res:       &entities.VoteResult{Upvotes: 3, Downvotes: 1, Score: 2, UserVote: entities.UpVote},
		},
		{
			name:      "retraction",
			gossip:    &entities.Gossip{ID: gossipID, Upvotes: 3, Downvotes: 1},
			prev:      &entities.Vote{GossipID: gossipID, AccountID: accountID, Value: entities.UpVote},
			direction: "up",
			res:       &entities.VoteResult{Upvotes: 2, Downvotes: 1, Score: 1, UserVote: entities.NoVote},
		},
		{
			name:      "switch",
			gossip:    &entities.Gossip{ID: gossipID, Upvotes: 3, Downvotes: 1},
			prev:      &entities.Vote{GossipID: gossipID, AccountID: accountID, Value: entities.UpVote},
			direction: "down",
			res:       &entities.VoteResult{Upvotes: 2, Downvotes: 2, Score: 0, UserVote: entities.DownVote},
		},
		{
			name:      "removed",
			gossip:    &entities.Gossip{ID: gossipID, IsDeleted: true},
			direction: "up",
			err:       service.ErrRejected,
		},
		{
			name:      "not found",
			direction: "up",
			err:       service.ErrNotFound,
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			s, m := newTestSrv(t)

			expectTx(m.s)

			if tc.gossip == nil {
				m.s.EXPECT().LockGossip(gomock.Any(), gossipID).Return(nil, storageinterface.ErrNotFound)
			} else {
				m.s.EXPECT().LockGossip(gomock.Any(), gossipID).Return(tc.gossip, nil)
			}

			if tc.res != nil {
				if tc.prev == nil {
					m.s.EXPECT().GetVote(gomock.Any(), gossipID, accountID).Return(nil, storageinterface.ErrNotFound)
					m.s.EXPECT().CreateVote(gomock.Any(), &entities.Vote{GossipID: gossipID, AccountID: accountID, Value: tc.res.UserVote}).Return(nil)
				} else {
					m.s.EXPECT().GetVote(gomock.Any(), gossipID, accountID).Return(tc.prev, nil)
					if tc.res.UserVote == entities.NoVote {
						m.s.EXPECT().DeleteVote(gomock.Any(), gossipID, accountID).Return(nil)
					} else {
						m.s.EXPECT().UpdateVote(gomock.Any(), &entities.Vote{GossipID: gossipID, AccountID: accountID, Value: tc.res.UserVote}).Return(nil)
					}
				}
				m.s.EXPECT().SetGossipVotes(gomock.Any(), gossipID, tc.res.Upvotes, tc.res.Downvotes).Return(nil)
			}

			res, err := s.VoteGossip(ctx, gossipID, accountID, tc.direction)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.res, res)
		})
	}
}

func TestSrv_VoteGossip_InvalidDirection(t *testing.T) {
	s, _ := newTestSrv(t)

	_, err := s.VoteGossip(ctx, 1, 1, "left")
	require.ErrorIs(t, err, service.ErrInvalidArgument)
}

func TestSrv_VoteGossip_StorageFailure(t *testing.T) {
	s, m := newTestSrv(t)

	expectTx(m.s)
	m.s.EXPECT().LockGossip(gomock.Any(), int64(1)).Return(&entities.Gossip{ID: 1}, nil)
	m.s.EXPECT().GetVote(gomock.Any(), int64(1), int64(2)).Return(nil, storageinterface.ErrNotFound)
	m.s.EXPECT().CreateVote(gomock.Any(), gomock.Any()).Return(nil)
	m.s.EXPECT().SetGossipVotes(gomock.Any(), int64(1), 1, 0).Return(context.Canceled)

	_, err := s.VoteGossip(ctx, 1, 2, "up")
	require.ErrorIs(t, err, context.Canceled)
}
