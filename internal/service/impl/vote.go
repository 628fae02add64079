package impl

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusconnect/campus/internal/entities"
	"github.com/campusconnect/campus/internal/service"
	"github.com/campusconnect/campus/internal/storage"
)

// counters are running vote counters of an item.
type counters struct {
	up   int
	down int
}

func (c *counters) add(v entities.VoteValue, delta int) {
	switch v {
	case entities.UpVote:
		c.up += delta
	case entities.DownVote:
		c.down += delta
	}
}

// tally returns counters and the voter's effective vote after requested is applied over prev.
// Same vote again retracts it, opposite vote moves one unit between counters.
func tally(c counters, prev, requested entities.VoteValue) (counters, entities.VoteValue) {
	switch prev {
	case entities.NoVote:
		c.add(requested, 1)
		return c, requested
	case requested:
		c.add(prev, -1)
		return c, entities.NoVote
	default:
		c.add(prev, -1)
		c.add(requested, 1)
		return c, requested
	}
}

func parseDirection(direction string) (entities.VoteValue, error) {
	switch direction {
	case "up":
		return entities.UpVote, nil
	case "down":
		return entities.DownVote, nil
	default:
		return entities.NoVote, invalid("unknown vote direction %q", direction)
	}
}

func (s srv) VoteGossip(ctx context.Context, gossipID, accountID int64, direction string) (*entities.VoteResult, error) {
	requested, err := parseDirection(direction)
	if err != nil {
		return nil, err
	}

	var res *entities.VoteResult

	if err := s.s.InTx(ctx, func(s storage.Storage) error {
		g, err := s.LockGossip(ctx, gossipID)
		if err != nil {
			return translate(err, "gossip")
		}

		if g.IsDeleted {
			return fmt.Errorf("%w: item unavailable", service.ErrRejected)
		}

		prev := entities.NoVote
		switch v, err := s.GetVote(ctx, gossipID, accountID); {
		case err == nil:
			prev = v.Value
		case !errors.Is(err, storage.ErrNotFound):
			return fmt.Errorf("failed to get vote: %w", err)
		}

		c, effective := tally(counters{up: g.Upvotes, down: g.Downvotes}, prev, requested)
		vote := &entities.Vote{GossipID: gossipID, AccountID: accountID, Value: effective}

		switch {
		case prev == entities.NoVote:
			err = s.CreateVote(ctx, vote)
		case effective == entities.NoVote:
			err = s.DeleteVote(ctx, gossipID, accountID)
		default:
			err = s.UpdateVote(ctx, vote)
		}
		if err != nil {
			return translate(err, "vote")
		}

		if err := s.SetGossipVotes(ctx, gossipID, c.up, c.down); err != nil {
			return translate(err, "gossip")
		}

		res = &entities.VoteResult{
			Upvotes:   c.up,
			Downvotes: c.down,
			Score:     c.up - c.down,
			UserVote:  effective,
		}

		return nil
	}); err != nil {
		return nil, err
	}

	log.WithField("gossip", gossipID).WithField("vote", res.UserVote).Debug("vote applied")

	return res, nil
}
