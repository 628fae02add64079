package impl

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/campusconnect/campus/internal/entities"
	"github.com/campusconnect/campus/internal/service"
	"github.com/campusconnect/campus/internal/storage"
)

func (s srv) CreateGossip(ctx context.Context, author int64, text, category string) (*entities.Gossip, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, invalid("gossip can not be empty")
	}

	c := entities.GossipCategory(strings.ToLower(strings.TrimSpace(category)))
	if !c.Valid() {
		c = entities.RandomCategory
	}

	g := &entities.Gossip{
		Text:      text,
		Category:  c,
		CreatedBy: author,
		CreatedAt: s.now().UTC(),
	}

	id, err := s.s.CreateGossip(ctx, g)
	if err != nil {
		return nil, translate(err, "account")
	}
	g.ID = id

	return g, nil
}

func (s srv) ListGossips(ctx context.Context, category, sortBy string) ([]*entities.Gossip, error) {
	p := storage.ListGossipsParams{
		SortBy: storage.TopSortType,
		Limit:  listLimit,
	}

	switch storage.GossipSortType(sortBy) {
	case "", storage.TopSortType:
	case storage.NewSortType:
		p.SortBy = storage.NewSortType
	default:
		return nil, invalid("unknown sort %q", sortBy)
	}

	if category != "" && category != "all" {
		c := entities.GossipCategory(category)
		if !c.Valid() {
			return nil, invalid("unknown category %q", category)
		}
		p.Category = &c
	}

	gg, err := s.s.ListGossips(ctx, &p)
	if err != nil {
		return nil, fmt.Errorf("failed to list gossips: %w", err)
	}

	return gg, nil
}

func (s srv) getLiveGossip(ctx context.Context, id int64) (*entities.Gossip, error) {
	g, err := s.s.GetGossip(ctx, id)
	if err != nil {
		return nil, translate(err, "gossip")
	}

	if g.IsDeleted {
		return nil, fmt.Errorf("%w: item unavailable", service.ErrRejected)
	}

	return g, nil
}

func (s srv) GetGossip(ctx context.Context, id, viewer int64) (*entities.GossipDetails, error) {
	g, err := s.getLiveGossip(ctx, id)
	if err != nil {
		return nil, err
	}

	comments, err := s.s.ListGossipComments(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	out := &entities.GossipDetails{
		Gossip:   g,
		Comments: comments,
		UserVote: entities.NoVote,
	}

	v, err := s.s.GetVote(ctx, id, viewer)
	switch {
	case err == nil:
		out.UserVote = v.Value
	case !errors.Is(err, storage.ErrNotFound):
		return nil, fmt.Errorf("failed to get vote: %w", err)
	}

	return out, nil
}

func (s srv) CommentGossip(ctx context.Context, gossipID, author int64, text string) (*entities.GossipComment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, invalid("comment can not be empty")
	}

	if _, err := s.getLiveGossip(ctx, gossipID); err != nil {
		return nil, err
	}

	c := &entities.GossipComment{
		GossipID:  gossipID,
		Text:      text,
		CreatedBy: author,
		CreatedAt: s.now().UTC(),
	}

	id, err := s.s.CreateGossipComment(ctx, c)
	if err != nil {
		return nil, translate(err, "gossip")
	}
	c.ID = id

	return c, nil
}
