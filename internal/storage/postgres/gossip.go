package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/campusconnect/campus/internal/entities"
	"github.com/campusconnect/campus/internal/storage"
)

type gossipDTO struct {
	ID         int64     `db:"id"`
	Text       string    `db:"text"`
	Category   string    `db:"category"`
	CreatedBy  int64     `db:"created_by"`
	Upvotes    int       `db:"upvotes"`
	Downvotes  int       `db:"downvotes"`
	IsFeatured bool      `db:"is_featured"`
	IsDeleted  bool      `db:"is_deleted"`
	CreatedAt  time.Time `db:"created_at"`
}

type gossipCommentDTO struct {
	ID        int64     `db:"id"`
	GossipID  int64     `db:"gossip_id"`
	Text      string    `db:"text"`
	CreatedBy int64     `db:"created_by"`
	CreatedAt time.Time `db:"created_at"`
}

const gossipColumns = `id, text, category, created_by, upvotes, downvotes, is_featured, is_deleted, created_at`

func (s pg) CreateGossip(ctx context.Context, g *entities.Gossip) (int64, error) {
	var id int64

	if err := sqlx.GetContext(ctx, s.ext, &id, `
			INSERT INTO gossip(text, category, created_by, created_at)
			VALUES($1, $2, $3, $4)
			RETURNING id
		`,
		g.Text, string(g.Category), g.CreatedBy, g.CreatedAt.UTC(),
	); err != nil {
		if isPQError(err, foreignKeyViolation) {
			return 0, storage.ErrNotFound
		}

		return 0, fmt.Errorf("failed to exec: %w", err)
	}

	return id, nil
}

func (s pg) GetGossip(ctx context.Context, id int64) (*entities.Gossip, error) {
	return s.getGossip(ctx, `SELECT `+gossipColumns+` FROM gossip WHERE id = $1`, id)
}

func (s pg) LockGossip(ctx context.Context, id int64) (*entities.Gossip, error) {
	return s.getGossip(ctx, `SELECT `+gossipColumns+` FROM gossip WHERE id = $1 FOR UPDATE`, id)
}

func (s pg) getGossip(ctx context.Context, query string, id int64) (*entities.Gossip, error) {
	var g gossipDTO

	if err := sqlx.GetContext(ctx, s.ext, &g, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toGossip(&g), nil
}

func (s pg) ListGossips(ctx context.Context, p *storage.ListGossipsParams) ([]*entities.Gossip, error) {
	query := `SELECT ` + gossipColumns + ` FROM gossip WHERE TRUE`
	var args []interface{}

	if !p.WithDeleted {
		query += ` AND NOT is_deleted`
	}

	if p.Category != nil {
		args = append(args, string(*p.Category))
		query += fmt.Sprintf(` AND category = $%d`, len(args))
	}

	switch p.SortBy {
	case storage.NewSortType:
		query += ` ORDER BY created_at DESC, id DESC`
	default:
		query += ` ORDER BY (upvotes - downvotes) DESC, created_at DESC, id DESC`
	}

	args = append(args, p.Limit)
	query += fmt.Sprintf(` LIMIT $%d`, len(args))

	var gg []*gossipDTO
	if err := sqlx.SelectContext(ctx, s.ext, &gg, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Gossip, len(gg))
	for i, v := range gg {
		out[i] = toGossip(v)
	}

	return out, nil
}

func (s pg) SetGossipVotes(ctx context.Context, id int64, upvotes, downvotes int) error {
	return s.execOne(ctx, `UPDATE gossip SET upvotes=$2, downvotes=$3 WHERE id=$1`, id, upvotes, downvotes)
}

func (s pg) SetGossipDeleted(ctx context.Context, id int64, deleted bool) error {
	return s.execOne(ctx, `UPDATE gossip SET is_deleted=$2 WHERE id=$1`, id, deleted)
}

func (s pg) SetGossipFeatured(ctx context.Context, id int64, featured bool) error {
	return s.execOne(ctx, `UPDATE gossip SET is_featured=$2 WHERE id=$1`, id, featured)
}

func (s pg) GetVote(ctx context.Context, gossipID, accountID int64) (*entities.Vote, error) {
	var v int8

	if err := sqlx.GetContext(ctx, s.ext, &v,
		`SELECT value FROM gossip_vote WHERE gossip_id=$1 AND account_id=$2`,
		gossipID, accountID,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.Vote{
		GossipID:  gossipID,
		AccountID: accountID,
		Value:     entities.VoteValue(v),
	}, nil
}

func (s pg) CreateVote(ctx context.Context, v *entities.Vote) error {
	if _, err := s.ext.ExecContext(ctx,
		`INSERT INTO gossip_vote(gossip_id, account_id, value) VALUES($1, $2, $3)`,
		v.GossipID, v.AccountID, int8(v.Value),
	); err != nil {
		switch {
		case isPQError(err, foreignKeyViolation):
			return storage.ErrNotFound
		case isPQError(err, uniqueViolation):
			return storage.ErrAlreadyExists
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) UpdateVote(ctx context.Context, v *entities.Vote) error {
	return s.execOne(ctx,
		`UPDATE gossip_vote SET value=$3 WHERE gossip_id=$1 AND account_id=$2`,
		v.GossipID, v.AccountID, int8(v.Value),
	)
}

func (s pg) DeleteVote(ctx context.Context, gossipID, accountID int64) error {
	return s.execOne(ctx, `DELETE FROM gossip_vote WHERE gossip_id=$1 AND account_id=$2`, gossipID, accountID)
}

func (s pg) CreateGossipComment(ctx context.Context, c *entities.GossipComment) (int64, error) {
	var id int64

	if err := sqlx.GetContext(ctx, s.ext, &id, `
			INSERT INTO gossip_comment(gossip_id, text, created_by, created_at)
			VALUES($1, $2, $3, $4)
			RETURNING id
		`,
		c.GossipID, c.Text, c.CreatedBy, c.CreatedAt.UTC(),
	); err != nil {
		if isPQError(err, foreignKeyViolation) {
			return 0, storage.ErrNotFound
		}

		return 0, fmt.Errorf("failed to exec: %w", err)
	}

	return id, nil
}

func (s pg) ListGossipComments(ctx context.Context, gossipID int64) ([]*entities.GossipComment, error) {
	var cc []*gossipCommentDTO

	if err := sqlx.SelectContext(ctx, s.ext, &cc, `
			SELECT id, gossip_id, text, created_by, created_at FROM gossip_comment
			WHERE gossip_id = $1
			ORDER BY created_at ASC, id ASC
		`, gossipID,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.GossipComment, len(cc))
	for i, v := range cc {
		out[i] = &entities.GossipComment{
			ID:        v.ID,
			GossipID:  v.GossipID,
			Text:      v.Text,
			CreatedBy: v.CreatedBy,
			CreatedAt: v.CreatedAt,
		}
	}

	return out, nil
}

func toGossip(g *gossipDTO) *entities.Gossip {
	return &entities.Gossip{
		ID:         g.ID,
		Text:       g.Text,
		Category:   entities.GossipCategory(g.Category),
		CreatedBy:  g.CreatedBy,
		Upvotes:    g.Upvotes,
		Downvotes:  g.Downvotes,
		IsFeatured: g.IsFeatured,
		IsDeleted:  g.IsDeleted,
		CreatedAt:  g.CreatedAt,
	}
}
