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

type matchDTO struct {
	ID        int64     `db:"id"`
	AccountA  int64     `db:"account_a"`
	AccountB  int64     `db:"account_b"`
	Mode      string    `db:"mode"`
	CreatedAt time.Time `db:"created_at"`
}

type messageDTO struct {
	ID        int64     `db:"id"`
	MatchID   int64     `db:"match_id"`
	SenderID  int64     `db:"sender_id"`
	Text      string    `db:"text"`
	CreatedAt time.Time `db:"created_at"`
}

const matchColumns = `id, account_a, account_b, mode, created_at`

func (s pg) CreateLike(ctx context.Context, l *entities.Like) (bool, error) {
	res, err := s.ext.ExecContext(ctx, `
			INSERT INTO "like"(from_account, to_account, mode, created_at)
			VALUES($1, $2, $3, $4)
			ON CONFLICT DO NOTHING
		`,
		l.From, l.To, string(l.Mode), l.CreatedAt.UTC(),
	)
	if err != nil {
		if isPQError(err, foreignKeyViolation) {
			return false, storage.ErrNotFound
		}

		return false, fmt.Errorf("failed to exec: %w", err)
	}

	c, _ := res.RowsAffected()
	return c > 0, nil
}

func (s pg) HasLike(ctx context.Context, from, to int64, mode entities.SwipeMode) (bool, error) {
	var exists bool

	if err := sqlx.GetContext(ctx, s.ext, &exists,
		`SELECT EXISTS(SELECT 1 FROM "like" WHERE from_account=$1 AND to_account=$2 AND mode=$3)`,
		from, to, string(mode),
	); err != nil {
		return false, fmt.Errorf("failed to query: %w", err)
	}

	return exists, nil
}

func (s pg) ListLikers(ctx context.Context, to int64, mode entities.SwipeMode) ([]*entities.Account, error) {
	return s.selectAccounts(ctx, `
			SELECT `+prefixed("a", accountColumns)+` FROM account a
			JOIN "like" l ON l.from_account = a.id
			WHERE l.to_account = $1 AND l.mode = $2 AND NOT a.is_banned
			ORDER BY l.created_at DESC
		`, to, string(mode),
	)
}

func (s pg) ListSwipeCandidates(ctx context.Context, actor int64, mode entities.SwipeMode, limit uint16) ([]*entities.Account, error) {
	return s.selectAccounts(ctx, `
			SELECT `+accountColumns+` FROM account
			WHERE id <> $1 AND NOT is_banned
			AND NOT EXISTS(SELECT 1 FROM "like" WHERE from_account=$1 AND to_account=account.id AND mode=$2)
			ORDER BY id ASC
			LIMIT $3
		`, actor, string(mode), limit,
	)
}

func (s pg) CreateMatch(ctx context.Context, m *entities.Match) (int64, error) {
	var id int64

	if err := sqlx.GetContext(ctx, s.ext, &id, `
			INSERT INTO match(account_a, account_b, mode, created_at)
			VALUES($1, $2, $3, $4)
			ON CONFLICT(account_a, account_b, mode) DO NOTHING
			RETURNING id
		`,
		m.AccountA, m.AccountB, string(m.Mode), m.CreatedAt.UTC(),
	); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return 0, storage.ErrAlreadyExists
		case isPQError(err, foreignKeyViolation):
			return 0, storage.ErrNotFound
		}

		return 0, fmt.Errorf("failed to exec: %w", err)
	}

	return id, nil
}

func (s pg) GetMatch(ctx context.Context, id int64) (*entities.Match, error) {
	return s.getMatch(ctx, `SELECT `+matchColumns+` FROM match WHERE id=$1`, id)
}

func (s pg) GetMatchByPair(ctx context.Context, a, b int64, mode entities.SwipeMode) (*entities.Match, error) {
	if a > b {
		a, b = b, a
	}

	return s.getMatch(ctx,
		`SELECT `+matchColumns+` FROM match WHERE account_a=$1 AND account_b=$2 AND mode=$3`,
		a, b, string(mode),
	)
}

func (s pg) getMatch(ctx context.Context, query string, args ...interface{}) (*entities.Match, error) {
	var m matchDTO

	if err := sqlx.GetContext(ctx, s.ext, &m, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toMatch(&m), nil
}

func (s pg) ListMatches(ctx context.Context, account int64) ([]*entities.Match, error) {
	var mm []*matchDTO

	if err := sqlx.SelectContext(ctx, s.ext, &mm, `
			SELECT `+matchColumns+` FROM match
			WHERE account_a = $1 OR account_b = $1
			ORDER BY created_at DESC, id DESC
		`, account,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Match, len(mm))
	for i, v := range mm {
		out[i] = toMatch(v)
	}

	return out, nil
}

func (s pg) CreateMessage(ctx context.Context, m *entities.Message) (int64, error) {
	var id int64

	if err := sqlx.GetContext(ctx, s.ext, &id, `
			INSERT INTO message(match_id, sender_id, text, created_at)
			VALUES($1, $2, $3, $4)
			RETURNING id
		`,
		m.MatchID, m.SenderID, m.Text, m.CreatedAt.UTC(),
	); err != nil {
		if isPQError(err, foreignKeyViolation) {
			return 0, storage.ErrNotFound
		}

		return 0, fmt.Errorf("failed to exec: %w", err)
	}

	return id, nil
}

func (s pg) ListMessages(ctx context.Context, matchID int64) ([]*entities.Message, error) {
	var mm []*messageDTO

	if err := sqlx.SelectContext(ctx, s.ext, &mm, `
			SELECT id, match_id, sender_id, text, created_at FROM message
			WHERE match_id = $1
			ORDER BY created_at ASC, id ASC
		`, matchID,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Message, len(mm))
	for i, v := range mm {
		out[i] = &entities.Message{
			ID:        v.ID,
			MatchID:   v.MatchID,
			SenderID:  v.SenderID,
			Text:      v.Text,
			CreatedAt: v.CreatedAt,
		}
	}

	return out, nil
}

func toMatch(m *matchDTO) *entities.Match {
	return &entities.Match{
		ID:        m.ID,
		AccountA:  m.AccountA,
		AccountB:  m.AccountB,
		Mode:      entities.SwipeMode(m.Mode),
		CreatedAt: m.CreatedAt,
	}
}
