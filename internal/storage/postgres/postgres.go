// Package postgres is implementation of storage interface.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/campusconnect/campus/internal/entities"
	"github.com/campusconnect/campus/internal/plan"
	"github.com/campusconnect/campus/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "postgres")
var errBeginCalledWithinTx = errors.New("can not run InTx in tx")

const (
	foreignKeyViolation = "23503"
	uniqueViolation     = "23505"
)

type pg struct {
	ext sqlx.ExtContext
}

type accountDTO struct {
	ID            int64        `db:"id"`
	Email         string       `db:"email"`
	PasswordHash  string       `db:"password_hash"`
	Name          string       `db:"name"`
	Year          string       `db:"year"`
	Branch        string       `db:"branch"`
	Bio           string       `db:"bio"`
	Interests     string       `db:"interests"`
	LookingFor    string       `db:"looking_for"`
	Photo         string       `db:"photo"`
	IsAdmin       bool         `db:"is_admin"`
	IsBanned      bool         `db:"is_banned"`
	CreatedAt     time.Time    `db:"created_at"`
	Plan          string       `db:"plan"`
	PlanExpiresAt sql.NullTime `db:"plan_expires_at"`
	LastSwipeDate sql.NullTime `db:"last_swipe_date"`
	SwipesToday   int          `db:"swipes_today"`
}

const accountColumns = `id, email, password_hash, name, year, branch, bio, interests, looking_for, photo,
	is_admin, is_banned, created_at, plan, plan_expires_at, last_swipe_date, swipes_today`

// New creates new instance of pg.
func New(db *sql.DB) storage.Storage {
	return pg{
		ext: sqlx.NewDb(db, "postgres"),
	}
}

func (s pg) InTx(ctx context.Context, f func(s storage.Storage) error) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return errBeginCalledWithinTx
	}

	tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to create tx: %w", err)
	}

	if err := f(pg{ext: tx}); err != nil {
		if err := tx.Rollback(); err != nil {
			log.WithError(err).Error("failed to rollback tx")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}

	return nil
}

func (s pg) Ping(ctx context.Context) error {
	var one int
	if err := sqlx.GetContext(ctx, s.ext, &one, `SELECT 1`); err != nil {
		return fmt.Errorf("failed to ping: %w", err)
	}

	return nil
}

func (s pg) CreateAccount(ctx context.Context, a *entities.Account) (int64, error) {
	var id int64

	if err := sqlx.GetContext(ctx, s.ext, &id, `
			INSERT INTO account(email, password_hash, name, is_admin, plan, created_at)
			VALUES($1, $2, $3, $4, $5, $6)
			RETURNING id
		`,
		a.Email, a.PasswordHash, a.Name, a.IsAdmin, a.Plan.String(), a.CreatedAt.UTC(),
	); err != nil {
		if isPQError(err, uniqueViolation) {
			return 0, storage.ErrAlreadyExists
		}

		return 0, fmt.Errorf("failed to exec: %w", err)
	}

	return id, nil
}

func (s pg) GetAccount(ctx context.Context, id int64) (*entities.Account, error) {
	return s.getAccount(ctx, `SELECT `+accountColumns+` FROM account WHERE id = $1`, id)
}

func (s pg) GetAccountByEmail(ctx context.Context, email string) (*entities.Account, error) {
	return s.getAccount(ctx, `SELECT `+accountColumns+` FROM account WHERE email = $1`, email)
}

func (s pg) LockAccounts(ctx context.Context, a, b int64) ([]*entities.Account, error) {
	return s.selectAccounts(ctx, `
			SELECT `+accountColumns+` FROM account
			WHERE id IN ($1, $2)
			ORDER BY id ASC
			FOR UPDATE
		`, a, b,
	)
}

func (s pg) getAccount(ctx context.Context, query string, args ...interface{}) (*entities.Account, error) {
	var a accountDTO

	if err := sqlx.GetContext(ctx, s.ext, &a, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toAccount(&a)
}

func (s pg) ListAccounts(ctx context.Context, p *storage.ListAccountsParams) ([]*entities.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM account`
	if p.BannedOnly {
		query += ` WHERE is_banned`
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT $1`

	return s.selectAccounts(ctx, query, p.Limit)
}

func (s pg) selectAccounts(ctx context.Context, query string, args ...interface{}) ([]*entities.Account, error) {
	var aa []*accountDTO

	if err := sqlx.SelectContext(ctx, s.ext, &aa, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Account, len(aa))
	for i, v := range aa {
		a, err := toAccount(v)
		if err != nil {
			return nil, err
		}
		out[i] = a
	}

	return out, nil
}

func (s pg) UpdateProfile(ctx context.Context, id int64, p *entities.Profile) error {
	return s.execOne(ctx,
		`UPDATE account SET year=$2, branch=$3, bio=$4, interests=$5, looking_for=$6 WHERE id=$1`,
		id, p.Year, p.Branch, p.Bio, p.Interests, p.LookingFor,
	)
}

func (s pg) SetPhoto(ctx context.Context, id int64, key string) error {
	return s.execOne(ctx, `UPDATE account SET photo=$2 WHERE id=$1`, id, key)
}

func (s pg) SetBanned(ctx context.Context, id int64, banned bool) error {
	return s.execOne(ctx, `UPDATE account SET is_banned=$2 WHERE id=$1`, id, banned)
}

func (s pg) SetPlan(ctx context.Context, id int64, tier plan.Tier, expiresAt *time.Time) error {
	var exp sql.NullTime
	if expiresAt != nil {
		exp = sql.NullTime{Time: expiresAt.UTC(), Valid: true}
	}

	return s.execOne(ctx, `UPDATE account SET plan=$2, plan_expires_at=$3 WHERE id=$1`, id, tier.String(), exp)
}

func (s pg) SetSwipes(ctx context.Context, id int64, day time.Time, count int) error {
	return s.execOne(ctx,
		`UPDATE account SET last_swipe_date=$2::date, swipes_today=$3 WHERE id=$1`,
		id, day.Format("2006-01-02"), count,
	)
}

// execOne executes query which must affect exactly one row.
func (s pg) execOne(ctx context.Context, query string, args ...interface{}) error {
	res, err := s.ext.ExecContext(ctx, query, args...)
	if err != nil {
		if isPQError(err, foreignKeyViolation) {
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func toAccount(a *accountDTO) (*entities.Account, error) {
	tier, err := plan.ParseTier(a.Plan)
	if err != nil {
		return nil, fmt.Errorf("invalid plan of account %d: %w", a.ID, err)
	}

	out := &entities.Account{
		ID:           a.ID,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Name:         a.Name,
		Year:         a.Year,
		Branch:       a.Branch,
		Bio:          a.Bio,
		Interests:    a.Interests,
		LookingFor:   a.LookingFor,
		Photo:        a.Photo,
		IsAdmin:      a.IsAdmin,
		IsBanned:     a.IsBanned,
		CreatedAt:    a.CreatedAt,
		Plan:         tier,
		SwipesToday:  a.SwipesToday,
	}

	if a.PlanExpiresAt.Valid {
		t := a.PlanExpiresAt.Time
		out.PlanExpiresAt = &t
	}

	if a.LastSwipeDate.Valid {
		d := a.LastSwipeDate.Time
		d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		out.LastSwipeDate = &d
	}

	return out, nil
}

func isPQError(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == code
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func fromNullInt64(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	i := v.Int64
	return &i
}

// prefixed qualifies every column of comma-separated list with table alias.
func prefixed(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, v := range parts {
		parts[i] = alias + "." + strings.TrimSpace(v)
	}
	return strings.Join(parts, ", ")
}
