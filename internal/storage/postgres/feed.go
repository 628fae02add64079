package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/campusconnect/campus/internal/entities"
	"github.com/campusconnect/campus/internal/storage"
)

type postDTO struct {
	ID         int64     `db:"id"`
	AuthorID   int64     `db:"author_id"`
	Type       string    `db:"type"`
	Text       string    `db:"text"`
	Image      string    `db:"image"`
	IsFeatured bool      `db:"is_featured"`
	CreatedAt  time.Time `db:"created_at"`
}

type postHashtagDTO struct {
	PostID int64  `db:"post_id"`
	Name   string `db:"name"`
}

type storyDTO struct {
	ID        int64     `db:"id"`
	AuthorID  int64     `db:"author_id"`
	Media     string    `db:"media"`
	CreatedAt time.Time `db:"created_at"`
	ExpiresAt time.Time `db:"expires_at"`
}

type eventDTO struct {
	ID          int64         `db:"id"`
	Title       string        `db:"title"`
	Description string        `db:"description"`
	Type        string        `db:"type"`
	StartsAt    time.Time     `db:"starts_at"`
	Location    string        `db:"location"`
	CreatedBy   sql.NullInt64 `db:"created_by"`
	IsOfficial  bool          `db:"is_official"`
	Highlight   bool          `db:"highlight"`
}

type reportDTO struct {
	ID         int64         `db:"id"`
	ReporterID int64         `db:"reporter_id"`
	PostID     sql.NullInt64 `db:"post_id"`
	GossipID   sql.NullInt64 `db:"gossip_id"`
	Reason     string        `db:"reason"`
	Resolved   bool          `db:"resolved"`
	ResolvedBy sql.NullInt64 `db:"resolved_by"`
	CreatedAt  time.Time     `db:"created_at"`
}

const (
	postColumns   = `id, author_id, type, text, image, is_featured, created_at`
	reportColumns = `id, reporter_id, post_id, gossip_id, reason, resolved, resolved_by, created_at`
)

func (s pg) CreatePost(ctx context.Context, p *entities.Post) (int64, error) {
	var id int64

	if err := sqlx.GetContext(ctx, s.ext, &id, `
			INSERT INTO post(author_id, type, text, image, is_featured, created_at)
			VALUES($1, $2, $3, $4, $5, $6)
			RETURNING id
		`,
		p.AuthorID, string(p.Type), p.Text, p.Image, p.IsFeatured, p.CreatedAt.UTC(),
	); err != nil {
		if isPQError(err, foreignKeyViolation) {
			return 0, storage.ErrNotFound
		}

		return 0, fmt.Errorf("failed to exec: %w", err)
	}

	return id, nil
}

func (s pg) GetPost(ctx context.Context, id int64) (*entities.Post, error) {
	var p postDTO

	if err := sqlx.GetContext(ctx, s.ext, &p, `SELECT `+postColumns+` FROM post WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out, err := s.withHashtags(ctx, []*postDTO{&p})
	if err != nil {
		return nil, err
	}

	return out[0], nil
}

func (s pg) ListPosts(ctx context.Context, p *storage.ListPostsParams) ([]*entities.Post, error) {
	query := `SELECT ` + prefixed("p", postColumns) + ` FROM post p WHERE TRUE`
	var args []interface{}

	if p.Hashtag != nil {
		args = append(args, *p.Hashtag)
		query += fmt.Sprintf(` AND EXISTS(
			SELECT 1 FROM post_hashtag ph JOIN hashtag h ON h.id = ph.hashtag_id
			WHERE ph.post_id = p.id AND h.name = $%d)`, len(args))
	}

	if p.Author != nil {
		args = append(args, *p.Author)
		query += fmt.Sprintf(` AND p.author_id = $%d`, len(args))
	}

	if p.FeaturedOnly {
		query += ` AND p.is_featured`
	}

	args = append(args, p.Limit)
	query += fmt.Sprintf(` ORDER BY p.created_at DESC, p.id DESC LIMIT $%d`, len(args))

	var pp []*postDTO
	if err := sqlx.SelectContext(ctx, s.ext, &pp, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return s.withHashtags(ctx, pp)
}

// withHashtags converts dtos and loads hashtags of all posts with a single query.
func (s pg) withHashtags(ctx context.Context, pp []*postDTO) ([]*entities.Post, error) {
	out := make([]*entities.Post, len(pp))
	if len(pp) == 0 {
		return out, nil
	}

	ids := make([]int64, len(pp))
	byID := make(map[int64]*entities.Post, len(pp))
	for i, v := range pp {
		ids[i] = v.ID
		out[i] = &entities.Post{
			ID:         v.ID,
			AuthorID:   v.AuthorID,
			Type:       entities.PostType(v.Type),
			Text:       v.Text,
			Image:      v.Image,
			IsFeatured: v.IsFeatured,
			CreatedAt:  v.CreatedAt,
			Hashtags:   []string{},
		}
		byID[v.ID] = out[i]
	}

	query, args, err := sqlx.In(`
			SELECT ph.post_id, h.name FROM post_hashtag ph
			JOIN hashtag h ON h.id = ph.hashtag_id
			WHERE ph.post_id IN (?)
			ORDER BY h.name
		`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var tags []*postHashtagDTO
	if err := sqlx.SelectContext(ctx, s.ext, &tags, s.ext.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	for _, v := range tags {
		if p, ok := byID[v.PostID]; ok {
			p.Hashtags = append(p.Hashtags, v.Name)
		}
	}

	return out, nil
}

func (s pg) DeletePost(ctx context.Context, id int64) error {
	return s.execOne(ctx, `DELETE FROM post WHERE id = $1`, id)
}

func (s pg) SetPostFeatured(ctx context.Context, id int64, featured bool) error {
	return s.execOne(ctx, `UPDATE post SET is_featured=$2 WHERE id=$1`, id, featured)
}

func (s pg) TagPost(ctx context.Context, postID int64, tags []string) error {
	// hashtag rows are locked in name order.
	sorted := append([]string(nil), tags...)
	sort.Strings(sorted)

	for _, tag := range sorted {
		var hashtagID int64

		if err := sqlx.GetContext(ctx, s.ext, &hashtagID, `
				INSERT INTO hashtag(name, count) VALUES($1, 1)
				ON CONFLICT(name) DO UPDATE SET count = hashtag.count + 1
				RETURNING id
			`, tag,
		); err != nil {
			return fmt.Errorf("failed to upsert hashtag %s: %w", tag, err)
		}

		if _, err := s.ext.ExecContext(ctx,
			`INSERT INTO post_hashtag(post_id, hashtag_id) VALUES($1, $2) ON CONFLICT DO NOTHING`,
			postID, hashtagID,
		); err != nil {
			if isPQError(err, foreignKeyViolation) {
				return storage.ErrNotFound
			}

			return fmt.Errorf("failed to exec: %w", err)
		}
	}

	return nil
}

func (s pg) TrendingHashtags(ctx context.Context, limit uint16) ([]*entities.Hashtag, error) {
	var hh []*entities.Hashtag

	if err := sqlx.SelectContext(ctx, s.ext, &hh,
		`SELECT name, count FROM hashtag WHERE count > 0 ORDER BY count DESC, name ASC LIMIT $1`,
		limit,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return hh, nil
}

func (s pg) CreateStory(ctx context.Context, st *entities.Story) (int64, error) {
	var id int64

	if err := sqlx.GetContext(ctx, s.ext, &id, `
			INSERT INTO story(author_id, media, created_at, expires_at)
			VALUES($1, $2, $3, $4)
			RETURNING id
		`,
		st.AuthorID, st.Media, st.CreatedAt.UTC(), st.ExpiresAt.UTC(),
	); err != nil {
		if isPQError(err, foreignKeyViolation) {
			return 0, storage.ErrNotFound
		}

		return 0, fmt.Errorf("failed to exec: %w", err)
	}

	return id, nil
}

func (s pg) ListActiveStories(ctx context.Context, author int64, now time.Time) ([]*entities.Story, error) {
	var ss []*storyDTO

	if err := sqlx.SelectContext(ctx, s.ext, &ss, `
			SELECT id, author_id, media, created_at, expires_at FROM story
			WHERE author_id = $1 AND expires_at > $2
			ORDER BY created_at ASC, id ASC
		`, author, now.UTC(),
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Story, len(ss))
	for i, v := range ss {
		out[i] = &entities.Story{
			ID:        v.ID,
			AuthorID:  v.AuthorID,
			Media:     v.Media,
			CreatedAt: v.CreatedAt,
			ExpiresAt: v.ExpiresAt,
		}
	}

	return out, nil
}

func (s pg) ListStoryAuthors(ctx context.Context, now time.Time, exclude int64) ([]*entities.Account, error) {
	return s.selectAccounts(ctx, `
			SELECT `+accountColumns+` FROM account
			WHERE id <> $2 AND NOT is_banned
			AND EXISTS(SELECT 1 FROM story WHERE author_id = account.id AND expires_at > $1)
			ORDER BY id ASC
		`, now.UTC(), exclude,
	)
}

func (s pg) DeleteExpiredStories(ctx context.Context, now time.Time) (int64, error) {
	res, err := s.ext.ExecContext(ctx, `DELETE FROM story WHERE expires_at <= $1`, now.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to exec: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return n, nil
}

func (s pg) CreateEvent(ctx context.Context, e *entities.Event) (int64, error) {
	var id int64

	var createdBy *int64
	if e.CreatedBy != 0 {
		createdBy = &e.CreatedBy
	}

	if err := sqlx.GetContext(ctx, s.ext, &id, `
			INSERT INTO event(title, description, type, starts_at, location, created_by, is_official, highlight)
			VALUES($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id
		`,
		e.Title, e.Description, e.Type, e.StartsAt.UTC(), e.Location, nullInt64(createdBy), e.IsOfficial, e.Highlight,
	); err != nil {
		if isPQError(err, foreignKeyViolation) {
			return 0, storage.ErrNotFound
		}

		return 0, fmt.Errorf("failed to exec: %w", err)
	}

	return id, nil
}

func (s pg) ListEvents(ctx context.Context) ([]*entities.Event, error) {
	var ee []*eventDTO

	if err := sqlx.SelectContext(ctx, s.ext, &ee, `
			SELECT id, title, description, type, starts_at, location, created_by, is_official, highlight
			FROM event
			ORDER BY starts_at ASC, id ASC
		`,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Event, len(ee))
	for i, v := range ee {
		out[i] = &entities.Event{
			ID:          v.ID,
			Title:       v.Title,
			Description: v.Description,
			Type:        v.Type,
			StartsAt:    v.StartsAt,
			Location:    v.Location,
			CreatedBy:   v.CreatedBy.Int64,
			IsOfficial:  v.IsOfficial,
			Highlight:   v.Highlight,
		}
	}

	return out, nil
}

func (s pg) CreateReport(ctx context.Context, r *entities.Report) (int64, error) {
	var id int64

	if err := sqlx.GetContext(ctx, s.ext, &id, `
			INSERT INTO report(reporter_id, post_id, gossip_id, reason, created_at)
			VALUES($1, $2, $3, $4, $5)
			RETURNING id
		`,
		r.ReporterID, nullInt64(r.PostID), nullInt64(r.GossipID), r.Reason, r.CreatedAt.UTC(),
	); err != nil {
		if isPQError(err, foreignKeyViolation) {
			return 0, storage.ErrNotFound
		}

		return 0, fmt.Errorf("failed to exec: %w", err)
	}

	return id, nil
}

func (s pg) GetReport(ctx context.Context, id int64) (*entities.Report, error) {
	var r reportDTO

	if err := sqlx.GetContext(ctx, s.ext, &r, `SELECT `+reportColumns+` FROM report WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toReport(&r), nil
}

func (s pg) ListReports(ctx context.Context, resolved bool) ([]*entities.Report, error) {
	var rr []*reportDTO

	if err := sqlx.SelectContext(ctx, s.ext, &rr,
		`SELECT `+reportColumns+` FROM report WHERE resolved = $1 ORDER BY created_at DESC, id DESC`,
		resolved,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Report, len(rr))
	for i, v := range rr {
		out[i] = toReport(v)
	}

	return out, nil
}

func (s pg) ResolveReport(ctx context.Context, id, resolvedBy int64) error {
	return s.execOne(ctx, `UPDATE report SET resolved=TRUE, resolved_by=$2 WHERE id=$1`, id, resolvedBy)
}

type statsDTO struct {
	Accounts    int `db:"accounts"`
	Posts       int `db:"posts"`
	Gossips     int `db:"gossips"`
	OpenReports int `db:"open_reports"`
	Events      int `db:"events"`
}

type dayCountDTO struct {
	Day   time.Time `db:"day"`
	Count int       `db:"count"`
}

func (s pg) Stats(ctx context.Context, since time.Time) (*entities.Stats, error) {
	var totals statsDTO

	if err := sqlx.GetContext(ctx, s.ext, &totals, `
			SELECT
				(SELECT COUNT(*) FROM account) AS accounts,
				(SELECT COUNT(*) FROM post) AS posts,
				(SELECT COUNT(*) FROM gossip WHERE NOT is_deleted) AS gossips,
				(SELECT COUNT(*) FROM report WHERE NOT resolved) AS open_reports,
				(SELECT COUNT(*) FROM event) AS events
		`,
	); err != nil {
		return nil, fmt.Errorf("failed to get totals: %w", err)
	}

	var days []*dayCountDTO

	if err := sqlx.SelectContext(ctx, s.ext, &days, `
			SELECT date_trunc('day', created_at) AS day, COUNT(*) AS count
			FROM post
			WHERE created_at >= $1
			GROUP BY day
			ORDER BY day ASC
		`, since.UTC(),
	); err != nil {
		return nil, fmt.Errorf("failed to query posts per day: %w", err)
	}

	out := &entities.Stats{
		Accounts:    totals.Accounts,
		Posts:       totals.Posts,
		Gossips:     totals.Gossips,
		OpenReports: totals.OpenReports,
		Events:      totals.Events,
		PostsPerDay: make([]entities.DayCount, len(days)),
	}
	for i, v := range days {
		out.PostsPerDay[i] = entities.DayCount{Day: v.Day.UTC(), Count: v.Count}
	}

	return out, nil
}

func toReport(r *reportDTO) *entities.Report {
	return &entities.Report{
		ID:         r.ID,
		ReporterID: r.ReporterID,
		PostID:     fromNullInt64(r.PostID),
		GossipID:   fromNullInt64(r.GossipID),
		Reason:     r.Reason,
		Resolved:   r.Resolved,
		ResolvedBy: fromNullInt64(r.ResolvedBy),
		CreatedAt:  r.CreatedAt,
	}
}
