package impl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/campusconnect/campus/internal/entities"
	"github.com/campusconnect/campus/internal/media"
	"github.com/campusconnect/campus/internal/service"
	"github.com/campusconnect/campus/internal/storage"
)

func (s srv) ListAccounts(ctx context.Context, admin int64, bannedOnly bool) ([]*entities.Account, error) {
	if err := s.requireAdmin(ctx, admin); err != nil {
		return nil, err
	}

	aa, err := s.s.ListAccounts(ctx, &storage.ListAccountsParams{
		BannedOnly: bannedOnly,
		Limit:      listLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	return aa, nil
}

func (s srv) SetBanned(ctx context.Context, admin, account int64, banned bool) error {
	if err := s.requireAdmin(ctx, admin); err != nil {
		return err
	}

	a, err := getAccount(ctx, s.s, account)
	if err != nil {
		return err
	}

	if banned && a.IsAdmin {
		return fmt.Errorf("%w: admin can not be banned", service.ErrRejected)
	}

	if err := s.s.SetBanned(ctx, account, banned); err != nil {
		return translate(err, "account")
	}

	log.WithField("admin", admin).WithField("account", account).WithField("banned", banned).Info("ban changed")

	return nil
}

func (s srv) DeletePost(ctx context.Context, admin, postID int64) error {
	if err := s.requireAdmin(ctx, admin); err != nil {
		return err
	}

	if err := s.s.DeletePost(ctx, postID); err != nil {
		return translate(err, "post")
	}

	return nil
}

func (s srv) FeaturePost(ctx context.Context, admin, postID int64, featured bool) error {
	if err := s.requireAdmin(ctx, admin); err != nil {
		return err
	}

	if err := s.s.SetPostFeatured(ctx, postID, featured); err != nil {
		return translate(err, "post")
	}

	return nil
}

func (s srv) DeleteGossip(ctx context.Context, admin, gossipID int64) error {
	if err := s.requireAdmin(ctx, admin); err != nil {
		return err
	}

	if err := s.s.SetGossipDeleted(ctx, gossipID, true); err != nil {
		return translate(err, "gossip")
	}

	return nil
}

func (s srv) FeatureGossip(ctx context.Context, admin, gossipID int64, featured bool) error {
	if err := s.requireAdmin(ctx, admin); err != nil {
		return err
	}

	if err := s.s.SetGossipFeatured(ctx, gossipID, featured); err != nil {
		return translate(err, "gossip")
	}

	return nil
}

func (s srv) ListReports(ctx context.Context, admin int64, resolved bool) ([]*entities.Report, error) {
	if err := s.requireAdmin(ctx, admin); err != nil {
		return nil, err
	}

	rr, err := s.s.ListReports(ctx, resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	return rr, nil
}

func (s srv) ResolveReport(ctx context.Context, admin, reportID int64, removeContent bool) error {
	if err := s.requireAdmin(ctx, admin); err != nil {
		return err
	}

	return s.s.InTx(ctx, func(s storage.Storage) error {
		r, err := s.GetReport(ctx, reportID)
		if err != nil {
			return translate(err, "report")
		}

		if r.Resolved {
			return fmt.Errorf("%w: report is already resolved", service.ErrRejected)
		}

		if removeContent {
			switch {
			case r.PostID != nil:
				err = s.DeletePost(ctx, *r.PostID)
			case r.GossipID != nil:
				err = s.SetGossipDeleted(ctx, *r.GossipID, true)
			}
			if err != nil {
				return translate(err, "reported item")
			}
		}

		if err := s.ResolveReport(ctx, reportID, admin); err != nil {
			return translate(err, "report")
		}

		return nil
	})
}

// statsDays is the length of the posts per day series.
const statsDays = 7

func (s srv) Stats(ctx context.Context, admin int64) (*entities.Stats, error) {
	if err := s.requireAdmin(ctx, admin); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	since := today.AddDate(0, 0, 1-statsDays)

	st, err := s.s.Stats(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	counts := make(map[time.Time]int, len(st.PostsPerDay))
	for _, v := range st.PostsPerDay {
		counts[v.Day] = v.Count
	}

	st.PostsPerDay = make([]entities.DayCount, statsDays)
	for i := range st.PostsPerDay {
		day := since.AddDate(0, 0, i)
		st.PostsPerDay[i] = entities.DayCount{Day: day, Count: counts[day]}
	}

	return st, nil
}

func (s srv) CreateAnnouncement(ctx context.Context, admin int64, text, image string) (*entities.Post, error) {
	if err := s.requireAdmin(ctx, admin); err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, invalid("announcement can not be empty")
	}

	if image != "" && !strings.HasPrefix(image, media.PostPrefix+"/") {
		return nil, invalid("image must be uploaded with an upload ticket")
	}

	p, err := s.publishPost(ctx, &entities.Post{
		AuthorID:   admin,
		Type:       entities.AnnouncementPost,
		Text:       text,
		Image:      image,
		IsFeatured: true,
		Hashtags:   extractHashtags(text),
		CreatedAt:  s.now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	log.WithField("admin", admin).WithField("post", p.ID).Info("announcement published")

	return p, nil
}
