package impl

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/campusconnect/campus/internal/entities"
	"github.com/campusconnect/campus/internal/media"
	"github.com/campusconnect/campus/internal/storage"
)

// maxHashtagLength matches hashtag.name column size.
const maxHashtagLength = 64

var hashtagRe = regexp.MustCompile(`#([\p{L}\p{M}\p{N}_]+)`)

// extractHashtags returns lower-cased unique hashtags in order of appearance.
// Tags longer than maxHashtagLength are skipped.
func extractHashtags(text string) []string {
	var out []string
	seen := make(map[string]struct{})

	for _, m := range hashtagRe.FindAllStringSubmatch(text, -1) {
		tag := strings.ToLower(m[1])
		if utf8.RuneCountInString(tag) > maxHashtagLength {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}

	return out
}

func parsePostType(t string) (entities.PostType, error) {
	switch pt := entities.PostType(t); pt {
	case "":
		return entities.GeneralPost, nil
	case entities.GeneralPost, entities.EventPost, entities.PartnerRequestPost:
		return pt, nil
	default:
		return "", invalid("unknown post type %q", t)
	}
}

func (s srv) CreatePost(ctx context.Context, author int64, postType, text, image string) (*entities.Post, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, invalid("post can not be empty")
	}

	pt, err := parsePostType(postType)
	if err != nil {
		return nil, err
	}

	if image != "" && !strings.HasPrefix(image, media.PostPrefix+"/") {
		return nil, invalid("image must be uploaded with an upload ticket")
	}

	return s.publishPost(ctx, &entities.Post{
		AuthorID:  author,
		Type:      pt,
		Text:      text,
		Image:     image,
		Hashtags:  extractHashtags(text),
		CreatedAt: s.now().UTC(),
	})
}

// publishPost stores p together with its hashtags.
func (s srv) publishPost(ctx context.Context, p *entities.Post) (*entities.Post, error) {
	if err := s.s.InTx(ctx, func(s storage.Storage) error {
		id, err := s.CreatePost(ctx, p)
		if err != nil {
			return translate(err, "account")
		}
		p.ID = id

		if len(p.Hashtags) > 0 {
			if err := s.TagPost(ctx, id, p.Hashtags); err != nil {
				return translate(err, "post")
			}
		}

		return nil
	}); err != nil {
		return nil, err
	}

	if p.Hashtags == nil {
		p.Hashtags = []string{}
	}

	return p, nil
}

func (s srv) ListPosts(ctx context.Context, hashtag string, featuredOnly bool) ([]*entities.Post, error) {
	p := storage.ListPostsParams{
		FeaturedOnly: featuredOnly,
		Limit:        listLimit,
	}

	if tag := strings.ToLower(strings.TrimPrefix(hashtag, "#")); tag != "" {
		p.Hashtag = &tag
	}

	pp, err := s.s.ListPosts(ctx, &p)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return pp, nil
}

func (s srv) TrendingHashtags(ctx context.Context) ([]*entities.Hashtag, error) {
	hh, err := s.s.TrendingHashtags(ctx, trendingLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get trending hashtags: %w", err)
	}

	return hh, nil
}

func (s srv) CreateStory(ctx context.Context, author int64, contentType string) (*entities.Story, *entities.UploadTicket, error) {
	t, err := s.presign(ctx, media.StoryPrefix, contentType)
	if err != nil {
		return nil, nil, err
	}

	now := s.now().UTC()
	st := &entities.Story{
		AuthorID:  author,
		Media:     t.Key,
		CreatedAt: now,
		ExpiresAt: now.Add(storyTTL),
	}

	id, err := s.s.CreateStory(ctx, st)
	if err != nil {
		return nil, nil, translate(err, "account")
	}
	st.ID = id

	return st, t, nil
}

func (s srv) ListStories(ctx context.Context, author int64) ([]*entities.Story, error) {
	ss, err := s.s.ListActiveStories(ctx, author, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to list stories: %w", err)
	}

	return ss, nil
}

func (s srv) ListStoryAuthors(ctx context.Context, viewer int64) ([]*entities.Account, error) {
	aa, err := s.s.ListStoryAuthors(ctx, s.now(), viewer)
	if err != nil {
		return nil, fmt.Errorf("failed to list story authors: %w", err)
	}

	return aa, nil
}

func (s srv) ListEvents(ctx context.Context) ([]*entities.Event, error) {
	ee, err := s.s.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return ee, nil
}

func (s srv) CreateEvent(ctx context.Context, admin int64, e *entities.Event) (*entities.Event, error) {
	if err := s.requireAdmin(ctx, admin); err != nil {
		return nil, err
	}

	out := *e
	out.Title = strings.TrimSpace(out.Title)
	if out.Title == "" {
		return nil, invalid("title is required")
	}

	if out.StartsAt.IsZero() {
		return nil, invalid("start time is required")
	}
	out.CreatedBy = admin

	id, err := s.s.CreateEvent(ctx, &out)
	if err != nil {
		return nil, translate(err, "event")
	}
	out.ID = id

	return &out, nil
}

func (s srv) CreateReport(ctx context.Context, reporter int64, postID, gossipID *int64, reason string) (*entities.Report, error) {
	if (postID == nil) == (gossipID == nil) {
		return nil, invalid("exactly one of post or gossip must be reported")
	}

	r := &entities.Report{
		ReporterID: reporter,
		PostID:     postID,
		GossipID:   gossipID,
		Reason:     strings.TrimSpace(reason),
		CreatedAt:  s.now().UTC(),
	}

	id, err := s.s.CreateReport(ctx, r)
	if err != nil {
		return nil, translate(err, "reported item")
	}
	r.ID = id

	return r, nil
}
