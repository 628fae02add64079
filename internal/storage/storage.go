// Package storage contains a storage interface.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/campusconnect/campus/internal/entities"
	"github.com/campusconnect/campus/internal/plan"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = fmt.Errorf("not found")

// ErrAlreadyExists ...
var ErrAlreadyExists = fmt.Errorf("already exists")

// Storage provides methods for interacting with database.
type Storage interface {
	// InTx runs f in a single transaction. The transaction is committed when f returns nil.
	InTx(ctx context.Context, f func(s Storage) error) error
	Ping(ctx context.Context) error

	CreateAccount(ctx context.Context, a *entities.Account) (int64, error)
	GetAccount(ctx context.Context, id int64) (*entities.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*entities.Account, error)
	// LockAccounts returns existing accounts of a and b ordered by id and locks their rows
	// in that order until the end of transaction.
	LockAccounts(ctx context.Context, a, b int64) ([]*entities.Account, error)
	ListAccounts(ctx context.Context, p *ListAccountsParams) ([]*entities.Account, error)
	UpdateProfile(ctx context.Context, id int64, p *entities.Profile) error
	SetPhoto(ctx context.Context, id int64, key string) error
	SetBanned(ctx context.Context, id int64, banned bool) error
	SetPlan(ctx context.Context, id int64, tier plan.Tier, expiresAt *time.Time) error
	SetSwipes(ctx context.Context, id int64, day time.Time, count int) error

	CreateGossip(ctx context.Context, g *entities.Gossip) (int64, error)
	GetGossip(ctx context.Context, id int64) (*entities.Gossip, error)
	// LockGossip returns gossip and locks its row until the end of transaction.
	LockGossip(ctx context.Context, id int64) (*entities.Gossip, error)
	ListGossips(ctx context.Context, p *ListGossipsParams) ([]*entities.Gossip, error)
	SetGossipVotes(ctx context.Context, id int64, upvotes, downvotes int) error
	SetGossipDeleted(ctx context.Context, id int64, deleted bool) error
	SetGossipFeatured(ctx context.Context, id int64, featured bool) error

	GetVote(ctx context.Context, gossipID, accountID int64) (*entities.Vote, error)
	CreateVote(ctx context.Context, v *entities.Vote) error
	UpdateVote(ctx context.Context, v *entities.Vote) error
	DeleteVote(ctx context.Context, gossipID, accountID int64) error

	CreateGossipComment(ctx context.Context, c *entities.GossipComment) (int64, error)
	ListGossipComments(ctx context.Context, gossipID int64) ([]*entities.GossipComment, error)

	// CreateLike returns false when the same like is already stored.
	CreateLike(ctx context.Context, l *entities.Like) (bool, error)
	HasLike(ctx context.Context, from, to int64, mode entities.SwipeMode) (bool, error)
	ListLikers(ctx context.Context, to int64, mode entities.SwipeMode) ([]*entities.Account, error)
	ListSwipeCandidates(ctx context.Context, actor int64, mode entities.SwipeMode, limit uint16) ([]*entities.Account, error)

	// CreateMatch returns ErrAlreadyExists when the pair is already matched in the mode.
	CreateMatch(ctx context.Context, m *entities.Match) (int64, error)
	GetMatch(ctx context.Context, id int64) (*entities.Match, error)
	GetMatchByPair(ctx context.Context, a, b int64, mode entities.SwipeMode) (*entities.Match, error)
	ListMatches(ctx context.Context, account int64) ([]*entities.Match, error)

	CreateMessage(ctx context.Context, m *entities.Message) (int64, error)
	ListMessages(ctx context.Context, matchID int64) ([]*entities.Message, error)

	CreatePost(ctx context.Context, p *entities.Post) (int64, error)
	GetPost(ctx context.Context, id int64) (*entities.Post, error)
	ListPosts(ctx context.Context, p *ListPostsParams) ([]*entities.Post, error)
	DeletePost(ctx context.Context, id int64) error
	SetPostFeatured(ctx context.Context, id int64, featured bool) error
	// TagPost attaches hashtags to post and bumps their usage counters.
	TagPost(ctx context.Context, postID int64, tags []string) error
	TrendingHashtags(ctx context.Context, limit uint16) ([]*entities.Hashtag, error)

	CreateStory(ctx context.Context, s *entities.Story) (int64, error)
	ListActiveStories(ctx context.Context, author int64, now time.Time) ([]*entities.Story, error)
	ListStoryAuthors(ctx context.Context, now time.Time, exclude int64) ([]*entities.Account, error)
	// DeleteExpiredStories removes stories expired before now and returns their count.
	DeleteExpiredStories(ctx context.Context, now time.Time) (int64, error)

	CreateEvent(ctx context.Context, e *entities.Event) (int64, error)
	ListEvents(ctx context.Context) ([]*entities.Event, error)

	CreateReport(ctx context.Context, r *entities.Report) (int64, error)
	GetReport(ctx context.Context, id int64) (*entities.Report, error)
	ListReports(ctx context.Context, resolved bool) ([]*entities.Report, error)
	ResolveReport(ctx context.Context, id, resolvedBy int64) error

	// Stats returns entity totals and posts per day created since the given time.
	// Days without posts are omitted.
	Stats(ctx context.Context, since time.Time) (*entities.Stats, error)
}

// GossipSortType ...
type GossipSortType string

const (
	// TopSortType sorts by score, then by creation time.
	TopSortType GossipSortType = "top"
	// NewSortType ...
	NewSortType GossipSortType = "new"
)

// ListGossipsParams ...
type ListGossipsParams struct {
	SortBy   GossipSortType
	Category *entities.GossipCategory
	// WithDeleted includes removed gossips, used by moderation.
	WithDeleted bool
	Limit       uint16
}

// ListPostsParams ...
type ListPostsParams struct {
	Hashtag      *string
	Author       *int64
	FeaturedOnly bool
	Limit        uint16
}

// ListAccountsParams ...
type ListAccountsParams struct {
	BannedOnly bool
	Limit      uint16
}
