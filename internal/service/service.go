// Package service contains interface for service business-logic.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusconnect/campus/internal/entities"
	"github.com/campusconnect/campus/internal/plan"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

var (
	// ErrNotFound is returned when referenced account, item or match does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is returned on malformed input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrRejected is returned when the operation is disallowed by current state.
	ErrRejected = errors.New("rejected")
	// ErrQuotaExceeded is returned when the daily swipe cap is reached.
	ErrQuotaExceeded = errors.New("daily swipe limit reached")
	// ErrUnauthorized is returned when the actor lacks rights for the operation.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrPlanRequired is returned when a feature needs a higher plan.
	ErrPlanRequired = fmt.Errorf("%w: upgrade your plan", ErrRejected)
)

// Service ...
type Service interface {
	Register(ctx context.Context, email, password, name, setupCode string) (*entities.Account, error)
	// Login returns session token of the account.
	Login(ctx context.Context, email, password string) (string, *entities.Account, error)
	GetAccount(ctx context.Context, id int64) (*entities.Account, error)
	UpdateProfile(ctx context.Context, id int64, p *entities.Profile) error
	// PhotoUploadTicket returns pre-signed upload target and makes it the account's photo.
	PhotoUploadTicket(ctx context.Context, id int64, contentType string) (*entities.UploadTicket, error)
	UploadTicket(ctx context.Context, account int64, contentType string) (*entities.UploadTicket, error)

	// ApplyPlan stores tier with its expiry starting now.
	ApplyPlan(ctx context.Context, account int64, tier plan.Tier) error
	Subscribe(ctx context.Context, account int64, planKey string) (*entities.Order, error)
	// ConfirmPayment verifies gateway signature and applies the paid plan.
	ConfirmPayment(ctx context.Context, account int64, c *entities.PaymentConfirmation) (*entities.Account, error)

	CreateGossip(ctx context.Context, author int64, text, category string) (*entities.Gossip, error)
	ListGossips(ctx context.Context, category, sortBy string) ([]*entities.Gossip, error)
	GetGossip(ctx context.Context, id, viewer int64) (*entities.GossipDetails, error)
	// VoteGossip applies up or down vote with toggle semantics.
	VoteGossip(ctx context.Context, gossipID, accountID int64, direction string) (*entities.VoteResult, error)
	CommentGossip(ctx context.Context, gossipID, author int64, text string) (*entities.GossipComment, error)

	SwipeCandidates(ctx context.Context, actor int64, mode string) ([]*entities.Account, error)
	SwipeStatus(ctx context.Context, actor int64) (*entities.SwipeStatus, error)
	// Swipe likes target, consuming one swipe of the daily quota, and matches on mutual like.
	Swipe(ctx context.Context, actor, target int64, mode string) (*entities.SwipeResult, error)
	// LikesReceived lists who liked the account. Requires a plan with SeeLikes.
	LikesReceived(ctx context.Context, account int64, mode string) ([]*entities.Account, error)

	ListMatches(ctx context.Context, account int64) ([]*entities.Match, error)
	ListMessages(ctx context.Context, matchID, account int64) ([]*entities.Message, error)
	SendMessage(ctx context.Context, matchID, sender int64, text string) (*entities.Message, error)

	CreatePost(ctx context.Context, author int64, postType, text, image string) (*entities.Post, error)
	ListPosts(ctx context.Context, hashtag string, featuredOnly bool) ([]*entities.Post, error)
	TrendingHashtags(ctx context.Context) ([]*entities.Hashtag, error)

	CreateStory(ctx context.Context, author int64, contentType string) (*entities.Story, *entities.UploadTicket, error)
	ListStories(ctx context.Context, author int64) ([]*entities.Story, error)
	ListStoryAuthors(ctx context.Context, viewer int64) ([]*entities.Account, error)

	ListEvents(ctx context.Context) ([]*entities.Event, error)
	CreateEvent(ctx context.Context, admin int64, e *entities.Event) (*entities.Event, error)

	CreateReport(ctx context.Context, reporter int64, postID, gossipID *int64, reason string) (*entities.Report, error)

	ListAccounts(ctx context.Context, admin int64, bannedOnly bool) ([]*entities.Account, error)
	SetBanned(ctx context.Context, admin, account int64, banned bool) error
	DeletePost(ctx context.Context, admin, postID int64) error
	FeaturePost(ctx context.Context, admin, postID int64, featured bool) error
	DeleteGossip(ctx context.Context, admin, gossipID int64) error
	FeatureGossip(ctx context.Context, admin, gossipID int64, featured bool) error
	ListReports(ctx context.Context, admin int64, resolved bool) ([]*entities.Report, error)
	// ResolveReport closes report, removing reported content when removeContent is set.
	ResolveReport(ctx context.Context, admin, reportID int64, removeContent bool) error
	// Stats returns dashboard totals with posts per day for the last week including today.
	Stats(ctx context.Context, admin int64) (*entities.Stats, error)
	// CreateAnnouncement publishes a featured announcement post on behalf of admin.
	CreateAnnouncement(ctx context.Context, admin int64, text, image string) (*entities.Post, error)
}
