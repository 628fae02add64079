// Package entities contains main entities of service.
package entities

import (
	"time"

	"github.com/campusconnect/campus/internal/plan"
)

// Account ...
type Account struct {
	ID           int64
	Email        string
	PasswordHash string
	Name         string
	Year         string
	Branch       string
	Bio          string
	Interests    string
	LookingFor   string
	Photo        string
	IsAdmin      bool
	IsBanned     bool
	CreatedAt    time.Time

	Plan          plan.Tier
	PlanExpiresAt *time.Time

	// LastSwipeDate is a calendar date (midnight UTC) SwipesToday belongs to.
	LastSwipeDate *time.Time
	SwipesToday   int
}

// EffectivePlan returns the tier in force at now.
func (a Account) EffectivePlan(now time.Time) plan.Tier {
	return plan.Effective(a.Plan, a.PlanExpiresAt, now)
}

// HasPlan reports whether account is entitled to required tier at now.
func (a Account) HasPlan(required plan.Tier, now time.Time) bool {
	return plan.HasAtLeast(a.Plan, a.PlanExpiresAt, required, now)
}

// Profile contains account fields editable by its owner.
type Profile struct {
	Year       string
	Branch     string
	Bio        string
	Interests  string
	LookingFor string
}

// GossipCategory ...
type GossipCategory string

// Gossip categories.
const (
	HostelCategory     GossipCategory = "hostel"
	CrushCategory      GossipCategory = "crush"
	FestCategory       GossipCategory = "fest"
	ProfessorsCategory GossipCategory = "professors"
	PlacementsCategory GossipCategory = "placements"
	RandomCategory     GossipCategory = "random"
)

// GossipCategories lists known categories.
// nolint:gochecknoglobals
var GossipCategories = []GossipCategory{
	HostelCategory, CrushCategory, FestCategory, ProfessorsCategory, PlacementsCategory, RandomCategory,
}

// Valid ...
func (c GossipCategory) Valid() bool {
	for _, v := range GossipCategories {
		if c == v {
			return true
		}
	}
	return false
}

// Gossip is an anonymous post. CreatedBy is kept for moderation only.
type Gossip struct {
	ID         int64
	Text       string
	Category   GossipCategory
	CreatedBy  int64
	Upvotes    int
	Downvotes  int
	IsFeatured bool
	IsDeleted  bool
	CreatedAt  time.Time
}

// Score ...
func (g Gossip) Score() int {
	return g.Upvotes - g.Downvotes
}

// GossipDetails is a gossip with its thread as seen by one viewer.
type GossipDetails struct {
	Gossip   *Gossip
	Comments []*GossipComment
	UserVote VoteValue
}

// GossipComment ...
type GossipComment struct {
	ID        int64
	GossipID  int64
	Text      string
	CreatedBy int64
	CreatedAt time.Time
}

// VoteValue is a signed unit vote, 0 means no vote.
type VoteValue int8

// Vote values.
const (
	NoVote   VoteValue = 0
	UpVote   VoteValue = 1
	DownVote VoteValue = -1
)

// Vote is one account's vote on a gossip.
type Vote struct {
	GossipID  int64
	AccountID int64
	Value     VoteValue
}

// VoteResult is the outcome of applying a vote.
type VoteResult struct {
	Upvotes   int
	Downvotes int
	Score     int
	UserVote  VoteValue
}

// SwipeMode ...
type SwipeMode string

// Swipe modes.
const (
	DatingMode SwipeMode = "dating"
	EventMode  SwipeMode = "event"
)

// Valid ...
func (m SwipeMode) Valid() bool {
	return m == DatingMode || m == EventMode
}

// Like is a directional swipe-right.
type Like struct {
	From      int64
	To        int64
	Mode      SwipeMode
	CreatedAt time.Time
}

// Match pairs two accounts which liked each other. AccountA is always less than AccountB.
type Match struct {
	ID        int64
	AccountA  int64
	AccountB  int64
	Mode      SwipeMode
	CreatedAt time.Time
}

// Has reports whether account participates in the match.
func (m Match) Has(account int64) bool {
	return m.AccountA == account || m.AccountB == account
}

// Other returns the second participant.
func (m Match) Other(account int64) int64 {
	if m.AccountA == account {
		return m.AccountB
	}
	return m.AccountA
}

// SwipeResult ...
type SwipeResult struct {
	Matched bool
	Match   *Match
}

// SwipeStatus describes daily swipe usage of an account.
type SwipeStatus struct {
	Plan      plan.Tier
	Used      int
	Limit     int
	Unlimited bool
}

// Message ...
type Message struct {
	ID        int64
	MatchID   int64
	SenderID  int64
	Text      string
	CreatedAt time.Time
}

// PostType ...
type PostType string

// Post types.
const (
	GeneralPost        PostType = "general"
	EventPost          PostType = "event"
	PartnerRequestPost PostType = "partner_request"
	// AnnouncementPost is published by admins only.
	AnnouncementPost PostType = "announcement"
)

// Post ...
type Post struct {
	ID         int64
	AuthorID   int64
	Type       PostType
	Text       string
	Image      string
	IsFeatured bool
	Hashtags   []string
	CreatedAt  time.Time
}

// Hashtag ...
type Hashtag struct {
	Name  string
	Count int
}

// Story ...
type Story struct {
	ID        int64
	AuthorID  int64
	Media     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Event ...
type Event struct {
	ID          int64
	Title       string
	Description string
	Type        string
	StartsAt    time.Time
	Location    string
	CreatedBy   int64
	IsOfficial  bool
	Highlight   bool
}

// Report is a complaint about a post or a gossip.
type Report struct {
	ID         int64
	ReporterID int64
	PostID     *int64
	GossipID   *int64
	Reason     string
	Resolved   bool
	ResolvedBy *int64
	CreatedAt  time.Time
}

// Stats is an admin dashboard summary.
type Stats struct {
	Accounts    int
	Posts       int
	Gossips     int
	OpenReports int
	Events      int
	// PostsPerDay is ordered by day ascending and has no gaps.
	PostsPerDay []DayCount
}

// DayCount ...
type DayCount struct {
	Day   time.Time
	Count int
}

// Order is a payment order created for a plan subscription.
type Order struct {
	ID       string
	Plan     plan.Tier
	Amount   int64
	Currency string
	KeyID    string
}

// PaymentConfirmation is what the payment gateway posts back after checkout.
type PaymentConfirmation struct {
	OrderID   string
	PaymentID string
	Signature string
	Plan      string
}

// UploadTicket is a pre-signed upload target for a media object.
type UploadTicket struct {
	Key       string
	URL       string
	ExpiresIn time.Duration
}
