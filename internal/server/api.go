package server

import (
	"time"

	"github.com/campusconnect/campus/internal/entities"
	"github.com/campusconnect/campus/internal/plan"
)

// RegisterRequest ...
// swagger:model
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	// SetupCode grants admin rights when it matches the configured one.
	SetupCode string `json:"setup_code,omitempty"`
}

// LoginRequest ...
// swagger:model
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse ...
// swagger:model
type LoginResponse struct {
	Token   string  `json:"token"`
	Account Account `json:"account"`
}

// Account is the caller's own account.
// swagger:model
type Account struct {
	Profile
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	Banned  bool   `json:"banned"`
	// Plan is the tier in force now.
	Plan          string     `json:"plan"`
	PlanExpiresAt *time.Time `json:"plan_expires_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Profile is the public part of an account.
// swagger:model
type Profile struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Year       string `json:"year"`
	Branch     string `json:"branch"`
	Bio        string `json:"bio"`
	Interests  string `json:"interests"`
	LookingFor string `json:"looking_for"`
	Photo      string `json:"photo,omitempty"`
}

// UpdateProfileRequest ...
// swagger:model
type UpdateProfileRequest struct {
	Year       string `json:"year"`
	Branch     string `json:"branch"`
	Bio        string `json:"bio"`
	Interests  string `json:"interests"`
	LookingFor string `json:"looking_for"`
}

// UploadRequest ...
// swagger:model
type UploadRequest struct {
	ContentType string `json:"content_type"`
}

// UploadTicket is a pre-signed PUT target.
// swagger:model
type UploadTicket struct {
	Key       string `json:"key"`
	URL       string `json:"url"`
	ExpiresIn int64  `json:"expires_in"`
}

// Plan ...
// swagger:model
type Plan struct {
	Key          string `json:"key"`
	Name         string `json:"name"`
	PriceINR     int64  `json:"price_inr"`
	SwipesPerDay int    `json:"swipes_per_day"`
	Unlimited    bool   `json:"unlimited"`
	SeeLikes     bool   `json:"see_likes"`
}

// SubscribeRequest ...
// swagger:model
type SubscribeRequest struct {
	Plan string `json:"plan"`
}

// Order ...
// swagger:model
type Order struct {
	ID       string `json:"order_id"`
	Plan     string `json:"plan"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"key_id"`
}

// PaymentCallbackRequest ...
// swagger:model
type PaymentCallbackRequest struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
	Plan      string `json:"plan"`
}

// CreateGossipRequest ...
// swagger:model
type CreateGossipRequest struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// Gossip is an anonymous post, its author is never exposed.
// swagger:model
type Gossip struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	Category   string    `json:"category"`
	Upvotes    int       `json:"upvotes"`
	Downvotes  int       `json:"downvotes"`
	Score      int       `json:"score"`
	IsFeatured bool      `json:"is_featured"`
	CreatedAt  time.Time `json:"created_at"`
}

// GossipDetails ...
// swagger:model
type GossipDetails struct {
	Gossip
	Comments []Comment `json:"comments"`
	// UserVote is 1, -1 or 0 when the caller has not voted.
	UserVote int8 `json:"user_vote"`
}

// Comment ...
// swagger:model
type Comment struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// VoteRequest ...
// swagger:model
type VoteRequest struct {
	// enum: up,down
	Direction string `json:"direction"`
}

// VoteResponse ...
// swagger:model
type VoteResponse struct {
	Upvotes   int  `json:"upvotes"`
	Downvotes int  `json:"downvotes"`
	Score     int  `json:"score"`
	UserVote  int8 `json:"user_vote"`
}

// TextRequest ...
// swagger:model
type TextRequest struct {
	Text string `json:"text"`
}

// SwipeRequest ...
// swagger:model
type SwipeRequest struct {
	Target int64 `json:"target"`
	// enum: dating,event
	Mode string `json:"mode"`
}

// SwipeResponse ...
// swagger:model
type SwipeResponse struct {
	Matched bool   `json:"matched"`
	Match   *Match `json:"match,omitempty"`
}

// SwipeStatus ...
// swagger:model
type SwipeStatus struct {
	Plan      string `json:"plan"`
	Used      int    `json:"used"`
	Limit     int    `json:"limit"`
	Unlimited bool   `json:"unlimited"`
}

// Match ...
// swagger:model
type Match struct {
	ID        int64     `json:"id"`
	AccountA  int64     `json:"account_a"`
	AccountB  int64     `json:"account_b"`
	Mode      string    `json:"mode"`
	CreatedAt time.Time `json:"created_at"`
}

// Message ...
// swagger:model
type Message struct {
	ID        int64     `json:"id"`
	SenderID  int64     `json:"sender_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatePostRequest ...
// swagger:model
type CreatePostRequest struct {
	// enum: general,event,partner_request
	Type  string `json:"type"`
	Text  string `json:"text"`
	Image string `json:"image,omitempty"`
}

// Post ...
// swagger:model
type Post struct {
	ID         int64     `json:"id"`
	AuthorID   int64     `json:"author_id"`
	Type       string    `json:"type"`
	Text       string    `json:"text"`
	Image      string    `json:"image,omitempty"`
	IsFeatured bool      `json:"is_featured"`
	Hashtags   []string  `json:"hashtags"`
	CreatedAt  time.Time `json:"created_at"`
}

// Hashtag ...
// swagger:model
type Hashtag struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Story ...
// swagger:model
type Story struct {
	ID        int64     `json:"id"`
	AuthorID  int64     `json:"author_id"`
	Media     string    `json:"media"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CreateStoryResponse ...
// swagger:model
type CreateStoryResponse struct {
	Story  Story        `json:"story"`
	Upload UploadTicket `json:"upload"`
}

// Event ...
// swagger:model
type Event struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	StartsAt    time.Time `json:"starts_at"`
	Location    string    `json:"location"`
	IsOfficial  bool      `json:"is_official"`
	Highlight   bool      `json:"highlight"`
}

// CreateReportRequest ...
// swagger:model
type CreateReportRequest struct {
	PostID   *int64 `json:"post_id,omitempty"`
	GossipID *int64 `json:"gossip_id,omitempty"`
	Reason   string `json:"reason"`
}

// Report ...
// swagger:model
type Report struct {
	ID         int64     `json:"id"`
	ReporterID int64     `json:"reporter_id"`
	PostID     *int64    `json:"post_id,omitempty"`
	GossipID   *int64    `json:"gossip_id,omitempty"`
	Reason     string    `json:"reason"`
	Resolved   bool      `json:"resolved"`
	CreatedAt  time.Time `json:"created_at"`
}

// BanRequest ...
// swagger:model
type BanRequest struct {
	Banned bool `json:"banned"`
}

// FeatureRequest ...
// swagger:model
type FeatureRequest struct {
	Featured bool `json:"featured"`
}

// ResolveReportRequest ...
// swagger:model
type ResolveReportRequest struct {
	RemoveContent bool `json:"remove_content"`
}

// AnnouncementRequest ...
// swagger:model
type AnnouncementRequest struct {
	Text  string `json:"text"`
	Image string `json:"image,omitempty"`
}

// DayCount ...
// swagger:model
type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// Stats ...
// swagger:model
type Stats struct {
	Accounts    int        `json:"accounts"`
	Posts       int        `json:"posts"`
	Gossips     int        `json:"gossips"`
	OpenReports int        `json:"open_reports"`
	Events      int        `json:"events"`
	PostsPerDay []DayCount `json:"posts_per_day"`
}

func toAPIStats(st *entities.Stats) Stats {
	out := Stats{
		Accounts:    st.Accounts,
		Posts:       st.Posts,
		Gossips:     st.Gossips,
		OpenReports: st.OpenReports,
		Events:      st.Events,
		PostsPerDay: make([]DayCount, len(st.PostsPerDay)),
	}
	for i, v := range st.PostsPerDay {
		out.PostsPerDay[i] = DayCount{Day: v.Day.Format("2006-01-02"), Count: v.Count}
	}

	return out
}

func toAPIProfile(a *entities.Account) Profile {
	return Profile{
		ID:         a.ID,
		Name:       a.Name,
		Year:       a.Year,
		Branch:     a.Branch,
		Bio:        a.Bio,
		Interests:  a.Interests,
		LookingFor: a.LookingFor,
		Photo:      a.Photo,
	}
}

func toAPIProfiles(aa []*entities.Account) []Profile {
	out := make([]Profile, len(aa))
	for i, v := range aa {
		out[i] = toAPIProfile(v)
	}
	return out
}

func toAPIAccount(a *entities.Account, now time.Time) Account {
	out := Account{
		Profile:   toAPIProfile(a),
		Email:     a.Email,
		IsAdmin:   a.IsAdmin,
		Banned:    a.IsBanned,
		Plan:      a.EffectivePlan(now).String(),
		CreatedAt: a.CreatedAt,
	}

	if a.EffectivePlan(now) != plan.Free {
		out.PlanExpiresAt = a.PlanExpiresAt
	}

	return out
}

func toAPIAccounts(aa []*entities.Account, now time.Time) []Account {
	out := make([]Account, len(aa))
	for i, v := range aa {
		out[i] = toAPIAccount(v, now)
	}
	return out
}

func toAPITicket(t *entities.UploadTicket) UploadTicket {
	return UploadTicket{
		Key:       t.Key,
		URL:       t.URL,
		ExpiresIn: int64(t.ExpiresIn.Seconds()),
	}
}

func toAPIPlans(pp []plan.Plan) []Plan {
	out := make([]Plan, len(pp))
	for i, v := range pp {
		out[i] = Plan{
			Key:          v.Tier.String(),
			Name:         v.Name,
			PriceINR:     v.PriceINR,
			SwipesPerDay: v.SwipesPerDay,
			Unlimited:    v.Unlimited,
			SeeLikes:     v.SeeLikes,
		}
	}
	return out
}

func toAPIGossip(g *entities.Gossip) Gossip {
	return Gossip{
		ID:         g.ID,
		Text:       g.Text,
		Category:   string(g.Category),
		Upvotes:    g.Upvotes,
		Downvotes:  g.Downvotes,
		Score:      g.Score(),
		IsFeatured: g.IsFeatured,
		CreatedAt:  g.CreatedAt,
	}
}

func toAPIGossips(gg []*entities.Gossip) []Gossip {
	out := make([]Gossip, len(gg))
	for i, v := range gg {
		out[i] = toAPIGossip(v)
	}
	return out
}

func toAPIComment(c *entities.GossipComment) Comment {
	return Comment{ID: c.ID, Text: c.Text, CreatedAt: c.CreatedAt}
}

func toAPIGossipDetails(d *entities.GossipDetails) GossipDetails {
	out := GossipDetails{
		Gossip:   toAPIGossip(d.Gossip),
		Comments: make([]Comment, len(d.Comments)),
		UserVote: int8(d.UserVote),
	}
	for i, v := range d.Comments {
		out.Comments[i] = toAPIComment(v)
	}
	return out
}

func toAPIMatch(m *entities.Match) *Match {
	if m == nil {
		return nil
	}

	return &Match{
		ID:        m.ID,
		AccountA:  m.AccountA,
		AccountB:  m.AccountB,
		Mode:      string(m.Mode),
		CreatedAt: m.CreatedAt,
	}
}

func toAPIMatches(mm []*entities.Match) []Match {
	out := make([]Match, len(mm))
	for i, v := range mm {
		out[i] = *toAPIMatch(v)
	}
	return out
}

func toAPIMessage(m *entities.Message) Message {
	return Message{ID: m.ID, SenderID: m.SenderID, Text: m.Text, CreatedAt: m.CreatedAt}
}

func toAPIMessages(mm []*entities.Message) []Message {
	out := make([]Message, len(mm))
	for i, v := range mm {
		out[i] = toAPIMessage(v)
	}
	return out
}

func toAPIPost(p *entities.Post) Post {
	tags := p.Hashtags
	if tags == nil {
		tags = []string{}
	}

	return Post{
		ID:         p.ID,
		AuthorID:   p.AuthorID,
		Type:       string(p.Type),
		Text:       p.Text,
		Image:      p.Image,
		IsFeatured: p.IsFeatured,
		Hashtags:   tags,
		CreatedAt:  p.CreatedAt,
	}
}

func toAPIPosts(pp []*entities.Post) []Post {
	out := make([]Post, len(pp))
	for i, v := range pp {
		out[i] = toAPIPost(v)
	}
	return out
}

func toAPIHashtags(hh []*entities.Hashtag) []Hashtag {
	out := make([]Hashtag, len(hh))
	for i, v := range hh {
		out[i] = Hashtag{Name: v.Name, Count: v.Count}
	}
	return out
}

func toAPIStory(s *entities.Story) Story {
	return Story{
		ID:        s.ID,
		AuthorID:  s.AuthorID,
		Media:     s.Media,
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
	}
}

func toAPIStories(ss []*entities.Story) []Story {
	out := make([]Story, len(ss))
	for i, v := range ss {
		out[i] = toAPIStory(v)
	}
	return out
}

func toAPIEvent(e *entities.Event) Event {
	return Event{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Type:        e.Type,
		StartsAt:    e.StartsAt,
		Location:    e.Location,
		IsOfficial:  e.IsOfficial,
		Highlight:   e.Highlight,
	}
}

func toAPIEvents(ee []*entities.Event) []Event {
	out := make([]Event, len(ee))
	for i, v := range ee {
		out[i] = toAPIEvent(v)
	}
	return out
}

func toAPIReport(r *entities.Report) Report {
	return Report{
		ID:         r.ID,
		ReporterID: r.ReporterID,
		PostID:     r.PostID,
		GossipID:   r.GossipID,
		Reason:     r.Reason,
		Resolved:   r.Resolved,
		CreatedAt:  r.CreatedAt,
	}
}

func toAPIReports(rr []*entities.Report) []Report {
	out := make([]Report, len(rr))
	for i, v := range rr {
		out[i] = toAPIReport(v)
	}
	return out
}
