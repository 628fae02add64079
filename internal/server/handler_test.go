package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusconnect/campus/internal/auth"
	"github.com/campusconnect/campus/internal/entities"
	"github.com/campusconnect/campus/internal/plan"
	"github.com/campusconnect/campus/internal/service"
	"github.com/campusconnect/campus/internal/service/mock"
)

const callerID = int64(7)

type testServer struct {
	router chi.Router
	s      *mock.MockService
	token  string
}

func newTestServer(t *testing.T) testServer {
	ctrl := gomock.NewController(t)
	s := mock.NewMockService(ctrl)

	tokens := auth.NewJWT("secret", time.Hour)
	token, err := tokens.Issue(callerID)
	require.NoError(t, err)

	r := chi.NewRouter()
	SetupRouter(s, tokens, nil, r, time.Second)

	return testServer{router: r, s: s, token: token}
}

func (ts testServer) do(method, path, body string, authorized bool) *httptest.ResponseRecorder {
	r := httptest.NewRequest(method, path, strings.NewReader(body))
	if authorized {
		r.Header.Set("Authorization", "Bearer "+ts.token)
	}

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, r)
	return w
}

func TestWriteServiceError(t *testing.T) {
	tt := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("%w: gossip", service.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: mode", service.ErrInvalidArgument), http.StatusBadRequest},
		{service.ErrPlanRequired, http.StatusForbidden},
		{service.ErrRejected, http.StatusForbidden},
		{service.ErrUnauthorized, http.StatusForbidden},
		{service.ErrQuotaExceeded, http.StatusTooManyRequests},
		{context.DeadlineExceeded, http.StatusInternalServerError},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.err.Error(), func(t *testing.T) {
			w := httptest.NewRecorder()
			writeServiceError(w, httptest.NewRequest(http.MethodGet, "/", nil), tc.err, "test")
			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestAuthRequired(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodGet, "/v1/me", "", false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegister(t *testing.T) {
	ts := newTestServer(t)

	ts.s.EXPECT().Register(gomock.Any(), "a@vitbhopal.ac.in", "secret1", "Asha", "").
		Return(&entities.Account{ID: 1, Email: "a@vitbhopal.ac.in", Name: "Asha"}, nil)

	w := ts.do(http.MethodPost, "/v1/auth/register", `{"email":"a@vitbhopal.ac.in","password":"secret1","name":"Asha"}`, false)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"plan":"free"`)
	assert.NotContains(t, w.Body.String(), "password")

	w = ts.do(http.MethodPost, "/v1/auth/register", `{`, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	ts := newTestServer(t)

	ts.s.EXPECT().Login(gomock.Any(), "a@vitbhopal.ac.in", "bad").Return("", nil, service.ErrUnauthorized)
	w := ts.do(http.MethodPost, "/v1/auth/login", `{"email":"a@vitbhopal.ac.in","password":"bad"}`, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	ts.s.EXPECT().Login(gomock.Any(), "b@vitbhopal.ac.in", "pw").Return("", nil, fmt.Errorf("%w: banned", service.ErrRejected))
	w = ts.do(http.MethodPost, "/v1/auth/login", `{"email":"b@vitbhopal.ac.in","password":"pw"}`, false)
	assert.Equal(t, http.StatusForbidden, w.Code)

	ts.s.EXPECT().Login(gomock.Any(), "c@vitbhopal.ac.in", "pw").Return("token", &entities.Account{ID: 3}, nil)
	w = ts.do(http.MethodPost, "/v1/auth/login", `{"email":"c@vitbhopal.ac.in","password":"pw"}`, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token":"token"`)
}

func TestGetMe_ExpiredPlan(t *testing.T) {
	ts := newTestServer(t)

	exp := time.Now().Add(-time.Hour)
	ts.s.EXPECT().GetAccount(gomock.Any(), callerID).Return(&entities.Account{ID: callerID, Plan: plan.Pro, PlanExpiresAt: &exp}, nil)

	w := ts.do(http.MethodGet, "/v1/me", "", true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"plan":"free"`)
	assert.NotContains(t, w.Body.String(), "plan_expires_at")
}

func TestListPlans(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodGet, "/v1/plans", "", false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"key":"free","name":"Free","price_inr":0,"swipes_per_day":20,"unlimited":false,"see_likes":false},
		{"key":"plus","name":"Plus","price_inr":99,"swipes_per_day":100,"unlimited":false,"see_likes":true},
		{"key":"pro","name":"Pro","price_inr":199,"swipes_per_day":0,"unlimited":true,"see_likes":true}
	]`, w.Body.String())
}

func TestVoteGossip(t *testing.T) {
	ts := newTestServer(t)

	ts.s.EXPECT().VoteGossip(gomock.Any(), int64(5), callerID, "up").
		Return(&entities.VoteResult{Upvotes: 3, Downvotes: 1, Score: 2, UserVote: entities.UpVote}, nil)

	w := ts.do(http.MethodPost, "/v1/gossips/5/votes", `{"direction":"up"}`, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"upvotes":3,"downvotes":1,"score":2,"user_vote":1}`, w.Body.String())

	w = ts.do(http.MethodPost, "/v1/gossips/abc/votes", `{"direction":"up"}`, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	ts.s.EXPECT().VoteGossip(gomock.Any(), int64(6), callerID, "up").Return(nil, fmt.Errorf("%w: item unavailable", service.ErrRejected))

	w = ts.do(http.MethodPost, "/v1/gossips/6/votes", `{"direction":"up"}`, true)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListGossips_HidesAuthor(t *testing.T) {
	ts := newTestServer(t)

	ts.s.EXPECT().ListGossips(gomock.Any(), "crush", "new").
		Return([]*entities.Gossip{{ID: 1, Text: "psst", Category: entities.CrushCategory, CreatedBy: 99, Upvotes: 2}}, nil)

	w := ts.do(http.MethodGet, "/v1/gossips?category=crush&sort=new", "", true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "99")
	assert.Contains(t, w.Body.String(), `"score":2`)
}

func TestSwipe(t *testing.T) {
	ts := newTestServer(t)

	ts.s.EXPECT().Swipe(gomock.Any(), callerID, int64(9), "dating").
		Return(&entities.SwipeResult{Matched: true, Match: &entities.Match{ID: 1, AccountA: callerID, AccountB: 9, Mode: entities.DatingMode}}, nil)

	w := ts.do(http.MethodPost, "/v1/swipes", `{"target":9,"mode":"dating"}`, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"matched":true`)

	ts.s.EXPECT().Swipe(gomock.Any(), callerID, int64(10), "dating").Return(nil, service.ErrQuotaExceeded)

	w = ts.do(http.MethodPost, "/v1/swipes", `{"target":10,"mode":"dating"}`, true)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	ts.s.EXPECT().Swipe(gomock.Any(), callerID, int64(11), "dating").Return(&entities.SwipeResult{}, nil)

	w = ts.do(http.MethodPost, "/v1/swipes", `{"target":11,"mode":"dating"}`, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"matched":false}`, w.Body.String())
}

func TestLikesReceived_PlanRequired(t *testing.T) {
	ts := newTestServer(t)

	ts.s.EXPECT().LikesReceived(gomock.Any(), callerID, "").Return(nil, service.ErrPlanRequired)

	w := ts.do(http.MethodGet, "/v1/likes", "", true)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSubscribeAndConfirm(t *testing.T) {
	ts := newTestServer(t)

	ts.s.EXPECT().Subscribe(gomock.Any(), callerID, "plus").
		Return(&entities.Order{ID: "order_1", Plan: plan.Plus, Amount: 9900, Currency: "INR", KeyID: "rzp"}, nil)

	w := ts.do(http.MethodPost, "/v1/subscriptions", `{"plan":"plus"}`, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"order_id":"order_1","plan":"plus","amount":9900,"currency":"INR","key_id":"rzp"}`, w.Body.String())

	ts.s.EXPECT().ConfirmPayment(gomock.Any(), callerID, &entities.PaymentConfirmation{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: "bad",
		Plan:      "plus",
	}).Return(nil, fmt.Errorf("%w: signature verification failed", service.ErrRejected))

	w = ts.do(http.MethodPost, "/v1/subscriptions/confirm",
		`{"razorpay_order_id":"order_1","razorpay_payment_id":"pay_1","razorpay_signature":"bad","plan":"plus"}`, true)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListPosts(t *testing.T) {
	ts := newTestServer(t)

	ts.s.EXPECT().ListPosts(gomock.Any(), "fest", true).Return([]*entities.Post{{ID: 1, Type: entities.GeneralPost}}, nil)

	w := ts.do(http.MethodGet, "/v1/posts?hashtag=fest&featured=true", "", true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"hashtags":[]`)

	w = ts.do(http.MethodGet, "/v1/posts?featured=maybe", "", true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendMessage_Stranger(t *testing.T) {
	ts := newTestServer(t)

	ts.s.EXPECT().SendMessage(gomock.Any(), int64(3), callerID, "hi").Return(nil, service.ErrUnauthorized)

	w := ts.do(http.MethodPost, "/v1/matches/3/messages", `{"text":"hi"}`, true)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdmin(t *testing.T) {
	ts := newTestServer(t)

	ts.s.EXPECT().SetBanned(gomock.Any(), callerID, int64(4), true).Return(nil)
	w := ts.do(http.MethodPut, "/v1/admin/accounts/4/ban", `{"banned":true}`, true)
	assert.Equal(t, http.StatusNoContent, w.Code)

	ts.s.EXPECT().ResolveReport(gomock.Any(), callerID, int64(2), true).Return(service.ErrUnauthorized)
	w = ts.do(http.MethodPost, "/v1/admin/reports/2/resolve", `{"remove_content":true}`, true)
	assert.Equal(t, http.StatusForbidden, w.Code)

	ts.s.EXPECT().ListReports(gomock.Any(), callerID, false).Return([]*entities.Report{{ID: 2}}, nil)
	w = ts.do(http.MethodGet, "/v1/admin/reports", "", true)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdmin_Stats(t *testing.T) {
	ts := newTestServer(t)

	day := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	ts.s.EXPECT().Stats(gomock.Any(), callerID).Return(&entities.Stats{
		Accounts:    3,
		Posts:       2,
		OpenReports: 1,
		PostsPerDay: []entities.DayCount{{Day: day, Count: 2}},
	}, nil)

	w := ts.do(http.MethodGet, "/v1/admin/stats", "", true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"accounts": 3,
		"posts": 2,
		"gossips": 0,
		"open_reports": 1,
		"events": 0,
		"posts_per_day": [{"day": "2026-02-10", "count": 2}]
	}`, w.Body.String())

	ts.s.EXPECT().Stats(gomock.Any(), callerID).Return(nil, service.ErrUnauthorized)
	w = ts.do(http.MethodGet, "/v1/admin/stats", "", true)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdmin_CreateAnnouncement(t *testing.T) {
	ts := newTestServer(t)

	ts.s.EXPECT().CreateAnnouncement(gomock.Any(), callerID, "exams postponed", "").Return(&entities.Post{
		ID:         5,
		AuthorID:   callerID,
		Type:       entities.AnnouncementPost,
		Text:       "exams postponed",
		IsFeatured: true,
		Hashtags:   []string{},
	}, nil)

	w := ts.do(http.MethodPost, "/v1/admin/announcements", `{"text":"exams postponed"}`, true)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"type":"announcement"`)
	assert.Contains(t, w.Body.String(), `"is_featured":true`)

	w = ts.do(http.MethodPost, "/v1/admin/announcements", `{`, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateStory(t *testing.T) {
	ts := newTestServer(t)

	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	ts.s.EXPECT().CreateStory(gomock.Any(), callerID, "image/png").Return(
		&entities.Story{ID: 1, AuthorID: callerID, Media: "stories/x.png", CreatedAt: now, ExpiresAt: now.Add(24 * time.Hour)},
		&entities.UploadTicket{Key: "stories/x.png", URL: "https://s3/x", ExpiresIn: 5 * time.Minute},
		nil,
	)

	w := ts.do(http.MethodPost, "/v1/stories", `{"content_type":"image/png"}`, true)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"expires_in":300`)
}

func TestInternalError(t *testing.T) {
	ts := newTestServer(t)

	ts.s.EXPECT().ListEvents(gomock.Any()).Return(nil, context.Canceled)

	w := ts.do(http.MethodGet, "/v1/events", "", false)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, w.Body.String())
}
