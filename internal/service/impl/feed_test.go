package impl

import (
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusconnect/campus/internal/entities"
	"github.com/campusconnect/campus/internal/service"
	storageinterface "github.com/campusconnect/campus/internal/storage"
)

func TestExtractHashtags(t *testing.T) {
	assert.Equal(t, []string{"fest", "vit_bhopal", "go"}, extractHashtags("#Fest at #vit_bhopal! #fest #GO"))
	assert.Nil(t, extractHashtags("no tags # here"))
	assert.Equal(t, []string{"café", "ग्रुप"}, extractHashtags("#Café meetup #ग्रुप"))
	assert.Equal(t, []string{"ok"}, extractHashtags("#"+strings.Repeat("a", maxHashtagLength+1)+" #ok"))
	assert.Equal(t, []string{strings.Repeat("a", maxHashtagLength)}, extractHashtags("#"+strings.Repeat("a", maxHashtagLength)))
}

func TestSrv_CreateGossip(t *testing.T) {
	s, m := newTestSrv(t)

	m.s.EXPECT().CreateGossip(gomock.Any(), &entities.Gossip{
		Text:      "someone in hostel B",
		Category:  entities.RandomCategory,
		CreatedBy: 1,
		CreatedAt: testNow,
	}).Return(int64(3), nil)

	g, err := s.CreateGossip(ctx, 1, " someone in hostel B ", "aliens")
	require.NoError(t, err)
	assert.EqualValues(t, 3, g.ID)

	_, err = s.CreateGossip(ctx, 1, "  ", "hostel")
	require.ErrorIs(t, err, service.ErrInvalidArgument)
}

func TestSrv_ListGossips(t *testing.T) {
	s, m := newTestSrv(t)

	crush := entities.CrushCategory
	m.s.EXPECT().ListGossips(gomock.Any(), &storageinterface.ListGossipsParams{
		SortBy:   storageinterface.NewSortType,
		Category: &crush,
		Limit:    listLimit,
	}).Return([]*entities.Gossip{{ID: 1}}, nil)

	gg, err := s.ListGossips(ctx, "crush", "new")
	require.NoError(t, err)
	assert.Len(t, gg, 1)

	m.s.EXPECT().ListGossips(gomock.Any(), &storageinterface.ListGossipsParams{
		SortBy: storageinterface.TopSortType,
		Limit:  listLimit,
	}).Return(nil, nil)

	_, err = s.ListGossips(ctx, "all", "")
	require.NoError(t, err)

	_, err = s.ListGossips(ctx, "all", "random")
	require.ErrorIs(t, err, service.ErrInvalidArgument)

	_, err = s.ListGossips(ctx, "aliens", "top")
	require.ErrorIs(t, err, service.ErrInvalidArgument)
}

func TestSrv_GetGossip(t *testing.T) {
	t.Run("with vote", func(t *testing.T) {
		s, m := newTestSrv(t)

		m.s.EXPECT().GetGossip(gomock.Any(), int64(1)).Return(&entities.Gossip{ID: 1, Upvotes: 1}, nil)
		m.s.EXPECT().ListGossipComments(gomock.Any(), int64(1)).Return([]*entities.GossipComment{{ID: 2}}, nil)
		m.s.EXPECT().GetVote(gomock.Any(), int64(1), int64(5)).Return(&entities.Vote{Value: entities.UpVote}, nil)

		d, err := s.GetGossip(ctx, 1, 5)
		require.NoError(t, err)
		assert.Equal(t, entities.UpVote, d.UserVote)
		assert.Len(t, d.Comments, 1)
	})

	t.Run("without vote", func(t *testing.T) {
		s, m := newTestSrv(t)

		m.s.EXPECT().GetGossip(gomock.Any(), int64(1)).Return(&entities.Gossip{ID: 1}, nil)
		m.s.EXPECT().ListGossipComments(gomock.Any(), int64(1)).Return(nil, nil)
		m.s.EXPECT().GetVote(gomock.Any(), int64(1), int64(5)).Return(nil, storageinterface.ErrNotFound)

		d, err := s.GetGossip(ctx, 1, 5)
		require.NoError(t, err)
		assert.Equal(t, entities.NoVote, d.UserVote)
	})

	t.Run("removed", func(t *testing.T) {
		s, m := newTestSrv(t)

		m.s.EXPECT().GetGossip(gomock.Any(), int64(1)).Return(&entities.Gossip{ID: 1, IsDeleted: true}, nil)

		_, err := s.GetGossip(ctx, 1, 5)
		require.ErrorIs(t, err, service.ErrRejected)
	})
}

func TestSrv_CommentGossip(t *testing.T) {
	s, m := newTestSrv(t)

	m.s.EXPECT().GetGossip(gomock.Any(), int64(1)).Return(&entities.Gossip{ID: 1}, nil)
	m.s.EXPECT().CreateGossipComment(gomock.Any(), gomock.Any()).Return(int64(8), nil)

	c, err := s.CommentGossip(ctx, 1, 2, "true")
	require.NoError(t, err)
	assert.EqualValues(t, 8, c.ID)

	m.s.EXPECT().GetGossip(gomock.Any(), int64(2)).Return(&entities.Gossip{ID: 2, IsDeleted: true}, nil)

	_, err = s.CommentGossip(ctx, 2, 2, "true")
	require.ErrorIs(t, err, service.ErrRejected)
}

func TestSrv_CreatePost(t *testing.T) {
	s, m := newTestSrv(t)

	expectTx(m.s)
	m.s.EXPECT().CreatePost(gomock.Any(), gomock.Any()).DoAndReturn(func(_ interface{}, p *entities.Post) (int64, error) {
		assert.Equal(t, entities.EventPost, p.Type)
		return 4, nil
	})
	m.s.EXPECT().TagPost(gomock.Any(), int64(4), []string{"fest", "music"}).Return(nil)

	p, err := s.CreatePost(ctx, 1, "event", "#Fest #music tonight", "posts/a.png")
	require.NoError(t, err)
	assert.EqualValues(t, 4, p.ID)
	assert.Equal(t, []string{"fest", "music"}, p.Hashtags)

	_, err = s.CreatePost(ctx, 1, "meme", "text", "")
	require.ErrorIs(t, err, service.ErrInvalidArgument)

	_, err = s.CreatePost(ctx, 1, "", "text", "../etc/passwd")
	require.ErrorIs(t, err, service.ErrInvalidArgument)

	_, err = s.CreatePost(ctx, 1, "announcement", "text", "")
	require.ErrorIs(t, err, service.ErrInvalidArgument)
}

func TestSrv_CreatePost_NoHashtags(t *testing.T) {
	s, m := newTestSrv(t)

	expectTx(m.s)
	m.s.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Return(int64(4), nil)

	p, err := s.CreatePost(ctx, 1, "", "plain", "")
	require.NoError(t, err)
	assert.Equal(t, entities.GeneralPost, p.Type)
	assert.Empty(t, p.Hashtags)
}

func TestSrv_ListPosts(t *testing.T) {
	s, m := newTestSrv(t)

	tag := "fest"
	m.s.EXPECT().ListPosts(gomock.Any(), &storageinterface.ListPostsParams{Hashtag: &tag, Limit: listLimit}).Return(nil, nil)

	_, err := s.ListPosts(ctx, "#Fest", false)
	require.NoError(t, err)
}

func TestSrv_CreateStory(t *testing.T) {
	s, m := newTestSrv(t)

	ticket := &entities.UploadTicket{Key: "stories/x.mp4", URL: "https://s3/stories/x.mp4"}
	m.u.EXPECT().Presign(gomock.Any(), "stories", "video/mp4").Return(ticket, nil)
	m.s.EXPECT().CreateStory(gomock.Any(), &entities.Story{
		AuthorID:  1,
		Media:     "stories/x.mp4",
		CreatedAt: testNow,
		ExpiresAt: testNow.Add(24 * time.Hour),
	}).Return(int64(2), nil)

	st, got, err := s.CreateStory(ctx, 1, "video/mp4")
	require.NoError(t, err)
	assert.EqualValues(t, 2, st.ID)
	assert.Equal(t, ticket, got)
}

func TestSrv_CreateEvent(t *testing.T) {
	s, m := newTestSrv(t)

	m.s.EXPECT().GetAccount(gomock.Any(), int64(1)).Return(&entities.Account{ID: 1, IsAdmin: true}, nil)
	m.s.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).Return(int64(3), nil)

	e, err := s.CreateEvent(ctx, 1, &entities.Event{Title: "Hackathon", StartsAt: testNow})
	require.NoError(t, err)
	assert.EqualValues(t, 3, e.ID)
	assert.EqualValues(t, 1, e.CreatedBy)

	m.s.EXPECT().GetAccount(gomock.Any(), int64(2)).Return(&entities.Account{ID: 2}, nil)

	_, err = s.CreateEvent(ctx, 2, &entities.Event{Title: "Hackathon", StartsAt: testNow})
	require.ErrorIs(t, err, service.ErrUnauthorized)
}

func TestSrv_CreateReport(t *testing.T) {
	s, m := newTestSrv(t)

	id := int64(4)
	m.s.EXPECT().CreateReport(gomock.Any(), gomock.Any()).Return(int64(1), nil)

	r, err := s.CreateReport(ctx, 2, nil, &id, "spam")
	require.NoError(t, err)
	assert.EqualValues(t, 1, r.ID)

	_, err = s.CreateReport(ctx, 2, nil, nil, "spam")
	require.ErrorIs(t, err, service.ErrInvalidArgument)

	_, err = s.CreateReport(ctx, 2, &id, &id, "spam")
	require.ErrorIs(t, err, service.ErrInvalidArgument)
}

func TestSrv_SetBanned(t *testing.T) {
	s, m := newTestSrv(t)

	m.s.EXPECT().GetAccount(gomock.Any(), int64(1)).Return(&entities.Account{ID: 1, IsAdmin: true}, nil).Times(2)
	m.s.EXPECT().GetAccount(gomock.Any(), int64(2)).Return(&entities.Account{ID: 2}, nil)
	m.s.EXPECT().SetBanned(gomock.Any(), int64(2), true).Return(nil)

	require.NoError(t, s.SetBanned(ctx, 1, 2, true))

	m.s.EXPECT().GetAccount(gomock.Any(), int64(1)).Return(&entities.Account{ID: 1, IsAdmin: true}, nil)

	require.ErrorIs(t, s.SetBanned(ctx, 1, 1, true), service.ErrRejected)
}

func TestSrv_ResolveReport(t *testing.T) {
	gossipID := int64(7)

	t.Run("remove content", func(t *testing.T) {
		s, m := newTestSrv(t)

		m.s.EXPECT().GetAccount(gomock.Any(), int64(1)).Return(&entities.Account{ID: 1, IsAdmin: true}, nil)
		expectTx(m.s)
		m.s.EXPECT().GetReport(gomock.Any(), int64(3)).Return(&entities.Report{ID: 3, GossipID: &gossipID}, nil)
		m.s.EXPECT().SetGossipDeleted(gomock.Any(), gossipID, true).Return(nil)
		m.s.EXPECT().ResolveReport(gomock.Any(), int64(3), int64(1)).Return(nil)

		require.NoError(t, s.ResolveReport(ctx, 1, 3, true))
	})

	t.Run("already resolved", func(t *testing.T) {
		s, m := newTestSrv(t)

		m.s.EXPECT().GetAccount(gomock.Any(), int64(1)).Return(&entities.Account{ID: 1, IsAdmin: true}, nil)
		expectTx(m.s)
		m.s.EXPECT().GetReport(gomock.Any(), int64(3)).Return(&entities.Report{ID: 3, Resolved: true}, nil)

		require.ErrorIs(t, s.ResolveReport(ctx, 1, 3, false), service.ErrRejected)
	})

	t.Run("not admin", func(t *testing.T) {
		s, m := newTestSrv(t)

		m.s.EXPECT().GetAccount(gomock.Any(), int64(2)).Return(&entities.Account{ID: 2}, nil)

		require.ErrorIs(t, s.ResolveReport(ctx, 2, 3, false), service.ErrUnauthorized)
	})
}

func TestSrv_ModerationRequiresAdmin(t *testing.T) {
	s, m := newTestSrv(t)

	m.s.EXPECT().GetAccount(gomock.Any(), int64(2)).Return(&entities.Account{ID: 2}, nil).Times(8)

	_, err := s.ListAccounts(ctx, 2, false)
	require.ErrorIs(t, err, service.ErrUnauthorized)
	require.ErrorIs(t, s.DeletePost(ctx, 2, 1), service.ErrUnauthorized)
	require.ErrorIs(t, s.FeaturePost(ctx, 2, 1, true), service.ErrUnauthorized)
	require.ErrorIs(t, s.DeleteGossip(ctx, 2, 1), service.ErrUnauthorized)
	require.ErrorIs(t, s.FeatureGossip(ctx, 2, 1, true), service.ErrUnauthorized)
	_, err = s.ListReports(ctx, 2, false)
	require.ErrorIs(t, err, service.ErrUnauthorized)
	_, err = s.Stats(ctx, 2)
	require.ErrorIs(t, err, service.ErrUnauthorized)
	_, err = s.CreateAnnouncement(ctx, 2, "exams postponed", "")
	require.ErrorIs(t, err, service.ErrUnauthorized)
}

func TestSrv_Stats(t *testing.T) {
	s, m := newTestSrv(t)

	since := today.AddDate(0, 0, -6)
	m.s.EXPECT().GetAccount(gomock.Any(), int64(1)).Return(&entities.Account{ID: 1, IsAdmin: true}, nil)
	m.s.EXPECT().Stats(gomock.Any(), since).Return(&entities.Stats{
		Accounts:    10,
		Posts:       5,
		Gossips:     3,
		OpenReports: 1,
		Events:      2,
		PostsPerDay: []entities.DayCount{
			{Day: since.AddDate(0, 0, 1), Count: 2},
			{Day: today, Count: 3},
		},
	}, nil)

	st, err := s.Stats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, st.Accounts)
	assert.Equal(t, 1, st.OpenReports)
	require.Len(t, st.PostsPerDay, 7)
	assert.Equal(t, entities.DayCount{Day: since, Count: 0}, st.PostsPerDay[0])
	assert.Equal(t, entities.DayCount{Day: since.AddDate(0, 0, 1), Count: 2}, st.PostsPerDay[1])
	assert.Equal(t, entities.DayCount{Day: today, Count: 3}, st.PostsPerDay[6])
}

func TestSrv_CreateAnnouncement(t *testing.T) {
	s, m := newTestSrv(t)

	m.s.EXPECT().GetAccount(gomock.Any(), int64(1)).Return(&entities.Account{ID: 1, IsAdmin: true}, nil).Times(2)
	expectTx(m.s)
	m.s.EXPECT().CreatePost(gomock.Any(), &entities.Post{
		AuthorID:   1,
		Type:       entities.AnnouncementPost,
		Text:       "#Fest registrations open",
		IsFeatured: true,
		Hashtags:   []string{"fest"},
		CreatedAt:  testNow,
	}).Return(int64(9), nil)
	m.s.EXPECT().TagPost(gomock.Any(), int64(9), []string{"fest"}).Return(nil)

	p, err := s.CreateAnnouncement(ctx, 1, " #Fest registrations open ", "")
	require.NoError(t, err)
	assert.EqualValues(t, 9, p.ID)
	assert.True(t, p.IsFeatured)
	assert.Equal(t, entities.AnnouncementPost, p.Type)

	_, err = s.CreateAnnouncement(ctx, 1, "  ", "")
	require.ErrorIs(t, err, service.ErrInvalidArgument)
}
