package impl

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusconnect/campus/internal/auth"
	"github.com/campusconnect/campus/internal/entities"
	media "github.com/campusconnect/campus/internal/media/mock"
	payment "github.com/campusconnect/campus/internal/payment/mock"
	"github.com/campusconnect/campus/internal/plan"
	"github.com/campusconnect/campus/internal/service"
	storageinterface "github.com/campusconnect/campus/internal/storage"
	storage "github.com/campusconnect/campus/internal/storage/mock"
)

var (
	ctx     = context.Background()
	testNow = time.Date(2026, 2, 10, 15, 30, 0, 0, time.UTC)
	today   = time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
)

type mocks struct {
	s  *storage.MockStorage
	pg *payment.MockGateway
	u  *media.MockUploader
}

func newTestSrv(t *testing.T) (srv, mocks) {
	ctrl := gomock.NewController(t)

	m := mocks{
		s:  storage.NewMockStorage(ctrl),
		pg: payment.NewMockGateway(ctrl),
		u:  media.NewMockUploader(ctrl),
	}

	s := New(m.s, auth.NewJWT("secret", time.Hour), m.pg, m.u, Config{
		CampusDomain:   "@vitbhopal.ac.in",
		AdminSetupCode: "setup",
	}).(srv)
	s.now = func() time.Time { return testNow }

	return s, m
}

func expectTx(s *storage.MockStorage) {
	s.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f func(s storageinterface.Storage) error) error {
		return f(s)
	})
}

func TestSrv_requireAdmin(t *testing.T) {
	s, m := newTestSrv(t)

	m.s.EXPECT().GetAccount(gomock.Any(), int64(1)).Return(&entities.Account{ID: 1, IsAdmin: true}, nil)
	require.NoError(t, s.requireAdmin(ctx, 1))

	m.s.EXPECT().GetAccount(gomock.Any(), int64(2)).Return(&entities.Account{ID: 2}, nil)
	require.ErrorIs(t, s.requireAdmin(ctx, 2), service.ErrUnauthorized)

	m.s.EXPECT().GetAccount(gomock.Any(), int64(3)).Return(nil, storageinterface.ErrNotFound)
	require.ErrorIs(t, s.requireAdmin(ctx, 3), service.ErrUnauthorized)

	m.s.EXPECT().GetAccount(gomock.Any(), int64(4)).Return(nil, context.Canceled)
	require.ErrorIs(t, s.requireAdmin(ctx, 4), context.Canceled)
}

func TestTranslate(t *testing.T) {
	assert.ErrorIs(t, translate(storageinterface.ErrNotFound, "x"), service.ErrNotFound)
	assert.ErrorIs(t, translate(storageinterface.ErrAlreadyExists, "x"), service.ErrRejected)

	err := translate(context.Canceled, "x")
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, service.ErrNotFound)
}

func TestNew_DefaultLocation(t *testing.T) {
	s := New(nil, nil, nil, nil, Config{}).(srv)
	assert.Equal(t, time.UTC, s.cfg.Location)
}

func TestSrv_Register(t *testing.T) {
	tt := []struct {
		name      string
		email     string
		password  string
		setupCode string
		createErr error

		admin bool
		err   error
	}{
		{name: "success", email: " Student@VITBhopal.ac.in ", password: "qwerty"},
		{name: "admin", email: "admin@vitbhopal.ac.in", password: "qwerty", setupCode: "setup", admin: true},
		{name: "wrong setup code", email: "admin@vitbhopal.ac.in", password: "qwerty", setupCode: "nope", err: service.ErrInvalidArgument},
		{name: "foreign domain", email: "student@gmail.com", password: "qwerty", err: service.ErrInvalidArgument},
		{name: "no local part", email: "@vitbhopal.ac.in", password: "qwerty", err: service.ErrInvalidArgument},
		{name: "short password", email: "student@vitbhopal.ac.in", password: "123", err: service.ErrInvalidArgument},
		{
			name:      "duplicate",
			email:     "student@vitbhopal.ac.in",
			password:  "qwerty",
			createErr: storageinterface.ErrAlreadyExists,
			err:       service.ErrRejected,
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			s, m := newTestSrv(t)

			if tc.err == nil || tc.createErr != nil {
				m.s.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *entities.Account) (int64, error) {
					assert.Equal(t, normalizeEmail(tc.email), a.Email)
					assert.Equal(t, tc.admin, a.IsAdmin)
					assert.Equal(t, plan.Free, a.Plan)
					assert.True(t, auth.CheckPassword(a.PasswordHash, tc.password))
					return 7, tc.createErr
				})
			}

			a, err := s.Register(ctx, tc.email, tc.password, "Student", tc.setupCode)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}

			require.NoError(t, err)
			assert.EqualValues(t, 7, a.ID)
			assert.Equal(t, normalizeEmail(tc.email), a.Email)
		})
	}
}

func TestSrv_Login(t *testing.T) {
	hash, err := auth.HashPassword("qwerty")
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		s, m := newTestSrv(t)

		m.s.EXPECT().GetAccountByEmail(gomock.Any(), "student@vitbhopal.ac.in").Return(&entities.Account{ID: 5, PasswordHash: hash}, nil)

		token, a, err := s.Login(ctx, "Student@vitbhopal.ac.in", "qwerty")
		require.NoError(t, err)
		assert.EqualValues(t, 5, a.ID)

		id, err := s.tokens.Parse(token)
		require.NoError(t, err)
		assert.EqualValues(t, 5, id)
	})

	t.Run("wrong password", func(t *testing.T) {
		s, m := newTestSrv(t)

		m.s.EXPECT().GetAccountByEmail(gomock.Any(), gomock.Any()).Return(&entities.Account{ID: 5, PasswordHash: hash}, nil)

		_, _, err := s.Login(ctx, "student@vitbhopal.ac.in", "wrong")
		require.ErrorIs(t, err, service.ErrUnauthorized)
	})

	t.Run("unknown email", func(t *testing.T) {
		s, m := newTestSrv(t)

		m.s.EXPECT().GetAccountByEmail(gomock.Any(), gomock.Any()).Return(nil, storageinterface.ErrNotFound)

		_, _, err := s.Login(ctx, "nobody@vitbhopal.ac.in", "qwerty")
		require.ErrorIs(t, err, service.ErrUnauthorized)
	})

	t.Run("banned", func(t *testing.T) {
		s, m := newTestSrv(t)

		m.s.EXPECT().GetAccountByEmail(gomock.Any(), gomock.Any()).Return(&entities.Account{ID: 5, PasswordHash: hash, IsBanned: true}, nil)

		_, _, err := s.Login(ctx, "student@vitbhopal.ac.in", "qwerty")
		require.ErrorIs(t, err, service.ErrRejected)
	})
}

func TestSrv_PhotoUploadTicket(t *testing.T) {
	s, m := newTestSrv(t)

	ticket := &entities.UploadTicket{Key: "profile_pics/1.png", URL: "https://s3/profile_pics/1.png"}
	m.u.EXPECT().Presign(gomock.Any(), "profile_pics", "image/png").Return(ticket, nil)
	m.s.EXPECT().SetPhoto(gomock.Any(), int64(1), "profile_pics/1.png").Return(nil)

	got, err := s.PhotoUploadTicket(ctx, 1, "image/png")
	require.NoError(t, err)
	assert.Equal(t, ticket, got)

	_, err = s.PhotoUploadTicket(ctx, 1, "application/x-sh")
	require.ErrorIs(t, err, service.ErrInvalidArgument)
}

func TestSrv_UpdateProfile(t *testing.T) {
	s, m := newTestSrv(t)

	m.s.EXPECT().UpdateProfile(gomock.Any(), int64(1), &entities.Profile{Year: "2", Bio: "hi"}).Return(nil)
	require.NoError(t, s.UpdateProfile(ctx, 1, &entities.Profile{Year: " 2 ", Bio: "hi "}))

	m.s.EXPECT().UpdateProfile(gomock.Any(), int64(2), gomock.Any()).Return(storageinterface.ErrNotFound)
	require.ErrorIs(t, s.UpdateProfile(ctx, 2, &entities.Profile{}), service.ErrNotFound)
}
