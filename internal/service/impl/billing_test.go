package impl

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusconnect/campus/internal/entities"
	"github.com/campusconnect/campus/internal/plan"
	"github.com/campusconnect/campus/internal/service"
	storageinterface "github.com/campusconnect/campus/internal/storage"
)

func TestSrv_ApplyPlan(t *testing.T) {
	s, m := newTestSrv(t)

	exp := testNow.Add(plan.Duration)
	m.s.EXPECT().SetPlan(gomock.Any(), int64(1), plan.Pro, &exp).Return(nil)
	require.NoError(t, s.ApplyPlan(ctx, 1, plan.Pro))

	m.s.EXPECT().SetPlan(gomock.Any(), int64(1), plan.Free, nil).Return(nil)
	require.NoError(t, s.ApplyPlan(ctx, 1, plan.Free))

	m.s.EXPECT().SetPlan(gomock.Any(), int64(2), plan.Plus, gomock.Any()).Return(storageinterface.ErrNotFound)
	require.ErrorIs(t, s.ApplyPlan(ctx, 2, plan.Plus), service.ErrNotFound)
}

func TestSrv_Subscribe(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		s, m := newTestSrv(t)

		m.s.EXPECT().GetAccount(gomock.Any(), int64(1)).Return(&entities.Account{ID: 1}, nil)
		m.pg.EXPECT().CreateOrder(gomock.Any(), int64(9900), gomock.Any()).Return("order_1", nil)
		m.pg.EXPECT().KeyID().Return("rzp_key")

		o, err := s.Subscribe(ctx, 1, "plus")
		require.NoError(t, err)
		assert.Equal(t, &entities.Order{
			ID:       "order_1",
			Plan:     plan.Plus,
			Amount:   9900,
			Currency: "INR",
			KeyID:    "rzp_key",
		}, o)
	})

	for _, key := range []string{"free", "gold", ""} {
		key := key
		t.Run("invalid "+key, func(t *testing.T) {
			s, _ := newTestSrv(t)

			_, err := s.Subscribe(ctx, 1, key)
			require.ErrorIs(t, err, service.ErrInvalidArgument)
		})
	}

	t.Run("gateway failure", func(t *testing.T) {
		s, m := newTestSrv(t)

		m.s.EXPECT().GetAccount(gomock.Any(), int64(1)).Return(&entities.Account{ID: 1}, nil)
		m.pg.EXPECT().CreateOrder(gomock.Any(), int64(19900), gomock.Any()).Return("", errors.New("timeout"))

		_, err := s.Subscribe(ctx, 1, "pro")
		require.Error(t, err)
	})
}

func TestSrv_ConfirmPayment(t *testing.T) {
	c := &entities.PaymentConfirmation{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: "sig",
		Plan:      "pro",
	}

	t.Run("verified", func(t *testing.T) {
		s, m := newTestSrv(t)

		exp := testNow.Add(plan.Duration)
		m.pg.EXPECT().VerifySignature("order_1", "pay_1", "sig").Return(true)
		m.s.EXPECT().SetPlan(gomock.Any(), int64(1), plan.Pro, &exp).Return(nil)
		m.s.EXPECT().GetAccount(gomock.Any(), int64(1)).Return(&entities.Account{ID: 1, Plan: plan.Pro, PlanExpiresAt: &exp}, nil)

		a, err := s.ConfirmPayment(ctx, 1, c)
		require.NoError(t, err)
		assert.Equal(t, plan.Pro, a.EffectivePlan(testNow))
	})

	t.Run("signature failure never applies plan", func(t *testing.T) {
		s, m := newTestSrv(t)

		m.pg.EXPECT().VerifySignature("order_1", "pay_1", "sig").Return(false)

		_, err := s.ConfirmPayment(ctx, 1, c)
		require.ErrorIs(t, err, service.ErrRejected)
	})

	t.Run("unknown plan", func(t *testing.T) {
		s, _ := newTestSrv(t)

		bad := *c
		bad.Plan = "platinum"

		_, err := s.ConfirmPayment(ctx, 1, &bad)
		require.ErrorIs(t, err, service.ErrInvalidArgument)
	})
}
