package impl

import (
	"context"
	"fmt"

	"github.com/campusconnect/campus/internal/entities"
	"github.com/campusconnect/campus/internal/payment"
	"github.com/campusconnect/campus/internal/plan"
	"github.com/campusconnect/campus/internal/service"
)

// paidTier parses plan key which can be bought.
func paidTier(key string) (plan.Tier, error) {
	t, err := plan.ParseTier(key)
	if err != nil {
		return plan.Free, invalid("%s", err)
	}

	if t == plan.Free {
		return plan.Free, invalid("free plan can not be bought")
	}

	return t, nil
}

func (s srv) ApplyPlan(ctx context.Context, account int64, tier plan.Tier) error {
	t, exp := plan.Apply(tier, s.now())

	if err := s.s.SetPlan(ctx, account, t, exp); err != nil {
		return translate(err, "account")
	}

	log.WithField("account", account).WithField("plan", t).Info("plan applied")

	return nil
}

func (s srv) Subscribe(ctx context.Context, account int64, planKey string) (*entities.Order, error) {
	t, err := paidTier(planKey)
	if err != nil {
		return nil, err
	}

	if _, err := getAccount(ctx, s.s, account); err != nil {
		return nil, err
	}

	amount := plan.Get(t).PriceINR * 100
	receipt := fmt.Sprintf("acc%d-%s-%d", account, t, s.now().Unix())

	id, err := s.payments.CreateOrder(ctx, amount, receipt)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return &entities.Order{
		ID:       id,
		Plan:     t,
		Amount:   amount,
		Currency: payment.Currency,
		KeyID:    s.payments.KeyID(),
	}, nil
}

func (s srv) ConfirmPayment(ctx context.Context, account int64, c *entities.PaymentConfirmation) (*entities.Account, error) {
	t, err := paidTier(c.Plan)
	if err != nil {
		return nil, err
	}

	if !s.payments.VerifySignature(c.OrderID, c.PaymentID, c.Signature) {
		log.WithField("account", account).WithField("order", c.OrderID).Warn("payment verification failed")
		return nil, fmt.Errorf("%w: payment verification failed", service.ErrRejected)
	}

	if err := s.ApplyPlan(ctx, account, t); err != nil {
		return nil, err
	}

	return getAccount(ctx, s.s, account)
}
