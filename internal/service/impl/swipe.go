package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campusconnect/campus/internal/entities"
	"github.com/campusconnect/campus/internal/plan"
	"github.com/campusconnect/campus/internal/service"
	"github.com/campusconnect/campus/internal/storage"
)

// calendarDay returns the date of t in loc as midnight UTC.
func calendarDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// isNewDay reports whether today differs from the day swipes were last counted for.
func isNewDay(last *time.Time, today time.Time) bool {
	return last == nil || !last.Equal(today)
}

// swipesUsed returns the actor's swipe counter as of today.
func swipesUsed(a *entities.Account, today time.Time) int {
	if isNewDay(a.LastSwipeDate, today) {
		return 0
	}
	return a.SwipesToday
}

func parseMode(mode string) (entities.SwipeMode, error) {
	if mode == "" {
		return entities.DatingMode, nil
	}

	m := entities.SwipeMode(mode)
	if !m.Valid() {
		return "", invalid("unknown swipe mode %q", mode)
	}

	return m, nil
}

func (s srv) SwipeCandidates(ctx context.Context, actor int64, mode string) ([]*entities.Account, error) {
	m, err := parseMode(mode)
	if err != nil {
		return nil, err
	}

	aa, err := s.s.ListSwipeCandidates(ctx, actor, m, candidatesLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	return aa, nil
}

func (s srv) SwipeStatus(ctx context.Context, actor int64) (*entities.SwipeStatus, error) {
	a, err := getAccount(ctx, s.s, actor)
	if err != nil {
		return nil, err
	}

	now := s.now()
	tier := a.EffectivePlan(now)
	limit, limited := tier.Quota()

	return &entities.SwipeStatus{
		Plan:      tier,
		Used:      swipesUsed(a, calendarDay(now, s.cfg.Location)),
		Limit:     limit,
		Unlimited: !limited,
	}, nil
}

// lockPair locks both swipe participants in id order and returns the actor.
func lockPair(ctx context.Context, s storage.Storage, actor, target int64) (*entities.Account, error) {
	locked, err := s.LockAccounts(ctx, actor, target)
	if err != nil {
		return nil, fmt.Errorf("failed to lock accounts: %w", err)
	}

	var a, t *entities.Account
	for _, v := range locked {
		switch v.ID {
		case actor:
			a = v
		case target:
			t = v
		}
	}

	switch {
	case a == nil:
		return nil, fmt.Errorf("%w: account", service.ErrNotFound)
	case a.IsBanned:
		return nil, fmt.Errorf("%w: account is banned", service.ErrRejected)
	case t == nil, t.IsBanned:
		return nil, fmt.Errorf("%w: target", service.ErrNotFound)
	}

	return a, nil
}

func (s srv) Swipe(ctx context.Context, actor, target int64, mode string) (*entities.SwipeResult, error) {
	m, err := parseMode(mode)
	if err != nil {
		return nil, err
	}

	if actor == target {
		return nil, invalid("can not swipe yourself")
	}

	now := s.now()
	today := calendarDay(now, s.cfg.Location)

	var res *entities.SwipeResult

	if err := s.s.InTx(ctx, func(s storage.Storage) error {
		a, err := lockPair(ctx, s, actor, target)
		if err != nil {
			return err
		}

		used := a.SwipesToday
		if isNewDay(a.LastSwipeDate, today) {
			used = 0
		}

		if limit, ok := a.EffectivePlan(now).Quota(); ok && used >= limit {
			return fmt.Errorf("%w: %d of %d used", service.ErrQuotaExceeded, used, limit)
		}

		if err := s.SetSwipes(ctx, actor, today, used+1); err != nil {
			return translate(err, "account")
		}

		if _, err := s.CreateLike(ctx, &entities.Like{
			From:      actor,
			To:        target,
			Mode:      m,
			CreatedAt: now,
		}); err != nil {
			return translate(err, "like")
		}

		mutual, err := s.HasLike(ctx, target, actor, m)
		if err != nil {
			return fmt.Errorf("failed to check reverse like: %w", err)
		}

		if !mutual {
			res = &entities.SwipeResult{}
			return nil
		}

		match, err := createMatch(ctx, s, actor, target, m, now)
		if err != nil {
			return err
		}

		res = &entities.SwipeResult{Matched: true, Match: match}
		return nil
	}); err != nil {
		return nil, err
	}

	if res.Matched {
		log.WithField("match", res.Match.ID).WithField("mode", m).Info("match created")
	}

	return res, nil
}

// createMatch stores the pair's match, returning the existing one when the pair is already matched.
func createMatch(ctx context.Context, s storage.Storage, x, y int64, mode entities.SwipeMode, now time.Time) (*entities.Match, error) {
	if x > y {
		x, y = y, x
	}

	m := &entities.Match{
		AccountA:  x,
		AccountB:  y,
		Mode:      mode,
		CreatedAt: now,
	}

	id, err := s.CreateMatch(ctx, m)
	switch {
	case err == nil:
		m.ID = id
		return m, nil
	case errors.Is(err, storage.ErrAlreadyExists):
		existing, err := s.GetMatchByPair(ctx, x, y, mode)
		if err != nil {
			return nil, translate(err, "match")
		}
		return existing, nil
	default:
		return nil, translate(err, "match")
	}
}

func (s srv) LikesReceived(ctx context.Context, account int64, mode string) ([]*entities.Account, error) {
	m, err := parseMode(mode)
	if err != nil {
		return nil, err
	}

	a, err := getAccount(ctx, s.s, account)
	if err != nil {
		return nil, err
	}

	if !plan.Get(a.EffectivePlan(s.now())).SeeLikes {
		return nil, service.ErrPlanRequired
	}

	aa, err := s.s.ListLikers(ctx, account, m)
	if err != nil {
		return nil, fmt.Errorf("failed to list likers: %w", err)
	}

	return aa, nil
}
