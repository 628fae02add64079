// Package plan contains subscription tiers and the entitlements they grant.
package plan

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownTier is returned when a plan key does not name a tier.
var ErrUnknownTier = errors.New("unknown plan")

// Duration is how long a paid tier stays active after it was applied.
const Duration = 30 * 24 * time.Hour

// Tier is a subscription tier. Tiers are totally ordered: Free < Plus < Pro.
type Tier uint8

const (
	// Free ...
	Free Tier = iota
	// Plus ...
	Plus
	// Pro ...
	Pro
)

// Plan describes what a tier costs and grants.
type Plan struct {
	Tier     Tier
	Name     string
	PriceINR int64
	// SwipesPerDay is the daily swipe cap, zero when Unlimited is set.
	SwipesPerDay int
	Unlimited    bool
	SeeLikes     bool
}

// nolint:gochecknoglobals
var plans = [...]Plan{
	Free: {Tier: Free, Name: "Free", PriceINR: 0, SwipesPerDay: 20},
	Plus: {Tier: Plus, Name: "Plus", PriceINR: 99, SwipesPerDay: 100, SeeLikes: true},
	Pro:  {Tier: Pro, Name: "Pro", PriceINR: 199, Unlimited: true, SeeLikes: true},
}

// All returns every plan ordered by rank.
func All() []Plan {
	out := make([]Plan, len(plans))
	copy(out, plans[:])
	return out
}

// Get returns plan of the tier.
func Get(t Tier) Plan {
	if int(t) >= len(plans) {
		return plans[Free]
	}
	return plans[t]
}

// ParseTier parses plan key (free, plus, pro).
func ParseTier(s string) (Tier, error) {
	switch s {
	case "free":
		return Free, nil
	case "plus":
		return Plus, nil
	case "pro":
		return Pro, nil
	default:
		return Free, fmt.Errorf("%w: %q", ErrUnknownTier, s)
	}
}

// String returns plan key.
func (t Tier) String() string {
	switch t {
	case Free:
		return "free"
	case Plus:
		return "plus"
	case Pro:
		return "pro"
	default:
		return fmt.Sprintf("tier(%d)", uint8(t))
	}
}

// Rank returns tier position in the total order.
func (t Tier) Rank() int {
	return int(t)
}

// Quota returns daily swipe cap of the tier. ok is false when swipes are unlimited.
func (t Tier) Quota() (n int, ok bool) {
	p := Get(t)
	if p.Unlimited {
		return 0, false
	}
	return p.SwipesPerDay, true
}

// Effective returns the tier in force at now.
// A paid tier whose expiry has passed is treated as free; the stored tier is left as is.
func Effective(stored Tier, expiresAt *time.Time, now time.Time) Tier {
	if stored == Free {
		return Free
	}

	if expiresAt != nil && !now.Before(*expiresAt) {
		return Free
	}

	return stored
}

// HasAtLeast reports whether effective tier is ranked not lower than required.
func HasAtLeast(stored Tier, expiresAt *time.Time, required Tier, now time.Time) bool {
	return Effective(stored, expiresAt, now).Rank() >= required.Rank()
}

// Apply returns tier and expiry to be stored when t is applied at now.
func Apply(t Tier, now time.Time) (Tier, *time.Time) {
	if t == Free {
		return Free, nil
	}

	exp := now.Add(Duration)
	return t, &exp
}
