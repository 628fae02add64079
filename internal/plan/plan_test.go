package plan

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTier(t *testing.T) {
	tt := []struct {
		key  string
		tier Tier
		err  error
	}{
		{key: "free", tier: Free},
		{key: "plus", tier: Plus},
		{key: "pro", tier: Pro},
		{key: "gold", err: ErrUnknownTier},
		{key: "", err: ErrUnknownTier},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.key, func(t *testing.T) {
			tier, err := ParseTier(tc.key)
			if tc.err != nil {
				require.True(t, errors.Is(err, tc.err))
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.tier, tier)
			require.Equal(t, tc.key, tier.String())
		})
	}
}

func TestTier_Quota(t *testing.T) {
	n, ok := Free.Quota()
	assert.True(t, ok)
	assert.Equal(t, 20, n)

	n, ok = Plus.Quota()
	assert.True(t, ok)
	assert.Equal(t, 100, n)

	_, ok = Pro.Quota()
	assert.False(t, ok)
}

func TestEffective(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	past, future := now.Add(-time.Minute), now.Add(time.Minute)

	assert.Equal(t, Free, Effective(Free, nil, now))
	assert.Equal(t, Plus, Effective(Plus, nil, now))
	assert.Equal(t, Pro, Effective(Pro, &future, now))
	assert.Equal(t, Free, Effective(Pro, &past, now))
	assert.Equal(t, Free, Effective(Plus, &now, now))
}

func TestHasAtLeast(t *testing.T) {
	now := time.Now()
	expired := now.Add(-time.Hour)
	active := now.Add(time.Hour)

	assert.True(t, HasAtLeast(Free, nil, Free, now))
	assert.False(t, HasAtLeast(Free, nil, Plus, now))
	assert.True(t, HasAtLeast(Pro, &active, Plus, now))
	assert.True(t, HasAtLeast(Plus, &active, Plus, now))
	assert.False(t, HasAtLeast(Plus, &active, Pro, now))

	// stored tier still says pro but the expiry has passed
	assert.False(t, HasAtLeast(Pro, &expired, Plus, now))
	assert.False(t, HasAtLeast(Pro, &expired, Pro, now))
	assert.True(t, HasAtLeast(Pro, &expired, Free, now))
}

func TestApply(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tier, exp := Apply(Plus, now)
	require.Equal(t, Plus, tier)
	require.NotNil(t, exp)
	require.Equal(t, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), *exp)

	tier, exp = Apply(Free, now)
	require.Equal(t, Free, tier)
	require.Nil(t, exp)
}

func TestAll(t *testing.T) {
	all := All()
	require.Len(t, all, 3)
	for i, p := range all {
		require.Equal(t, i, p.Tier.Rank())
	}
	require.False(t, all[Free].SeeLikes)
	require.True(t, all[Plus].SeeLikes)
}
