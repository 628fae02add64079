package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT(t *testing.T) {
	j := NewJWT("secret", time.Hour)

	token, err := j.Issue(42)
	require.NoError(t, err)

	id, err := j.Parse(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, id)

	_, err = NewJWT("another", time.Hour).Parse(token)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = j.Parse("garbage")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_Expired(t *testing.T) {
	j := NewJWT("secret", time.Hour)
	j.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := j.Issue(1)
	require.NoError(t, err)

	_, err = NewJWT("secret", time.Hour).Parse(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("qwerty")
	require.NoError(t, err)

	assert.NotEqual(t, "qwerty", hash)
	assert.True(t, CheckPassword(hash, "qwerty"))
	assert.False(t, CheckPassword(hash, "qwerty1"))
	assert.False(t, CheckPassword("not a hash", "qwerty"))
}
