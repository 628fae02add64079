package media

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKey(t *testing.T) {
	k1 := NewKey(StoryPrefix, "image/png")
	k2 := NewKey(StoryPrefix, "image/png")

	assert.True(t, strings.HasPrefix(k1, "stories/"))
	assert.True(t, strings.HasSuffix(k1, ".png"))
	assert.NotEqual(t, k1, k2)

	assert.True(t, strings.HasSuffix(NewKey(PhotoPrefix, "IMAGE/JPEG"), ".jpg"))
}

func TestAllowed(t *testing.T) {
	assert.True(t, Allowed("image/jpeg"))
	assert.True(t, Allowed("video/mp4"))
	assert.False(t, Allowed("application/zip"))
	assert.False(t, Allowed(""))
}

func TestS3Uploader_Presign(t *testing.T) {
	u, err := NewS3(context.Background(), Options{
		Region:    "ap-south-1",
		Bucket:    "campus",
		Endpoint:  "http://localhost:9000",
		AccessKey: "key",
		SecretKey: "secret",
	})
	require.NoError(t, err)

	ticket, err := u.Presign(context.Background(), PhotoPrefix, "image/png")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ticket.Key, "profile_pics/"))
	assert.True(t, strings.HasPrefix(ticket.URL, "http://localhost:9000/campus/profile_pics/"))
	assert.Contains(t, ticket.URL, "X-Amz-Signature=")
	assert.Equal(t, uploadTTL, ticket.ExpiresIn)
}
