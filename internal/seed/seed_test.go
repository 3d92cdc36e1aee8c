package seed

import (
	"testing"

	"aperture/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixturesInstallsDemoDataset(t *testing.T) {
	st := store.New()
	require.NoError(t, Fixtures(st))

	sn := st.Snapshot()

	require.Len(t, sn.Users, 3)
	john, ok := sn.UserByID(1)
	require.True(t, ok)
	assert.Equal(t, "john_doe", john.Username)
	assert.Equal(t, "john@example.com", john.Email)

	jane, ok := sn.UserByEmail("jane@example.com")
	require.True(t, ok)
	assert.Equal(t, uint(2), jane.ID)

	require.Len(t, sn.Posts, 3)
	assert.Equal(t, uint(101), sn.Posts[0].ID)
	assert.Equal(t, uint(102), sn.Posts[1].ID)
	assert.Equal(t, uint(103), sn.Posts[2].ID)
	assert.True(t, sn.Posts[0].CreatedAt.After(sn.Posts[1].CreatedAt))
	assert.True(t, sn.Posts[1].CreatedAt.After(sn.Posts[2].CreatedAt))

	assert.True(t, sn.IsFollowing(1, 2))
	assert.True(t, sn.IsFollowing(1, 3))
	assert.False(t, sn.IsFollowing(2, 1))

	assert.Equal(t, 1, sn.LikeCount(101))
	assert.True(t, sn.HasLiked(1, 101))

	comments := sn.CommentsFor(101)
	require.Len(t, comments, 1)
	assert.Equal(t, "Amazing view!", comments[0].Text)
	assert.Equal(t, uint(1), comments[0].UserID)
}

func TestFixturesAdvancesIDCounter(t *testing.T) {
	st := store.New()
	require.NoError(t, Fixtures(st))

	post := st.CreatePost(1, "https://example.com/new.jpg", "")
	assert.Greater(t, post.ID, uint(401))
}

func TestGenerateLayersExtraContent(t *testing.T) {
	st := store.New()
	require.NoError(t, Fixtures(st))

	require.NoError(t, Generate(st, Options{NumUsers: 5, NumPosts: 8}))

	sn := st.Snapshot()
	assert.GreaterOrEqual(t, len(sn.Users), 3)
	assert.Equal(t, 11, len(sn.Posts))
}

func TestGenerateNoopWithZeroOptions(t *testing.T) {
	st := store.New()
	require.NoError(t, Fixtures(st))

	require.NoError(t, Generate(st, Options{}))
	assert.Len(t, st.Snapshot().Posts, 3)
}
