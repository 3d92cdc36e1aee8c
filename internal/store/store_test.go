package store

import (
	"sync"
	"testing"

	"aperture/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserDuplicateEmail(t *testing.T) {
	st := New()

	first, err := st.CreateUser("alice", "alice@example.com", "hash")
	require.NoError(t, err)
	assert.Equal(t, uint(1), first.ID)

	_, err = st.CreateUser("alice_again", "alice@example.com", "otherhash")
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// Same username with a different email is allowed
	_, err = st.CreateUser("alice", "alice2@example.com", "hash")
	assert.NoError(t, err)
}

func TestIDsUniqueAcrossEntityTypes(t *testing.T) {
	st := New()

	user, err := st.CreateUser("alice", "alice@example.com", "hash")
	require.NoError(t, err)
	post := st.CreatePost(user.ID, "https://example.com/a.jpg", "caption")
	comment := st.AddComment(post.ID, user.ID, "nice")
	require.NoError(t, st.AddLike(user.ID, post.ID))

	sn := st.Snapshot()
	like := sn.LikesFor(post.ID)[0]

	seen := map[uint]bool{}
	for _, id := range []uint{user.ID, post.ID, comment.ID, like.ID} {
		assert.False(t, seen[id], "id %d allocated twice", id)
		seen[id] = true
	}
}

func TestCreatePostNewestFirst(t *testing.T) {
	st := New()

	first := st.CreatePost(1, "https://example.com/1.jpg", "first")
	second := st.CreatePost(1, "https://example.com/2.jpg", "second")
	third := st.CreatePost(2, "https://example.com/3.jpg", "third")

	sn := st.Snapshot()
	require.Len(t, sn.Posts, 3)
	assert.Equal(t, third.ID, sn.Posts[0].ID)
	assert.Equal(t, second.ID, sn.Posts[1].ID)
	assert.Equal(t, first.ID, sn.Posts[2].ID)
}

func TestLikeRoundTrip(t *testing.T) {
	st := New()
	post := st.CreatePost(2, "https://example.com/a.jpg", "")

	require.NoError(t, st.AddLike(1, post.ID))
	assert.ErrorIs(t, st.AddLike(1, post.ID), ErrAlreadyLiked)

	sn := st.Snapshot()
	assert.Equal(t, 1, sn.LikeCount(post.ID))
	assert.True(t, sn.HasLiked(1, post.ID))

	require.NoError(t, st.RemoveLike(1, post.ID))
	assert.ErrorIs(t, st.RemoveLike(1, post.ID), ErrNotLiked)

	sn = st.Snapshot()
	assert.Equal(t, 0, sn.LikeCount(post.ID))
	assert.False(t, sn.HasLiked(1, post.ID))
}

func TestFollowRoundTrip(t *testing.T) {
	st := New()

	assert.ErrorIs(t, st.AddFollow(1, 1), ErrSelfFollow)

	require.NoError(t, st.AddFollow(1, 2))
	assert.ErrorIs(t, st.AddFollow(1, 2), ErrAlreadyFollowing)

	// The reverse edge is independent
	require.NoError(t, st.AddFollow(2, 1))

	sn := st.Snapshot()
	assert.True(t, sn.IsFollowing(1, 2))
	assert.True(t, sn.IsFollowing(2, 1))

	require.NoError(t, st.RemoveFollow(1, 2))
	assert.ErrorIs(t, st.RemoveFollow(1, 2), ErrNotFollowing)

	sn = st.Snapshot()
	assert.False(t, sn.IsFollowing(1, 2))
	assert.True(t, sn.IsFollowing(2, 1))
}

func TestLoadAdvancesIDCounter(t *testing.T) {
	st := New()

	st.Load(
		[]models.User{{ID: 1, Username: "a", Email: "a@example.com"}},
		[]models.Post{{ID: 103, UserID: 1}},
		nil, nil,
		[]models.Comment{{ID: 401, PostID: 103, UserID: 1, Text: "hi"}},
	)

	post := st.CreatePost(1, "https://example.com/x.jpg", "")
	assert.Equal(t, uint(402), post.ID)
}

func TestSnapshotIsolatedFromMutations(t *testing.T) {
	st := New()
	st.CreatePost(1, "https://example.com/1.jpg", "")

	sn := st.Snapshot()
	st.CreatePost(1, "https://example.com/2.jpg", "")

	assert.Len(t, sn.Posts, 1)
	assert.Len(t, st.Snapshot().Posts, 2)
}

func TestConcurrentLikesSinglePairSurvives(t *testing.T) {
	st := New()
	post := st.CreatePost(2, "https://example.com/a.jpg", "")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = st.AddLike(1, post.ID)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, st.Snapshot().LikeCount(post.ID))
}

func TestQueriesOnUnknownIDs(t *testing.T) {
	sn := New().Snapshot()

	_, ok := sn.UserByID(99)
	assert.False(t, ok)
	assert.Empty(t, sn.PostsBy(99))
	assert.Empty(t, sn.LikesFor(99))
	assert.Empty(t, sn.CommentsFor(99))
	assert.Empty(t, sn.FollowingIDs(99))
	assert.Equal(t, 0, sn.FollowerCount(99))
	assert.Equal(t, 0, sn.LikeCount(99))
	assert.False(t, sn.HasLiked(99, 99))
}

func TestSearchUsersCaseInsensitive(t *testing.T) {
	st := New()
	_, err := st.CreateUser("Jane_Smith", "jane@example.com", "hash")
	require.NoError(t, err)
	_, err = st.CreateUser("bob", "bob@example.com", "hash")
	require.NoError(t, err)

	sn := st.Snapshot()

	hits := sn.SearchUsers("jane", 0)
	require.Len(t, hits, 1)
	assert.Equal(t, "Jane_Smith", hits[0].Username)

	// Exclusion drops the searcher from their own results
	assert.Empty(t, sn.SearchUsers("jane", hits[0].ID))

	// Empty query matches everyone
	assert.Len(t, sn.SearchUsers("", 0), 2)
}
