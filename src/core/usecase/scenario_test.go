package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapi/src/core/ports"
)

// TestTwoAuthorLifecycle walks two users through the full post and comment
// flow: authors cannot comment on their own posts, and only the author may
// delete a post, which removes its comments with it.
func TestTwoAuthorLifecycle(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	regA, err := e.auth.Register(ctx, "a@x.com", "secret-a", "alice")
	require.NoError(t, err)
	require.False(t, regA.Failed())
	alice := regA.Data

	regB, err := e.auth.Register(ctx, "b@x.com", "secret-b", "bob")
	require.NoError(t, err)
	require.False(t, regB.Failed())
	bob := regB.Data

	created, err := e.postSvc.Create(ctx, alice.UserID, "Morning pages", "Write three pages before coffee.", 1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, created.StatusCode)
	postID := created.Data.ID
	assert.Equal(t, "alice", created.Data.UserName)
	assert.Equal(t, "Mindfulness & Meditation", created.Data.CategoryName)

	bobIdentity := ports.Identity{UserID: bob.UserID, UserName: bob.UserName}
	commented, err := e.commentSvc.Create(ctx, postID, bobIdentity, "Trying this tomorrow.")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, commented.StatusCode)
	assert.Equal(t, "bob", commented.Data.UserName)

	aliceIdentity := ports.Identity{UserID: alice.UserID, UserName: alice.UserName}
	selfComment, err := e.commentSvc.Create(ctx, postID, aliceIdentity, "Replying to myself.")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, selfComment.StatusCode)
	assert.Equal(t, "You cannot comment on your own blog post.", selfComment.Err)

	bobDelete, err := e.postSvc.Delete(ctx, postID, bob.UserID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, bobDelete.StatusCode)

	aliceDelete, err := e.postSvc.Delete(ctx, postID, alice.UserID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, aliceDelete.StatusCode)

	remaining, err := e.commentSvc.ListByPost(ctx, postID)
	require.NoError(t, err)
	require.False(t, remaining.Failed())
	assert.Empty(t, remaining.Data)
}
