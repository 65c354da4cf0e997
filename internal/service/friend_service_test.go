package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sefazor/eventmate-backend/internal/models"
	"github.com/sefazor/eventmate-backend/pkg/apperror"
)

func newTestFriendService(t *testing.T) (*FriendService, *fakeUserRepo) {
	t.Helper()
	users := newFakeUserRepo()
	return NewFriendService(users, newFakeFriendshipRepo(users)), users
}

func addUser(t *testing.T, repo *fakeUserRepo, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: username + "@example.com", Password: "x"}
	require.NoError(t, repo.Create(user))
	return user
}

func TestAddFriendCreatesDirectedEdge(t *testing.T) {
	svc, users := newTestFriendService(t)
	alice := addUser(t, users, "alice")
	bob := addUser(t, users, "bob")

	created, err := svc.AddFriend(alice.ID, "bob")
	require.NoError(t, err)
	assert.True(t, created)

	aliceFriends, err := svc.ListFriends(alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceFriends, 1)
	assert.Equal(t, "bob", aliceFriends[0].Username)

	// The edge is directional: bob does not see alice.
	bobFriends, err := svc.ListFriends(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobFriends)
}

func TestAddFriendTwiceIsAlreadyFriends(t *testing.T) {
	svc, users := newTestFriendService(t)
	alice := addUser(t, users, "alice")
	addUser(t, users, "bob")

	created, err := svc.AddFriend(alice.ID, "bob")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.AddFriend(alice.ID, "bob")
	require.NoError(t, err)
	assert.False(t, created)

	friends, err := svc.ListFriends(alice.ID)
	require.NoError(t, err)
	assert.Len(t, friends, 1)
}

func TestAddFriendRejectsSelf(t *testing.T) {
	svc, users := newTestFriendService(t)
	alice := addUser(t, users, "alice")

	_, err := svc.AddFriend(alice.ID, "alice")
	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidTarget, apperror.From(err).Kind)
}

func TestAddFriendRejectsUnknownTarget(t *testing.T) {
	svc, users := newTestFriendService(t)
	alice := addUser(t, users, "alice")

	_, err := svc.AddFriend(alice.ID, "nobody")
	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidTarget, apperror.From(err).Kind)
}
