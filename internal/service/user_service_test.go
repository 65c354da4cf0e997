package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sefazor/eventmate-backend/internal/models"
	"github.com/sefazor/eventmate-backend/pkg/apperror"
	"github.com/sefazor/eventmate-backend/pkg/utils"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

func newTestUserService(users *fakeUserRepo, store *fakeEventStore) *UserService {
	return NewUserService(users, store, utils.NewValidator(), zap.NewNop())
}

func TestGetProfileRejectsOtherUsers(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestUserService(users, newFakeEventStore())
	alice := addUser(t, users, "alice")

	_, err := svc.GetProfile(alice.ID, "alice", "bob")
	require.Error(t, err)
	assert.Equal(t, apperror.KindForbidden, apperror.From(err).Kind)
}

func TestGetProfileIncludesSavedEvents(t *testing.T) {
	users := newFakeUserRepo()
	store := newFakeEventStore()
	svc := newTestUserService(users, store)
	alice := addUser(t, users, "alice")

	event := &models.Event{
		APIEventID: "evt42",
		Name:       "Jazz Night",
		Location:   "Blue Note",
		Date:       time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC),
	}
	_, _, err := store.Save(alice.ID, event)
	require.NoError(t, err)

	profile, err := svc.GetProfile(alice.ID, "alice", "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	require.Len(t, profile.SavedEvents, 1)
	assert.Equal(t, "Jazz Night", profile.SavedEvents[0].Name)
	assert.Equal(t, "Blue Note", profile.SavedEvents[0].Location)
	assert.Equal(t, "2025-03-01T20:00:00Z", profile.SavedEvents[0].Date)
}

func TestUpdateLocationOverwrites(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestUserService(users, newFakeEventStore())
	alice := addUser(t, users, "alice")

	require.NoError(t, svc.UpdateLocation(alice.ID, 40.7, -74.0))
	require.NoError(t, svc.UpdateLocation(alice.ID, 51.5, -0.1))

	stored := users.users[alice.ID]
	assert.Equal(t, 51.5, *stored.Latitude)
	assert.Equal(t, -0.1, *stored.Longitude)
}

func TestEditProfileOverwritesBioUnconditionally(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestUserService(users, newFakeEventStore())
	alice := addUser(t, users, "alice")

	require.NoError(t, svc.EditProfile(alice.ID, "hello", nil))
	assert.Equal(t, "hello", users.users[alice.ID].Bio)

	// Clearing the bio is a legitimate edit.
	require.NoError(t, svc.EditProfile(alice.ID, "", nil))
	assert.Equal(t, "", users.users[alice.ID].Bio)
}

func TestEditProfileEncodesPicture(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestUserService(users, newFakeEventStore())
	alice := addUser(t, users, "alice")

	require.NoError(t, svc.EditProfile(alice.ID, "bio", pngMagic))

	stored := users.users[alice.ID]
	assert.True(t, strings.HasPrefix(stored.ProfilePicture, "data:image/png;base64,"),
		"got %q", stored.ProfilePicture)
}

func TestEditProfileRejectsNonImagePicture(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestUserService(users, newFakeEventStore())
	alice := addUser(t, users, "alice")

	err := svc.EditProfile(alice.ID, "bio", []byte("just some text"))
	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidInput, apperror.From(err).Kind)
	assert.Empty(t, users.users[alice.ID].ProfilePicture)
}
