package service

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/sefazor/eventmate-backend/internal/models"
	"github.com/sefazor/eventmate-backend/pkg/geolocate"
	"github.com/sefazor/eventmate-backend/pkg/ticketmaster"
)

// In-memory fakes for the repository interfaces. They mirror the contracts
// of the GORM implementations, including gorm.ErrRecordNotFound and the
// duplicate handling.

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint

	createErr error
	updateErr error

	locationUpdated chan struct{} // closed-channel signal for async seeding tests
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:  make(map[uint]*models.User),
		nextID: 1,
	}
}

func (f *fakeUserRepo) Create(user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, u := range f.users {
		if u.Username == user.Username || u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = f.nextID
	f.nextID++
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) UsernameExists(username string) (bool, error) {
	_, err := f.GetByUsername(username)
	if err == nil {
		return true, nil
	}
	return false, nil
}

func (f *fakeUserRepo) EmailExists(email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) Update(user *models.User) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) UpdateLocation(id uint, lat, lng float64) error {
	u, ok := f.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Latitude = &lat
	u.Longitude = &lng
	if f.locationUpdated != nil {
		close(f.locationUpdated)
	}
	return nil
}

// fakeEventStore backs both EventRepository and SavedEventRepository so the
// save-event flow sees one consistent store.
type fakeEventStore struct {
	events      map[string]*models.Event // by api event id
	saved       map[uint]*models.SavedEvent
	nextEventID uint
	nextSavedID uint

	saveErr error
}

func newFakeEventStore() *fakeEventStore {
	return &fakeEventStore{
		events:      make(map[string]*models.Event),
		saved:       make(map[uint]*models.SavedEvent),
		nextEventID: 1,
		nextSavedID: 1,
	}
}

func (f *fakeEventStore) GetByAPIEventID(apiEventID string) (*models.Event, error) {
	e, ok := f.events[apiEventID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *e
	return &copied, nil
}

func (f *fakeEventStore) Save(userID uint, event *models.Event) (*models.SavedEvent, bool, error) {
	if f.saveErr != nil {
		return nil, false, f.saveErr
	}

	if event.ID == 0 {
		if existing, ok := f.events[event.APIEventID]; ok {
			*event = *existing
		} else {
			event.ID = f.nextEventID
			f.nextEventID++
			stored := *event
			f.events[event.APIEventID] = &stored
		}
	}

	for _, se := range f.saved {
		if se.UserID == userID && se.EventID == event.ID {
			copied := *se
			copied.Event = *event
			return &copied, true, nil
		}
	}

	se := &models.SavedEvent{ID: f.nextSavedID, UserID: userID, EventID: event.ID}
	f.nextSavedID++
	f.saved[se.ID] = se

	copied := *se
	copied.Event = *event
	return &copied, false, nil
}

func (f *fakeEventStore) GetByUser(userID uint) ([]models.SavedEvent, error) {
	var result []models.SavedEvent
	for _, se := range f.saved {
		if se.UserID == userID {
			copied := *se
			for _, e := range f.events {
				if e.ID == se.EventID {
					copied.Event = *e
				}
			}
			result = append(result, copied)
		}
	}
	return result, nil
}

func (f *fakeEventStore) DeleteOwned(id, userID uint) (bool, error) {
	se, ok := f.saved[id]
	if !ok || se.UserID != userID {
		return false, nil
	}
	delete(f.saved, id)
	return true, nil
}

type fakeFriendshipRepo struct {
	users *fakeUserRepo
	edges map[[2]uint]bool
}

func newFakeFriendshipRepo(users *fakeUserRepo) *fakeFriendshipRepo {
	return &fakeFriendshipRepo{users: users, edges: make(map[[2]uint]bool)}
}

func (f *fakeFriendshipRepo) Create(userID, friendID uint) (bool, error) {
	key := [2]uint{userID, friendID}
	if f.edges[key] {
		return false, nil
	}
	f.edges[key] = true
	return true, nil
}

func (f *fakeFriendshipRepo) GetFriends(userID uint) ([]models.User, error) {
	var friends []models.User
	for key := range f.edges {
		if key[0] == userID {
			if u, ok := f.users.users[key[1]]; ok {
				friends = append(friends, *u)
			}
		}
	}
	return friends, nil
}

// fakeLookup is a canned EventLookup.
type fakeLookup struct {
	events    map[string]*ticketmaster.EventDetails
	nearby    []json.RawMessage
	lookupErr error
	calls     int
}

func (f *fakeLookup) SearchNearby(lat, lng float64) ([]json.RawMessage, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	return f.nearby, nil
}

func (f *fakeLookup) GetEvent(id string) (*ticketmaster.EventDetails, error) {
	f.calls++
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	details, ok := f.events[id]
	if !ok {
		return nil, errors.New("unknown event")
	}
	return details, nil
}

type fakeGeolocator struct {
	pos *geolocate.Position
	err error
}

func (f *fakeGeolocator) Locate(ctx context.Context) (*geolocate.Position, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.pos, nil
}
