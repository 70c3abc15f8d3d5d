package fakeuserrepo

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	apperrors "github.com/jrsteele09/go-movie-reviews/internal/errors"
	"github.com/jrsteele09/go-movie-reviews/users"
)

var _ users.UserRepo = (*FakeUserRepo)(nil)

// FakeUserRepo keeps users in memory. It backs the server when no database
// is configured, and the tests.
type FakeUserRepo struct {
	users    map[string]users.User
	emailIds map[string]string // email to user id
	lock     sync.RWMutex
	nowFunc  func() time.Time
}

func NewFakeUserRepo() *FakeUserRepo {
	return &FakeUserRepo{
		users:    make(map[string]users.User),
		emailIds: make(map[string]string),
		nowFunc:  time.Now,
	}
}

func (ur *FakeUserRepo) Create(_ context.Context, user *users.User) error {
	ur.lock.Lock()
	defer ur.lock.Unlock()

	if _, ok := ur.emailIds[user.Email]; ok {
		return apperrors.Wrapf(apperrors.ErrDuplicate, "user %s", user.Email)
	}
	user.ID = uuid.New().String()
	user.DateJoined = ur.nowFunc().UTC()

	ur.users[user.ID] = *user
	ur.emailIds[user.Email] = user.ID
	return nil
}

func (ur *FakeUserRepo) GetByEmail(_ context.Context, email string) (*users.User, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	id, ok := ur.emailIds[email]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	u := ur.users[id]
	return &u, nil
}

func (ur *FakeUserRepo) GetByID(_ context.Context, id string) (*users.User, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	u, ok := ur.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &u, nil
}
