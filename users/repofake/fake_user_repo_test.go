package fakeuserrepo_test

import (
	"context"
	"sync"
	"testing"

	apperrors "github.com/jrsteele09/go-movie-reviews/internal/errors"
	"github.com/jrsteele09/go-movie-reviews/users"
	fakeuserrepo "github.com/jrsteele09/go-movie-reviews/users/repofake"
	"github.com/stretchr/testify/require"
)

func TestFakeUserRepo(t *testing.T) {
	ctx := context.Background()
	repo := fakeuserrepo.NewFakeUserRepo()

	u := &users.User{Email: "a@b.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, u))
	require.NotEmpty(t, u.ID)
	require.False(t, u.DateJoined.IsZero())

	byEmail, err := repo.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	require.Equal(t, *u, *byEmail)

	byID, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, *u, *byID)

	// Returned users are copies.
	byID.Email = "changed@b.com"
	again, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "a@b.com", again.Email)

	err = repo.Create(ctx, &users.User{Email: "a@b.com", PasswordHash: "other"})
	require.ErrorIs(t, err, apperrors.ErrDuplicate)

	_, err = repo.GetByEmail(ctx, "ghost@b.com")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = repo.GetByID(ctx, "nope")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFakeUserRepo_ConcurrentCreateSameEmail(t *testing.T) {
	repo := fakeuserrepo.NewFakeUserRepo()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		created  int
		rejected int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.Create(context.Background(), &users.User{Email: "race@b.com"})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				created++
			} else {
				rejected++
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, created)
	require.Equal(t, 19, rejected)
}
