package users_test

import (
	"encoding/json"
	"testing"

	"github.com/jrsteele09/go-movie-reviews/users"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := users.HashPassword("hunter2")
	require.NoError(t, err)
	require.NotEqual(t, "hunter2", hash)

	require.True(t, users.CheckPasswordHash("hunter2", hash))
	require.False(t, users.CheckPasswordHash("hunter3", hash))
	require.False(t, users.CheckPasswordHash("hunter2", "not-a-bcrypt-hash"))

	u := &users.User{PasswordHash: hash}
	require.True(t, u.CheckPassword("hunter2"))
	require.False(t, u.CheckPassword(""))
}

func TestUser_HashNeverSerialized(t *testing.T) {
	b, err := json.Marshal(users.User{ID: "1", Email: "a@b.com", PasswordHash: "$2a$10$secret"})
	require.NoError(t, err)
	require.NotContains(t, string(b), "secret")
	require.Contains(t, string(b), "a@b.com")
}
