package errors_test

import (
	"testing"

	apperrors "github.com/jrsteele09/go-movie-reviews/internal/errors"
	"github.com/stretchr/testify/require"
)

func TestWrapf(t *testing.T) {
	require.NoError(t, apperrors.Wrapf(nil, "ignored"))

	err := apperrors.Wrapf(apperrors.ErrNotFound, "movie %s", "42")
	require.EqualError(t, err, "movie 42: not found")
	require.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}
