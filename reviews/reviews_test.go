package reviews_test

import (
	"testing"

	apperrors "github.com/jrsteele09/go-movie-reviews/internal/errors"
	"github.com/jrsteele09/go-movie-reviews/reviews"
	"github.com/stretchr/testify/require"
)

func TestReview_Normalize(t *testing.T) {
	valid := func(score int) reviews.Review {
		return reviews.Review{MovieID: "m-1", UserID: "u-1", Score: score, Text: "  Great. "}
	}

	for _, score := range []int{1, 5, 10} {
		rv := valid(score)
		require.NoError(t, rv.Normalize(), "score %d", score)
		require.Equal(t, "Great.", rv.Text)
	}

	for _, score := range []int{-1, 0, 11} {
		rv := valid(score)
		require.ErrorIs(t, rv.Normalize(), apperrors.ErrInvalidRequest, "score %d", score)
	}

	rv := valid(5)
	rv.UserID = ""
	require.ErrorIs(t, rv.Normalize(), apperrors.ErrInvalidRequest)
}
