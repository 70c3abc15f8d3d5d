package movies_test

import (
	"testing"

	apperrors "github.com/jrsteele09/go-movie-reviews/internal/errors"
	"github.com/jrsteele09/go-movie-reviews/movies"
	"github.com/stretchr/testify/require"
)

func TestMovie_Normalize(t *testing.T) {
	tests := []struct {
		name    string
		movie   movies.Movie
		want    movies.Movie
		wantErr bool
	}{
		{
			name:  "trims fields",
			movie: movies.Movie{Name: "  Alien ", Director: " Ridley Scott", Synopsis: " In space. "},
			want:  movies.Movie{Name: "Alien", Director: "Ridley Scott", Synopsis: "In space."},
		},
		{
			name:  "synopsis optional",
			movie: movies.Movie{Name: "Alien", Director: "Ridley Scott"},
			want:  movies.Movie{Name: "Alien", Director: "Ridley Scott"},
		},
		{name: "missing name", movie: movies.Movie{Name: "  ", Director: "Ridley Scott"}, wantErr: true},
		{name: "missing director", movie: movies.Movie{Name: "Alien"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.movie
			err := m.Normalize()
			if tt.wantErr {
				require.ErrorIs(t, err, apperrors.ErrInvalidRequest)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, m)
		})
	}
}
