package server

import (
	"net/http"

	"github.com/google/uuid"
	apperrors "github.com/jrsteele09/go-movie-reviews/internal/errors"
	"github.com/jrsteele09/go-movie-reviews/movies"
	"github.com/rs/zerolog/log"
)

// parseID reads a UUID path value. It writes a 400 and returns false when
// the value is not a UUID.
func parseID(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		http.Error(w, "400 - Bad Request", http.StatusBadRequest)
		return "", false
	}
	return id.String(), true
}

// writeLookupError answers a failed read with 404 or 500.
func writeLookupError(w http.ResponseWriter, r *http.Request, err error) {
	if apperrors.Is(err, apperrors.ErrNotFound) {
		http.Error(w, "404 - Page Not Found", http.StatusNotFound)
		return
	}
	logError(r.Method, r.URL.Path, err.Error())
	http.Error(w, "500 - Internal Server Error", http.StatusInternalServerError)
}

func movieFromForm(r *http.Request) movies.Movie {
	return movies.Movie{
		Name:     r.PostFormValue("name"),
		Director: r.PostFormValue("director"),
		Synopsis: r.PostFormValue("synopsis"),
	}
}

// MoviesIndexHandler lists all movies (GET /movies)
func (s *Server) MoviesIndexHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("movies/index.html")
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := s.repos.Movies.List(r.Context())
		if err != nil {
			writeLookupError(w, r, err)
			return
		}
		data := s.pageData(w, r)
		data.Movies = list
		renderTemplate(w, tmpl, data)
	}
}

// MovieNewHandler renders the new movie form (GET /movies/new)
func (s *Server) MovieNewHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("movies/new.html")
	return func(w http.ResponseWriter, r *http.Request) {
		renderTemplate(w, tmpl, s.pageData(w, r))
	}
}

// MovieCreateHandler stores a new movie (POST /movies)
func (s *Server) MovieCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}
		movie := movieFromForm(r)
		if err := movie.Normalize(); err != nil {
			s.redirectWithNotice(w, r, RouteMovieNew, "Failed to create movie: name and director are required")
			return
		}
		if err := s.repos.Movies.Create(r.Context(), &movie); err != nil {
			log.Err(err).Msg("failed to create movie")
			s.redirectWithNotice(w, r, RouteMovies, "Failed to create movie")
			return
		}
		s.redirectWithNotice(w, r, RouteMovies, "Movie created successfully")
	}
}

// MovieShowHandler renders a movie and its reviews (GET /movies/{id})
func (s *Server) MovieShowHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("movies/show.html")
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r, "id")
		if !ok {
			return
		}
		movie, err := s.repos.Movies.Get(r.Context(), id)
		if err != nil {
			writeLookupError(w, r, err)
			return
		}
		movieReviews, err := s.repos.Reviews.ListForMovie(r.Context(), id)
		if err != nil {
			writeLookupError(w, r, err)
			return
		}
		data := s.pageData(w, r)
		data.Movie = movie
		data.Reviews = movieReviews
		renderTemplate(w, tmpl, data)
	}
}

// MovieEditHandler renders the edit form (GET /movies/{id}/edit)
func (s *Server) MovieEditHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("movies/edit.html")
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r, "id")
		if !ok {
			return
		}
		movie, err := s.repos.Movies.Get(r.Context(), id)
		if err != nil {
			writeLookupError(w, r, err)
			return
		}
		data := s.pageData(w, r)
		data.Movie = movie
		renderTemplate(w, tmpl, data)
	}
}

// MovieUpdateHandler saves the edit form (POST /movies/{id})
func (s *Server) MovieUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r, "id")
		if !ok {
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}
		movie := movieFromForm(r)
		movie.ID = id
		if err := movie.Normalize(); err != nil {
			s.redirectWithNotice(w, r, moviePath(id)+"/edit", "Failed to update movie: name and director are required")
			return
		}
		if err := s.repos.Movies.Update(r.Context(), &movie); err != nil {
			if apperrors.Is(err, apperrors.ErrNotFound) {
				http.Error(w, "404 - Page Not Found", http.StatusNotFound)
				return
			}
			log.Err(err).Msg("failed to update movie")
			s.redirectWithNotice(w, r, RouteMovies, "Failed to update movie")
			return
		}
		s.redirectWithNotice(w, r, RouteMovies, "Movie edited successfully")
	}
}

// MovieDeleteHandler removes a movie and its reviews (POST /movies/{id}/delete)
func (s *Server) MovieDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r, "id")
		if !ok {
			return
		}
		if err := s.repos.Movies.Delete(r.Context(), id); err != nil {
			if apperrors.Is(err, apperrors.ErrNotFound) {
				http.Error(w, "404 - Page Not Found", http.StatusNotFound)
				return
			}
			log.Err(err).Msg("failed to delete movie")
			s.redirectWithNotice(w, r, RouteMovies, "Failed to delete movie")
			return
		}
		s.redirectWithNotice(w, r, RouteMovies, "Movie deleted successfully")
	}
}
