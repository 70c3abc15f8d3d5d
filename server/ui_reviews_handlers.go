package server

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	apperrors "github.com/jrsteele09/go-movie-reviews/internal/errors"
	"github.com/jrsteele09/go-movie-reviews/reviews"
	"github.com/jrsteele09/go-movie-reviews/users"
	"github.com/rs/zerolog/log"
)

// currentUser loads the user behind the request's session. A session whose
// user no longer exists is answered with 401.
func (s *Server) currentUser(w http.ResponseWriter, r *http.Request) (*users.User, bool) {
	identity, err := RequireAuth(r)
	if err != nil {
		http.Error(w, "401 - Unauthorized", http.StatusUnauthorized)
		return nil, false
	}
	user, err := s.auth.UserFor(r.Context(), identity.Subject)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			http.Error(w, "401 - Unauthorized", http.StatusUnauthorized)
			return nil, false
		}
		logError(r.Method, r.URL.Path, err.Error())
		http.Error(w, "500 - Internal Server Error", http.StatusInternalServerError)
		return nil, false
	}
	return user, true
}

// ReviewNewHandler renders the review form (GET /reviews/new/{movieID})
func (s *Server) ReviewNewHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("reviews/new.html")
	return func(w http.ResponseWriter, r *http.Request) {
		movieID, ok := parseID(w, r, "movieID")
		if !ok {
			return
		}
		movie, err := s.repos.Movies.Get(r.Context(), movieID)
		if err != nil {
			writeLookupError(w, r, err)
			return
		}
		data := s.pageData(w, r)
		data.Movie = movie
		data.MinScore = reviews.MinScore
		data.MaxScore = reviews.MaxScore
		renderTemplate(w, tmpl, data)
	}
}

// ReviewCreateHandler stores a review by the signed-in user (POST /reviews)
func (s *Server) ReviewCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}
		movieID, err := uuid.Parse(r.PostFormValue("movie_id"))
		if err != nil {
			http.Error(w, "400 - Bad Request", http.StatusBadRequest)
			return
		}
		score, err := strconv.Atoi(r.PostFormValue("score"))
		if err != nil {
			http.Error(w, "400 - Bad Request", http.StatusBadRequest)
			return
		}
		author, ok := s.currentUser(w, r)
		if !ok {
			return
		}

		review := reviews.Review{
			MovieID: movieID.String(),
			UserID:  author.ID,
			Score:   score,
			Text:    r.PostFormValue("review"),
		}
		if err := review.Normalize(); err != nil {
			s.redirectWithNotice(w, r, moviePath(review.MovieID), "Failed to submit review: score must be between 1 and 10")
			return
		}
		if err := s.repos.Reviews.Create(r.Context(), &review); err != nil {
			if apperrors.Is(err, apperrors.ErrNotFound) {
				s.redirectWithNotice(w, r, RouteMovies, "Failed to submit review: movie not found")
				return
			}
			log.Err(err).Msg("failed to create review")
			s.redirectWithNotice(w, r, moviePath(review.MovieID), "Failed to submit review")
			return
		}
		s.redirectWithNotice(w, r, moviePath(review.MovieID), "Review submitted successfully")
	}
}

// ReviewDeleteHandler removes one of the signed-in user's reviews (POST /reviews/{id}/delete)
func (s *Server) ReviewDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r, "id")
		if !ok {
			return
		}
		author, ok := s.currentUser(w, r)
		if !ok {
			return
		}
		review, err := s.repos.Reviews.Get(r.Context(), id)
		if err != nil {
			writeLookupError(w, r, err)
			return
		}
		if review.UserID != author.ID {
			http.Error(w, "403 - Forbidden", http.StatusForbidden)
			return
		}
		if err := s.repos.Reviews.Delete(r.Context(), id); err != nil && !apperrors.Is(err, apperrors.ErrNotFound) {
			log.Err(err).Msg("failed to delete review")
			s.redirectWithNotice(w, r, moviePath(review.MovieID), "Failed to delete review")
			return
		}
		s.redirectWithNotice(w, r, moviePath(review.MovieID), "Review deleted successfully")
	}
}
