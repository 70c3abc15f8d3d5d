package server

import (
	"errors"
	"net/http"

	"github.com/jrsteele09/go-movie-reviews/auth"
	"github.com/rs/zerolog/log"
)

const (
	noticeInvalidLogin     = "Invalid email or password"
	noticeLoggedIn         = "User logged in correctly"
	noticeRegistered       = "Account created, please sign in"
	noticeRegisterFailed   = "Could not create account"
	noticeRegisterRequired = "A valid email and a password of at most 72 bytes are required"
)

// SignUpPageHandler renders the registration form (GET /users/sign_up)
func (s *Server) SignUpPageHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("users/sign_up.html")
	return func(w http.ResponseWriter, r *http.Request) {
		renderTemplate(w, tmpl, s.pageData(w, r))
	}
}

// SignUpHandler processes the registration form (POST /users/sign_up)
func (s *Server) SignUpHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		_, err := s.auth.Register(r.Context(), r.PostFormValue("email"), r.PostFormValue("password"))
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			s.redirectWithNotice(w, r, RouteSignUp, noticeRegisterRequired)
		case err != nil:
			s.redirectWithNotice(w, r, RouteSignUp, noticeRegisterFailed)
		default:
			s.redirectWithNotice(w, r, RouteSignIn, noticeRegistered)
		}
	}
}

// SignInPageHandler renders the login form (GET /users/sign_in)
func (s *Server) SignInPageHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("users/sign_in.html")
	return func(w http.ResponseWriter, r *http.Request) {
		renderTemplate(w, tmpl, s.pageData(w, r))
	}
}

// SignInHandler processes the login form (POST /users/sign_in). Every
// failure shows the same notice.
func (s *Server) SignInHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		sessionToken, err := s.auth.Login(r.Context(), r.PostFormValue("email"), r.PostFormValue("password"))
		if err != nil {
			if !errors.Is(err, auth.ErrInvalidCredentials) {
				log.Err(err).Msg("login failed")
			}
			s.redirectWithNotice(w, r, RouteSignIn, noticeInvalidLogin)
			return
		}

		if err := s.SetSessionCookie(w, r, sessionToken); err != nil {
			log.Err(err).Msg("failed to set session cookie")
			http.Error(w, "500 - Internal Server Error", http.StatusInternalServerError)
			return
		}
		s.redirectWithNotice(w, r, RouteMovies, noticeLoggedIn)
	}
}

// LogoutHandler drops the session cookie (POST /users/logout)
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.RemoveSessionCookie(w, r)
		redirectSuccess(w, r, RouteHome)
	}
}

// HomeHandler renders the home page (GET /)
func (s *Server) HomeHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("home.html")
	return func(w http.ResponseWriter, r *http.Request) {
		renderTemplate(w, tmpl, s.pageData(w, r))
	}
}
