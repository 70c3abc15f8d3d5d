package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jrsteele09/go-movie-reviews/auth"
	"github.com/jrsteele09/go-movie-reviews/internal/config"
	"github.com/jrsteele09/go-movie-reviews/movies"
	"github.com/jrsteele09/go-movie-reviews/reviews"
	"github.com/jrsteele09/go-movie-reviews/server/cookiejar"
	"github.com/jrsteele09/go-movie-reviews/token"
	"github.com/jrsteele09/go-movie-reviews/users"
	"github.com/rs/zerolog/log"
)

// Repos holds all repository dependencies for the Server
type Repos struct {
	Users   users.UserRepo
	Movies  movies.MovieRepo
	Reviews reviews.ReviewRepo
}

type Server struct {
	env    string // Environment (e.g., "DEV", "PROD")
	mux    *http.ServeMux
	routes []string
	config config.Config
	repos  Repos
	auth   *auth.AuthenticationService
	jar    *cookiejar.PrivateJar
	guard  *Guard

	nowTime func() time.Time
}

// ServerOption defines a function type to modify the Server instance.
type ServerOption func(*Server)

// WithNowTime sets the clock used for token issue and expiry (primarily for testing)
func WithNowTime(nowFunc func() time.Time) ServerOption {
	return func(s *Server) {
		s.nowTime = nowFunc
	}
}

// WithCookieJar replaces the per-process cookie jar.
func WithCookieJar(jar *cookiejar.PrivateJar) ServerOption {
	return func(s *Server) {
		s.jar = jar
	}
}

func New(config config.Config, repos Repos, options ...ServerOption) (*Server, error) {
	if repos.Users == nil || repos.Movies == nil || repos.Reviews == nil {
		return nil, fmt.Errorf("[Server New] users, movies and reviews repos are required")
	}

	s := &Server{
		env:     config.GetEnv(),
		mux:     http.NewServeMux(),
		config:  config,
		repos:   repos,
		nowTime: time.Now,
	}
	for _, opt := range options {
		opt(s)
	}

	if s.jar == nil {
		jar, err := cookiejar.NewRandom()
		if err != nil {
			return nil, fmt.Errorf("[Server New] failed to create cookie jar: %w", err)
		}
		s.jar = jar
	}

	codec, err := token.NewHMAC(
		config.GetSessionSecret(),
		token.WithLifetime(config.GetSessionLifetime()),
		token.WithNowTime(func() time.Time { return s.nowTime() }),
	)
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to create token codec: %w", err)
	}

	authService, err := auth.NewAuthenticationService(repos.Users, codec)
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to create authentication service: %w", err)
	}
	s.auth = authService
	s.guard = NewGuard(s.jar, codec, config.GetSessionCookieName())

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func methodColumn(method string) string {
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		return color + paddedMethod + ResetColor
	}
	return Gray + paddedMethod + ResetColor
}

func logRoute(method, path string) {
	log.Info().Msgf("[%-19s] %s", methodColumn(method), path)
}

func logError(method, path, error string) {
	log.Error().Msgf("[%-19s] %s %s", methodColumn(method), path, Red+error+ResetColor)
}

// Helper function to determine the scheme (http/https)
func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}
