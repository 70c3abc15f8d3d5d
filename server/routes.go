package server

import (
	"net/http"
	"strings"
)

func (s *Server) initRoutes() {
	strict := s.guard.Middleware(Reject)
	permissive := s.guard.Middleware(Anonymous)

	s.RegisterRouteHandler("GET /{$}", ChainMiddleware(s.HomeHandler(), s.HTMLMiddleWare(permissive)...))

	// USERS
	s.RegisterRouteHandler("GET "+RouteSignUp, ChainMiddleware(s.SignUpPageHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("POST "+RouteSignUp, ChainMiddleware(s.SignUpHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("GET "+RouteSignIn, ChainMiddleware(s.SignInPageHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("POST "+RouteSignIn, ChainMiddleware(s.SignInHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("POST "+RouteLogout, ChainMiddleware(s.LogoutHandler(), s.HTMLMiddleWare()...))

	// MOVIES
	s.RegisterRouteHandler("GET "+RouteMovies, ChainMiddleware(s.MoviesIndexHandler(), s.HTMLMiddleWare(permissive)...))
	s.RegisterRouteHandler("GET "+RouteMovieNew, ChainMiddleware(s.MovieNewHandler(), s.HTMLMiddleWare(permissive)...))
	s.RegisterRouteHandler("POST "+RouteMovies, ChainMiddleware(s.MovieCreateHandler(), s.HTMLMiddleWare(strict)...))
	s.RegisterRouteHandler("GET "+RouteMovie, ChainMiddleware(s.MovieShowHandler(), s.HTMLMiddleWare(permissive)...))
	s.RegisterRouteHandler("GET "+RouteMovieEdit, ChainMiddleware(s.MovieEditHandler(), s.HTMLMiddleWare(permissive)...))
	s.RegisterRouteHandler("POST "+RouteMovie, ChainMiddleware(s.MovieUpdateHandler(), s.HTMLMiddleWare(strict)...))
	s.RegisterRouteHandler("POST "+RouteMovieDelete, ChainMiddleware(s.MovieDeleteHandler(), s.HTMLMiddleWare(strict)...))

	// REVIEWS
	s.RegisterRouteHandler("GET "+RouteReviewNew, ChainMiddleware(s.ReviewNewHandler(), s.HTMLMiddleWare(strict)...))
	s.RegisterRouteHandler("POST "+RouteReviews, ChainMiddleware(s.ReviewCreateHandler(), s.HTMLMiddleWare(strict)...))
	s.RegisterRouteHandler("POST "+RouteReviewDelete, ChainMiddleware(s.ReviewDeleteHandler(), s.HTMLMiddleWare(strict)...))

	s.RegisterRouteHandler("GET "+RouteStaticCSS, ChainMiddleware(s.serveFileHandler(), s.StaticMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteStaticJS, ChainMiddleware(s.serveFileHandler(), s.StaticMiddleware()...))
}

func (s *Server) serveFileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filePath := strings.TrimPrefix(r.URL.Path, "/")
		if filePath == "" {
			http.Error(w, "404 - Page Not Found", http.StatusNotFound)
			return
		}
		err := StreamFile(w, r, filePath)
		if err != nil {
			logError(r.Method, filePath, err.Error())
			http.Error(w, "404 - Page Not Found", http.StatusNotFound)
			return
		}
	}
}
