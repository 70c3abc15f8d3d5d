package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	RouteHome = "/"

	// User Routes
	RouteSignUp = "/users/sign_up"
	RouteSignIn = "/users/sign_in"
	RouteLogout = "/users/logout"

	// Movie Routes
	RouteMovies      = "/movies"
	RouteMovieNew    = "/movies/new"
	RouteMovie       = "/movies/{id}"
	RouteMovieEdit   = "/movies/{id}/edit"
	RouteMovieDelete = "/movies/{id}/delete"

	// Review Routes
	RouteReviews      = "/reviews"
	RouteReviewNew    = "/reviews/new/{movieID}"
	RouteReviewDelete = "/reviews/{id}/delete"

	// Static Asset Routes (patterns)
	RouteStaticCSS = "/css/{file}"
	RouteStaticJS  = "/js/{file}"
)

func moviePath(id string) string {
	return RouteMovies + "/" + id
}
