package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/jrsteele09/go-movie-reviews/internal/config"
	"github.com/jrsteele09/go-movie-reviews/internal/database"
	"github.com/jrsteele09/go-movie-reviews/movies"
	fakemovierepo "github.com/jrsteele09/go-movie-reviews/movies/repofake"
	"github.com/jrsteele09/go-movie-reviews/reviews"
	fakereviewrepo "github.com/jrsteele09/go-movie-reviews/reviews/repofake"
	"github.com/jrsteele09/go-movie-reviews/server"
	"github.com/jrsteele09/go-movie-reviews/users"
	fakeuserrepo "github.com/jrsteele09/go-movie-reviews/users/repofake"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	c, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	setupLogging(c)

	if err := run(c); err != nil {
		log.Fatal().Err(err).Msg("Error running server")
	}
	log.Info().Msg("Server stopped")
}

func setupLogging(c config.Config) {
	level, err := zerolog.ParseLevel(c.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if c.GetEnv() == "DEV" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

func run(c config.Config) (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Bytes("stack", debug.Stack()).Msg("Recovered from panic")
			returnError = errors.New("panic recovered")
		}
	}()

	repos, db, err := openRepos(context.Background(), c)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	handler, err := server.New(c, repos)
	if err != nil {
		return err
	}

	displayAppname(c.GetAppName())
	httpServer := &http.Server{
		Addr:              c.GetPort(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go listenAndServe(httpServer)
	waitForStopSignal()
	return shutdown(httpServer)
}

// openRepos picks Postgres when DATABASE_URL is set and the in-memory
// repositories otherwise. The returned *sql.DB is nil for the latter.
func openRepos(ctx context.Context, c config.Config) (server.Repos, *sql.DB, error) {
	dsn := c.GetDatabaseURL()
	if dsn == "" {
		log.Warn().Msg("DATABASE_URL not set, data is kept in memory")
		userRepo := fakeuserrepo.NewFakeUserRepo()
		movieRepo := fakemovierepo.NewFakeMovieRepo()
		return server.Repos{
			Users:   userRepo,
			Movies:  movieRepo,
			Reviews: fakereviewrepo.NewFakeReviewRepo(movieRepo, userRepo),
		}, nil, nil
	}

	db, err := database.Open(ctx, dsn)
	if err != nil {
		return server.Repos{}, nil, fmt.Errorf("open database: %w", err)
	}
	return server.Repos{
		Users:   users.NewPostgresRepo(db),
		Movies:  movies.NewPostgresRepo(db),
		Reviews: reviews.NewPostgresRepo(db),
	}, db, nil
}

func listenAndServe(server *http.Server) {
	log.Info().Msgf("Server listening on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server.ListenAndServe")
	}
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
