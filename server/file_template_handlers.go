package server

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/jrsteele09/go-movie-reviews/movies"
	"github.com/jrsteele09/go-movie-reviews/reviews"
	"github.com/rs/zerolog/log"
)

const contentTypeHTML = "text/html; charset=utf-8"

//go:embed templates/*
var templateFiles embed.FS

func TemplateFilesFS() fs.FS {
	// Create the sub filesystem once
	subFS, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		panic("Failed to create templates sub filesystem: " + err.Error())
	}
	return subFS
}

// ParseTemplate parses a page together with the shared layout
func ParseTemplate(name string) (*template.Template, error) {
	return template.New("layout.html").ParseFS(TemplateFilesFS(), "layout.html", name)
}

// mustParseTemplate is for handler constructors, which run once at startup.
func mustParseTemplate(name string) *template.Template {
	tmpl, err := ParseTemplate(name)
	if err != nil {
		panic("Failed to parse " + name + " template: " + err.Error())
	}
	return tmpl
}

// PageData is the template model shared by every page
type PageData struct {
	AppName   string
	UserEmail string
	Notice    string

	Movies  []movies.Movie
	Movie   *movies.Movie
	Reviews []reviews.UserReview

	MinScore int
	MaxScore int
}

// pageData fills the fields common to every page: the app name, the
// signed-in user's email and any pending notice.
func (s *Server) pageData(w http.ResponseWriter, r *http.Request) PageData {
	identity := OptionalAuth(r)
	data := PageData{
		AppName: s.config.GetAppName(),
		Notice:  s.takeNotice(w, r),
	}
	if identity.Authenticated {
		data.UserEmail = identity.Subject
	}
	return data
}

func renderTemplate(w http.ResponseWriter, tmpl *template.Template, data PageData) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		log.Err(err).Msg("Failed to render template")
		http.Error(w, "500 - Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentTypeHTML)
	_, _ = buf.WriteTo(w)
}
