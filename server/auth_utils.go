package server

import (
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"
)

// SetSessionCookie stores the signed session token in the encrypted cookie.
func (s *Server) SetSessionCookie(w http.ResponseWriter, r *http.Request, sessionToken string) error {
	return s.jar.Set(w, r, s.config.GetSessionCookieName(), sessionToken)
}

func (s *Server) RemoveSessionCookie(w http.ResponseWriter, r *http.Request) {
	s.jar.Remove(w, r, s.config.GetSessionCookieName())
}

// setNotice queues a one-time message for the next rendered page.
func (s *Server) setNotice(w http.ResponseWriter, r *http.Request, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.config.GetNoticeCookieName(),
		Value:    url.QueryEscape(message),
		Path:     "/",
		HttpOnly: true,
		Secure:   getScheme(r) == "https",
		SameSite: http.SameSiteLaxMode,
	})
}

// takeNotice returns the pending notice, if any, and clears it so it is shown once.
func (s *Server) takeNotice(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(s.config.GetNoticeCookieName())
	if err != nil {
		return ""
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.config.GetNoticeCookieName(),
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   getScheme(r) == "https",
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	message, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		log.Debug().Err(err).Msg("discarding unreadable notice")
		return ""
	}
	return message
}

// redirectSuccess helper for post/redirect/get responses
func redirectSuccess(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, http.StatusSeeOther)
}

// redirectWithNotice sets a notice and redirects to path.
func (s *Server) redirectWithNotice(w http.ResponseWriter, r *http.Request, path, notice string) {
	s.setNotice(w, r, notice)
	redirectSuccess(w, r, path)
}
