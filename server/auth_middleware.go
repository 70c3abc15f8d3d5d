package server

import (
	"context"
	"net/http"

	apperrors "github.com/jrsteele09/go-movie-reviews/internal/errors"
	"github.com/jrsteele09/go-movie-reviews/server/cookiejar"
	"github.com/jrsteele09/go-movie-reviews/token"
	"github.com/rs/zerolog/log"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// ContextKeyIdentity stores the request's Identity
const ContextKeyIdentity ContextKey = "identity"

// OnMissing selects what a guard does when a request carries no valid session.
type OnMissing int

const (
	// Reject answers 401 and never runs the handler.
	Reject OnMissing = iota
	// Anonymous runs the handler with an unauthenticated Identity.
	Anonymous
)

func (p OnMissing) String() string {
	if p == Reject {
		return "reject"
	}
	return "anonymous"
}

// Identity is who the request acts for. It is derived per request from the
// session cookie and never cached.
type Identity struct {
	Subject       string
	Authenticated bool
}

// Guard resolves the session cookie into an Identity. Both policies share
// the same pipeline: decrypt the cookie, then decode the token.
type Guard struct {
	jar        *cookiejar.PrivateJar
	codec      *token.Codec
	cookieName string
}

func NewGuard(jar *cookiejar.PrivateJar, codec *token.Codec, cookieName string) *Guard {
	return &Guard{
		jar:        jar,
		codec:      codec,
		cookieName: cookieName,
	}
}

// identify returns the authenticated Identity for r, or an error if the
// cookie is missing, undecryptable, forged, malformed or expired.
func (g *Guard) identify(r *http.Request) (Identity, error) {
	raw, err := g.jar.Get(r, g.cookieName)
	if err != nil {
		return Identity{}, err
	}
	claims, err := g.codec.Decode(raw)
	if err != nil {
		return Identity{}, err
	}
	return Identity{Subject: claims.Subject, Authenticated: true}, nil
}

// Middleware builds the guard for policy in the ChainMiddleware shape.
func (g *Guard) Middleware(policy OnMissing) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			identity, err := g.identify(r)
			if err != nil {
				logEvent := log.Debug().Str("path", r.URL.Path).Str("policy", policy.String())
				if reason := token.ReasonOf(err); reason != "" {
					logEvent = logEvent.Str("reason", string(reason)).AnErr("cause", token.CauseOf(err))
				} else {
					logEvent = logEvent.Err(err)
				}
				logEvent.Msg("no valid session")

				if policy == Reject {
					http.Error(w, "401 - Unauthorized", http.StatusUnauthorized)
					return
				}
				identity = Identity{}
			}

			ctx := context.WithValue(r.Context(), ContextKeyIdentity, identity)
			next(w, r.WithContext(ctx))
		}
	}
}

// IdentityFrom returns the Identity a guard placed in ctx, or an
// unauthenticated one.
func IdentityFrom(ctx context.Context) Identity {
	identity, _ := ctx.Value(ContextKeyIdentity).(Identity)
	return identity
}

// RequireAuth returns the authenticated Identity of r or ErrUnauthorized.
func RequireAuth(r *http.Request) (Identity, error) {
	identity := IdentityFrom(r.Context())
	if !identity.Authenticated {
		return Identity{}, apperrors.ErrUnauthorized
	}
	return identity, nil
}

// OptionalAuth returns the Identity of r, authenticated or not. It never fails.
func OptionalAuth(r *http.Request) Identity {
	return IdentityFrom(r.Context())
}
