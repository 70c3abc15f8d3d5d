package server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "github.com/jrsteele09/go-movie-reviews/internal/errors"
	"github.com/jrsteele09/go-movie-reviews/server"
	"github.com/jrsteele09/go-movie-reviews/server/cookiejar"
	"github.com/jrsteele09/go-movie-reviews/token"
	"github.com/stretchr/testify/require"
)

type guardFixture struct {
	jar   *cookiejar.PrivateJar
	codec *token.Codec
	guard *server.Guard
	now   time.Time
}

func newGuardFixture(t *testing.T) *guardFixture {
	t.Helper()
	f := &guardFixture{now: time.Unix(1_700_000_000, 0)}
	jar, err := cookiejar.NewRandom()
	require.NoError(t, err)
	codec, err := token.NewHMAC("s3cr3t", token.WithNowTime(func() time.Time { return f.now }))
	require.NoError(t, err)
	f.jar, f.codec = jar, codec
	f.guard = server.NewGuard(jar, codec, "jwt")
	return f
}

// sessionCookie returns the encrypted jwt cookie for subject.
func (f *guardFixture) sessionCookie(t *testing.T, subject string) *http.Cookie {
	t.Helper()
	raw, err := f.codec.Encode(subject)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	require.NoError(t, f.jar.Set(w, httptest.NewRequest(http.MethodGet, "/", nil), "jwt", raw))
	return w.Result().Cookies()[0]
}

// serve runs a guarded handler that records the identity it saw.
func (f *guardFixture) serve(policy server.OnMissing, cookies ...*http.Cookie) (*httptest.ResponseRecorder, *server.Identity) {
	var seen *server.Identity
	h := server.ChainMiddleware(func(w http.ResponseWriter, r *http.Request) {
		identity := server.IdentityFrom(r.Context())
		seen = &identity
		w.WriteHeader(http.StatusOK)
	}, f.guard.Middleware(policy))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		r.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
	}
	w := httptest.NewRecorder()
	h(w, r)
	return w, seen
}

func TestGuard_ValidSession(t *testing.T) {
	f := newGuardFixture(t)
	cookie := f.sessionCookie(t, "a@b.com")

	for _, policy := range []server.OnMissing{server.Reject, server.Anonymous} {
		w, seen := f.serve(policy, cookie)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, &server.Identity{Subject: "a@b.com", Authenticated: true}, seen)
	}
}

func TestGuard_Divergence(t *testing.T) {
	f := newGuardFixture(t)
	valid := f.sessionCookie(t, "a@b.com")

	plainJWT, err := f.codec.Encode("a@b.com")
	require.NoError(t, err)

	otherJar := newGuardFixture(t)
	foreign := otherJar.sessionCookie(t, "a@b.com")

	cases := map[string][]*http.Cookie{
		"no cookie":              nil,
		"empty cookie":           {{Name: "jwt", Value: ""}},
		"unencrypted token":      {{Name: "jwt", Value: plainJWT}},
		"encrypted by other key": {foreign},
		"tampered ciphertext":    {{Name: "jwt", Value: valid.Value[:len(valid.Value)-4] + "AAAA"}},
	}

	for name, cookies := range cases {
		t.Run(name, func(t *testing.T) {
			w, seen := f.serve(server.Reject, cookies...)
			require.Equal(t, http.StatusUnauthorized, w.Code)
			require.Nil(t, seen, "strict guard must not run the handler")

			w, seen = f.serve(server.Anonymous, cookies...)
			require.Equal(t, http.StatusOK, w.Code)
			require.Equal(t, &server.Identity{}, seen)
		})
	}
}

func TestGuard_ExpiredSession(t *testing.T) {
	f := newGuardFixture(t)
	cookie := f.sessionCookie(t, "a@b.com")

	f.now = f.now.Add(3601 * time.Second)

	w, seen := f.serve(server.Reject, cookie)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Nil(t, seen)

	w, seen = f.serve(server.Anonymous, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	require.False(t, seen.Authenticated)
}

func TestGuard_RejectionsLookAlike(t *testing.T) {
	f := newGuardFixture(t)
	expired := f.sessionCookie(t, "a@b.com")
	f.now = f.now.Add(2 * time.Hour)

	missing, _ := f.serve(server.Reject)
	stale, _ := f.serve(server.Reject, expired)
	forged, _ := f.serve(server.Reject, &http.Cookie{Name: "jwt", Value: "forged"})

	require.Equal(t, missing.Body.String(), stale.Body.String())
	require.Equal(t, missing.Body.String(), forged.Body.String())
}

func TestRequireAuthAndOptionalAuth(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := server.RequireAuth(r)
	require.ErrorIs(t, err, apperrors.ErrUnauthorized)
	require.Equal(t, server.Identity{}, server.OptionalAuth(r))

	f := newGuardFixture(t)
	cookie := f.sessionCookie(t, "a@b.com")
	var (
		required server.Identity
		optional server.Identity
		reqErr   error
	)
	h := server.ChainMiddleware(func(w http.ResponseWriter, r *http.Request) {
		required, reqErr = server.RequireAuth(r)
		optional = server.OptionalAuth(r)
	}, f.guard.Middleware(server.Anonymous))

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	h(httptest.NewRecorder(), r)

	require.NoError(t, reqErr)
	require.Equal(t, "a@b.com", required.Subject)
	require.Equal(t, required, optional)
}
