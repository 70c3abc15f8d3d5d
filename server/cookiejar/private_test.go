package cookiejar_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jrsteele09/go-movie-reviews/server/cookiejar"
	"github.com/stretchr/testify/require"
)

func newJar(t *testing.T) *cookiejar.PrivateJar {
	t.Helper()
	jar, err := cookiejar.NewRandom()
	require.NoError(t, err)
	return jar
}

// setCookie runs jar.Set and returns the cookie it wrote.
func setCookie(t *testing.T, jar *cookiejar.PrivateJar, name, value string) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	require.NoError(t, jar.Set(w, httptest.NewRequest(http.MethodGet, "/", nil), name, value))
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func requestWith(cookies ...*http.Cookie) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		r.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
	}
	return r
}

func TestPrivateJar_RoundTrip(t *testing.T) {
	jar := newJar(t)
	c := setCookie(t, jar, "jwt", "header.payload.signature")

	require.NotContains(t, c.Value, "payload")
	require.True(t, c.HttpOnly)
	require.Equal(t, "/", c.Path)
	require.Equal(t, http.SameSiteLaxMode, c.SameSite)
	require.Zero(t, c.MaxAge)

	got, err := jar.Get(requestWith(c), "jwt")
	require.NoError(t, err)
	require.Equal(t, "header.payload.signature", got)
}

func TestPrivateJar_Missing(t *testing.T) {
	_, err := newJar(t).Get(requestWith(), "jwt")
	require.ErrorIs(t, err, cookiejar.ErrNoCookie)
}

func TestPrivateJar_RejectsTampering(t *testing.T) {
	jar := newJar(t)
	c := setCookie(t, jar, "jwt", "value")

	t.Run("plaintext value", func(t *testing.T) {
		_, err := jar.Get(requestWith(&http.Cookie{Name: "jwt", Value: "header.payload.signature"}), "jwt")
		require.ErrorIs(t, err, cookiejar.ErrTampered)
	})

	t.Run("flipped byte", func(t *testing.T) {
		b := []byte(c.Value)
		if b[len(b)/2] == 'A' {
			b[len(b)/2] = 'B'
		} else {
			b[len(b)/2] = 'A'
		}
		_, err := jar.Get(requestWith(&http.Cookie{Name: "jwt", Value: string(b)}), "jwt")
		require.ErrorIs(t, err, cookiejar.ErrTampered)
	})

	t.Run("written by another key", func(t *testing.T) {
		_, err := newJar(t).Get(requestWith(c), "jwt")
		require.ErrorIs(t, err, cookiejar.ErrTampered)
	})

	t.Run("moved to another cookie name", func(t *testing.T) {
		_, err := jar.Get(requestWith(&http.Cookie{Name: "other", Value: c.Value}), "other")
		require.ErrorIs(t, err, cookiejar.ErrTampered)
	})
}

func TestPrivateJar_Remove(t *testing.T) {
	jar := newJar(t)
	w := httptest.NewRecorder()
	jar.Remove(w, httptest.NewRequest(http.MethodPost, "/", nil), "jwt")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "jwt", cookies[0].Name)
	require.Empty(t, cookies[0].Value)
	require.Negative(t, cookies[0].MaxAge)
}

func TestPrivateJar_SecureBehindTLSProxy(t *testing.T) {
	jar := newJar(t)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Forwarded-Proto", "https")
	w := httptest.NewRecorder()
	require.NoError(t, jar.Set(w, r, "jwt", "v"))
	require.True(t, w.Result().Cookies()[0].Secure)
}

func TestNew_NilKeyset(t *testing.T) {
	_, err := cookiejar.New(nil)
	require.ErrorIs(t, err, cookiejar.ErrNilKeyset)
}
