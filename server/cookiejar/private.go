// Package cookiejar stores cookie values under authenticated encryption, so a
// client can neither read nor alter them. It is the transport layer under the
// session token and is checked independently of the token's own signature.
package cookiejar

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/bitdabbler/tinycrypto"
)

var (
	ErrNoCookie  = errors.New("cookie not present")
	ErrTampered  = errors.New("cookie failed authentication")
	ErrNilKeyset = errors.New("keyset is required")
)

// PrivateJar encrypts cookie values with a tinycrypto keyset. The cookie name
// is sealed together with the value so ciphertexts cannot be moved between
// cookies.
type PrivateJar struct {
	keyset *tinycrypto.Keyset
}

func New(keyset *tinycrypto.Keyset) (*PrivateJar, error) {
	if keyset == nil {
		return nil, ErrNilKeyset
	}
	return &PrivateJar{keyset: keyset}, nil
}

// NewRandom creates a jar keyed for the lifetime of the process. Cookies
// written by a previous process fail authentication and read as absent.
func NewRandom() (*PrivateJar, error) {
	key, err := tinycrypto.NewRandomKey()
	if err != nil {
		return nil, fmt.Errorf("[cookiejar NewRandom] failed to generate key: %w", err)
	}
	return New(tinycrypto.NewKeysetWithKey(key))
}

// Set writes an encrypted session cookie. No Max-Age is set; whatever is
// stored inside governs its own lifetime.
func (j *PrivateJar) Set(w http.ResponseWriter, r *http.Request, name, value string) error {
	sealed, err := j.seal(name, value)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    sealed,
		Path:     "/",
		HttpOnly: true,
		Secure:   isSecure(r),
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Get returns the decrypted value of name. A missing cookie yields
// ErrNoCookie; anything that does not authenticate yields ErrTampered.
func (j *PrivateJar) Get(r *http.Request, name string) (string, error) {
	cookie, err := r.Cookie(name)
	if err != nil || cookie.Value == "" {
		return "", ErrNoCookie
	}
	return j.open(name, cookie.Value)
}

func (j *PrivateJar) Remove(w http.ResponseWriter, r *http.Request, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   isSecure(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func (j *PrivateJar) seal(name, value string) (string, error) {
	ciphertext, err := j.keyset.Encrypt([]byte(name + "=" + value))
	if err != nil {
		return "", fmt.Errorf("[cookiejar seal] %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(ciphertext), nil
}

func (j *PrivateJar) open(name, sealed string) (string, error) {
	ciphertext, err := base64.RawURLEncoding.DecodeString(sealed)
	if err != nil {
		return "", ErrTampered
	}
	plaintext, err := j.keyset.Decrypt(ciphertext)
	if err != nil {
		return "", ErrTampered
	}
	value, ok := strings.CutPrefix(string(plaintext), name+"=")
	if !ok {
		return "", ErrTampered
	}
	return value, nil
}

func isSecure(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	return r.Header.Get("X-Forwarded-Proto") == "https"
}
