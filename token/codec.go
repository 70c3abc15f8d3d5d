package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultLifetime is how long an issued session token stays valid.
const DefaultLifetime = time.Hour

// Claims is the validated content of a session token.
type Claims struct {
	Subject   string `json:"sub"`
	ExpiresAt int64  `json:"exp"` // Unix seconds
}

// Codec turns a subject into a signed, time-bounded token and back. It holds
// no mutable state and is safe for concurrent use.
type Codec struct {
	signer   Signer
	lifetime time.Duration
	nowFunc  func() time.Time
}

type CodecOption func(*Codec)

// WithNowTime sets the clock (primarily for testing)
func WithNowTime(now func() time.Time) CodecOption {
	return func(c *Codec) {
		c.nowFunc = now
	}
}

func WithLifetime(lifetime time.Duration) CodecOption {
	return func(c *Codec) {
		c.lifetime = lifetime
	}
}

func New(signer Signer, options ...CodecOption) (*Codec, error) {
	if signer == nil {
		return nil, ErrMissingSecret
	}
	c := &Codec{
		signer:   signer,
		lifetime: DefaultLifetime,
		nowFunc:  time.Now,
	}
	for _, opt := range options {
		opt(c)
	}
	if c.lifetime <= 0 {
		return nil, errors.New("token lifetime must be positive")
	}
	return c, nil
}

// NewHMAC is shorthand for a Codec over an HS256 signer keyed by secret.
func NewHMAC(secret string, options ...CodecOption) (*Codec, error) {
	signer, err := NewHMACSigner(secret)
	if err != nil {
		return nil, err
	}
	return New(signer, options...)
}

// Encode issues a token for subject expiring one lifetime from now.
func (c *Codec) Encode(subject string) (string, error) {
	expiresAt := c.nowFunc().Add(c.lifetime)
	return c.signer.Sign(jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
}

// Decode validates raw in a fixed order (structure, signature, expiry) and
// returns its claims. Every failure is reported as ErrInvalidToken.
func (c *Codec) Decode(raw string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{c.signer.GetSigningMethod().Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.nowFunc),
	)

	var registered jwt.RegisteredClaims
	parsed, err := parser.ParseWithClaims(raw, &registered, c.signer.GetVerificationKey)
	if err != nil {
		return nil, classify(err)
	}
	if !parsed.Valid {
		return nil, invalid(ReasonMalformed, errors.New("token not valid"))
	}

	// jwt accepts exp == now; a session token must expire strictly after now.
	if registered.ExpiresAt.Unix() <= c.nowFunc().Unix() {
		return nil, invalid(ReasonExpired, jwt.ErrTokenExpired)
	}
	if registered.Subject == "" {
		return nil, invalid(ReasonMalformed, errors.New("token has no subject"))
	}

	return &Claims{
		Subject:   registered.Subject,
		ExpiresAt: registered.ExpiresAt.Unix(),
	}, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return invalid(ReasonMalformed, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return invalid(ReasonBadSignature, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return invalid(ReasonExpired, err)
	default:
		return invalid(ReasonMalformed, err)
	}
}
