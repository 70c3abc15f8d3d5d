package auth

import (
	"context"
	"strings"
	"sync"

	apperrors "github.com/jrsteele09/go-movie-reviews/internal/errors"
	"github.com/jrsteele09/go-movie-reviews/users"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// bcrypt ignores input past this length
const maxPasswordBytes = 72

// TokenIssuer creates a session token for a subject.
type TokenIssuer interface {
	Encode(subject string) (string, error)
}

// AuthenticationService registers users and exchanges credentials for
// session tokens. It keeps no session state of its own.
type AuthenticationService struct {
	users  users.UserRepo
	tokens TokenIssuer
}

// dummyHash is compared against when the email is unknown so that a miss
// costs the same bcrypt work as a wrong password.
var dummyHash = sync.OnceValue(func() string {
	h, err := users.HashPassword("not-a-real-password")
	if err != nil {
		log.Error().Err(err).Msg("failed to build dummy password hash")
	}
	return h
})

func NewAuthenticationService(userRepo users.UserRepo, tokens TokenIssuer) (*AuthenticationService, error) {
	if userRepo == nil {
		return nil, errors.New("[NewAuthenticationService] Users repo is required")
	}
	if tokens == nil {
		return nil, errors.New("[NewAuthenticationService] token issuer is required")
	}
	return &AuthenticationService{
		users:  userRepo,
		tokens: tokens,
	}, nil
}

// NormalizeEmail trims and lower-cases an email so lookups are stable.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register stores a new user with a bcrypt hash of password.
func (as *AuthenticationService) Register(ctx context.Context, email, password string) (*users.User, error) {
	email = NormalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") || password == "" || len(password) > maxPasswordBytes {
		return nil, ErrInvalidInput
	}

	hash, err := users.HashPassword(password)
	if err != nil {
		return nil, errors.Wrap(ErrRegistrationFailed, err.Error())
	}

	user := &users.User{Email: email, PasswordHash: hash}
	if err := as.users.Create(ctx, user); err != nil {
		if apperrors.Is(err, apperrors.ErrDuplicate) {
			log.Debug().Str("email", email).Msg("registration for existing email")
		} else {
			log.Error().Err(err).Msg("[Register] failed to store user")
		}
		return nil, ErrRegistrationFailed
	}
	return user, nil
}

// Login checks the credentials and returns a signed session token whose
// subject is the user's email.
func (as *AuthenticationService) Login(ctx context.Context, email, password string) (string, error) {
	email = NormalizeEmail(email)

	user, err := as.users.GetByEmail(ctx, email)
	if err != nil {
		if !apperrors.Is(err, apperrors.ErrNotFound) {
			return "", errors.Wrap(err, "[Login] user lookup failed")
		}
		users.CheckPasswordHash(password, dummyHash())
		return "", ErrInvalidCredentials
	}

	if !user.CheckPassword(password) {
		return "", ErrInvalidCredentials
	}

	tokenStr, err := as.tokens.Encode(user.Email)
	if err != nil {
		return "", errors.Wrap(err, "[Login] failed to issue token")
	}
	return tokenStr, nil
}

// UserFor resolves the user behind an authenticated session subject.
func (as *AuthenticationService) UserFor(ctx context.Context, subject string) (*users.User, error) {
	user, err := as.users.GetByEmail(ctx, subject)
	if err != nil {
		return nil, errors.Wrap(err, "[UserFor] user lookup failed")
	}
	return user, nil
}
