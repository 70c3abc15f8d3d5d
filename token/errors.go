package token

import "errors"

var (
	// ErrMissingSecret is returned when a signer is built without a key.
	ErrMissingSecret = errors.New("session secret is required")

	// ErrInvalidToken is the only error Decode returns. Callers branch on it
	// alone; the underlying Reason is for logs.
	ErrInvalidToken = errors.New("invalid token")
)

// Reason classifies why a token was rejected.
type Reason string

const (
	ReasonMalformed    Reason = "malformed"
	ReasonBadSignature Reason = "bad-signature"
	ReasonExpired      Reason = "expired"
)

type invalidTokenError struct {
	reason Reason
	cause  error
}

func (e *invalidTokenError) Error() string {
	return ErrInvalidToken.Error()
}

func (e *invalidTokenError) Is(target error) bool {
	return target == ErrInvalidToken
}

// ReasonOf returns the rejection class carried by a Decode error, or "" if
// err did not come from Decode.
func ReasonOf(err error) Reason {
	var ite *invalidTokenError
	if errors.As(err, &ite) {
		return ite.reason
	}
	return ""
}

// CauseOf returns the library error behind a Decode failure, for logging.
func CauseOf(err error) error {
	var ite *invalidTokenError
	if errors.As(err, &ite) {
		return ite.cause
	}
	return nil
}

func invalid(reason Reason, cause error) error {
	return &invalidTokenError{reason: reason, cause: cause}
}
