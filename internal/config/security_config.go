package config

import (
	"fmt"
	"os"
	"time"
)

const sessionSecretEnvVar = "JWT_SECRET"

type SecurityConfig interface {
	GetSessionSecret() string
	GetSessionLifetime() time.Duration
	GetSessionCookieName() string
	GetNoticeCookieName() string
}

// ConfigError reports a required setting that is absent at startup.
type ConfigError struct {
	Var string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s is required", e.Var)
}

// Security holds the session settings. The secret is captured once and never
// re-read from the environment.
type Security struct {
	sessionSecret string
}

var _ SecurityConfig = Security{}

func NewSecurity(sessionSecret string) Security {
	return Security{sessionSecret: sessionSecret}
}

func loadSecurity() (Security, error) {
	secret := os.Getenv(sessionSecretEnvVar)
	if secret == "" {
		return Security{}, &ConfigError{Var: sessionSecretEnvVar}
	}
	return NewSecurity(secret), nil
}

func (s Security) GetSessionSecret() string {
	return s.sessionSecret
}

func (Security) GetSessionLifetime() time.Duration {
	return 1 * time.Hour
}

func (Security) GetSessionCookieName() string {
	return "jwt"
}

func (Security) GetNoticeCookieName() string {
	return "notice"
}
