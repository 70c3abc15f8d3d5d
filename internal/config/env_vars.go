package config

import (
	"os"
	"strings"
)

const (
	portEnvVar        = "PORT"
	appNameVar        = "APP_NAME"
	envVar            = "ENV"
	databaseURLEnvVar = "DATABASE_URL"
	logLevelEnvVar    = "LOG_LEVEL"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetPort() string {
	port := GetEnv(portEnvVar, "8080")
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}
	return port
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Movie Reviews")
}

func (EnvVars) GetEnv() string {
	return GetEnv(envVar, "DEV")
}

// GetDatabaseURL returns the Postgres DSN. An empty value selects the
// in-memory repositories.
func (EnvVars) GetDatabaseURL() string {
	return GetEnv(databaseURLEnvVar, "")
}

func (EnvVars) GetLogLevel() string {
	return GetEnv(logLevelEnvVar, "info")
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
