package config

type Config interface {
	EnvConfig
	SecurityConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
	GetDatabaseURL() string
	GetLogLevel() string
}

type mainConfig struct {
	EnvVars
	Security
}

// New assembles a Config from an already loaded Security section.
func New(security Security) Config {
	return mainConfig{Security: security}
}

// Load reads the process configuration once at startup. A missing session
// secret is returned as a *ConfigError and must stop the process.
func Load() (Config, error) {
	security, err := loadSecurity()
	if err != nil {
		return nil, err
	}
	return New(security), nil
}
