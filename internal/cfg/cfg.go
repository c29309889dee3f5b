package cfg

import (
	"os"
	"time"

	"github.com/inventory-pro/backend/pkg/e"
	"github.com/inventory-pro/backend/pkg/logger"
	"github.com/jimlawless/whereami"
)

type Config struct {
	Http  *HTTPConfig
	Store *StoreCfg
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type StoreCfg struct {
	Path        string // database file, created on first run
	Bucket      string
	OpenTimeout time.Duration
}

// Load safely loads the configuration and returns an error on failure.
func Load(log logger.Logger) (*Config, error) {
	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	store, err := loadStoreCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		Http:  http,
		Store: store,
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8080"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 10 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	port := getEnvOrDefault("HTTP_PORT", defaultPort)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:         port,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

func loadStoreCfg(log logger.Logger) (*StoreCfg, error) {
	const (
		defaultPath        = "inventory.db"
		defaultBucket      = "inventory"
		defaultOpenTimeout = time.Second
	)

	openTimeout, err := parseDurationEnv("STORE_OPEN_TIMEOUT", defaultOpenTimeout)
	if err != nil {
		log.Errorf(err, "invalid STORE_OPEN_TIMEOUT")
		return nil, err
	}

	return &StoreCfg{
		Path:        getEnvOrDefault("STORE_PATH", defaultPath),
		Bucket:      getEnvOrDefault("STORE_BUCKET", defaultBucket),
		OpenTimeout: openTimeout,
	}, nil
}

// getEnvOrDefault returns the environment variable value or the default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv reads a duration or returns the default.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}
