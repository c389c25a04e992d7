package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config is the process configuration read once at startup.
type Config struct {
	HTTPPort       string
	GRPCPort       string
	JWTSecret      string
	APIClients     map[string]string // client id -> bcrypt hash
	ThresholdsFile string
	TopN           int
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	AlertBindAddr  string
	AlertDedupeTTL time.Duration
	LogLevel       string
}

// LoadEnv loads variables from the given .env files. Missing files are skipped;
// variables already set in the process environment win.
func LoadEnv(logger *logrus.Logger, files ...string) {
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			if logger != nil {
				logger.WithError(err).Warnf("Failed to load %s", file)
			}
			continue
		}
		if logger != nil {
			logger.Debugf("Loaded env file %s", file)
		}
	}
}

// FromEnv builds a Config from the process environment.
func FromEnv() (*Config, error) {
	cfg := &Config{
		HTTPPort:       GetEnv("HTTP_PORT", "5060"),
		GRPCPort:       GetEnv("GRPC_PORT", "50060"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		ThresholdsFile: os.Getenv("THRESHOLDS_FILE"),
		TopN:           GetEnvInt("TOP_N", 5),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PW"),
		RedisDB:        GetEnvInt("REDIS_DB", 0),
		AlertBindAddr:  os.Getenv("ALERT_BIND_ADDR"),
		AlertDedupeTTL: GetEnvDuration("ALERT_DEDUPE_TTL", time.Hour),
		LogLevel:       GetEnv("LOG_LEVEL", "info"),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET environment variable is not set")
	}

	clients, err := ParseClients(os.Getenv("API_CLIENTS"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_CLIENTS: %w", err)
	}
	cfg.APIClients = clients

	return cfg, nil
}

// ParseClients parses "id:hash,id:hash". The hash may itself contain colons.
func ParseClients(raw string) (map[string]string, error) {
	clients := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		id, hash, ok := strings.Cut(pair, ":")
		if !ok || id == "" || hash == "" {
			return nil, fmt.Errorf("malformed client entry %q", pair)
		}
		if _, dup := clients[id]; dup {
			return nil, fmt.Errorf("duplicate client id %q", id)
		}
		clients[id] = hash
	}
	return clients, nil
}

// GetEnv gets an environment variable with a default value.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt gets an integer environment variable with a default value.
func GetEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// GetEnvDuration gets a duration environment variable with a default value.
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
