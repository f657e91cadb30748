// Package config loads server and CLI settings from the environment, after
// reading a .env file when one exists.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/pkritika/cortex/internal/llm"
	"github.com/pkritika/cortex/internal/store"
)

// Oracle backends.
const (
	OracleWolfram = "wolfram"
	OracleLLM     = "llm"
)

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration

	Store store.Options

	WolframAppID  string
	Oracle        string
	OracleTimeout time.Duration
	LLM           llm.Config

	JWTSecret string

	// RateLimit is the number of POST requests allowed per client per minute.
	RateLimit int

	LogLevel  string
	LogFormat string
}

// Load reads .env (if present) and the environment. Files are loaded in
// order and never override variables already set.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(files...); err != nil {
		return nil, fmt.Errorf("load env files: %w", err)
	}

	cfg := &Config{
		Addr: getenvDefault("CORTEX_ADDR", ":"+getenvDefault("PORT", "3000")),
		Store: store.Options{
			Driver:        getenvDefault("CORTEX_STORE", store.DriverMemory),
			DSN:           os.Getenv("CORTEX_DB"),
			RedisAddr:     getenvDefault("CORTEX_REDIS_ADDR", "localhost:6379"),
			RedisPassword: os.Getenv("CORTEX_REDIS_PASSWORD"),
		},
		WolframAppID: os.Getenv("WOLFRAM_APP_ID"),
		Oracle:       strings.ToLower(getenvDefault("CORTEX_ORACLE", OracleWolfram)),
		LLM:          llm.ConfigFromEnv(),
		JWTSecret:    os.Getenv("CORTEX_JWT_SECRET"),
		LogLevel:     getenvDefault("CORTEX_LOG_LEVEL", "info"),
		LogFormat:    getenvDefault("CORTEX_LOG_FORMAT", "text"),
	}

	var err error
	if cfg.ShutdownTimeout, err = getDuration("CORTEX_SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.OracleTimeout, err = getDuration("CORTEX_ORACLE_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.RateLimit, err = getInt("CORTEX_RATE_LIMIT", 100); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case store.DriverMemory, store.DriverSQLite, store.DriverMySQL, store.DriverRedis:
	default:
		return fmt.Errorf("config: CORTEX_STORE=%q: %w", c.Store.Driver, store.ErrUnknownDriver)
	}
	switch c.Oracle {
	case OracleWolfram, OracleLLM:
	default:
		return fmt.Errorf("config: CORTEX_ORACLE=%q must be %q or %q", c.Oracle, OracleWolfram, OracleLLM)
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("config: CORTEX_RATE_LIMIT must be positive, got %d", c.RateLimit)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: CORTEX_LOG_FORMAT=%q must be text or json", c.LogFormat)
	}
	return nil
}

// Logger builds the configured slog logger writing to w.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	l, err := NewLogger(w, c.LogLevel, c.LogFormat)
	if err != nil {
		return slog.New(slog.NewTextHandler(w, nil))
	}
	return l
}

// NewLogger returns a text or JSON slog logger at level.
func NewLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("config: CORTEX_LOG_LEVEL=%q: %w", s, err)
	}
	return lvl, nil
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getDuration(k string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(k)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q is not a valid duration: %w", k, v, err)
	}
	return d, nil
}

func getInt(k string, fallback int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q is not an integer: %w", k, v, err)
	}
	return n, nil
}
