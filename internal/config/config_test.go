package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"PORT", "CORTEX_ADDR", "CORTEX_SHUTDOWN_TIMEOUT", "CORTEX_STORE", "CORTEX_DB",
	"CORTEX_REDIS_ADDR", "CORTEX_REDIS_PASSWORD", "WOLFRAM_APP_ID", "CORTEX_ORACLE",
	"CORTEX_ORACLE_TIMEOUT", "CORTEX_JWT_SECRET", "CORTEX_RATE_LIMIT",
	"CORTEX_LOG_LEVEL", "CORTEX_LOG_FORMAT", "CORTEX_LLM_PROVIDER",
}

// clearEnv blanks every variable Load reads; empty values count as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func writeEnv(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(writeEnv(t, ""))
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.Equal(t, "localhost:6379", cfg.Store.RedisAddr)
	assert.Equal(t, OracleWolfram, cfg.Oracle)
	assert.Equal(t, 10*time.Second, cfg.OracleTimeout)
	assert.Equal(t, 100, cfg.RateLimit)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvironmentAndPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("CORTEX_STORE", "sqlite")
	t.Setenv("CORTEX_ORACLE_TIMEOUT", "250ms")
	t.Setenv("CORTEX_RATE_LIMIT", "7")

	cfg, err := Load(writeEnv(t, ""))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, 250*time.Millisecond, cfg.OracleTimeout)
	assert.Equal(t, 7, cfg.RateLimit)
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv never overrides variables that are already present, even if
	// blank, so drop the ones the file sets.
	os.Unsetenv("WOLFRAM_APP_ID")
	os.Unsetenv("CORTEX_JWT_SECRET")

	p := writeEnv(t, "WOLFRAM_APP_ID=ABC-123\nCORTEX_JWT_SECRET=s3cret\n")
	cfg, err := Load(p)
	t.Cleanup(func() {
		os.Unsetenv("WOLFRAM_APP_ID")
		os.Unsetenv("CORTEX_JWT_SECRET")
	})
	require.NoError(t, err)
	assert.Equal(t, "ABC-123", cfg.WolframAppID)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"CORTEX_STORE":            "postgres",
		"CORTEX_ORACLE":           "mathematica",
		"CORTEX_SHUTDOWN_TIMEOUT": "soon",
		"CORTEX_RATE_LIMIT":       "0",
		"CORTEX_LOG_LEVEL":        "loud",
		"CORTEX_LOG_FORMAT":       "xml",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, val)
			_, err := Load(writeEnv(t, ""))
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLogger(&buf, "warn", "json")
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("shown", "k", 1)
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.HasPrefix(out, "{"), out)
	assert.Contains(t, out, `"k":1`)

	_, err = NewLogger(&buf, "verbose", "text")
	assert.Error(t, err)
}
