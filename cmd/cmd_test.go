package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkritika/cortex/internal/question"
	"github.com/pkritika/cortex/internal/store"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{"CORTEX_STORE", "CORTEX_DB", "WOLFRAM_APP_ID", "CORTEX_ORACLE", "CORTEX_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "cortex (devel)\n", out)
}

func TestPracticeJSON(t *testing.T) {
	out, err := execute(t, "practice", "Science", "-n", "3", "--json", "--store", "memory")
	require.NoError(t, err)

	var qs []question.Question
	require.NoError(t, json.Unmarshal([]byte(out), &qs))
	require.Len(t, qs, 3)
	for _, q := range qs {
		assert.Len(t, q.Options, question.OptionCount)
		assert.Contains(t, q.ID, "sci-")
	}
}

func TestPracticeUnknownSubject(t *testing.T) {
	_, err := execute(t, "practice", "art", "--store", "memory")
	assert.ErrorContains(t, err, "unknown subject")
}

func TestFlashcardsMixedDeck(t *testing.T) {
	out, err := execute(t, "flashcards", "-n", "2", "--json=true", "--store", "memory")
	require.NoError(t, err)

	var cards []question.Flashcard
	require.NoError(t, json.Unmarshal([]byte(out), &cards))
	assert.Len(t, cards, 2*len(question.AllSubjects()))
}

func TestStatsFromSQLite(t *testing.T) {
	db := filepath.Join(t.TempDir(), "cortex.db")

	out, err := execute(t, "stats", "u1", "--store", "sqlite", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "u1")
	assert.Contains(t, out, "(locked)")
	assert.FileExists(t, db)
}

func TestTerminalDefaultsToSQLite(t *testing.T) {
	for _, k := range []string{"CORTEX_STORE", "CORTEX_DB"} {
		t.Setenv(k, "")
	}
	require.NoError(t, rootCmd.PersistentFlags().Set("store", ""))

	cfg, err := loadConfig(rootCmd, true)
	require.NoError(t, err)
	assert.Equal(t, store.DriverSQLite, cfg.Store.Driver)

	cfg, err = loadConfig(rootCmd, false)
	require.NoError(t, err)
	assert.Equal(t, store.DriverMemory, cfg.Store.Driver)
}

func TestLoadConfigFlags(t *testing.T) {
	for _, k := range []string{"CORTEX_STORE", "CORTEX_DB"} {
		t.Setenv(k, "")
	}
	require.NoError(t, rootCmd.PersistentFlags().Set("store", store.DriverRedis))
	t.Cleanup(func() { _ = rootCmd.PersistentFlags().Set("store", "") })

	cfg, err := loadConfig(rootCmd, true)
	require.NoError(t, err)
	assert.Equal(t, store.DriverRedis, cfg.Store.Driver)
	assert.Equal(t, "warn", cfg.LogLevel)
}
