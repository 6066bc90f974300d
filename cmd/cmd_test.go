package cmd

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/timesdrill/internal/config"
	"github.com/abhisek/timesdrill/internal/quizgen"
	"github.com/abhisek/timesdrill/internal/worksheet"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv(config.EnvDB, filepath.Join(dir, "drill.db"))
	t.Setenv(config.EnvLogFile, filepath.Join(dir, "drill.log"))
	t.Setenv(config.EnvProfiles, "")
	t.Setenv(config.EnvLocale, "en")
	return dir
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return Execute(context.Background())
}

func TestGenerate_JSONWorksheetReplays(t *testing.T) {
	dir := isolate(t)
	out := filepath.Join(dir, "sheet.json")

	require.NoError(t, run(t, "generate",
		"--numbers", "3,4", "--count", "6", "--level", "easy",
		"--format", "json", "--output", out, "--seed", "42"))

	ws, err := worksheet.ReadFile(out, quizgen.New())
	require.NoError(t, err)
	assert.Len(t, ws.Items, 6)
	assert.Equal(t, quizgen.LevelEasy, ws.Level)
	require.NotNil(t, ws.Seed)
	assert.Equal(t, uint64(42), *ws.Seed)
	for _, it := range ws.Items {
		assert.Contains(t, []int{3, 4}, it.Base)
	}
}

func TestGenerate_RejectsBadInput(t *testing.T) {
	dir := isolate(t)
	out := filepath.Join(dir, "sheet.txt")

	assert.Error(t, run(t, "generate", "--numbers", "3", "--count", "0", "--level", "easy",
		"--format", "text", "--output", out))
	assert.Error(t, run(t, "generate", "--numbers", "3", "--count", "5", "--level", "extreme",
		"--format", "text", "--output", out))
	assert.Error(t, run(t, "generate", "--numbers", "3", "--count", "5", "--level", "easy",
		"--format", "xlsx", "--output", ""))
}

func TestGenerate_Exhausted(t *testing.T) {
	dir := isolate(t)
	err := run(t, "generate", "--numbers", "1", "--count", "30", "--level", "medium",
		"--format", "text", "--output", filepath.Join(dir, "sheet.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Could not build 30 different questions")
}

func TestStatsHistoryReset_EmptyStore(t *testing.T) {
	isolate(t)
	assert.NoError(t, run(t, "stats"))
	assert.NoError(t, run(t, "history", "--limit", "5"))
	assert.NoError(t, run(t, "reset", "--yes"))
}
