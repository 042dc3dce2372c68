package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/matthieukhl/salesgen/internal/export"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with fresh flag state
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	configFile, outPath, seed, quiet = "", "", 0, false
	summaryIn = ""
	loadIn, loadSeed, dropFirst, loadQuiet = "", 0, false, false
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenerateWritesDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")

	out, err := run(t, "generate", "--out", path, "--seed", "11", "--quiet")
	require.NoError(t, err)
	assert.Contains(t, out, "📊 Data summary")
	assert.Contains(t, out, "Period:           2022-01-01 〜 2025-12-31")
	assert.Contains(t, out, "✅ Saved")

	records, err := export.ReadFile(path)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(records), 39447)
	assert.LessOrEqual(t, len(records), 43830)
}

func TestGenerateWithSameSeedIsIdentical(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.csv")
	b := filepath.Join(dir, "b.csv")

	_, err := run(t, "generate", "--out", a, "--seed", "3", "--quiet")
	require.NoError(t, err)
	_, err = run(t, "generate", "--out", b, "--seed", "3", "--quiet")
	require.NoError(t, err)

	da, err := os.ReadFile(a)
	require.NoError(t, err)
	db, err := os.ReadFile(b)
	require.NoError(t, err)
	assert.Equal(t, da, db)
}

func TestGenerateUsesConfigOutput(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output:\n  dir: "+dir+"\n  filename: cfg.csv\ngenerator:\n  seed: 9\n"), 0o644))

	_, err := run(t, "generate", "--config", cfgPath, "--quiet")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "cfg.csv"))
}

func TestSummaryReadsDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")
	_, err := run(t, "generate", "--out", path, "--seed", "21", "--quiet")
	require.NoError(t, err)

	out, err := run(t, "summary", "--in", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Total revenue:")
	assert.Contains(t, out, "By region:")
	assert.Contains(t, out, "関東")
}

func TestSummaryMissingFile(t *testing.T) {
	_, err := run(t, "summary", "--in", filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

func TestLoadRequiresDSN(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, export.WriteFile(path, nil))

	_, err := run(t, "load", "--in", path, "--quiet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db.dsn is not set")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "salesgen "+Version+"\n", out)
}
