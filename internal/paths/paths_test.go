package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	def, err := DefaultOutputPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "Downloads", DefaultFilename), def)

	got, err := Resolve("~/exports", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "exports", DefaultFilename), got)

	got, err = Resolve("/data/out", "sales.csv")
	require.NoError(t, err)
	assert.Equal(t, "/data/out/sales.csv", got)

	got, err = Resolve("~", "x.csv")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "x.csv"), got)
}

func TestExpandFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandFile("~/Desktop/sales.csv")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "Desktop", "sales.csv"), got)

	got, err = ExpandFile("relative/sales.csv")
	require.NoError(t, err)
	assert.Equal(t, "relative/sales.csv", got)

	got, err = ExpandFile("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "Downloads", DefaultFilename), got)
}
