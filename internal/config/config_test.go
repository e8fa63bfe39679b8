package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	opts, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "text", opts.OutputFormat)
	assert.True(t, opts.IgnoreHidden)
}

func TestLoadValidFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	content := `
aggressive_filter: true
output_format: json
max_file_size: 2048
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".bytesradar.yml"), []byte(content), 0644))

	opts, err := Load(dir)
	require.NoError(t, err)
	assert.True(t, opts.AggressiveFilter)
	assert.Equal(t, "json", opts.OutputFormat)
	assert.Equal(t, uint64(2048), opts.MaxFileSize)
}

func TestLoadRejectsInvalidOutputFormat(t *testing.T) {
	dir := t.TempDir()
	content := "output_format: xml\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".bytesradar.yml"), []byte(content), 0644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoadTokenFromEnvironment(t *testing.T) {
	t.Setenv("BRADAR_TOKEN", "secret-value")
	assert.Equal(t, "secret-value", LoadToken())
}

func TestLoadTokenEmptyWhenUnset(t *testing.T) {
	t.Setenv("BRADAR_TOKEN", "")
	assert.Equal(t, "", LoadToken())
}
