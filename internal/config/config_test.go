package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileIsZeroConfig(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	source := "editor: code --wait\nmarkdown_style: dark\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(source), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "code --wait", cfg.Editor)
	assert.Equal(t, "dark", cfg.MarkdownStyle)
}

func TestLoadPartialConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("editor: vim\n"), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "vim", cfg.Editor)
	assert.Empty(t, cfg.MarkdownStyle)
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("editor: [unclosed\n"), 0644))

	_, err := Load(dir)
	assert.Error(t, err)
}
