package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("returns defaults when the file does not exist", func(t *testing.T) {
		path := DefaultPath(t.TempDir())

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "Changelog", cfg.Title)
		assert.Equal(t, "markdown", cfg.Format)
		assert.Equal(t, "HEAD", cfg.Branch)
		assert.Equal(t, "cli", cfg.Backend)
		assert.Equal(t, "../../commit/", cfg.LinkBase)
		assert.Equal(t, "git", cfg.GitBinary)
		assert.Equal(t, path, cfg.PathFile)

		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr), "loading must not create the file")
	})

	t.Run("overrides only the keys present in the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
title = "Release Notes"
format = "json"
link_base = "https://github.com/acme/tool/commit/"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "Release Notes", cfg.Title)
		assert.Equal(t, "json", cfg.Format)
		assert.Equal(t, "https://github.com/acme/tool/commit/", cfg.LinkBase)
		assert.Equal(t, "HEAD", cfg.Branch)
		assert.Equal(t, "cli", cfg.Backend)
	})

	t.Run("rejects an unknown format", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte(`format = "xml"`), 0644))

		_, err := LoadConfig(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "xml")
	})

	t.Run("rejects an unknown backend", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte(`backend = "svn"`), 0644))

		_, err := LoadConfig(path)

		assert.Error(t, err)
	})

	t.Run("fails on malformed toml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte(`title = `), 0644))

		_, err := LoadConfig(path)

		assert.Error(t, err)
	})
}

func TestSaveConfig(t *testing.T) {
	t.Run("round trips through LoadConfig", func(t *testing.T) {
		path := DefaultPath(t.TempDir())
		cfg := Default()
		cfg.PathFile = path
		cfg.Title = "History"
		cfg.Backend = "gogit"

		require.NoError(t, SaveConfig(cfg))

		loaded, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, cfg, loaded)
	})

	t.Run("requires a path", func(t *testing.T) {
		err := SaveConfig(Default())

		assert.Error(t, err)
	})

	t.Run("refuses an empty title", func(t *testing.T) {
		cfg := Default()
		cfg.PathFile = filepath.Join(t.TempDir(), "config.toml")
		cfg.Title = ""

		assert.Error(t, SaveConfig(cfg))
	})
}

func TestEncode(t *testing.T) {
	data, err := Encode(Default())

	require.NoError(t, err)
	assert.Contains(t, string(data), `title = "Changelog"`)
	assert.Contains(t, string(data), `link_base = "../../commit/"`)
	assert.NotContains(t, string(data), "PathFile")
}
