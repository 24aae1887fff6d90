package generate

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cfg "github.com/Tomas-vilte/MateChangelog/internal/config"
	"github.com/Tomas-vilte/MateChangelog/internal/errors"
	"github.com/Tomas-vilte/MateChangelog/internal/i18n"
	"github.com/Tomas-vilte/MateChangelog/internal/models"
	"github.com/Tomas-vilte/MateChangelog/internal/ports"
	"github.com/Tomas-vilte/MateChangelog/internal/services"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const sampleLog = "0123456789abcdef0123456789abcdef01234567|feat: add exporter|Alice|2024-03-08|\n" +
	"fedcba9876543210fedcba9876543210fedcba98|fix: handle empty input|Bob|2024-03-07|"

type testEnv struct {
	fetcher *services.MockLogFetcher
	backend models.Backend
	binary  string
	config  *cfg.Config
	t       *i18n.Translations
	stdout  bytes.Buffer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	color.NoColor = true

	translations, err := i18n.NewTranslations()
	require.NoError(t, err)

	return &testEnv{
		fetcher: &services.MockLogFetcher{},
		config:  cfg.Default(),
		t:       translations,
	}
}

func (e *testEnv) run(args ...string) error {
	factory := NewGenerateCommandFactory().WithFetcherProvider(
		func(backend models.Backend, gitBinary string) (ports.LogFetcher, error) {
			e.backend = backend
			e.binary = gitBinary
			return e.fetcher, nil
		})

	app := factory.CreateCommand(e.t, e.config)
	app.Writer = &e.stdout
	return app.Run(context.Background(), append([]string{"mate-changelog"}, args...))
}

func TestGenerateCommand(t *testing.T) {
	t.Run("should print markdown to stdout using config defaults", func(t *testing.T) {
		// Arrange
		env := newTestEnv(t)
		env.fetcher.On("FetchLog", mock.Anything, models.LogOptions{Branch: "HEAD"}).
			Return(sampleLog, nil)

		// Act
		err := env.run()

		// Assert
		require.NoError(t, err)
		out := env.stdout.String()
		assert.True(t, strings.HasPrefix(out, "# Changelog\n\nGenerated on "), out)
		assert.Contains(t, out, "## Features\n\n- add exporter ([01234567](../../commit/0123456789abcdef0123456789abcdef01234567))\n")
		assert.Contains(t, out, "## Bug Fixes\n\n- handle empty input")
		assert.True(t, strings.HasSuffix(out, "\n\n\n"))
		assert.Equal(t, models.BackendCLI, env.backend)
		assert.Equal(t, "git", env.binary)
		env.fetcher.AssertExpectations(t)
	})

	t.Run("should pass every filter to the fetcher", func(t *testing.T) {
		// Arrange
		env := newTestEnv(t)
		expected := models.LogOptions{
			Since:    "2024-01-01",
			Until:    "2024-02-01",
			Branch:   "release",
			MaxCount: 5,
			RepoPath: "/tmp/repo",
		}
		env.fetcher.On("FetchLog", mock.Anything, expected).Return(sampleLog, nil)

		// Act
		err := env.run("--since", "2024-01-01", "--until", "2024-02-01",
			"--branch", "release", "-n", "5", "--repo", "/tmp/repo")

		// Assert
		require.NoError(t, err)
		env.fetcher.AssertExpectations(t)
	})

	t.Run("should let flags override the config file", func(t *testing.T) {
		// Arrange
		env := newTestEnv(t)
		env.config.Format = "json"
		env.config.Title = "From Config"
		env.fetcher.On("FetchLog", mock.Anything, mock.Anything).Return(sampleLog, nil)

		// Act
		err := env.run("--format", "simple")

		// Assert
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(env.stdout.String(), "Changes (2 commits)\n"))
	})

	t.Run("should use config values when flags are absent", func(t *testing.T) {
		// Arrange
		env := newTestEnv(t)
		env.config.Title = "Release Notes"
		env.config.LinkBase = "https://example.com/c/"
		env.config.Backend = "gogit"
		env.config.GitBinary = "/usr/local/bin/git"
		env.fetcher.On("FetchLog", mock.Anything, mock.Anything).Return(sampleLog, nil)

		// Act
		err := env.run()

		// Assert
		require.NoError(t, err)
		out := env.stdout.String()
		assert.True(t, strings.HasPrefix(out, "# Release Notes\n"))
		assert.Contains(t, out, "(https://example.com/c/0123456789abcdef0123456789abcdef01234567)")
		assert.Equal(t, models.BackendGoGit, env.backend)
		assert.Equal(t, "/usr/local/bin/git", env.binary)
	})

	t.Run("should write the file without a trailing newline", func(t *testing.T) {
		// Arrange
		env := newTestEnv(t)
		path := filepath.Join(t.TempDir(), "CHANGELOG.json")
		env.fetcher.On("FetchLog", mock.Anything, mock.Anything).Return(sampleLog, nil)

		// Act
		err := env.run("--format", "json", "-o", path)

		// Assert
		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "[\n  {\n"))
		assert.True(t, strings.HasSuffix(string(data), "]"))
		assert.Equal(t, "✓ Changelog written to "+path+"\n", env.stdout.String())
	})

	t.Run("should not create the output file when no commits match", func(t *testing.T) {
		// Arrange
		env := newTestEnv(t)
		path := filepath.Join(t.TempDir(), "CHANGELOG.md")
		env.fetcher.On("FetchLog", mock.Anything, mock.Anything).Return("", nil)

		// Act
		err := env.run("-o", path)

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrNoCommits)
		assert.Equal(t, errors.ExitNoCommits, errors.ExitCodeOf(err))
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
		assert.Empty(t, env.stdout.String())
	})

	t.Run("should return git failures unchanged", func(t *testing.T) {
		// Arrange
		env := newTestEnv(t)
		gitErr := errors.ErrGitLog.WithContext("stderr", "fatal: bad revision 'nope'")
		env.fetcher.On("FetchLog", mock.Anything, mock.Anything).Return("", gitErr)

		// Act
		err := env.run("--branch", "nope")

		// Assert
		require.Error(t, err)
		assert.Equal(t, errors.ExitGitFailure, errors.ExitCodeOf(err))
		assert.Contains(t, err.Error(), "bad revision")
	})

	t.Run("should reject an unknown format before reading the log", func(t *testing.T) {
		// Arrange
		env := newTestEnv(t)

		// Act
		err := env.run("--format", "xml")

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrInvalidFormat)
		assert.Equal(t, errors.ExitInvalidArguments, errors.ExitCodeOf(err))
		env.fetcher.AssertNotCalled(t, "FetchLog", mock.Anything, mock.Anything)
	})

	t.Run("should reject an unknown backend", func(t *testing.T) {
		// Arrange
		env := newTestEnv(t)

		// Act
		err := env.run("--backend", "svn")

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrInvalidBackend)
		assert.Equal(t, errors.ExitInvalidArguments, errors.ExitCodeOf(err))
	})

	t.Run("should report an unwritable output path", func(t *testing.T) {
		// Arrange
		env := newTestEnv(t)
		path := filepath.Join(t.TempDir(), "missing", "dir", "CHANGELOG.md")
		env.fetcher.On("FetchLog", mock.Anything, mock.Anything).Return(sampleLog, nil)

		// Act
		err := env.run("-o", path)

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrWriteOutput)
	})
}
