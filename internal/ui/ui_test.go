package ui

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/Tomas-vilte/MateChangelog/internal/errors"
	"github.com/Tomas-vilte/MateChangelog/internal/i18n"
)

func TestHandleAppError(t *testing.T) {
	color.NoColor = true
	trans, err := i18n.NewTranslations()
	require.NoError(t, err)

	t.Run("git failure shows details, stderr and suggestion", func(t *testing.T) {
		var buf bytes.Buffer
		appErr := domainErrors.ErrGitLog.
			WithError(errors.New("exit status 128")).
			WithContext("stderr", "fatal: bad revision 'nope'")

		HandleAppError(&buf, fmt.Errorf("generate: %w", appErr), trans)

		out := buf.String()
		assert.Contains(t, out, "Error [GIT]: Failed to read git log")
		assert.Contains(t, out, "exit status 128")
		assert.Contains(t, out, "fatal: bad revision 'nope'")
		assert.Contains(t, out, "Suggestion: ")
	})

	t.Run("no commits is reported as a message", func(t *testing.T) {
		var buf bytes.Buffer

		HandleAppError(&buf, domainErrors.ErrNoCommits, trans)

		assert.Equal(t, "! No commits found matching the criteria.\n", buf.String())
	})

	t.Run("plain errors", func(t *testing.T) {
		var buf bytes.Buffer

		HandleAppError(&buf, errors.New("flag provided but not defined: -x"), trans)

		assert.Equal(t, "✗ flag provided but not defined: -x\n", buf.String())
	})

	t.Run("nil error prints nothing", func(t *testing.T) {
		var buf bytes.Buffer

		HandleAppError(&buf, nil, trans)

		assert.Empty(t, buf.String())
	})
}
