package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	domainErrors "github.com/Tomas-vilte/MateChangelog/internal/errors"
	"github.com/Tomas-vilte/MateChangelog/internal/i18n"
)

var (
	// Colors for different message types
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Info    = color.New(color.FgCyan, color.Bold)
	Dim     = color.New(color.FgHiBlack)
)

func PrintSuccess(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", Success.Sprint("✓"), Success.Sprint(msg))
}

func PrintError(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", Error.Sprint("✗"), Error.Sprint(msg))
}

func PrintWarning(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", Warning.Sprint("!"), Warning.Sprint(msg))
}

func PrintInfo(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s\n", Info.Sprint(msg))
}

// HandleAppError prints err to w. An AppError gets its type, details and
// suggestion on separate lines; an empty-result error is shown as a plain
// user-facing message rather than a failure report.
func HandleAppError(w io.Writer, err error, t *i18n.Translations) {
	if err == nil {
		return
	}

	var appErr *domainErrors.AppError
	if !errors.As(err, &appErr) {
		PrintError(w, err.Error())
		return
	}

	if appErr.Type == domainErrors.TypeEmptyResult {
		PrintWarning(w, t.GetMessage("changelog.no_commits", 0, nil))
		return
	}

	_, _ = Error.Fprintf(w, "%s [%s]: %s\n", t.GetMessage("error.heading", 0, nil), appErr.Type, appErr.Message)

	if appErr.Err != nil {
		_, _ = Dim.Fprintf(w, "   %v\n", appErr.Err)
	}
	if stderr, ok := appErr.Context["stderr"].(string); ok && stderr != "" {
		for _, line := range strings.Split(stderr, "\n") {
			_, _ = Dim.Fprintf(w, "   %s\n", line)
		}
	}

	if appErr.Suggestion != "" {
		_, _ = Info.Fprintf(w, "%s: ", t.GetMessage("error.suggestion", 0, nil))
		_, _ = fmt.Fprintln(w, appErr.Suggestion)
	}
}
