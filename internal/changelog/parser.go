// Package changelog turns raw git log text into commit records, sorts them into
// changelog sections and renders them as markdown, plain text or JSON.
package changelog

import (
	"strings"

	"github.com/Tomas-vilte/MateChangelog/internal/models"
)

const (
	// FieldDelimiter separates the fields of a log line. It must match LogFormat.
	FieldDelimiter = "|"

	// LogFormat is the git pretty format the parser understands. The body goes
	// last so delimiters inside free text stay in the body.
	LogFormat = "%H|%s|%an|%ad|%b"

	minRecordFields = 4
	maxRecordFields = 5
)

// ParseLog splits raw git log output into commits, keeping git's order.
// Lines that do not start a record are appended to the open record's body;
// blank lines and text before the first record are dropped.
func ParseLog(raw string) []models.Commit {
	commits := make([]models.Commit, 0)

	var current *models.Commit
	for _, line := range strings.Split(raw, "\n") {
		if isRecordStart(line) {
			if current != nil {
				commits = append(commits, *current)
			}
			c := parseRecord(line)
			current = &c
			continue
		}

		if current != nil && strings.TrimSpace(line) != "" {
			current.Body += "\n" + line
		}
	}

	if current != nil {
		commits = append(commits, *current)
	}

	return commits
}

func isRecordStart(line string) bool {
	return strings.Contains(line, FieldDelimiter) &&
		len(strings.Split(line, FieldDelimiter)) >= minRecordFields
}

func parseRecord(line string) models.Commit {
	parts := strings.SplitN(line, FieldDelimiter, maxRecordFields)

	commit := models.Commit{
		Hash:    parts[0],
		Subject: parts[1],
		Author:  parts[2],
		Date:    parts[3],
	}
	if len(parts) == maxRecordFields {
		commit.Body = parts[4]
	}
	return commit
}

// FirstBodyLine returns the first non-blank body line, trimmed.
func FirstBodyLine(c models.Commit) (string, bool) {
	for _, line := range strings.Split(c.Body, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed, true
		}
	}
	return "", false
}
