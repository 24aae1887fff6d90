package git

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Tomas-vilte/MateChangelog/internal/changelog"
	"github.com/Tomas-vilte/MateChangelog/internal/errors"
	"github.com/Tomas-vilte/MateChangelog/internal/logger"
	"github.com/Tomas-vilte/MateChangelog/internal/models"
	"github.com/Tomas-vilte/MateChangelog/internal/ports"
	"github.com/Tomas-vilte/MateChangelog/internal/regex"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

const shortDateLayout = "2006-01-02"

var _ ports.LogFetcher = (*GoGitService)(nil)

// GoGitService reads the log in-process with go-git and writes it in the same
// text layout the git CLI produces, so the parser is shared by both backends.
// Date filters must be absolute (YYYY-MM-DD).
type GoGitService struct{}

func NewGoGitService() *GoGitService {
	return &GoGitService{}
}

func (s *GoGitService) FetchLog(ctx context.Context, opts models.LogOptions) (string, error) {
	since, until, err := parseDateBounds(opts.Since, opts.Until)
	if err != nil {
		return "", err
	}

	repo, err := openRepo(ctx, opts.RepoPath)
	if err != nil {
		return "", err
	}

	revision := opts.RevisionOrDefault()
	hash, err := repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return "", errors.ErrGitLog.WithError(err).WithContext("branch", revision)
	}

	iter, err := repo.Log(&gogit.LogOptions{
		From:  *hash,
		Order: gogit.LogOrderCommitterTime,
		Since: since,
		Until: until,
	})
	if err != nil {
		return "", errors.ErrGitLog.WithError(err).WithContext("branch", revision)
	}
	defer iter.Close()

	lines := make([]string, 0)
	err = iter.ForEach(func(c *object.Commit) error {
		if opts.MaxCount > 0 && len(lines) >= opts.MaxCount {
			return storer.ErrStop
		}
		lines = append(lines, formatLogLine(c))
		return nil
	})
	if err != nil {
		return "", errors.ErrGitLog.WithError(err).WithContext("branch", revision)
	}

	logger.Debug(ctx, "go-git log finished", "count", len(lines), "branch", revision)
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

func openRepo(ctx context.Context, path string) (*gogit.Repository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, errors.ErrNotInGitRepo.WithError(err)
		}
	}

	logger.Debug(ctx, "opening repository", "path", path)

	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, errors.ErrNotInGitRepo.WithError(err).WithContext("path", path)
	}
	return repo, nil
}

// formatLogLine mirrors git's %s/%b split: the subject is the first paragraph
// joined into one line, the body is everything after the first blank line.
func formatLogLine(c *object.Commit) string {
	message := strings.TrimSpace(strings.ReplaceAll(c.Message, "\r\n", "\n"))

	subjectPart, body, _ := strings.Cut(message, "\n\n")
	subject := strings.Join(strings.Fields(strings.ReplaceAll(subjectPart, "\n", " ")), " ")

	fields := []string{
		c.Hash.String(),
		subject,
		c.Author.Name,
		c.Author.When.Format(shortDateLayout),
		strings.TrimSpace(body),
	}
	return strings.Join(fields, changelog.FieldDelimiter)
}

// parseDateBounds turns YYYY-MM-DD filters into an inclusive day range in
// local time.
func parseDateBounds(sinceStr, untilStr string) (*time.Time, *time.Time, error) {
	var since, until *time.Time

	if sinceStr != "" {
		t, err := parseShortDate(sinceStr)
		if err != nil {
			return nil, nil, err
		}
		since = &t
	}

	if untilStr != "" {
		t, err := parseShortDate(untilStr)
		if err != nil {
			return nil, nil, err
		}
		end := t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		until = &end
	}

	return since, until, nil
}

func parseShortDate(s string) (time.Time, error) {
	if !regex.ISODate.MatchString(s) {
		return time.Time{}, errors.ErrInvalidDate.WithContext("value", s)
	}
	t, err := time.ParseInLocation(shortDateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, errors.ErrInvalidDate.WithError(fmt.Errorf("parsing %q: %w", s, err))
	}
	return t, nil
}
