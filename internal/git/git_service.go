package git

import (
	"context"
	"os/exec"
	"strconv"
	"strings"

	"github.com/Tomas-vilte/MateChangelog/internal/changelog"
	"github.com/Tomas-vilte/MateChangelog/internal/errors"
	"github.com/Tomas-vilte/MateChangelog/internal/logger"
	"github.com/Tomas-vilte/MateChangelog/internal/models"
	"github.com/Tomas-vilte/MateChangelog/internal/ports"
)

const DefaultBinary = "git"

var _ ports.LogFetcher = (*GitService)(nil)

// GitService reads the log by running the git CLI.
type GitService struct {
	binary string
}

func NewGitService(binary string) *GitService {
	if binary == "" {
		binary = DefaultBinary
	}
	return &GitService{binary: binary}
}

// FetchLog runs git log with the changelog pretty format. Any failure of the
// git process aborts with ErrGitLog; there is no retry and no partial result.
func (s *GitService) FetchLog(ctx context.Context, opts models.LogOptions) (string, error) {
	args := BuildLogArgs(opts)
	logger.Debug(ctx, "running git log", "binary", s.binary, "args", strings.Join(args, " "), "dir", opts.RepoPath)

	cmd := exec.CommandContext(ctx, s.binary, args...)
	if opts.RepoPath != "" {
		cmd.Dir = opts.RepoPath
	}
	var stderr strings.Builder
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		return "", errors.ErrGitLog.WithError(err).
			WithContext("stderr", strings.TrimSpace(stderr.String())).
			WithContext("branch", opts.RevisionOrDefault())
	}

	raw := strings.TrimSpace(string(output))
	logger.Debug(ctx, "git log finished", "size", len(raw))
	return raw, nil
}

// BuildLogArgs returns the git arguments for the given filters. The
// revision is always last.
func BuildLogArgs(opts models.LogOptions) []string {
	args := []string{"log", "--pretty=format:" + changelog.LogFormat, "--date=short"}

	if opts.Since != "" {
		args = append(args, "--since", opts.Since)
	}
	if opts.Until != "" {
		args = append(args, "--until", opts.Until)
	}
	if opts.MaxCount > 0 {
		args = append(args, "-n", strconv.Itoa(opts.MaxCount))
	}

	return append(args, opts.RevisionOrDefault())
}
