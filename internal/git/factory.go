package git

import (
	"github.com/Tomas-vilte/MateChangelog/internal/errors"
	"github.com/Tomas-vilte/MateChangelog/internal/models"
	"github.com/Tomas-vilte/MateChangelog/internal/ports"
)

// NewLogFetcher returns the fetcher for the selected backend.
func NewLogFetcher(backend models.Backend, gitBinary string) (ports.LogFetcher, error) {
	switch backend {
	case models.BackendCLI, "":
		return NewGitService(gitBinary), nil
	case models.BackendGoGit:
		return NewGoGitService(), nil
	default:
		return nil, errors.ErrInvalidBackend.WithContext("backend", string(backend))
	}
}
