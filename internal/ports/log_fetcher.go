package ports

import (
	"context"

	"github.com/Tomas-vilte/MateChangelog/internal/models"
)

// LogFetcher produces raw git log text in the changelog.LogFormat layout,
// one commit per line with the body possibly spanning several lines.
type LogFetcher interface {
	FetchLog(ctx context.Context, opts models.LogOptions) (string, error)
}
