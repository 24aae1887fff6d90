package services

import (
	"context"

	"github.com/Tomas-vilte/MateChangelog/internal/changelog"
	"github.com/Tomas-vilte/MateChangelog/internal/errors"
	"github.com/Tomas-vilte/MateChangelog/internal/logger"
	"github.com/Tomas-vilte/MateChangelog/internal/models"
	"github.com/Tomas-vilte/MateChangelog/internal/ports"
)

type (
	GenerateRequest struct {
		Log    models.LogOptions
		Format models.Format
		Title  string
	}

	GenerateResult struct {
		Content     string
		CommitCount int
	}
)

// ChangelogService runs fetch, parse, categorize and render for one request.
// It keeps no state between calls.
type ChangelogService struct {
	fetcher  ports.LogFetcher
	renderer *changelog.Renderer
}

type ChangelogOption func(*ChangelogService)

func WithRenderer(r *changelog.Renderer) ChangelogOption {
	return func(s *ChangelogService) {
		s.renderer = r
	}
}

func NewChangelogService(fetcher ports.LogFetcher, opts ...ChangelogOption) *ChangelogService {
	s := &ChangelogService{
		fetcher:  fetcher,
		renderer: changelog.NewRenderer(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate returns ErrNoCommits when the filters select nothing; fetch
// errors are returned unchanged.
func (s *ChangelogService) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	log := logger.FromContext(ctx)

	raw, err := s.fetcher.FetchLog(ctx, req.Log)
	if err != nil {
		return nil, err
	}

	commits := changelog.ParseLog(raw)
	if len(commits) == 0 {
		return nil, errors.ErrNoCommits.
			WithContext("since", req.Log.Since).
			WithContext("until", req.Log.Until).
			WithContext("branch", req.Log.RevisionOrDefault())
	}

	log.Info("commits parsed", "count", len(commits), "format", string(req.Format))
	if req.Format == models.FormatMarkdown {
		groups := changelog.GroupByCategory(commits)
		for _, category := range models.CategoryOrder() {
			if n := len(groups[category]); n > 0 {
				log.Debug("category", "name", string(category), "count", n)
			}
		}
	}

	title := req.Title
	if title == "" {
		title = changelog.DefaultTitle
	}

	content, err := s.renderer.Render(req.Format, commits, title)
	if err != nil {
		return nil, errors.ErrInvalidFormat.WithError(err)
	}

	return &GenerateResult{
		Content:     content,
		CommitCount: len(commits),
	}, nil
}
