package changelog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Tomas-vilte/MateChangelog/internal/models"
	"github.com/Tomas-vilte/MateChangelog/internal/regex"
)

const (
	DefaultTitle    = "Changelog"
	DefaultLinkBase = "../../commit/"

	generatedAtLayout = "2006-01-02 15:04:05"
	simpleRuleWidth   = 50
)

type Renderer struct {
	linkBase string
	now      func() time.Time
}

type RendererOption func(*Renderer)

// WithLinkBase sets the prefix placed before the full hash in markdown links.
func WithLinkBase(base string) RendererOption {
	return func(r *Renderer) {
		r.linkBase = base
	}
}

func WithClock(now func() time.Time) RendererOption {
	return func(r *Renderer) {
		r.now = now
	}
}

func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		linkBase: DefaultLinkBase,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render serializes commits in the requested format. The title is only used
// by the markdown format.
func (r *Renderer) Render(format models.Format, commits []models.Commit, title string) (string, error) {
	switch format {
	case models.FormatMarkdown:
		return r.Markdown(commits, title), nil
	case models.FormatSimple:
		return r.Simple(commits), nil
	case models.FormatJSON:
		return r.JSON(commits)
	default:
		return "", fmt.Errorf("unsupported format %q", format)
	}
}

// Markdown groups commits by category and emits one section per non-empty
// category in CategoryOrder.
func (r *Renderer) Markdown(commits []models.Commit, title string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", title))
	sb.WriteString(fmt.Sprintf("Generated on %s\n\n", r.now().Format(generatedAtLayout)))

	groups := GroupByCategory(commits)
	for _, category := range models.CategoryOrder() {
		items, ok := groups[category]
		if !ok {
			continue
		}

		sb.WriteString(fmt.Sprintf("## %s\n\n", category.DisplayName()))
		for _, commit := range items {
			sb.WriteString(r.formatMarkdownItem(commit))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (r *Renderer) formatMarkdownItem(commit models.Commit) string {
	line := fmt.Sprintf("- %s ([%s](%s%s))\n",
		DisplaySubject(commit.Subject), commit.ShortHash(), r.linkBase, commit.Hash)

	if first, ok := FirstBodyLine(commit); ok {
		line += fmt.Sprintf("  *%s*\n", first)
	}
	return line
}

// Simple renders a flat list with a commit count header.
func (r *Renderer) Simple(commits []models.Commit) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Changes (%d commits)\n", len(commits)))
	sb.WriteString(strings.Repeat("=", simpleRuleWidth) + "\n\n")

	for _, commit := range commits {
		sb.WriteString(fmt.Sprintf("• %s\n", commit.Subject))
		sb.WriteString(fmt.Sprintf("  Author: %s | Date: %s | Hash: %s\n",
			commit.Author, commit.Date, commit.ShortHash()))
		if first, ok := FirstBodyLine(commit); ok {
			sb.WriteString(fmt.Sprintf("  %s\n", first))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// JSON serializes every field of every commit with 2-space indentation.
func (r *Renderer) JSON(commits []models.Commit) (string, error) {
	if commits == nil {
		commits = []models.Commit{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(commits); err != nil {
		return "", fmt.Errorf("error encoding commits: %w", err)
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// DisplaySubject drops a leading conventional "type(scope):" head.
func DisplaySubject(subject string) string {
	loc := regex.ConventionalPrefix.FindStringIndex(subject)
	if loc == nil {
		return subject
	}
	return strings.TrimSpace(subject[loc[1]:])
}
