package generate

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Tomas-vilte/MateChangelog/internal/changelog"
	"github.com/Tomas-vilte/MateChangelog/internal/cli/completion_helper"
	cfg "github.com/Tomas-vilte/MateChangelog/internal/config"
	"github.com/Tomas-vilte/MateChangelog/internal/errors"
	"github.com/Tomas-vilte/MateChangelog/internal/git"
	"github.com/Tomas-vilte/MateChangelog/internal/i18n"
	"github.com/Tomas-vilte/MateChangelog/internal/logger"
	"github.com/Tomas-vilte/MateChangelog/internal/models"
	"github.com/Tomas-vilte/MateChangelog/internal/ports"
	"github.com/Tomas-vilte/MateChangelog/internal/services"
	"github.com/Tomas-vilte/MateChangelog/internal/ui"
	"github.com/urfave/cli/v3"
)

// FetcherProvider builds the log fetcher for a backend.
type FetcherProvider func(backend models.Backend, gitBinary string) (ports.LogFetcher, error)

type GenerateCommandFactory struct {
	newFetcher FetcherProvider
}

func NewGenerateCommandFactory() *GenerateCommandFactory {
	return &GenerateCommandFactory{newFetcher: git.NewLogFetcher}
}

// WithFetcherProvider replaces how the fetcher is built, for tests.
func (f *GenerateCommandFactory) WithFetcherProvider(p FetcherProvider) *GenerateCommandFactory {
	f.newFetcher = p
	return f
}

func (f *GenerateCommandFactory) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:          "generate",
		Usage:         t.GetMessage("app_usage", 0, nil),
		Flags:         f.createFlags(t, config),
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return f.generateAction(ctx, cmd, t, config)
		},
	}
}

func (f *GenerateCommandFactory) createFlags(t *i18n.Translations, config *cfg.Config) []cli.Flag {
	formats := make([]string, 0, len(models.Formats()))
	for _, format := range models.Formats() {
		formats = append(formats, string(format))
	}

	return []cli.Flag{
		&cli.StringFlag{
			Name:  "since",
			Usage: t.GetMessage("flag.since", 0, nil),
		},
		&cli.StringFlag{
			Name:  "until",
			Usage: t.GetMessage("flag.until", 0, nil),
		},
		&cli.StringFlag{
			Name:    "branch",
			Aliases: []string{"b"},
			Usage:   t.GetMessage("flag.branch", 0, nil),
			Value:   config.Branch,
		},
		&cli.IntFlag{
			Name:    "max-count",
			Aliases: []string{"n"},
			Usage:   t.GetMessage("flag.max_count", 0, nil),
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   t.GetMessage("flag.format", 0, map[string]interface{}{"Formats": strings.Join(formats, ", ")}),
			Value:   config.Format,
		},
		&cli.StringFlag{
			Name:    "title",
			Aliases: []string{"t"},
			Usage:   t.GetMessage("flag.title", 0, nil),
			Value:   config.Title,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   t.GetMessage("flag.output", 0, nil),
		},
		&cli.StringFlag{
			Name:  "repo",
			Usage: t.GetMessage("flag.repo", 0, nil),
		},
		&cli.StringFlag{
			Name:  "backend",
			Usage: t.GetMessage("flag.backend", 0, nil),
			Value: config.Backend,
		},
		&cli.StringFlag{
			Name:  "link-base",
			Usage: t.GetMessage("flag.link_base", 0, nil),
			Value: config.LinkBase,
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: t.GetMessage("flag.debug", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: t.GetMessage("flag.verbose", 0, nil),
		},
	}
}

func (f *GenerateCommandFactory) generateAction(ctx context.Context, cmd *cli.Command, t *i18n.Translations, config *cfg.Config) error {
	logger.Initialize(cmd.Bool("debug"), cmd.Bool("verbose"))

	format, err := models.ParseFormat(cmd.String("format"))
	if err != nil {
		return errors.ErrInvalidFormat.WithError(err)
	}

	backend, err := models.ParseBackend(cmd.String("backend"))
	if err != nil {
		return errors.ErrInvalidBackend.WithError(err)
	}

	fetcher, err := f.newFetcher(backend, config.GitBinary)
	if err != nil {
		return err
	}

	renderer := changelog.NewRenderer(changelog.WithLinkBase(cmd.String("link-base")))
	service := services.NewChangelogService(fetcher, services.WithRenderer(renderer))

	req := services.GenerateRequest{
		Log: models.LogOptions{
			Since:    cmd.String("since"),
			Until:    cmd.String("until"),
			Branch:   cmd.String("branch"),
			MaxCount: int(cmd.Int("max-count")),
			RepoPath: cmd.String("repo"),
		},
		Format: format,
		Title:  cmd.String("title"),
	}

	ctx = logger.With(ctx, "backend", string(backend))
	result, err := service.Generate(ctx, req)
	if err != nil {
		return err
	}

	logger.Info(ctx, t.GetMessage("changelog.summary", result.CommitCount, map[string]interface{}{
		"Count": result.CommitCount,
	}))

	out := cmd.Root().Writer
	if out == nil {
		out = os.Stdout
	}

	outputFile := cmd.String("output")
	if outputFile == "" {
		_, err := fmt.Fprintln(out, result.Content)
		return err
	}

	if err := os.WriteFile(outputFile, []byte(result.Content), 0644); err != nil {
		return errors.ErrWriteOutput.WithError(err).WithContext("path", outputFile)
	}

	ui.PrintSuccess(out, t.GetMessage("changelog.written", 0, map[string]interface{}{
		"Path": outputFile,
	}))
	return nil
}
