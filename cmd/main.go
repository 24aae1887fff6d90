package main

import (
	"context"
	"os"

	"github.com/Tomas-vilte/MateChangelog/internal/cli/command/completion"
	"github.com/Tomas-vilte/MateChangelog/internal/cli/command/config"
	"github.com/Tomas-vilte/MateChangelog/internal/cli/command/generate"
	"github.com/Tomas-vilte/MateChangelog/internal/cli/registry"
	cfg "github.com/Tomas-vilte/MateChangelog/internal/config"
	"github.com/Tomas-vilte/MateChangelog/internal/errors"
	"github.com/Tomas-vilte/MateChangelog/internal/i18n"
	"github.com/Tomas-vilte/MateChangelog/internal/logger"
	"github.com/Tomas-vilte/MateChangelog/internal/ui"
	"github.com/Tomas-vilte/MateChangelog/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	logger.Initialize(false, false)

	translations, err := i18n.NewTranslations()
	if err != nil {
		ui.PrintError(os.Stderr, err.Error())
		os.Exit(errors.ExitGitFailure)
	}

	app, err := initializeApp(context.Background(), translations)
	if err != nil {
		ui.HandleAppError(os.Stderr, err, translations)
		os.Exit(errors.ExitCodeOf(err))
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		ui.HandleAppError(os.Stderr, err, translations)
		os.Exit(errors.ExitCodeOf(err))
	}
}

func initializeApp(ctx context.Context, translations *i18n.Translations) (*cli.Command, error) {
	cfgApp, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	registerCommand := registry.NewRegistry(cfgApp, translations)
	if err := registerCommand.Register("config", config.NewConfigCommandFactory()); err != nil {
		return nil, errors.NewAppError(errors.TypeInternal, "Failed to register command", err)
	}
	if err := registerCommand.Register("completion", completion.NewCompletionCommandFactory()); err != nil {
		return nil, errors.NewAppError(errors.TypeInternal, "Failed to register command", err)
	}

	// The root command generates the changelog; subcommands cover the rest.
	app := generate.NewGenerateCommandFactory().CreateCommand(translations, cfgApp)
	app.Name = "mate-changelog"
	app.Version = version.Version
	app.Description = translations.GetMessage("app_description", 0, nil)
	app.Commands = registerCommand.CreateCommands()
	app.EnableShellCompletion = true
	app.OnUsageError = func(ctx context.Context, cmd *cli.Command, err error, isSubcommand bool) error {
		return errors.ErrInvalidArguments.WithError(err)
	}

	return app, nil
}

func loadConfig(ctx context.Context) (*cfg.Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		logger.Warn(ctx, "home directory not found, using default configuration", "error", err)
		return cfg.Default(), nil
	}

	cfgApp, err := cfg.LoadConfig(cfg.DefaultPath(homeDir))
	if err != nil {
		return nil, errors.ErrConfigLoad.WithError(err).WithContext("path", cfg.DefaultPath(homeDir))
	}
	return cfgApp, nil
}
