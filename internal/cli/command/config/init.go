package config

import (
	"context"
	"os"

	"github.com/Tomas-vilte/MateChangelog/internal/config"
	"github.com/Tomas-vilte/MateChangelog/internal/errors"
	"github.com/Tomas-vilte/MateChangelog/internal/i18n"
	"github.com/Tomas-vilte/MateChangelog/internal/logger"
	"github.com/Tomas-vilte/MateChangelog/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newInitCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: t.GetMessage("config.init_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "force",
				Usage: t.GetMessage("flag.force", 0, nil),
			},
		},
		Action: initConfigAction(cfg, t),
	}
}

// initConfigAction writes the built-in defaults to the config path. An
// existing file is left alone unless --force is given.
func initConfigAction(cfg *config.Config, t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		path := cfg.PathFile

		if _, err := os.Stat(path); err == nil && !command.Bool("force") {
			return errors.ErrConfigExists.WithContext("path", path)
		}

		defaults := config.Default()
		defaults.PathFile = path

		if err := config.SaveConfig(defaults); err != nil {
			return errors.ErrInvalidConfig.WithError(err).WithContext("path", path)
		}

		logger.Info(ctx, "config file written", "path", path)
		ui.PrintSuccess(writerOf(command), t.GetMessage("config.saved", 0, map[string]interface{}{
			"Path": path,
		}))
		return nil
	}
}
