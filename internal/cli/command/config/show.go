package config

import (
	"context"
	"fmt"
	"os"

	"github.com/Tomas-vilte/MateChangelog/internal/config"
	"github.com/Tomas-vilte/MateChangelog/internal/errors"
	"github.com/Tomas-vilte/MateChangelog/internal/i18n"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config.show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			w := writerOf(command)

			source := "config.source"
			if _, err := os.Stat(cfg.PathFile); err != nil {
				source = "config.source_default"
			}
			_, _ = fmt.Fprintln(w, t.GetMessage(source, 0, map[string]interface{}{"Path": cfg.PathFile}))

			data, err := config.Encode(cfg)
			if err != nil {
				return errors.ErrInvalidConfig.WithError(err)
			}
			_, err = w.Write(data)
			return err
		},
	}
}
