package cli

import (
	"context"
	"log/slog"

	"github.com/JesusMG/conflictsdetector-mergebot/pkg/cli/config"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func checkConfigCommand() *cli.Command {
	var bot config.Bot

	return &cli.Command{
		Name:  "check-config",
		Usage: "Validate the bot configuration file and exit",
		Flags: bot.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := bot.Load()
			if err != nil {
				return err
			}
			logging.From(ctx).Info("bot config is valid", slog.Any("config", cfg))
			return nil
		},
	}
}
