package config

import (
	"context"
	"log/slog"

	"github.com/JesusMG/conflictsdetector-mergebot/pkg/utils/logging"
	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

type Sentry struct {
	dsn         string
	environment string
	release     string
}

func (x *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN, error reporting is disabled when empty",
			Category:    "Sentry",
			Destination: &x.dsn,
			Sources:     cli.EnvVars("CONFLICTSBOT_SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			Category:    "Sentry",
			Destination: &x.environment,
			Sources:     cli.EnvVars("CONFLICTSBOT_SENTRY_ENV"),
		},
		&cli.StringFlag{
			Name:        "sentry-release",
			Usage:       "Sentry release name",
			Category:    "Sentry",
			Destination: &x.release,
			Sources:     cli.EnvVars("CONFLICTSBOT_SENTRY_RELEASE"),
		},
	}
}

// Configure initializes the Sentry client. Events are tagged with the bot name
// so several bots can share one project.
func (x *Sentry) Configure(ctx context.Context, botName string) error {
	if x.dsn == "" {
		logging.From(ctx).Warn("sentry is not configured")
		return nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         x.dsn,
		Environment: x.environment,
		Release:     x.release,
		ServerName:  botName,
	}); err != nil {
		return goerr.Wrap(err, "failed to initialize sentry", goerr.V("bot", botName))
	}

	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("bot", botName)
	})

	return nil
}

func (x *Sentry) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("Enabled", x.dsn != ""),
		slog.Any("Environment", x.environment),
		slog.Any("Release", x.release),
	)
}
