package config

import (
	"log/slog"

	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/types"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/infra/restapi"
	"github.com/urfave/cli/v3"
)

// ControlPlane is the REST API endpoint of the server. Requests are authenticated with the user API key of the bot config.
type ControlPlane struct {
	url string
}

func (x *ControlPlane) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "restapi",
			Usage:       "REST API base URL of the server",
			Category:    "Server",
			Destination: &x.url,
			Sources:     cli.EnvVars("CONFLICTSBOT_RESTAPI"),
			Required:    true,
		},
	}
}

func (x *ControlPlane) New(userAPIKey types.APIKey, options ...restapi.Option) (*restapi.Client, error) {
	return restapi.New(x.url, userAPIKey, options...)
}

func (x *ControlPlane) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("URL", x.url),
	)
}
