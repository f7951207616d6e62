package config

import (
	"log/slog"
	"time"

	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/types"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/infra/eventstream"
	"github.com/urfave/cli/v3"
)

type EventStream struct {
	url               string
	apiKey            string
	insecure          bool
	reconnectInterval time.Duration
}

func (x *EventStream) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "websocket",
			Usage:       "WebSocket URL of the server event stream (ws:// or wss://)",
			Category:    "Event stream",
			Destination: &x.url,
			Sources:     cli.EnvVars("CONFLICTSBOT_WEBSOCKET"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "apikey",
			Usage:       "Connection key of the event stream",
			Category:    "Event stream",
			Destination: &x.apiKey,
			Sources:     cli.EnvVars("CONFLICTSBOT_APIKEY"),
			Required:    true,
		},
		&cli.BoolFlag{
			Name:        "event-stream-insecure",
			Usage:       "Skip TLS certificate verification of the event stream",
			Category:    "Event stream",
			Destination: &x.insecure,
			Sources:     cli.EnvVars("CONFLICTSBOT_EVENT_STREAM_INSECURE"),
		},
		&cli.DurationFlag{
			Name:        "reconnect-interval",
			Usage:       "Wait between event stream connection attempts",
			Category:    "Event stream",
			Destination: &x.reconnectInterval,
			Sources:     cli.EnvVars("CONFLICTSBOT_RECONNECT_INTERVAL"),
			Value:       eventstream.DefaultReconnectInterval,
		},
	}
}

func (x *EventStream) New(name string) (*eventstream.Client, error) {
	return eventstream.New(x.url, types.APIKey(x.apiKey),
		eventstream.WithName(name),
		eventstream.WithInsecure(x.insecure),
		eventstream.WithReconnectInterval(x.reconnectInterval),
	)
}

func (x *EventStream) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("URL", x.url),
		slog.Any("APIKey", types.APIKey(x.apiKey)),
		slog.Bool("Insecure", x.insecure),
		slog.Duration("ReconnectInterval", x.reconnectInterval),
	)
}
