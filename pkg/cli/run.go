package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JesusMG/conflictsdetector-mergebot/pkg/cli/config"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/controller/server"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/types"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/infra"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/usecase"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/utils/logging"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

func runCommand() *cli.Command {
	var (
		name         string
		addr         string
		eventSecret  string
		pollInterval time.Duration
		requeueDelay time.Duration

		bot          config.Bot
		controlPlane config.ControlPlane
		eventStream  config.EventStream
		storage      config.Storage
		sentry       config.Sentry
	)
	runFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "name",
			Usage:       "Bot name. Queue files and merge reports are keyed by it",
			Sources:     cli.EnvVars("CONFLICTSBOT_NAME"),
			Destination: &name,
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address of the status server (disabled if empty)",
			Sources:     cli.EnvVars("CONFLICTSBOT_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "event-secret",
			Usage:       "Enables POST /events of the status server with this key",
			Sources:     cli.EnvVars("CONFLICTSBOT_EVENT_SECRET"),
			Destination: &eventSecret,
		},
		&cli.DurationFlag{
			Name:        "poll-interval",
			Usage:       "Longest wait of the worker when there is nothing to process",
			Sources:     cli.EnvVars("CONFLICTSBOT_POLL_INTERVAL"),
			Destination: &pollInterval,
			Value:       usecase.DefaultPollInterval,
		},
		&cli.DurationFlag{
			Name:        "requeue-delay",
			Usage:       "Wait after a branch is put back to the queue or fails to merge",
			Sources:     cli.EnvVars("CONFLICTSBOT_REQUEUE_DELAY"),
			Destination: &requeueDelay,
			Value:       usecase.DefaultRequeueDelay,
		},
	}

	return &cli.Command{
		Name:    "run",
		Aliases: []string{"r"},
		Usage:   "Run the bot",
		Flags: slice.Flatten(
			runFlags,
			bot.Flags(),
			controlPlane.Flags(),
			eventStream.Flags(),
			storage.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting conflictsbot",
				slog.String("Name", name),
				slog.String("Addr", addr),
				slog.Duration("PollInterval", pollInterval),
				slog.Duration("RequeueDelay", requeueDelay),
				slog.Any("Bot", &bot),
				slog.Any("ControlPlane", &controlPlane),
				slog.Any("EventStream", &eventStream),
				slog.Any("Storage", &storage),
				slog.Any("Sentry", &sentry),
			)

			botConfig, err := bot.Load()
			if err != nil {
				return err
			}
			logging.Default().Info("bot config loaded", slog.Any("config", botConfig))

			if err := sentry.Configure(ctx, name); err != nil {
				return err
			}

			lock, err := storage.Lock(name)
			if err != nil {
				return err
			}
			defer safe.Close(lock)

			cp, err := controlPlane.New(botConfig.UserAPIKey)
			if err != nil {
				return err
			}
			listener, err := eventStream.New(name)
			if err != nil {
				return err
			}

			resolved, ready := storage.Queues(name)
			clients := infra.New(
				infra.WithControlPlane(cp),
				infra.WithResolvedQueue(resolved),
				infra.WithReadyToMergeQueue(ready),
			)
			uc := usecase.New(clients, botConfig,
				usecase.WithBotName(name),
				usecase.WithPollInterval(pollInterval),
				usecase.WithRequeueDelay(requeueDelay),
			)

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := uc.LoadBranchesToProcess(ctx); err != nil {
				return goerr.Wrap(err, "failed to load branches to process")
			}

			eg, ctx := errgroup.WithContext(ctx)
			eg.Go(func() error {
				return uc.ProcessBranches(ctx)
			})
			eg.Go(func() error {
				return listener.Listen(ctx, func(ctx context.Context, payload []byte) {
					reqID, ctx := logging.CtxRequestID(ctx)
					ctx = logging.With(ctx, logging.From(ctx).With(slog.String("request_id", string(reqID))))
					uc.OnEvent(ctx, payload)
				})
			})

			if addr != "" {
				var options []server.Option
				if eventSecret != "" {
					options = append(options, server.WithEventSecret(types.APIKey(eventSecret)))
				}
				serveStatus(ctx, eg, addr, server.New(uc, options...))
			}

			if err := eg.Wait(); err != nil {
				return err
			}
			logging.Default().Info("conflictsbot stopped")
			return nil
		},
	}
}

// serveStatus runs the status server in eg until ctx is done.
func serveStatus(ctx context.Context, eg *errgroup.Group, addr string, s *server.Server) {
	httpServer := &http.Server{
		Addr:    addr,
		Handler: s.Mux(),

		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	eg.Go(func() error {
		logging.Default().Info("starting http server", "addr", addr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			return goerr.Wrap(err, "failed to listen and serve", goerr.V("addr", addr))
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		logging.Default().Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return goerr.Wrap(err, "failed to shutdown server")
		}
		return nil
	})
}
