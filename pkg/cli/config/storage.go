package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/JesusMG/conflictsdetector-mergebot/pkg/repository/filequeue"
	"github.com/gofrs/flock"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Storage is the directory keeping the queue files of the bot.
type Storage struct {
	dataDir string
}

func (x *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "data-dir",
			Usage:       "Directory of the queue files",
			Category:    "Storage",
			Destination: &x.dataDir,
			Sources:     cli.EnvVars("CONFLICTSBOT_DATA_DIR"),
			Value:       ".",
		},
	}
}

var fileNameReplacer = strings.NewReplacer(
	"/", "-", "\\", "-", "<", "-", ">", "-", ":", "-",
	"\"", "-", "|", "-", "?", "-", "*", "-", " ", "-",
)

// EscapeBotName makes the bot name safe to use as a file name.
func EscapeBotName(name string) string {
	return fileNameReplacer.Replace(name)
}

func (x *Storage) path(botName, suffix string) string {
	return filepath.Join(x.dataDir, EscapeBotName(botName)+suffix)
}

// Queues returns the resolved and the ready to merge queues of the bot.
func (x *Storage) Queues(botName string) (*filequeue.Queue, *filequeue.Queue) {
	return filequeue.New(x.path(botName, ".resolved.json")),
		filequeue.New(x.path(botName, ".readyToMerge.json"))
}

// Lock takes the exclusive lock of the bot name, so that a second process with the same name can't start.
func (x *Storage) Lock(botName string) (*flock.Flock, error) {
	if err := os.MkdirAll(x.dataDir, 0o750); err != nil {
		return nil, goerr.Wrap(err, "failed to create data directory", goerr.V("dir", x.dataDir))
	}

	lock := flock.New(x.path(botName, ".lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to lock bot", goerr.V("path", lock.Path()))
	}
	if !locked {
		return nil, goerr.New("another process is running with the same bot name",
			goerr.V("name", botName),
			goerr.V("path", lock.Path()),
		)
	}
	return lock, nil
}

func (x *Storage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("DataDir", x.dataDir),
	)
}
