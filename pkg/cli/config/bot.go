package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Bot is the bot configuration file given by --config.
type Bot struct {
	path string
}

func (x *Bot) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Bot configuration file (.json, .yaml, .yml or .toml)",
			Category:    "Bot",
			Aliases:     []string{"c"},
			Destination: &x.path,
			Sources:     cli.EnvVars("CONFLICTSBOT_CONFIG"),
			Required:    true,
		},
	}
}

// Load reads, normalizes and validates the configuration file.
func (x *Bot) Load() (*model.BotConfig, error) {
	return LoadBotConfig(x.path)
}

func LoadBotConfig(path string) (*model.BotConfig, error) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read bot config", goerr.V("path", path))
	}

	var cfg model.BotConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, goerr.Wrap(err, "failed to parse YAML bot config", goerr.V("path", path))
		}
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(raw)).Decode(&cfg); err != nil {
			return nil, goerr.Wrap(err, "failed to parse TOML bot config", goerr.V("path", path))
		}
	default:
		if err := json.Unmarshal(raw, &cfg); err != nil {
			return nil, goerr.Wrap(err, "failed to parse JSON bot config", goerr.V("path", path), goerr.V("ext", ext))
		}
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid bot config", goerr.V("path", path))
	}

	return &cfg, nil
}

func (x *Bot) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Path", x.path),
	)
}
