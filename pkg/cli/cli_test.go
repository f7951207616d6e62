package cli_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/JesusMG/conflictsdetector-mergebot/pkg/cli"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestCheckConfig(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "valid.yaml")
	gt.NoError(t, os.WriteFile(valid, []byte(`
repository: myrepo
branchPrefix: task
trunkBranch: /main
userApiKey: user-key
statusAttributeGroup:
  statusAttribute: status
  resolvedValue: resolved
  failedValue: failed
  mergedValue: merged
`), 0o600))

	invalid := filepath.Join(dir, "invalid.json")
	gt.NoError(t, os.WriteFile(invalid, []byte(`{"repository":"myrepo"}`), 0o600))

	t.Run("valid config", func(t *testing.T) {
		gt.NoError(t, cli.New().Run(context.Background(), []string{"conflictsbot", "check-config", "--config", valid}))
	})

	t.Run("invalid config", func(t *testing.T) {
		err := cli.New().Run(context.Background(), []string{"conflictsbot", "check-config", "--config", invalid})
		gt.Error(t, err).Is(types.ErrValidationFailed)
	})
}

func TestLoggingFlags(t *testing.T) {
	var format, level, output string
	orig := cli.ConfigureLogging
	cli.ConfigureLogging = func(logFormat, logLevel, logOutput string) error {
		format, level, output = logFormat, logLevel, logOutput
		return nil
	}
	t.Cleanup(func() { cli.ConfigureLogging = orig })

	_ = cli.New().Run(context.Background(), []string{"conflictsbot", "--log-format", "json", "--log-level", "debug", "check-config", "--config", "missing.json"})
	gt.V(t, format).Equal("json")
	gt.V(t, level).Equal("debug")
	gt.V(t, output).Equal("-")
}
