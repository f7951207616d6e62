package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/JesusMG/conflictsdetector-mergebot/pkg/cli/config"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/model"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	gt.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

var expected = model.BotConfig{
	Repository:   "myrepo",
	BranchPrefix: "task",
	TrunkBranch:  "/main",
	UserAPIKey:   "user-key",
	StatusAttribute: model.StatusAttributeConfig{
		Name:          "status",
		ResolvedValue: "resolved",
		FailedValue:   "failed",
		MergedValue:   "merged",
	},
	Notifier: &model.NotifierConfig{
		PlugName:         "slack",
		UserProfileField: "profile.slack",
		FixedRecipients:  "alice;bob",
		NotifyOnSuccess:  true,
	},
}

func TestLoadBotConfig(t *testing.T) {
	testCases := map[string]string{
		"config.json": `{
			"repository": "myrepo",
			"branchPrefix": "task",
			"trunkBranch": "/main",
			"userApiKey": "user-key",
			"statusAttributeGroup": {
				"statusAttribute": "status",
				"resolvedValue": "resolved",
				"failedValue": "failed",
				"mergedValue": "merged"
			},
			"issuesGroup": {"plugName": "none"},
			"notifierGroup": {
				"plugName": "slack",
				"userProfileFieldName": "profile.slack",
				"fixedRecipientsUsers": "alice;bob",
				"notifyOnSuccessfulTryMerge": true
			}
		}`,
		"config.yaml": `
repository: myrepo
branchPrefix: task
trunkBranch: /main
userApiKey: user-key
statusAttributeGroup:
  statusAttribute: status
  resolvedValue: resolved
  failedValue: failed
  mergedValue: merged
issuesGroup:
  plugName: None
notifierGroup:
  plugName: slack
  userProfileFieldName: profile.slack
  fixedRecipientsUsers: alice;bob
  notifyOnSuccessfulTryMerge: true
`,
		"config.toml": `
repository = "myrepo"
branchPrefix = "task"
trunkBranch = "/main"
userApiKey = "user-key"

[statusAttributeGroup]
statusAttribute = "status"
resolvedValue = "resolved"
failedValue = "failed"
mergedValue = "merged"

[notifierGroup]
plugName = "slack"
userProfileFieldName = "profile.slack"
fixedRecipientsUsers = "alice;bob"
notifyOnSuccessfulTryMerge = true
`,
	}

	for name, content := range testCases {
		t.Run(name, func(t *testing.T) {
			cfg := gt.R1(config.LoadBotConfig(writeFile(t, name, content))).NoError(t)
			gt.V(t, *cfg).Equal(expected)
			gt.V(t, cfg.Notifier.Recipients()).Equal([]string{"alice", "bob"})
		})
	}
}

func TestLoadBotConfigErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadBotConfig(filepath.Join(t.TempDir(), "nothing.json"))
		gt.Error(t, err)
	})

	t.Run("broken json", func(t *testing.T) {
		_, err := config.LoadBotConfig(writeFile(t, "config.json", "{"))
		gt.Error(t, err)
	})

	t.Run("every missing field is reported", func(t *testing.T) {
		_, err := config.LoadBotConfig(writeFile(t, "config.json", `{"repository": "myrepo"}`))
		gt.Error(t, err).Is(types.ErrValidationFailed)
		gt.S(t, err.Error()).Contains("trunk branch")
		gt.S(t, err.Error()).Contains("branch prefix")
		gt.S(t, err.Error()).Contains("user api key")
		gt.S(t, err.Error()).Contains("merged value")
	})
}
