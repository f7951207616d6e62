package model

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// BotConfig is the bot configuration file content.
type BotConfig struct {
	Repository      string                `json:"repository" yaml:"repository" toml:"repository"`
	BranchPrefix    string                `json:"branchPrefix" yaml:"branchPrefix" toml:"branchPrefix"`
	TrunkBranch     string                `json:"trunkBranch" yaml:"trunkBranch" toml:"trunkBranch"`
	UserAPIKey      types.APIKey          `json:"userApiKey" yaml:"userApiKey" toml:"userApiKey" masq:"secret"`
	StatusAttribute StatusAttributeConfig `json:"statusAttributeGroup" yaml:"statusAttributeGroup" toml:"statusAttributeGroup"`
	IssueTracker    *IssueTrackerConfig   `json:"issuesGroup,omitempty" yaml:"issuesGroup" toml:"issuesGroup"`
	Notifier        *NotifierConfig       `json:"notifierGroup,omitempty" yaml:"notifierGroup" toml:"notifierGroup"`
}

type StatusAttributeConfig struct {
	Name          string `json:"statusAttribute" yaml:"statusAttribute" toml:"statusAttribute"`
	ResolvedValue string `json:"resolvedValue" yaml:"resolvedValue" toml:"resolvedValue"`
	FailedValue   string `json:"failedValue" yaml:"failedValue" toml:"failedValue"`
	MergedValue   string `json:"mergedValue" yaml:"mergedValue" toml:"mergedValue"`
}

type IssueTrackerConfig struct {
	PlugName    string                `json:"plugName" yaml:"plugName" toml:"plugName"`
	ProjectKey  string                `json:"projectKey" yaml:"projectKey" toml:"projectKey"`
	StatusField StatusAttributeConfig `json:"statusFieldGroup" yaml:"statusFieldGroup" toml:"statusFieldGroup"`
}

type NotifierConfig struct {
	PlugName         string `json:"plugName" yaml:"plugName" toml:"plugName"`
	UserProfileField string `json:"userProfileFieldName" yaml:"userProfileFieldName" toml:"userProfileFieldName"`
	// FixedRecipients is a ',' or ';' separated user list
	FixedRecipients string `json:"fixedRecipientsUsers" yaml:"fixedRecipientsUsers" toml:"fixedRecipientsUsers"`
	NotifyOnSuccess bool   `json:"notifyOnSuccessfulTryMerge" yaml:"notifyOnSuccessfulTryMerge" toml:"notifyOnSuccessfulTryMerge"`
}

func (x *NotifierConfig) Recipients() []string {
	var recipients []string
	for _, v := range strings.FieldsFunc(x.FixedRecipients, func(r rune) bool { return r == ',' || r == ';' }) {
		if v = strings.TrimSpace(v); v != "" {
			recipients = append(recipients, v)
		}
	}
	return recipients
}

// Normalize drops optional groups whose plug name is empty or "none".
func (x *BotConfig) Normalize() {
	if x.IssueTracker != nil && isDisabledPlug(x.IssueTracker.PlugName) {
		x.IssueTracker = nil
	}
	if x.Notifier != nil && isDisabledPlug(x.Notifier.PlugName) {
		x.Notifier = nil
	}
}

func isDisabledPlug(name string) bool {
	name = strings.TrimSpace(name)
	return name == "" || strings.EqualFold(name, "none")
}

// Validate reports every missing field at once.
func (x *BotConfig) Validate() error {
	var msg strings.Builder

	required := func(value, field string) {
		if strings.TrimSpace(value) == "" {
			fmt.Fprintf(&msg, "* The %s must be defined.\n", field)
		}
	}

	required(x.Repository, "repository")
	required(x.TrunkBranch, "trunk branch")
	required(x.BranchPrefix, "branch prefix")
	required(string(x.UserAPIKey), "user api key")

	const attrGroup = "of the status attribute config"
	required(x.StatusAttribute.Name, "name "+attrGroup)
	required(x.StatusAttribute.ResolvedValue, "resolved value "+attrGroup)
	required(x.StatusAttribute.FailedValue, "failed value "+attrGroup)
	required(x.StatusAttribute.MergedValue, "merged value "+attrGroup)

	if x.IssueTracker != nil {
		const fieldGroup = "of the status field for Issue Tracker config"
		required(x.IssueTracker.PlugName, "plug name for Issue Tracker config")
		required(x.IssueTracker.StatusField.Name, "name "+fieldGroup)
		required(x.IssueTracker.StatusField.ResolvedValue, "resolved value "+fieldGroup)
		required(x.IssueTracker.StatusField.FailedValue, "failed value "+fieldGroup)
	}

	if x.Notifier != nil {
		required(x.Notifier.PlugName, "plug name for Notifications config")
		if strings.TrimSpace(x.Notifier.UserProfileField) == "" && len(x.Notifier.Recipients()) == 0 {
			msg.WriteString("* There is no destination info in the Notifications config. " +
				"Please specify a user profile field, a list of recipients or both (recommended).\n")
		}
	}

	if msg.Len() == 0 {
		return nil
	}

	return goerr.Wrap(types.ErrValidationFailed,
		"conflictsbot can't start without specifying a valid config for the following fields:\n"+msg.String())
}

func (x *BotConfig) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("repository", x.Repository),
		slog.String("branchPrefix", x.BranchPrefix),
		slog.String("trunkBranch", x.TrunkBranch),
		slog.Int("userApiKey.len", len(x.UserAPIKey)),
		slog.String("statusAttribute", x.StatusAttribute.Name),
	}
	if x.IssueTracker != nil {
		attrs = append(attrs, slog.String("issueTracker", x.IssueTracker.PlugName))
	}
	if x.Notifier != nil {
		attrs = append(attrs, slog.String("notifier", x.Notifier.PlugName))
	}
	return slog.GroupValue(attrs...)
}
