package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . ControlPlane

import (
	"context"

	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/model"
)

// ControlPlane is the version control server REST API used by the bot.
type ControlPlane interface {
	// FindBranches runs a find query and returns matching branches of the repository.
	FindBranches(ctx context.Context, repository, query string) ([]*model.Branch, error)
	GetBranch(ctx context.Context, repository, branchFullName string) (*model.BranchInfo, error)

	MergeToShelve(ctx context.Context, repository, source, destination string) (*model.MergeToResult, error)
	DeleteShelve(ctx context.Context, repository string, shelveID int) error

	UpdateBranchAttribute(ctx context.Context, repository, branchFullName, attrName, attrValue string) error

	IsIssueTrackerConnected(ctx context.Context, plugName string) (bool, error)
	GetIssueTrackerField(ctx context.Context, plugName, projectKey, taskID, fieldName string) (string, error)
	SetIssueTrackerField(ctx context.Context, plugName, projectKey, taskID, fieldName, value string) error

	Notify(ctx context.Context, plugName, message string, recipients []string) error
	// GetUserProfile returns nil without error when the user has no profile.
	GetUserProfile(ctx context.Context, user string) (map[string]any, error)
	SendMergeReport(ctx context.Context, botName string, report *model.MergeReport) error
}
