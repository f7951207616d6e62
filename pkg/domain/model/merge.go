package model

import "time"

type MergeStatus string

const (
	MergeStatusOK                 MergeStatus = "OK"
	MergeStatusAncestorNotFound   MergeStatus = "AncestorNotFound"
	MergeStatusMergeNotNeeded     MergeStatus = "MergeNotNeeded"
	MergeStatusConflicts          MergeStatus = "Conflicts"
	MergeStatusDestinationChanges MergeStatus = "DestinationChanges"
	MergeStatusError              MergeStatus = "Error"
	MergeStatusMultipleHeads      MergeStatus = "MultipleHeads"
)

// Succeeded is true for the statuses that leave nothing to resolve by hand.
func (x MergeStatus) Succeeded() bool {
	return x == MergeStatusOK || x == MergeStatusMergeNotNeeded
}

// MergeToResult is the control plane answer to a merge-to-shelve request.
type MergeToResult struct {
	Status          MergeStatus `json:"status"`
	Message         string      `json:"message"`
	ChangesetNumber int         `json:"changesetNumber"`
}

type MergeOutcome struct {
	HasManualConflicts bool
	Message            string
}

// BranchInfo is the control plane view of a branch.
type BranchInfo struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	RepositoryID string `json:"repositoryId"`
	Owner        string `json:"owner"`
	Comment      string `json:"comment"`
}

const (
	MergeReportTypeOK     = "merge_ok"
	MergeReportTypeFailed = "merge_failed"
)

type MergeReport struct {
	Timestamp    time.Time          `json:"timestamp"`
	RepositoryID string             `json:"repositoryId"`
	BranchID     int                `json:"branchId"`
	Properties   []MergeReportEntry `json:"properties"`
}

type MergeReportEntry struct {
	Text  string `json:"text,omitempty"`
	Link  string `json:"link,omitempty"`
	Type  string `json:"type"`
	Value string `json:"value"`
}
