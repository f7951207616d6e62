package model

import (
	"strings"

	"golang.org/x/text/cases"
)

// Branch is a tracked task branch. Identity is (Repository, ID); FullName may change when the branch is renamed.
type Branch struct {
	Repository string `json:"repository"`
	ID         string `json:"id"`
	FullName   string `json:"fullName"`
	Owner      string `json:"owner"`
	Comment    string `json:"comment"`
}

// Is reports whether the branch has the given identity.
func (x *Branch) Is(repository, id string) bool {
	return x.Repository == repository && x.ID == id
}

func (x *Branch) ShortName() string {
	return ShortName(x.FullName)
}

// ShortName returns the substring after the last path separator.
func ShortName(fullName string) string {
	if idx := strings.LastIndex(fullName, "/"); idx >= 0 {
		return fullName[idx+1:]
	}
	return fullName
}

// NormalizeBranchName strips a leading "br:" marker and enforces a leading "/".
func NormalizeBranchName(name string) string {
	name = strings.TrimSpace(name)
	if len(name) >= 3 && strings.EqualFold(name[:3], "br:") {
		name = name[3:]
	}
	if !strings.HasPrefix(name, "/") {
		name = "/" + name
	}
	return name
}

// EqualValue compares attribute and field values the way users type them: trimmed and case folded.
func EqualValue(a, b string) bool {
	return fold(a) == fold(b)
}

func fold(v string) string {
	// cases.Caser keeps state, so a new one is needed per call
	return cases.Fold().String(strings.TrimSpace(v))
}

// TrimPrefixFold removes prefix from s ignoring case. ok is false when s does not start with prefix.
func TrimPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	return s[len(prefix):], true
}

// QueueSnapshot is a point-in-time copy of both queues.
type QueueSnapshot struct {
	Resolved     []*Branch `json:"resolved"`
	ReadyToMerge []*Branch `json:"readyToMerge"`
}
