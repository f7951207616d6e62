package repository

import "github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/model"

// IndexOf returns the position of the branch with the given identity, or -1.
func IndexOf(branches []*model.Branch, repository, id string) int {
	for i, b := range branches {
		if b.Is(repository, id) {
			return i
		}
	}
	return -1
}

// Clone deep-copies a branch list so callers never share entries with a queue.
func Clone(branches []*model.Branch) []*model.Branch {
	if branches == nil {
		return nil
	}
	copied := make([]*model.Branch, len(branches))
	for i, b := range branches {
		v := *b
		copied[i] = &v
	}
	return copied
}
