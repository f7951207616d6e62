package memory

import (
	"context"

	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/interfaces"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/model"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/repository"
)

// Queue is a BranchQueue kept in process memory. It does not survive restarts.
type Queue struct {
	branches []*model.Branch
}

var _ interfaces.BranchQueue = (*Queue)(nil)

// New creates a new in-memory queue
func New() *Queue {
	return &Queue{}
}

func (x *Queue) List(ctx context.Context) ([]*model.Branch, error) {
	if x.branches == nil {
		return []*model.Branch{}, nil
	}
	return repository.Clone(x.branches), nil
}

func (x *Queue) Write(ctx context.Context, branches []*model.Branch) {
	if branches == nil {
		return
	}
	x.branches = repository.Clone(branches)
}

func (x *Queue) Contains(ctx context.Context, repo, id string) (bool, error) {
	return repository.IndexOf(x.branches, repo, id) >= 0, nil
}

func (x *Queue) Enqueue(ctx context.Context, branch *model.Branch) error {
	if repository.IndexOf(x.branches, branch.Repository, branch.ID) >= 0 {
		return nil
	}
	v := *branch
	x.branches = append(x.branches, &v)
	return nil
}

func (x *Queue) Dequeue(ctx context.Context) (*model.Branch, error) {
	if len(x.branches) == 0 {
		return nil, nil
	}
	head := x.branches[0]
	x.branches = x.branches[1:]
	return head, nil
}

func (x *Queue) Remove(ctx context.Context, repo, id string) error {
	idx := repository.IndexOf(x.branches, repo, id)
	if idx < 0 {
		return nil
	}
	x.branches = append(x.branches[:idx:idx], x.branches[idx+1:]...)
	return nil
}

func (x *Queue) HasQueued(ctx context.Context) (bool, error) {
	return len(x.branches) > 0, nil
}
