package interfaces

import (
	"context"

	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/model"
)

// BranchQueue is a durable FIFO of branches keyed by (repository, id).
// Implementations are not synchronized; callers serialize access.
type BranchQueue interface {
	List(ctx context.Context) ([]*model.Branch, error)
	// Write replaces the stored branches. nil is a no-op.
	Write(ctx context.Context, branches []*model.Branch)
	Contains(ctx context.Context, repository, id string) (bool, error)
	Enqueue(ctx context.Context, branch *model.Branch) error
	// Dequeue returns nil when the queue is empty.
	Dequeue(ctx context.Context) (*model.Branch, error)
	Remove(ctx context.Context, repository, id string) error
	HasQueued(ctx context.Context) (bool, error)
}
