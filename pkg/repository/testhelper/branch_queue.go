package testhelper

import (
	"context"
	"fmt"
	"testing"

	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/interfaces"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

// NewQueue returns an empty queue for one test case
type NewQueue func(t *testing.T) interfaces.BranchQueue

// TestAll runs all test cases for BranchQueue
// This is the main entry point for testing any BranchQueue implementation
func TestAll(t *testing.T, newQueue NewQueue) {
	t.Run("EmptyQueue", func(t *testing.T) {
		TestEmptyQueue(t, newQueue(t))
	})
	t.Run("FIFOOrder", func(t *testing.T) {
		TestFIFOOrder(t, newQueue(t))
	})
	t.Run("IdempotentEnqueue", func(t *testing.T) {
		TestIdempotentEnqueue(t, newQueue(t))
	})
	t.Run("Remove", func(t *testing.T) {
		TestRemove(t, newQueue(t))
	})
	t.Run("WriteReplaces", func(t *testing.T) {
		TestWriteReplaces(t, newQueue(t))
	})
	t.Run("IdentityIsRepositoryAndID", func(t *testing.T) {
		TestIdentityIsRepositoryAndID(t, newQueue(t))
	})
}

func newBranch(repo string, id int) *model.Branch {
	return &model.Branch{
		Repository: repo,
		ID:         fmt.Sprintf("%d", id),
		FullName:   fmt.Sprintf("/main/task-%d", id),
		Owner:      "alice",
		Comment:    fmt.Sprintf("task %d", id),
	}
}

// TestEmptyQueue checks that an untouched queue is empty and dequeue yields nil instead of an error
func TestEmptyQueue(t *testing.T, q interfaces.BranchQueue) {
	ctx := context.Background()

	branches, err := q.List(ctx)
	gt.NoError(t, err)
	gt.A(t, branches).Length(0)

	gt.False(t, gt.R1(q.HasQueued(ctx)).NoError(t))

	head, err := q.Dequeue(ctx)
	gt.NoError(t, err)
	gt.V(t, head).Equal((*model.Branch)(nil))

	gt.NoError(t, q.Remove(ctx, "codice", "1"))
}

func TestFIFOOrder(t *testing.T, q interfaces.BranchQueue) {
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		gt.NoError(t, q.Enqueue(ctx, newBranch("codice", i)))
	}
	gt.True(t, gt.R1(q.HasQueued(ctx)).NoError(t))

	for i := 1; i <= 3; i++ {
		head := gt.R1(q.Dequeue(ctx)).NoError(t)
		gt.V(t, head.ID).Equal(fmt.Sprintf("%d", i))
		gt.V(t, head.FullName).Equal(fmt.Sprintf("/main/task-%d", i))
		gt.V(t, head.Owner).Equal("alice")
	}

	head := gt.R1(q.Dequeue(ctx)).NoError(t)
	gt.V(t, head).Equal((*model.Branch)(nil))
	gt.False(t, gt.R1(q.HasQueued(ctx)).NoError(t))
}

func TestIdempotentEnqueue(t *testing.T, q interfaces.BranchQueue) {
	ctx := context.Background()

	gt.NoError(t, q.Enqueue(ctx, newBranch("codice", 1)))
	gt.NoError(t, q.Enqueue(ctx, newBranch("codice", 2)))

	renamed := newBranch("codice", 1)
	renamed.FullName = "/main/task-1-renamed"
	gt.NoError(t, q.Enqueue(ctx, renamed))

	branches := gt.R1(q.List(ctx)).NoError(t)
	gt.A(t, branches).Length(2)
	gt.V(t, branches[0].FullName).Equal("/main/task-1")
	gt.V(t, branches[1].ID).Equal("2")
}

func TestRemove(t *testing.T, q interfaces.BranchQueue) {
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		gt.NoError(t, q.Enqueue(ctx, newBranch("codice", i)))
	}

	gt.NoError(t, q.Remove(ctx, "codice", "2"))
	gt.False(t, gt.R1(q.Contains(ctx, "codice", "2")).NoError(t))
	gt.True(t, gt.R1(q.Contains(ctx, "codice", "1")).NoError(t))
	gt.True(t, gt.R1(q.Contains(ctx, "codice", "3")).NoError(t))

	// absent entry
	gt.NoError(t, q.Remove(ctx, "codice", "42"))

	branches := gt.R1(q.List(ctx)).NoError(t)
	gt.A(t, branches).Length(2)
	gt.V(t, branches[0].ID).Equal("1")
	gt.V(t, branches[1].ID).Equal("3")

	gt.NoError(t, q.Remove(ctx, "codice", "1"))
	gt.NoError(t, q.Remove(ctx, "codice", "3"))
	gt.False(t, gt.R1(q.HasQueued(ctx)).NoError(t))
}

func TestWriteReplaces(t *testing.T, q interfaces.BranchQueue) {
	ctx := context.Background()

	gt.NoError(t, q.Enqueue(ctx, newBranch("codice", 1)))

	q.Write(ctx, []*model.Branch{newBranch("codice", 7), newBranch("codice", 8)})
	branches := gt.R1(q.List(ctx)).NoError(t)
	gt.A(t, branches).Length(2)
	gt.V(t, branches[0].ID).Equal("7")
	gt.V(t, branches[1].ID).Equal("8")

	// nil never clears
	q.Write(ctx, nil)
	gt.A(t, gt.R1(q.List(ctx)).NoError(t)).Length(2)
}

func TestIdentityIsRepositoryAndID(t *testing.T, q interfaces.BranchQueue) {
	ctx := context.Background()

	gt.NoError(t, q.Enqueue(ctx, newBranch("codice", 1)))
	gt.NoError(t, q.Enqueue(ctx, newBranch("other", 1)))

	gt.A(t, gt.R1(q.List(ctx)).NoError(t)).Length(2)

	gt.NoError(t, q.Remove(ctx, "other", "1"))
	gt.True(t, gt.R1(q.Contains(ctx, "codice", "1")).NoError(t))
	gt.False(t, gt.R1(q.Contains(ctx, "other", "1")).NoError(t))
}
