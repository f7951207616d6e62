package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/model"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/infra"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/repository/memory"
	"github.com/m-mizutani/gt"
)

// unreadableQueue fails the next List call once failNext is set.
type unreadableQueue struct {
	*memory.Queue
	failNext bool
}

func (x *unreadableQueue) List(ctx context.Context) ([]*model.Branch, error) {
	if x.failNext {
		x.failNext = false
		return nil, errors.New("disk error")
	}
	return x.Queue.List(ctx)
}

func TestOnEventResolved(t *testing.T) {
	ctx := context.Background()

	t.Run("untracked branch is queued with event fields", func(t *testing.T) {
		env := newTestEnv(newConfig())
		branch := newBranch("42", "/task-42")

		env.uc.OnEvent(ctx, attrEvent(t, branch, "status", "ready"))

		snap := snapshot(t, env.uc)
		gt.A(t, snap.Resolved).Length(1)
		gt.V(t, *snap.Resolved[0]).Equal(*branch)
		gt.True(t, env.uc.WakeForTest())
	})

	t.Run("attribute name and value are case insensitive", func(t *testing.T) {
		env := newTestEnv(newConfig())
		env.uc.OnEvent(ctx, attrEvent(t, newBranch("42", "/task-42"), "STATUS", " Ready "))
		gt.A(t, snapshot(t, env.uc).Resolved).Length(1)
	})

	t.Run("enqueue is idempotent", func(t *testing.T) {
		env := newTestEnv(newConfig())
		branch := newBranch("42", "/task-42")
		env.resolve(t, branch)
		env.resolve(t, branch)
		gt.A(t, snapshot(t, env.uc).Resolved).Length(1)
	})

	t.Run("other repository is dropped", func(t *testing.T) {
		env := newTestEnv(newConfig())
		branch := newBranch("42", "/task-42")
		branch.Repository = "other"
		env.uc.OnEvent(ctx, attrEvent(t, branch, "status", "ready"))
		gt.A(t, snapshot(t, env.uc).Resolved).Length(0)
		gt.False(t, env.uc.WakeForTest())
	})

	t.Run("repository matches case insensitively", func(t *testing.T) {
		env := newTestEnv(newConfig())
		branch := newBranch("42", "/task-42")
		branch.Repository = "MyRepo"
		env.uc.OnEvent(ctx, attrEvent(t, branch, "status", "ready"))
		gt.A(t, snapshot(t, env.uc).Resolved).Length(1)
	})

	t.Run("branch without prefix is dropped", func(t *testing.T) {
		env := newTestEnv(newConfig())
		env.uc.OnEvent(ctx, attrEvent(t, newBranch("42", "/feature-42"), "status", "ready"))
		gt.A(t, snapshot(t, env.uc).Resolved).Length(0)
	})

	t.Run("prefix is checked on the short name", func(t *testing.T) {
		env := newTestEnv(newConfig())
		env.uc.OnEvent(ctx, attrEvent(t, newBranch("42", "/main/TASK-42"), "status", "ready"))
		gt.A(t, snapshot(t, env.uc).Resolved).Length(1)
	})

	t.Run("other attribute is dropped", func(t *testing.T) {
		env := newTestEnv(newConfig())
		env.uc.OnEvent(ctx, attrEvent(t, newBranch("42", "/task-42"), "reviewer", "ready"))
		gt.A(t, snapshot(t, env.uc).Resolved).Length(0)
	})

	t.Run("branch ready to merge is not queued again", func(t *testing.T) {
		env := newTestEnv(newConfig())
		branch := newBranch("42", "/task-42")
		env.resolve(t, branch)
		env.uc.ProcessNextForTest(ctx)
		gt.A(t, snapshot(t, env.uc).ReadyToMerge).Length(1)

		env.resolve(t, branch)
		snap := snapshot(t, env.uc)
		gt.A(t, snap.Resolved).Length(0)
		gt.A(t, snap.ReadyToMerge).Length(1)
	})
}

func TestOnEventReopened(t *testing.T) {
	ctx := context.Background()

	t.Run("resolved branch is removed", func(t *testing.T) {
		env := newTestEnv(newConfig())
		branch := newBranch("42", "/task-42")
		env.resolve(t, branch)

		env.uc.OnEvent(ctx, attrEvent(t, branch, "status", "in-progress"))

		snap := snapshot(t, env.uc)
		gt.A(t, snap.Resolved).Length(0)
		gt.A(t, snap.ReadyToMerge).Length(0)
	})

	t.Run("ready to merge branch is removed", func(t *testing.T) {
		env := newTestEnv(newConfig())
		branch := newBranch("42", "/task-42")
		env.resolve(t, branch)
		env.uc.ProcessNextForTest(ctx)

		env.uc.OnEvent(ctx, attrEvent(t, branch, "status", "in-progress"))
		gt.A(t, snapshot(t, env.uc).ReadyToMerge).Length(0)
	})
}

func TestOnEventMerged(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(newConfig())

	done := newBranch("1", "/task-1")
	pending := newBranch("2", "/task-2")
	env.resolve(t, done)
	env.uc.ProcessNextForTest(ctx)
	env.resolve(t, pending)

	env.uc.OnEvent(ctx, attrEvent(t, done, "status", "MERGED"))
	env.uc.OnEvent(ctx, attrEvent(t, pending, "status", "merged"))

	snap := snapshot(t, env.uc)
	gt.A(t, snap.Resolved).Length(0)
	gt.A(t, snap.ReadyToMerge).Length(0)
}

func TestOnEventTrunkAdvanced(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) *testEnv {
		env := newTestEnv(newConfig())
		for _, b := range []*model.Branch{newBranch("1", "/task-1"), newBranch("2", "/task-2")} {
			env.resolve(t, b)
			env.uc.ProcessNextForTest(ctx)
		}
		env.resolve(t, newBranch("3", "/task-3"))
		env.uc.WakeForTest()

		snap := snapshot(t, env.uc)
		gt.V(t, ids(snap.ReadyToMerge)).Equal([]string{"1", "2"})
		gt.V(t, ids(snap.Resolved)).Equal([]string{"3"})
		return env
	}

	t.Run("ready branches go back to resolved in order", func(t *testing.T) {
		env := setup(t)
		env.uc.OnEvent(ctx, trunkEvent(t, "myrepo", "br:/main"))

		snap := snapshot(t, env.uc)
		gt.V(t, ids(snap.Resolved)).Equal([]string{"3", "1", "2"})
		gt.A(t, snap.ReadyToMerge).Length(0)
		gt.True(t, env.uc.WakeForTest())
	})

	t.Run("trunk name without leading slash", func(t *testing.T) {
		env := setup(t)
		env.uc.OnEvent(ctx, trunkEvent(t, "MYREPO", "main"))
		gt.A(t, snapshot(t, env.uc).ReadyToMerge).Length(0)
	})

	t.Run("other branch is ignored", func(t *testing.T) {
		env := setup(t)
		env.uc.OnEvent(ctx, trunkEvent(t, "myrepo", "/main/task-9"))
		gt.A(t, snapshot(t, env.uc).ReadyToMerge).Length(2)
	})

	t.Run("other repository is ignored", func(t *testing.T) {
		env := setup(t)
		env.uc.OnEvent(ctx, trunkEvent(t, "other", "/main"))
		gt.A(t, snapshot(t, env.uc).ReadyToMerge).Length(2)
	})
}

func TestOnEventTrunkAdvancedKeepsOneQueue(t *testing.T) {
	ctx := context.Background()
	resolved := &unreadableQueue{Queue: memory.New()}
	env := newTestEnv(newConfig(), infra.WithResolvedQueue(resolved))

	for _, b := range []*model.Branch{newBranch("1", "/task-1"), newBranch("2", "/task-2")} {
		env.resolve(t, b)
		env.uc.ProcessNextForTest(ctx)
	}
	env.resolve(t, newBranch("3", "/task-3"))

	resolved.failNext = true
	env.uc.OnEvent(ctx, trunkEvent(t, "myrepo", "/main"))

	snap := snapshot(t, env.uc)
	gt.V(t, ids(snap.Resolved)).Equal([]string{"3"})
	gt.V(t, ids(snap.ReadyToMerge)).Equal([]string{"1", "2"})

	env.uc.OnEvent(ctx, trunkEvent(t, "myrepo", "/main"))
	snap = snapshot(t, env.uc)
	gt.V(t, ids(snap.Resolved)).Equal([]string{"3", "1", "2"})
	gt.A(t, snap.ReadyToMerge).Length(0)
}

func TestOnEventMalformed(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(newConfig())

	env.uc.OnEvent(ctx, []byte("{not json"))
	env.uc.OnEvent(ctx, []byte(`{"event":"branchAttributeChanged"}`))
	env.uc.OnEvent(ctx, []byte(`{"event":"codeReviewChanged","properties":{}}`))

	snap := snapshot(t, env.uc)
	gt.A(t, snap.Resolved).Length(0)
	gt.A(t, snap.ReadyToMerge).Length(0)
}
