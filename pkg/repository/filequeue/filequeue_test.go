package filequeue_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/interfaces"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/model"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/repository/filequeue"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/repository/testhelper"
	"github.com/m-mizutani/gt"
)

func TestFileBranchQueue(t *testing.T) {
	testhelper.TestAll(t, func(t *testing.T) interfaces.BranchQueue {
		return filequeue.New(filepath.Join(t.TempDir(), "queues", "bot.resolved.json"))
	})
}

func TestPersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "bot.resolved.json")

	q1 := filequeue.New(path)
	gt.NoError(t, q1.Enqueue(ctx, &model.Branch{Repository: "codice", ID: "1", FullName: "/main/task-1", Owner: "alice"}))
	gt.NoError(t, q1.Enqueue(ctx, &model.Branch{Repository: "codice", ID: "2", FullName: "/main/task-2"}))

	q2 := filequeue.New(path)
	branches := gt.R1(q2.List(ctx)).NoError(t)
	gt.A(t, branches).Length(2)
	gt.V(t, branches[0].ID).Equal("1")
	gt.V(t, branches[0].Owner).Equal("alice")
	gt.V(t, branches[1].FullName).Equal("/main/task-2")

	// no temp files are left behind
	entries := gt.R1(os.ReadDir(filepath.Dir(path))).NoError(t)
	gt.A(t, entries).Length(1)
}

func TestListMissingAndEmptyFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	missing := filequeue.New(filepath.Join(dir, "missing.json"))
	gt.A(t, gt.R1(missing.List(ctx)).NoError(t)).Length(0)
	gt.False(t, gt.R1(missing.HasQueued(ctx)).NoError(t))

	emptyPath := filepath.Join(dir, "empty.json")
	gt.NoError(t, os.WriteFile(emptyPath, []byte("  \n"), 0o644))
	gt.A(t, gt.R1(filequeue.New(emptyPath).List(ctx)).NoError(t)).Length(0)
}

func TestCorruptFileIsNotOverwritten(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "corrupt.json")
	gt.NoError(t, os.WriteFile(path, []byte("[{"), 0o644))

	q := filequeue.New(path)
	_, err := q.List(ctx)
	gt.Error(t, err)

	gt.Error(t, q.Enqueue(ctx, &model.Branch{Repository: "codice", ID: "1"}))

	data := gt.R1(os.ReadFile(path)).NoError(t)
	gt.V(t, string(data)).Equal("[{")
}

func TestWriteFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	// parent "directory" is a regular file, so the write cannot succeed
	blocker := filepath.Join(dir, "blocker")
	gt.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	q := filequeue.New(filepath.Join(blocker, "bot.resolved.json"))
	q.Write(ctx, []*model.Branch{{Repository: "codice", ID: "1"}})
}

func TestWriteNilKeepsContent(t *testing.T) {
	ctx := context.Background()
	q := filequeue.New(filepath.Join(t.TempDir(), "bot.json"))
	gt.NoError(t, q.Enqueue(ctx, &model.Branch{Repository: "codice", ID: "1"}))

	q.Write(ctx, nil)
	gt.A(t, gt.R1(q.List(ctx)).NoError(t)).Length(1)

	q.Write(ctx, []*model.Branch{})
	gt.A(t, gt.R1(q.List(ctx)).NoError(t)).Length(0)
}
