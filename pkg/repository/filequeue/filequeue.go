// Package filequeue persists a BranchQueue as a JSON array file. Every mutation rewrites the whole file.
package filequeue

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/interfaces"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/model"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/repository"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/utils/logging"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

type Queue struct {
	path string
}

var _ interfaces.BranchQueue = (*Queue)(nil)

func New(path string) *Queue {
	return &Queue{path: filepath.Clean(path)}
}

func (x *Queue) Path() string {
	return x.path
}

func (x *Queue) List(ctx context.Context) ([]*model.Branch, error) {
	data, err := os.ReadFile(x.path)
	if os.IsNotExist(err) {
		return []*model.Branch{}, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read queued branches", goerr.V("path", x.path))
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []*model.Branch{}, nil
	}

	var branches []*model.Branch
	if err := json.Unmarshal(data, &branches); err != nil {
		return nil, goerr.Wrap(err, "failed to decode queued branches", goerr.V("path", x.path))
	}
	if branches == nil {
		branches = []*model.Branch{}
	}

	return branches, nil
}

// Write replaces the file content. Failures are logged and swallowed: the caller keeps running and the
// startup reconciliation recovers branches lost this way.
func (x *Queue) Write(ctx context.Context, branches []*model.Branch) {
	if branches == nil {
		return
	}

	if err := writeFileAtomic(x.path, branches); err != nil {
		logging.From(ctx).Error("Error writing the queued branches",
			slog.String("path", x.path),
			slog.Any("error", err),
		)
	}
}

func (x *Queue) Contains(ctx context.Context, repo, id string) (bool, error) {
	branches, err := x.List(ctx)
	if err != nil {
		return false, err
	}
	return repository.IndexOf(branches, repo, id) >= 0, nil
}

func (x *Queue) Enqueue(ctx context.Context, branch *model.Branch) error {
	branches, err := x.List(ctx)
	if err != nil {
		return err
	}
	if repository.IndexOf(branches, branch.Repository, branch.ID) >= 0 {
		return nil
	}

	x.Write(ctx, append(branches, branch))
	return nil
}

func (x *Queue) Dequeue(ctx context.Context) (*model.Branch, error) {
	branches, err := x.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(branches) == 0 {
		return nil, nil
	}

	x.Write(ctx, branches[1:])
	return branches[0], nil
}

func (x *Queue) Remove(ctx context.Context, repo, id string) error {
	branches, err := x.List(ctx)
	if err != nil {
		return err
	}

	idx := repository.IndexOf(branches, repo, id)
	if idx < 0 {
		return nil
	}

	x.Write(ctx, append(branches[:idx], branches[idx+1:]...))
	return nil
}

func (x *Queue) HasQueued(ctx context.Context) (bool, error) {
	branches, err := x.List(ctx)
	if err != nil {
		return false, err
	}
	return len(branches) > 0, nil
}

// writeFileAtomic replaces path with the JSON encoding of v via a temp file in the same directory.
func writeFileAtomic(path string, v any) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return goerr.Wrap(err, "failed to create queue directory", goerr.V("dir", dir))
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return goerr.Wrap(err, "failed to create temp file", goerr.V("dir", dir))
	}
	tmpName := tmp.Name()
	defer safe.Remove(tmpName)

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		safe.Close(tmp)
		return goerr.Wrap(err, "failed to encode branches", goerr.V("path", tmpName))
	}
	if err := tmp.Sync(); err != nil {
		safe.Close(tmp)
		return goerr.Wrap(err, "failed to sync temp file", goerr.V("path", tmpName))
	}
	if err := tmp.Close(); err != nil {
		return goerr.Wrap(err, "failed to close temp file", goerr.V("path", tmpName))
	}

	if err := os.Rename(tmpName, path); err != nil {
		return goerr.Wrap(err, "failed to replace queue file", goerr.V("path", path))
	}

	return nil
}
