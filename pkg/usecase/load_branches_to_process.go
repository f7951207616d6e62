package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/model"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/repository"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const queryTimeLayout = "2006-01-02T15:04:05Z"

// resolvedBranchesQuery finds branches touched during the last year whose status attribute is resolved.
func resolvedBranchesQuery(cfg *model.BotConfig, since string) string {
	return fmt.Sprintf(
		"branch where ( name like '%s%%' or name like '%s%%' ) "+
			"and date > '%s' and attribute='%s' and ( attrvalue='%s' or attrvalue='%s')",
		strings.ToLower(cfg.BranchPrefix),
		strings.ToUpper(cfg.BranchPrefix),
		since,
		cfg.StatusAttribute.Name,
		strings.ToLower(cfg.StatusAttribute.ResolvedValue),
		strings.ToUpper(cfg.StatusAttribute.ResolvedValue),
	)
}

// LoadBranchesToProcess adds resolved branches of the server that are not tracked yet to the resolved queue.
// It must run before ProcessBranches.
func (x *UseCase) LoadBranchesToProcess(ctx context.Context) error {
	since := logging.CtxTime(ctx).UTC().AddDate(-1, 0, 0).Format(queryTimeLayout)
	query := resolvedBranchesQuery(x.cfg, since)

	found, err := x.clients.ControlPlane().FindBranches(ctx, x.cfg.Repository, query)
	if err != nil {
		return goerr.Wrap(err, "failed to retrieve the list of branches to process", goerr.V("repository", x.cfg.Repository))
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	resolvedQueue := x.clients.ResolvedQueue()
	readyQueue := x.clients.ReadyToMergeQueue()

	resolved, err := resolvedQueue.List(ctx)
	if err != nil {
		return err
	}
	ready, err := readyQueue.List(ctx)
	if err != nil {
		return err
	}

	var added int
	for _, branch := range found {
		if repository.IndexOf(resolved, branch.Repository, branch.ID) >= 0 ||
			repository.IndexOf(ready, branch.Repository, branch.ID) >= 0 {
			continue
		}

		resolved = append(resolved, branch)
		added++
	}

	if added > 0 {
		resolvedQueue.Write(ctx, resolved)
		x.notifyWorker()
	}

	logging.From(ctx).Info("Loaded branches to process",
		slog.Int("found", len(found)),
		slog.Int("added", added),
		slog.Int("resolved", len(resolved)),
		slog.Int("readyToMerge", len(ready)),
	)

	return nil
}
