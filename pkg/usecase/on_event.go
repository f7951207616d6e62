package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/interfaces"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/model"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/repository"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/utils/errutil"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/utils/logging"
)

// OnEvent handles one message of the event stream. Malformed and unknown events are logged and dropped.
func (x *UseCase) OnEvent(ctx context.Context, payload []byte) {
	ev, err := model.ParseEvent(payload)
	if err != nil {
		logging.From(ctx).Warn("Dropped malformed event", slog.Any("error", err))
		return
	}

	switch ev := ev.(type) {
	case *model.BranchAttributeChanged:
		x.onBranchAttributeChanged(ctx, ev)
	case *model.TrunkChangesetsAdvanced:
		x.onTrunkChangesetsAdvanced(ctx, ev)
	case *model.IgnoredEvent:
		logging.From(ctx).Debug("Ignored event", slog.String("event", ev.Kind))
	}
}

// isRelevantBranch filters events by repository and branch prefix.
func (x *UseCase) isRelevantBranch(repository, branchFullName string) bool {
	if !strings.EqualFold(strings.TrimSpace(repository), strings.TrimSpace(x.cfg.Repository)) {
		return false
	}
	if x.cfg.BranchPrefix == "" {
		return true
	}
	_, ok := model.TrimPrefixFold(model.ShortName(branchFullName), x.cfg.BranchPrefix)
	return ok
}

func (x *UseCase) onBranchAttributeChanged(ctx context.Context, ev *model.BranchAttributeChanged) {
	if !x.isRelevantBranch(ev.Repository, ev.BranchFullName) {
		return
	}
	attr := x.cfg.StatusAttribute
	if !strings.EqualFold(strings.TrimSpace(ev.AttributeName), strings.TrimSpace(attr.Name)) {
		return
	}

	logger := logging.From(ctx).With(
		slog.String("branch", ev.BranchFullName),
		slog.String("branchId", ev.BranchID),
		slog.String("value", ev.AttributeValue),
	)

	x.mu.Lock()
	defer x.mu.Unlock()

	resolved := x.clients.ResolvedQueue()
	ready := x.clients.ReadyToMergeQueue()

	switch {
	case model.EqualValue(ev.AttributeValue, attr.MergedValue):
		if err := ready.Remove(ctx, ev.Repository, ev.BranchID); err != nil {
			errutil.HandleError(ctx, "failed to remove merged branch", err)
		}
		if err := resolved.Remove(ctx, ev.Repository, ev.BranchID); err != nil {
			errutil.HandleError(ctx, "failed to remove merged branch", err)
		}
		x.markLeft(ev.Repository, ev.BranchID)
		logger.Info("Branch merged, no longer tracked")

	case model.EqualValue(ev.AttributeValue, attr.ResolvedValue):
		for _, q := range []interfaces.BranchQueue{resolved, ready} {
			found, err := q.Contains(ctx, ev.Repository, ev.BranchID)
			if err != nil {
				errutil.HandleError(ctx, "failed to check tracked branches", err)
				return
			}
			if found {
				logger.Debug("Branch already tracked")
				return
			}
		}

		if err := resolved.Enqueue(ctx, ev.Branch()); err != nil {
			errutil.HandleError(ctx, "failed to enqueue resolved branch", err)
			return
		}
		logger.Info("Branch resolved, queued to try merge")
		x.notifyWorker()

	default:
		if err := resolved.Remove(ctx, ev.Repository, ev.BranchID); err != nil {
			errutil.HandleError(ctx, "failed to remove reopened branch", err)
		}
		if err := ready.Remove(ctx, ev.Repository, ev.BranchID); err != nil {
			errutil.HandleError(ctx, "failed to remove reopened branch", err)
		}
		x.markLeft(ev.Repository, ev.BranchID)
		logger.Debug("Branch status changed, no longer tracked")
	}
}

func (x *UseCase) onTrunkChangesetsAdvanced(ctx context.Context, ev *model.TrunkChangesetsAdvanced) {
	if !strings.EqualFold(strings.TrimSpace(ev.Repository), strings.TrimSpace(x.cfg.Repository)) {
		return
	}
	if model.NormalizeBranchName(ev.BranchFullName) != model.NormalizeBranchName(x.cfg.TrunkBranch) {
		return
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	resolvedQueue := x.clients.ResolvedQueue()
	readyQueue := x.clients.ReadyToMergeQueue()

	ready, err := readyQueue.List(ctx)
	if err != nil {
		errutil.HandleError(ctx, "failed to read ready to merge branches", err)
		return
	}
	if len(ready) == 0 {
		return
	}
	resolved, err := resolvedQueue.List(ctx)
	if err != nil {
		errutil.HandleError(ctx, "failed to read resolved branches", err)
		return
	}

	for _, branch := range ready {
		if repository.IndexOf(resolved, branch.Repository, branch.ID) < 0 {
			resolved = append(resolved, branch)
		}
	}
	resolvedQueue.Write(ctx, resolved)
	readyQueue.Write(ctx, []*model.Branch{})

	logging.From(ctx).Info("Trunk branch changed, merging ready branches again",
		slog.String("trunk", ev.BranchFullName),
		slog.Int("branches", len(ready)),
	)
	x.notifyWorker()
}
