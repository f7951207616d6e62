package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/model"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/repository"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/utils/errutil"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

type processResult int

const (
	// processDone means the branch left the resolved queue for good or moved to ready to merge
	processDone processResult = iota
	processRequeue
	processConflict
)

type step int

const (
	stepIdle step = iota
	stepNext
	stepDelay
)

// ProcessBranches runs the worker loop until ctx is done.
func (x *UseCase) ProcessBranches(ctx context.Context) error {
	logging.From(ctx).Info("Start processing branches",
		slog.Duration("pollInterval", x.pollInterval),
		slog.Duration("requeueDelay", x.requeueDelay),
	)

	for ctx.Err() == nil {
		switch x.processNext(ctx) {
		case stepIdle:
			select {
			case <-ctx.Done():
			case <-x.wake:
			case <-time.After(x.pollInterval):
			}
		case stepDelay:
			sleep(ctx, x.requeueDelay)
		}
	}

	logging.From(ctx).Info("Stop processing branches")
	return nil
}

// processNext handles the head of the resolved queue and tells the loop how to continue.
func (x *UseCase) processNext(ctx context.Context) step {
	branch, err := x.nextBranch(ctx)
	if err != nil {
		errutil.HandleError(ctx, "failed to read resolved branches", err)
		return stepIdle
	}
	if branch == nil {
		return stepIdle
	}
	defer x.clearInFlight()

	ctx = logging.With(ctx, logging.From(ctx).With(
		slog.String("branch", branch.FullName),
		slog.String("branchId", branch.ID),
	))

	result, err := x.processBranch(ctx, branch)
	if err != nil {
		errutil.HandleError(ctx, "failed to process branch", err)
		result = processRequeue
	}

	switch result {
	case processRequeue:
		x.requeue(ctx, branch)
		return stepDelay
	case processConflict:
		return stepDelay
	default:
		return stepNext
	}
}

func (x *UseCase) nextBranch(ctx context.Context) (*model.Branch, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	branch, err := x.clients.ResolvedQueue().Dequeue(ctx)
	if err != nil || branch == nil {
		return nil, err
	}
	x.inFlight = &inFlightBranch{repository: branch.Repository, id: branch.ID}
	return branch, nil
}

// requeue puts branch back to the resolved queue unless it was marked ready to merge
// or left the resolved state meanwhile.
func (x *UseCase) requeue(ctx context.Context, branch *model.Branch) {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.hasLeft() {
		logging.From(ctx).Info("Branch is no longer resolved, not queued again")
		return
	}

	found, err := x.clients.ReadyToMergeQueue().Contains(ctx, branch.Repository, branch.ID)
	if err != nil {
		errutil.HandleError(ctx, "failed to check ready to merge branches", err)
		return
	}
	if found {
		return
	}
	if err := x.clients.ResolvedQueue().Enqueue(ctx, branch); err != nil {
		errutil.HandleError(ctx, "failed to enqueue branch again", err)
	}
}

func (x *UseCase) processBranch(ctx context.Context, branch *model.Branch) (processResult, error) {
	logger := logging.From(ctx)

	current, err := x.refreshBranch(ctx, branch)
	if err != nil {
		return processRequeue, err
	}
	if current == nil {
		logger.Info("Branch no longer exists, dropped")
		return processDone, nil
	}
	branch = current

	taskID, ok := model.TrimPrefixFold(branch.ShortName(), x.cfg.BranchPrefix)
	if !ok {
		logger.Warn("Branch name does not start with the configured prefix, dropped",
			slog.String("prefix", x.cfg.BranchPrefix))
		return processDone, nil
	}

	ready, err := x.isTaskReady(ctx, taskID)
	if err != nil {
		return processRequeue, err
	}
	if !ready {
		logger.Debug("Task is not ready yet", slog.String("task", taskID))
		return processRequeue, nil
	}

	outcome, err := x.TryMerge(ctx, branch.Repository, branch.FullName, x.cfg.TrunkBranch)
	if err != nil {
		return processRequeue, err
	}

	if outcome.HasManualConflicts {
		x.onConflict(ctx, branch, taskID, outcome)
		return processConflict, nil
	}

	x.onMergeable(ctx, branch, outcome)
	return processDone, nil
}

// refreshBranch fetches the branch again by id since it may have been renamed. nil means it's gone.
func (x *UseCase) refreshBranch(ctx context.Context, branch *model.Branch) (*model.Branch, error) {
	query := fmt.Sprintf("branch where id=%s", branch.ID)
	found, err := x.clients.ControlPlane().FindBranches(ctx, branch.Repository, query)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to refresh branch", goerr.V("id", branch.ID))
	}
	if len(found) == 0 {
		return nil, nil
	}

	refreshed := *branch
	if found[0].FullName != "" {
		refreshed.FullName = found[0].FullName
	}
	return &refreshed, nil
}

func (x *UseCase) onMergeable(ctx context.Context, branch *model.Branch, outcome *model.MergeOutcome) {
	if x.markReadyToMerge(ctx, branch) {
		logging.From(ctx).Info("Branch can be merged without conflicts")
	}

	if x.cfg.Notifier != nil && x.cfg.Notifier.NotifyOnSuccess {
		x.notify(ctx, branch, fmt.Sprintf(
			"Branch %s has no merge conflicts with %s and it's ready to be merged.",
			branch.FullName, x.cfg.TrunkBranch))
	}

	x.sendMergeReport(ctx, branch, outcome)
}

func (x *UseCase) markReadyToMerge(ctx context.Context, branch *model.Branch) bool {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.hasLeft() {
		logging.From(ctx).Info("Branch is no longer resolved, not marked ready to merge")
		return false
	}

	// resolved again while the merge was running; that entry will be processed instead
	resolved, err := x.clients.ResolvedQueue().List(ctx)
	if err != nil {
		errutil.HandleError(ctx, "failed to read resolved branches", err)
		return false
	}
	if repository.IndexOf(resolved, branch.Repository, branch.ID) >= 0 {
		return false
	}

	if err := x.clients.ReadyToMergeQueue().Enqueue(ctx, branch); err != nil {
		errutil.HandleError(ctx, "failed to enqueue ready to merge branch", err)
		return false
	}
	return true
}

func (x *UseCase) onConflict(ctx context.Context, branch *model.Branch, taskID string, outcome *model.MergeOutcome) {
	cp := x.clients.ControlPlane()
	attr := x.cfg.StatusAttribute

	logging.From(ctx).Info("Branch has manual merge conflicts", slog.String("message", outcome.Message))

	if x.hasLeftLocked() {
		logging.From(ctx).Info("Branch is no longer resolved, conflicts not reported")
		return
	}

	if err := cp.UpdateBranchAttribute(ctx, branch.Repository, branch.FullName, attr.Name, attr.FailedValue); err != nil {
		errutil.HandleError(ctx, "failed to update branch attribute", err)
	}

	if tracker := x.cfg.IssueTracker; tracker != nil {
		if err := cp.SetIssueTrackerField(ctx, tracker.PlugName, tracker.ProjectKey, taskID,
			tracker.StatusField.Name, tracker.StatusField.FailedValue); err != nil {
			errutil.HandleError(ctx, "failed to update task status", err)
		}
	}

	x.notify(ctx, branch, conflictMessage(branch.FullName, x.cfg.TrunkBranch, outcome.Message, attr))

	x.sendMergeReport(ctx, branch, outcome)
}

func conflictMessage(branch, trunk, mergeMessage string, attr model.StatusAttributeConfig) string {
	return fmt.Sprintf(
		"Can't merge branch %s into %s automatically: %s\n\n"+
			"Please merge %s into %s manually to solve the conflicts. "+
			"Then set the attribute '%s' of branch %s to '%s' to check it again.",
		branch, trunk, mergeMessage,
		trunk, branch,
		attr.Name, branch, attr.ResolvedValue,
	)
}
