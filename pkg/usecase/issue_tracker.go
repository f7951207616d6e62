package usecase

import (
	"context"
	"log/slog"

	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/model"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// isTaskReady checks the task status in the issue tracker. Without an issue tracker every task is ready.
func (x *UseCase) isTaskReady(ctx context.Context, taskID string) (bool, error) {
	tracker := x.cfg.IssueTracker
	if tracker == nil {
		return true, nil
	}

	cp := x.clients.ControlPlane()
	logger := logging.From(ctx).With(slog.String("plug", tracker.PlugName), slog.String("task", taskID))

	connected, err := cp.IsIssueTrackerConnected(ctx, tracker.PlugName)
	if err != nil {
		logger.Warn("Issue tracker is not reachable", slog.Any("error", err))
		return false, nil
	}
	if !connected {
		logger.Warn("Issue tracker is not connected")
		return false, nil
	}

	status, err := cp.GetIssueTrackerField(ctx, tracker.PlugName, tracker.ProjectKey, taskID, tracker.StatusField.Name)
	if err != nil {
		return false, goerr.Wrap(err, "failed to get task status",
			goerr.V("plug", tracker.PlugName),
			goerr.V("project", tracker.ProjectKey),
			goerr.V("task", taskID),
		)
	}

	ready := model.EqualValue(status, tracker.StatusField.ResolvedValue)
	logger.Debug("Task status checked", slog.String("status", status), slog.Bool("ready", ready))
	return ready, nil
}
