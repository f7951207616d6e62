package usecase

import (
	"context"
	"log/slog"

	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/model"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/utils/errutil"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/utils/logging"
)

// sendMergeReport uploads the try merge result. It is skipped when the branch can't be found.
func (x *UseCase) sendMergeReport(ctx context.Context, branch *model.Branch, outcome *model.MergeOutcome) {
	cp := x.clients.ControlPlane()

	info, err := cp.GetBranch(ctx, branch.Repository, branch.FullName)
	if err != nil {
		logging.From(ctx).Warn("Failed to get branch info, merge report skipped", slog.Any("error", err))
		return
	}
	if info == nil {
		return
	}

	entry := model.MergeReportEntry{
		Type:  model.MergeReportTypeOK,
		Value: outcome.Message,
	}
	if outcome.HasManualConflicts {
		entry.Type = model.MergeReportTypeFailed
	}

	report := &model.MergeReport{
		Timestamp:    logging.CtxTime(ctx).UTC(),
		RepositoryID: info.RepositoryID,
		BranchID:     info.ID,
		Properties:   []model.MergeReportEntry{entry},
	}
	if err := cp.SendMergeReport(ctx, x.botName, report); err != nil {
		errutil.HandleError(ctx, "failed to send merge report", err)
	}
}
