package usecase

import (
	"context"
	"log/slog"

	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/model"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// TryMerge merges source into destination as a shelve to find out if there are manual conflicts.
// The merge is never committed and the shelve is always deleted.
func (x *UseCase) TryMerge(ctx context.Context, repository, source, destination string) (*model.MergeOutcome, error) {
	cp := x.clients.ControlPlane()

	result, err := cp.MergeToShelve(ctx, repository, source, destination)
	if result != nil && result.ChangesetNumber != 0 {
		shelveID := result.ChangesetNumber
		defer func() {
			if err := cp.DeleteShelve(ctx, repository, shelveID); err != nil {
				logging.From(ctx).Error("Unable to delete shelve",
					slog.Any("error", err),
					slog.Int("shelveId", shelveID),
					slog.String("repository", repository),
				)
			}
		}()
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to try merge",
			goerr.V("repository", repository),
			goerr.V("source", source),
			goerr.V("destination", destination),
		)
	}

	logging.From(ctx).Debug("Try merge finished",
		slog.String("source", source),
		slog.String("destination", destination),
		slog.String("status", string(result.Status)),
		slog.String("message", result.Message),
	)

	if result.Status.Succeeded() {
		return &model.MergeOutcome{Message: result.Message}, nil
	}

	return &model.MergeOutcome{
		HasManualConflicts: true,
		Message:            result.Message,
	}, nil
}
