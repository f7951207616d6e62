package usecase

import "context"

// Export unexported functions for testing
var (
	ResolvedBranchesQueryForTest = resolvedBranchesQuery
	ConflictMessageForTest       = conflictMessage
)

func (x *UseCase) ProcessNextForTest(ctx context.Context) {
	x.processNext(ctx)
}

func (x *UseCase) IsTaskReadyForTest(ctx context.Context, taskID string) (bool, error) {
	return x.isTaskReady(ctx, taskID)
}

func (x *UseCase) ResolveRecipientsForTest(ctx context.Context, users []string, fieldPath string) []string {
	return x.resolveRecipients(ctx, users, fieldPath)
}

// WakeForTest reports whether a wake signal is pending and consumes it.
func (x *UseCase) WakeForTest() bool {
	select {
	case <-x.wake:
		return true
	default:
		return false
	}
}
