package server

import (
	"context"

	"github.com/JesusMG/conflictsdetector-mergebot/pkg/utils/logging"
)

// DetachContext returns a background context carrying the logger, request ID and
// time function of ctx. Pushed events are handled on it after the response is written.
func DetachContext(ctx context.Context) context.Context {
	bgCtx := logging.With(context.Background(), logging.From(ctx))
	return logging.InheritContextValues(bgCtx, ctx)
}
