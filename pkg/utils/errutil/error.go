package errutil

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JesusMG/conflictsdetector-mergebot/pkg/utils/logging"
	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
)

// HandleError logs err and reports it to Sentry when a Sentry client is configured.
// goerr values are sent as extras.
func HandleError(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}

	attrs := []any{slog.Any("error", err)}

	hub := sentry.CurrentHub().Clone()
	if hub.Client() != nil {
		hub.ConfigureScope(func(scope *sentry.Scope) {
			scope.SetTag("message", msg)
			if goErr := goerr.Unwrap(err); goErr != nil {
				for k, v := range goErr.Values() {
					scope.SetExtra(fmt.Sprintf("%v", k), v)
				}
			}
		})
		if evID := hub.CaptureException(err); evID != nil {
			attrs = append(attrs, slog.String("sentry.EventID", string(*evID)))
		}
	}

	logging.From(ctx).Error(msg, attrs...)
}
