package errutil_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/JesusMG/conflictsdetector-mergebot/pkg/utils/errutil"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func captureLog(buf *bytes.Buffer) context.Context {
	return logging.With(context.Background(), slog.New(slog.NewJSONHandler(buf, nil)))
}

func TestHandleError(t *testing.T) {
	t.Run("logs message and error", func(t *testing.T) {
		var buf bytes.Buffer
		errutil.HandleError(captureLog(&buf), "failed to notify", errors.New("connection refused"))

		gt.S(t, buf.String()).Contains("failed to notify")
		gt.S(t, buf.String()).Contains("connection refused")
		gt.S(t, buf.String()).Contains(`"level":"ERROR"`)
	})

	t.Run("logs goerr values", func(t *testing.T) {
		var buf bytes.Buffer
		err := goerr.New("unable to update attribute", goerr.V("status", 401))
		errutil.HandleError(captureLog(&buf), "failed to update branch attribute", err)

		gt.S(t, buf.String()).Contains("unable to update attribute")
	})

	t.Run("nil error is ignored", func(t *testing.T) {
		var buf bytes.Buffer
		errutil.HandleError(captureLog(&buf), "test message", nil)
		gt.V(t, buf.Len()).Equal(0)
	})
}
