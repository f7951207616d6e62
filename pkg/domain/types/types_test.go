package types_test

import (
	"fmt"
	"log/slog"
	"testing"

	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestAPIKeyIsMasked(t *testing.T) {
	key := types.APIKey("014B6147A6391E9F")

	gt.V(t, key.String()).Equal("***********")
	gt.V(t, fmt.Sprintf("%s", key)).Equal("***********")
	gt.V(t, key.LogValue().Kind()).Equal(slog.KindString)
	gt.V(t, key.Reveal()).Equal("014B6147A6391E9F")
}

func TestNewRequestID(t *testing.T) {
	id1 := types.NewRequestID()
	id2 := types.NewRequestID()
	gt.V(t, id1).NotEqual(types.RequestID(""))
	gt.V(t, id1).NotEqual(id2)
}
