package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/model"
)

type UseCase interface {
	LoadBranchesToProcess(ctx context.Context) error
	OnEvent(ctx context.Context, payload []byte)
	ProcessBranches(ctx context.Context) error
	QueueSnapshot(ctx context.Context) (*model.QueueSnapshot, error)
}
