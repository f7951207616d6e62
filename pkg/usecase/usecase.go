package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/interfaces"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/model"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/infra"
)

const (
	DefaultPollInterval = 10 * time.Second
	DefaultRequeueDelay = 2 * time.Second
)

type UseCase struct {
	clients *infra.Clients
	cfg     *model.BotConfig
	botName string

	pollInterval time.Duration
	requeueDelay time.Duration

	// mu guards both queues and inFlight
	mu       sync.Mutex
	inFlight *inFlightBranch
	wake     chan struct{}
}

// inFlightBranch is the branch dequeued by the worker. It is outside both queues
// until the worker is done, so events about it are recorded here.
type inFlightBranch struct {
	repository string
	id         string
	// left set when an event reported the branch is no longer resolved
	left bool
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithBotName sets the name used to upload merge reports.
func WithBotName(name string) Option {
	return func(x *UseCase) {
		x.botName = name
	}
}

// WithPollInterval sets the longest time the worker sleeps on an empty queue.
func WithPollInterval(d time.Duration) Option {
	return func(x *UseCase) {
		x.pollInterval = d
	}
}

// WithRequeueDelay sets the pause after a branch is put back or failed.
func WithRequeueDelay(d time.Duration) Option {
	return func(x *UseCase) {
		x.requeueDelay = d
	}
}

func New(clients *infra.Clients, cfg *model.BotConfig, options ...Option) *UseCase {
	uc := &UseCase{
		clients:      clients,
		cfg:          cfg,
		pollInterval: DefaultPollInterval,
		requeueDelay: DefaultRequeueDelay,
		wake:         make(chan struct{}, 1),
	}
	for _, opt := range options {
		opt(uc)
	}
	return uc
}

// notifyWorker never blocks; a pending signal is enough.
func (x *UseCase) notifyWorker() {
	select {
	case x.wake <- struct{}{}:
	default:
	}
}

// markLeft records that the in-flight branch left the resolved state. Caller holds mu.
func (x *UseCase) markLeft(repository, id string) {
	if x.inFlight != nil && x.inFlight.repository == repository && x.inFlight.id == id {
		x.inFlight.left = true
	}
}

// hasLeft reports whether the in-flight branch left the resolved state. Caller holds mu.
func (x *UseCase) hasLeft() bool {
	return x.inFlight != nil && x.inFlight.left
}

func (x *UseCase) hasLeftLocked() bool {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.hasLeft()
}

func (x *UseCase) clearInFlight() {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.inFlight = nil
}

// sleep waits d and returns false if ctx is done first.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (x *UseCase) QueueSnapshot(ctx context.Context) (*model.QueueSnapshot, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	resolved, err := x.clients.ResolvedQueue().List(ctx)
	if err != nil {
		return nil, err
	}
	ready, err := x.clients.ReadyToMergeQueue().List(ctx)
	if err != nil {
		return nil, err
	}

	return &model.QueueSnapshot{
		Resolved:     resolved,
		ReadyToMerge: ready,
	}, nil
}
