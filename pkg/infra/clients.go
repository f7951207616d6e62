package infra

import (
	"net/http"

	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/interfaces"
	"github.com/JesusMG/conflictsdetector-mergebot/pkg/repository/memory"
)

type Clients struct {
	controlPlane interfaces.ControlPlane
	resolved     interfaces.BranchQueue
	readyToMerge interfaces.BranchQueue
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		resolved:     memory.New(),
		readyToMerge: memory.New(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) ControlPlane() interfaces.ControlPlane {
	return x.controlPlane
}
func (x *Clients) ResolvedQueue() interfaces.BranchQueue {
	return x.resolved
}
func (x *Clients) ReadyToMergeQueue() interfaces.BranchQueue {
	return x.readyToMerge
}

func WithControlPlane(client interfaces.ControlPlane) Option {
	return func(x *Clients) {
		x.controlPlane = client
	}
}

func WithResolvedQueue(q interfaces.BranchQueue) Option {
	return func(x *Clients) {
		x.resolved = q
	}
}

func WithReadyToMergeQueue(q interfaces.BranchQueue) Option {
	return func(x *Clients) {
		x.readyToMerge = q
	}
}
