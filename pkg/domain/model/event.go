package model

import (
	"encoding/json"

	"github.com/JesusMG/conflictsdetector-mergebot/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const (
	TriggerBranchAttributeChanged = "branchAttributeChanged"
	TriggerNewChangesets          = "newChangesets"
)

// Triggers are the event types the bot registers for.
var Triggers = []string{
	TriggerBranchAttributeChanged,
	TriggerNewChangesets,
}

// Event is one of *BranchAttributeChanged, *TrunkChangesetsAdvanced or *IgnoredEvent.
type Event interface {
	eventKind() string
}

type BranchAttributeChanged struct {
	Repository     string `json:"repository"`
	BranchID       string `json:"branchId"`
	BranchFullName string `json:"branchFullName"`
	BranchOwner    string `json:"branchOwner"`
	BranchComment  string `json:"branchComment"`
	AttributeName  string `json:"attributeName"`
	AttributeValue string `json:"attributeValue"`
}

func (x *BranchAttributeChanged) eventKind() string { return TriggerBranchAttributeChanged }

// Branch builds the tracked branch described by the event.
func (x *BranchAttributeChanged) Branch() *Branch {
	return &Branch{
		Repository: x.Repository,
		ID:         x.BranchID,
		FullName:   x.BranchFullName,
		Owner:      x.BranchOwner,
		Comment:    x.BranchComment,
	}
}

// TrunkChangesetsAdvanced is sent when new changesets land on a branch.
type TrunkChangesetsAdvanced struct {
	Repository     string `json:"repository"`
	BranchFullName string `json:"branch"`
}

func (x *TrunkChangesetsAdvanced) eventKind() string { return TriggerNewChangesets }

type IgnoredEvent struct {
	Kind string
}

func (x *IgnoredEvent) eventKind() string { return x.Kind }

type envelope struct {
	Event      string          `json:"event"`
	Properties json.RawMessage `json:"properties"`
}

// ParseEvent decodes a raw event stream message. Unknown event kinds yield *IgnoredEvent.
func ParseEvent(payload []byte) (Event, error) {
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidEvent, "failed to decode event envelope",
			goerr.V("payload", string(payload)),
			goerr.V("cause", err.Error()),
		)
	}

	var ev Event
	switch env.Event {
	case TriggerBranchAttributeChanged:
		ev = &BranchAttributeChanged{}
	case TriggerNewChangesets:
		ev = &TrunkChangesetsAdvanced{}
	default:
		return &IgnoredEvent{Kind: env.Event}, nil
	}

	if len(env.Properties) == 0 || string(env.Properties) == "null" {
		return nil, goerr.Wrap(types.ErrInvalidEvent, "event has no properties", goerr.V("event", env.Event))
	}
	if err := json.Unmarshal(env.Properties, ev); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidEvent, "failed to decode event properties",
			goerr.V("event", env.Event),
			goerr.V("cause", err.Error()),
		)
	}

	return ev, nil
}
