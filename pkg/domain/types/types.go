package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	APIKey    string
	RequestID string
)

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x APIKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x APIKey) String() string {
	return "***********"
}

// Reveal returns the raw key. Only transports should call it.
func (x APIKey) Reveal() string {
	return string(x)
}
