package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption       = goerr.New("invalid option")
	ErrValidationFailed    = goerr.New("validation failed")
	ErrInvalidEvent        = goerr.New("invalid event")
	ErrControlPlane        = goerr.New("control plane request failed")
	ErrReconnectInProgress = goerr.New("reconnection already in progress")
)
