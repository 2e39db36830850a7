package player

import "errors"

var (
	// ErrEndpointConnect is returned when the IPC socket cannot be dialed.
	ErrEndpointConnect = errors.New("ipc endpoint connect failed")
	// ErrEndpointTimeout is returned when no reply arrives within the IPC timeout.
	ErrEndpointTimeout = errors.New("ipc endpoint timed out")
	// ErrMalformedResponse is returned when a reply line is not valid JSON.
	ErrMalformedResponse = errors.New("malformed ipc response")

	ErrLaunch       = errors.New("decoder launch failed")
	ErrAbnormalExit = errors.New("decoder exited abnormally")

	ErrInvalidInput     = errors.New("station has no stream url")
	ErrControllerClosed = errors.New("player controller closed")
)
