package player

import "context"

// Notifier receives playback state changes. Implementations must not block:
// they are called from the controller's control loop.
type Notifier interface {
	// Status reports a human readable status line.
	Status(message string)
	// NowPlaying reports the current station and track text. An empty track
	// means the track is unknown or playback has ended.
	NowPlaying(station, track string)
}

// Launcher starts decoder subprocesses.
type Launcher interface {
	// Launch starts a decoder for streamURL exposing its IPC endpoint at
	// socketPath. The returned error describes a start failure.
	Launch(streamURL, socketPath string) (Process, error)
}

// Process is a running decoder.
type Process interface {
	// Wait blocks until the process exits. It returns nil for a clean exit,
	// an error wrapping [ErrAbnormalExit] for a non-zero exit status and any
	// other error for a runtime failure. Wait is called exactly once.
	Wait() error
	// Terminate asks the process to exit gracefully.
	Terminate() error
}

// PropertyRequester reads one decoder property over IPC.
type PropertyRequester interface {
	RequestProperty(ctx context.Context, address, name string) (any, error)
}
