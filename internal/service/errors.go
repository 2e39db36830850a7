package service

import "errors"

var (
	ErrNoStationKey    = errors.New("station has neither uuid nor stream url")
	ErrMissingResource = errors.New("missing service dependency")
	// ErrPlaySuperseded is returned by Play when a later Play, Stop or Close
	// was issued before this request reached the player.
	ErrPlaySuperseded = errors.New("playback request superseded")
)
