package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidDirectoryConfigs indicates invalid directory settings
	// (for example, missing base URL, zero timeout or search limit).
	ErrInvalidDirectoryConfigs = errors.New("invalid directory configuration")
	// ErrInvalidPlayerConfigs indicates invalid player settings
	// (for example, empty binary name or a non-positive poll interval).
	ErrInvalidPlayerConfigs = errors.New("invalid player configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
