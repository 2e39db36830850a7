// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between clio and the
// radio-browser station directory.
//
// The primary abstraction is [DirectoryAdapter], which decouples the service
// layer from HTTP. The package ships a resty implementation
// ([NewDirectoryAdapter]) that also performs mirror discovery.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrTooManyRequests]
// for 429, [ErrServiceUnavailable] for 503).
package adapter

import (
	"context"

	"github.com/MKhiriev/clio/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/directory_adapter_mock.go -package=mock

// DirectoryAdapter defines communication with the radio-browser directory.
type DirectoryAdapter interface {
	// Discover resolves a random directory mirror and switches all subsequent
	// requests to it. On failure the adapter keeps its configured base URL and
	// the returned error wraps [ErrDiscoveryFailed]; callers treat it as a
	// warning.
	Discover(ctx context.Context) error

	// Search returns stations matching query, ordered by votes descending.
	// Returns [ErrEmptyQuery] for a blank term.
	Search(ctx context.Context, query models.SearchQuery) ([]models.Station, error)

	// RegisterClick reports a station play to the directory. Identifiers that
	// are not UUIDs are silently skipped.
	RegisterClick(ctx context.Context, stationUUID string) error

	// BaseURL returns the directory endpoint currently in use.
	BaseURL() string
}
