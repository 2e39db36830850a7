// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Favorite is a station the user bookmarked, stored locally.
type Favorite struct {
	Station
	CreatedAt time.Time `json:"created_at"`
}

// HistoryEntry records a single play request.
type HistoryEntry struct {
	ID          int64     `json:"id"`
	StationUUID string    `json:"stationuuid"`
	Name        string    `json:"name"`
	StreamURL   string    `json:"stream_url"`
	PlayedAt    time.Time `json:"played_at"`
}

// Station converts the entry back into a playable [Station].
func (h HistoryEntry) Station() Station {
	return Station{
		StationUUID: h.StationUUID,
		Name:        h.Name,
		URL:         h.StreamURL,
	}
}
