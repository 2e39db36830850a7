// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// UnnamedStation is shown in place of an empty station name.
const UnnamedStation = "(unnamed station)"

// Station is a single radio-browser directory record.
//
// Only the fields the client renders or needs for playback are decoded; the
// directory returns many more.
type Station struct {
	StationUUID string `json:"stationuuid"`
	Name        string `json:"name"`
	Country     string `json:"country"`
	Codec       string `json:"codec"`
	Bitrate     int    `json:"bitrate"`
	URL         string `json:"url"`
	URLResolved string `json:"url_resolved"`
	Tags        string `json:"tags"`
	Votes       int    `json:"votes"`
}

// DisplayName returns the station name or [UnnamedStation] when it is blank.
func (s Station) DisplayName() string {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return UnnamedStation
	}
	return name
}

// StreamURL returns the URL to hand to the decoder: the resolved URL when the
// directory provides one, the raw URL otherwise.
func (s Station) StreamURL() string {
	if u := strings.TrimSpace(s.URLResolved); u != "" {
		return u
	}
	return strings.TrimSpace(s.URL)
}

// Label renders the station the way result lists show it, e.g.
// "Groove Salad (The United States Of America | MP3 | 128kbps)".
func (s Station) Label() string {
	parts := make([]string, 0, 3)
	if s.Country != "" {
		parts = append(parts, s.Country)
	}
	if s.Codec != "" {
		parts = append(parts, strings.ToUpper(s.Codec))
	}
	if s.Bitrate > 0 {
		parts = append(parts, fmt.Sprintf("%dkbps", s.Bitrate))
	}

	if len(parts) == 0 {
		return s.DisplayName()
	}
	return fmt.Sprintf("%s (%s)", s.DisplayName(), strings.Join(parts, " | "))
}

// Key identifies the station in local storage: its directory UUID, or the
// stream URL for stations without one.
func (s Station) Key() string {
	if id := strings.TrimSpace(s.StationUUID); id != "" {
		return id
	}
	return s.StreamURL()
}
