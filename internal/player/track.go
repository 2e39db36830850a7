package player

import (
	"sort"
	"strings"
)

// titleAliases are the stream-title keys decoders report for ICY streams, in
// lookup order.
var titleAliases = []string{"icy-title", "streamtitle", "icy_title", "stream_title"}

// Metadata is a normalized metadata snapshot: lower-cased keys mapped to
// trimmed, non-empty string values.
type Metadata map[string]string

// NormalizeMetadata builds a [Metadata] snapshot from the raw value the
// decoder reported. Anything that is not a string-keyed map yields an empty
// snapshot. Keys with non-string or blank values are dropped. When two keys
// differ only in case, the lexically smallest original key wins.
func NormalizeMetadata(raw any) Metadata {
	snapshot := make(Metadata)

	var values map[string]any
	switch m := raw.(type) {
	case map[string]any:
		values = m
	case map[string]string:
		values = make(map[string]any, len(m))
		for k, v := range m {
			values[k] = v
		}
	default:
		return snapshot
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		s, ok := values[k].(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(k))
		if _, exists := snapshot[key]; !exists {
			snapshot[key] = s
		}
	}

	return snapshot
}

// Keys returns the snapshot keys in sorted order.
func (m Metadata) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// PickTrackText derives the track line shown to the user. In order it
// prefers "artist - title" (album_artist standing in for artist), then a
// stream title alias, then fallbackTitle. It returns "" when nothing usable
// is present.
func PickTrackText(rawMetadata any, fallbackTitle any) string {
	return NormalizeMetadata(rawMetadata).TrackText(fallbackTitle)
}

// TrackText is [PickTrackText] over an already normalized snapshot.
func (meta Metadata) TrackText(fallbackTitle any) string {
	artist := meta["artist"]
	if artist == "" {
		artist = meta["album_artist"]
	}
	if title := meta["title"]; artist != "" && title != "" {
		return artist + " - " + title
	}

	for _, alias := range titleAliases {
		if v := meta[alias]; v != "" {
			return v
		}
	}

	if s, ok := fallbackTitle.(string); ok {
		return strings.TrimSpace(s)
	}

	return ""
}
