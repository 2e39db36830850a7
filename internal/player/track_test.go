package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMetadata(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want Metadata
	}{
		{
			name: "lower-cases keys and trims values",
			raw:  map[string]any{"Artist": "  Boards of Canada ", "TITLE": "Roygbiv"},
			want: Metadata{"artist": "Boards of Canada", "title": "Roygbiv"},
		},
		{
			name: "drops blank and non-string values",
			raw:  map[string]any{"artist": "   ", "track": float64(3), "title": "x", "extra": nil},
			want: Metadata{"title": "x"},
		},
		{
			name: "string map",
			raw:  map[string]string{"icy-title": "Live"},
			want: Metadata{"icy-title": "Live"},
		},
		{name: "nil", raw: nil, want: Metadata{}},
		{name: "not a map", raw: "artist - title", want: Metadata{}},
		{name: "slice", raw: []any{"a"}, want: Metadata{}},
		{
			name: "case collision keeps smallest original key",
			raw:  map[string]any{"artist": "lower", "ARTIST": "upper"},
			want: Metadata{"artist": "upper"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeMetadata(tt.raw))
		})
	}
}

func TestMetadata_Keys(t *testing.T) {
	m := NormalizeMetadata(map[string]any{"title": "t", "Artist": "a", "icy-title": "i"})
	assert.Equal(t, []string{"artist", "icy-title", "title"}, m.Keys())
}

func TestMetadata_TrackText(t *testing.T) {
	m := NormalizeMetadata(map[string]any{"Artist": " A ", "TITLE": "B"})
	assert.Equal(t, "A - B", m.TrackText("ignored"))
	assert.Equal(t, "fallback", Metadata{}.TrackText(" fallback "))
}

func TestPickTrackText(t *testing.T) {
	tests := []struct {
		name     string
		meta     any
		fallback any
		want     string
	}{
		{name: "artist and title", meta: map[string]any{"artist": "A", "title": "B"}, want: "A - B"},
		{name: "album artist stands in", meta: map[string]any{"album_artist": "AA", "title": "B"}, want: "AA - B"},
		{name: "artist preferred over album artist", meta: map[string]any{"artist": "A", "album_artist": "AA", "title": "B"}, want: "A - B"},
		{name: "icy title", meta: map[string]any{"icy-title": "C"}, want: "C"},
		{name: "icy title case-insensitive", meta: map[string]any{"ICY-Title": "C"}, want: "C"},
		{name: "streamtitle alias", meta: map[string]any{"StreamTitle": "S"}, want: "S"},
		{name: "icy_title alias", meta: map[string]any{"icy_title": "U"}, want: "U"},
		{name: "stream_title alias", meta: map[string]any{"stream_title": "V"}, want: "V"},
		{name: "alias order", meta: map[string]any{"stream_title": "last", "icy-title": "first"}, want: "first"},
		{name: "artist without title falls through", meta: map[string]any{"artist": "A", "icy-title": "C"}, want: "C"},
		{name: "title without artist falls back", meta: map[string]any{"title": "B"}, fallback: "D", want: "D"},
		{name: "blank alias ignored", meta: map[string]any{"icy-title": "  "}, fallback: " D ", want: "D"},
		{name: "empty metadata uses fallback", meta: map[string]any{}, fallback: "D", want: "D"},
		{name: "nil metadata uses fallback", meta: nil, fallback: "stream.mp3", want: "stream.mp3"},
		{name: "non-string fallback", meta: nil, fallback: float64(1), want: ""},
		{name: "blank fallback", meta: nil, fallback: "   ", want: ""},
		{name: "all empty", meta: nil, fallback: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PickTrackText(tt.meta, tt.fallback))
		})
	}
}
