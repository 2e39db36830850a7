package tui

import "github.com/MKhiriev/clio/models"

// statusMsg and nowPlayingMsg are produced by the Notifier.
type statusMsg struct {
	text string
}

type nowPlayingMsg struct {
	station string
	track   string
}

type searchDoneMsg struct {
	query    string
	stations []models.Station
	err      error
}

type playStartedMsg struct {
	station models.Station
	seq     int
	err     error
}

type stopDoneMsg struct {
	err error
}

type favoriteToggledMsg struct {
	station    models.Station
	isFavorite bool
	err        error
}

type favoritesLoadedMsg struct {
	items []models.Favorite
	err   error
}

type historyLoadedMsg struct {
	items []models.HistoryEntry
	err   error
}

type historyClearedMsg struct {
	err error
}

type copiedMsg struct {
	text string
	err  error
}

type clearStatusMsg struct {
	seq int
}
