package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/clio/models"
)

const (
	historyLimit   = 50
	statusLifetime = 3 * time.Second
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

func (m appModel) cmdSearch(query string) tea.Cmd {
	return func() tea.Msg {
		stations, err := m.services.Stations.Search(m.ctx, query)
		return searchDoneMsg{query: query, stations: stations, err: err}
	}
}

func (m appModel) cmdPlay(station models.Station, seq int) tea.Cmd {
	return func() tea.Msg {
		return playStartedMsg{station: station, seq: seq, err: m.services.Playback.Play(m.ctx, station)}
	}
}

func (m appModel) cmdStop() tea.Cmd {
	return func() tea.Msg {
		return stopDoneMsg{err: m.services.Playback.Stop()}
	}
}

func (m appModel) cmdToggleFavorite(station models.Station) tea.Cmd {
	return func() tea.Msg {
		isFav, err := m.services.Library.ToggleFavorite(m.ctx, station)
		return favoriteToggledMsg{station: station, isFavorite: isFav, err: err}
	}
}

func (m appModel) cmdLoadFavorites() tea.Cmd {
	return func() tea.Msg {
		items, err := m.services.Library.ListFavorites(m.ctx)
		return favoritesLoadedMsg{items: items, err: err}
	}
}

func (m appModel) cmdLoadHistory() tea.Cmd {
	return func() tea.Msg {
		items, err := m.services.Library.RecentHistory(m.ctx, historyLimit)
		return historyLoadedMsg{items: items, err: err}
	}
}

func (m appModel) cmdClearHistory() tea.Cmd {
	return func() tea.Msg {
		return historyClearedMsg{err: m.services.Library.ClearHistory(m.ctx)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copiedMsg{text: text, err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{text: text}
	}
}

func cmdClearStatus(seq int) tea.Cmd {
	return tea.Tick(statusLifetime, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
