package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/clio/internal/adapter"
	"github.com/MKhiriev/clio/internal/mock"
	"github.com/MKhiriev/clio/internal/player"
	"github.com/MKhiriev/clio/internal/service"
	"github.com/MKhiriev/clio/models"
)

type testDeps struct {
	stations *mock.MockStationService
	playback *mock.MockPlaybackService
	library  *mock.MockLibraryService
}

func newTestModel(t *testing.T) (appModel, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := testDeps{
		stations: mock.NewMockStationService(ctrl),
		playback: mock.NewMockPlaybackService(ctrl),
		library:  mock.NewMockLibraryService(ctrl),
	}
	svcs := &service.ClientServices{Stations: deps.stations, Playback: deps.playback, Library: deps.library}
	m := newAppModel(context.Background(), svcs, NewNotifier(4), models.NewAppBuildInfo("1.0.0", "2026-10-01", "abc123"), "")
	return m, deps
}

func update(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(appModel)
	require.True(t, ok)
	return model, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

var (
	stationA = models.Station{StationUUID: "9617a958-0601-11e8-ae97-52543be04c81", Name: "Groove Salad", Country: "US", Codec: "mp3", Bitrate: 128, URLResolved: "http://ice/groove"}
	stationB = models.Station{Name: "Drone Zone", URL: "http://ice/drone"}
)

// ── Keys ──

func TestAppModel_QuitKeys(t *testing.T) {
	m, _ := newTestModel(t)

	// q is text while the search box has focus
	m, _ = update(t, m, runes("q"))
	assert.Equal(t, "q", m.input.Value())

	m.input.Blur()
	_, cmd := update(t, m, runes("q"))
	assert.True(t, isQuit(cmd))

	m.input.Focus()
	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuit(cmd))
}

func TestAppModel_EscAndSlashToggleSearchFocus(t *testing.T) {
	m, _ := newTestModel(t)
	require.True(t, m.input.Focused())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	assert.False(t, m.input.Focused())

	m, _ = update(t, m, runes("/"))
	assert.True(t, m.input.Focused())
}

// ── Search ──

func TestAppModel_SubmitSearch(t *testing.T) {
	m, deps := newTestModel(t)
	m.input.SetValue("  tag:ambient ")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.True(t, m.busy)
	assert.Contains(t, m.status, "searching tag:ambient")

	deps.stations.EXPECT().Search(gomock.Any(), "tag:ambient").Return([]models.Station{stationA, stationB}, nil)
	msg := m.cmdSearch("tag:ambient")()

	m, _ = update(t, m, msg)
	assert.False(t, m.busy)
	assert.Len(t, m.results, 2)
	assert.Equal(t, viewResults, m.view)
	assert.Equal(t, "2 stations", m.status)
	assert.False(t, m.input.Focused())
}

func TestAppModel_SubmitSearch_Blank(t *testing.T) {
	m, _ := newTestModel(t)
	m.input.SetValue("   ")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.False(t, m.busy)
	assert.Equal(t, "type something to search for", m.status)
}

func TestAppModel_SearchNoResults(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, searchDoneMsg{query: "zzzz"})

	assert.Equal(t, `no results for "zzzz"`, m.status)
	assert.True(t, m.input.Focused())
}

func TestAppModel_SearchError(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, searchDoneMsg{query: "x", err: adapter.ErrServiceUnavailable})

	assert.True(t, m.showError)
	assert.Equal(t, "The station directory is temporarily unavailable", m.errorOverlay.message)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.showError)
}

// ── Playback ──

func TestAppModel_EnterWithoutSelection(t *testing.T) {
	m, _ := newTestModel(t)
	m.input.Blur()

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, "no station selected", m.status)
}

func TestAppModel_PlaySelected(t *testing.T) {
	m, deps := newTestModel(t)
	m.input.Blur()
	m.results = []models.Station{stationA, stationB}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.busy)

	deps.playback.EXPECT().Play(gomock.Any(), stationB).Return(nil)
	msg := m.cmdPlay(stationB, m.playSeq)()

	m, _ = update(t, m, msg)
	assert.False(t, m.busy)
	require.NotNil(t, m.playing)
	assert.Equal(t, "Drone Zone", m.playing.Name)
}

func TestAppModel_PlayErrors(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, playStartedMsg{station: stationB, err: fmt.Errorf("start playback: %w", player.ErrInvalidInput)})
	assert.False(t, m.showError)
	assert.Equal(t, player.ErrInvalidInput.Error(), m.status)

	m, _ = update(t, m, playStartedMsg{station: stationB, err: service.ErrPlaySuperseded})
	assert.False(t, m.showError)
	assert.Nil(t, m.playing)

	m, _ = update(t, m, playStartedMsg{station: stationB, err: errors.Join(player.ErrLaunch, errors.New("not found"))})
	assert.True(t, m.showError)
	assert.Nil(t, m.playing)
}

func TestAppModel_PlayResultsFollowLastSelection(t *testing.T) {
	m, deps := newTestModel(t)
	m.input.Blur()
	m.results = []models.Station{stationA, stationB}

	m, first := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, first)
	firstSeq := m.playSeq
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, second := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, second)

	deps.playback.EXPECT().Play(gomock.Any(), stationB).Return(nil)
	m, _ = update(t, m, m.cmdPlay(stationB, m.playSeq)())
	require.NotNil(t, m.playing)
	assert.Equal(t, "Drone Zone", m.playing.Name)
	assert.False(t, m.busy)

	// The earlier request finishes last; its result must not replace B.
	m, _ = update(t, m, playStartedMsg{station: stationA, seq: firstSeq})
	assert.Equal(t, "Drone Zone", m.playing.Name)
}

func TestAppModel_StopClearsPendingPlay(t *testing.T) {
	m, _ := newTestModel(t)
	m.input.Blur()
	m.results = []models.Station{stationA}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	pending := m.playSeq
	require.True(t, m.busy)

	m, _ = update(t, m, runes("s"))
	assert.False(t, m.busy)

	m, _ = update(t, m, playStartedMsg{station: stationA, seq: pending, err: service.ErrPlaySuperseded})
	assert.Nil(t, m.playing)
	assert.False(t, m.showError)
}

func TestAppModel_Stop(t *testing.T) {
	m, deps := newTestModel(t)
	m.input.Blur()

	_, cmd := update(t, m, runes("s"))
	require.NotNil(t, cmd)

	deps.playback.EXPECT().Stop().Return(nil)
	assert.Equal(t, stopDoneMsg{}, cmd())
}

// ── Notifications ──

func TestAppModel_Notifications(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, nowPlayingMsg{station: "Groove Salad", track: "Artist - Song"})
	assert.NotNil(t, cmd, "must keep listening for notifications")
	assert.Equal(t, "Groove Salad", m.nowStation)
	assert.Equal(t, "Artist - Song", m.nowTrack)

	m, cmd = update(t, m, statusMsg{text: "stopped"})
	assert.NotNil(t, cmd)
	assert.Equal(t, "stopped", m.status)
}

func TestAppModel_ClearStatusOnlyClearsOwnStatus(t *testing.T) {
	m, _ := newTestModel(t)

	m.setStatus("copied: x")
	stale := m.statusSeq
	m.setStatus("mpv exited with error")

	m, _ = update(t, m, clearStatusMsg{seq: stale})
	assert.Equal(t, "mpv exited with error", m.status)

	m, _ = update(t, m, clearStatusMsg{seq: m.statusSeq})
	assert.Empty(t, m.status)
}

// ── Library ──

func TestAppModel_ToggleFavorite(t *testing.T) {
	m, deps := newTestModel(t)
	m.input.Blur()
	m.results = []models.Station{stationA}

	_, cmd := update(t, m, runes("f"))
	require.NotNil(t, cmd)

	deps.library.EXPECT().ToggleFavorite(gomock.Any(), stationA).Return(true, nil)
	msg := cmd()
	assert.Equal(t, favoriteToggledMsg{station: stationA, isFavorite: true}, msg)

	m, cmd = update(t, m, msg)
	assert.NotNil(t, cmd)
	assert.True(t, m.favKeys[stationA.Key()])
	assert.Equal(t, "added to favorites: Groove Salad", m.status)

	m, _ = update(t, m, favoriteToggledMsg{station: stationA, isFavorite: false})
	assert.False(t, m.favKeys[stationA.Key()])
}

func TestAppModel_TabLoadsViews(t *testing.T) {
	m, deps := newTestModel(t)
	m.input.Blur()

	favs := []models.Favorite{{Station: stationA, CreatedAt: time.Now()}}
	history := []models.HistoryEntry{{ID: 1, Name: "Drone Zone", StreamURL: "http://ice/drone", PlayedAt: time.Now()}}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, viewFavorites, m.view)
	deps.library.EXPECT().ListFavorites(gomock.Any()).Return(favs, nil)
	m, _ = update(t, m, cmd())
	assert.Equal(t, favs, m.favorites)
	assert.True(t, m.favKeys[stationA.Key()])

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, viewHistory, m.view)
	deps.library.EXPECT().RecentHistory(gomock.Any(), historyLimit).Return(history, nil)
	m, _ = update(t, m, cmd())
	assert.Equal(t, history, m.history)

	station, ok := m.selected()
	require.True(t, ok)
	assert.Equal(t, "http://ice/drone", station.StreamURL())

	m, cmd = update(t, m, runes("x"))
	deps.library.EXPECT().ClearHistory(gomock.Any()).Return(nil)
	m, _ = update(t, m, cmd())
	assert.Empty(t, m.history)
	assert.Equal(t, "history cleared", m.status)

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, viewResults, m.view)
	assert.Nil(t, cmd)
}

// ── Clipboard ──

func TestAppModel_Copy(t *testing.T) {
	var copied []string
	orig := writeClipboard
	writeClipboard = func(text string) error {
		copied = append(copied, text)
		return nil
	}
	defer func() { writeClipboard = orig }()

	m, _ := newTestModel(t)
	m.input.Blur()

	m, cmd := update(t, m, runes("c"))
	assert.Nil(t, cmd)
	assert.Equal(t, "nothing to copy", m.status)

	m.playing = &stationA
	_, cmd = update(t, m, runes("c"))
	require.NotNil(t, cmd)
	assert.Equal(t, copiedMsg{text: "http://ice/groove"}, cmd())

	m.nowTrack = "Artist - Song"
	_, cmd = update(t, m, runes("c"))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, copiedMsg{text: "Artist - Song"}, msg)

	m, _ = update(t, m, msg)
	assert.Equal(t, "copied: Artist - Song", m.status)
	assert.Equal(t, []string{"http://ice/groove", "Artist - Song"}, copied)
}

func TestAppModel_CopyFailure(t *testing.T) {
	orig := writeClipboard
	writeClipboard = func(string) error { return errors.New("no clipboard utility") }
	defer func() { writeClipboard = orig }()

	msg := cmdCopyToClipboard("x")()

	copied, ok := msg.(copiedMsg)
	require.True(t, ok)
	assert.ErrorContains(t, copied.err, "copy to clipboard")
}

// ── View ──

func TestAppModel_View(t *testing.T) {
	m, deps := newTestModel(t)
	deps.playback.EXPECT().State().Return(player.StatePlaying).AnyTimes()

	m.input.Blur()
	m.results = []models.Station{stationA, stationB}
	m.favKeys[stationA.Key()] = true
	m.nowStation = "Groove Salad"
	m.nowTrack = "Artist - Song"

	out := m.View()

	assert.Contains(t, out, "Results")
	assert.Contains(t, out, "* Groove Salad (US | MP3 | 128kbps)")
	assert.Contains(t, out, "Drone Zone")
	assert.Contains(t, out, "[playing] Groove Salad")
	assert.Contains(t, out, "Artist - Song")
}

func TestAppModel_BuildInfoOverlay(t *testing.T) {
	m, deps := newTestModel(t)
	deps.stations.EXPECT().DirectoryURL().Return("https://de1.api.radio-browser.info").AnyTimes()
	m.input.Blur()

	m, _ = update(t, m, runes("v"))
	require.True(t, m.showBuildInfo)
	assert.Contains(t, m.View(), "Version: 1.0.0")

	// other keys are swallowed while the overlay is open
	m, cmd := update(t, m, runes("q"))
	assert.Nil(t, cmd)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	assert.False(t, m.showBuildInfo)
}
