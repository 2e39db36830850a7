package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/clio/internal/player"
	"github.com/MKhiriev/clio/internal/service"
	"github.com/MKhiriev/clio/models"
)

type listView int

const (
	viewResults listView = iota
	viewFavorites
	viewHistory
	viewCount
)

func (v listView) String() string {
	switch v {
	case viewResults:
		return "Results"
	case viewFavorites:
		return "Favorites"
	case viewHistory:
		return "History"
	default:
		return "?"
	}
}

const (
	visibleRows  = 12
	defaultWidth = 80
)

type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	notifier  *Notifier
	buildInfo models.AppBuildInfo

	input   textinput.Model
	spinner spinner.Model
	busy    bool

	view      listView
	results   []models.Station
	favorites []models.Favorite
	history   []models.HistoryEntry
	cursors   [viewCount]int
	favKeys   map[string]bool

	status    string
	statusSeq int

	nowStation string
	nowTrack   string
	playing    *models.Station
	// playSeq identifies the latest play or stop request; results of older
	// play requests are dropped.
	playSeq int

	showError     bool
	errorOverlay  errorOverlayModel
	showBuildInfo bool
	width         int
}

func newAppModel(ctx context.Context, services *service.ClientServices, notifier *Notifier, buildInfo models.AppBuildInfo, warning string) appModel {
	input := textinput.New()
	input.Prompt = "search> "
	input.Placeholder = "station name, or tag:jazz"
	input.CharLimit = 120
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return appModel{
		ctx:       ctx,
		services:  services,
		notifier:  notifier,
		buildInfo: buildInfo,
		input:     input,
		spinner:   s,
		favKeys:   make(map[string]bool),
		status:    warning,
		width:     defaultWidth,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.notifier.wait(), m.cmdLoadFavorites())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case statusMsg:
		m.setStatus(msg.text)
		return m, m.notifier.wait()
	case nowPlayingMsg:
		m.nowStation = msg.station
		m.nowTrack = msg.track
		return m, m.notifier.wait()
	case searchDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.showErrorf(humanizeNetworkError(msg.err))
			return m, nil
		}
		m.results = msg.stations
		m.cursors[viewResults] = 0
		m.view = viewResults
		if len(m.results) == 0 {
			m.setStatus(fmt.Sprintf("no results for %q", msg.query))
			return m, nil
		}
		m.setStatus(fmt.Sprintf("%d stations", len(m.results)))
		m.input.Blur()
		return m, nil
	case playStartedMsg:
		if msg.seq != m.playSeq {
			return m, nil
		}
		m.busy = false
		if msg.err != nil {
			switch {
			case errors.Is(msg.err, service.ErrPlaySuperseded):
				return m, nil
			case errors.Is(msg.err, player.ErrInvalidInput):
				m.setStatus(player.ErrInvalidInput.Error())
				return m, nil
			}
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		station := msg.station
		m.playing = &station
		if m.view == viewHistory {
			return m, m.cmdLoadHistory()
		}
		return m, nil
	case stopDoneMsg:
		if msg.err != nil {
			m.setStatus(msg.err.Error())
		}
		return m, nil
	case favoriteToggledMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		if msg.isFavorite {
			m.favKeys[msg.station.Key()] = true
			m.setStatus("added to favorites: " + msg.station.DisplayName())
		} else {
			delete(m.favKeys, msg.station.Key())
			m.setStatus("removed from favorites: " + msg.station.DisplayName())
		}
		return m, tea.Batch(m.cmdLoadFavorites(), cmdClearStatus(m.statusSeq))
	case favoritesLoadedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.favorites = msg.items
		m.favKeys = make(map[string]bool, len(msg.items))
		for _, f := range msg.items {
			m.favKeys[f.Key()] = true
		}
		m.clampCursor(viewFavorites)
		return m, nil
	case historyLoadedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.history = msg.items
		m.clampCursor(viewHistory)
		return m, nil
	case historyClearedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.history = nil
		m.cursors[viewHistory] = 0
		m.setStatus("history cleared")
		return m, cmdClearStatus(m.statusSeq)
	case copiedMsg:
		if msg.err != nil {
			m.setStatus(msg.err.Error())
		} else {
			m.setStatus("copied: " + msg.text)
		}
		return m, cmdClearStatus(m.statusSeq)
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQuit) {
		return m, tea.Quit
	}

	if m.showError {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.showError = false
			m.errorOverlay.message = ""
		}
		return m, nil
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if m.input.Focused() {
		switch {
		case key.Matches(msg, keys.enter):
			return m.submitSearch()
		case key.Matches(msg, keys.esc), key.Matches(msg, keys.tab):
			m.input.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.search):
		m.input.Focus()
		return m, textinput.Blink
	case key.Matches(msg, keys.tab):
		m.view = (m.view + 1) % viewCount
		return m, m.cmdLoadView()
	case key.Matches(msg, keys.backtab):
		m.view = (m.view + viewCount - 1) % viewCount
		return m, m.cmdLoadView()
	case key.Matches(msg, keys.up):
		m.moveCursor(-1)
	case key.Matches(msg, keys.down):
		m.moveCursor(1)
	case key.Matches(msg, keys.enter):
		return m.playSelected()
	case key.Matches(msg, keys.stop):
		m.playSeq++
		m.busy = false
		return m, m.cmdStop()
	case key.Matches(msg, keys.favorite):
		station, ok := m.selected()
		if !ok {
			m.setStatus("no station selected")
			return m, nil
		}
		return m, m.cmdToggleFavorite(station)
	case key.Matches(msg, keys.copy):
		return m.copyNowPlaying()
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
	case key.Matches(msg, keys.clearHistory):
		if m.view == viewHistory {
			return m, m.cmdClearHistory()
		}
	}
	return m, nil
}

func (m appModel) submitSearch() (tea.Model, tea.Cmd) {
	query := strings.TrimSpace(m.input.Value())
	if query == "" {
		m.setStatus("type something to search for")
		return m, nil
	}
	m.busy = true
	m.setStatus("searching " + query + "...")
	return m, tea.Batch(m.spinner.Tick, m.cmdSearch(query))
}

func (m appModel) playSelected() (tea.Model, tea.Cmd) {
	station, ok := m.selected()
	if !ok {
		m.setStatus("no station selected")
		return m, nil
	}
	m.busy = true
	m.playSeq++
	return m, tea.Batch(m.spinner.Tick, m.cmdPlay(station, m.playSeq))
}

func (m appModel) copyNowPlaying() (tea.Model, tea.Cmd) {
	text := m.nowTrack
	if text == "" && m.playing != nil {
		text = m.playing.StreamURL()
	}
	if text == "" {
		m.setStatus("nothing to copy")
		return m, nil
	}
	return m, cmdCopyToClipboard(text)
}

func (m appModel) cmdLoadView() tea.Cmd {
	switch m.view {
	case viewFavorites:
		return m.cmdLoadFavorites()
	case viewHistory:
		return m.cmdLoadHistory()
	default:
		return nil
	}
}

func (m appModel) rows() int {
	switch m.view {
	case viewFavorites:
		return len(m.favorites)
	case viewHistory:
		return len(m.history)
	default:
		return len(m.results)
	}
}

func (m appModel) selected() (models.Station, bool) {
	i := m.cursors[m.view]
	if i < 0 || i >= m.rows() {
		return models.Station{}, false
	}
	switch m.view {
	case viewFavorites:
		return m.favorites[i].Station, true
	case viewHistory:
		return m.history[i].Station(), true
	default:
		return m.results[i], true
	}
}

func (m *appModel) moveCursor(delta int) {
	n := m.rows()
	if n == 0 {
		return
	}
	c := m.cursors[m.view] + delta
	if c < 0 {
		c = 0
	}
	if c >= n {
		c = n - 1
	}
	m.cursors[m.view] = c
}

func (m *appModel) clampCursor(v listView) {
	saved := m.view
	m.view = v
	m.moveCursor(0)
	if m.rows() == 0 {
		m.cursors[v] = 0
	}
	m.view = saved
}

func (m *appModel) setStatus(text string) {
	m.status = text
	m.statusSeq++
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo, m.services.Stations.DirectoryURL()))
	}
	if m.showError {
		return appStyle.Render(m.errorOverlay.View())
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("clio"))
	b.WriteString(helpStyle.Render("  internet radio"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(m.renderList())
	b.WriteString("\n")
	b.WriteString(m.renderNowPlaying())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	if m.input.Focused() {
		b.WriteString(helpStyle.Render(helpSearch))
	} else {
		help := helpBrowse
		if m.view == viewHistory {
			help += "  x clear"
		}
		b.WriteString(helpStyle.Render(help))
	}
	return appStyle.Render(b.String())
}

func (m appModel) renderTabs() string {
	tabs := make([]string, 0, viewCount)
	for v := viewResults; v < viewCount; v++ {
		if v == m.view {
			tabs = append(tabs, activeTabStyle.Render(v.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(v.String()))
		}
	}
	return strings.Join(tabs, "  ")
}

func (m appModel) renderList() string {
	n := m.rows()
	if n == 0 {
		switch m.view {
		case viewFavorites:
			return helpStyle.Render("  no favorites yet, press f on a station")
		case viewHistory:
			return helpStyle.Render("  nothing played yet")
		default:
			return helpStyle.Render("  press / and search for a station")
		}
	}

	limit := m.width - 8
	cursor := m.cursors[m.view]
	start, end := window(cursor, n, visibleRows)

	var b strings.Builder
	for i := start; i < end; i++ {
		line := fitText(m.rowLabel(i), limit)
		if i == cursor {
			b.WriteString(cursorStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m appModel) rowLabel(i int) string {
	switch m.view {
	case viewFavorites:
		return m.favorites[i].Label()
	case viewHistory:
		h := m.history[i]
		return h.PlayedAt.Local().Format("2006-01-02 15:04") + "  " + h.Station().DisplayName()
	default:
		station := m.results[i]
		mark := "  "
		if m.favKeys[station.Key()] {
			mark = "* "
		}
		return mark + station.Label()
	}
}

func (m appModel) renderNowPlaying() string {
	state := m.services.Playback.State()
	if state == player.StateIdle || m.nowStation == "" {
		return nowPlayingStyle.Render("[" + state.String() + "]")
	}
	line := "[" + state.String() + "] " + m.nowStation
	if m.nowTrack != "" {
		line += "  ♪ " + m.nowTrack
	}
	return nowPlayingStyle.Render(fitText(line, m.width-4))
}

func (m appModel) renderStatus() string {
	status := m.status
	if m.busy {
		status = m.spinner.View() + " " + status
	}
	return status
}
