package tui

import (
	"sync"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/clio/internal/player"
)

// DefaultNotifierBuffer is the notification backlog kept for the UI.
const DefaultNotifierBuffer = 64

// Notifier delivers playback notifications to the UI. It implements
// player.Notifier: calls never block, and notifications are dropped while the
// backlog is full or after Close.
type Notifier struct {
	events  chan tea.Msg
	done    chan struct{}
	once    sync.Once
	dropped atomic.Int64
}

// NewNotifier returns a Notifier keeping up to buffer pending notifications.
func NewNotifier(buffer int) *Notifier {
	if buffer <= 0 {
		buffer = DefaultNotifierBuffer
	}
	return &Notifier{
		events: make(chan tea.Msg, buffer),
		done:   make(chan struct{}),
	}
}

// Status queues a status line update.
func (n *Notifier) Status(message string) {
	n.send(statusMsg{text: message})
}

// NowPlaying queues a now-playing update.
func (n *Notifier) NowPlaying(station, track string) {
	n.send(nowPlayingMsg{station: station, track: track})
}

// Dropped reports how many notifications were discarded.
func (n *Notifier) Dropped() int64 {
	return n.dropped.Load()
}

// Close stops delivery and releases a pending wait.
func (n *Notifier) Close() {
	n.once.Do(func() { close(n.done) })
}

func (n *Notifier) send(msg tea.Msg) {
	select {
	case <-n.done:
		return
	default:
	}

	select {
	case n.events <- msg:
	default:
		n.dropped.Add(1)
	}
}

// wait returns a command that blocks until the next notification. The model
// re-issues it after handling each one.
func (n *Notifier) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-n.events:
			return msg
		case <-n.done:
			return nil
		}
	}
}

var _ player.Notifier = (*Notifier)(nil)
