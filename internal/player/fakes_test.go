package player

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/clio/internal/config"
	"github.com/MKhiriev/clio/internal/logger"
	"github.com/stretchr/testify/require"
)

// ── notifier ──

type notice struct {
	kind    string // "status" or "now"
	station string
	text    string
}

func statusNotice(msg string) notice       { return notice{kind: "status", text: msg} }
func nowNotice(station, track string) notice { return notice{kind: "now", station: station, text: track} }

type recordingNotifier struct {
	mu      sync.Mutex
	notices []notice
}

func (n *recordingNotifier) Status(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, statusNotice(message))
}

func (n *recordingNotifier) NowPlaying(station, track string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, nowNotice(station, track))
}

func (n *recordingNotifier) snapshot() []notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notice(nil), n.notices...)
}

func (n *recordingNotifier) count(want notice) int {
	c := 0
	for _, got := range n.snapshot() {
		if got == want {
			c++
		}
	}
	return c
}

// ── process and launcher ──

// orderLog records launches and terminations in the order they happen.
type orderLog struct {
	mu      sync.Mutex
	entries []string
}

func (l *orderLog) add(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, fmt.Sprintf(format, args...))
}

func (l *orderLog) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.entries...)
}

type fakeProcess struct {
	n          int
	log        *orderLog
	exit       chan error
	ignoreTerm bool
	terminated atomic.Bool
}

func (p *fakeProcess) Wait() error {
	return <-p.exit
}

func (p *fakeProcess) Terminate() error {
	p.terminated.Store(true)
	p.log.add("terminate %d", p.n)
	if !p.ignoreTerm {
		p.exitWith(fmt.Errorf("%w: signal: terminated", ErrAbnormalExit))
	}
	return nil
}

func (p *fakeProcess) exitWith(err error) {
	select {
	case p.exit <- err:
	default:
	}
}

type launch struct {
	url         string
	socketPath  string
	staleExists bool
}

type fakeLauncher struct {
	mu         sync.Mutex
	log        orderLog
	launches   []launch
	procs      []*fakeProcess
	err        error
	ignoreTerm bool
}

func (l *fakeLauncher) Launch(streamURL, socketPath string) (Process, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.err != nil {
		return nil, l.err
	}

	_, statErr := os.Stat(socketPath)
	l.launches = append(l.launches, launch{url: streamURL, socketPath: socketPath, staleExists: statErr == nil})

	// mpv creates its socket on startup.
	_ = os.WriteFile(socketPath, nil, 0o600)

	p := &fakeProcess{n: len(l.procs) + 1, log: &l.log, exit: make(chan error, 1), ignoreTerm: l.ignoreTerm}
	l.procs = append(l.procs, p)
	l.log.add("launch %d", p.n)
	return p, nil
}

func (l *fakeLauncher) proc(n int) *fakeProcess {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.procs[n-1]
}

func (l *fakeLauncher) launched() []launch {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]launch(nil), l.launches...)
}

// ── property requester ──

type fakeRequester struct {
	respond func(ctx context.Context, address, name string) (any, error)

	calls       atomic.Int32
	inFlight    atomic.Int32
	maxInFlight atomic.Int32
}

func (r *fakeRequester) RequestProperty(ctx context.Context, address, name string) (any, error) {
	r.calls.Add(1)
	cur := r.inFlight.Add(1)
	defer r.inFlight.Add(-1)
	for {
		peak := r.maxInFlight.Load()
		if cur <= peak || r.maxInFlight.CompareAndSwap(peak, cur) {
			break
		}
	}

	if r.respond == nil {
		return nil, nil
	}
	return r.respond(ctx, address, name)
}

// metadataReply answers metadata requests with meta and media-title with nil.
func metadataReply(meta map[string]any) func(context.Context, string, string) (any, error) {
	return func(_ context.Context, _, name string) (any, error) {
		if name == metadataProperty {
			return meta, nil
		}
		return nil, nil
	}
}

// ── controller ──

const (
	testPollInterval   = 20 * time.Millisecond
	testFirstPollDelay = 5 * time.Millisecond
	testTerminateGrace = 100 * time.Millisecond
)

type harness struct {
	ctrl      *Controller
	launcher  *fakeLauncher
	requester *fakeRequester
	notifier  *recordingNotifier
	dir       string
}

func newHarness(t *testing.T, launcher *fakeLauncher, requester *fakeRequester) *harness {
	t.Helper()
	if launcher == nil {
		launcher = &fakeLauncher{}
	}
	if requester == nil {
		requester = &fakeRequester{}
	}

	dir := socketDir(t)
	cfg := config.ClientPlayer{
		SocketDir:      dir,
		PollInterval:   testPollInterval,
		FirstPollDelay: testFirstPollDelay,
		IPCTimeout:     50 * time.Millisecond,
		TerminateGrace: testTerminateGrace,
	}
	notifier := &recordingNotifier{}

	ctrl := NewController(cfg, launcher, requester, notifier, logger.Nop())
	t.Cleanup(func() { require.NoError(t, ctrl.Close()) })

	return &harness{ctrl: ctrl, launcher: launcher, requester: requester, notifier: notifier, dir: dir}
}

func (h *harness) socketPath(session uint64) string {
	return filepath.Join(h.dir, fmt.Sprintf("clio-mpv-%d-%d.sock", os.Getpid(), session))
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

type atomicValue[T any] struct {
	v atomic.Value
}

func (a *atomicValue[T]) Store(v T) { a.v.Store(v) }

func (a *atomicValue[T]) Load() T {
	v, _ := a.v.Load().(T)
	return v
}

func writeEmpty(path string) error {
	return os.WriteFile(path, nil, 0o600)
}
