package player

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/clio/internal/config"
	"github.com/MKhiriev/clio/internal/logger"
)

// Timing used when the configuration leaves a value unset.
const (
	DefaultPollInterval   = 2 * time.Second
	DefaultFirstPollDelay = 800 * time.Millisecond
	DefaultTerminateGrace = 2 * time.Second
)

// IPC properties read on every poll.
const (
	metadataProperty = "metadata"
	titleProperty    = "media-title"
)

// Status lines reported through the [Notifier].
const (
	StatusStopped     = "stopped"
	StatusExitedError = "mpv exited with error"
	statusPlaying     = "playing: "
	statusMPVError    = "mpv error: "
)

type commandKind int

const (
	cmdPlay commandKind = iota
	cmdStop
	cmdClose
)

type command struct {
	kind      commandKind
	streamURL string
	station   string
	reply     chan error
}

// Events posted into the control loop by goroutines the loop started. Every
// event carries the session id it belongs to.
type (
	pollTickEvent struct {
		session uint64
	}
	pollResultEvent struct {
		session   uint64
		text      string
		reachable bool
	}
	exitEvent struct {
		session uint64
		err     error
	}
)

// session is the state of one play-to-stop lifetime. It is only touched by
// the control loop.
type session struct {
	id         uint64
	station    string
	socketPath string
	proc       Process
	exited     chan struct{}
	lastTrack  string
	polling    bool
	stopPolls  func()
}

// Controller runs one decoder at a time and reports its state to a
// [Notifier]. All session state is owned by a single control loop goroutine;
// Play, Stop and Close block until the loop has processed them.
type Controller struct {
	launcher  Launcher
	requester PropertyRequester
	notifier  Notifier
	cfg       config.ClientPlayer
	pid       int

	commands chan command
	events   chan any
	done     chan struct{}

	// ctx bounds poll workers and is cancelled when the loop exits.
	ctx    context.Context
	cancel context.CancelFunc

	state atomic.Int32

	// Owned by the control loop.
	sessionID   uint64
	current     *session
	lastStation string

	logger *logger.Logger
}

// NewController starts a controller's control loop. Close must be called to
// release it.
func NewController(cfg config.ClientPlayer, launcher Launcher, requester PropertyRequester, notifier Notifier, logger *logger.Logger) *Controller {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.FirstPollDelay <= 0 {
		cfg.FirstPollDelay = DefaultFirstPollDelay
	}
	if cfg.TerminateGrace <= 0 {
		cfg.TerminateGrace = DefaultTerminateGrace
	}
	if cfg.SocketDir == "" {
		cfg.SocketDir = os.TempDir()
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		launcher:  launcher,
		requester: requester,
		notifier:  notifier,
		cfg:       cfg,
		pid:       os.Getpid(),
		commands:  make(chan command),
		events:    make(chan any),
		done:      make(chan struct{}),
		ctx:       ctx,
		cancel:    cancel,
		logger:    logger,
	}

	go c.run()
	return c
}

// Play stops the current session and starts playing streamURL as station.
// An empty URL is rejected with [ErrInvalidInput] without touching the
// current session. A decoder that fails to start yields an error wrapping
// [ErrLaunch]; both are also reported through the notifier.
func (c *Controller) Play(streamURL, station string) error {
	return c.send(command{kind: cmdPlay, streamURL: streamURL, station: station})
}

// Stop ends the current session, if any, and always reports "stopped".
func (c *Controller) Stop() error {
	return c.send(command{kind: cmdStop})
}

// Close stops the current session without notifications and shuts the
// control loop down. Calling Close more than once is a no-op.
func (c *Controller) Close() error {
	if err := c.send(command{kind: cmdClose}); err != nil && !errors.Is(err, ErrControllerClosed) {
		return err
	}
	return nil
}

// State returns the current session phase.
func (c *Controller) State() State {
	return State(c.state.Load())
}

func (c *Controller) send(cmd command) error {
	cmd.reply = make(chan error, 1)
	select {
	case c.commands <- cmd:
	case <-c.done:
		return ErrControllerClosed
	}
	return <-cmd.reply
}

// post delivers ev to the control loop unless the loop has exited or ctx is
// done first.
func (c *Controller) post(ctx context.Context, ev any) bool {
	select {
	case c.events <- ev:
		return true
	case <-ctx.Done():
		return false
	case <-c.done:
		return false
	}
}

func (c *Controller) run() {
	defer close(c.done)
	defer c.cancel()

	for {
		select {
		case cmd := <-c.commands:
			switch cmd.kind {
			case cmdPlay:
				cmd.reply <- c.play(cmd.streamURL, cmd.station)
			case cmdStop:
				c.stop()
				cmd.reply <- nil
			case cmdClose:
				c.teardown()
				cmd.reply <- nil
				return
			}
		case ev := <-c.events:
			c.handle(ev)
		}
	}
}

func (c *Controller) setState(s State) {
	c.state.Store(int32(s))
}

// active returns the current session when id still belongs to it.
func (c *Controller) active(id uint64) *session {
	if c.current == nil || c.current.id != id || id != c.sessionID {
		return nil
	}
	return c.current
}

func (c *Controller) play(streamURL, station string) error {
	if streamURL == "" {
		c.notifier.Status(ErrInvalidInput.Error())
		return ErrInvalidInput
	}

	c.stop()

	c.sessionID++
	s := &session{
		id:         c.sessionID,
		station:    station,
		socketPath: filepath.Join(c.cfg.SocketDir, fmt.Sprintf("clio-mpv-%d-%d.sock", c.pid, c.sessionID)),
		exited:     make(chan struct{}),
		stopPolls:  func() {},
	}
	c.current = s
	c.lastStation = station

	c.notifier.NowPlaying(station, "")
	c.notifier.Status(statusPlaying + station)

	log := c.logger.With().Str("func", "Controller.play").Uint64("session", s.id).Logger()

	removeSocket(s.socketPath)
	c.setState(StateStarting)

	proc, err := c.launcher.Launch(streamURL, s.socketPath)
	if err != nil {
		log.Error().Err(err).Str("url", streamURL).Msg("decoder launch failed")
		c.fail(s, statusMPVError+err.Error())
		return fmt.Errorf("%w: %w", ErrLaunch, err)
	}
	s.proc = proc

	go func(id uint64) {
		err := proc.Wait()
		close(s.exited)
		c.post(c.ctx, exitEvent{session: id, err: err})
	}(s.id)

	c.schedulePolls(s)

	log.Info().Str("station", station).Str("url", streamURL).Msg("playback started")
	return nil
}

// schedulePolls starts the one-shot early poll and the recurring poll for s.
// Both are cancelled by s.stopPolls.
func (c *Controller) schedulePolls(s *session) {
	ctx, cancel := context.WithCancel(c.ctx)
	id := s.id

	first := time.AfterFunc(c.cfg.FirstPollDelay, func() {
		c.post(ctx, pollTickEvent{session: id})
	})

	go func() {
		ticker := time.NewTicker(c.cfg.PollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !c.post(ctx, pollTickEvent{session: id}) {
					return
				}
			}
		}
	}()

	s.stopPolls = func() {
		first.Stop()
		cancel()
	}
}

func (c *Controller) handle(ev any) {
	switch e := ev.(type) {
	case pollTickEvent:
		s := c.active(e.session)
		if s == nil || s.polling {
			return
		}
		s.polling = true
		go c.poll(s.id, s.socketPath)

	case pollResultEvent:
		s := c.active(e.session)
		if s == nil {
			return
		}
		s.polling = false
		if e.reachable && c.State() == StateStarting {
			c.setState(StatePlaying)
		}
		if e.text == "" || e.text == s.lastTrack {
			return
		}
		s.lastTrack = e.text
		c.notifier.NowPlaying(s.station, e.text)

	case exitEvent:
		s := c.active(e.session)
		if s == nil {
			return
		}
		s.proc = nil
		switch {
		case e.err == nil:
			c.fail(s, StatusStopped)
		case errors.Is(e.err, ErrAbnormalExit):
			c.logger.Warn().Err(e.err).Str("func", "Controller.handle").Uint64("session", s.id).Msg("decoder exited")
			c.fail(s, StatusExitedError)
		default:
			c.logger.Error().Err(e.err).Str("func", "Controller.handle").Uint64("session", s.id).Msg("decoder runtime error")
			c.fail(s, statusMPVError+e.err.Error())
		}
	}
}

// poll runs off the control loop. Both requests are independent; failures
// only mean this tick has nothing to report.
func (c *Controller) poll(id uint64, socketPath string) {
	log := c.logger.With().Str("func", "Controller.poll").Uint64("session", id).Logger()

	meta, metaErr := c.requester.RequestProperty(c.ctx, socketPath, metadataProperty)
	if metaErr != nil {
		log.Debug().Err(metaErr).Msg("metadata request failed")
	}
	title, titleErr := c.requester.RequestProperty(c.ctx, socketPath, titleProperty)
	if titleErr != nil {
		log.Debug().Err(titleErr).Msg("media-title request failed")
	}

	snapshot := NormalizeMetadata(meta)
	log.Debug().Strs("metadata_keys", snapshot.Keys()).Msg("metadata polled")

	c.post(c.ctx, pollResultEvent{
		session:   id,
		text:      snapshot.TrackText(title),
		reachable: metaErr == nil || titleErr == nil,
	})
}

// stop tears the current session down, if any, and always reports it.
func (c *Controller) stop() {
	c.teardown()
	c.notifier.NowPlaying(c.lastStation, "")
	c.notifier.Status(StatusStopped)
}

// fail tears s down after its decoder is gone or never started and reports
// status.
func (c *Controller) fail(s *session, status string) {
	c.release(s)
	c.notifier.NowPlaying(s.station, "")
	c.notifier.Status(status)
}

// teardown terminates the current decoder, waits up to TerminateGrace for it
// to be reaped and releases the session's resources. It never reports.
func (c *Controller) teardown() {
	s := c.current
	if s == nil {
		return
	}
	c.setState(StateStopping)
	s.stopPolls()

	if s.proc != nil {
		log := c.logger.With().Str("func", "Controller.teardown").Uint64("session", s.id).Logger()
		if err := s.proc.Terminate(); err != nil {
			log.Debug().Err(err).Msg("terminate decoder")
		}

		grace := time.NewTimer(c.cfg.TerminateGrace)
		select {
		case <-s.exited:
		case <-grace.C:
			log.Warn().Dur("grace", c.cfg.TerminateGrace).Msg("decoder did not exit in time")
		}
		grace.Stop()
		s.proc = nil
	}

	c.release(s)
}

// release cancels polls, removes the socket and clears the current session.
func (c *Controller) release(s *session) {
	s.stopPolls()
	removeSocket(s.socketPath)
	if c.current == s {
		c.current = nil
	}
	c.setState(StateIdle)
}

// removeSocket deletes a socket file, ignoring every failure.
func removeSocket(path string) {
	if path == "" {
		return
	}
	_ = os.Remove(path)
}
