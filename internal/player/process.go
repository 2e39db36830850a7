package player

import (
	"errors"
	"fmt"
	"os/exec"
	"syscall"

	"github.com/MKhiriev/clio/internal/logger"
)

// DefaultBinary is the decoder executable used when none is configured.
const DefaultBinary = "mpv"

// MPVLauncher starts mpv subprocesses with audio only output and a JSON IPC
// server.
type MPVLauncher struct {
	binary string
	logger *logger.Logger
}

// NewMPVLauncher returns a launcher running binary, [DefaultBinary] when
// empty.
func NewMPVLauncher(binary string, logger *logger.Logger) *MPVLauncher {
	if binary == "" {
		binary = DefaultBinary
	}
	return &MPVLauncher{binary: binary, logger: logger}
}

func mpvArgs(streamURL, socketPath string) []string {
	return []string{
		"--no-video",
		"--really-quiet",
		"--input-ipc-server=" + socketPath,
		"--",
		streamURL,
	}
}

// Launch implements [Launcher]. The child's stdio is left unattached so it
// never writes over the terminal UI.
func (l *MPVLauncher) Launch(streamURL, socketPath string) (Process, error) {
	cmd := exec.Command(l.binary, mpvArgs(streamURL, socketPath)...)
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	l.logger.Debug().
		Str("func", "MPVLauncher.Launch").
		Int("pid", cmd.Process.Pid).
		Str("socket", socketPath).
		Msg("decoder started")

	return &mpvProcess{cmd: cmd}, nil
}

type mpvProcess struct {
	cmd *exec.Cmd
}

func (p *mpvProcess) Wait() error {
	err := p.cmd.Wait()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("%w: %w", ErrAbnormalExit, err)
	}
	return err
}

func (p *mpvProcess) Terminate() error {
	return p.cmd.Process.Signal(syscall.SIGTERM)
}
