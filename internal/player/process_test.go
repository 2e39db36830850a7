package player

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/clio/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMPVArgs(t *testing.T) {
	got := mpvArgs("http://stream.example/a", "/tmp/clio-mpv-1-1.sock")

	assert.Equal(t, []string{
		"--no-video",
		"--really-quiet",
		"--input-ipc-server=/tmp/clio-mpv-1-1.sock",
		"--",
		"http://stream.example/a",
	}, got)
}

func TestMPVArgs_URLAfterSeparator(t *testing.T) {
	// A URL that looks like an option must still be treated as a file.
	got := mpvArgs("--script=evil.lua", "/tmp/s.sock")
	assert.Equal(t, "--", got[len(got)-2])
	assert.Equal(t, "--script=evil.lua", got[len(got)-1])
}

func TestNewMPVLauncher_DefaultBinary(t *testing.T) {
	assert.Equal(t, DefaultBinary, NewMPVLauncher("", logger.Nop()).binary)
}

func TestMPVLauncher_LaunchMissingBinary(t *testing.T) {
	l := NewMPVLauncher(filepath.Join(t.TempDir(), "no-such-mpv"), logger.Nop())

	proc, err := l.Launch("http://stream.example/a", "/tmp/x.sock")

	assert.Error(t, err)
	assert.Nil(t, proc)
}

// fakeBinary writes an executable shell script standing in for mpv.
func fakeBinary(t *testing.T, body string) string {
	t.Helper()
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("/bin/sh not available")
	}
	path := filepath.Join(t.TempDir(), "fake-mpv")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestMPVProcess_Wait(t *testing.T) {
	tests := []struct {
		name     string
		script   string
		abnormal bool
	}{
		{name: "clean exit", script: "exit 0"},
		{name: "error exit", script: "exit 3", abnormal: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewMPVLauncher(fakeBinary(t, tt.script), logger.Nop())

			proc, err := l.Launch("http://stream.example/a", "/tmp/unused.sock")
			require.NoError(t, err)

			err = proc.Wait()
			if tt.abnormal {
				assert.ErrorIs(t, err, ErrAbnormalExit)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestMPVProcess_Terminate(t *testing.T) {
	l := NewMPVLauncher(fakeBinary(t, "exec sleep 30"), logger.Nop())
	proc, err := l.Launch("http://stream.example/a", "/tmp/unused.sock")
	require.NoError(t, err)

	waited := make(chan error, 1)
	go func() { waited <- proc.Wait() }()

	require.NoError(t, proc.Terminate())

	select {
	case err = <-waited:
		assert.ErrorIs(t, err, ErrAbnormalExit)
	case <-time.After(5 * time.Second):
		t.Fatal("process did not exit after SIGTERM")
	}
}
