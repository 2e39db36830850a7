package config

import (
	"testing"
	"time"

	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBaseURL_Set tests the Set method of BaseURL
func TestBaseURL_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    string
	}{
		{
			name:     "https host",
			input:    "https://de1.api.radio-browser.info",
			expected: "https://de1.api.radio-browser.info",
		},
		{
			name:     "trailing slash trimmed",
			input:    "http://localhost:8080/",
			expected: "http://localhost:8080",
		},
		{
			name:     "surrounding whitespace",
			input:    "  https://example.org  ",
			expected: "https://example.org",
		},
		{
			name:        "missing scheme",
			input:       "de1.api.radio-browser.info",
			expectError: true,
		},
		{
			name:        "unsupported scheme",
			input:       "ftp://example.org",
			expectError: true,
		},
		{
			name:        "empty host",
			input:       "http://",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u BaseURL
			err := u.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, u.String())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, u.String())
		})
	}
}

func TestBaseURL_Type(t *testing.T) {
	var u BaseURL
	assert.Equal(t, "url", u.Type())
}

// TestParseFlags tests ParseFlags with different argument sets
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "long flags",
			args: []string{
				"--config", "/etc/clio.yaml",
				"--log-file", "/tmp/clio.log",
				"--log-level", "debug",
				"--user-agent", "clio-test",
				"--directory-url", "https://de1.api.radio-browser.info/",
				"--no-discovery",
				"--request-timeout", "5s",
				"--limit", "30",
				"--player", "/opt/mpv",
				"--socket-dir", "/run/clio",
				"--poll-interval", "3s",
				"--first-poll-delay", "400ms",
				"--ipc-timeout", "1s",
				"--terminate-grace", "5s",
				"--db", "/tmp/clio.db",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/etc/clio.yaml", cfg.ConfigFilePath)
				assert.Equal(t, "/tmp/clio.log", cfg.App.LogFile)
				assert.Equal(t, "debug", cfg.App.LogLevel)
				assert.Equal(t, "clio-test", cfg.App.UserAgent)
				assert.Equal(t, "https://de1.api.radio-browser.info", cfg.Directory.BaseURL)
				assert.True(t, cfg.Directory.SkipDiscovery)
				assert.Equal(t, 5*time.Second, cfg.Directory.RequestTimeout)
				assert.Equal(t, 30, cfg.Directory.SearchLimit)
				assert.Equal(t, "/opt/mpv", cfg.Player.Binary)
				assert.Equal(t, "/run/clio", cfg.Player.SocketDir)
				assert.Equal(t, 3*time.Second, cfg.Player.PollInterval)
				assert.Equal(t, 400*time.Millisecond, cfg.Player.FirstPollDelay)
				assert.Equal(t, time.Second, cfg.Player.IPCTimeout)
				assert.Equal(t, 5*time.Second, cfg.Player.TerminateGrace)
				assert.Equal(t, "/tmp/clio.db", cfg.Storage.DB.DSN)
			},
		},
		{
			name: "short flags",
			args: []string{"-c", "cfg.json", "-u", "http://localhost:9000", "-n", "5", "-p", "mpv", "-d", "x.db"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "cfg.json", cfg.ConfigFilePath)
				assert.Equal(t, "http://localhost:9000", cfg.Directory.BaseURL)
				assert.Equal(t, 5, cfg.Directory.SearchLimit)
				assert.Equal(t, "mpv", cfg.Player.Binary)
				assert.Equal(t, "x.db", cfg.Storage.DB.DSN)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

// TestParseFlags_Invalid tests ParseFlags with values the flag set rejects
func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "invalid directory url", args: []string{"--directory-url", "not a url"}},
		{name: "invalid duration", args: []string{"--poll-interval", "often"}},
		{name: "invalid limit", args: []string{"-n", "lots"}},
		{name: "negative limit", args: []string{"-n", "-3"}},
		{name: "unknown flag", args: []string{"--volume", "50"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestParseFlags_Help(t *testing.T) {
	_, err := ParseFlags([]string{"--help"})
	require.Error(t, err)
	assert.ErrorIs(t, err, flag.ErrHelp)
}
