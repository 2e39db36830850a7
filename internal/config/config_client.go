package config

import (
	"fmt"
	"time"
)

// ClientApp holds process-level client settings.
type ClientApp struct {
	// LogFile is the path log entries are appended to.
	LogFile string
	// LogLevel is the zerolog level name.
	LogLevel string
	// UserAgent identifies the client to the directory API.
	UserAgent string
}

// ClientDirectory holds the directory adapter settings.
type ClientDirectory struct {
	// BaseURL is the fallback directory endpoint.
	BaseURL string
	// Discover enables random mirror selection at startup.
	Discover bool
	// RequestTimeout is the default timeout for directory requests.
	RequestTimeout time.Duration
	// SearchLimit caps search results.
	SearchLimit int
}

// ClientPlayer holds the playback session settings.
type ClientPlayer struct {
	// Binary is the mpv executable.
	Binary string
	// SocketDir is where IPC sockets are created.
	SocketDir string
	// PollInterval is the recurring metadata poll period.
	PollInterval time.Duration
	// FirstPollDelay is the delay of the early one-shot poll.
	FirstPollDelay time.Duration
	// IPCTimeout bounds one IPC round trip.
	IPCTimeout time.Duration
	// TerminateGrace bounds the wait for a terminated decoder.
	TerminateGrace time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the sqlite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App       ClientApp
	Directory ClientDirectory
	Player    ClientPlayer
	Storage   ClientStorage
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields into
// the client groups, and validates the resulting [ClientConfig].
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogFile:   cfg.App.LogFile,
			LogLevel:  cfg.App.LogLevel,
			UserAgent: cfg.App.UserAgent,
		},
		Directory: ClientDirectory{
			BaseURL:        cfg.Directory.BaseURL,
			Discover:       !cfg.Directory.SkipDiscovery,
			RequestTimeout: cfg.Directory.RequestTimeout,
			SearchLimit:    cfg.Directory.SearchLimit,
		},
		Player: ClientPlayer{
			Binary:         cfg.Player.Binary,
			SocketDir:      cfg.Player.SocketDir,
			PollInterval:   cfg.Player.PollInterval,
			FirstPollDelay: cfg.Player.FirstPollDelay,
			IPCTimeout:     cfg.Player.IPCTimeout,
			TerminateGrace: cfg.Player.TerminateGrace,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
	}
}
