package config

import (
	"os"
	"path/filepath"
	"time"
)

// Built-in defaults applied below every other configuration source.
const (
	DefaultDirectoryURL   = "https://all.api.radio-browser.info"
	DefaultUserAgent      = "clio"
	DefaultLogLevel       = "info"
	DefaultRequestTimeout = 10 * time.Second
	DefaultSearchLimit    = 20
	DefaultPlayerBinary   = "mpv"
	DefaultPollInterval   = 2 * time.Second
	DefaultFirstPollDelay = 800 * time.Millisecond
	DefaultIPCTimeout     = 800 * time.Millisecond
	DefaultTerminateGrace = 2 * time.Second

	appDirName = "clio"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogFile:   filepath.Join(userDir(os.UserCacheDir), "clio.log"),
			LogLevel:  DefaultLogLevel,
			UserAgent: DefaultUserAgent,
		},
		Directory: Directory{
			BaseURL:        DefaultDirectoryURL,
			RequestTimeout: DefaultRequestTimeout,
			SearchLimit:    DefaultSearchLimit,
		},
		Player: Player{
			Binary:         DefaultPlayerBinary,
			SocketDir:      os.TempDir(),
			PollInterval:   DefaultPollInterval,
			FirstPollDelay: DefaultFirstPollDelay,
			IPCTimeout:     DefaultIPCTimeout,
			TerminateGrace: DefaultTerminateGrace,
		},
		Storage: Storage{
			DB: DB{DSN: filepath.Join(userDir(os.UserConfigDir), "clio.db")},
		},
	}
}

// userDir resolves a per-user base directory, falling back to the temp dir on
// systems without one.
func userDir(base func() (string, error)) string {
	dir, err := base()
	if err != nil || dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, appDirName)
}
