package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	flag "github.com/spf13/pflag"
)

// BaseURL holds a validated http(s) endpoint.
// It implements the pflag.Value interface.
type BaseURL struct {
	raw string
}

// ParseFlags parses all configuration flags from args (without the program
// name).
//
// Flags:
//
//	-c, --config            JSON or YAML config file path
//	    --log-file          log file path
//	    --log-level         log level (debug, info, warn, error)
//	    --user-agent        user agent sent to the directory
//	-u, --directory-url     directory base URL, e.g. https://de1.api.radio-browser.info
//	    --no-discovery      do not pick a random directory mirror
//	    --request-timeout   directory request timeout (e.g. "10s")
//	-n, --limit             search result limit
//	-p, --player            mpv binary
//	    --socket-dir        IPC socket directory
//	    --poll-interval     metadata poll interval (e.g. "2s")
//	    --first-poll-delay  delay of the first metadata poll (e.g. "800ms")
//	    --ipc-timeout       IPC request timeout (e.g. "800ms")
//	    --terminate-grace   wait for a stopped decoder to exit (e.g. "2s")
//	-d, --db                sqlite database path
//
// -h/--help yields an error wrapping flag.ErrHelp.
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		configPath     string
		logFile        string
		logLevel       string
		userAgent      string
		directoryURL   BaseURL
		skipDiscovery  bool
		requestTimeout time.Duration
		searchLimit    int
		playerBinary   string
		socketDir      string
		pollInterval   time.Duration
		firstPollDelay time.Duration
		ipcTimeout     time.Duration
		terminateGrace time.Duration
		databaseDSN    string
	)

	fs := flag.NewFlagSet("clio", flag.ContinueOnError)
	fs.StringVarP(&configPath, "config", "c", "", "JSON or YAML config file path")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&userAgent, "user-agent", "", "User agent sent to the directory")
	fs.VarP(&directoryURL, "directory-url", "u", "Directory base URL")
	fs.BoolVar(&skipDiscovery, "no-discovery", false, "Do not pick a random directory mirror")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Directory request timeout (e.g. 10s)")
	fs.IntVarP(&searchLimit, "limit", "n", 0, "Search result limit")
	fs.StringVarP(&playerBinary, "player", "p", "", "mpv binary")
	fs.StringVar(&socketDir, "socket-dir", "", "IPC socket directory")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Metadata poll interval (e.g. 2s)")
	fs.DurationVar(&firstPollDelay, "first-poll-delay", 0, "Delay of the first metadata poll (e.g. 800ms)")
	fs.DurationVar(&ipcTimeout, "ipc-timeout", 0, "IPC request timeout (e.g. 800ms)")
	fs.DurationVar(&terminateGrace, "terminate-grace", 0, "Wait for a stopped decoder to exit (e.g. 2s)")
	fs.StringVarP(&databaseDSN, "db", "d", "", "sqlite database path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	if searchLimit < 0 {
		return nil, errors.New("search limit must not be negative")
	}

	return &StructuredConfig{
		App: App{
			LogFile:   logFile,
			LogLevel:  logLevel,
			UserAgent: userAgent,
		},
		Directory: Directory{
			BaseURL:        directoryURL.String(),
			SkipDiscovery:  skipDiscovery,
			RequestTimeout: requestTimeout,
			SearchLimit:    searchLimit,
		},
		Player: Player{
			Binary:         playerBinary,
			SocketDir:      socketDir,
			PollInterval:   pollInterval,
			FirstPollDelay: firstPollDelay,
			IPCTimeout:     ipcTimeout,
			TerminateGrace: terminateGrace,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		ConfigFilePath: configPath,
	}, nil
}

// String returns the URL without a trailing slash, or "" when unset.
func (u *BaseURL) String() string {
	return u.raw
}

// Set validates s as an absolute http or https URL.
func (u *BaseURL) Set(s string) error {
	s = strings.TrimSpace(s)
	parsed, err := url.Parse(s)
	if err != nil {
		return err
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("need url in a form `http(s)://host[:port]`")
	}
	if parsed.Host == "" {
		return errors.New("url host is empty")
	}

	u.raw = strings.TrimRight(parsed.String(), "/")
	return nil
}

// Type names the value kind in pflag usage output.
func (u *BaseURL) Type() string {
	return "url"
}
