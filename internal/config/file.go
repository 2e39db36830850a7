package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig mirrors [StructuredConfig] for config files. The same
// keys are accepted in JSON and YAML.
type StructuredFileConfig struct {
	App struct {
		LogFile   string `json:"log_file" yaml:"log_file"`
		LogLevel  string `json:"log_level" yaml:"log_level"`
		UserAgent string `json:"user_agent" yaml:"user_agent"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Directory struct {
		BaseURL        string   `json:"base_url" yaml:"base_url"`
		SkipDiscovery  bool     `json:"skip_discovery" yaml:"skip_discovery"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		SearchLimit    int      `json:"search_limit" yaml:"search_limit"`
	} `json:"directory,omitempty" yaml:"directory,omitempty"`

	Player struct {
		Binary         string   `json:"binary" yaml:"binary"`
		SocketDir      string   `json:"socket_dir" yaml:"socket_dir"`
		PollInterval   Duration `json:"poll_interval" yaml:"poll_interval"`
		FirstPollDelay Duration `json:"first_poll_delay" yaml:"first_poll_delay"`
		IPCTimeout     Duration `json:"ipc_timeout" yaml:"ipc_timeout"`
		TerminateGrace Duration `json:"terminate_grace" yaml:"terminate_grace"`
	} `json:"player,omitempty" yaml:"player,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`
}

// parseFile reads a config file. Files ending in .yaml or .yml are decoded as
// YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	cfg := &StructuredConfig{
		App: App{
			LogFile:   fileCfg.App.LogFile,
			LogLevel:  fileCfg.App.LogLevel,
			UserAgent: fileCfg.App.UserAgent,
		},
		Directory: Directory{
			BaseURL:        strings.TrimRight(fileCfg.Directory.BaseURL, "/"),
			SkipDiscovery:  fileCfg.Directory.SkipDiscovery,
			RequestTimeout: time.Duration(fileCfg.Directory.RequestTimeout),
			SearchLimit:    fileCfg.Directory.SearchLimit,
		},
		Player: Player{
			Binary:         fileCfg.Player.Binary,
			SocketDir:      fileCfg.Player.SocketDir,
			PollInterval:   time.Duration(fileCfg.Player.PollInterval),
			FirstPollDelay: time.Duration(fileCfg.Player.FirstPollDelay),
			IPCTimeout:     time.Duration(fileCfg.Player.IPCTimeout),
			TerminateGrace: time.Duration(fileCfg.Player.TerminateGrace),
		},
		Storage: Storage{
			DB: DB{DSN: fileCfg.Storage.DB.DSN},
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports unmarshaling from
// strings like "1h", "30s" in both JSON and YAML. Bare numbers are
// nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	if tmp, err := time.ParseDuration(s); err == nil {
		*d = Duration(tmp)
		return nil
	}

	var n int64
	if err := node.Decode(&n); err != nil {
		return fmt.Errorf("invalid duration %q", s)
	}
	*d = Duration(time.Duration(n))
	return nil
}
