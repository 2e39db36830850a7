// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Field-level rules live on [ClientConfig.validate]; the structured view only
// rejects values no consumer could use.
func (cfg *StructuredConfig) validate() error {
	if cfg.Directory.SearchLimit < 0 {
		return ErrInvalidDirectoryConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Directory.BaseURL == "" || cfg.Directory.RequestTimeout <= 0 || cfg.Directory.SearchLimit <= 0 {
		return ErrInvalidDirectoryConfigs
	}

	if cfg.Player.Binary == "" || cfg.Player.SocketDir == "" ||
		cfg.Player.PollInterval <= 0 || cfg.Player.FirstPollDelay <= 0 ||
		cfg.Player.IPCTimeout <= 0 || cfg.Player.TerminateGrace <= 0 {
		return ErrInvalidPlayerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
