// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the clio terminal user interface on top of
// bubbletea.
//
// The UI is a single model with a search box, three station lists (search
// results, favorites and play history), a now-playing bar and a status line.
// Playback notifications from the session controller reach the model through
// [Notifier], a non-blocking buffered channel drained by a tea.Cmd.
package tui
