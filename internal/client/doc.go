// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires local storage, the station directory, the playback session
// controller, the client services and the terminal UI into a single process
// lifecycle, and releases them in reverse order on exit.
package client
