// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the client business logic that sits between the
// terminal UI and the transport, storage and playback layers.
//
// [ClientServices] bundles three services:
//   - [StationService] parses user queries and searches the directory;
//   - [PlaybackService] resolves stream URLs, records plays and drives the
//     playback session controller;
//   - [LibraryService] manages favorites and play history.
package service
