// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package player manages playback sessions of an external mpv decoder.
//
// A [Controller] owns at most one decoder subprocess at a time. Every Play
// allocates a new session id; timers, process waiters and metadata polls post
// events tagged with the id they were started for, and the controller's
// control loop drops every event whose id is no longer current. Metadata is
// read over mpv's JSON IPC socket by [IPCClient] and reduced to a single line
// of track text by [PickTrackText]. State changes are reported through a
// [Notifier].
package player
