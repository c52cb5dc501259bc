package player

// Package player holds the playback controller: the playlist cursor, the
// play/pause/stop state machine, the wall-clock based playback clock and the
// self-rescheduling refresh that keeps the display in sync.
//
// The controller is not safe for concurrent use. Every method, including the
// callbacks it hands to its Scheduler, must run on the same goroutine.
