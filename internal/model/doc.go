package model

// Package model defines domain data structures used across the app: tracks,
// the playlist with its cursor, and playback state enums. Structures are kept
// free of UI and audio dependencies so the controller can be tested directly.
