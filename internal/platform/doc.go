package platform

// Package platform contains OS integration and filesystem helpers: picking
// audio files out of user selections, expanding folders into playlists, and
// revealing a track in the system file manager.
