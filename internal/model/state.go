package model

// PlaybackState represents the state of the player controller
type PlaybackState string

const (
	// StateEmpty means no playlist has been selected yet
	StateEmpty PlaybackState = "Empty"

	// StatePlaying means a track is loaded and audible
	StatePlaying PlaybackState = "Playing"

	// StatePaused means a track is loaded and paused by the user
	StatePaused PlaybackState = "Paused"

	// StateStopped means a track is selected but playback was halted or finished
	StateStopped PlaybackState = "Stopped"
)

// String returns the string representation of PlaybackState
func (ps PlaybackState) String() string {
	return string(ps)
}

// IsLoaded returns true if a playlist is present
func (ps PlaybackState) IsLoaded() bool {
	return ps == StatePlaying || ps == StatePaused || ps == StateStopped
}

// IsPlaying returns true if the player is producing audio
func (ps PlaybackState) IsPlaying() bool {
	return ps == StatePlaying
}
