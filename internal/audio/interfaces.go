package audio

import (
	"errors"
	"time"
)

var (
	// ErrUnsupportedFormat is returned for files whose extension has no decoder
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrNotLoaded is returned when Play is called before Load
	ErrNotLoaded = errors.New("no track loaded")
)

// Backend defines the audio operations the player controller relies on.
// Implementations are called from the UI goroutine only.
type Backend interface {
	// Load decodes the file and prepares it for playback without starting it
	Load(path string) error

	// Play starts the loaded track from the beginning
	Play() error

	Pause()
	Unpause()

	// Stop halts playback and releases the loaded track
	Stop()

	// IsBusy reports whether audio is currently being produced.
	// A paused, stopped or finished track is not busy.
	IsBusy() bool

	// Length returns the duration of any file without loading it for playback
	Length(path string) (time.Duration, error)
}
