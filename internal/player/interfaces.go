package player

import "time"

// View receives display updates from the controller
type View interface {
	SetNowPlaying(text string)
	SetTimeText(text string)
	SetNextText(text string)
	SetProgressMax(max float64)
	SetProgress(value float64)
	SetPlayPauseText(text string)
}

// Scheduler runs f once after d on the controller's goroutine
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

// Clock returns the current wall-clock time
type Clock func() time.Time

// Labels holds the display strings. Fields ending in a format verb are passed to fmt.Sprintf.
type Labels struct {
	Play             string
	Pause            string
	NoSong           string
	NowPlaying       string // %s = track name
	NextNone         string
	Next             string // %s = track name
	NextWithDuration string // %s = track name, %s = duration
	TimeSpan         string // %s = total, %s = remaining
}

// DefaultLabels returns the English display strings
func DefaultLabels() Labels {
	return Labels{
		Play:             "Play",
		Pause:            "Pause",
		NoSong:           "No song playing",
		NowPlaying:       "Now playing: %s",
		NextNone:         "Next: None",
		Next:             "Next: %s",
		NextWithDuration: "Next: %s (%s)",
		TimeSpan:         "Total: %s | Remaining: %s",
	}
}
