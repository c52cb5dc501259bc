package model

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Track represents a single local audio file in the playlist
type Track struct {
	ID       string
	Path     string
	Duration time.Duration // zero until probed by the audio backend
}

// NewTrack creates a track for the given file path
func NewTrack(path string) *Track {
	return &Track{
		ID:   uuid.NewString(),
		Path: path,
	}
}

// Name returns the file name shown in the UI
func (t *Track) Name() string {
	if t == nil || t.Path == "" {
		return ""
	}
	return filepath.Base(t.Path)
}

// HasDuration reports whether the track length has been probed
func (t *Track) HasDuration() bool {
	return t != nil && t.Duration > 0
}

// FormatTime renders seconds as m:ss. Minutes are not rolled over into hours,
// so an hour renders as "60:00". Fractions are truncated and negative input
// renders as "0:00".
func FormatTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// FormatDuration is FormatTime for a time.Duration
func FormatDuration(d time.Duration) string {
	return FormatTime(d.Seconds())
}
