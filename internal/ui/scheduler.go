package ui

import (
	"time"

	"fyne.io/fyne/v2"
)

// fyneScheduler delays callbacks with a timer and then hands them to the Fyne
// event loop, so the controller never runs off the UI goroutine.
type fyneScheduler struct{}

func (fyneScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, func() {
		fyne.Do(f)
	})
}
