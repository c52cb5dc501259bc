package player

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/musicplayer/internal/audio"
	"github.com/ytget/musicplayer/internal/model"
)

// Default timings
const (
	DefaultRefreshInterval = time.Second
	DefaultPreviewDelay    = 100 * time.Millisecond
)

// Options configures a Controller. Zero values fall back to defaults.
type Options struct {
	RefreshInterval time.Duration
	PreviewDelay    time.Duration
	AutoAdvance     bool // start the next track when one finishes
	Labels          *Labels
	Clock           Clock
	Logger          *zap.Logger
}

// Controller drives playback of a playlist through an audio backend
type Controller struct {
	backend   audio.Backend
	view      View
	scheduler Scheduler
	now       Clock
	logger    *zap.Logger
	labels    Labels

	refreshInterval time.Duration
	previewDelay    time.Duration
	autoAdvance     bool

	playlist *model.Playlist
	state    model.PlaybackState

	// playback clock
	start        time.Time
	pausedOffset time.Duration
	duration     time.Duration

	// generations used to drop callbacks scheduled for an older track or loop
	refreshGen uint64
	previewGen uint64
}

// NewController creates a controller in the Empty state and renders its initial labels
func NewController(backend audio.Backend, view View, scheduler Scheduler, opts Options) *Controller {
	c := &Controller{
		backend:         backend,
		view:            view,
		scheduler:       scheduler,
		now:             opts.Clock,
		logger:          opts.Logger,
		labels:          DefaultLabels(),
		refreshInterval: opts.RefreshInterval,
		previewDelay:    opts.PreviewDelay,
		autoAdvance:     opts.AutoAdvance,
		playlist:        model.NewPlaylist(nil),
		state:           model.StateEmpty,
	}
	if opts.Labels != nil {
		c.labels = *opts.Labels
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	if c.refreshInterval <= 0 {
		c.refreshInterval = DefaultRefreshInterval
	}
	if c.previewDelay <= 0 {
		c.previewDelay = DefaultPreviewDelay
	}

	c.render()
	return c
}

// State returns the current playback state
func (c *Controller) State() model.PlaybackState {
	return c.state
}

// Cursor returns the index of the active track
func (c *Controller) Cursor() int {
	return c.playlist.Cursor()
}

// Playlist returns the tracks in play order
func (c *Controller) Playlist() []*model.Track {
	return c.playlist.Tracks()
}

// Current returns the active track, nil when nothing was selected
func (c *Controller) Current() *model.Track {
	return c.playlist.Current()
}

// Duration returns the length of the active track
func (c *Controller) Duration() time.Duration {
	return c.duration
}

// PausedOffset returns the elapsed time recorded at the last pause
func (c *Controller) PausedOffset() time.Duration {
	return c.pausedOffset
}

// Elapsed returns how far into the active track playback is
func (c *Controller) Elapsed() time.Duration {
	switch c.state {
	case model.StatePlaying:
		if c.start.IsZero() {
			return 0
		}
		return max(0, c.now().Sub(c.start))
	case model.StatePaused:
		return c.pausedOffset
	default:
		return 0
	}
}

// Remaining returns the time left in the active track, never negative
func (c *Controller) Remaining() time.Duration {
	return max(0, c.duration-c.Elapsed())
}

// SetAutoAdvance toggles moving to the next track when one finishes
func (c *Controller) SetAutoAdvance(enabled bool) {
	c.autoAdvance = enabled
}

// SetRefreshInterval changes the progress refresh cadence. A running loop
// picks it up on its next tick. Non-positive values restore the default.
func (c *Controller) SetRefreshInterval(d time.Duration) {
	if d <= 0 {
		d = DefaultRefreshInterval
	}
	c.refreshInterval = d
}

// SetPreviewDelay changes the delay before the next track's length is looked up
func (c *Controller) SetPreviewDelay(d time.Duration) {
	if d <= 0 {
		d = DefaultPreviewDelay
	}
	c.previewDelay = d
}

// SetLabels replaces the display strings and re-renders
func (c *Controller) SetLabels(labels Labels) {
	c.labels = labels
	c.render()
}

// SelectSongs replaces the playlist and starts the first track.
// An empty selection is treated as a cancelled dialog and ignored.
func (c *Controller) SelectSongs(paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	c.playlist.Replace(paths)
	c.logger.Info("playlist selected", zap.Int("tracks", len(paths)))
	return c.LoadAndPlay(0)
}

// TogglePlayPause pauses a playing track or resumes a paused one.
// A stopped or finished track is started again from the beginning.
func (c *Controller) TogglePlayPause() error {
	if c.state == model.StateEmpty || c.playlist.IsEmpty() {
		return nil
	}

	busy := c.backend.IsBusy()
	switch {
	case c.state == model.StateStopped:
		return c.LoadAndPlay(c.playlist.Cursor())

	case c.state == model.StatePlaying && !busy:
		// finished but the refresh has not noticed yet
		return c.LoadAndPlay(c.playlist.Cursor())

	case busy:
		c.pausedOffset = c.Elapsed()
		c.backend.Pause()
		c.state = model.StatePaused
		c.refreshGen++
		c.view.SetPlayPauseText(c.labels.Play)
		c.logger.Debug("paused", zap.Duration("offset", c.pausedOffset))

	default:
		c.start = c.now().Add(-c.pausedOffset)
		c.backend.Unpause()
		c.state = model.StatePlaying
		c.view.SetPlayPauseText(c.labels.Pause)
		c.logger.Debug("resumed", zap.Duration("offset", c.pausedOffset))
		c.startRefresh()
	}
	return nil
}

// Next moves to the following track, wrapping to the first
func (c *Controller) Next() error {
	if !c.playlist.Next() {
		return nil
	}
	return c.LoadAndPlay(c.playlist.Cursor())
}

// Previous moves to the preceding track, wrapping to the last
func (c *Controller) Previous() error {
	if !c.playlist.Previous() {
		return nil
	}
	return c.LoadAndPlay(c.playlist.Cursor())
}

// LoadAndPlay loads the track at index, starts it and resets the playback clock
func (c *Controller) LoadAndPlay(index int) error {
	if !c.playlist.Select(index) {
		return nil
	}
	track := c.playlist.Current()

	if err := c.backend.Load(track.Path); err != nil {
		return c.fail(track, fmt.Errorf("load %q: %w", track.Path, err))
	}
	if err := c.backend.Play(); err != nil {
		return c.fail(track, fmt.Errorf("play %q: %w", track.Path, err))
	}

	c.start = c.now()
	c.pausedOffset = 0
	c.state = model.StatePlaying

	length, err := c.backend.Length(track.Path)
	if err != nil {
		c.logger.Warn("track length unavailable", zap.String("path", track.Path), zap.Error(err))
		length = 0
	}
	track.Duration = length
	c.duration = length

	c.logger.Info("playing",
		zap.String("track", track.Name()),
		zap.Int("index", c.playlist.Cursor()),
		zap.Duration("duration", length))

	c.view.SetNowPlaying(fmt.Sprintf(c.labels.NowPlaying, track.Name()))
	c.view.SetProgressMax(length.Seconds())
	c.view.SetPlayPauseText(c.labels.Pause)
	c.refreshNextLabel()
	c.startRefresh()
	return nil
}

// Stop halts playback and zeroes the clock. The playlist and cursor are kept.
func (c *Controller) Stop() {
	c.backend.Stop()
	c.refreshGen++
	c.resetClock()
	if c.state.IsLoaded() {
		c.state = model.StateStopped
	}
	c.view.SetPlayPauseText(c.labels.Play)
	c.renderIdleTime()
	c.logger.Debug("stopped")
}

// Refresh updates progress and remaining time from the playback clock.
// It returns true while the backend is producing audio.
func (c *Controller) Refresh() bool {
	if !c.backend.IsBusy() {
		c.renderIdleTime()
		if c.state.IsPlaying() {
			c.onTrackFinished()
		}
		return false
	}

	elapsed := c.Elapsed()
	remaining := max(0, c.duration-elapsed)
	c.view.SetProgress(elapsed.Seconds())
	c.view.SetTimeText(c.timeSpan(c.duration, remaining))
	return true
}

// startRefresh renders now and keeps refreshing every interval until the
// backend goes idle or another loop replaces this one.
func (c *Controller) startRefresh() {
	c.refreshGen++
	c.refreshTick(c.refreshGen)
}

func (c *Controller) refreshTick(gen uint64) {
	if gen != c.refreshGen {
		return
	}
	if c.Refresh() {
		c.scheduler.AfterFunc(c.refreshInterval, func() { c.refreshTick(gen) })
	}
}

func (c *Controller) onTrackFinished() {
	track := c.playlist.Current()
	c.logger.Info("track finished", zap.String("track", track.Name()))

	c.resetClock()
	c.state = model.StateStopped
	c.view.SetPlayPauseText(c.labels.Play)

	if !c.autoAdvance {
		return
	}
	gen := c.refreshGen
	c.scheduler.AfterFunc(0, func() {
		// a user action in between takes precedence
		if gen != c.refreshGen || c.state != model.StateStopped {
			return
		}
		if err := c.Next(); err != nil {
			c.logger.Error("auto advance", zap.Error(err))
		}
	})
}

// refreshNextLabel shows the following track and schedules a lookup of its duration
func (c *Controller) refreshNextLabel() {
	c.previewGen++
	next := c.playlist.PeekNext()
	if next == nil {
		c.view.SetNextText(c.labels.NextNone)
		return
	}

	c.view.SetNextText(fmt.Sprintf(c.labels.Next, next.Name()))
	gen := c.previewGen
	c.scheduler.AfterFunc(c.previewDelay, func() { c.previewNext(gen, next) })
}

func (c *Controller) previewNext(gen uint64, next *model.Track) {
	if gen != c.previewGen {
		return
	}
	if !next.HasDuration() {
		d, err := c.backend.Length(next.Path)
		if err != nil {
			c.logger.Warn("next track length unavailable", zap.String("path", next.Path), zap.Error(err))
			return
		}
		next.Duration = d
	}
	c.view.SetNextText(c.nextText(next))
}

func (c *Controller) nextText(next *model.Track) string {
	if next == nil {
		return c.labels.NextNone
	}
	if next.HasDuration() {
		return fmt.Sprintf(c.labels.NextWithDuration, next.Name(), model.FormatDuration(next.Duration))
	}
	return fmt.Sprintf(c.labels.Next, next.Name())
}

func (c *Controller) fail(track *model.Track, err error) error {
	c.logger.Error("playback failed", zap.String("path", track.Path), zap.Error(err))
	c.backend.Stop()
	c.refreshGen++
	c.resetClock()
	c.duration = 0
	c.state = model.StateStopped
	c.view.SetNowPlaying(c.labels.NoSong)
	c.view.SetProgressMax(0)
	c.view.SetPlayPauseText(c.labels.Play)
	c.renderIdleTime()
	c.refreshNextLabel()
	return err
}

func (c *Controller) resetClock() {
	c.start = time.Time{}
	c.pausedOffset = 0
}

func (c *Controller) renderIdleTime() {
	c.view.SetProgress(0)
	c.view.SetTimeText(c.timeSpan(0, 0))
}

func (c *Controller) timeSpan(total, remaining time.Duration) string {
	return fmt.Sprintf(c.labels.TimeSpan, model.FormatDuration(total), model.FormatDuration(remaining))
}

// render redraws every label from the current state
func (c *Controller) render() {
	switch c.state {
	case model.StateEmpty:
		c.view.SetNowPlaying(c.labels.NoSong)
		c.view.SetNextText(c.labels.NextNone)
		c.view.SetProgressMax(0)
		c.view.SetPlayPauseText(c.labels.Play)
		c.renderIdleTime()
		return
	case model.StatePlaying:
		c.view.SetPlayPauseText(c.labels.Pause)
	default:
		c.view.SetPlayPauseText(c.labels.Play)
	}

	c.view.SetNowPlaying(fmt.Sprintf(c.labels.NowPlaying, c.playlist.Current().Name()))
	c.view.SetNextText(c.nextText(c.playlist.PeekNext()))

	if c.state == model.StatePaused {
		c.view.SetProgress(c.pausedOffset.Seconds())
		c.view.SetTimeText(c.timeSpan(c.duration, c.Remaining()))
		return
	}
	c.Refresh()
}
