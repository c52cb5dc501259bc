//go:build (linux && cgo) || windows || darwin

package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"go.uber.org/zap"
)

// AudioAvailable indicates whether audio playback is supported in this build.
const AudioAvailable = true

// DefaultSampleRate is the rate the speaker is opened with; tracks are resampled to it.
const DefaultSampleRate = beep.SampleRate(44100)

// SpeakerBackend plays one track at a time through the beep speaker.
type SpeakerBackend struct {
	mu     sync.Mutex
	logger *zap.Logger

	initialized bool
	sampleRate  beep.SampleRate

	path     string
	streamer beep.StreamSeekCloser
	ctrl     *beep.Ctrl
	queued   bool
	drained  *atomic.Bool
}

// NewSpeakerBackend creates a backend; the speaker itself is opened on first Load.
func NewSpeakerBackend(logger *zap.Logger) *SpeakerBackend {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SpeakerBackend{
		logger:     logger,
		sampleRate: DefaultSampleRate,
	}
}

func (b *SpeakerBackend) initSpeakerLocked() error {
	if b.initialized {
		return nil
	}
	if err := speaker.Init(b.sampleRate, b.sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	b.initialized = true
	b.logger.Debug("speaker initialized", zap.Int("sample_rate", int(b.sampleRate)))
	return nil
}

// Load decodes path and leaves it paused at the start.
func (b *SpeakerBackend) Load(path string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.stopLocked()

	streamer, format, err := decodeFile(path)
	if err != nil {
		return err
	}
	if err := b.initSpeakerLocked(); err != nil {
		streamer.Close()
		return err
	}

	var s beep.Streamer = streamer
	if format.SampleRate != b.sampleRate {
		s = beep.Resample(4, format.SampleRate, b.sampleRate, streamer)
	}

	b.path = path
	b.streamer = streamer
	b.ctrl = &beep.Ctrl{Streamer: s, Paused: true}
	b.queued = false
	b.logger.Debug("track loaded", zap.String("path", path), zap.Int("sample_rate", int(format.SampleRate)))
	return nil
}

// Play rewinds the loaded track and starts it.
func (b *SpeakerBackend) Play() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ctrl == nil {
		return ErrNotLoaded
	}

	speaker.Lock()
	err := b.streamer.Seek(0)
	b.ctrl.Paused = false
	speaker.Unlock()
	if err != nil {
		return fmt.Errorf("rewind %q: %w", b.path, err)
	}

	if !b.queued || b.drained.Load() {
		drained := &atomic.Bool{}
		b.drained = drained
		b.queued = true
		// The callback runs on the speaker goroutine; it only flips a flag.
		speaker.Play(beep.Seq(b.ctrl, beep.Callback(func() {
			drained.Store(true)
		})))
	}
	return nil
}

// Pause pauses playback.
func (b *SpeakerBackend) Pause() {
	b.setPaused(true)
}

// Unpause resumes playback.
func (b *SpeakerBackend) Unpause() {
	b.setPaused(false)
}

func (b *SpeakerBackend) setPaused(paused bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ctrl == nil {
		return
	}
	speaker.Lock()
	b.ctrl.Paused = paused
	speaker.Unlock()
}

// Stop halts playback and closes the decoder.
func (b *SpeakerBackend) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopLocked()
}

// stopLocked must be called with b.mu held.
func (b *SpeakerBackend) stopLocked() {
	if b.initialized {
		speaker.Clear()
	}
	if b.streamer != nil {
		if err := b.streamer.Close(); err != nil {
			b.logger.Warn("close streamer", zap.String("path", b.path), zap.Error(err))
		}
	}
	b.streamer = nil
	b.ctrl = nil
	b.queued = false
	b.drained = nil
	b.path = ""
}

// IsBusy reports whether the loaded track is audible.
func (b *SpeakerBackend) IsBusy() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ctrl == nil || !b.queued || b.drained.Load() {
		return false
	}

	speaker.Lock()
	paused := b.ctrl.Paused
	speaker.Unlock()
	return !paused
}

// Length probes a file's duration.
func (b *SpeakerBackend) Length(path string) (time.Duration, error) {
	return ProbeLength(path)
}

var _ Backend = (*SpeakerBackend)(nil)
