//go:build !((linux && cgo) || windows || darwin)

package audio

import (
	"time"

	"go.uber.org/zap"
)

// AudioAvailable indicates whether audio playback is supported in this build.
// Speaker output requires cgo on Linux.
const AudioAvailable = false

// SpeakerBackend is a silent stand-in used when no speaker driver is compiled in.
// It validates and times files but never produces sound or finishes a track.
type SpeakerBackend struct {
	logger  *zap.Logger
	path    string
	playing bool
}

// NewSpeakerBackend creates a silent backend.
func NewSpeakerBackend(logger *zap.Logger) *SpeakerBackend {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Warn("audio output not available in this build")
	return &SpeakerBackend{logger: logger}
}

// Load checks that the file can be decoded.
func (b *SpeakerBackend) Load(path string) error {
	streamer, _, err := decodeFile(path)
	if err != nil {
		return err
	}
	streamer.Close()
	b.path = path
	b.playing = false
	return nil
}

// Play marks the loaded track as playing.
func (b *SpeakerBackend) Play() error {
	if b.path == "" {
		return ErrNotLoaded
	}
	b.playing = true
	return nil
}

// Pause is a no-op besides bookkeeping.
func (b *SpeakerBackend) Pause() { b.playing = false }

// Unpause is a no-op besides bookkeeping.
func (b *SpeakerBackend) Unpause() { b.playing = b.path != "" }

// Stop forgets the loaded track.
func (b *SpeakerBackend) Stop() {
	b.path = ""
	b.playing = false
}

// IsBusy returns true while "playing".
func (b *SpeakerBackend) IsBusy() bool { return b.playing }

// Length probes a file's duration.
func (b *SpeakerBackend) Length(path string) (time.Duration, error) {
	return ProbeLength(path)
}

var _ Backend = (*SpeakerBackend)(nil)
