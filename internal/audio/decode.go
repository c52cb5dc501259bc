package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/wav"
)

// Supported file extensions
const (
	ExtMP3 = ".mp3"
	ExtWAV = ".wav"
)

// SupportedExtensions lists the extensions the decoders understand
var SupportedExtensions = []string{ExtMP3, ExtWAV}

// IsSupported reports whether a decoder exists for the file extension
func IsSupported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtMP3, ExtWAV:
		return true
	}
	return false
}

// decodeFile opens and decodes path. Closing the returned streamer closes the file.
func decodeFile(path string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !IsSupported(path) {
		return nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case ExtMP3:
		streamer, format, err = mp3.Decode(f)
	case ExtWAV:
		streamer, format, err = wav.Decode(f)
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %q: %w", path, err)
	}
	return streamer, format, nil
}
