package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	gawav "github.com/go-audio/wav"
)

// ProbeLength returns the duration of an audio file. WAV files are measured
// from their header; other formats are decoded and counted in samples.
func ProbeLength(path string) (time.Duration, error) {
	if strings.ToLower(filepath.Ext(path)) == ExtWAV {
		if d, err := wavHeaderLength(path); err == nil {
			return d, nil
		}
	}

	streamer, format, err := decodeFile(path)
	if err != nil {
		return 0, err
	}
	defer streamer.Close()

	return format.SampleRate.D(streamer.Len()), nil
}

func wavHeaderLength(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	dec := gawav.NewDecoder(f)
	if !dec.IsValidFile() {
		return 0, fmt.Errorf("%q is not a valid wav file", path)
	}
	return dec.Duration()
}
