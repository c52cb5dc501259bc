package config

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/musicplayer/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage        = "app_language"
	KeyLastDirectory   = "last_directory"
	KeyAudioExtensions = "audio_extensions"
	KeyRefreshInterval = "refresh_interval_ms"
	KeyPreviewDelay    = "preview_delay_ms"
	KeyAutoAdvance     = "auto_advance"
)

// Default values
const (
	DefaultLanguage        = "system"
	DefaultAudioExtensions = ".mp3"
	DefaultRefreshInterval = 1000
	DefaultPreviewDelay    = 100
	DefaultAutoAdvance     = false
)

// Bounds for timing preferences, in milliseconds
const (
	MinRefreshInterval = 100
	MaxRefreshInterval = 5000
	MinPreviewDelay    = 10
	MaxPreviewDelay    = 2000
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLastDirectory returns the folder the file picker opens in
func (s *Settings) GetLastDirectory() string {
	dir := s.app.Preferences().String(KeyLastDirectory)
	if dir == "" {
		defaultDir, err := platform.GetHomeMusicDir()
		if err != nil {
			return ""
		}
		return defaultDir
	}
	return dir
}

// SetLastDirectory remembers the folder of the last selection
func (s *Settings) SetLastDirectory(dir string) {
	s.app.Preferences().SetString(KeyLastDirectory, dir)
}

// GetAudioExtensions returns the extensions offered by the file picker
func (s *Settings) GetAudioExtensions() []string {
	raw := s.app.Preferences().String(KeyAudioExtensions)
	exts := platform.NormalizeExtensions(strings.Split(raw, ","))
	if len(exts) == 0 {
		return platform.NormalizeExtensions([]string{DefaultAudioExtensions})
	}
	return exts
}

// SetAudioExtensions stores a comma separated extension list
func (s *Settings) SetAudioExtensions(exts []string) {
	normalized := platform.NormalizeExtensions(exts)
	if len(normalized) == 0 {
		normalized = []string{DefaultAudioExtensions}
	}
	s.app.Preferences().SetString(KeyAudioExtensions, strings.Join(normalized, ","))
}

// GetRefreshInterval returns the progress refresh cadence
func (s *Settings) GetRefreshInterval() time.Duration {
	ms := s.app.Preferences().IntWithFallback(KeyRefreshInterval, DefaultRefreshInterval)
	return time.Duration(clamp(ms, MinRefreshInterval, MaxRefreshInterval)) * time.Millisecond
}

// SetRefreshInterval sets the progress refresh cadence
func (s *Settings) SetRefreshInterval(d time.Duration) {
	ms := clamp(int(d.Milliseconds()), MinRefreshInterval, MaxRefreshInterval)
	s.app.Preferences().SetInt(KeyRefreshInterval, ms)
}

// GetPreviewDelay returns the delay before the next track's duration is looked up
func (s *Settings) GetPreviewDelay() time.Duration {
	ms := s.app.Preferences().IntWithFallback(KeyPreviewDelay, DefaultPreviewDelay)
	return time.Duration(clamp(ms, MinPreviewDelay, MaxPreviewDelay)) * time.Millisecond
}

// SetPreviewDelay sets the next track lookup delay
func (s *Settings) SetPreviewDelay(d time.Duration) {
	ms := clamp(int(d.Milliseconds()), MinPreviewDelay, MaxPreviewDelay)
	s.app.Preferences().SetInt(KeyPreviewDelay, ms)
}

// GetAutoAdvance returns whether the next track starts when one finishes
func (s *Settings) GetAutoAdvance() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoAdvance, DefaultAutoAdvance)
}

// SetAutoAdvance sets whether the next track starts when one finishes
func (s *Settings) SetAutoAdvance(enabled bool) {
	s.app.Preferences().SetBool(KeyAutoAdvance, enabled)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
