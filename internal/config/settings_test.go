package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLastDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	customDir := "/custom/music"
	settings.SetLastDirectory(customDir)

	retrievedDir := settings.GetLastDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected last directory %s, got %s", customDir, retrievedDir)
	}
}

func TestAudioExtensions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	exts := settings.GetAudioExtensions()
	if len(exts) != 1 || exts[0] != ".mp3" {
		t.Errorf("Expected default extensions [.mp3], got %v", exts)
	}

	// Test setting custom value with messy input
	settings.SetAudioExtensions([]string{"MP3", " .wav", "mp3", ""})
	exts = settings.GetAudioExtensions()
	expected := []string{".mp3", ".wav"}
	if len(exts) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, exts)
	}
	for i := range expected {
		if exts[i] != expected[i] {
			t.Errorf("Extension %d: expected %s, got %s", i, expected[i], exts[i])
		}
	}

	// Test empty list defaults back
	settings.SetAudioExtensions(nil)
	exts = settings.GetAudioExtensions()
	if len(exts) != 1 || exts[0] != ".mp3" {
		t.Errorf("Empty extensions should default to [.mp3], got %v", exts)
	}
}

func TestRefreshInterval(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if got := settings.GetRefreshInterval(); got != time.Second {
		t.Errorf("Expected default refresh interval 1s, got %v", got)
	}

	settings.SetRefreshInterval(500 * time.Millisecond)
	if got := settings.GetRefreshInterval(); got != 500*time.Millisecond {
		t.Errorf("Expected refresh interval 500ms, got %v", got)
	}

	// Test boundary values
	settings.SetRefreshInterval(time.Millisecond) // Should be clamped to 100ms
	if settings.GetRefreshInterval() != 100*time.Millisecond {
		t.Error("Refresh interval should be clamped to minimum 100ms")
	}

	settings.SetRefreshInterval(time.Minute) // Should be clamped to 5s
	if settings.GetRefreshInterval() != 5*time.Second {
		t.Error("Refresh interval should be clamped to maximum 5s")
	}
}

func TestPreviewDelay(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetPreviewDelay(); got != 100*time.Millisecond {
		t.Errorf("Expected default preview delay 100ms, got %v", got)
	}

	settings.SetPreviewDelay(0)
	if got := settings.GetPreviewDelay(); got != 10*time.Millisecond {
		t.Errorf("Preview delay should be clamped to minimum 10ms, got %v", got)
	}

	app.Preferences().SetInt(KeyPreviewDelay, 99999)
	if got := settings.GetPreviewDelay(); got != 2*time.Second {
		t.Errorf("Stored out of range delay should read back clamped, got %v", got)
	}
}

func TestAutoAdvance(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetAutoAdvance() != DefaultAutoAdvance {
		t.Errorf("Expected default auto advance %v", DefaultAutoAdvance)
	}

	settings.SetAutoAdvance(true)
	if !settings.GetAutoAdvance() {
		t.Error("Expected auto advance to be enabled")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
