package ui

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/musicplayer/internal/config"
	"github.com/ytget/musicplayer/internal/model"
)

// stubBackend pretends every file plays for two minutes
type stubBackend struct {
	loaded  string
	busy    bool
	loadErr error
	stops   int
}

func (b *stubBackend) Load(path string) error {
	if b.loadErr != nil {
		return b.loadErr
	}
	b.loaded = path
	b.busy = false
	return nil
}

func (b *stubBackend) Play() error {
	b.busy = b.loaded != ""
	return nil
}

func (b *stubBackend) Pause()       { b.busy = false }
func (b *stubBackend) Unpause()     { b.busy = b.loaded != "" }
func (b *stubBackend) IsBusy() bool { return b.busy }

func (b *stubBackend) Stop() {
	b.stops++
	b.loaded = ""
	b.busy = false
}

func (b *stubBackend) Length(path string) (time.Duration, error) {
	return 2 * time.Minute, nil
}

// heldScheduler keeps callbacks without running them
type heldScheduler struct {
	pending []func()
	delays  []time.Duration
}

func (s *heldScheduler) AfterFunc(d time.Duration, f func()) {
	s.pending = append(s.pending, f)
	s.delays = append(s.delays, d)
}

func newTestUI(t *testing.T) (*RootUI, *stubBackend, *config.Settings) {
	t.Helper()
	return newTestUIWithScheduler(t, &heldScheduler{})
}

func newTestUIWithScheduler(t *testing.T, scheduler *heldScheduler) (*RootUI, *stubBackend, *config.Settings) {
	t.Helper()

	app := test.NewApp()
	window := test.NewWindow(widget.NewLabel(""))
	settings := config.NewSettings(app)
	settings.SetLanguage("en")

	backend := &stubBackend{}
	ui := newRootUI(window, settings, backend, zap.NewNop(), scheduler)
	return ui, backend, settings
}

func TestNewRootUI_InitialState(t *testing.T) {
	ui, _, _ := newTestUI(t)

	if ui.currentSongLabel.Text != "No song playing" {
		t.Errorf("Expected 'No song playing', got '%s'", ui.currentSongLabel.Text)
	}
	if ui.timeSpanLabel.Text != "Total: 0:00 | Remaining: 0:00" {
		t.Errorf("Unexpected time label '%s'", ui.timeSpanLabel.Text)
	}
	if ui.nextSongLabel.Text != "Next: None" {
		t.Errorf("Expected 'Next: None', got '%s'", ui.nextSongLabel.Text)
	}
	if ui.playPauseBtn.Text != "Play" {
		t.Errorf("Expected play button 'Play', got '%s'", ui.playPauseBtn.Text)
	}
	if ui.window.Title() != "Music Player" {
		t.Errorf("Expected window title 'Music Player', got '%s'", ui.window.Title())
	}
}

func TestRootUI_SelectSongsAndNext(t *testing.T) {
	ui, _, _ := newTestUI(t)

	ui.selectSongs([]string{"/music/A.mp3", "/music/B.mp3"})

	if ui.currentSongLabel.Text != "Now playing: A.mp3" {
		t.Errorf("Expected 'Now playing: A.mp3', got '%s'", ui.currentSongLabel.Text)
	}
	if ui.nextSongLabel.Text != "Next: B.mp3" {
		t.Errorf("Expected 'Next: B.mp3', got '%s'", ui.nextSongLabel.Text)
	}
	if ui.playPauseBtn.Text != "Pause" {
		t.Errorf("Expected 'Pause', got '%s'", ui.playPauseBtn.Text)
	}
	if ui.progressBar.Max != 120 {
		t.Errorf("Expected progress max 120, got %v", ui.progressBar.Max)
	}

	test.Tap(ui.nextBtn)
	if ui.currentSongLabel.Text != "Now playing: B.mp3" {
		t.Errorf("Expected 'Now playing: B.mp3', got '%s'", ui.currentSongLabel.Text)
	}

	test.Tap(ui.nextBtn)
	if ui.currentSongLabel.Text != "Now playing: A.mp3" {
		t.Errorf("Expected wrap to A.mp3, got '%s'", ui.currentSongLabel.Text)
	}

	test.Tap(ui.previousBtn)
	if ui.Controller().Cursor() != 1 {
		t.Errorf("Expected cursor 1 after Previous, got %d", ui.Controller().Cursor())
	}
}

func TestRootUI_PlayPauseButton(t *testing.T) {
	ui, backend, _ := newTestUI(t)

	// Nothing selected yet
	test.Tap(ui.playPauseBtn)
	if ui.Controller().State() != model.StateEmpty {
		t.Fatalf("Toggle on empty playlist changed state to %s", ui.Controller().State())
	}

	ui.selectSongs([]string{"/music/A.mp3"})
	test.Tap(ui.playPauseBtn)

	if ui.playPauseBtn.Text != "Play" {
		t.Errorf("Expected 'Play' after pausing, got '%s'", ui.playPauseBtn.Text)
	}
	if backend.busy {
		t.Error("Backend should be paused")
	}

	test.Tap(ui.playPauseBtn)
	if ui.playPauseBtn.Text != "Pause" {
		t.Errorf("Expected 'Pause' after resuming, got '%s'", ui.playPauseBtn.Text)
	}
	if ui.Controller().State() != model.StatePlaying {
		t.Errorf("Expected Playing, got %s", ui.Controller().State())
	}
}

func TestRootUI_Stop(t *testing.T) {
	ui, backend, _ := newTestUI(t)
	ui.selectSongs([]string{"/music/A.mp3"})

	ui.onStop()

	if ui.Controller().State() != model.StateStopped {
		t.Errorf("Expected Stopped, got %s", ui.Controller().State())
	}
	if backend.stops != 1 {
		t.Errorf("Expected one backend stop, got %d", backend.stops)
	}
	if ui.progressBar.Value != 0 {
		t.Errorf("Expected progress reset, got %v", ui.progressBar.Value)
	}
}

func TestRootUI_LoadError(t *testing.T) {
	ui, backend, _ := newTestUI(t)
	backend.loadErr = errors.New("cannot decode")

	ui.selectSongs([]string{"/music/bad.mp3"})

	if ui.currentSongLabel.Text != "No song playing" {
		t.Errorf("Expected 'No song playing' after failure, got '%s'", ui.currentSongLabel.Text)
	}
	if ui.playPauseBtn.Text != "Play" {
		t.Errorf("Expected 'Play' after failure, got '%s'", ui.playPauseBtn.Text)
	}
}

func TestRootUI_SelectFolder(t *testing.T) {
	ui, _, settings := newTestUI(t)

	dir := t.TempDir()
	for _, name := range []string{"b.mp3", "a.mp3", "cover.jpg"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to create %s: %v", name, err)
		}
	}

	ui.selectFolder(dir)

	tracks := ui.Controller().Playlist()
	if len(tracks) != 2 {
		t.Fatalf("Expected 2 tracks, got %d", len(tracks))
	}
	if ui.currentSongLabel.Text != "Now playing: a.mp3" {
		t.Errorf("Expected 'Now playing: a.mp3', got '%s'", ui.currentSongLabel.Text)
	}
	if settings.GetLastDirectory() != dir {
		t.Errorf("Expected last directory %s, got %s", dir, settings.GetLastDirectory())
	}
}

func TestRootUI_SelectEmptyFolder(t *testing.T) {
	ui, _, _ := newTestUI(t)

	ui.selectFolder(t.TempDir())

	if ui.Controller().State() != model.StateEmpty {
		t.Errorf("Empty folder should not start playback, state %s", ui.Controller().State())
	}
}

func TestRootUI_OpenPaths(t *testing.T) {
	ui, _, _ := newTestUI(t)

	dir := t.TempDir()
	single := filepath.Join(dir, "single.mp3")
	if err := os.WriteFile(single, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	if err := ui.OpenPaths(nil); err != nil {
		t.Errorf("OpenPaths(nil) should be a no-op, got %v", err)
	}

	if err := ui.OpenPaths([]string{single}); err != nil {
		t.Fatalf("OpenPaths failed: %v", err)
	}
	if ui.currentSongLabel.Text != "Now playing: single.mp3" {
		t.Errorf("Expected 'Now playing: single.mp3', got '%s'", ui.currentSongLabel.Text)
	}

	if err := ui.OpenPaths([]string{filepath.Join(dir, "missing.mp3")}); err == nil {
		t.Error("Expected error for missing path")
	}
}

func TestRootUI_LanguageChange(t *testing.T) {
	ui, _, settings := newTestUI(t)
	ui.selectSongs([]string{"/music/A.mp3", "/music/B.mp3"})

	ui.onLanguageChange("ru")

	if settings.GetLanguage() != "ru" {
		t.Errorf("Expected stored language 'ru', got '%s'", settings.GetLanguage())
	}
	if ui.listSongsBtn.Text != "Выбрать песни" {
		t.Errorf("Expected Russian list button, got '%s'", ui.listSongsBtn.Text)
	}
	if ui.currentSongLabel.Text != "Сейчас играет: A.mp3" {
		t.Errorf("Expected Russian now playing label, got '%s'", ui.currentSongLabel.Text)
	}
	if ui.playPauseBtn.Text != "Пауза" {
		t.Errorf("Expected 'Пауза', got '%s'", ui.playPauseBtn.Text)
	}
}

func TestRootUI_ApplySettings(t *testing.T) {
	ui, _, settings := newTestUI(t)

	settings.SetLanguage("pt")
	settings.SetAutoAdvance(true)
	ui.applySettings()

	if ui.nextBtn.Text != "Próxima" {
		t.Errorf("Expected Portuguese next button, got '%s'", ui.nextBtn.Text)
	}
	if ui.currentSongLabel.Text != "Nenhuma música tocando" {
		t.Errorf("Expected Portuguese idle label, got '%s'", ui.currentSongLabel.Text)
	}
}

func TestRootUI_ProgressText(t *testing.T) {
	ui, _, _ := newTestUI(t)

	ui.SetProgressMax(300)
	ui.SetProgress(75)

	if got := ui.progressBar.TextFormatter(); got != "1:15" {
		t.Errorf("Expected progress text '1:15', got '%s'", got)
	}
}

func TestRootUI_ProgressBarLayoutWithoutTrack(t *testing.T) {
	ui, _, _ := newTestUI(t)

	if ui.progressBar.Max < 1 {
		t.Fatalf("Expected progress max of at least 1 while idle, got %v", ui.progressBar.Max)
	}

	renderer := test.TempWidgetRenderer(t, ui.progressBar)
	renderer.Layout(fyne.NewSize(200, 36))
	for _, obj := range renderer.Objects() {
		size := obj.Size()
		if math.IsNaN(float64(size.Width)) || math.IsNaN(float64(size.Height)) {
			t.Errorf("Object %T has invalid size %v", obj, size)
		}
	}

	ui.SetProgressMax(0)
	if ui.progressBar.Max != minProgressMax {
		t.Errorf("Expected unknown length to keep max %v, got %v", minProgressMax, ui.progressBar.Max)
	}
}

func TestRootUI_ApplySettingsTimings(t *testing.T) {
	scheduler := &heldScheduler{}
	ui, _, settings := newTestUIWithScheduler(t, scheduler)

	settings.SetRefreshInterval(300 * time.Millisecond)
	settings.SetPreviewDelay(40 * time.Millisecond)
	ui.applySettings()
	ui.selectSongs([]string{"/music/A.mp3", "/music/B.mp3"})

	var sawRefresh, sawPreview bool
	for _, d := range scheduler.delays {
		sawRefresh = sawRefresh || d == 300*time.Millisecond
		sawPreview = sawPreview || d == 40*time.Millisecond
	}
	if !sawRefresh || !sawPreview {
		t.Errorf("Expected 300ms refresh and 40ms lookup to be scheduled, got %v", scheduler.delays)
	}
}

func TestRootUI_OpenError(t *testing.T) {
	ui, _, _ := newTestUI(t)
	cause := errors.New("permission denied")

	err := ui.openError(cause)

	if !errors.Is(err, cause) {
		t.Errorf("Expected wrapped cause, got %v", err)
	}
	if err.Error() != "Error opening file: permission denied" {
		t.Errorf("Unexpected message '%s'", err.Error())
	}
}
