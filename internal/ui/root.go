package ui

import (
	"fmt"
	"path/filepath"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/musicplayer/internal/audio"
	"github.com/ytget/musicplayer/internal/config"
	"github.com/ytget/musicplayer/internal/model"
	"github.com/ytget/musicplayer/internal/platform"
	"github.com/ytget/musicplayer/internal/player"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	logger       *zap.Logger
	controller   *player.Controller

	currentSongLabel *widget.Label
	timeSpanLabel    *widget.Label
	nextSongLabel    *widget.Label
	progressBar      *widget.ProgressBar

	playPauseBtn *widget.Button
	previousBtn  *widget.Button
	nextBtn      *widget.Button
	listSongsBtn *widget.Button
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, settings *config.Settings, backend audio.Backend, logger *zap.Logger) *RootUI {
	ui := newRootUI(window, settings, backend, logger, fyneScheduler{})
	if !audio.AudioAvailable {
		dialog.ShowInformation(ui.localization.GetText(KeyAppTitle), ui.localization.GetText(KeyAudioUnavailable), window)
	}
	return ui
}

func newRootUI(window fyne.Window, settings *config.Settings, backend audio.Backend, logger *zap.Logger, scheduler player.Scheduler) *RootUI {
	if logger == nil {
		logger = zap.NewNop()
	}

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		logger:       logger,
	}

	// Widgets must exist before the controller renders into them
	ui.setupUI()

	labels := localization.PlayerLabels()
	ui.controller = player.NewController(backend, ui, scheduler, player.Options{
		RefreshInterval: settings.GetRefreshInterval(),
		PreviewDelay:    settings.GetPreviewDelay(),
		AutoAdvance:     settings.GetAutoAdvance(),
		Labels:          &labels,
		Logger:          logger.Named("player"),
	})

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetOnClosed(func() {
		ui.controller.Stop()
	})

	logger.Debug("root UI initialized", zap.String("language", localization.GetCurrentLanguage()))
	return ui
}

// Controller returns the playback controller driving this window
func (ui *RootUI) Controller() *player.Controller {
	return ui.controller
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.currentSongLabel = widget.NewLabel("")
	ui.currentSongLabel.Alignment = fyne.TextAlignCenter
	ui.currentSongLabel.Truncation = fyne.TextTruncateEllipsis
	ui.currentSongLabel.TextStyle = fyne.TextStyle{Bold: true}

	ui.timeSpanLabel = widget.NewLabel("")
	ui.timeSpanLabel.Alignment = fyne.TextAlignCenter

	ui.nextSongLabel = widget.NewLabel("")
	ui.nextSongLabel.Alignment = fyne.TextAlignCenter
	ui.nextSongLabel.Truncation = fyne.TextTruncateEllipsis

	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.TextFormatter = func() string {
		return model.FormatTime(ui.progressBar.Value)
	}

	ui.playPauseBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyPlay), theme.MediaPlayIcon(), ui.onPlayPause)
	ui.playPauseBtn.Importance = widget.HighImportance
	ui.previousBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyPreviousSong), theme.MediaSkipPreviousIcon(), ui.onPrevious)
	ui.nextBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyNextSong), theme.MediaSkipNextIcon(), ui.onNext)
	ui.listSongsBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyListSongs), theme.FolderOpenIcon(), ui.onListSongs)

	buttons := container.NewGridWithColumns(4, ui.playPauseBtn, ui.previousBtn, ui.nextBtn, ui.listSongsBtn)

	content := container.NewVBox(
		ui.currentSongLabel,
		ui.timeSpanLabel,
		ui.nextSongLabel,
		container.NewPadded(ui.progressBar),
		buttons,
	)
	ui.window.SetContent(container.NewPadded(content))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	fileMenu := fyne.NewMenu(ui.localization.GetText(KeyFile),
		fyne.NewMenuItem(ui.localization.GetText(KeyOpenFile), ui.onOpenFile),
		fyne.NewMenuItem(ui.localization.GetText(KeyListSongs), ui.onListSongs),
		fyne.NewMenuItem(ui.localization.GetText(KeyShowInFolder), ui.onShowInFolder),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings),
	)

	playbackMenu := fyne.NewMenu(ui.localization.GetText(KeyPlayback),
		fyne.NewMenuItem(ui.localization.GetText(KeyPlay)+" / "+ui.localization.GetText(KeyPause), ui.onPlayPause),
		fyne.NewMenuItem(ui.localization.GetText(KeyStop), ui.onStop),
		fyne.NewMenuItem(ui.localization.GetText(KeyPreviousSong), ui.onPrevious),
		fyne.NewMenuItem(ui.localization.GetText(KeyNextSong), ui.onNext),
	)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu, playbackMenu, languageMenu))
}

// View implementation. The controller only calls these on the UI goroutine.

// SetNowPlaying updates the current track label
func (ui *RootUI) SetNowPlaying(text string) {
	ui.currentSongLabel.SetText(text)
}

// SetTimeText updates the total/remaining label
func (ui *RootUI) SetTimeText(text string) {
	ui.timeSpanLabel.SetText(text)
}

// SetNextText updates the next track label
func (ui *RootUI) SetNextText(text string) {
	ui.nextSongLabel.SetText(text)
}

// SetProgressMax sets the progress bar upper bound in seconds.
// Unknown lengths keep a bound of one second so the bar stays empty.
func (ui *RootUI) SetProgressMax(max float64) {
	if max <= 0 {
		max = minProgressMax
	}
	ui.progressBar.Max = max
	ui.progressBar.Refresh()
}

// SetProgress sets the progress bar position in seconds
func (ui *RootUI) SetProgress(value float64) {
	ui.progressBar.SetValue(value)
}

// SetPlayPauseText updates the toggle button to show the action it performs
func (ui *RootUI) SetPlayPauseText(text string) {
	ui.playPauseBtn.SetText(text)
	if text == ui.localization.GetText(KeyPause) {
		ui.playPauseBtn.SetIcon(theme.MediaPauseIcon())
	} else {
		ui.playPauseBtn.SetIcon(theme.MediaPlayIcon())
	}
}

// onPlayPause handles the play/pause button
func (ui *RootUI) onPlayPause() {
	ui.showError(ui.controller.TogglePlayPause())
}

// onNext handles the next button
func (ui *RootUI) onNext() {
	ui.showError(ui.controller.Next())
}

// onPrevious handles the previous button
func (ui *RootUI) onPrevious() {
	ui.showError(ui.controller.Previous())
}

// onStop handles the stop menu item
func (ui *RootUI) onStop() {
	ui.controller.Stop()
}

// onListSongs opens a folder picker; the audio files in the folder become the playlist
func (ui *RootUI) onListSongs() {
	fd := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			ui.showError(ui.openError(err))
			return
		}
		if uri == nil {
			return // cancelled
		}
		ui.selectFolder(uri.Path())
	}, ui.window)

	ui.setDialogLocation(fd)
	fd.Resize(fyne.NewSize(DialogWidth, DialogHeight))
	fd.Show()
}

// onOpenFile opens a single audio file as a one-track playlist
func (ui *RootUI) onOpenFile() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			ui.showError(ui.openError(err))
			return
		}
		if reader == nil {
			return // cancelled
		}
		path := reader.URI().Path()
		if cerr := reader.Close(); cerr != nil {
			ui.logger.Warn("close picked file", zap.String("path", path), zap.Error(cerr))
		}

		ui.settings.SetLastDirectory(filepath.Dir(path))
		ui.selectSongs([]string{path})
	}, ui.window)

	fd.SetFilter(storage.NewExtensionFileFilter(ui.settings.GetAudioExtensions()))
	ui.setDialogLocation(fd)
	fd.Resize(fyne.NewSize(DialogWidth, DialogHeight))
	fd.Show()
}

// setDialogLocation starts the picker in the last used folder when it still exists
func (ui *RootUI) setDialogLocation(fd *dialog.FileDialog) {
	dir := ui.settings.GetLastDirectory()
	if dir == "" {
		return
	}
	lister, err := storage.ListerForURI(storage.NewFileURI(dir))
	if err != nil {
		ui.logger.Debug("last directory unavailable", zap.String("dir", dir), zap.Error(err))
		return
	}
	fd.SetLocation(lister)
}

// selectFolder builds the playlist from the audio files inside dir
func (ui *RootUI) selectFolder(dir string) {
	files, err := platform.ListAudioFiles(dir, ui.settings.GetAudioExtensions())
	if err != nil {
		ui.showError(ui.openError(err))
		return
	}
	ui.settings.SetLastDirectory(dir)

	if len(files) == 0 {
		dialog.ShowInformation(ui.localization.GetText(KeyListSongs), ui.localization.GetText(KeyNoAudioFiles), ui.window)
		return
	}
	ui.selectSongs(files)
}

// OpenPaths starts playing files and folders passed on the command line
func (ui *RootUI) OpenPaths(paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	files, err := platform.ExpandAudioPaths(paths, ui.settings.GetAudioExtensions())
	if err != nil {
		return err
	}
	if len(files) > 0 {
		ui.settings.SetLastDirectory(filepath.Dir(files[0]))
	}
	return ui.controller.SelectSongs(files)
}

func (ui *RootUI) selectSongs(paths []string) {
	ui.showError(ui.controller.SelectSongs(paths))
}

// onShowInFolder reveals the current track in the file manager
func (ui *RootUI) onShowInFolder() {
	track := ui.controller.Current()
	if track == nil {
		return
	}
	if err := platform.OpenFileInManager(track.Path); err != nil {
		ui.logger.Warn("reveal in folder", zap.String("path", track.Path), zap.Error(err))
		dialog.ShowError(err, ui.window)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.applySettings)
}

// applySettings pushes saved preferences into the running controller
func (ui *RootUI) applySettings() {
	ui.controller.SetAutoAdvance(ui.settings.GetAutoAdvance())
	ui.controller.SetRefreshInterval(ui.settings.GetRefreshInterval())
	ui.controller.SetPreviewDelay(ui.settings.GetPreviewDelay())
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.settings.SetLanguage(langCode)
	ui.localization.SetLanguage(langCode)
	ui.refreshUITexts()
}

// refreshUITexts re-applies every localized string
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.previousBtn.SetText(ui.localization.GetText(KeyPreviousSong))
	ui.nextBtn.SetText(ui.localization.GetText(KeyNextSong))
	ui.listSongsBtn.SetText(ui.localization.GetText(KeyListSongs))
	ui.createMenu()
	ui.controller.SetLabels(ui.localization.PlayerLabels())
}

// openError prefixes a picker or listing failure with the localized title
func (ui *RootUI) openError(err error) error {
	return fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err)
}

// showError logs and displays err; nil is ignored
func (ui *RootUI) showError(err error) {
	if err == nil {
		return
	}
	ui.logger.Error("player action failed", zap.Error(err))
	dialog.ShowError(err, ui.window)
}
