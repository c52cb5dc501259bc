package ui

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/musicplayer/internal/audio"
	"github.com/ytget/musicplayer/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	languageSelect  *widget.Select
	extensionsEntry *widget.Entry
	autoAdvanceChk  *widget.Check
	refreshEntry    *widget.Entry
	previewEntry    *widget.Entry

	// display name -> language code
	languageCodes map[string]string
}

// ShowSettingsDialog builds and shows the settings dialog; onSaved runs after a save
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, onSaved)
	sd.Show()
	return sd
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:      settings,
		localization:  localization,
		window:        window,
		onSaved:       onSaved,
		languageCodes: make(map[string]string),
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Language selection, shown by display name
	names := []string{}
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		names = append(names, name)
	}
	sort.Strings(names)
	sd.languageSelect = widget.NewSelect(names, nil)

	sd.extensionsEntry = widget.NewEntry()
	sd.extensionsEntry.SetPlaceHolder(strings.Join(audio.SupportedExtensions, ExtensionSeparator))

	sd.autoAdvanceChk = widget.NewCheck(sd.localization.GetText(KeyAutoAdvance), nil)

	sd.refreshEntry = widget.NewEntry()
	sd.refreshEntry.SetPlaceHolder(strconv.Itoa(config.DefaultRefreshInterval))
	sd.previewEntry = widget.NewEntry()
	sd.previewEntry.SetPlaceHolder(strconv.Itoa(config.DefaultPreviewDelay))

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewLabel(sd.localization.GetText(KeyAudioExtensions)+":"),
		sd.extensionsEntry,

		widget.NewSeparator(),
		sd.autoAdvanceChk,

		widget.NewLabel(sd.localization.GetText(KeyRefreshInterval)+":"),
		sd.refreshEntry,

		widget.NewLabel(sd.localization.GetText(KeyPreviewDelay)+":"),
		sd.previewEntry,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	current := sd.settings.GetLanguage()
	for name, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(name)
		}
	}
	sd.extensionsEntry.SetText(strings.Join(sd.settings.GetAudioExtensions(), ExtensionSeparator))
	sd.autoAdvanceChk.SetChecked(sd.settings.GetAutoAdvance())
	sd.refreshEntry.SetText(strconv.FormatInt(sd.settings.GetRefreshInterval().Milliseconds(), 10))
	sd.previewEntry.SetText(strconv.FormatInt(sd.settings.GetPreviewDelay().Milliseconds(), 10))
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if strings.TrimSpace(sd.extensionsEntry.Text) != "" {
		sd.settings.SetAudioExtensions(strings.Split(sd.extensionsEntry.Text, ","))
	}

	sd.settings.SetAutoAdvance(sd.autoAdvanceChk.Checked)

	// Unparsable values keep the stored setting
	if ms, ok := parseMillis(sd.refreshEntry.Text); ok {
		sd.settings.SetRefreshInterval(ms)
	}
	if ms, ok := parseMillis(sd.previewEntry.Text); ok {
		sd.settings.SetPreviewDelay(ms)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	// Show confirmation
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

func parseMillis(text string) (time.Duration, bool) {
	ms, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, false
	}
	return time.Duration(ms) * time.Millisecond, true
}
