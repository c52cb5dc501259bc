package ui

import (
	"fyne.io/fyne/v2/lang"

	"github.com/ytget/musicplayer/internal/player"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyPlay             = "play"
	KeyPause            = "pause"
	KeyStop             = "stop"
	KeyNextSong         = "next_song"
	KeyPreviousSong     = "previous_song"
	KeyListSongs        = "list_songs"
	KeyOpenFile         = "open_file"
	KeyShowInFolder     = "show_in_folder"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyPlayback         = "playback"
	KeyLanguage         = "language"
	KeyAudioExtensions  = "audio_extensions"
	KeyAutoAdvance      = "auto_advance"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeySettingsSaved    = "settings_saved"
	KeyNoSongPlaying    = "no_song_playing"
	KeyNowPlaying       = "now_playing"
	KeyNextNone         = "next_none"
	KeyNextTrack        = "next_track"
	KeyNextWithDuration = "next_with_duration"
	KeyTimeSpan         = "time_span"
	KeyNoAudioFiles     = "no_audio_files"
	KeyErrorOpeningFile = "error_opening_file"
	KeyAudioUnavailable = "audio_unavailable"
	KeyRefreshInterval  = "refresh_interval"
	KeyPreviewDelay     = "preview_delay"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = systemLanguage()
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// systemLanguage maps the OS locale to a supported language code
func systemLanguage() string {
	locale := lang.SystemLocale().LanguageString()
	if len(locale) >= 2 {
		return locale[:2]
	}
	return "en"
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// PlayerLabels returns the controller's display strings in the current language
func (l *Localization) PlayerLabels() player.Labels {
	return player.Labels{
		Play:             l.GetText(KeyPlay),
		Pause:            l.GetText(KeyPause),
		NoSong:           l.GetText(KeyNoSongPlaying),
		NowPlaying:       l.GetText(KeyNowPlaying),
		NextNone:         l.GetText(KeyNextNone),
		Next:             l.GetText(KeyNextTrack),
		NextWithDuration: l.GetText(KeyNextWithDuration),
		TimeSpan:         l.GetText(KeyTimeSpan),
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Music Player",
		KeyPlay:             "Play",
		KeyPause:            "Pause",
		KeyStop:             "Stop",
		KeyNextSong:         "Next",
		KeyPreviousSong:     "Previous",
		KeyListSongs:        "List Songs",
		KeyOpenFile:         "Open File...",
		KeyShowInFolder:     "Show in Folder",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyPlayback:         "Playback",
		KeyLanguage:         "Language",
		KeyAudioExtensions:  "Audio Extensions",
		KeyAutoAdvance:      "Play next song automatically",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyNoSongPlaying:    "No song playing",
		KeyNowPlaying:       "Now playing: %s",
		KeyNextNone:         "Next: None",
		KeyNextTrack:        "Next: %s",
		KeyNextWithDuration: "Next: %s (%s)",
		KeyTimeSpan:         "Total: %s | Remaining: %s",
		KeyNoAudioFiles:     "No audio files found in the selected folder",
		KeyErrorOpeningFile: "Error opening file",
		KeyAudioUnavailable: "Audio output is not available in this build",
		KeyRefreshInterval:  "Refresh interval (ms)",
		KeyPreviewDelay:     "Next song lookup delay (ms)",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Музыкальный плеер",
		KeyPlay:             "Играть",
		KeyPause:            "Пауза",
		KeyStop:             "Стоп",
		KeyNextSong:         "Следующая",
		KeyPreviousSong:     "Предыдущая",
		KeyListSongs:        "Выбрать песни",
		KeyOpenFile:         "Открыть файл...",
		KeyShowInFolder:     "Показать в папке",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyPlayback:         "Воспроизведение",
		KeyLanguage:         "Язык",
		KeyAudioExtensions:  "Расширения аудио",
		KeyAutoAdvance:      "Автоматически играть следующую",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyNoSongPlaying:    "Ничего не играет",
		KeyNowPlaying:       "Сейчас играет: %s",
		KeyNextNone:         "Далее: нет",
		KeyNextTrack:        "Далее: %s",
		KeyNextWithDuration: "Далее: %s (%s)",
		KeyTimeSpan:         "Всего: %s | Осталось: %s",
		KeyNoAudioFiles:     "В выбранной папке нет аудиофайлов",
		KeyErrorOpeningFile: "Ошибка открытия файла",
		KeyAudioUnavailable: "Вывод звука недоступен в этой сборке",
		KeyRefreshInterval:  "Интервал обновления (мс)",
		KeyPreviewDelay:     "Задержка поиска следующей песни (мс)",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Reprodutor de Música",
		KeyPlay:             "Tocar",
		KeyPause:            "Pausar",
		KeyStop:             "Parar",
		KeyNextSong:         "Próxima",
		KeyPreviousSong:     "Anterior",
		KeyListSongs:        "Listar Músicas",
		KeyOpenFile:         "Abrir Arquivo...",
		KeyShowInFolder:     "Mostrar na Pasta",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyPlayback:         "Reprodução",
		KeyLanguage:         "Idioma",
		KeyAudioExtensions:  "Extensões de Áudio",
		KeyAutoAdvance:      "Tocar a próxima automaticamente",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyNoSongPlaying:    "Nenhuma música tocando",
		KeyNowPlaying:       "Tocando agora: %s",
		KeyNextNone:         "Próxima: Nenhuma",
		KeyNextTrack:        "Próxima: %s",
		KeyNextWithDuration: "Próxima: %s (%s)",
		KeyTimeSpan:         "Total: %s | Restante: %s",
		KeyNoAudioFiles:     "Nenhum arquivo de áudio na pasta selecionada",
		KeyErrorOpeningFile: "Erro ao abrir arquivo",
		KeyAudioUnavailable: "Saída de áudio indisponível nesta compilação",
		KeyRefreshInterval:  "Intervalo de atualização (ms)",
		KeyPreviewDelay:     "Atraso da próxima música (ms)",
	}
}
