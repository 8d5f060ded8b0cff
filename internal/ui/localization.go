package ui

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle            = "app_title"
	KeyRun                 = "run"
	KeyStop                = "stop"
	KeyOpen                = "open"
	KeyOpenVideo           = "open_video"
	KeyQuit                = "quit"
	KeySettings            = "settings"
	KeyFile                = "file"
	KeyLanguage            = "language"
	KeyAutoReveal          = "auto_reveal"
	KeyRememberValues      = "remember_values"
	KeySave                = "save"
	KeyCancel              = "cancel"
	KeySettingsSaved       = "settings_saved"
	KeyInputPath           = "input_path"
	KeyOutputPath          = "output_path"
	KeyQuality             = "quality"
	KeyCropTop             = "crop_top"
	KeyCropBottom          = "crop_bottom"
	KeyCropLeft            = "crop_left"
	KeyCropRight           = "crop_right"
	KeyVolume              = "volume"
	KeyAudioChannels       = "audio_channels"
	KeyNoModification      = "no_modification"
	KeyCloneLeft           = "clone_left"
	KeyCloneRight          = "clone_right"
	KeyIdle                = "idle"
	KeyTranscodeStarted    = "transcode_started"
	KeyTranscodeCompleted  = "transcode_completed"
	KeyTranscodeFailed     = "transcode_failed"
	KeyTranscodeStopped    = "transcode_stopped"
	KeyStoppingTranscode   = "stopping_transcode"
	KeyErrorStoppingTask   = "error_stopping_task"
	KeyErrorOpeningFile    = "error_opening_file"
	KeyNoInputSelected     = "no_input_selected"
	KeyUnrecognizedFile    = "unrecognized_file"
	KeyOutputBusy          = "output_busy"
	KeyMissingDependencies = "missing_dependencies"
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

// SetLanguage sets the current language. "system" resolves the locale from
// the environment.
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = SystemLanguage(os.Getenv("LC_ALL"), os.Getenv("LC_MESSAGES"), os.Getenv("LANG"))
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

var supportedLanguages = []language.Tag{language.English, language.Russian, language.Portuguese}

var languageMatcher = language.NewMatcher(supportedLanguages)

// SystemLanguage picks the supported language closest to the first
// non-empty POSIX locale (e.g. "pt_BR.UTF-8"). English is the fallback.
func SystemLanguage(locales ...string) string {
	for _, locale := range locales {
		locale = strings.TrimSpace(locale)
		if locale == "" || locale == "C" || locale == "POSIX" {
			continue
		}
		if i := strings.IndexAny(locale, ".@"); i >= 0 {
			locale = locale[:i]
		}
		tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
		if err != nil {
			continue
		}
		_, index, confidence := languageMatcher.Match(tag)
		if confidence == language.No {
			return "en"
		}
		base, _ := supportedLanguages[index].Base()
		return base.String()
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

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:            "video-processor",
		KeyRun:                 "run",
		KeyStop:                "Stop",
		KeyOpen:                "Show in folder",
		KeyOpenVideo:           "Open video...",
		KeyQuit:                "Quit",
		KeySettings:            "Settings",
		KeyFile:                "File",
		KeyLanguage:            "Language",
		KeyAutoReveal:          "Show output in folder when done",
		KeyRememberValues:      "Remember slider values",
		KeySave:                "Save",
		KeyCancel:              "Cancel",
		KeySettingsSaved:       "Settings saved successfully!",
		KeyInputPath:           "input path: %s",
		KeyOutputPath:          "output path: %s",
		KeyQuality:             "crf",
		KeyCropTop:             "crop top",
		KeyCropBottom:          "crop bottom",
		KeyCropLeft:            "crop left",
		KeyCropRight:           "crop right",
		KeyVolume:              "volume",
		KeyAudioChannels:       "audio channels",
		KeyNoModification:      "NO MODIFICATION",
		KeyCloneLeft:           "CLONE LEFT",
		KeyCloneRight:          "CLONE RIGHT",
		KeyIdle:                "Idle",
		KeyTranscodeStarted:    "Transcoding started",
		KeyTranscodeCompleted:  "Transcoding completed",
		KeyTranscodeFailed:     "Transcoding failed",
		KeyTranscodeStopped:    "Transcoding stopped",
		KeyStoppingTranscode:   "Stopping ffmpeg...",
		KeyErrorStoppingTask:   "Error stopping task",
		KeyErrorOpeningFile:    "Error opening file",
		KeyNoInputSelected:     "No input file selected",
		KeyUnrecognizedFile:    "Unrecognized file extension",
		KeyOutputBusy:          "Output file is already being written",
		KeyMissingDependencies: "Missing required programs",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:            "video-processor",
		KeyRun:                 "пуск",
		KeyStop:                "Стоп",
		KeyOpen:                "Показать в папке",
		KeyOpenVideo:           "Открыть видео...",
		KeyQuit:                "Выход",
		KeySettings:            "Настройки",
		KeyFile:                "Файл",
		KeyLanguage:            "Язык",
		KeyAutoReveal:          "Показывать результат в папке",
		KeyRememberValues:      "Запоминать значения ползунков",
		KeySave:                "Сохранить",
		KeyCancel:              "Отмена",
		KeySettingsSaved:       "Настройки успешно сохранены!",
		KeyInputPath:           "входной файл: %s",
		KeyOutputPath:          "выходной файл: %s",
		KeyQuality:             "crf",
		KeyCropTop:             "обрезка сверху",
		KeyCropBottom:          "обрезка снизу",
		KeyCropLeft:            "обрезка слева",
		KeyCropRight:           "обрезка справа",
		KeyVolume:              "громкость",
		KeyAudioChannels:       "аудиоканалы",
		KeyNoModification:      "БЕЗ ИЗМЕНЕНИЙ",
		KeyCloneLeft:           "КОПИЯ ЛЕВОГО",
		KeyCloneRight:          "КОПИЯ ПРАВОГО",
		KeyIdle:                "Ожидание",
		KeyTranscodeStarted:    "Перекодирование начато",
		KeyTranscodeCompleted:  "Перекодирование завершено",
		KeyTranscodeFailed:     "Ошибка перекодирования",
		KeyTranscodeStopped:    "Перекодирование остановлено",
		KeyStoppingTranscode:   "Остановка ffmpeg...",
		KeyErrorStoppingTask:   "Ошибка остановки задачи",
		KeyErrorOpeningFile:    "Ошибка открытия файла",
		KeyNoInputSelected:     "Входной файл не выбран",
		KeyUnrecognizedFile:    "Неизвестное расширение файла",
		KeyOutputBusy:          "Выходной файл уже записывается",
		KeyMissingDependencies: "Не найдены необходимые программы",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:            "video-processor",
		KeyRun:                 "executar",
		KeyStop:                "Parar",
		KeyOpen:                "Mostrar na pasta",
		KeyOpenVideo:           "Abrir vídeo...",
		KeyQuit:                "Sair",
		KeySettings:            "Configurações",
		KeyFile:                "Arquivo",
		KeyLanguage:            "Idioma",
		KeyAutoReveal:          "Mostrar resultado na pasta",
		KeyRememberValues:      "Lembrar valores dos controles",
		KeySave:                "Salvar",
		KeyCancel:              "Cancelar",
		KeySettingsSaved:       "Configurações salvas com sucesso!",
		KeyInputPath:           "arquivo de entrada: %s",
		KeyOutputPath:          "arquivo de saída: %s",
		KeyQuality:             "crf",
		KeyCropTop:             "corte superior",
		KeyCropBottom:          "corte inferior",
		KeyCropLeft:            "corte esquerdo",
		KeyCropRight:           "corte direito",
		KeyVolume:              "volume",
		KeyAudioChannels:       "canais de áudio",
		KeyNoModification:      "SEM MODIFICAÇÃO",
		KeyCloneLeft:           "CLONAR ESQUERDO",
		KeyCloneRight:          "CLONAR DIREITO",
		KeyIdle:                "Ocioso",
		KeyTranscodeStarted:    "Transcodificação iniciada",
		KeyTranscodeCompleted:  "Transcodificação concluída",
		KeyTranscodeFailed:     "Falha na transcodificação",
		KeyTranscodeStopped:    "Transcodificação interrompida",
		KeyStoppingTranscode:   "Parando ffmpeg...",
		KeyErrorStoppingTask:   "Erro ao parar tarefa",
		KeyErrorOpeningFile:    "Erro ao abrir arquivo",
		KeyNoInputSelected:     "Nenhum arquivo de entrada selecionado",
		KeyUnrecognizedFile:    "Extensão de arquivo não reconhecida",
		KeyOutputBusy:          "O arquivo de saída já está sendo gravado",
		KeyMissingDependencies: "Programas necessários não encontrados",
	}
}
