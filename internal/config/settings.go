package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/video-processor/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
	KeyRememberValues     = "remember_last_values"
	KeyLastQuality        = "last_quality"
	KeyLastCropTop        = "last_crop_top"
	KeyLastCropBottom     = "last_crop_bottom"
	KeyLastCropLeft       = "last_crop_left"
	KeyLastCropRight      = "last_crop_right"
	KeyLastVolume         = "last_volume_percent"
	KeyLastAudioChannels  = "last_audio_channels"
)

// Default values
const (
	DefaultLanguage           = "system"
	DefaultAutoRevealComplete = false
	DefaultRememberValues     = true
)

// Settings manages persistent GUI preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
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

// GetAutoRevealOnComplete returns whether to reveal finished outputs in the file manager
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to reveal finished outputs in the file manager
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetRememberValues returns whether control values persist between sessions
func (s *Settings) GetRememberValues() bool {
	return s.app.Preferences().BoolWithFallback(KeyRememberValues, DefaultRememberValues)
}

// SetRememberValues sets whether control values persist between sessions
func (s *Settings) SetRememberValues(remember bool) {
	s.app.Preferences().SetBool(KeyRememberValues, remember)
}

// RestoreParameters overlays the values saved by SaveParameters onto
// params. Paths are never restored. Nothing changes when remembering is
// off or nothing was saved yet.
func (s *Settings) RestoreParameters(params model.TranscodeParameters) model.TranscodeParameters {
	if !s.GetRememberValues() {
		return params
	}
	prefs := s.app.Preferences()
	restored := params
	restored.Quality = prefs.IntWithFallback(KeyLastQuality, params.Quality)
	restored.CropTop = prefs.IntWithFallback(KeyLastCropTop, params.CropTop)
	restored.CropBottom = prefs.IntWithFallback(KeyLastCropBottom, params.CropBottom)
	restored.CropLeft = prefs.IntWithFallback(KeyLastCropLeft, params.CropLeft)
	restored.CropRight = prefs.IntWithFallback(KeyLastCropRight, params.CropRight)
	restored.VolumePercent = prefs.IntWithFallback(KeyLastVolume, params.VolumePercent)
	restored.AudioChannels = model.AudioChannels(prefs.IntWithFallback(KeyLastAudioChannels, int(params.AudioChannels)))

	// Stale or hand-edited preferences must not produce an invalid snapshot
	if restored.Validate() != nil {
		return params
	}
	return restored
}

// SaveParameters stores the control values of params
func (s *Settings) SaveParameters(params model.TranscodeParameters) {
	if !s.GetRememberValues() {
		return
	}
	prefs := s.app.Preferences()
	prefs.SetInt(KeyLastQuality, params.Quality)
	prefs.SetInt(KeyLastCropTop, params.CropTop)
	prefs.SetInt(KeyLastCropBottom, params.CropBottom)
	prefs.SetInt(KeyLastCropLeft, params.CropLeft)
	prefs.SetInt(KeyLastCropRight, params.CropRight)
	prefs.SetInt(KeyLastVolume, params.VolumePercent)
	prefs.SetInt(KeyLastAudioChannels, int(params.AudioChannels))
}
