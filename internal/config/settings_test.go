package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/video-processor/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("ru")
	if lang := settings.GetLanguage(); lang != "ru" {
		t.Errorf("Expected language ru, got %s", lang)
	}
}

func TestLanguageOptions(t *testing.T) {
	settings := NewSettings(test.NewApp())
	options := settings.GetLanguageOptions()

	for _, code := range []string{"system", "en", "ru", "pt"} {
		if _, ok := options[code]; !ok {
			t.Errorf("Expected language option %s", code)
		}
	}
}

func TestAutoRevealOnComplete(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if settings.GetAutoRevealOnComplete() != DefaultAutoRevealComplete {
		t.Errorf("Expected default auto-reveal %v", DefaultAutoRevealComplete)
	}

	settings.SetAutoRevealOnComplete(true)
	if !settings.GetAutoRevealOnComplete() {
		t.Error("Expected auto-reveal to be enabled")
	}
}

func TestParametersRoundTrip(t *testing.T) {
	settings := NewSettings(test.NewApp())

	defaults := model.DefaultParameters()
	defaults.InputPath = "/v/a.mp4"
	defaults.OutputPath = "/v/a_v2.mp4"

	if got := settings.RestoreParameters(defaults); got != defaults {
		t.Errorf("Expected defaults before anything is saved, got %+v", got)
	}

	saved := defaults
	saved.Quality = 40
	saved.CropLeft = 150
	saved.VolumePercent = 75
	saved.AudioChannels = model.AudioChannelsCloneRight
	saved.InputPath = "/other/b.avi"
	settings.SaveParameters(saved)

	got := settings.RestoreParameters(defaults)
	if got.Quality != 40 || got.CropLeft != 150 || got.VolumePercent != 75 {
		t.Errorf("Expected saved values, got %+v", got)
	}
	if got.AudioChannels != model.AudioChannelsCloneRight {
		t.Errorf("Expected clone right, got %s", got.AudioChannels)
	}
	if got.InputPath != defaults.InputPath {
		t.Errorf("Paths must not be restored, got %s", got.InputPath)
	}
}

func TestRestoreParameters_InvalidStoredValues(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)
	app.Preferences().SetInt(KeyLastCropTop, 75)

	defaults := model.DefaultParameters()
	if got := settings.RestoreParameters(defaults); got != defaults {
		t.Errorf("Expected defaults when stored values are invalid, got %+v", got)
	}
}

func TestRememberValuesDisabled(t *testing.T) {
	settings := NewSettings(test.NewApp())
	settings.SetRememberValues(false)

	params := model.DefaultParameters()
	params.Quality = 10
	settings.SaveParameters(params)
	settings.SetRememberValues(true)

	if got := settings.RestoreParameters(model.DefaultParameters()); got.Quality != model.QualityDefault {
		t.Errorf("Expected nothing saved while disabled, got quality %d", got.Quality)
	}
}
