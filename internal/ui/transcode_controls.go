package ui

import (
	"github.com/ytget/video-processor/internal/controls"
	"github.com/ytget/video-processor/internal/model"
)

// Slider slots in the panel, in hit-test priority order
const (
	sliderQuality = iota
	sliderCropTop
	sliderCropBottom
	sliderCropLeft
	sliderCropRight
	sliderVolume
)

// TranscodeControls lays out the transcoding sliders, the submit button and
// the audio channel radio group on a controls.Panel, and converts their
// values to and from model.TranscodeParameters.
type TranscodeControls struct {
	Panel *controls.Panel

	// OnSubmit is called when the run button is released over itself
	OnSubmit func()
	// OnChange is called after any control value changed
	OnChange func()

	sliders [sliderVolume + 1]*controls.Slider
	channel *controls.RadioGroup
}

// NewTranscodeControls builds the panel from initial parameter values.
// Labels come from loc; measurer sizes the radio rows.
func NewTranscodeControls(loc *Localization, initial model.TranscodeParameters, measurer controls.TextMeasurer) *TranscodeControls {
	tc := &TranscodeControls{Panel: controls.NewPanel()}

	slot := func(col, row float32) controls.Rect {
		return controls.Rect{
			X:      SliderStartX + SliderXOffset*col,
			Y:      SliderStartY + SliderYOffset*row,
			Width:  SliderWidth,
			Height: SliderHeight,
		}
	}

	tc.sliders[sliderQuality] = controls.NewSlider(loc.GetText(KeyQuality), slot(1, 2),
		model.QualityMin, model.QualityMax, initial.Quality, model.QualityStep)
	tc.sliders[sliderCropTop] = controls.NewSlider(loc.GetText(KeyCropTop), slot(1, 1),
		model.CropMin, model.CropMax, initial.CropTop, model.CropStep)
	tc.sliders[sliderCropBottom] = controls.NewSlider(loc.GetText(KeyCropBottom), slot(1, 3),
		model.CropMin, model.CropMax, initial.CropBottom, model.CropStep)
	tc.sliders[sliderCropLeft] = controls.NewSlider(loc.GetText(KeyCropLeft), slot(0, 2),
		model.CropMin, model.CropMax, initial.CropLeft, model.CropStep)
	tc.sliders[sliderCropRight] = controls.NewSlider(loc.GetText(KeyCropRight), slot(2, 2),
		model.CropMin, model.CropMax, initial.CropRight, model.CropStep)
	tc.sliders[sliderVolume] = controls.NewSlider(loc.GetText(KeyVolume), slot(1, 4),
		model.VolumeMin, model.VolumeMax, initial.VolumePercent, model.VolumeStep)
	for _, s := range tc.sliders {
		tc.Panel.AddSlider(s)
	}

	tc.Panel.AddButton(controls.NewButton(loc.GetText(KeyRun), controls.Rect{
		X:      SliderStartX + SliderXOffset*2 + SliderWidth,
		Y:      SliderStartY + SliderYOffset*3.5,
		Width:  SubmitWidth,
		Height: SubmitHeight,
	}, SubmitFontSize))

	options := []string{loc.GetText(KeyNoModification), loc.GetText(KeyCloneLeft), loc.GetText(KeyCloneRight)}
	tc.channel = controls.NewRadioGroup(loc.GetText(KeyAudioChannels),
		controls.Rect{X: RadioX, Y: RadioY, Width: RadioWidth, Height: RadioHeight}, options, measurer)
	tc.channel.Select(int(initial.AudioChannels))
	tc.Panel.AddRadioGroup(tc.channel)

	tc.Panel.OnButton = func(int) {
		if tc.OnSubmit != nil {
			tc.OnSubmit()
		}
	}
	tc.Panel.OnChange = func(controls.Target) {
		if tc.OnChange != nil {
			tc.OnChange()
		}
	}
	return tc
}

// Snapshot captures the current control values with the given paths
func (tc *TranscodeControls) Snapshot(input, output string) model.TranscodeParameters {
	return model.TranscodeParameters{
		InputPath:     input,
		OutputPath:    output,
		Quality:       tc.sliders[sliderQuality].Value,
		CropTop:       tc.sliders[sliderCropTop].Value,
		CropBottom:    tc.sliders[sliderCropBottom].Value,
		CropLeft:      tc.sliders[sliderCropLeft].Value,
		CropRight:     tc.sliders[sliderCropRight].Value,
		VolumePercent: tc.sliders[sliderVolume].Value,
		AudioChannels: model.AudioChannels(tc.channel.Selected),
	}
}

// Apply moves every control to the values in params. Paths are ignored.
func (tc *TranscodeControls) Apply(params model.TranscodeParameters) {
	tc.sliders[sliderQuality].SetValue(params.Quality)
	tc.sliders[sliderCropTop].SetValue(params.CropTop)
	tc.sliders[sliderCropBottom].SetValue(params.CropBottom)
	tc.sliders[sliderCropLeft].SetValue(params.CropLeft)
	tc.sliders[sliderCropRight].SetValue(params.CropRight)
	tc.sliders[sliderVolume].SetValue(params.VolumePercent)
	tc.channel.Select(int(params.AudioChannels))
}
