package model

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// AudioChannels selects how the source audio channels are remapped
type AudioChannels int

const (
	// AudioChannelsNone leaves the channel layout untouched
	AudioChannelsNone AudioChannels = iota
	// AudioChannelsCloneLeft copies the left channel to both outputs
	AudioChannelsCloneLeft
	// AudioChannelsCloneRight copies the right channel to both outputs
	AudioChannelsCloneRight
)

// String returns the identifier used in config files and flags
func (ac AudioChannels) String() string {
	switch ac {
	case AudioChannelsNone:
		return "none"
	case AudioChannelsCloneLeft:
		return "clone_left"
	case AudioChannelsCloneRight:
		return "clone_right"
	default:
		return "unknown"
	}
}

// AllAudioChannels returns the modes in display order; the first one is the default
func AllAudioChannels() []AudioChannels {
	return []AudioChannels{AudioChannelsNone, AudioChannelsCloneLeft, AudioChannelsCloneRight}
}

// ParseAudioChannels accepts the String() form, case-insensitive, with '-' or '_'
func ParseAudioChannels(s string) (AudioChannels, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	if normalized == "" {
		return AudioChannelsNone, nil
	}
	for _, ac := range AllAudioChannels() {
		if ac.String() == normalized {
			return ac, nil
		}
	}
	return AudioChannelsNone, fmt.Errorf("unknown audio channel mode %q", s)
}

// Parameter limits shared by the control panel, the CLI flags and validation
const (
	QualityMin     = 1
	QualityMax     = 64
	QualityDefault = 28
	QualityStep    = 1

	CropMin  = 0
	CropMax  = 1000
	CropStep = 50

	VolumeMin     = 1
	VolumeMax     = 150
	VolumeDefault = 100
	VolumeStep    = 5
)

// TranscodeParameters is the snapshot handed to the transcoder on submit.
// It is built fresh for every run and never mutated afterwards.
type TranscodeParameters struct {
	InputPath     string        `json:"input_path"`
	OutputPath    string        `json:"output_path"`
	Quality       int           `json:"quality" validate:"min=1,max=64"`
	CropTop       int           `json:"crop_top" validate:"min=0,max=1000,multipleof=50"`
	CropBottom    int           `json:"crop_bottom" validate:"min=0,max=1000,multipleof=50"`
	CropLeft      int           `json:"crop_left" validate:"min=0,max=1000,multipleof=50"`
	CropRight     int           `json:"crop_right" validate:"min=0,max=1000,multipleof=50"`
	VolumePercent int           `json:"volume_percent" validate:"min=1,max=150,multipleof=5"`
	AudioChannels AudioChannels `json:"audio_channels" validate:"oneof=0 1 2"`
}

// DefaultParameters returns the values the control panel starts with
func DefaultParameters() TranscodeParameters {
	return TranscodeParameters{
		Quality:       QualityDefault,
		VolumePercent: VolumeDefault,
		AudioChannels: AudioChannelsNone,
	}
}

// HasCrop reports whether any crop margin is set
func (p TranscodeParameters) HasCrop() bool {
	return p.CropTop|p.CropBottom|p.CropLeft|p.CropRight != 0
}

// Validate checks the numeric ranges; paths are checked by the transcoder
func (p TranscodeParameters) Validate() error {
	return Validator().Struct(p)
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator with the project's custom tags registered
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("multipleof", validateMultipleOf)
	})
	return validate
}

// validateMultipleOf implements `multipleof=N` for integer fields
func validateMultipleOf(fl validator.FieldLevel) bool {
	step, err := strconv.ParseInt(fl.Param(), 10, 64)
	if err != nil || step <= 0 {
		return false
	}
	field := fl.Field()
	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return field.Int()%step == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return field.Uint()%uint64(step) == 0
	default:
		return false
	}
}
