package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ytget/video-processor/internal/config"
	"github.com/ytget/video-processor/internal/model"
	"github.com/ytget/video-processor/internal/platform"
)

// parameterFlags are the transcoding flags shared by run and command.
// Unset flags keep the profile defaults.
type parameterFlags struct {
	input         string
	output        string
	quality       int
	cropTop       int
	cropBottom    int
	cropLeft      int
	cropRight     int
	volume        int
	audioChannels string
}

func (f *parameterFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.input, "input", "i", "", "Input video (default: first Nemo selection)")
	flags.StringVarP(&f.output, "output", "o", "", "Output path (default: input name with the profile suffix)")
	flags.IntVar(&f.quality, "crf", model.QualityDefault, "Constant rate factor, 1-64")
	flags.IntVar(&f.cropTop, "crop-top", 0, "Pixels cropped from the top, multiple of 50")
	flags.IntVar(&f.cropBottom, "crop-bottom", 0, "Pixels cropped from the bottom, multiple of 50")
	flags.IntVar(&f.cropLeft, "crop-left", 0, "Pixels cropped from the left, multiple of 50")
	flags.IntVar(&f.cropRight, "crop-right", 0, "Pixels cropped from the right, multiple of 50")
	flags.IntVar(&f.volume, "volume", model.VolumeDefault, "Volume percent, 1-150, multiple of 5")
	flags.StringVar(&f.audioChannels, "audio-channels", model.AudioChannelsNone.String(),
		"Channel remap: none, clone_left, clone_right")
}

// parameters starts from the profile defaults for the input and overlays
// every flag the user set.
func (f *parameterFlags) parameters(cmd *cobra.Command, profile *config.Profile, env *config.Env) (model.TranscodeParameters, error) {
	params := profile.Parameters(inputPath(f.input, env))
	flags := cmd.Flags()

	if flags.Changed("output") {
		params.OutputPath = strings.TrimSpace(f.output)
	}
	ints := []struct {
		name  string
		value int
		dest  *int
	}{
		{"crf", f.quality, &params.Quality},
		{"crop-top", f.cropTop, &params.CropTop},
		{"crop-bottom", f.cropBottom, &params.CropBottom},
		{"crop-left", f.cropLeft, &params.CropLeft},
		{"crop-right", f.cropRight, &params.CropRight},
		{"volume", f.volume, &params.VolumePercent},
	}
	for _, flag := range ints {
		if flags.Changed(flag.name) {
			*flag.dest = flag.value
		}
	}
	if flags.Changed("audio-channels") {
		channels, err := model.ParseAudioChannels(f.audioChannels)
		if err != nil {
			return model.TranscodeParameters{}, fmt.Errorf("--audio-channels: %w", err)
		}
		params.AudioChannels = channels
	}
	return params, nil
}

// inputPath prefers an explicit path over the Nemo selection
func inputPath(flag string, env *config.Env) string {
	if path := strings.TrimSpace(flag); path != "" {
		return path
	}
	if env == nil {
		return ""
	}
	return platform.FirstSelectedPath(env.SelectedFiles)
}

// parameterRows lists params for table output
func parameterRows(params model.TranscodeParameters) [][]string {
	return [][]string{
		{"input", params.InputPath},
		{"output", params.OutputPath},
		{"crf", strconv.Itoa(params.Quality)},
		{"crop top", strconv.Itoa(params.CropTop)},
		{"crop bottom", strconv.Itoa(params.CropBottom)},
		{"crop left", strconv.Itoa(params.CropLeft)},
		{"crop right", strconv.Itoa(params.CropRight)},
		{"volume", strconv.Itoa(params.VolumePercent) + "%"},
		{"audio channels", params.AudioChannels.String()},
	}
}
