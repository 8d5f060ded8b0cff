package transcode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ytget/video-processor/internal/model"
)

// FFmpeg flags and filter templates
const (
	FlagOverwrite    = "-y"
	FlagInput        = "-i"
	FlagQuality      = "-crf"
	FlagVideoFilter  = "-vf"
	FlagAudioFilter  = "-af"
	FlagProgress     = "-progress"
	ProgressTarget   = "pipe:1"
	cropFilterFormat = "crop=in_w-%d:in_h-%d:%d:%d"
	panCloneLeft     = "pan=stereo|FL=FL|FR=FL"
	panCloneRight    = "pan=stereo|FL=FR|FR=FR"
	volumeFormat     = "volume=%.2f"
)

// BuildArgs converts a parameter snapshot into the ffmpeg argument list,
// without the binary name. It never touches the filesystem.
func BuildArgs(params model.TranscodeParameters) ([]string, error) {
	if strings.TrimSpace(params.InputPath) == "" {
		return nil, ErrNoInputSelected
	}
	if strings.TrimSpace(params.OutputPath) == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoOutputPath, params.InputPath)
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidParameters, describeValidation(err))
	}

	args := []string{
		FlagOverwrite,
		FlagInput, params.InputPath,
		FlagQuality, strconv.Itoa(params.Quality),
	}
	if crop := CropFilter(params); crop != "" {
		args = append(args, FlagVideoFilter, crop)
	}
	args = append(args, FlagAudioFilter, AudioFilter(params))
	args = append(args, params.OutputPath, FlagProgress, ProgressTarget)
	return args, nil
}

// CropFilter returns the crop video filter, or "" when no margin is set
func CropFilter(params model.TranscodeParameters) string {
	if !params.HasCrop() {
		return ""
	}
	return fmt.Sprintf(cropFilterFormat,
		params.CropLeft+params.CropRight,
		params.CropTop+params.CropBottom,
		params.CropLeft,
		params.CropTop,
	)
}

// AudioFilter returns the audio filter chain: an optional channel remap
// followed by the volume filter, which is always present.
func AudioFilter(params model.TranscodeParameters) string {
	var chain []string
	switch params.AudioChannels {
	case model.AudioChannelsCloneLeft:
		chain = append(chain, panCloneLeft)
	case model.AudioChannelsCloneRight:
		chain = append(chain, panCloneRight)
	}
	chain = append(chain, fmt.Sprintf(volumeFormat, float64(params.VolumePercent)/100))
	return strings.Join(chain, ",")
}

// Render formats a command line for logs. Arguments with shell
// metacharacters are single-quoted so the line can be pasted into a shell.
func Render(binary string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, quoteArg(binary))
	for _, arg := range args {
		parts = append(parts, quoteArg(arg))
	}
	return strings.Join(parts, " ")
}

func quoteArg(s string) string {
	if s == "" {
		return "''"
	}
	safe := true
	for _, r := range s {
		if !isShellSafe(r) {
			safe = false
			break
		}
	}
	if safe {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func isShellSafe(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return strings.ContainsRune("-_./:=,+@%", r)
}

// describeValidation flattens validator errors into "field rule" pairs
func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		parts = append(parts, fmt.Sprintf("%s=%v violates %s", fe.Field(), fe.Value(), rule))
	}
	return strings.Join(parts, "; ")
}
