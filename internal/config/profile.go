package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/ytget/video-processor/internal/model"
	"github.com/ytget/video-processor/internal/platform"
	"github.com/ytget/video-processor/internal/transcode"
)

// ErrUnsupportedFormat is returned for profile files that are neither TOML nor YAML
var ErrUnsupportedFormat = errors.New("config: unsupported profile format")

// ErrInvalidProfile wraps profile validation failures
var ErrInvalidProfile = errors.New("config: invalid profile")

// Profile is the on-disk configuration.
type Profile struct {
	OutputSuffix string         `toml:"output_suffix" yaml:"output_suffix" validate:"required,excludesall=/\\"`
	Extensions   []string       `toml:"extensions" yaml:"extensions" validate:"required,min=1,dive,startswith=."`
	FFmpegPath   string         `toml:"ffmpeg_path" yaml:"ffmpeg_path" validate:"required"`
	FFprobePath  string         `toml:"ffprobe_path" yaml:"ffprobe_path"`
	Defaults     SliderDefaults `toml:"defaults" yaml:"defaults"`
}

// SliderDefaults are the control values the window opens with
type SliderDefaults struct {
	Quality       int    `toml:"quality" yaml:"quality" validate:"min=1,max=64"`
	CropTop       int    `toml:"crop_top" yaml:"crop_top" validate:"min=0,max=1000,multipleof=50"`
	CropBottom    int    `toml:"crop_bottom" yaml:"crop_bottom" validate:"min=0,max=1000,multipleof=50"`
	CropLeft      int    `toml:"crop_left" yaml:"crop_left" validate:"min=0,max=1000,multipleof=50"`
	CropRight     int    `toml:"crop_right" yaml:"crop_right" validate:"min=0,max=1000,multipleof=50"`
	VolumePercent int    `toml:"volume_percent" yaml:"volume_percent" validate:"min=5,max=150,multipleof=5"`
	AudioChannels string `toml:"audio_channels" yaml:"audio_channels" validate:"omitempty,oneof=none clone_left clone_right"`
}

// Default returns the built-in profile
func Default() *Profile {
	defaults := model.DefaultParameters()
	return &Profile{
		OutputSuffix: platform.DefaultOutputSuffix,
		Extensions:   append([]string(nil), platform.DefaultExtensions...),
		FFmpegPath:   transcode.DefaultFFmpegPath,
		FFprobePath:  transcode.DefaultFFprobePath,
		Defaults: SliderDefaults{
			Quality:       defaults.Quality,
			VolumePercent: defaults.VolumePercent,
			AudioChannels: defaults.AudioChannels.String(),
		},
	}
}

// DefaultProfilePath returns ~/.config/video-processor/config.toml
func DefaultProfilePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "video-processor", "config.toml"), nil
}

// Load reads the profile at path on top of Default. An empty path or a
// missing file yields the defaults. The format follows the extension:
// .toml, or .yaml/.yml.
func Load(path string) (*Profile, error) {
	profile := Default()
	if path == "" {
		return profile, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return profile, nil
		}
		return nil, fmt.Errorf("config: read profile: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(profile); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(profile); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	profile.normalize()
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return profile, nil
}

// Save writes the profile in the format implied by the path extension
func (p *Profile) Save(path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		data, err = toml.Marshal(p)
	case ".yaml", ".yml":
		data, err = yaml.Marshal(p)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return fmt.Errorf("config: encode profile: %w", err)
	}
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return fmt.Errorf("config: create profile dir: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ApplyEnv lets explicitly set environment variables override the profile
func (p *Profile) ApplyEnv(env *Env) {
	if env == nil {
		return
	}
	if env.FFmpegPath != "" {
		p.FFmpegPath = env.FFmpegPath
	}
	if env.FFprobePath != "" {
		p.FFprobePath = env.FFprobePath
	}
}

// Validate checks the profile fields
func (p *Profile) Validate() error {
	if err := model.Validator().Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s fails %q", ErrInvalidProfile, fe.Namespace(), fe.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	return nil
}

// Parameters returns the initial parameters for input, with the output
// path derived from the profile's suffix and extensions. An input with an
// unrecognized extension gets an empty output path.
func (p *Profile) Parameters(input string) model.TranscodeParameters {
	channels, err := model.ParseAudioChannels(p.Defaults.AudioChannels)
	if err != nil {
		channels = model.AudioChannelsNone
	}
	output, _ := platform.DeriveOutputPath(input, p.OutputSuffix, p.Extensions)
	return model.TranscodeParameters{
		InputPath:     input,
		OutputPath:    output,
		Quality:       p.Defaults.Quality,
		CropTop:       p.Defaults.CropTop,
		CropBottom:    p.Defaults.CropBottom,
		CropLeft:      p.Defaults.CropLeft,
		CropRight:     p.Defaults.CropRight,
		VolumePercent: p.Defaults.VolumePercent,
		AudioChannels: channels,
	}
}

// OutputPathFor derives the output path for input using the profile
func (p *Profile) OutputPathFor(input string) (string, error) {
	return platform.DeriveOutputPath(input, p.OutputSuffix, p.Extensions)
}

func (p *Profile) normalize() {
	p.OutputSuffix = strings.TrimSpace(p.OutputSuffix)
	p.FFmpegPath = strings.TrimSpace(p.FFmpegPath)
	p.FFprobePath = strings.TrimSpace(p.FFprobePath)
	for i, ext := range p.Extensions {
		p.Extensions[i] = strings.TrimSpace(ext)
	}
	p.Defaults.AudioChannels = strings.ToLower(strings.TrimSpace(p.Defaults.AudioChannels))
}
