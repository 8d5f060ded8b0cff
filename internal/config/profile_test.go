package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/video-processor/internal/model"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	p := Default()
	assert.Equal(t, "_v2", p.OutputSuffix)
	assert.Equal(t, []string{".mp4", ".avi"}, p.Extensions)
	assert.Equal(t, "ffmpeg", p.FFmpegPath)
	assert.Equal(t, "ffprobe", p.FFprobePath)
	assert.Equal(t, 28, p.Defaults.Quality)
	assert.Equal(t, 100, p.Defaults.VolumePercent)
	require.NoError(t, p.Validate())
}

func TestLoad_MissingOrEmptyPath(t *testing.T) {
	p, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), p)

	p, err = Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
output_suffix = "-small"
extensions = [".mp4", ".mkv"]
ffmpeg_path = "/opt/ffmpeg/bin/ffmpeg"

[defaults]
quality = 32
crop_top = 100
volume_percent = 80
audio_channels = "clone_left"
`)
	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "-small", p.OutputSuffix)
	assert.Equal(t, []string{".mp4", ".mkv"}, p.Extensions)
	assert.Equal(t, "/opt/ffmpeg/bin/ffmpeg", p.FFmpegPath)
	assert.Equal(t, "ffprobe", p.FFprobePath, "unset keys keep their defaults")

	params := p.Parameters("/v/clip.mkv")
	assert.Equal(t, "/v/clip-small.mkv", params.OutputPath)
	assert.Equal(t, 32, params.Quality)
	assert.Equal(t, 100, params.CropTop)
	assert.Equal(t, 80, params.VolumePercent)
	assert.Equal(t, model.AudioChannelsCloneLeft, params.AudioChannels)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
output_suffix: _edit
extensions: [".avi"]
defaults:
  quality: 20
  volume_percent: 150
  audio_channels: clone_right
`)
	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "_edit", p.OutputSuffix)

	params := p.Parameters("/v/clip.mp4")
	assert.Empty(t, params.OutputPath, ".mp4 is not in the extension list")
	assert.Equal(t, model.AudioChannelsCloneRight, params.AudioChannels)
}

func TestLoad_EmptyYAML(t *testing.T) {
	p, err := Load(writeFile(t, "config.yml", ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		contents string
		err      error
	}{
		{"unsupported extension", "config.json", `{}`, ErrUnsupportedFormat},
		{"crop off grid", "config.toml", "[defaults]\ncrop_left = 75\n", ErrInvalidProfile},
		{"quality too high", "config.yaml", "defaults:\n  quality: 99\n", ErrInvalidProfile},
		{"extension without dot", "config.toml", "extensions = [\"mp4\"]\n", ErrInvalidProfile},
		{"unknown audio mode", "config.toml", "[defaults]\naudio_channels = \"mono\"\n", ErrInvalidProfile},
		{"suffix with separator", "config.toml", "output_suffix = \"a/b\"\n", ErrInvalidProfile},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load(writeFile(t, test.file, test.contents))
			assert.ErrorIs(t, err, test.err)
		})
	}

	t.Run("unknown key", func(t *testing.T) {
		_, err := Load(writeFile(t, "config.toml", "colour = \"red\"\n"))
		assert.Error(t, err)
	})
}

func TestProfile_SaveAndLoad(t *testing.T) {
	for _, name := range []string{"config.toml", "config.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			p := Default()
			p.OutputSuffix = "_out"
			p.Defaults.CropRight = 250

			require.NoError(t, p.Save(path))
			loaded, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, p, loaded)
		})
	}
}

func TestLoadEnv(t *testing.T) {
	env, err := LoadEnvWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"NEMO_SCRIPT_SELECTED_FILE_PATHS": "/v/a.mp4\n/v/b.mp4\n",
		"VP_FFMPEG_PATH":                  "/usr/local/bin/ffmpeg",
		"VP_LOG_FORMAT":                   "json",
	}))
	require.NoError(t, err)
	assert.Equal(t, "/v/a.mp4\n/v/b.mp4\n", env.SelectedFiles)
	assert.Equal(t, "info", env.LogLevel)
	assert.Equal(t, "json", env.LogFormat)

	p := Default()
	p.ApplyEnv(env)
	assert.Equal(t, "/usr/local/bin/ffmpeg", p.FFmpegPath)
	assert.Equal(t, "ffprobe", p.FFprobePath, "unset variables do not override")
}

func TestLoadEnv_FromProcess(t *testing.T) {
	t.Setenv("VP_LOG_LEVEL", "debug")
	t.Setenv("VP_CONFIG", "/etc/vp.toml")

	env, err := LoadEnv(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "debug", env.LogLevel)
	assert.Equal(t, "/etc/vp.toml", env.ConfigPath)
}
