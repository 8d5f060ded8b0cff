package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/video-processor/internal/transcode"
)

// fakeFFmpegEnv makes the test binary impersonate ffmpeg: "ok" writes the
// output file, "fail" exits non-zero.
const fakeFFmpegEnv = "VP_TEST_FAKE_FFMPEG"

func TestMain(m *testing.M) {
	switch os.Getenv(fakeFFmpegEnv) {
	case "ok":
		args := os.Args[1:]
		if len(args) < 3 {
			os.Exit(2)
		}
		output := args[len(args)-3]
		if err := os.WriteFile(output, []byte("fake video payload"), 0o600); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println("out_time_us=1000000")
		fmt.Println("speed=2.0x")
		fmt.Println("progress=end")
		os.Exit(0)
	case "fail":
		fmt.Fprintln(os.Stderr, "Invalid data found when processing input")
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// isolateEnv clears the variables the CLI reads
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"NEMO_SCRIPT_SELECTED_FILE_PATHS", "VP_FFMPEG_PATH", "VP_FFPROBE_PATH",
		"VP_CONFIG", "VP_LOG_LEVEL", "VP_LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}
}

func writeProfile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func selfPath(t *testing.T) string {
	t.Helper()
	path, err := filepath.Abs(os.Args[0])
	require.NoError(t, err)
	return path
}

func TestCommandPrintsFFmpegCommand(t *testing.T) {
	isolateEnv(t)
	profile := writeProfile(t, "config.toml", "")

	stdout, _, err := runCLI(t, "--config", profile, "command", "-q",
		"-i", "/videos/a.mp4", "--crop-left", "100", "--audio-channels", "clone-left")
	require.NoError(t, err)

	assert.Equal(t,
		"ffmpeg -y -i /videos/a.mp4 -crf 28 -vf crop=in_w-100:in_h-0:100:0 -af 'pan=stereo|FL=FL|FR=FL,volume=1.00' /videos/a_v2.mp4 -progress pipe:1\n",
		stdout)
}

func TestCommandPrintsParameterTable(t *testing.T) {
	isolateEnv(t)
	profile := writeProfile(t, "config.toml", "")

	stdout, _, err := runCLI(t, "--config", profile, "command", "-i", "/videos/a.avi", "--volume", "55")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Parameter")
	assert.Contains(t, stdout, "/videos/a_v2.avi")
	assert.Contains(t, stdout, "55%")
	assert.Contains(t, stdout, "volume=0.55")
}

func TestCommandUsesNemoSelection(t *testing.T) {
	isolateEnv(t)
	t.Setenv("NEMO_SCRIPT_SELECTED_FILE_PATHS", "/videos/one.avi\n/videos/two.mp4\n")
	profile := writeProfile(t, "config.toml", "")

	stdout, _, err := runCLI(t, "--config", profile, "command", "-q")
	require.NoError(t, err)
	assert.Contains(t, stdout, "-i /videos/one.avi")
	assert.NotContains(t, stdout, "two.mp4")
}

func TestCommandProfileDefaults(t *testing.T) {
	isolateEnv(t)
	profile := writeProfile(t, "config.yaml", `
output_suffix: _small
extensions: [.mkv]
defaults:
  quality: 35
  volume_percent: 80
  audio_channels: clone_right
`)

	stdout, _, err := runCLI(t, "--config", profile, "command", "-q", "-i", "/videos/a.mkv")
	require.NoError(t, err)
	assert.Contains(t, stdout, "-crf 35")
	assert.Contains(t, stdout, "pan=stereo|FL=FR|FR=FR,volume=0.80")
	assert.Contains(t, stdout, "/videos/a_small.mkv")

	// flags win over the profile
	stdout, _, err = runCLI(t, "--config", profile, "command", "-q", "-i", "/videos/a.mkv",
		"--crf", "20", "--audio-channels", "none")
	require.NoError(t, err)
	assert.Contains(t, stdout, "-crf 20")
	assert.Contains(t, stdout, "-af volume=0.80")
}

func TestCommandRejections(t *testing.T) {
	isolateEnv(t)
	profile := writeProfile(t, "config.toml", "")

	tests := []struct {
		name string
		args []string
		want error
		text string
	}{
		{name: "no input", args: []string{"command"}, want: transcode.ErrNoInputSelected},
		{name: "unrecognized extension", args: []string{"command", "-i", "/videos/a.mkv"}, want: transcode.ErrNoOutputPath},
		{name: "crop off grid", args: []string{"command", "-i", "/videos/a.mp4", "--crop-top", "70"}, want: transcode.ErrInvalidParameters},
		{name: "bad audio mode", args: []string{"command", "-i", "/videos/a.mp4", "--audio-channels", "mono"}, text: "--audio-channels"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, append([]string{"--config", profile}, tt.args...)...)
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
			if tt.text != "" {
				assert.Contains(t, err.Error(), tt.text)
			}
		})
	}
}

func TestInvalidProfileFails(t *testing.T) {
	isolateEnv(t)
	profile := writeProfile(t, "config.toml", "unknown_key = 1\n")

	_, _, err := runCLI(t, "--config", profile, "command", "-i", "/videos/a.mp4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load profile")
}

func TestCheckCommand(t *testing.T) {
	isolateEnv(t)

	t.Run("missing ffmpeg", func(t *testing.T) {
		profile := writeProfile(t, "config.toml", "ffmpeg_path = \"/nonexistent/ffmpeg\"\nffprobe_path = \"/nonexistent/ffprobe\"\n")
		stdout, _, err := runCLI(t, "--config", profile, "check")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing required binaries: FFmpeg")
		assert.Contains(t, stdout, "missing (optional)")
	})

	t.Run("ffmpeg present", func(t *testing.T) {
		profile := writeProfile(t, "config.toml", fmt.Sprintf("ffmpeg_path = %q\nffprobe_path = \"/nonexistent/ffprobe\"\n", selfPath(t)))
		stdout, _, err := runCLI(t, "--config", profile, "check")
		require.NoError(t, err)
		assert.Contains(t, stdout, "FFmpeg")
		assert.Contains(t, stdout, " ok ")
	})
}

func TestRunCommand(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	input := filepath.Join(dir, "clip.mp4")
	require.NoError(t, os.WriteFile(input, []byte("source"), 0o600))
	profile := writeProfile(t, "config.toml", fmt.Sprintf("ffmpeg_path = %q\nffprobe_path = \"\"\n", selfPath(t)))

	t.Run("success", func(t *testing.T) {
		t.Setenv(fakeFFmpegEnv, "ok")
		stdout, _, err := runCLI(t, "--config", profile, "--log-format", "json", "run", "--no-progress", "-i", input)
		require.NoError(t, err)

		output := filepath.Join(dir, "clip_v2.mp4")
		assert.Equal(t, output+" (18 B)\n", stdout)
		data, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Equal(t, "fake video payload", string(data))
	})

	t.Run("ffmpeg fails", func(t *testing.T) {
		t.Setenv(fakeFFmpegEnv, "fail")
		_, _, err := runCLI(t, "--config", profile, "--log-format", "json", "run", "--no-progress",
			"-i", input, "-o", filepath.Join(dir, "failed.mp4"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, transcode.ErrExternalProcessFailed))

		var perr *transcode.ProcessError
		require.ErrorAs(t, err, &perr)
		assert.True(t, strings.Contains(perr.Stderr, "Invalid data"))
	})
}
