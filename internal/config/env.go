package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Env holds the settings read from environment variables.
type Env struct {
	// SelectedFiles is set by Nemo when the program runs as a file manager script
	SelectedFiles string `env:"NEMO_SCRIPT_SELECTED_FILE_PATHS"`

	FFmpegPath  string `env:"VP_FFMPEG_PATH"`
	FFprobePath string `env:"VP_FFPROBE_PATH"`

	ConfigPath string `env:"VP_CONFIG"`

	LogLevel  string `env:"VP_LOG_LEVEL, default=info"`
	LogFormat string `env:"VP_LOG_FORMAT"` // "console", "json", empty picks by terminal
}

// LoadEnv reads Env from the process environment
func LoadEnv(ctx context.Context) (*Env, error) {
	return LoadEnvWith(ctx, envconfig.OsLookuper())
}

// LoadEnvWith reads Env through the given lookuper
func LoadEnvWith(ctx context.Context, lookuper envconfig.Lookuper) (*Env, error) {
	env := &Env{}
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   env,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return env, nil
}
