package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ytget/video-processor/internal/config"
	"github.com/ytget/video-processor/internal/logging"
	"github.com/ytget/video-processor/internal/platform"
	"github.com/ytget/video-processor/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	ctx := context.Background()

	env, err := config.LoadEnv(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read environment: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(logging.Options{Level: env.LogLevel, Format: env.LogFormat, Output: os.Stderr})
	if err != nil {
		fmt.Fprintf(os.Stderr, "create logger: %v\n", err)
		os.Exit(1)
	}
	logger.Info("video-processor starting", slog.String("version", version))

	profilePath := env.ConfigPath
	if profilePath == "" {
		if path, err := config.DefaultProfilePath(); err == nil {
			profilePath = path
		}
	}
	profile, err := config.Load(profilePath)
	if err != nil {
		logger.Error("profile rejected, using defaults", slog.String("path", profilePath), slog.Any("error", err))
		profile = config.Default()
	}
	profile.ApplyEnv(env)

	statuses := platform.CheckBinaries(platform.TranscodeRequirements(profile.FFmpegPath, profile.FFprobePath))
	for _, s := range platform.MissingRequired(statuses) {
		logger.Warn("required binary missing", slog.String("name", s.Name), slog.String("detail", s.Detail))
	}

	ui.Launch(ui.Options{
		Profile:  profile,
		Input:    platform.FirstSelectedPath(env.SelectedFiles),
		Logger:   logger,
		LogLevel: logging.ParseLevel(env.LogLevel),
	})
}
