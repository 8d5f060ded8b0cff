package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ytget/video-processor/internal/logging"
	"github.com/ytget/video-processor/internal/ui"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var logFormatFlag string
	var inputFlag string

	ctx := newCommandContext(&configFlag, &logLevelFlag, &logFormatFlag)

	rootCmd := &cobra.Command{
		Use:           "video-processor",
		Short:         "Crop, re-encode and remix a video with ffmpeg",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipConfigLoad] == "true" {
				return nil
			}
			_, err := ctx.ensureConfig(cmd.Context())
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := ctx.ensureConfig(cmd.Context())
			if err != nil {
				return err
			}
			logger, err := ctx.logger(os.Stderr)
			if err != nil {
				return err
			}
			ui.Launch(ui.Options{
				Profile:  profile,
				Input:    inputPath(inputFlag, ctx.envValue()),
				Logger:   logger,
				LogLevel: logging.ParseLevel(ctx.logLevel()),
			})
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Profile file path (.toml or .yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "Log format: console or json")
	rootCmd.Flags().StringVarP(&inputFlag, "input", "i", "", "Initial input video")

	rootCmd.AddCommand(newRunCommand(ctx))
	rootCmd.AddCommand(newCommandCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
