package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ytget/video-processor/internal/logging"
	"github.com/ytget/video-processor/internal/transcode"
)

const progressThrottle = 100 * time.Millisecond

func newRunCommand(ctx *commandContext) *cobra.Command {
	var flags parameterFlags
	var noProgress bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Transcode a video without opening the window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := ctx.ensureConfig(cmd.Context())
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			params, err := flags.parameters(cmd, profile, ctx.envValue())
			if err != nil {
				return err
			}

			runner := transcode.NewRunner(profile.FFmpegPath,
				transcode.WithFFprobe(profile.FFprobePath),
				transcode.WithLogger(logger))

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			show := !noProgress && logging.IsTerminal(cmd.ErrOrStderr())
			bar := newRunProgress(cmd.ErrOrStderr(), show)
			if err := runner.Run(runCtx, params, bar.update); err != nil {
				bar.abort()
				return err
			}
			bar.finish()

			size := "unknown size"
			if info, err := os.Stat(params.OutputPath); err == nil {
				size = humanize.Bytes(uint64(info.Size()))
			} else {
				logger.Warn("stat output failed", slog.String("path", params.OutputPath), slog.Any("error", err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", params.OutputPath, size)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "Disable the progress bar")
	return cmd
}

// runProgress drives a terminal progress bar from ffmpeg progress blocks
type runProgress struct {
	bar *progressbar.ProgressBar
}

func newRunProgress(w io.Writer, visible bool) *runProgress {
	bar := progressbar.NewOptions(100,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetVisibility(visible),
		progressbar.OptionSetDescription("ffmpeg"),
		progressbar.OptionSetWidth(30),
		progressbar.OptionThrottle(progressThrottle),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetPredictTime(true),
	)
	return &runProgress{bar: bar}
}

func (p *runProgress) update(progress transcode.Progress) {
	if progress.Speed != "" {
		p.bar.Describe("ffmpeg " + progress.Speed)
	}
	if progress.Ratio > 0 {
		_ = p.bar.Set(progress.Percent())
	}
}

func (p *runProgress) finish() {
	_ = p.bar.Finish()
}

func (p *runProgress) abort() {
	_ = p.bar.Exit()
}
