package transcode

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/gofrs/flock"

	"github.com/ytget/video-processor/internal/model"
)

// Default executables and ffprobe arguments
const (
	DefaultFFmpegPath   = "ffmpeg"
	DefaultFFprobePath  = "ffprobe"
	ffprobeLogLevel     = "error"
	ffprobeShowEntries  = "format=duration"
	ffprobeOutputFormat = "default=noprint_wrappers=1:nokey=1"
	lockSuffix          = ".lock"
)

// CommandFunc creates the process for a run. Tests replace it to avoid
// spawning the real binaries.
type CommandFunc func(ctx context.Context, name string, args ...string) *exec.Cmd

// Runner executes ffmpeg for a parameter snapshot.
type Runner struct {
	ffmpegPath  string
	ffprobePath string
	logger      *slog.Logger
	command     CommandFunc
}

// RunnerOption configures a Runner
type RunnerOption func(*Runner)

// WithFFprobe sets the ffprobe binary used to probe input duration. An
// empty path disables probing, so progress carries no ratio.
func WithFFprobe(path string) RunnerOption {
	return func(r *Runner) { r.ffprobePath = path }
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithCommandFunc replaces process creation
func WithCommandFunc(fn CommandFunc) RunnerOption {
	return func(r *Runner) {
		if fn != nil {
			r.command = fn
		}
	}
}

// NewRunner creates a Runner. An empty ffmpegPath resolves "ffmpeg" via PATH.
func NewRunner(ffmpegPath string, opts ...RunnerOption) *Runner {
	if ffmpegPath == "" {
		ffmpegPath = DefaultFFmpegPath
	}
	r := &Runner{
		ffmpegPath:  ffmpegPath,
		ffprobePath: DefaultFFprobePath,
		logger:      slog.Default(),
		command:     exec.CommandContext,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Command returns the rendered command line and its argument list
func (r *Runner) Command(params model.TranscodeParameters) (string, []string, error) {
	args, err := BuildArgs(params)
	if err != nil {
		return "", nil, err
	}
	return Render(r.ffmpegPath, args), args, nil
}

// Run transcodes synchronously. onProgress, if set, receives every progress
// block ffmpeg reports. No process is started when the parameters are
// rejected.
func (r *Runner) Run(ctx context.Context, params model.TranscodeParameters, onProgress func(Progress)) error {
	rendered, args, err := r.Command(params)
	if err != nil {
		return err
	}
	r.logger.Debug("transcode parameters",
		slog.String("input", params.InputPath),
		slog.String("output", params.OutputPath),
		slog.Int("quality", params.Quality),
		slog.Any("crop", []int{params.CropTop, params.CropBottom, params.CropLeft, params.CropRight}),
		slog.Int("volume", params.VolumePercent),
		slog.String("audio_channels", params.AudioChannels.String()),
	)

	lock := flock.New(params.OutputPath + lockSuffix)
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock output %s: %w", params.OutputPath, err)
	}
	if !locked {
		return fmt.Errorf("%w: %s", ErrOutputBusy, params.OutputPath)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}()

	var duration float64
	if r.ffprobePath != "" {
		duration, err = r.ProbeDuration(ctx, params.InputPath)
		if err != nil {
			if ctx.Err() != nil {
				return fmt.Errorf("ffprobe cancelled: %w", ctx.Err())
			}
			r.logger.Warn("could not probe input duration, progress ratio disabled",
				slog.String("input", params.InputPath), slog.Any("error", err))
			duration = 0
		}
	}

	r.logger.Info("running ffmpeg", slog.String("command", rendered))
	return r.execute(ctx, params.OutputPath, args, duration, onProgress)
}

func (r *Runner) execute(ctx context.Context, output string, args []string, duration float64, onProgress func(Progress)) error {
	cmd := r.command(ctx, r.ffmpegPath, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("create stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return &ProcessError{Binary: r.ffmpegPath, Args: args, Err: err}
	}

	parser := newProgressParser(duration)
	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		block, ok := parser.feed(scanner.Text())
		if !ok {
			continue
		}
		r.logger.Debug("ffmpeg progress",
			slog.Duration("out_time", block.OutTime),
			slog.String("speed", block.Speed),
			slog.Int("percent", block.Percent()),
		)
		if onProgress != nil {
			onProgress(block)
		}
	}
	if err := scanner.Err(); err != nil {
		r.logger.Warn("ffmpeg progress unreadable, discarding the rest", slog.Any("error", err))
		_, _ = io.Copy(io.Discard, stdout)
	}

	err = cmd.Wait()
	if err == nil {
		r.logger.Info("ffmpeg finished", slog.String("output", output))
		return nil
	}
	if ctx.Err() != nil {
		return fmt.Errorf("ffmpeg cancelled: %w", ctx.Err())
	}

	perr := &ProcessError{
		Binary: r.ffmpegPath,
		Args:   args,
		Stderr: tail(stderr.String(), maxStderrTail),
		Err:    err,
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		perr.ExitCode = exitErr.ExitCode()
	}
	r.logger.Error("ffmpeg failed", slog.Int("exit_code", perr.ExitCode), slog.Any("error", err))
	return perr
}

// ProbeDuration returns the duration of a media file in seconds
func (r *Runner) ProbeDuration(ctx context.Context, path string) (float64, error) {
	args := []string{
		"-v", ffprobeLogLevel,
		"-show_entries", ffprobeShowEntries,
		"-of", ffprobeOutputFormat,
		path,
	}
	cmd := r.command(ctx, r.ffprobePath, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return 0, fmt.Errorf("ffprobe cancelled: %w", ctx.Err())
		}
		return 0, &ProcessError{Binary: r.ffprobePath, Args: args, Stderr: tail(stderr.String(), maxStderrTail), Err: err}
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(stdout.String()), 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration: %w", err)
	}
	return duration, nil
}
