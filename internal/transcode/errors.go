package transcode

import (
	"errors"
	"fmt"
	"strings"
)

// Static errors for transcode operations.
var (
	// ErrNoInputSelected is returned when a run is requested without an input file.
	ErrNoInputSelected = errors.New("no input file selected")
	// ErrNoOutputPath is returned when the output path could not be derived from the input.
	ErrNoOutputPath = errors.New("no output path: input extension is not recognized")
	// ErrInvalidParameters is returned when a parameter is out of range or off its step grid.
	ErrInvalidParameters = errors.New("invalid transcode parameters")
	// ErrExternalProcessFailed is matched by every *ProcessError.
	ErrExternalProcessFailed = errors.New("external process failed")
	// ErrOutputBusy is returned when another run holds the output file.
	ErrOutputBusy = errors.New("output file is busy")
	// ErrJobNotFound is returned for unknown job IDs.
	ErrJobNotFound = errors.New("transcode job not found")
	// ErrJobNotActive is returned when stopping a job that already finished.
	ErrJobNotActive = errors.New("transcode job is not active")
)

// maxStderrTail bounds how much of the process stderr is kept in errors
const maxStderrTail = 4096

// ProcessError represents a failed ffmpeg or ffprobe run, including the
// tail of its stderr output.
type ProcessError struct {
	Binary   string
	Args     []string
	Stderr   string
	ExitCode int
	Err      error
}

func (e *ProcessError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s failed", e.Binary)
	if e.ExitCode > 0 {
		fmt.Fprintf(&b, " with exit code %d", e.ExitCode)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		fmt.Fprintf(&b, "\nstderr: %s", stderr)
	}
	return b.String()
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrExternalProcessFailed) hold for any ProcessError
func (e *ProcessError) Is(target error) bool {
	return target == ErrExternalProcessFailed
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
