package model

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// TranscodeJob represents a single ffmpeg run started from the control panel or CLI
type TranscodeJob struct {
	ID         string
	Params     TranscodeParameters
	Status     JobStatus
	Progress   float64 // 0.0 to 1.0, stays 0 when the input duration is unknown
	Percent    int     // 0 to 100
	Speed      string  // ffmpeg speed field, e.g. "1.52x"
	OutTimeSec float64 // position of the encoder in the output, seconds
	Command    string  // rendered command line, for the log panel
	LastError  string  // last error message if any
	OutputSize int64   // bytes written, filled on completion
	StartedAt  time.Time
	FinishedAt time.Time
}

// GetElapsedString returns the run time formatted as hh:mm:ss or mm:ss, or "—" before start
func (j *TranscodeJob) GetElapsedString() string {
	if j.StartedAt.IsZero() {
		return "—"
	}
	end := j.FinishedAt
	if end.IsZero() {
		end = time.Now()
	}
	total := int(end.Sub(j.StartedAt).Seconds())
	if total < 0 {
		total = 0
	}

	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// GetDisplayName returns the output file name, falling back to the input file name
func (j *TranscodeJob) GetDisplayName() string {
	for _, path := range []string{j.Params.OutputPath, j.Params.InputPath} {
		if strings.TrimSpace(path) == "" {
			continue
		}
		// Support both / and \ separators regardless of the host OS
		parts := strings.FieldsFunc(path, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			return parts[len(parts)-1]
		}
		return filepath.Base(path)
	}
	return j.ID
}

// GetOutputSizeString returns the output size in human units, or "" when unknown
func (j *TranscodeJob) GetOutputSizeString() string {
	if j.OutputSize <= 0 {
		return ""
	}
	return humanize.Bytes(uint64(j.OutputSize))
}
