package platform

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// NemoSelectionEnv is set by the Nemo file manager for scripts run on a selection
const NemoSelectionEnv = "NEMO_SCRIPT_SELECTED_FILE_PATHS"

// Output naming defaults
const (
	DefaultOutputSuffix = "_v2"
)

// DefaultExtensions are the input extensions an output path can be derived for
var DefaultExtensions = []string{".mp4", ".avi"}

// ErrUnrecognizedExtension is returned when no output path can be derived
var ErrUnrecognizedExtension = errors.New("unrecognized input extension")

// FirstSelectedPath returns the first line of a newline separated selection
// list, as provided by Nemo. A value without a newline is returned whole.
func FirstSelectedPath(selection string) string {
	first, _, _ := strings.Cut(selection, "\n")
	return strings.TrimRight(first, "\r")
}

// DeriveOutputPath inserts suffix before the extension of input. Matching is
// case-sensitive against exts; anything else yields ErrUnrecognizedExtension
// and an empty path.
func DeriveOutputPath(input, suffix string, exts []string) (string, error) {
	if input == "" {
		return "", nil
	}
	ext := filepath.Ext(input)
	for _, candidate := range exts {
		if ext != "" && ext == candidate {
			return strings.TrimSuffix(input, ext) + suffix + ext, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnrecognizedExtension, ext)
}
