package platform

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
)

// stubExec records requested commands and runs the test binary instead,
// which exits immediately because no test matches.
func stubExec(t *testing.T) *[][]string {
	t.Helper()
	var calls [][]string
	original := execCommand
	execCommand = func(name string, args ...string) *exec.Cmd {
		calls = append(calls, append([]string{name}, args...))
		return exec.Command(os.Args[0], "-test.run=^$")
	}
	t.Cleanup(func() { execCommand = original })
	return &calls
}

// stubLookPath pretends only the named binaries are installed
func stubLookPath(t *testing.T, installed ...string) {
	t.Helper()
	original := lookPath
	lookPath = func(file string) (string, error) {
		for _, name := range installed {
			if name == file {
				return "/usr/bin/" + file, nil
			}
		}
		return "", exec.ErrNotFound
	}
	t.Cleanup(func() { lookPath = original })
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "nested", "test_dir")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	calls := stubExec(t)
	nonExistentFile := filepath.Join(t.TempDir(), "nonexistent_v2.mp4")

	err := OpenFileInManager(nonExistentFile)
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got: %v", err)
	}
	if len(*calls) != 0 {
		t.Errorf("Expected no commands for a missing file, got %v", *calls)
	}
}

func TestOpenFileInManager_EmptyPath(t *testing.T) {
	stubExec(t)
	if err := OpenFileInManager(""); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got: %v", err)
	}
}

func TestOpenFileInManager_WithExistingFile(t *testing.T) {
	calls := stubExec(t)
	stubLookPath(t)
	dir := t.TempDir()
	file := filepath.Join(dir, "clip_v2.mp4")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}

	if err := OpenFileInManager(file); err != nil {
		t.Fatalf("OpenFileInManager failed: %v", err)
	}
	if len(*calls) != 1 {
		t.Fatalf("Expected one command, got %v", *calls)
	}

	call := (*calls)[0]
	switch runtime.GOOS {
	case OSLinux:
		if call[0] != XDGOpenCommand || call[1] != dir {
			t.Errorf("Expected xdg-open on the parent directory, got %v", call)
		}
	case OSDarwin:
		if call[0] != OpenCommand || call[1] != MacOSSelectFlag {
			t.Errorf("Expected open -R, got %v", call)
		}
	}
}

func TestOpenFileInManager_SelectsInNemo(t *testing.T) {
	if runtime.GOOS != OSLinux {
		t.Skip("nemo selection is Linux only")
	}
	calls := stubExec(t)
	stubLookPath(t, "nemo")
	file := filepath.Join(t.TempDir(), "clip_v2.mp4")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}

	if err := OpenFileInManager(file); err != nil {
		t.Fatalf("OpenFileInManager failed: %v", err)
	}
	if len(*calls) != 1 {
		t.Fatalf("Expected one command, got %v", *calls)
	}
	if call := (*calls)[0]; call[0] != "nemo" || call[1] != file {
		t.Errorf("Expected nemo on the file itself, got %v", call)
	}
}

func TestOpenFileWithDefaultApp(t *testing.T) {
	calls := stubExec(t)
	file := filepath.Join(t.TempDir(), "clip.mp4")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}

	if err := OpenFileWithDefaultApp(file); err != nil {
		t.Fatalf("OpenFileWithDefaultApp failed: %v", err)
	}
	if len(*calls) != 1 {
		t.Fatalf("Expected one command, got %v", *calls)
	}
	call := (*calls)[0]
	if last := call[len(call)-1]; last != file {
		t.Errorf("Expected the file path as last argument, got %s", last)
	}
}
