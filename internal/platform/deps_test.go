package platform

import (
	"os"
	"testing"
)

func TestCheckBinaries(t *testing.T) {
	statuses := CheckBinaries([]Requirement{
		{Name: "Self", Command: os.Args[0], Description: " test binary "},
		{Name: "Missing", Command: "definitely-not-a-real-binary-42"},
		{Name: "Unset", Command: "  ", Optional: true},
	})

	if len(statuses) != 3 {
		t.Fatalf("Expected 3 statuses, got %d", len(statuses))
	}
	if !statuses[0].Available || statuses[0].Path == "" {
		t.Errorf("Expected test binary to be available, got %+v", statuses[0])
	}
	if statuses[0].Description != "test binary" {
		t.Errorf("Expected trimmed description, got %q", statuses[0].Description)
	}
	if statuses[1].Available || statuses[1].Detail == "" {
		t.Errorf("Expected missing binary with detail, got %+v", statuses[1])
	}
	if statuses[2].Available || statuses[2].Detail != "command not configured" {
		t.Errorf("Expected unconfigured command, got %+v", statuses[2])
	}

	missing := MissingRequired(statuses)
	if len(missing) != 1 || missing[0].Name != "Missing" {
		t.Errorf("Expected only the required missing binary, got %+v", missing)
	}
}

func TestTranscodeRequirements(t *testing.T) {
	reqs := TranscodeRequirements("ffmpeg", "ffprobe")
	if len(reqs) != 2 {
		t.Fatalf("Expected 2 requirements, got %d", len(reqs))
	}
	if reqs[0].Optional {
		t.Error("ffmpeg must be required")
	}
	if !reqs[1].Optional {
		t.Error("ffprobe must be optional")
	}
}
