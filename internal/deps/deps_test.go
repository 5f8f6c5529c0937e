package deps

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(present, script, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}

	if !results[0].Available {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}

	if results[1].Available {
		t.Fatalf("expected missing binary to be unavailable")
	}
	if results[1].Detail == "" {
		t.Fatalf("expected detail message for missing binary")
	}

	if results[1].Command != "clearly-not-present-binary" {
		t.Fatalf("unexpected command recorded: %s", results[1].Command)
	}

	if results[0].Path != present {
		t.Fatalf("expected resolved path %q, got %q", present, results[0].Path)
	}
	if results[0].State() != "ready" || results[1].State() != "missing" {
		t.Fatalf("unexpected states %q / %q", results[0].State(), results[1].State())
	}
	if results[1].Path != "" {
		t.Fatalf("missing binary should have no path, got %q", results[1].Path)
	}

	if results[0].Detail != "" {
		t.Fatalf("unexpected detail for available dependency: %s", results[0].Detail)
	}
}

func TestResolveFFprobePathUsesPATH(t *testing.T) {
	binDir := t.TempDir()
	stub := filepath.Join(binDir, "ffprobe")
	if err := os.WriteFile(stub, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	t.Setenv("PATH", binDir)

	if got := ResolveFFprobePath(""); got != stub {
		t.Fatalf("expected %q, got %q", stub, got)
	}
	status := CheckBinaries([]Requirement{FFprobeRequirement("ffprobe")})[0]
	if !status.Available || !status.Optional {
		t.Fatalf("unexpected status %#v", status)
	}
}

func TestResolveFFprobePathKeepsUnknownBinary(t *testing.T) {
	t.Setenv("PATH", "")
	if got := ResolveFFprobePath("ffprobe-nightly"); got != "ffprobe-nightly" {
		t.Fatalf("expected configured value back, got %q", got)
	}
	status := CheckBinaries([]Requirement{FFprobeRequirement("ffprobe-nightly")})[0]
	if status.Available {
		t.Fatal("expected missing ffprobe to be unavailable")
	}
	if status.State() != "missing (optional)" {
		t.Fatalf("unexpected state %q", status.State())
	}
}

func TestCheckUnconfiguredCommand(t *testing.T) {
	status := Check(Requirement{Name: "Blank", Command: "  "})
	if status.Available || status.Detail != "command not configured" {
		t.Fatalf("unexpected status %#v", status)
	}
}
