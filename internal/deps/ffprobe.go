package deps

import (
	"os/exec"
	"strings"
)

// FFprobeRequirement describes the ffprobe binary used for video dimensions.
// Images decode in-process, so ffprobe is optional.
func FFprobeRequirement(binary string) Requirement {
	return Requirement{
		Name:        "FFprobe",
		Command:     ResolveFFprobePath(binary),
		Description: "Reads video dimensions; images work without it",
		Optional:    true,
	}
}

// ResolveFFprobePath returns the absolute path of the configured ffprobe
// binary when it can be found on PATH, or the configured value unchanged.
func ResolveFFprobePath(configured string) string {
	configured = strings.TrimSpace(configured)
	if configured == "" {
		configured = "ffprobe"
	}
	if resolved, err := exec.LookPath(configured); err == nil {
		return resolved
	}
	return configured
}
