package preflight

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"aspectsort/internal/config"
	"aspectsort/internal/deps"
)

// CheckDirectoryAccess verifies that the directory exists and can be listed.
// When write is set it must also accept new entries.
func CheckDirectoryAccess(name, path string, write bool) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	mode := uint32(unix.R_OK | unix.X_OK)
	detail := "read ok"
	if write {
		mode |= unix.W_OK
		detail = "read/write ok"
	}
	if err := unix.Access(path, mode); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%s)", path, detail)}
}

// CheckFFprobe reports whether the configured ffprobe binary can be found.
// A missing ffprobe only affects video files, so the detail says so.
func CheckFFprobe(cfg *config.Config) Result {
	status := CheckSystemDeps(cfg)[0]
	if status.Available {
		return Result{Name: status.Name, Passed: true, Detail: status.Path}
	}
	return Result{Name: status.Name, Detail: status.Detail + "; video files will be skipped"}
}

// CheckSystemDeps evaluates the external binaries aspectsort can use. Both
// the sorter and the doctor command go through it so the requirement list
// lives in one place.
func CheckSystemDeps(cfg *config.Config) []deps.Status {
	binary := ""
	if cfg != nil {
		binary = cfg.FFprobeBinary()
	}
	return deps.CheckBinaries([]deps.Requirement{deps.FFprobeRequirement(binary)})
}
