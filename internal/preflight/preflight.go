package preflight

import (
	"aspectsort/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the checks that apply to cfg. The log directory is only
// checked when file logging is enabled.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result
	if cfg.Logging.File {
		results = append(results, CheckDirectoryAccess("Log directory", cfg.Paths.LogDir, true))
	}
	if cfg.Sort.OutputDir != "" {
		results = append(results, CheckDirectoryAccess("Output directory", cfg.Sort.OutputDir, true))
	}
	results = append(results, CheckFFprobe(cfg))
	return results
}
