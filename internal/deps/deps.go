// Package deps reports whether the external programs aspectsort shells out
// to are installed.
package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement names an external program and what aspectsort uses it for.
// A missing optional program disables part of the feature set rather than
// the whole run.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status is a Requirement after a PATH lookup. Path holds the resolved
// executable when Available is set; Detail explains why it is not.
type Status struct {
	Requirement
	Path      string
	Available bool
	Detail    string
}

// State is the one-word availability shown to users.
func (s Status) State() string {
	switch {
	case s.Available:
		return "ready"
	case s.Optional:
		return "missing (optional)"
	default:
		return "missing"
	}
}

// Check looks up a single requirement.
func Check(req Requirement) Status {
	req.Command = strings.TrimSpace(req.Command)
	req.Description = strings.TrimSpace(req.Description)
	status := Status{Requirement: req}
	if req.Command == "" {
		status.Detail = "command not configured"
		return status
	}
	resolved, err := exec.LookPath(req.Command)
	if err != nil {
		status.Detail = fmt.Sprintf("binary %q not found", req.Command)
		return status
	}
	status.Path = resolved
	status.Available = true
	return status
}

// CheckBinaries looks up every requirement, keeping their order.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		results = append(results, Check(req))
	}
	return results
}
