package sorter

import (
	"sort"
	"time"

	"aspectsort/internal/ratio"
)

// Summary describes what a run did.
type Summary struct {
	RunID    string    `json:"run_id"`
	Root     string    `json:"root"`
	Output   string    `json:"output"`
	Limiter  int       `json:"limiter"`
	Mode     string    `json:"mode"`
	DryRun   bool      `json:"dry_run"`
	Started  time.Time `json:"started"`
	Finished time.Time `json:"finished"`

	// Labels counts relocated files per ratio label.
	Labels map[string]int `json:"labels"`
	Placed []Placement    `json:"placed,omitempty"`
	// Skipped lists media files that could not be measured or relocated.
	Skipped []Skip `json:"skipped,omitempty"`
	// Ignored counts files no probe claims.
	Ignored int `json:"ignored"`
	// Bytes totals the size of every relocated file.
	Bytes int64 `json:"bytes"`
	// Interrupted is set when the context was cancelled mid-run.
	Interrupted bool `json:"interrupted,omitempty"`
}

// Placement records one relocated file.
type Placement struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Label       string `json:"label"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

// Skip records a file left untouched and why.
type Skip struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// LabelCount pairs a label with its file count.
type LabelCount struct {
	Label string
	Count int
}

func newSummary(runID string, opts Options, output string) Summary {
	return Summary{
		RunID:   runID,
		Root:    opts.Root,
		Output:  output,
		Limiter: opts.Limiter,
		Mode:    opts.Mode(),
		DryRun:  opts.DryRun,
		Labels:  make(map[string]int),
	}
}

func (s *Summary) recordPlaced(p Placement, size int64) {
	s.Labels[p.Label]++
	s.Placed = append(s.Placed, p)
	s.Bytes += size
}

func (s *Summary) recordSkip(path, reason string) {
	s.Skipped = append(s.Skipped, Skip{Path: path, Reason: reason})
}

// Processed is the number of files relocated (or planned, on a dry run).
func (s Summary) Processed() int {
	total := 0
	for _, n := range s.Labels {
		total += n
	}
	return total
}

// Counts returns label counts ordered by count, then from widest to
// narrowest ratio.
func (s Summary) Counts() []LabelCount {
	counts := make([]LabelCount, 0, len(s.Labels))
	for label, n := range s.Labels {
		counts = append(counts, LabelCount{Label: label, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return wider(counts[i].Label, counts[j].Label)
	})
	return counts
}

// MostCommon returns the label with the most files. ok is false when
// nothing was processed.
func (s Summary) MostCommon() (LabelCount, bool) {
	counts := s.Counts()
	if len(counts) == 0 {
		return LabelCount{}, false
	}
	return counts[0], true
}

// Duration is the wall time of the run.
func (s Summary) Duration() time.Duration {
	if s.Finished.IsZero() {
		return 0
	}
	return s.Finished.Sub(s.Started)
}

// wider orders labels by ratio value, falling back to string order for
// anything that is not a label.
func wider(a, b string) bool {
	ra, okA := ratio.ParseLabel(a)
	rb, okB := ratio.ParseLabel(b)
	if !okA || !okB {
		return a < b
	}
	// Cross-multiply; labels come from dimensions below 2^31.
	left := int64(ra.Num) * int64(rb.Den)
	right := int64(rb.Num) * int64(ra.Den)
	if left != right {
		return left > right
	}
	return a < b
}
