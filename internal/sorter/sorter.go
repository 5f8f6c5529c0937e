package sorter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"aspectsort/internal/config"
	"aspectsort/internal/deps"
	"aspectsort/internal/fileutil"
	"aspectsort/internal/logging"
	"aspectsort/internal/preflight"
	"aspectsort/internal/probe"
	"aspectsort/internal/ratio"
)

// ErrPreflight is returned when the scan root cannot be used.
var ErrPreflight = errors.New("preflight failed")

// Extractor measures media files; *probe.Extractor satisfies it.
type Extractor interface {
	Supports(path string) bool
	Extract(ctx context.Context, path string) (probe.Dimensions, error)
}

// Sorter performs one run over Options.Root. It is not safe for concurrent
// use and should not be reused across runs.
type Sorter struct {
	opts      Options
	extractor Extractor
	logger    *slog.Logger

	runID    string
	output   string
	summary  Summary
	reserved map[string]struct{}
}

// New validates opts and prepares a run.
func New(opts Options, extractor Extractor, logger *slog.Logger) (*Sorter, error) {
	if extractor == nil {
		return nil, errors.New("sorter: extractor is required")
	}
	if err := opts.normalize(); err != nil {
		return nil, err
	}
	return &Sorter{
		opts:      opts,
		extractor: extractor,
		logger:    logging.NewComponentLogger(logger, "sorter"),
		runID:     uuid.NewString(),
		reserved:  make(map[string]struct{}),
	}, nil
}

// RunID identifies this run in logs and in the Summary.
func (s *Sorter) RunID() string {
	return s.runID
}

// Run sorts every candidate file. The returned error is non-nil only for
// preflight, lock, and walk failures or cancellation; the Summary is
// populated in every case.
func (s *Sorter) Run(ctx context.Context) (Summary, error) {
	ctx = logging.WithRunID(ctx, s.runID)
	s.logger = logging.WithContext(ctx, s.logger)

	if err := s.preflight(); err != nil {
		s.summary = newSummary(s.runID, s.opts, "")
		return s.summary, err
	}

	output, err := s.opts.outputRoot()
	if err != nil {
		s.summary = newSummary(s.runID, s.opts, "")
		return s.summary, fmt.Errorf("%w: %w", ErrPreflight, err)
	}
	s.output = output
	s.summary = newSummary(s.runID, s.opts, output)
	s.summary.Started = time.Now()

	if !s.opts.DryRun {
		if err := os.MkdirAll(output, 0o755); err != nil {
			return s.summary, fmt.Errorf("create output directory: %w", err)
		}
		lock, err := acquireLock(output)
		if err != nil {
			return s.summary, err
		}
		defer func() {
			if err := releaseLock(lock); err != nil {
				s.logger.Warn("failed to release output lock", logging.Error(err))
			}
		}()
	}

	s.logger.Info("sort started",
		slog.String("root", s.opts.Root),
		slog.String("output", output),
		slog.Int("limiter", s.opts.Limiter),
		slog.String("mode", s.opts.Mode()),
		slog.Bool("dry_run", s.opts.DryRun),
		slog.Bool("recursive", s.opts.Recursive),
	)

	files, err := s.candidates(ctx)
	if err != nil {
		if ctx.Err() != nil {
			s.summary.Interrupted = true
			return s.finish(), ctx.Err()
		}
		return s.finish(), fmt.Errorf("scan %s: %w", s.opts.Root, err)
	}

	for i, path := range files {
		if ctx.Err() != nil || !s.process(ctx, path) {
			s.summary.Interrupted = true
			s.logger.Warn("sort interrupted; files already relocated stay in place",
				logging.Alert("interrupted"),
				slog.Int("remaining", len(files)-i),
			)
			return s.finish(), ctx.Err()
		}
	}
	return s.finish(), nil
}

func (s *Sorter) finish() Summary {
	s.summary.Finished = time.Now()
	s.logger.Info("sort finished",
		slog.Int("processed", s.summary.Processed()),
		slog.Int("skipped", len(s.summary.Skipped)),
		slog.Int("ignored", s.summary.Ignored),
		slog.Int64("bytes", s.summary.Bytes),
		slog.Duration("elapsed", s.summary.Duration()),
	)
	return s.summary
}

func (s *Sorter) preflight() error {
	// Reading is enough when copying into a separate output tree.
	needWrite := s.opts.Move || (s.opts.OutputDir == "" && s.opts.Layout == config.LayoutInPlace)
	if s.opts.DryRun {
		needWrite = false
	}
	result := preflight.CheckDirectoryAccess("Source directory", s.opts.Root, needWrite)
	if !result.Passed {
		return fmt.Errorf("%w: %s", ErrPreflight, result.Detail)
	}

	if s.opts.FFprobeBinary != "" {
		status := deps.CheckBinaries([]deps.Requirement{deps.FFprobeRequirement(s.opts.FFprobeBinary)})[0]
		if !status.Available {
			s.logger.Warn("ffprobe not available; video files will be skipped",
				logging.Alert("missing_dependency"),
				slog.String("detail", status.Detail),
			)
		}
	}
	return nil
}

// process handles one file and returns false only when ctx was cancelled
// before the file could be measured.
func (s *Sorter) process(ctx context.Context, path string) bool {
	rel := s.relative(path)
	log := s.logger.With(logging.File(rel))

	if !s.extractor.Supports(path) {
		s.summary.Ignored++
		log.Debug("ignoring non-media file")
		return true
	}

	dims, err := s.extractor.Extract(ctx, path)
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		s.skip(log, path, "unreadable", err)
		return true
	}

	label, err := ratio.Label(dims.Width, dims.Height, s.opts.Limiter)
	if err != nil {
		s.skip(log, path, "ratio", err)
		return true
	}
	log = log.With(logging.Label(label)).With(logging.Measured(dims.Width, dims.Height, dims.Source)...)

	info, err := os.Stat(path)
	if err != nil {
		s.skip(log, path, "stat", err)
		return true
	}

	dest, err := s.destination(label, filepath.Base(path))
	if err != nil {
		s.skip(log, path, "destination", err)
		return true
	}

	if !s.opts.DryRun {
		if err := s.relocate(path, dest); err != nil {
			s.skip(log, path, s.opts.Mode(), err)
			return true
		}
	}

	s.summary.recordPlaced(Placement{
		Source:      path,
		Destination: dest,
		Label:       label,
		Width:       dims.Width,
		Height:      dims.Height,
	}, info.Size())

	msg := "file sorted"
	if s.opts.DryRun {
		msg = "file would be sorted"
	}
	log.Info(msg, slog.String("destination", s.relative(dest)))
	return true
}

// destination picks a free path for name inside the label folder. On a dry
// run the folder is not created, so planned names are tracked in memory.
func (s *Sorter) destination(label, name string) (string, error) {
	dir := filepath.Join(s.output, label)
	if !s.opts.DryRun {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create label directory: %w", err)
		}
	}
	dest, err := fileutil.UniqueFilePathExcluding(filepath.Join(dir, name), s.reserved)
	if err != nil {
		return "", err
	}
	s.reserved[dest] = struct{}{}
	return dest, nil
}

func (s *Sorter) relocate(src, dst string) error {
	if s.opts.Move {
		return fileutil.MoveFile(src, dst)
	}
	err := fileutil.CopyFilePreserve(src, dst)
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("destination appeared during copy: %w", err)
	}
	return err
}

func (s *Sorter) skip(log *slog.Logger, path, stage string, err error) {
	reason := fmt.Sprintf("%s: %v", stage, err)
	log.Warn("skipping file", slog.String("stage", stage), logging.Error(err))
	s.summary.recordSkip(path, reason)
}

func (s *Sorter) relative(path string) string {
	if rel, err := filepath.Rel(s.opts.Root, path); err == nil && !filepath.IsAbs(rel) && rel != "" {
		return rel
	}
	return path
}
