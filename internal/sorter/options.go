package sorter

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"aspectsort/internal/config"
	"aspectsort/internal/fileutil"
	"aspectsort/internal/ratio"
)

// Options configures a sorting run.
type Options struct {
	// Root is the directory whose files are sorted.
	Root          string
	Limiter       int
	Move          bool
	Recursive     bool
	DryRun        bool
	IncludeHidden bool
	// Layout is config.LayoutInPlace or config.LayoutSibling.
	Layout string
	// OutputDir, when set, replaces the layout's output root.
	OutputDir string
	// FFprobeBinary is checked during preflight so a missing binary is
	// reported once instead of once per video.
	FFprobeBinary string
}

// OptionsFromConfig seeds Options from the [sort] and [ffprobe] sections.
func OptionsFromConfig(cfg *config.Config, root string) Options {
	return Options{
		Root:          root,
		Limiter:       cfg.Sort.Limiter,
		Move:          cfg.Sort.Move,
		Recursive:     cfg.Sort.Recursive,
		IncludeHidden: cfg.Sort.IncludeHidden,
		Layout:        cfg.Sort.Layout,
		OutputDir:     cfg.Sort.OutputDir,
		FFprobeBinary: cfg.FFprobeBinary(),
	}
}

// Mode names the relocation performed on each file.
func (o Options) Mode() string {
	if o.Move {
		return "move"
	}
	return "copy"
}

func (o *Options) normalize() error {
	root := strings.TrimSpace(o.Root)
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolve root: %w", err)
	}
	o.Root = abs

	if o.Limiter < 1 {
		return fmt.Errorf("limiter %d: %w", o.Limiter, ratio.ErrInvalidArgument)
	}

	o.Layout = strings.ToLower(strings.TrimSpace(o.Layout))
	switch o.Layout {
	case "":
		o.Layout = config.LayoutInPlace
	case config.LayoutInPlace, config.LayoutSibling:
	default:
		return fmt.Errorf("unknown layout %q", o.Layout)
	}

	if out := strings.TrimSpace(o.OutputDir); out != "" {
		expanded, err := config.ExpandPath(out)
		if err != nil {
			return fmt.Errorf("resolve output: %w", err)
		}
		o.OutputDir = expanded
	}
	return nil
}

// outputRoot returns the directory label folders are created under. The
// sibling layout picks a fresh "<root>_sorted_L<limiter>[ (n)]" directory so
// earlier runs are never mixed with this one.
func (o Options) outputRoot() (string, error) {
	if o.OutputDir != "" {
		return o.OutputDir, nil
	}
	if o.Layout != config.LayoutSibling {
		return o.Root, nil
	}
	parent, name := filepath.Split(o.Root)
	if name == "" {
		return "", errors.New("sibling layout needs a named root directory")
	}
	base := filepath.Join(parent, name+"_sorted_L"+strconv.Itoa(o.Limiter))
	return fileutil.UniqueDirPath(base)
}
