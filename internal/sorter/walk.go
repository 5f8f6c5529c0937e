package sorter

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"aspectsort/internal/logging"
	"aspectsort/internal/ratio"
)

// candidates lists the regular files a run should consider, in lexical
// order. The whole list is gathered before anything is relocated so files
// moved during the run are never visited twice.
func (s *Sorter) candidates(ctx context.Context) ([]string, error) {
	if !s.opts.Recursive {
		return s.topLevel()
	}

	var files []string
	err := filepath.WalkDir(s.opts.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == s.opts.Root {
				return err
			}
			s.logger.Warn("skipping unreadable path",
				logging.File(path),
				logging.Error(err),
			)
			s.summary.recordSkip(path, err.Error())
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			if path != s.opts.Root && s.skipDir(path, d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if s.wantFile(d) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

func (s *Sorter) topLevel() ([]string, error) {
	entries, err := os.ReadDir(s.opts.Root)
	if err != nil {
		return nil, err
	}
	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if s.wantFile(entry) {
			files = append(files, filepath.Join(s.opts.Root, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// skipDir prunes hidden directories, the output root when it sits inside the
// scan root, and label folders directly below the output root.
func (s *Sorter) skipDir(path, name string) bool {
	if hidden(name) {
		return true
	}
	if path == s.output {
		return true
	}
	if filepath.Dir(path) == s.output {
		if _, ok := ratio.ParseLabel(name); ok {
			return true
		}
	}
	return false
}

func (s *Sorter) wantFile(d fs.DirEntry) bool {
	name := d.Name()
	if name == LockFileName {
		return false
	}
	if hidden(name) && !s.opts.IncludeHidden {
		return false
	}
	if !d.Type().IsRegular() {
		s.summary.Ignored++
		return false
	}
	return true
}

func hidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
