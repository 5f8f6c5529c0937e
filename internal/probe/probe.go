package probe

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnreadable marks files whose dimensions could not be determined.
var ErrUnreadable = errors.New("unreadable")

// Dimensions is a positive pixel size as displayed.
type Dimensions struct {
	Width  int
	Height int
	// Source names the probe that produced the measurement.
	Source string
}

// Valid reports whether both sides are positive.
func (d Dimensions) Valid() bool {
	return d.Width > 0 && d.Height > 0
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

func (d Dimensions) swapped() Dimensions {
	return Dimensions{Width: d.Height, Height: d.Width, Source: d.Source}
}

// Probe measures files of the kinds it can handle.
type Probe interface {
	Name() string
	CanHandle(path string) bool
	Dimensions(ctx context.Context, path string) (Dimensions, error)
}

type extensionSet map[string]struct{}

func newExtensionSet(extensions []string) extensionSet {
	set := make(extensionSet, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = struct{}{}
	}
	return set
}

func (s extensionSet) matches(path string) bool {
	_, ok := s[strings.ToLower(filepath.Ext(path))]
	return ok
}
