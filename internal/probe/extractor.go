package probe

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"aspectsort/internal/config"
)

// Extractor dispatches files to the probes that claim them.
type Extractor struct {
	probes   []Probe
	fallback Probe
}

// NewExtractor tries probes in order; fallback (may be nil) is tried last
// for any supported file the matching probes could not read.
func NewExtractor(fallback Probe, probes ...Probe) *Extractor {
	return &Extractor{probes: probes, fallback: fallback}
}

// NewFromConfig wires the image and video probes described by cfg.
func NewFromConfig(cfg *config.Config) *Extractor {
	video := NewVideoProbe(cfg.FFprobeBinary(), cfg.FFprobeTimeout(), cfg.Media.VideoExtensions)
	img := NewImageProbe(cfg.Media.ImageExtensions, cfg.Media.HonorEXIFOrientation)
	var fallback Probe
	if cfg.Media.FFprobeFallback {
		fallback = video
	}
	return NewExtractor(fallback, img, video)
}

// Supports reports whether any probe claims path.
func (e *Extractor) Supports(path string) bool {
	for _, p := range e.probes {
		if p.CanHandle(path) {
			return true
		}
	}
	return false
}

// Extract measures path. Every failure wraps ErrUnreadable except context
// cancellation, which is returned as is.
func (e *Extractor) Extract(ctx context.Context, path string) (Dimensions, error) {
	var errs []error
	tried := make(map[string]struct{}, len(e.probes)+1)

	attempt := func(p Probe) (Dimensions, bool) {
		tried[p.Name()] = struct{}{}
		dims, err := p.Dimensions(ctx, path)
		if err == nil && !dims.Valid() {
			err = fmt.Errorf("invalid dimensions %s", dims)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
			return Dimensions{}, false
		}
		return dims, true
	}

	for _, p := range e.probes {
		if !p.CanHandle(path) {
			continue
		}
		if dims, ok := attempt(p); ok {
			return dims, nil
		}
		if ctx.Err() != nil {
			return Dimensions{}, ctx.Err()
		}
	}

	if len(tried) == 0 {
		return Dimensions{}, fmt.Errorf("%w: %s: unsupported extension %q", ErrUnreadable, filepath.Base(path), filepath.Ext(path))
	}
	if e.fallback != nil {
		if _, done := tried[e.fallback.Name()]; !done {
			if dims, ok := attempt(e.fallback); ok {
				return dims, nil
			}
			if ctx.Err() != nil {
				return Dimensions{}, ctx.Err()
			}
		}
	}
	return Dimensions{}, fmt.Errorf("%w: %s: %w", ErrUnreadable, filepath.Base(path), errors.Join(errs...))
}
