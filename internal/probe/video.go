package probe

import (
	"context"
	"fmt"
	"time"

	"aspectsort/internal/media/ffprobe"
)

type inspectFunc func(ctx context.Context, binary, path string) (ffprobe.Result, error)

// VideoProbe reads stream dimensions through ffprobe.
type VideoProbe struct {
	binary     string
	timeout    time.Duration
	extensions extensionSet
	inspect    inspectFunc
}

// NewVideoProbe builds a probe that runs binary for the given extensions. A
// non-positive timeout disables the per-file deadline.
func NewVideoProbe(binary string, timeout time.Duration, extensions []string) *VideoProbe {
	return &VideoProbe{
		binary:     binary,
		timeout:    timeout,
		extensions: newExtensionSet(extensions),
		inspect:    ffprobe.Inspect,
	}
}

func (p *VideoProbe) Name() string { return "ffprobe" }

func (p *VideoProbe) CanHandle(path string) bool {
	return p.extensions.matches(path)
}

func (p *VideoProbe) Dimensions(ctx context.Context, path string) (Dimensions, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	result, err := p.inspect(ctx, p.binary, path)
	if err != nil {
		return Dimensions{}, err
	}
	stream, err := result.PrimaryVideo()
	if err != nil {
		return Dimensions{}, fmt.Errorf("ffprobe %s: %w", path, err)
	}
	width, height := stream.DisplayDimensions()
	return Dimensions{Width: width, Height: height, Source: p.Name()}, nil
}
