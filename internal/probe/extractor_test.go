package probe

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"aspectsort/internal/testsupport"
)

type fakeProbe struct {
	name  string
	exts  extensionSet
	dims  Dimensions
	err   error
	calls int
}

func (f *fakeProbe) Name() string               { return f.name }
func (f *fakeProbe) CanHandle(path string) bool { return f.exts.matches(path) }
func (f *fakeProbe) Dimensions(ctx context.Context, path string) (Dimensions, error) {
	f.calls++
	if err := ctx.Err(); err != nil {
		return Dimensions{}, err
	}
	return f.dims, f.err
}

func TestExtractorDispatchesByExtension(t *testing.T) {
	img := &fakeProbe{name: "image", exts: newExtensionSet([]string{".jpg"}), dims: Dimensions{Width: 4, Height: 3, Source: "image"}}
	vid := &fakeProbe{name: "ffprobe", exts: newExtensionSet([]string{".mp4"}), dims: Dimensions{Width: 16, Height: 9, Source: "ffprobe"}}
	ex := NewExtractor(vid, img, vid)

	dims, err := ex.Extract(context.Background(), "photo.JPG")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if dims.String() != "4x3" || img.calls != 1 || vid.calls != 0 {
		t.Fatalf("unexpected dispatch: dims=%s image=%d video=%d", dims, img.calls, vid.calls)
	}

	dims, err = ex.Extract(context.Background(), "clip.mp4")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if dims.String() != "16x9" || vid.calls != 1 {
		t.Fatalf("unexpected dispatch: dims=%s video=%d", dims, vid.calls)
	}
}

func TestExtractorUnsupportedExtension(t *testing.T) {
	img := &fakeProbe{name: "image", exts: newExtensionSet([]string{".jpg"})}
	ex := NewExtractor(nil, img)

	if ex.Supports("notes.txt") {
		t.Fatal("Supports should be false for .txt")
	}
	_, err := ex.Extract(context.Background(), "notes.txt")
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("expected ErrUnreadable, got %v", err)
	}
	if img.calls != 0 {
		t.Fatal("no probe should run for an unsupported extension")
	}
}

func TestExtractorFallback(t *testing.T) {
	img := &fakeProbe{name: "image", exts: newExtensionSet([]string{".webp"}), err: errors.New("unknown format")}
	vid := &fakeProbe{name: "ffprobe", exts: newExtensionSet([]string{".mp4"}), dims: Dimensions{Width: 1000, Height: 500, Source: "ffprobe"}}

	dims, err := NewExtractor(vid, img, vid).Extract(context.Background(), "anim.webp")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if dims.String() != "1000x500" || vid.calls != 1 {
		t.Fatalf("fallback not used: dims=%s calls=%d", dims, vid.calls)
	}

	vid.calls = 0
	_, err = NewExtractor(nil, img, vid).Extract(context.Background(), "anim.webp")
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("expected ErrUnreadable without fallback, got %v", err)
	}
	if vid.calls != 0 {
		t.Fatal("fallback should not run when disabled")
	}
	if !strings.Contains(err.Error(), "unknown format") {
		t.Fatalf("error should carry probe failure: %v", err)
	}
}

func TestExtractorFallbackNotRetried(t *testing.T) {
	vid := &fakeProbe{name: "ffprobe", exts: newExtensionSet([]string{".mp4"}), err: errors.New("boom")}
	_, err := NewExtractor(vid, vid).Extract(context.Background(), "clip.mp4")
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("expected ErrUnreadable, got %v", err)
	}
	if vid.calls != 1 {
		t.Fatalf("fallback already tried should not rerun, calls=%d", vid.calls)
	}
}

func TestExtractorRejectsZeroDimensions(t *testing.T) {
	img := &fakeProbe{name: "image", exts: newExtensionSet([]string{".png"}), dims: Dimensions{Width: 0, Height: 10}}
	_, err := NewExtractor(nil, img).Extract(context.Background(), "empty.png")
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("expected ErrUnreadable, got %v", err)
	}
}

func TestExtractorCancellation(t *testing.T) {
	img := &fakeProbe{name: "image", exts: newExtensionSet([]string{".png"})}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewExtractor(nil, img).Extract(ctx, "a.png")
	if !errors.Is(err, context.Canceled) || errors.Is(err, ErrUnreadable) {
		t.Fatalf("expected bare context.Canceled, got %v", err)
	}
}

func TestNewFromConfig(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithStubbedFFprobe(`{"streams":[{"codec_type":"video","width":300,"height":100}]}`))
	dir := t.TempDir()
	ex := NewFromConfig(cfg)

	png := testsupport.WritePNG(t, filepath.Join(dir, "a.png"), 20, 10)
	dims, err := ex.Extract(context.Background(), png)
	if err != nil || dims.String() != "20x10" || dims.Source != "image" {
		t.Fatalf("png: dims=%s err=%v", dims, err)
	}

	// Corrupt images fall through to the stubbed ffprobe.
	broken := testsupport.WriteCorrupt(t, filepath.Join(dir, "b.webp"))
	dims, err = ex.Extract(context.Background(), broken)
	if err != nil || dims.String() != "300x100" || dims.Source != "ffprobe" {
		t.Fatalf("fallback: dims=%s err=%v", dims, err)
	}

	strict := NewFromConfig(testsupport.NewConfig(t, testsupport.WithoutFFprobeFallback()))
	if _, err := strict.Extract(context.Background(), broken); !errors.Is(err, ErrUnreadable) {
		t.Fatalf("expected ErrUnreadable without fallback, got %v", err)
	}
}
