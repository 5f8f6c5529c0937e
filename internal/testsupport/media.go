package testsupport

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func canvas(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	img.Set(0, 0, color.RGBA{R: 0xff, A: 0xff})
	return img
}

// WritePNG writes a width x height PNG to path and returns the path.
func WritePNG(t testing.TB, path string, width, height int) string {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas(width, height)); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return writeBytes(t, path, buf.Bytes())
}

// WriteJPEG writes a width x height JPEG to path and returns the path.
func WriteJPEG(t testing.TB, path string, width, height int) string {
	t.Helper()
	return writeBytes(t, path, encodeJPEG(t, width, height))
}

// WriteGIF writes a width x height GIF to path and returns the path.
func WriteGIF(t testing.TB, path string, width, height int) string {
	t.Helper()
	var buf bytes.Buffer
	if err := gif.Encode(&buf, canvas(width, height), nil); err != nil {
		t.Fatalf("encode gif: %v", err)
	}
	return writeBytes(t, path, buf.Bytes())
}

// WriteJPEGWithOrientation writes a JPEG carrying an EXIF APP1 segment whose
// IFD0 holds only the given orientation tag.
func WriteJPEGWithOrientation(t testing.TB, path string, width, height, orientation int) string {
	t.Helper()
	encoded := encodeJPEG(t, width, height)

	tiffData := []byte{
		'M', 'M', 0x00, 0x2a, // big-endian TIFF header
		0x00, 0x00, 0x00, 0x08, // IFD0 offset
		0x00, 0x01, // one entry
		0x01, 0x12, // Orientation
		0x00, 0x03, // SHORT
		0x00, 0x00, 0x00, 0x01, // count
		0x00, byte(orientation), 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, // no next IFD
	}
	payload := append([]byte("Exif\x00\x00"), tiffData...)
	segLen := len(payload) + 2

	out := []byte{0xff, 0xd8, 0xff, 0xe1, byte(segLen >> 8), byte(segLen)}
	out = append(out, payload...)
	out = append(out, encoded[2:]...)
	return writeBytes(t, path, out)
}

// WriteCorrupt writes bytes that no decoder accepts.
func WriteCorrupt(t testing.TB, path string) string {
	t.Helper()
	return writeBytes(t, path, []byte("definitely not media"))
}

// WriteFile writes size bytes of filler (at least one) for files the sorter
// should not measure, or that already occupy a destination.
func WriteFile(t testing.TB, path string, size int64) string {
	t.Helper()
	return writeBytes(t, path, bytes.Repeat([]byte{'.'}, int(max(size, 1))))
}

func encodeJPEG(t testing.TB, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, canvas(width, height), nil); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	return buf.Bytes()
}

func writeBytes(t testing.TB, path string, data []byte) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
