package probe

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImageProbe reads dimensions from image headers without decoding pixels.
type ImageProbe struct {
	extensions       extensionSet
	honorOrientation bool
}

// NewImageProbe builds an image probe for the given extensions. When
// honorOrientation is set, JPEG and TIFF files whose EXIF orientation
// describes a quarter turn report swapped dimensions.
func NewImageProbe(extensions []string, honorOrientation bool) *ImageProbe {
	return &ImageProbe{extensions: newExtensionSet(extensions), honorOrientation: honorOrientation}
}

func (p *ImageProbe) Name() string { return "image" }

func (p *ImageProbe) CanHandle(path string) bool {
	return p.extensions.matches(path)
}

func (p *ImageProbe) Dimensions(ctx context.Context, path string) (Dimensions, error) {
	if err := ctx.Err(); err != nil {
		return Dimensions{}, err
	}
	file, err := os.Open(path)
	if err != nil {
		return Dimensions{}, err
	}
	defer file.Close()

	cfg, format, err := image.DecodeConfig(file)
	if err != nil {
		return Dimensions{}, fmt.Errorf("decode image header: %w", err)
	}
	dims := Dimensions{Width: cfg.Width, Height: cfg.Height, Source: p.Name()}
	if !p.honorOrientation || (format != "jpeg" && format != "tiff") {
		return dims, nil
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return dims, nil
	}
	if quarterTurn(exifOrientation(file)) {
		dims = dims.swapped()
	}
	return dims, nil
}

// exifOrientation returns the EXIF orientation tag, or 1 when absent.
func exifOrientation(r io.Reader) int {
	x, err := exif.Decode(r)
	if err != nil {
		return 1
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	value, err := tag.Int(0)
	if err != nil {
		return 1
	}
	return value
}

// quarterTurn reports orientations 5-8, which transpose the stored image.
func quarterTurn(orientation int) bool {
	return orientation >= 5 && orientation <= 8
}
