// Package texture loads the globe's surface image into an RGBA8 buffer.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io/fs"
	"os"

	_ "golang.org/x/image/bmp"  // BMP decoder registration
	_ "golang.org/x/image/tiff" // TIFF decoder registration
	_ "golang.org/x/image/webp" // WebP decoder registration
)

// TextureLoadError reports a missing or undecodable texture file.
// It is recoverable: the globe is drawn untextured.
type TextureLoadError struct {
	Path string
	Err  error
}

func (e *TextureLoadError) Error() string {
	return fmt.Sprintf("load texture %s: %v", e.Path, e.Err)
}

func (e *TextureLoadError) Unwrap() error {
	return e.Err
}

// Missing reports whether the file did not exist.
func (e *TextureLoadError) Missing() bool {
	return errors.Is(e.Err, fs.ErrNotExist)
}

// Load reads and decodes an image file into RGBA8, whatever its channel layout.
func Load(path string) (*image.RGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &TextureLoadError{Path: path, Err: err}
	}
	img, err := Decode(data)
	if err != nil {
		return nil, &TextureLoadError{Path: path, Err: err}
	}
	return img, nil
}

// Decode decodes in-memory image data into RGBA8.
func Decode(data []byte) (*image.RGBA, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("empty %s image", format)
	}
	return ToRGBA(img), nil
}

// ToRGBA converts any image to a tightly packed *image.RGBA with origin (0,0).
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) && rgba.Stride == 4*rgba.Rect.Dx() {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}
