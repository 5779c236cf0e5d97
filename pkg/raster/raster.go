// Package raster converts rendered colors to 8-bit RGB and writes them as image files.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/pt/pt"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// BytesPerPixel is the size of one packed RGB pixel.
const BytesPerPixel = 3

var (
	// ErrSizeMismatch is returned when a pixel buffer does not match the image size.
	ErrSizeMismatch = errors.New("pixel data size mismatch")

	// ErrUnsupportedFormat is returned for file extensions without an encoder.
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// ChannelByte scales a [0,1] channel to 0..255, truncating toward zero.
// Out-of-range values saturate and NaN becomes 0.
func ChannelByte(c float64) uint8 {
	v := c * 255
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}

// Encode packs colors into a flat row-major RGB byte slice.
func Encode(colors []pt.Color) []byte {
	pixels := make([]byte, 0, len(colors)*BytesPerPixel)
	for _, c := range colors {
		pixels = append(pixels, ChannelByte(c.R), ChannelByte(c.G), ChannelByte(c.B))
	}
	return pixels
}

// ToImage wraps packed RGB pixels in an opaque RGBA image.
func ToImage(width, height int, pixels []byte) (*image.RGBA, error) {
	if width < 0 || height < 0 || len(pixels) != width*height*BytesPerPixel {
		return nil, fmt.Errorf("%w: %dx%d needs %d bytes, got %d",
			ErrSizeMismatch, width, height, width*height*BytesPerPixel, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, j := 0, 0; i < len(pixels); i, j = i+BytesPerPixel, j+4 {
		img.Pix[j] = pixels[i]
		img.Pix[j+1] = pixels[i+1]
		img.Pix[j+2] = pixels[i+2]
		img.Pix[j+3] = 0xff
	}
	return img, nil
}

// Write saves packed RGB pixels to path. The format follows the extension:
// .png, .bmp, .tif or .tiff.
func Write(path string, width, height int, pixels []byte) error {
	encode, err := encoderFor(path)
	if err != nil {
		return err
	}

	img, err := ToImage(width, height, pixels)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	if err := encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("encoding %s: %w", filepath.Ext(path), err)
	}
	return file.Close()
}

// CheckFormat reports whether Write can encode to path's extension.
func CheckFormat(path string) error {
	_, err := encoderFor(path)
	return err
}

type encodeFunc func(w io.Writer, img image.Image) error

func encoderFor(path string) (encodeFunc, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return png.Encode, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
