// Package imageio converts between image files and convolve.Image rasters.
//
// Supported formats: PNG, JPEG, BMP, and TIFF for reading and writing,
// plus WebP for reading. Decoded images are mapped onto the smallest
// channel layout that preserves them: grayscale sources become 1-channel
// rasters, opaque color sources 3-channel, everything else 4-channel.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoding

	"github.com/rasterkit/convolve"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("imageio: empty data")
)

// jpegQuality is the quality used when encoding JPEG output.
const jpegQuality = 90

// Load reads the image at path, auto-detecting the format from content.
func Load(path string) (*convolve.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// LoadFromBytes decodes an image from a byte slice.
func LoadFromBytes(data []byte) (*convolve.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from r, auto-detecting the format.
func Decode(r io.Reader) (*convolve.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	return FromStdImage(img), nil
}

// Save writes img to path in the format implied by the file extension:
// .png, .jpg/.jpeg, .bmp, or .tif/.tiff.
func Save(path string, img *convolve.Image) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}

	if err := Encode(f, img, strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Encode writes img to w in the named format ("png", "jpeg", "jpg",
// "bmp", "tiff", or "tif").
func Encode(w io.Writer, img *convolve.Image, format string) error {
	std := ToStdImage(img)

	switch format {
	case "png":
		if err := png.Encode(w, std); err != nil {
			return fmt.Errorf("imageio: encode PNG: %w", err)
		}
	case "jpg", "jpeg":
		if err := jpeg.Encode(w, std, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return fmt.Errorf("imageio: encode JPEG: %w", err)
		}
	case "bmp":
		if err := bmp.Encode(w, std); err != nil {
			return fmt.Errorf("imageio: encode BMP: %w", err)
		}
	case "tif", "tiff":
		if err := tiff.Encode(w, std, nil); err != nil {
			return fmt.Errorf("imageio: encode TIFF: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return nil
}

// FromStdImage converts a standard library image into a convolve.Image.
//
// Grayscale images map to 1 channel and YCbCr (the common JPEG layout)
// to 3 channels; everything else goes through a 4-channel NRGBA raster.
func FromStdImage(img image.Image) *convolve.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	// Fast path for grayscale images.
	if gray, ok := img.(*image.Gray); ok {
		out, _ := convolve.New(width, height, 1)
		for y := 0; y < height; y++ {
			srcStart := y * gray.Stride
			copy(out.Data()[y*width:(y+1)*width], gray.Pix[srcStart:srcStart+width])
		}
		return out
	}

	// YCbCr has no direct byte layout to copy; convert per pixel to RGB.
	if _, ok := img.(*image.YCbCr); ok {
		out, _ := convolve.New(width, height, 3)
		data := out.Data()
		i := 0
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
				data[i+0] = uint8(r >> 8)
				data[i+1] = uint8(g >> 8)
				data[i+2] = uint8(b >> 8)
				i += 3
			}
		}
		return out
	}

	// Fast path for NRGBA images.
	if nrgba, ok := img.(*image.NRGBA); ok {
		out, _ := convolve.New(width, height, 4)
		rowBytes := width * 4
		for y := 0; y < height; y++ {
			srcStart := y * nrgba.Stride
			copy(out.Data()[y*rowBytes:(y+1)*rowBytes], nrgba.Pix[srcStart:srcStart+rowBytes])
		}
		return out
	}

	// Generic slow path for any image type.
	tmp := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(tmp, tmp.Bounds(), img, bounds.Min, draw.Src)

	out, _ := convolve.New(width, height, 4)
	copy(out.Data(), tmp.Pix)
	return out
}

// ToStdImage converts a convolve.Image into a standard library image:
// 1-channel rasters become *image.Gray, everything else *image.NRGBA
// (2-channel as gray plus alpha, 3-channel as opaque RGB).
func ToStdImage(img *convolve.Image) image.Image {
	width := img.Width()
	height := img.Height()
	data := img.Data()

	switch img.Channels() {
	case 1:
		out := image.NewGray(image.Rect(0, 0, width, height))
		for y := 0; y < height; y++ {
			copy(out.Pix[y*out.Stride:y*out.Stride+width], data[y*width:(y+1)*width])
		}
		return out

	case 2:
		out := image.NewNRGBA(image.Rect(0, 0, width, height))
		for i, j := 0, 0; i < width*height*2; i, j = i+2, j+4 {
			v, a := data[i], data[i+1]
			out.Pix[j+0] = v
			out.Pix[j+1] = v
			out.Pix[j+2] = v
			out.Pix[j+3] = a
		}
		return out

	case 3:
		out := image.NewNRGBA(image.Rect(0, 0, width, height))
		for i, j := 0, 0; i < width*height*3; i, j = i+3, j+4 {
			out.Pix[j+0] = data[i+0]
			out.Pix[j+1] = data[i+1]
			out.Pix[j+2] = data[i+2]
			out.Pix[j+3] = 255
		}
		return out

	default:
		out := image.NewNRGBA(image.Rect(0, 0, width, height))
		copy(out.Pix, data[:width*height*4])
		return out
	}
}
