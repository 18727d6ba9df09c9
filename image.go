package convolve

import "errors"

// Image validation errors.
var (
	// ErrNilImage is returned when a nil image is passed to Convolve.
	ErrNilImage = errors.New("convolve: nil image")

	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("convolve: invalid dimensions")

	// ErrInvalidChannels is returned when the channel count is outside [1, 4].
	ErrInvalidChannels = errors.New("convolve: channels per pixel must be between 1 and 4")

	// ErrDataTooSmall is returned when the pixel buffer is smaller than
	// width*height*channels bytes.
	ErrDataTooSmall = errors.New("convolve: data buffer too small")

	// ErrSizeMismatch is returned when source and destination differ in
	// width, height, or channel count.
	ErrSizeMismatch = errors.New("convolve: source and destination sizes differ")
)

// Image is a row-major raster of 8-bit samples with interleaved channels.
// A pixel at (x, y) occupies channels consecutive bytes starting at
// (y*width + x) * channels.
//
// The library never allocates or frees pixel buffers on behalf of a
// convolution call: the caller creates both the source and destination
// (with New, or by wrapping an existing buffer with FromRaw) and keeps
// ownership of them.
//
// Thread safety: an Image is safe for concurrent reads. Writes require
// external synchronization, except for the disjoint per-band writes that
// Convolve itself performs into the destination.
type Image struct {
	width    int
	height   int
	channels int
	data     []byte
}

// New creates an image with a freshly allocated, zeroed pixel buffer.
// channels is the number of interleaved 8-bit samples per pixel (1 to 4,
// e.g. 1 for grayscale, 3 for RGB, 4 for RGBA).
func New(width, height, channels int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if channels < 1 || channels > 4 {
		return nil, ErrInvalidChannels
	}

	return &Image{
		width:    width,
		height:   height,
		channels: channels,
		data:     make([]byte, width*height*channels),
	}, nil
}

// FromRaw wraps an existing pixel buffer without copying. The caller must
// ensure data remains valid for the lifetime of the Image and holds at
// least width*height*channels bytes.
func FromRaw(data []byte, width, height, channels int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if channels < 1 || channels > 4 {
		return nil, ErrInvalidChannels
	}
	if len(data) < width*height*channels {
		return nil, ErrDataTooSmall
	}

	return &Image{
		width:    width,
		height:   height,
		channels: channels,
		data:     data,
	}, nil
}

// Width returns the image width in pixels.
func (img *Image) Width() int {
	return img.width
}

// Height returns the image height in pixels.
func (img *Image) Height() int {
	return img.height
}

// Channels returns the number of interleaved samples per pixel.
func (img *Image) Channels() int {
	return img.channels
}

// Data returns the raw pixel buffer.
func (img *Image) Data() []byte {
	return img.data
}

// Index returns the byte offset of channel c of the pixel at (x, y).
// No bounds checking is performed.
func (img *Image) Index(x, y, c int) int {
	return (y*img.width+x)*img.channels + c
}

// At returns the value of channel c of the pixel at (x, y).
func (img *Image) At(x, y, c int) uint8 {
	return img.data[img.Index(x, y, c)]
}

// Set stores v into channel c of the pixel at (x, y).
func (img *Image) Set(x, y, c int, v uint8) {
	img.data[img.Index(x, y, c)] = v
}

// validate reports whether the image geometry and buffer are usable.
// Re-checked on every Convolve call since FromRaw images share caller
// buffers that may have been re-sliced since construction.
func (img *Image) validate() error {
	if img.width <= 0 || img.height <= 0 {
		return ErrInvalidDimensions
	}
	if img.channels < 1 || img.channels > 4 {
		return ErrInvalidChannels
	}
	if len(img.data) < img.width*img.height*img.channels {
		return ErrDataTooSmall
	}
	return nil
}
