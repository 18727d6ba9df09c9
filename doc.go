// Package convolve applies fixed 3x3 spatial convolution filters to raster
// images.
//
// # Overview
//
// convolve is a pure Go library for single-pass 3x3 image convolution. It
// ships the classic fixed filters (edge detection, sharpen, box blur,
// gaussian blur, emboss, identity) and an engine that evaluates them over
// interleaved byte rasters with 1 to 4 channels per pixel. Work is split
// into contiguous row bands processed concurrently, one worker per band,
// each writing into an exclusive sub-slice of the destination buffer.
//
// # Quick Start
//
//	import "github.com/rasterkit/convolve"
//
//	src, _ := convolve.FromRaw(pixels, width, height, 4)
//	dst, _ := convolve.New(width, height, 4)
//
//	if err := convolve.Convolve(src, dst, convolve.Sharpen); err != nil {
//	    log.Fatal(err)
//	}
//
// # Boundary Policy
//
// Neighbor coordinates outside the image are clamped to the nearest valid
// coordinate on each axis (edge replication). There is no zero padding and
// no wraparound. Weighted sums accumulate in float64, are clamped to
// [0, 255], and round to the nearest integer with halves away from zero.
//
// # Concurrency
//
// Convolve blocks until the full destination is written. The worker degree
// defaults to runtime.GOMAXPROCS(0) and can be overridden with WithWorkers,
// which is useful for deterministic testing and constrained environments.
// The source buffer is read-only for the duration of the call; each worker
// owns a disjoint row range of the destination, so no locking is needed.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Image, Kernel, Registry, Convolve
//   - internal/imageio: PNG/JPEG/BMP/TIFF/WebP codec boundary
//   - cmd/convodemo: demo CLI applying a named filter to an image file
package convolve

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
