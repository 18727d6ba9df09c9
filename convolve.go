package convolve

import (
	"runtime"
	"sync"
)

// config holds the settings of one convolution call.
type config struct {
	workers int
}

// Option mutates the configuration of a Convolve call.
type Option func(*config)

// defaultConfig returns the settings used when no options are given.
func defaultConfig() config {
	return config{workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers sets the number of concurrent workers. Values below 1 are
// ignored and the default (runtime.GOMAXPROCS(0)) is kept. A worker count
// of 1 forces the sequential path. Counts above the image height are
// capped so every worker owns at least one row.
func WithWorkers(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.workers = n
		}
	}
}

// Convolve filters src through the 3x3 kernel k and writes the result
// into dst, which must have identical width, height, and channel count.
// It blocks until every pixel of every channel has been written.
//
// The image height is partitioned into contiguous row bands, one worker
// per band. Each worker receives an exclusive sub-slice of the
// destination buffer covering exactly its rows, so the disjointness of
// the writes is enforced by slicing rather than by locking, and the
// result is independent of worker scheduling. The sequential path
// (worker count 1) produces byte-identical output.
//
// src is only read and dst is only written; neither buffer is allocated,
// freed, or retained by the call.
func Convolve(src, dst *Image, k Kernel, opts ...Option) error {
	if err := validatePair(src, dst); err != nil {
		return err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	workers := cfg.workers
	if workers < 1 {
		workers = 1
	}
	if workers > src.height {
		workers = src.height
	}

	if workers == 1 {
		convolveSerial(src, dst, &k)
		return nil
	}

	bands := partitionRows(src.height, workers)
	Logger().Debug("dispatching row bands",
		"workers", len(bands),
		"width", src.width,
		"height", src.height,
		"channels", src.channels)

	stride := src.width * src.channels

	var wg sync.WaitGroup
	wg.Add(len(bands))
	for _, b := range bands {
		// Full slice expression: the worker cannot reach bytes past its
		// own band even by re-slicing.
		out := dst.data[b.start*stride : b.end*stride : b.end*stride]
		go func(b band, out []byte) {
			defer wg.Done()
			convolveBand(src, out, b, &k)
		}(b, out)
	}
	wg.Wait()

	return nil
}

// convolveSerial filters the whole image in a single sequential pass.
// It is the reference implementation the banded path must match byte for
// byte, and the execution path when only one worker is requested.
func convolveSerial(src, dst *Image, k *Kernel) {
	convolveBand(src, dst.data, band{start: 0, end: src.height}, k)
}

// convolveBand evaluates every pixel and channel of the rows in b,
// writing sequentially into out. out must start at row b.start of the
// destination and hold exactly b.rows() rows.
func convolveBand(src *Image, out []byte, b band, k *Kernel) {
	i := 0
	for y := b.start; y < b.end; y++ {
		for x := 0; x < src.width; x++ {
			for c := 0; c < src.channels; c++ {
				out[i] = pixelValue(src, x, y, c, k)
				i++
			}
		}
	}
}

// validatePair checks the Convolve preconditions. Violations are
// rejected before any pixel work starts.
func validatePair(src, dst *Image) error {
	if src == nil || dst == nil {
		return ErrNilImage
	}
	if err := src.validate(); err != nil {
		return err
	}
	if err := dst.validate(); err != nil {
		return err
	}
	if src.width != dst.width || src.height != dst.height || src.channels != dst.channels {
		return ErrSizeMismatch
	}
	return nil
}
