package convolve

import (
	"sort"
	"sync"
)

// Kernel is a 3x3 grid of convolution weights in row-major order:
// Kernel[ky][kx] weights the neighbor at (x+kx-1, y+ky-1).
//
// Kernels are plain values; copying one is cheap and callers may build
// their own. All workers of a convolution call share one kernel read-only.
type Kernel [3][3]float64

// The built-in filter kernels.
var (
	// Identity leaves the image unchanged.
	Identity = Kernel{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}}

	// EdgeDetect is a Laplacian edge detector.
	EdgeDetect = Kernel{{0, -1, 0}, {-1, 4, -1}, {0, -1, 0}}

	// Sharpen amplifies the center pixel against its neighbors.
	Sharpen = Kernel{{0, -1, 0}, {-1, 5, -1}, {0, -1, 0}}

	// BoxBlur averages the 3x3 neighborhood with uniform weights.
	BoxBlur = Kernel{
		{1.0 / 9, 1.0 / 9, 1.0 / 9},
		{1.0 / 9, 1.0 / 9, 1.0 / 9},
		{1.0 / 9, 1.0 / 9, 1.0 / 9},
	}

	// GaussianBlur approximates a gaussian with binomial weights.
	GaussianBlur = Kernel{
		{1.0 / 16, 1.0 / 8, 1.0 / 16},
		{1.0 / 8, 1.0 / 4, 1.0 / 8},
		{1.0 / 16, 1.0 / 8, 1.0 / 16},
	}

	// Emboss produces a directional relief effect.
	Emboss = Kernel{{-2, -1, 0}, {-1, 1, 1}, {0, 1, 2}}
)

// Sum returns the sum of all nine weights. Kernels whose weights sum to 1
// preserve flat regions of the image.
func (k Kernel) Sum() float64 {
	var s float64
	for _, row := range k {
		for _, w := range row {
			s += w
		}
	}
	return s
}

// Registry maps filter names to kernels. Unknown names resolve to the
// identity kernel, so looking up a filter never fails.
//
// Thread safety: Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	kernels map[string]Kernel
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{kernels: make(map[string]Kernel)}
}

// Register adds or replaces the kernel for name.
func (r *Registry) Register(name string, k Kernel) {
	r.mu.Lock()
	r.kernels[name] = k
	r.mu.Unlock()
}

// Lookup returns the kernel registered under name, or Identity if the
// name is unknown.
func (r *Registry) Lookup(name string) Kernel {
	r.mu.RLock()
	k, ok := r.kernels[name]
	r.mu.RUnlock()
	if !ok {
		return Identity
	}
	return k
}

// Names returns the registered filter names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.kernels))
	for name := range r.kernels {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// defaultRegistry holds the built-in filters.
var defaultRegistry = func() *Registry {
	r := NewRegistry()
	r.Register("edge", EdgeDetect)
	r.Register("sharpen", Sharpen)
	r.Register("blur", BoxBlur)
	r.Register("gauss", GaussianBlur)
	r.Register("emboss", Emboss)
	r.Register("identity", Identity)
	return r
}()

// Lookup returns the built-in kernel registered under name, or Identity
// if the name is unknown.
func Lookup(name string) Kernel {
	return defaultRegistry.Lookup(name)
}

// Register adds or replaces a kernel in the built-in registry.
func Register(name string, k Kernel) {
	defaultRegistry.Register(name, k)
}

// Filters returns the names of the built-in filters in sorted order.
func Filters() []string {
	return defaultRegistry.Names()
}
