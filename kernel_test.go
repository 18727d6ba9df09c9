package convolve

import (
	"math"
	"sort"
	"sync"
	"testing"
)

func TestKernelSum(t *testing.T) {
	tests := []struct {
		name   string
		kernel Kernel
		want   float64
	}{
		{"identity", Identity, 1},
		{"edge", EdgeDetect, 0},
		{"sharpen", Sharpen, 1},
		{"blur", BoxBlur, 1},
		{"gauss", GaussianBlur, 1},
		{"emboss", Emboss, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kernel.Sum(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Sum() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLookupBuiltins(t *testing.T) {
	tests := []struct {
		name string
		want Kernel
	}{
		{"edge", EdgeDetect},
		{"sharpen", Sharpen},
		{"blur", BoxBlur},
		{"gauss", GaussianBlur},
		{"emboss", Emboss},
		{"identity", Identity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lookup(tt.name); got != tt.want {
				t.Errorf("Lookup(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestLookupUnknownIsIdentity(t *testing.T) {
	for _, name := range []string{"", "sepia", "EDGE", "gaussian"} {
		if got := Lookup(name); got != Identity {
			t.Errorf("Lookup(%q) = %v, want Identity", name, got)
		}
	}
}

func TestRegistryRegisterLookup(t *testing.T) {
	r := NewRegistry()
	custom := Kernel{{0, 0, 0}, {0, 2, 0}, {0, 0, 0}}

	if got := r.Lookup("double"); got != Identity {
		t.Errorf("Lookup on empty registry = %v, want Identity", got)
	}

	r.Register("double", custom)
	if got := r.Lookup("double"); got != custom {
		t.Errorf("Lookup(\"double\") = %v, want registered kernel", got)
	}

	// Re-registering replaces.
	r.Register("double", Identity)
	if got := r.Lookup("double"); got != Identity {
		t.Errorf("Lookup after re-register = %v, want Identity", got)
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	r := NewRegistry()
	r.Register("zeta", Identity)
	r.Register("alpha", Identity)
	r.Register("mid", Identity)

	names := r.Names()
	if len(names) != 3 {
		t.Fatalf("len(Names()) = %d, want 3", len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("Names() = %v, want sorted", names)
	}
}

func TestRegistryConcurrent(t *testing.T) {
	r := NewRegistry()
	r.Register("edge", EdgeDetect)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			r.Register("edge", EdgeDetect)
		}()
		go func() {
			defer wg.Done()
			_ = r.Lookup("edge")
			_ = r.Names()
		}()
	}
	wg.Wait()

	if got := r.Lookup("edge"); got != EdgeDetect {
		t.Errorf("Lookup after concurrent use = %v, want EdgeDetect", got)
	}
}

func TestFilters(t *testing.T) {
	names := Filters()

	want := []string{"blur", "edge", "emboss", "gauss", "identity", "sharpen"}
	for _, w := range want {
		found := false
		for _, n := range names {
			if n == w {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Filters() = %v, missing %q", names, w)
		}
	}
}
