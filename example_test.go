package convolve_test

import (
	"fmt"
	"log"

	"github.com/rasterkit/convolve"
)

func ExampleConvolve() {
	// A 3x3 grayscale image with a bright center pixel.
	src, _ := convolve.New(3, 3, 1)
	src.Set(1, 1, 0, 90)

	dst, _ := convolve.New(3, 3, 1)
	if err := convolve.Convolve(src, dst, convolve.BoxBlur); err != nil {
		log.Fatal(err)
	}

	// Every pixel's 3x3 neighborhood (with edge replication) contains the
	// center exactly once, so the whole image becomes 90/9 = 10.
	fmt.Println(dst.At(0, 0, 0), dst.At(1, 1, 0), dst.At(2, 2, 0))
	// Output: 10 10 10
}

func ExampleConvolve_workers() {
	src, _ := convolve.New(8, 8, 4)
	dst, _ := convolve.New(8, 8, 4)

	// Force a deterministic worker degree, e.g. for constrained environments.
	err := convolve.Convolve(src, dst, convolve.Sharpen, convolve.WithWorkers(2))
	fmt.Println(err)
	// Output: <nil>
}

func ExampleLookup() {
	k := convolve.Lookup("no-such-filter")
	fmt.Println(k == convolve.Identity)
	// Output: true
}
