// Command convodemo applies a named 3x3 convolution filter to an image file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/rasterkit/convolve"
	"github.com/rasterkit/convolve/internal/imageio"
)

func main() {
	var (
		input   = flag.String("input", "", "input image (png, jpeg, bmp, tiff, webp)")
		output  = flag.String("output", "output.png", "output image (png, jpeg, bmp, tiff)")
		filter  = flag.String("filter", "identity", "filter name: "+strings.Join(convolve.Filters(), ", "))
		workers = flag.Int("workers", 0, "worker count (0 = all CPUs)")
	)
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "convodemo: -input is required")
		flag.Usage()
		os.Exit(2)
	}

	src, err := imageio.Load(*input)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *input, err)
	}

	dst, err := convolve.New(src.Width(), src.Height(), src.Channels())
	if err != nil {
		log.Fatalf("Failed to allocate destination: %v", err)
	}

	start := time.Now()
	err = convolve.Convolve(src, dst, convolve.Lookup(*filter), convolve.WithWorkers(*workers))
	if err != nil {
		log.Fatalf("Convolution failed: %v", err)
	}
	elapsed := time.Since(start)

	if err := imageio.Save(*output, dst); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Applied %s to %s in %v, saved to %s (%dx%d, %d channels)\n",
		*filter, *input, elapsed, *output, dst.Width(), dst.Height(), dst.Channels())
}
