package convolve

// band is a half-open range of image rows [start, end) processed by one
// worker. Bands produced by partitionRows are pairwise disjoint and cover
// [0, height) exactly, which is what makes lock-free writes into the
// shared destination safe.
type band struct {
	start int
	end   int
}

// rows returns the number of rows in the band.
func (b band) rows() int {
	return b.end - b.start
}

// partitionRows splits height rows into n contiguous bands in row order.
// With q = height/n and r = height%n, the first r bands span q+1 rows and
// the rest span q, so band sizes differ by at most one row. n is clamped
// to [1, height] so no band is ever empty.
func partitionRows(height, n int) []band {
	if n < 1 {
		n = 1
	}
	if n > height {
		n = height
	}

	q, r := height/n, height%n
	bands := make([]band, n)
	row := 0
	for i := range bands {
		size := q
		if i < r {
			size++
		}
		bands[i] = band{start: row, end: row + size}
		row += size
	}
	return bands
}
