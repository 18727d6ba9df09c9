package convolve

import "math"

// pixelValue computes the filtered value of channel c of the pixel at
// (x, y). The 3x3 neighborhood is read with edge replication: each
// neighbor coordinate is clamped per axis to the nearest in-bounds
// coordinate, so border pixels reuse their own row or column. The
// weighted sum accumulates in float64, is clamped to [0, 255], and
// rounds to the nearest integer with halves away from zero.
//
// Pure function over src and k; safe for unsynchronized concurrent calls
// as long as src is not mutated.
func pixelValue(src *Image, x, y, c int, k *Kernel) uint8 {
	xm, xp := x-1, x+1
	ym, yp := y-1, y+1
	if xm < 0 {
		xm = 0
	}
	if ym < 0 {
		ym = 0
	}
	if xp >= src.width {
		xp = src.width - 1
	}
	if yp >= src.height {
		yp = src.height - 1
	}

	stride := src.width * src.channels
	rm := ym * stride
	r0 := y * stride
	rp := yp * stride
	cm := xm*src.channels + c
	c0 := x*src.channels + c
	cp := xp*src.channels + c

	d := src.data
	sum := k[0][0]*float64(d[rm+cm]) + k[0][1]*float64(d[rm+c0]) + k[0][2]*float64(d[rm+cp]) +
		k[1][0]*float64(d[r0+cm]) + k[1][1]*float64(d[r0+c0]) + k[1][2]*float64(d[r0+cp]) +
		k[2][0]*float64(d[rp+cm]) + k[2][1]*float64(d[rp+c0]) + k[2][2]*float64(d[rp+cp])

	if sum <= 0 {
		return 0
	}
	if sum >= 255 {
		return 255
	}
	return uint8(math.Round(sum))
}
