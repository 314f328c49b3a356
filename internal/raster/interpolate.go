package raster

// Interpolate returns one value per integer step in [i0, i1), ramping
// linearly from d0 toward d1. When i0 == i1 it returns []float64{d0};
// when i0 > i1 the result is empty.
//
// Values are accumulated by repeated addition of the step, so the last
// samples of a long ramp can drift slightly from the closed form.
func Interpolate(i0 int, d0 float64, i1 int, d1 float64) []float64 {
	if i0 == i1 {
		return []float64{d0}
	}
	if i1 < i0 {
		return nil
	}
	n := i1 - i0
	return ramp(d0, (d1-d0)/float64(n), n)
}

// interpolateRange returns the samples of Interpolate(i0, d0, i1, d1) at
// offsets [lo, hi) from i0, clipped to the samples that exist. Only the
// window is allocated. A window starting at offset 0 matches Interpolate
// exactly; a later start is seeded from the closed form.
func interpolateRange(i0 int, d0 float64, i1 int, d1 float64, lo, hi int) []float64 {
	n := i1 - i0
	if n < 0 {
		return nil
	}
	if n == 0 {
		if lo <= 0 && hi > 0 {
			return []float64{d0}
		}
		return nil
	}
	lo, hi = max(lo, 0), min(hi, n)
	if lo >= hi {
		return nil
	}
	a := (d1 - d0) / float64(n)
	start := d0
	if lo > 0 {
		start = d0 + a*float64(lo)
	}
	return ramp(start, a, hi-lo)
}

func ramp(d, a float64, n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = d
		d += a
	}
	return values
}
