package testutil

import "github.com/mjibson/go-dsp/fft"

// ReferenceFull computes the full linear convolution of a and b with an
// independent FFT implementation. Both operands are zero-padded to
// len(a)+len(b)-1 so the circular result equals the linear one.
// a and b must be non-empty.
func ReferenceFull(a, b []float64) []float64 {
	n := len(a) + len(b) - 1
	x := make([]complex128, n)
	y := make([]complex128, n)
	for i, v := range a {
		x[i] = complex(v, 0)
	}
	for i, v := range b {
		y[i] = complex(v, 0)
	}

	c := fft.Convolve(x, y)

	out := make([]float64, n)
	for i := range out {
		out[i] = real(c[i])
	}
	return out
}

// ReferenceSame returns np.convolve(a, b, "same"): max(len(a), len(b))
// samples of ReferenceFull starting at (min(len(a), len(b))-1)/2.
func ReferenceSame(a, b []float64) []float64 {
	full := ReferenceFull(a, b)
	start := (min(len(a), len(b)) - 1) / 2
	return full[start : start+max(len(a), len(b))]
}
