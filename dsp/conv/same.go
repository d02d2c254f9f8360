package conv

import "fmt"

// Same computes the "same"-mode linear convolution of signal and kernel.
//
// The result has max(len(signal), len(kernel)) samples: the middle section of
// the full convolution, offset by (min(len(signal), len(kernel))-1)/2. Samples
// beyond either edge of signal are treated as zero. The output matches
// np.convolve(signal, kernel, "same") and is independent of argument order.
//
// Neither input is modified; the returned slice is newly allocated.
func Same(signal, kernel []float64) ([]float64, error) {
	if err := validateSame(signal, kernel); err != nil {
		return nil, err
	}

	out := make([]float64, sameLen(signal, kernel))
	sameTo(out, signal, kernel)
	return out, nil
}

// SameTo is like [Same] but writes into dst, which must have length
// max(len(signal), len(kernel)). dst must not alias signal or kernel.
func SameTo(dst, signal, kernel []float64) error {
	if err := validateSame(signal, kernel); err != nil {
		return err
	}

	if want := sameLen(signal, kernel); len(dst) != want {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, want, len(dst))
	}

	sameTo(dst, signal, kernel)
	return nil
}

func validateSame(signal, kernel []float64) error {
	if len(signal) == 0 {
		return ErrEmptyInput
	}
	if len(kernel) == 0 {
		return ErrEmptyKernel
	}
	return nil
}

func sameLen(signal, kernel []float64) int {
	return max(len(signal), len(kernel))
}

// sameTo evaluates out[n] = sum_k kernel[k] * signal[n-k+offset] directly,
// without materializing the full convolution.
func sameTo(dst, signal, kernel []float64) {
	offset := centeringOffset(min(len(signal), len(kernel)))
	last := len(signal) - 1

	for n := range dst {
		var sum float64
		for k, h := range kernel {
			idx := n - k + offset
			if idx < 0 {
				// idx only decreases with k.
				break
			}
			if idx > last {
				continue
			}
			sum += h * signal[idx]
		}
		dst[n] = sum
	}
}
