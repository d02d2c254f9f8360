package spectrum

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/floats"
)

var (
	// ErrEmptyKernel indicates a zero-length FIR kernel.
	ErrEmptyKernel = errors.New("spectrum: empty kernel")
	// ErrInvalidFFTSize indicates an FFT size that is not a power of two or
	// is shorter than the kernel.
	ErrInvalidFFTSize = errors.New("spectrum: invalid FFT size")
)

// Option configures response evaluation.
type Option func(*config)

type config struct {
	normalize bool
}

// WithNormalize scales a magnitude response so its peak is 1.
func WithNormalize(enabled bool) Option {
	return func(cfg *config) {
		cfg.normalize = enabled
	}
}

// Response returns the complex frequency response of an FIR kernel at the
// nfft/2+1 bins spanning DC to Nyquist. nfft must be a power of two no
// shorter than the kernel.
func Response(kernel []float64, nfft int) ([]complex128, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}
	if nfft < len(kernel) || nfft&(nfft-1) != 0 {
		return nil, fmt.Errorf("%w: %d for %d taps", ErrInvalidFFTSize, nfft, len(kernel))
	}

	plan, err := algofft.NewPlan64(nfft)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, nfft)
	for i, v := range kernel {
		padded[i] = complex(v, 0)
	}

	bins := make([]complex128, nfft)
	if err := plan.Forward(bins, padded); err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	return bins[:nfft/2+1], nil
}

// MagnitudeResponse returns |H(f)| of an FIR kernel at nfft/2+1 bins from DC
// to Nyquist. See [Response] for the constraints on nfft.
func MagnitudeResponse(kernel []float64, nfft int, opts ...Option) ([]float64, error) {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	bins, err := Response(kernel, nfft)
	if err != nil {
		return nil, err
	}

	mag := Magnitude(bins)
	if cfg.normalize {
		if peak := PeakMagnitude(mag); peak > 0 {
			floats.Scale(1/peak, mag)
		}
	}
	return mag, nil
}

// PeakMagnitude returns the largest value in mag, or 0 when mag is empty.
func PeakMagnitude(mag []float64) float64 {
	if len(mag) == 0 {
		return 0
	}
	return floats.Max(mag)
}

// BinFrequency returns the normalized frequency of bin in cycles per sample,
// so Nyquist is 0.5.
func BinFrequency(bin, nfft int) float64 {
	return float64(bin) / float64(nfft)
}

// FrequencyBin returns the bin nearest to normalized frequency f.
func FrequencyBin(f float64, nfft int) int {
	return int(f*float64(nfft) + 0.5)
}
