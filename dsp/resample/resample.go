package resample

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-downsample/dsp/conv"
)

// ErrEmptyInput indicates a zero-length input signal.
var ErrEmptyInput = errors.New("resample: empty input")

// Decimate2 returns signal[0], signal[2], signal[4], ... in a new slice of
// length ceil(len(signal)/2). No filtering is applied.
func Decimate2(signal []float64) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]float64, (len(signal)+1)/2)
	for i := range out {
		out[i] = signal[2*i]
	}

	return out, nil
}

// Downsample2 low-pass filters signal with [LowpassKernel] and then keeps
// every other sample.
//
// The filtered signal has max(len(signal), LowpassTaps) samples, so the
// result has ceil(max(len(signal), LowpassTaps)/2) samples.
func Downsample2(signal []float64) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}

	filtered, err := conv.Same(signal, lowpassKernel[:])
	if err != nil {
		return nil, fmt.Errorf("resample: low-pass filter: %w", err)
	}

	return Decimate2(filtered)
}

// PredictOutputLen returns len(Downsample2(x)) for len(x) == inputLen.
// It returns 0 for inputLen <= 0, which Downsample2 rejects.
func PredictOutputLen(inputLen int) int {
	if inputLen <= 0 {
		return 0
	}
	return (max(inputLen, LowpassTaps) + 1) / 2
}
