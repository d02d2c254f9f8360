// Package conv provides linear convolution routines for one-dimensional
// float64 sequences.
//
// The centerpiece is [Same], a "same"-mode convolution whose output length is
// the longer of the two input lengths. It reproduces numpy's
// np.convolve(a, v, "same") exactly, including the way the centered window is
// chosen when the lengths are even or odd:
//
//	out, err := conv.Same(signal, kernel)
//
// Full-length convolution is available through several strategies:
//
//   - Direct convolution: Simple O(N*M) time-domain convolution, best for short kernels (<= 64 samples)
//   - Overlap-add (OLA): FFT-based block convolution, efficient for long signals with long kernels
//
// [Convolve] picks between the two based on the shorter operand, and
// [ConvolveMode] trims the full result to [ModeFull], [ModeSame] or
// [ModeValid].
//
// # Centering
//
// The full convolution of a (length N) and b (length M) has N+M-1 samples.
// "Same" mode keeps max(N, M) of them, starting at index (min(N, M)-1)/2.
// Only the shorter length determines the offset, so Same(a, b) and Same(b, a)
// select the same window of the same full result.
//
// # Empty inputs
//
// Every function rejects an empty signal with [ErrEmptyInput] and an empty
// kernel with [ErrEmptyKernel] before doing any work.
package conv
