// Package resample halves the sample rate of a signal with a fixed
// anti-aliasing FIR filter.
//
// The pipeline is strictly one-way:
//
//	signal -> conv.Same(signal, LowpassKernel()) -> Decimate2 -> output
//
// [Downsample2] runs both steps. [Decimate2] alone drops every other sample
// without filtering, which aliases any content above the new Nyquist
// frequency.
//
// The low-pass kernel is a 32-tap, Kaiser-windowed design fixed at compile
// time. Its magnitude response, in cycles per input sample:
//
//	band            frequency     magnitude
//	passband        0 .. 0.2      within 0.6 dB of unity
//	transition      0.25          about -6 dB (new Nyquist)
//	stopband        0.3 .. 0.5    at least 25 dB down
//
// All functions are pure and safe for concurrent use.
package resample
