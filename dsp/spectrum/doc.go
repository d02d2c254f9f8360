// Package spectrum characterizes FIR kernels in the frequency domain.
//
// [Response] and [MagnitudeResponse] evaluate a kernel's transfer function on
// a uniform grid from DC to Nyquist. [Magnitude], [Phase], [UnwrapPhase] and
// [GroupDelayFromPhase] turn complex bins into the quantities used to check
// passband flatness, stopband attenuation and linear phase.
//
// Frequencies are normalized to cycles per sample; see [BinFrequency].
package spectrum
