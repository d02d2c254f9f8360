package resample

// LowpassTaps is the length of the anti-aliasing kernel used by [Downsample2].
const LowpassTaps = 32

// lowpassKernel is a symmetric Kaiser-windowed low-pass FIR with its -6 dB
// point at a quarter of the input sample rate.
var lowpassKernel = [LowpassTaps]float64{
	-0.01452123, -0.0155227, 0.01667252, 0.01800633,
	-0.01957209, -0.0214361, 0.02369253, 0.02647989,
	-0.03001054, -0.03462755, 0.04092347, 0.05001757,
	-0.06430831, -0.09003163, 0.15005272, 0.45015816,
	0.45015816, 0.15005272, -0.09003163, -0.06430831,
	0.05001757, 0.04092347, -0.03462755, -0.03001054,
	0.02647989, 0.02369253, -0.0214361, -0.01957209,
	0.01800633, 0.01667252, -0.0155227, -0.01452123,
}

// LowpassKernel returns a copy of the anti-aliasing kernel coefficients.
func LowpassKernel() []float64 {
	out := make([]float64, LowpassTaps)
	copy(out, lowpassKernel[:])
	return out
}
