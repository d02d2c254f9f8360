package resample

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-downsample/dsp/spectrum"
	"github.com/cwbudde/algo-downsample/internal/testutil"
)

const responseFFTSize = 1024

func TestLowpassKernelShape(t *testing.T) {
	k := LowpassKernel()
	if len(k) != LowpassTaps {
		t.Fatalf("len = %d, want %d", len(k), LowpassTaps)
	}
	for i := range k {
		if k[i] != k[len(k)-1-i] {
			t.Fatalf("kernel not symmetric at %d: %v vs %v", i, k[i], k[len(k)-1-i])
		}
	}
	if k[15] != 0.45015816 || k[0] != -0.01452123 {
		t.Fatalf("unexpected coefficients: k[0]=%v k[15]=%v", k[0], k[15])
	}
}

func TestLowpassKernelReturnsCopy(t *testing.T) {
	k := LowpassKernel()
	k[0] = 42

	if LowpassKernel()[0] == 42 {
		t.Fatal("LowpassKernel exposes the shared table")
	}
}

func TestLowpassKernelResponse(t *testing.T) {
	mag, err := spectrum.MagnitudeResponse(LowpassKernel(), responseFFTSize)
	if err != nil {
		t.Fatalf("MagnitudeResponse() error = %v", err)
	}
	testutil.RequireFinite(t, mag)

	passEnd := spectrum.FrequencyBin(0.2, responseFFTSize)
	stopStart := spectrum.FrequencyBin(0.3, responseFFTSize)

	for k := 0; k <= passEnd; k++ {
		if db := 20 * math.Log10(mag[k]); math.Abs(db) > 0.6 {
			t.Fatalf("passband bin %d (f=%.3f): %.2f dB", k, spectrum.BinFrequency(k, responseFFTSize), db)
		}
	}

	quarter := 20 * math.Log10(mag[spectrum.FrequencyBin(0.25, responseFFTSize)])
	if quarter > -5 || quarter < -7 {
		t.Fatalf("response at new Nyquist = %.2f dB, want about -6 dB", quarter)
	}

	for k := stopStart; k < len(mag); k++ {
		if db := dbRatio(mag[k], 1); db > -25 {
			t.Fatalf("stopband bin %d (f=%.3f): %.2f dB", k, spectrum.BinFrequency(k, responseFFTSize), db)
		}
	}
}

func TestLowpassKernelLinearPhase(t *testing.T) {
	bins, err := spectrum.Response(LowpassKernel(), responseFFTSize)
	if err != nil {
		t.Fatalf("Response() error = %v", err)
	}

	passEnd := spectrum.FrequencyBin(0.2, responseFFTSize)
	phase := spectrum.UnwrapPhase(spectrum.Phase(bins[:passEnd+1]))

	gd, err := spectrum.GroupDelayFromPhase(phase, responseFFTSize)
	if err != nil {
		t.Fatalf("GroupDelayFromPhase() error = %v", err)
	}

	want := float64(LowpassTaps-1) / 2
	for k, v := range gd {
		if math.Abs(v-want) > 1e-6 {
			t.Fatalf("group delay at bin %d = %v, want %v", k, v, want)
		}
	}
}
