package conv_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-downsample/dsp/conv"
)

func ExampleSame() {
	signal := []float64{2, 1, -1, 3, 3, 6, 7, -3, 1, 12, 9}
	kernel := []float64{4, 3, 2, 1}

	result, _ := conv.Same(signal, kernel)

	fmt.Printf("Input length: %d\n", len(signal))
	fmt.Printf("Output length: %d\n", len(result))
	fmt.Println(result)

	// Output:
	// Input length: 11
	// Output length: 11
	// [10 3 13 20 38 55 24 15 52 71 52]
}

func ExampleSame_commutative() {
	a := []float64{2, 1, -1, 3, 10}
	b := []float64{4, 3, 2}

	ab, _ := conv.Same(a, b)
	ba, _ := conv.Same(b, a)

	fmt.Println(ab)
	fmt.Println(ba)

	// Output:
	// [10 3 11 47 36]
	// [10 3 11 47 36]
}

func ExampleDirect() {
	// Simple moving average filter
	signal := []float64{1, 2, 3, 4, 5, 4, 3, 2, 1}
	kernel := []float64{0.25, 0.5, 0.25}

	result, _ := conv.Direct(signal, kernel)

	fmt.Printf("Input length: %d\n", len(signal))
	fmt.Printf("Kernel length: %d\n", len(kernel))
	fmt.Printf("Output length: %d\n", len(result))
	fmt.Printf("First few values: %.2f, %.2f, %.2f\n", result[0], result[1], result[2])

	// Output:
	// Input length: 9
	// Kernel length: 3
	// Output length: 11
	// First few values: 0.25, 1.00, 2.00
}

func ExampleConvolveMode() {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{1, 2, 3}

	for _, mode := range []conv.Mode{conv.ModeFull, conv.ModeSame, conv.ModeValid} {
		out, _ := conv.ConvolveMode(a, b, mode)
		fmt.Printf("%-5s %v\n", mode, out)
	}

	// Output:
	// full  [1 4 10 16 22 22 15]
	// same  [4 10 16 22 22]
	// valid [10 16 22]
}

func ExampleOverlapAdd() {
	kernel := make([]float64, 64)
	for i := range kernel {
		kernel[i] = math.Exp(-float64(i) / 10)
	}

	convolver, _ := conv.NewOverlapAdd(kernel, 256)
	fmt.Printf("Block size: %d\n", convolver.BlockSize())
	fmt.Printf("FFT size: %d\n", convolver.FFTSize())

	signal := make([]float64, 500)
	for j := range signal {
		signal[j] = math.Sin(2 * math.Pi * float64(j) / 20)
	}

	result, _ := convolver.Process(signal)
	fmt.Printf("Result length: %d\n", len(result))

	// Output:
	// Block size: 256
	// FFT size: 512
	// Result length: 563
}
