// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dct

import (
	"math"
	"math/cmplx"
)

// Naive returns the type-II discrete cosine transform of x,
// evaluated term by term from the definition:
//
//	X[k] = 2·Σ x[n]·cos(π/N·(n+0.5)·k), n = 0..N-1.
//
// It computes all N² cosine terms unconditionally and serves as the
// correctness and performance baseline for Fast.
func Naive(x []float64) []float64 {
	n := len(x)
	out := make([]float64, n)
	for k := range out {
		sum := 0.0
		for i, v := range x {
			sum += v * math.Cos(math.Pi/float64(n)*(float64(i)+0.5)*float64(k))
		}
		out[k] = 2 * sum
	}
	return out
}

// Fast returns the same coefficients as Naive in O(N·log N) time.
// It Fourier-transforms the mirrored sequence x ++ reverse(x) and
// de-rotates the first N bins:
//
//	X[k] = Re(exp(-iπk/(2N)) · DFT(x ++ reverse(x))[k]).
//
// The fast path needs the mirrored length 2N to be a power of two.
// For other lengths Fast falls back to Naive, so it is exact for
// every length and merely slower off the fast path.
func Fast(x []float64) []float64 {
	n := len(x)
	if n&(n-1) != 0 {
		return Naive(x)
	}
	y := make([]complex128, 2*n)
	for i, v := range x {
		y[i] = complex(v, 0)
		y[2*n-1-i] = complex(v, 0)
	}
	Y := FFT(y)
	out := make([]float64, n)
	for k := range out {
		out[k] = real(Y[k] * cmplx.Rect(1, -math.Pi*float64(k)/float64(2*n)))
	}
	return out
}
