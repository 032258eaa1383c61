// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dct computes the type-II discrete cosine transform of a real
// sequence, both directly from the definition and through a radix-2
// fast Fourier transform of the mirrored sequence.
package dct

import (
	"math"
	"math/bits"
	"math/cmplx"
	"runtime"
	"sync"
)

// FFT returns the discrete Fourier transform of x,
//
//	X[k] = Σ x[n]·exp(-2πi·nk/N), n = 0..N-1,
//
// computed by radix-2 decimation in time.
// The length of x must be zero, one, or a power of two; FFT panics
// otherwise, because the radix-2 recursion is not correct for other
// lengths and a silently wrong answer is worse than a crash.
// The input is not modified.
func FFT(x []complex128) []complex128 {
	n := len(x)
	if n < 2 {
		// A sequence of length 0 or 1 is its own transform.
		out := make([]complex128, n)
		copy(out, x)
		return out
	}
	if n&(n-1) != 0 {
		panic("dct: FFT of non-power-of-two length")
	}
	out := make([]complex128, n)
	fft(out, x, 0, 1, twiddles(n), forkBudget())
	return out
}

// twiddles returns w with w[j] = exp(-2πi·j/n) for j = 0..n/2-1.
// Sub-transforms of length m = n/stride share the table:
// their j-th factor exp(-2πi·j/m) is w[j·stride].
func twiddles(n int) []complex128 {
	w := make([]complex128, n/2)
	for j := range w {
		w[j] = cmplx.Rect(1, -2*math.Pi*float64(j)/float64(n))
	}
	return w
}

// forkMin is the smallest sub-transform worth a goroutine of its own.
const forkMin = 1 << 10

// forkBudget is the fork depth that puts roughly one leaf goroutine
// on each available CPU.
func forkBudget() int {
	return bits.Len(uint(runtime.GOMAXPROCS(0) - 1))
}

// fft transforms the m-element subsequence x[off], x[off+stride],
// x[off+2·stride], … into dst, where m = len(dst) and m·stride is the
// full transform length. The even and odd halves of the subsequence
// recurse into the two halves of dst. The halves read disjoint strided
// views of x and write disjoint ranges of dst, so while budget lasts
// the even half runs on its own goroutine, joined before the combine
// pass.
func fft(dst, x []complex128, off, stride int, w []complex128, budget int) {
	m := len(dst)
	if m == 1 {
		dst[0] = x[off]
		return
	}
	even, odd := dst[:m/2], dst[m/2:]
	if budget > 0 && m >= forkMin {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			fft(even, x, off, 2*stride, w, budget-1)
		}()
		fft(odd, x, off+stride, 2*stride, w, budget-1)
		wg.Wait()
	} else {
		fft(even, x, off, 2*stride, w, 0)
		fft(odd, x, off+stride, 2*stride, w, 0)
	}
	for k := 0; k < m/2; k++ {
		e, o := even[k], odd[k]
		wo := w[k*stride] * o
		dst[k] = e + wo
		dst[k+m/2] = e - wo
	}
}
