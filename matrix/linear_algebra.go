// SPDX-License-Identifier: MIT
// Package matrix provides the vector kernels used by the classifier:
// inner products, in-place scaled accumulation and matrix-vector products.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches.
//
// Notes:
//   - Loop orders are fixed (i→j), so floating-point results are reproducible.
//   - Kernels validate at the facade; the unexported dot/axpy helpers assume
//     validated input and are used directly in hot loops.

package matrix

import "fmt"

// ZeroSum is the initial value of every accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opDot    = "Dot"
	opAxpy   = "Axpy"
	opMatVec = "MatVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Dot returns the inner product a·b.
//
// Contract: len(a) == len(b); otherwise ErrDimensionMismatch.
// Determinism: fixed left-to-right accumulation.
// Complexity: Time O(n), Space O(1).
func Dot(a, b []float64) (float64, error) {
	if err := ValidateSameLen(a, b); err != nil {
		return 0, matrixErrorf(opDot, err)
	}

	return dot(a, b), nil
}

// Axpy performs y += alpha*x in place.
//
// Contract: y non-nil; len(x) == len(y).
// Errors: ErrNilMatrix (nil y), ErrDimensionMismatch.
// Complexity: Time O(n), Space O(1).
//
// AI-Hints:
//   - This is the perceptron update: Axpy(label, sample, w).
func Axpy(alpha float64, x, y []float64) error {
	if err := ValidateVecLen(y, len(x)); err != nil {
		return matrixErrorf(opAxpy, err)
	}
	axpy(alpha, x, y)

	return nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, base int
		for i = 0; i < d.r; i++ {
			base = i * d.c
			y[i] = dot(d.data[base:base+d.c], x)
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// dot assumes len(a) == len(b).
func dot(a, b []float64) float64 {
	acc := ZeroSum
	for i, av := range a {
		acc += av * b[i]
	}

	return acc
}

// axpy assumes len(x) == len(y).
func axpy(alpha float64, x, y []float64) {
	for i, xv := range x {
		y[i] += alpha * xv
	}
}
