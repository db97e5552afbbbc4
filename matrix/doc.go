// Package matrix offers the dense storage and vector kernels behind the
// perceptron trainer.
//
// The matrix package provides:
//
//   - Dense, a row-major n×d buffer holding one sample per row, built from
//     caller-owned rows via NewDenseFromRows (data is copied, ragged input
//     is rejected with ErrDimensionMismatch).
//   - Row(i), a no-copy view of a sample for hot training loops.
//   - Kernels: Dot (inner product), Axpy (y += alpha*x in place) and
//     MatVec (all margins in one pass).
//   - Validators and a finite-value numeric policy (WithNoValidateNaNInf
//     to opt out).
//
// All public functions return sentinel errors instead of panicking; match
// them with errors.Is.
package matrix
