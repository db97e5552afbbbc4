package perceptron

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlperceptron/matrix"
)

// cloneVec returns an independent copy of v; nil stays nil.
func cloneVec(v []float64) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v))
	copy(out, v)

	return out
}

// copyDense materializes any Matrix into a fresh Dense under the given
// numeric policy. Set enforces the policy cell by cell.
func copyDense(src matrix.Matrix, opts ...matrix.Option) (*matrix.Dense, error) {
	r, c := src.Rows(), src.Cols()
	dst, err := matrix.NewDense(r, c, opts...)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = src.At(i, j); err != nil {
				return nil, err
			}
			if err = dst.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return dst, nil
}

// ingestError maps matrix ingestion failures onto the perceptron taxonomy,
// keeping the matrix sentinel reachable through errors.Is.
func ingestError(err error) error {
	switch {
	case errors.Is(err, matrix.ErrDimensionMismatch):
		return fmt.Errorf("%w: %w", ErrShapeMismatch, err)
	case errors.Is(err, matrix.ErrInvalidDimensions):
		return fmt.Errorf("%w: %w", ErrEmptyDataset, err)
	default:
		return err
	}
}
