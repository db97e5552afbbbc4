package perceptron_test

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlperceptron/matrix"
	"github.com/katalvlaran/lvlperceptron/perceptron"
	"github.com/stretchr/testify/require"
)

// diagonal is a separable set on the line x1 == x2.
var (
	diagonalX = [][]float64{{1, 1}, {2, 2}, {-1, -1}, {-2, -2}}
	diagonalY = []float64{1, 1, -1, -1}

	xorX = [][]float64{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	xorY = []float64{1, -1, -1, 1}
)

// TestFit_SeparableDiagonal walks the trajectory by hand: one update on the
// first sample (zero margin), then a clean second pass.
func TestFit_SeparableDiagonal(t *testing.T) {
	p := perceptron.New()
	w, err := p.Fit(diagonalX, diagonalY, 10)
	require.NoError(t, err)

	require.Equal(t, []float64{1, 1}, w)
	require.Equal(t, 1.0, p.Bias())
	require.True(t, p.Converged())
	require.Equal(t, 2, p.Epochs())
	require.Equal(t, []int{1, 0}, p.Mistakes())
	require.Equal(t, [][]float64{{0, 0}, {1, 1}, {1, 1}}, p.History())

	for i, x := range diagonalX {
		m, err := matrix.Dot(w, x)
		require.NoError(t, err)
		require.Greater(t, diagonalY[i]*m, 0.0, "sample %d", i)
	}

	pred, err := p.Predict(0)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1, -1, -1}, pred)

	acc, err := p.Accuracy()
	require.NoError(t, err)
	require.Equal(t, 1.0, acc)
}

// TestFit_XORSingleEpoch: a non-separable set cannot converge in one pass.
func TestFit_XORSingleEpoch(t *testing.T) {
	p := perceptron.New()
	w, err := p.Fit(xorX, xorY, 1)
	require.NoError(t, err)

	require.False(t, p.Converged())
	require.Len(t, p.History(), 2)
	require.Equal(t, []int{4}, p.Mistakes())
	require.Equal(t, []float64{0, 0}, w)
	require.Equal(t, 0.0, p.Bias())

	_, err = p.Predict(0)
	require.NoError(t, err)
	acc, err := p.Accuracy()
	require.NoError(t, err)
	require.Less(t, acc, 1.0)
	require.Equal(t, 0.5, acc)
}

// TestFit_EpochBound: never more than epochs passes, history ≤ epochs+1.
func TestFit_EpochBound(t *testing.T) {
	for _, epochs := range []int{1, 2, 7, 25} {
		p := perceptron.New()
		_, err := p.Fit(xorX, xorY, epochs)
		require.NoError(t, err)
		require.Equal(t, epochs, p.Epochs())
		require.Len(t, p.History(), epochs+1)
		require.False(t, p.Converged())
	}

	p := perceptron.New()
	_, err := p.Fit(diagonalX, diagonalY, 100)
	require.NoError(t, err)
	require.LessOrEqual(t, len(p.History()), 101)
	require.Len(t, p.History(), p.Epochs()+1)
}

// TestBoundaryTieBreak: zero margin updates in training, predicts -1.
func TestBoundaryTieBreak(t *testing.T) {
	p := perceptron.New()
	_, err := p.Fit([][]float64{{1}, {-1}}, []float64{1, -1}, 10)
	require.NoError(t, err)

	// Both samples sit on the initial hyperplane (margin 0) and both update.
	require.Equal(t, []int{2, 0}, p.Mistakes())
	require.Equal(t, []float64{2}, p.Weights())
	require.Equal(t, 0.0, p.Bias())

	// Shift so sample 0 lands exactly on the threshold.
	margins, err := p.Margins(-2)
	require.NoError(t, err)
	require.Equal(t, 0.0, margins[0])

	pred, err := p.Predict(-2)
	require.NoError(t, err)
	require.Equal(t, perceptron.Negative, pred[0])

	got, err := p.Classify([]float64{0}, 0)
	require.NoError(t, err)
	require.Equal(t, perceptron.Negative, got)

	got, err = p.Classify([]float64{0.5}, 0)
	require.NoError(t, err)
	require.Equal(t, perceptron.Positive, got)
}

// TestSeparabilityConvergence trains on random data that is separable with
// a margin and checks the mistake-free end state.
func TestSeparabilityConvergence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	trueW, trueB := []float64{2, -1}, 0.5

	var x [][]float64
	var y []float64
	for len(x) < 60 {
		s := []float64{rng.Float64()*2 - 1, rng.Float64()*2 - 1}
		m := trueW[0]*s[0] + trueW[1]*s[1] + trueB
		if math.Abs(m) < 0.1 {
			continue
		}
		x = append(x, s)
		if m > 0 {
			y = append(y, 1)
		} else {
			y = append(y, -1)
		}
	}

	p := perceptron.New()
	_, err := p.Fit(x, y, 5000)
	require.NoError(t, err)
	require.True(t, p.Converged())
	require.Equal(t, 0, p.Mistakes()[p.Epochs()-1])

	pred, err := p.Predict(0)
	require.NoError(t, err)
	require.Equal(t, y, pred)
}

func TestPredict_IdempotentAndCopied(t *testing.T) {
	p := perceptron.New()
	_, err := p.Fit(xorX, xorY, 3)
	require.NoError(t, err)

	a, err := p.Predict(0)
	require.NoError(t, err)
	b, err := p.Predict(0)
	require.NoError(t, err)
	require.Equal(t, a, b)

	// Mutating the returned slice must not corrupt the cache.
	for i := range a {
		a[i] = 7
	}
	acc1, err := p.Accuracy()
	require.NoError(t, err)
	_, _ = p.Predict(0)
	acc2, _ := p.Accuracy()
	require.Equal(t, acc2, acc1)
}

// TestPredict_OffsetMonotone: growing offset only flips -1 → +1.
func TestPredict_OffsetMonotone(t *testing.T) {
	p := perceptron.New()
	_, err := p.Fit(xorX, xorY, 5)
	require.NoError(t, err)

	var prev []float64
	for off := -5.0; off <= 5.0; off += 0.25 {
		pred, err := p.Predict(off)
		require.NoError(t, err)
		if prev != nil {
			for i := range pred {
				require.GreaterOrEqual(t, pred[i], prev[i], "offset %g sample %d", off, i)
			}
		}
		prev = pred

		acc, err := p.Accuracy()
		require.NoError(t, err)
		require.GreaterOrEqual(t, acc, 0.0)
		require.LessOrEqual(t, acc, 1.0)
	}
}

func TestUnboundState(t *testing.T) {
	p := perceptron.New()

	_, err := p.Predict(0)
	require.ErrorIs(t, err, perceptron.ErrNotFitted)
	require.ErrorIs(t, err, perceptron.ErrUnboundState)

	_, err = p.Margins(0)
	require.ErrorIs(t, err, perceptron.ErrNotFitted)

	_, err = p.Classify([]float64{1, 1}, 0)
	require.ErrorIs(t, err, perceptron.ErrNotFitted)

	_, err = p.Accuracy()
	require.ErrorIs(t, err, perceptron.ErrNotPredicted)
	require.ErrorIs(t, err, perceptron.ErrUnboundState)

	require.Nil(t, p.Weights())
	require.Nil(t, p.History())
	require.Zero(t, p.Epochs())

	// A new Fit invalidates earlier predictions.
	_, err = p.Fit(diagonalX, diagonalY, 10)
	require.NoError(t, err)
	_, err = p.Predict(0)
	require.NoError(t, err)
	_, err = p.Fit(xorX, xorY, 2)
	require.NoError(t, err)
	_, err = p.Accuracy()
	require.ErrorIs(t, err, perceptron.ErrNotPredicted)
}

func TestFit_InputErrors(t *testing.T) {
	tests := []struct {
		name   string
		x      [][]float64
		y      []float64
		epochs int
		want   error
	}{
		{"zero epochs", diagonalX, diagonalY, 0, perceptron.ErrInvalidEpochs},
		{"negative epochs", diagonalX, diagonalY, -3, perceptron.ErrInvalidEpochs},
		{"no samples", nil, nil, 5, perceptron.ErrEmptyDataset},
		{"no features", [][]float64{{}, {}}, []float64{1, -1}, 5, perceptron.ErrEmptyDataset},
		{"label count", diagonalX, []float64{1, -1}, 5, perceptron.ErrShapeMismatch},
		{"ragged rows", [][]float64{{1, 2}, {3}}, []float64{1, -1}, 5, perceptron.ErrShapeMismatch},
		{"empty first row", [][]float64{{}, {1}}, []float64{1, -1}, 5, perceptron.ErrShapeMismatch},
		{"bad label", diagonalX, []float64{1, 1, 0, -1}, 5, perceptron.ErrInvalidLabel},
		{"nan feature", [][]float64{{math.NaN()}}, []float64{1}, 5, matrix.ErrNaNInf},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := perceptron.New().Fit(tc.x, tc.y, tc.epochs)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestFit_ErrorKeepsModel: a failed Fit must not clobber a trained model.
func TestFit_ErrorKeepsModel(t *testing.T) {
	p := perceptron.New()
	_, err := p.Fit(diagonalX, diagonalY, 10)
	require.NoError(t, err)
	_, err = p.Predict(0)
	require.NoError(t, err)

	_, err = p.Fit(diagonalX, []float64{1, 1, 2, -1}, 10)
	require.ErrorIs(t, err, perceptron.ErrInvalidLabel)

	require.Equal(t, []float64{1, 1}, p.Weights())
	acc, err := p.Accuracy()
	require.NoError(t, err)
	require.Equal(t, 1.0, acc)
}

func TestFit_WithoutLabelValidation(t *testing.T) {
	p := perceptron.New(perceptron.WithoutLabelValidation())
	w, err := p.Fit([][]float64{{1}, {-1}}, []float64{2, -2}, 10)
	require.NoError(t, err)
	require.True(t, p.Converged())
	require.Equal(t, []float64{4}, w) // both zero-margin updates scaled by 2

	// A NaN label fails every margin test, so its sample never updates.
	w, err = p.Fit([][]float64{{1}}, []float64{math.NaN()}, 3)
	require.NoError(t, err)
	require.Equal(t, []float64{0}, w)
	require.Equal(t, []int{0}, p.Mistakes())
	require.True(t, p.Converged())
}

func TestFit_NoValidateNaNInf(t *testing.T) {
	p := perceptron.New(perceptron.WithNoValidateNaNInf())
	_, err := p.Fit([][]float64{{math.Inf(1)}}, []float64{1}, 1)
	require.NoError(t, err)
}

func TestFit_OnEpochHook(t *testing.T) {
	var seen []int
	p := perceptron.New(perceptron.WithOnEpoch(func(epoch, mistakes int, w []float64) error {
		seen = append(seen, epoch)
		w[0] = 1000 // hooks receive a copy
		return nil
	}))
	_, err := p.Fit(diagonalX, diagonalY, 10)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, seen)
	require.Equal(t, []float64{1, 1}, p.Weights())

	stop := errors.New("stop")
	q := perceptron.New(perceptron.WithOnEpoch(func(epoch, _ int, _ []float64) error {
		if epoch == 3 {
			return stop
		}
		return nil
	}))
	_, err = q.Fit(xorX, xorY, 10)
	require.ErrorIs(t, err, stop)
	require.Nil(t, q.Weights())
}

func TestFit_Context(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := perceptron.New(perceptron.WithContext(ctx))
	_, err := p.Fit(diagonalX, diagonalY, 10)
	require.ErrorIs(t, err, context.Canceled)

	//nolint:staticcheck // nil context is the violation under test
	q := perceptron.New(perceptron.WithContext(nil))
	_, err = q.Fit(diagonalX, diagonalY, 10)
	require.ErrorIs(t, err, perceptron.ErrOptionViolation)
}

func TestFitMatrix(t *testing.T) {
	d, err := matrix.NewDenseFromRows(diagonalX)
	require.NoError(t, err)

	p := perceptron.New()
	w, err := p.FitMatrix(d, diagonalY, 10)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1}, w)

	// The model keeps its own copy of the data.
	require.NoError(t, d.Set(0, 0, -50))
	pred, err := p.Predict(0)
	require.NoError(t, err)
	require.Equal(t, diagonalY, pred)

	_, err = p.FitMatrix(nil, diagonalY, 10)
	require.ErrorIs(t, err, perceptron.ErrEmptyDataset)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestClassify_ShapeMismatch(t *testing.T) {
	p := perceptron.New()
	_, err := p.Fit(diagonalX, diagonalY, 10)
	require.NoError(t, err)

	_, err = p.Classify([]float64{1}, 0)
	require.ErrorIs(t, err, perceptron.ErrShapeMismatch)

	got, err := p.Classify([]float64{3, 3}, 0)
	require.NoError(t, err)
	require.Equal(t, perceptron.Positive, got)
}

func TestClassify_NaNInfPolicy(t *testing.T) {
	p := perceptron.New()
	_, err := p.Fit(diagonalX, diagonalY, 10)
	require.NoError(t, err)

	_, err = p.Classify([]float64{math.NaN(), 1}, 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = p.Classify([]float64{1, math.Inf(-1)}, 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	// With the policy off a NaN margin is not > 0, so the sample maps to -1.
	q := perceptron.New(perceptron.WithNoValidateNaNInf())
	_, err = q.Fit(diagonalX, diagonalY, 10)
	require.NoError(t, err)
	got, err := q.Classify([]float64{math.NaN(), 1}, 0)
	require.NoError(t, err)
	require.Equal(t, perceptron.Negative, got)
}

func TestHistory_IndependentCopies(t *testing.T) {
	p := perceptron.New()
	_, err := p.Fit(diagonalX, diagonalY, 10)
	require.NoError(t, err)

	h := p.History()
	h[1][0] = 99
	require.Equal(t, 1.0, p.History()[1][0])
	require.Equal(t, diagonalY, p.Labels())
}
