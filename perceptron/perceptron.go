package perceptron

import (
	"fmt"

	"github.com/katalvlaran/lvlperceptron/matrix"
)

// Operation tags for error wrapping.
const (
	opFit      = "Fit"
	opPredict  = "Predict"
	opMargins  = "Margins"
	opAccuracy = "Accuracy"
	opClassify = "Classify"
)

// Perceptron is a binary linear classifier trained with the classical
// mistake-driven update rule.
//
// State lifecycle: untrained → trained (Fit) → predicted (Predict).
// A Perceptron is not safe for concurrent use.
type Perceptron struct {
	opts Options

	data   *matrix.Dense // training samples, n×d (private copy)
	labels []float64     // training labels, len n

	w []float64 // weight vector, len d
	b float64   // bias

	history   [][]float64 // initial zero vector + one snapshot per epoch
	mistakes  []int       // misclassifications per processed epoch
	converged bool        // last processed epoch had zero mistakes

	predicted []float64 // prediction cache, nil until Predict
}

// New returns an untrained Perceptron configured by opts.
func New(opts ...Option) *Perceptron {
	return &Perceptron{opts: gatherOptions(opts...)}
}

// Fit trains on x (n samples × d features) and labels y for at most epochs
// passes and returns a copy of the final weight vector.
//
// Algorithm (online, sample order matters):
//  1. w ← 0 (len d), b ← 0, history ← [w].
//  2. For each epoch: for i = 0..n-1, if y_i*(w·x_i + b) <= 0 then
//     w ← w + y_i*x_i, b ← b + y_i and count a mistake. Samples later in the
//     pass see the already-updated weights.
//  3. After each pass append a snapshot of w; stop early when the pass had
//     zero mistakes.
//
// A point lying exactly on the hyperplane counts as a mistake here, while
// Predict maps a zero margin to -1.
//
// Errors:
//   - ErrOptionViolation, ErrInvalidEpochs, ErrEmptyDataset.
//   - ErrShapeMismatch (ragged rows or len(y) != n).
//   - matrix.ErrNaNInf for non-finite features (unless disabled).
//   - ErrInvalidLabel (unless WithoutLabelValidation).
//   - ctx.Err() or an OnEpoch error, wrapped.
//
// On error the previous model, if any, is left untouched.
//
// Complexity: O(epochs·n·d) time, O(epochs·d + n·d) memory.
func (p *Perceptron) Fit(x [][]float64, y []float64, epochs int) ([]float64, error) {
	if err := p.precheck(epochs); err != nil {
		return nil, err
	}
	// NewDenseFromRows tells an empty dataset apart from ragged rows.
	data, err := matrix.NewDenseFromRows(x, p.opts.matrixOpts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFit, ingestError(err))
	}

	return p.fit(data, y, epochs)
}

// FitMatrix is Fit for an already-built Matrix. The matrix is copied, so
// later mutations by the caller do not affect the trained model.
func (p *Perceptron) FitMatrix(x matrix.Matrix, y []float64, epochs int) ([]float64, error) {
	if err := p.precheck(epochs); err != nil {
		return nil, err
	}
	if err := matrix.ValidateNotNil(x); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opFit, ErrEmptyDataset, err)
	}
	if x.Rows() == 0 || x.Cols() == 0 {
		return nil, fmt.Errorf("%s: %w", opFit, ErrEmptyDataset)
	}
	data, err := copyDense(x, p.opts.matrixOpts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFit, ingestError(err))
	}

	return p.fit(data, y, epochs)
}

// precheck surfaces option errors and validates the epoch budget.
func (p *Perceptron) precheck(epochs int) error {
	if p.opts.err != nil {
		return p.opts.err
	}
	if epochs < 1 {
		return fmt.Errorf("%s: %w (got %d)", opFit, ErrInvalidEpochs, epochs)
	}

	return nil
}

// fit runs the training loop on a validated private copy of the data and
// commits the result only on success.
func (p *Perceptron) fit(data *matrix.Dense, y []float64, epochs int) ([]float64, error) {
	n, d := data.Rows(), data.Cols()
	if len(y) != n {
		return nil, fmt.Errorf("%s: %w: %d samples, %d labels", opFit, ErrShapeMismatch, n, len(y))
	}
	if p.opts.ValidateLabels {
		for i, v := range y {
			if v != Positive && v != Negative {
				return nil, fmt.Errorf("%s: %w: y[%d]=%g", opFit, ErrInvalidLabel, i, v)
			}
		}
	}
	labels := make([]float64, n)
	copy(labels, y)

	w := make([]float64, d)
	b := 0.0
	history := [][]float64{cloneVec(w)}
	var mistakes []int
	converged := false

	var xi []float64
	var margin float64
	var err error
	for e := 1; e <= epochs; e++ {
		if err = p.opts.Ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: epoch %d: %w", opFit, e, err)
		}

		count := 0
		for i := 0; i < n; i++ {
			if xi, err = data.Row(i); err != nil {
				return nil, fmt.Errorf("%s: %w", opFit, err)
			}
			if margin, err = matrix.Dot(w, xi); err != nil {
				return nil, fmt.Errorf("%s: %w", opFit, err)
			}
			if labels[i]*(margin+b) <= 0 {
				if err = matrix.Axpy(labels[i], xi, w); err != nil {
					return nil, fmt.Errorf("%s: %w", opFit, err)
				}
				b += labels[i]
				count++
			}
		}

		history = append(history, cloneVec(w))
		mistakes = append(mistakes, count)
		if err = p.opts.OnEpoch(e, count, cloneVec(w)); err != nil {
			return nil, fmt.Errorf("%s: OnEpoch(%d): %w", opFit, e, err)
		}
		if count == 0 {
			converged = true
			break
		}
	}

	p.data, p.labels = data, labels
	p.w, p.b = w, b
	p.history, p.mistakes, p.converged = history, mistakes, converged
	p.predicted = nil

	return cloneVec(w), nil
}

// Predict labels every training sample: +1 iff w·x_i + b + offset > 0,
// else -1 (a zero margin maps to -1). The result is cached for Accuracy and
// a copy is returned. Pass offset 0 for the plain decision rule; sweeping
// offset moves the threshold, e.g. for an ROC curve.
//
// Errors: ErrNotFitted.
// Complexity: O(n·d).
func (p *Perceptron) Predict(offset float64) ([]float64, error) {
	margins, err := p.margins(opPredict, offset)
	if err != nil {
		return nil, err
	}
	pred := make([]float64, len(margins))
	for i, m := range margins {
		pred[i] = decide(m)
	}
	p.predicted = pred

	return cloneVec(pred), nil
}

// Margins returns w·x_i + b + offset for every training sample, in order.
// It does not touch the prediction cache.
//
// Errors: ErrNotFitted.
func (p *Perceptron) Margins(offset float64) ([]float64, error) {
	return p.margins(opMargins, offset)
}

func (p *Perceptron) margins(op string, offset float64) ([]float64, error) {
	if p.data == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFitted)
	}
	// Margins carry no order dependence, so one batched pass is exact.
	m, err := matrix.MatVec(p.data, p.w)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for i := range m {
		m[i] = m[i] + p.b + offset
	}

	return m, nil
}

// Accuracy returns the fraction of cached predictions equal to the stored
// training labels, in [0,1].
//
// Errors: ErrNotPredicted if Predict has not run since the last Fit.
func (p *Perceptron) Accuracy() (float64, error) {
	if p.predicted == nil {
		return 0, fmt.Errorf("%s: %w", opAccuracy, ErrNotPredicted)
	}
	hits := 0
	for i, v := range p.predicted {
		if v == p.labels[i] {
			hits++
		}
	}

	return float64(hits) / float64(len(p.labels)), nil
}

// Classify applies the trained decision rule to an unseen sample.
//
// Errors: ErrNotFitted, ErrShapeMismatch, matrix.ErrNaNInf (unless disabled).
func (p *Perceptron) Classify(sample []float64, offset float64) (float64, error) {
	if p.data == nil {
		return 0, fmt.Errorf("%s: %w", opClassify, ErrNotFitted)
	}
	m, err := matrix.Dot(p.w, sample)
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %w", opClassify, ErrShapeMismatch, err)
	}
	if p.opts.validateNaNInf {
		if err = matrix.ValidateFinite(sample); err != nil {
			return 0, fmt.Errorf("%s: %w", opClassify, err)
		}
	}

	return decide(m + p.b + offset), nil
}

// Weights returns a copy of the trained weight vector (nil before Fit).
func (p *Perceptron) Weights() []float64 { return cloneVec(p.w) }

// Bias returns the trained bias (0 before Fit).
func (p *Perceptron) Bias() float64 { return p.b }

// History returns copies of the weight snapshots: the initial zero vector
// followed by one entry per processed epoch.
func (p *Perceptron) History() [][]float64 {
	if p.history == nil {
		return nil
	}
	out := make([][]float64, len(p.history))
	for i, w := range p.history {
		out[i] = cloneVec(w)
	}

	return out
}

// Epochs reports how many passes the last Fit processed.
func (p *Perceptron) Epochs() int { return len(p.mistakes) }

// Mistakes returns the misclassification count of each processed epoch.
func (p *Perceptron) Mistakes() []int {
	if p.mistakes == nil {
		return nil
	}
	out := make([]int, len(p.mistakes))
	copy(out, p.mistakes)

	return out
}

// Converged reports whether the last Fit ended on a mistake-free pass.
func (p *Perceptron) Converged() bool { return p.converged }

// Labels returns a copy of the stored training labels (nil before Fit).
func (p *Perceptron) Labels() []float64 { return cloneVec(p.labels) }

// decide is the strict-threshold rule shared by Predict and Classify.
func decide(margin float64) float64 {
	if margin > 0 {
		return Positive
	}

	return Negative
}
