package roc

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvlperceptron/perceptron"
)

// NewConfusion tallies predictions against true labels. A value equal to
// perceptron.Positive counts as positive; anything else is negative.
//
// Errors: ErrEmpty, ErrLengthMismatch.
func NewConfusion(pred, truth []float64) (Confusion, error) {
	if len(truth) == 0 {
		return Confusion{}, ErrEmpty
	}
	if len(pred) != len(truth) {
		return Confusion{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(pred), len(truth))
	}
	var c Confusion
	for i, t := range truth {
		pp, tp := pred[i] == perceptron.Positive, t == perceptron.Positive
		switch {
		case pp && tp:
			c.TP++
		case pp && !tp:
			c.FP++
		case !pp && tp:
			c.FN++
		default:
			c.TN++
		}
	}

	return c, nil
}

// Sweep calls p.Predict for every offset and records the resulting rates.
// With no offsets it spans DefaultSweepPoints values from "everything
// negative" to "everything positive", derived from the margin range.
//
// The prediction cache of p is left at the last offset.
//
// Errors: ErrNilModel, perceptron.ErrNotFitted, ErrSingleClass.
func Sweep(p *perceptron.Perceptron, offsets ...float64) ([]Point, error) {
	if p == nil {
		return nil, ErrNilModel
	}
	truth := p.Labels()
	if err := checkClasses(truth); err != nil {
		return nil, err
	}
	if len(offsets) == 0 {
		margins, err := p.Margins(0)
		if err != nil {
			return nil, fmt.Errorf("roc: Sweep: %w", err)
		}
		// margin+offset <= -1 for all samples at lo, >= +1 at hi.
		lo, hi := -floats.Max(margins)-1, -floats.Min(margins)+1
		offsets = floats.Span(make([]float64, DefaultSweepPoints), lo, hi)
	}

	points := make([]Point, 0, len(offsets))
	for _, off := range offsets {
		pred, err := p.Predict(off)
		if err != nil {
			return nil, fmt.Errorf("roc: Sweep(%g): %w", off, err)
		}
		acc, err := p.Accuracy()
		if err != nil {
			return nil, fmt.Errorf("roc: Sweep(%g): %w", off, err)
		}
		c, err := NewConfusion(pred, truth)
		if err != nil {
			return nil, err
		}
		points = append(points, Point{
			Offset:      off,
			Sensitivity: c.Sensitivity(),
			Specificity: c.Specificity(),
			FPR:         c.FPR(),
			Accuracy:    acc,
		})
	}

	return points, nil
}

// Curve computes the exact ROC of p's training margins and its area.
//
// Implementation:
//   - Stage 1: margins at offset 0, labels as booleans (+1 → true).
//   - Stage 2: sort scores ascending with labels via stat.SortWeightedLabeled.
//   - Stage 3: stat.ROC over every distinct cutoff; AUC by trapezoids over FPR.
//
// Errors: ErrNilModel, perceptron.ErrNotFitted, ErrSingleClass.
// Complexity: O(n log n) after the O(n·d) margin pass.
func Curve(p *perceptron.Perceptron) (Result, error) {
	if p == nil {
		return Result{}, ErrNilModel
	}
	margins, err := p.Margins(0)
	if err != nil {
		return Result{}, fmt.Errorf("roc: Curve: %w", err)
	}
	truth := p.Labels()
	if err = checkClasses(truth); err != nil {
		return Result{}, err
	}

	return curve(margins, truth), nil
}

// curve assumes len(scores) == len(truth) and both classes present.
func curve(scores, truth []float64) Result {
	classes := make([]bool, len(truth))
	for i, t := range truth {
		classes[i] = t == perceptron.Positive
	}
	stat.SortWeightedLabeled(scores, classes, nil)

	tpr, fpr, thresh := stat.ROC(nil, scores, classes, nil)

	return Result{
		TPR:       tpr,
		FPR:       fpr,
		Threshold: thresh,
		AUC:       integrate.Trapezoidal(fpr, tpr),
	}
}

// checkClasses requires a non-empty label set holding both classes.
func checkClasses(truth []float64) error {
	if len(truth) == 0 {
		return fmt.Errorf("%w: %w", ErrEmpty, perceptron.ErrNotFitted)
	}
	pos := 0
	for _, t := range truth {
		if t == perceptron.Positive {
			pos++
		}
	}
	if pos == 0 || pos == len(truth) {
		return ErrSingleClass
	}

	return nil
}
