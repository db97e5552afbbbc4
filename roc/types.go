// Package roc defines result types and errors for threshold analysis of a
// trained perceptron.
package roc

import (
	"errors"
	"math"
)

// Sentinel errors.
var (
	// ErrLengthMismatch indicates prediction and truth slices differ in length.
	ErrLengthMismatch = errors.New("roc: predictions and labels differ in length")

	// ErrEmpty indicates there is nothing to evaluate.
	ErrEmpty = errors.New("roc: no samples")

	// ErrSingleClass indicates the labels contain only one class, so one of
	// the two rates is undefined.
	ErrSingleClass = errors.New("roc: labels contain a single class")

	// ErrNilModel indicates a nil *perceptron.Perceptron was passed.
	ErrNilModel = errors.New("roc: model is nil")
)

// DefaultSweepPoints is the number of offsets Sweep uses when none are given.
const DefaultSweepPoints = 21

// Confusion holds the 2×2 confusion matrix of ±1 predictions, with +1 as
// the positive class.
type Confusion struct {
	TP, FP, TN, FN int
}

// Sensitivity is TP / (TP + FN), the true positive rate.
// NaN when there are no positive labels.
func (c Confusion) Sensitivity() float64 { return ratio(c.TP, c.TP+c.FN) }

// Specificity is TN / (TN + FP), the true negative rate.
// NaN when there are no negative labels.
func (c Confusion) Specificity() float64 { return ratio(c.TN, c.TN+c.FP) }

// FPR is FP / (FP + TN) = 1 - Specificity.
func (c Confusion) FPR() float64 { return ratio(c.FP, c.FP+c.TN) }

// Accuracy is (TP + TN) / total. NaN for an empty matrix.
func (c Confusion) Accuracy() float64 { return ratio(c.TP+c.TN, c.TP+c.FP+c.TN+c.FN) }

// Point is one threshold of a Predict(offset) sweep.
type Point struct {
	Offset      float64
	Sensitivity float64
	Specificity float64
	FPR         float64
	Accuracy    float64
}

// Result is an exact ROC computed from raw margins.
//
//	TPR[i], FPR[i] are the rates when samples with margin >= Threshold[i]
//	are labeled positive. Threshold is decreasing, starting at +Inf, so
//	FPR and TPR rise from 0 to 1.
type Result struct {
	TPR       []float64
	FPR       []float64
	Threshold []float64
	AUC       float64
}

func ratio(num, den int) float64 {
	if den == 0 {
		return math.NaN()
	}

	return float64(num) / float64(den)
}
