// Package roc turns a trained perceptron into threshold diagnostics.
//
// A perceptron's Predict(offset) moves the decision threshold; sweeping it
// trades sensitivity (true positive rate) against specificity (true
// negative rate). This package provides:
//
//   - NewConfusion: the TP/FP/TN/FN tally of ±1 predictions.
//   - Sweep:        Predict at each offset, collecting rates and accuracy.
//   - Curve:        the exact ROC over every distinct training margin
//     (gonum stat.ROC) and its area (gonum integrate.Trapezoidal).
//
// Both Sweep and Curve need labels of both classes; otherwise
// ErrSingleClass is returned.
package roc
