// Package lvlperceptron is a small, dependency-light toolkit for training
// and inspecting a binary perceptron classifier on in-memory data.
//
// What is in the box?
//
//	• perceptron/ — the trainer: Fit, Predict(offset), Accuracy, weight history
//	• matrix/     — row-major Dense storage, Dot / Axpy / MatVec kernels, validators
//	• roc/        — confusion matrix, threshold sweeps, exact ROC + AUC (gonum)
//	• examples/   — a runnable end-to-end program
//
// Why?
//
//   - Faithful classical rule – online updates, boundary-inclusive mistakes
//   - Explicit errors – sentinel errors matched with errors.Is, no panics
//   - Observable – OnEpoch hook and per-epoch snapshots for convergence plots
//
// Quick example:
//
//	p := perceptron.New()
//	w, _ := p.Fit([][]float64{{1, 1}, {-1, -1}}, []float64{1, -1}, 10)
//	pred, _ := p.Predict(0)
//
//	go get github.com/katalvlaran/lvlperceptron
package lvlperceptron
