// Package perceptron trains a binary linear classifier with the classical
// mistake-driven perceptron rule and evaluates it on the training data.
//
// What
//
//   - Fit learns a weight vector w and bias b such that sign(w·x + b)
//     separates the two classes, when the data is linearly separable.
//     Otherwise it stops after the epoch budget with the last iterate.
//   - Predict labels the stored training samples (+1 iff margin > 0),
//     with an optional threshold offset for sensitivity/specificity sweeps.
//   - Accuracy reports the fraction of cached predictions that match the
//     training labels.
//   - History keeps one weight snapshot per epoch (plus the initial zero
//     vector) for convergence diagnostics.
//
// Tie-break
//
//	During training a sample with y·(w·x + b) == 0 triggers an update.
//	During prediction a margin of exactly 0 is labeled -1.
//
// Determinism
//
//	Samples are visited in slice order and updates apply immediately, so a
//	given dataset always yields the same trajectory.
//
// Complexity (n samples, d features, E epochs)
//
//   - Fit:     O(E·n·d) time, O(E·d + n·d) memory (history + data copy)
//   - Predict: O(n·d)
//
// Usage
//
//	p := perceptron.New()
//	w, err := p.Fit(x, y, 100)
//	if err != nil {
//	    // ErrInvalidEpochs, ErrEmptyDataset, ErrShapeMismatch, ErrInvalidLabel, ...
//	}
//	pred, _ := p.Predict(0)
//	acc, _ := p.Accuracy()
//
// Options
//
//   - WithContext(ctx):          cancel between epochs.
//   - WithOnEpoch(fn):           observe (or abort) each epoch.
//   - WithoutLabelValidation():  accept labels other than ±1.
//   - WithNoValidateNaNInf():    accept non-finite features.
//
// Errors
//
//   - Premature calls return ErrNotFitted or ErrNotPredicted; both match
//     ErrUnboundState via errors.Is.
package perceptron
