// Package perceptron provides tunable options and error definitions
// for the mistake-driven perceptron trainer.
package perceptron

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlperceptron/matrix"
)

// Sentinel errors for training and prediction.
var (
	// ErrShapeMismatch is returned when the label count differs from the
	// sample count, rows are ragged, or a sample's length differs from the
	// trained dimensionality.
	ErrShapeMismatch = errors.New("perceptron: shape mismatch")

	// ErrEmptyDataset is returned when there are no samples or no features.
	ErrEmptyDataset = errors.New("perceptron: dataset must have n >= 1 and d >= 1")

	// ErrInvalidEpochs is returned when the epoch budget is below 1.
	ErrInvalidEpochs = errors.New("perceptron: epochs must be >= 1")

	// ErrInvalidLabel is returned when a label is not exactly -1 or +1
	// and label validation is enabled.
	ErrInvalidLabel = errors.New("perceptron: label must be -1 or +1")

	// ErrUnboundState is the parent of every "called too early" error.
	ErrUnboundState = errors.New("perceptron: unbound state")

	// ErrNotFitted is returned by Predict, Margins and Classify before Fit.
	ErrNotFitted = fmt.Errorf("%w: model not trained", ErrUnboundState)

	// ErrNotPredicted is returned by Accuracy before Predict.
	ErrNotPredicted = fmt.Errorf("%w: no predictions available", ErrUnboundState)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("perceptron: invalid option supplied")
)

// Label values. Predictions are always one of these two.
const (
	Positive = 1.0
	Negative = -1.0
)

// DefaultValidateLabels rejects labels outside {-1,+1} at Fit.
const DefaultValidateLabels = true

// Option configures a Perceptron via functional arguments.
// If an Option is invalid (e.g. nil context), it is recorded internally
// and surfaced as ErrOptionViolation when Fit is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize training.
type Options struct {
	// Ctx allows cancellation between epochs.
	Ctx context.Context

	// OnEpoch is called after each epoch's weight snapshot is recorded.
	// It receives the 1-based epoch number, the misclassification count of
	// that pass and the current weights (a copy). Returning an error aborts
	// Fit and leaves the previous model untouched.
	OnEpoch func(epoch, mistakes int, w []float64) error

	// ValidateLabels rejects labels outside {-1,+1}.
	ValidateLabels bool

	// matrixOpts are forwarded to dataset ingestion.
	matrixOpts []matrix.Option

	// validateNaNInf mirrors the ingestion policy for Classify samples.
	validateNaNInf bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no-op OnEpoch hook
//   - label validation on
//   - matrix numeric policy defaults (NaN/Inf rejected).
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnEpoch:        func(int, int, []float64) error { return nil },
		ValidateLabels: DefaultValidateLabels,
		validateNaNInf: matrix.DefaultValidateNaNInf,
	}
}

// WithContext sets a custom context for cancellation. A nil ctx is an
// option violation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithOnEpoch registers a per-epoch callback; returning an error from it
// stops training.
func WithOnEpoch(fn func(epoch, mistakes int, w []float64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEpoch = fn
		}
	}
}

// WithoutLabelValidation accepts any label value. The update rule then runs
// arithmetically as written; convergence guarantees only hold for labels in
// {-1,+1}. A NaN label makes every margin test false, so its sample never
// triggers an update.
func WithoutLabelValidation() Option {
	return func(o *Options) { o.ValidateLabels = false }
}

// WithNoValidateNaNInf lets NaN/±Inf features through ingestion and
// Classify.
func WithNoValidateNaNInf() Option {
	return func(o *Options) {
		o.validateNaNInf = false
		o.matrixOpts = append(o.matrixOpts, matrix.WithNoValidateNaNInf())
	}
}

// gatherOptions applies user setters over DefaultOptions in order.
func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
