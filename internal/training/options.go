package training

import (
	"math/rand/v2"

	"github.com/emiliopalmerini/housefit/internal/domain"
)

// Options configure a training run.
type Options struct {
	Epochs int
	// BatchSize of 0 trains on the whole training slice at once.
	BatchSize       int
	ValidationSplit float64

	// Shuffle reorders the training slice before every epoch. The validation
	// slice is never reshuffled.
	Shuffle bool
	Rand    *rand.Rand

	// OnEpoch is called after each epoch's record is appended. hasValidation
	// tells whether ValRMSE was measured.
	OnEpoch func(r domain.EpochRecord, hasValidation bool)
}

type OptionFunc func(*Options)

func WithEpochs(n int) OptionFunc {
	return func(o *Options) {
		o.Epochs = n
	}
}

func WithBatchSize(n int) OptionFunc {
	return func(o *Options) {
		o.BatchSize = n
	}
}

func WithValidationSplit(f float64) OptionFunc {
	return func(o *Options) {
		o.ValidationSplit = f
	}
}

func WithShuffle(rng *rand.Rand) OptionFunc {
	return func(o *Options) {
		o.Shuffle = true
		o.Rand = rng
	}
}

func WithEpochCallback(fn func(r domain.EpochRecord, hasValidation bool)) OptionFunc {
	return func(o *Options) {
		o.OnEpoch = fn
	}
}

// NewOptions starts from the housing defaults and applies opts.
func NewOptions(opts ...OptionFunc) Options {
	o := Options{
		Epochs:          domain.DefaultEpochs,
		BatchSize:       domain.DefaultBatchSize,
		ValidationSplit: domain.DefaultValidationSplit,
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// FromHyperparameters maps run hyperparameters onto trainer options.
func FromHyperparameters(h domain.Hyperparameters, opts ...OptionFunc) Options {
	base := []OptionFunc{
		WithEpochs(h.Epochs),
		WithBatchSize(h.BatchSize),
		WithValidationSplit(h.ValidationSplit),
	}
	return NewOptions(append(base, opts...)...)
}

func (o Options) validate() error {
	return domain.Hyperparameters{
		Epochs:          o.Epochs,
		BatchSize:       o.BatchSize,
		ValidationSplit: o.ValidationSplit,
		Feature:         "-",
		Label:           "-",
	}.Validate()
}
