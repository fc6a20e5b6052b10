package domain

import "fmt"

const (
	DefaultLearningRate    = 0.03
	DefaultEpochs          = 20
	DefaultBatchSize       = 50
	DefaultValidationSplit = 0.3

	// DefaultFeature is the median income on a city block.
	DefaultFeature = "median_income"
	// DefaultLabel is the median house value on a city block.
	DefaultLabel = "median_house_value"

	DefaultScaleFactor = 1000.0
)

// Hyperparameters configure one training run.
type Hyperparameters struct {
	LearningRate    float64 `json:"learning_rate"`
	Epochs          int     `json:"epochs"`
	BatchSize       int     `json:"batch_size"`
	ValidationSplit float64 `json:"validation_split"`
	Feature         string  `json:"feature"`
	Label           string  `json:"label"`
}

// DefaultHyperparameters returns the fixed configuration of the housing run.
func DefaultHyperparameters() Hyperparameters {
	return Hyperparameters{
		LearningRate:    DefaultLearningRate,
		Epochs:          DefaultEpochs,
		BatchSize:       DefaultBatchSize,
		ValidationSplit: DefaultValidationSplit,
		Feature:         DefaultFeature,
		Label:           DefaultLabel,
	}
}

// Validate checks the values the trainer cannot run with. The learning rate
// is passed to the optimizer unchecked.
func (h Hyperparameters) Validate() error {
	if h.Epochs < 1 {
		return fmt.Errorf("epochs must be positive, got %d", h.Epochs)
	}
	if h.BatchSize < 0 {
		return fmt.Errorf("batch size must not be negative, got %d", h.BatchSize)
	}
	if h.ValidationSplit < 0 || h.ValidationSplit >= 1 {
		return fmt.Errorf("split %v: %w", h.ValidationSplit, ErrInvalidSplit)
	}
	if h.Feature == "" || h.Label == "" {
		return fmt.Errorf("feature and label must be set")
	}
	return nil
}
