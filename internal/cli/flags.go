package cli

import (
	"math/rand/v2"

	"github.com/spf13/pflag"

	"github.com/emiliopalmerini/housefit/internal/domain"
)

// runFlags are the hyperparameter flags shared by train and serve.
type runFlags struct {
	hyper domain.Hyperparameters
	seed  uint64
}

func (f *runFlags) register(fs *pflag.FlagSet) {
	d := domain.DefaultHyperparameters()
	fs.Float64Var(&f.hyper.LearningRate, "learning-rate", d.LearningRate, "RMSprop learning rate")
	fs.IntVar(&f.hyper.Epochs, "epochs", d.Epochs, "Number of passes over the training slice")
	fs.IntVar(&f.hyper.BatchSize, "batch-size", d.BatchSize, "Rows per gradient step, 0 for the whole slice")
	fs.Float64Var(&f.hyper.ValidationSplit, "validation-split", d.ValidationSplit, "Fraction of training rows held out from the tail")
	fs.StringVar(&f.hyper.Feature, "feature", d.Feature, "Input column")
	fs.StringVar(&f.hyper.Label, "label", d.Label, "Target column")
	fs.Uint64Var(&f.seed, "seed", 0, "Random seed, 0 for a random one")
}

// rand returns the random source for the run.
func (f *runFlags) rand() *rand.Rand {
	if f.seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(f.seed, f.seed))
}
