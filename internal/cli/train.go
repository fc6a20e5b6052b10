package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/housefit/internal/app/tui"
	"github.com/emiliopalmerini/housefit/internal/domain"
	"github.com/emiliopalmerini/housefit/internal/pipeline"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the model and write plots and report",
	Long: `Load the housing tables, train a linear model of median house value on
median income, plot the fit and the loss curve, and evaluate on the test set.

Examples:
  housefit train                        # Fixed configuration
  housefit train --epochs 50 --seed 42  # Longer, reproducible run
  housefit train --progress             # Live progress view`,
	RunE: runTrain,
}

var (
	trainFlags    runFlags
	trainOut      string
	trainProgress bool
)

func init() {
	rootCmd.AddCommand(trainCmd)
	trainFlags.register(trainCmd.Flags())
	trainCmd.Flags().StringVarP(&trainOut, "out", "o", "", "Output directory (default from HOUSEFIT_OUTPUT_DIR)")
	trainCmd.Flags().BoolVar(&trainProgress, "progress", false, "Show a live progress view")
}

func runTrain(cmd *cobra.Command, args []string) error {
	ctx, stop := signalContext(cmd.Context())
	defer stop()

	app, err := NewAppContext(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close(context.Background()) }()

	p := pipeline.New(app.Loader(trainFlags.hyper.Label), trainFlags.hyper, trainFlags.rand(), app.Metrics)

	var a *pipeline.Artifacts
	if trainProgress {
		a, err = runWithProgress(ctx, p)
	} else {
		a, err = p.Run(ctx)
	}
	if err != nil {
		return err
	}

	printDiagnostics(a)
	fmt.Println()
	fmt.Println(renderSummary(a))

	dir := trainOut
	if dir == "" {
		dir = app.Config.Output.Dir
	}
	paths, err := a.Write(ctx, dir)
	if err != nil {
		return err
	}
	for _, path := range paths {
		fmt.Printf("Wrote %s\n", path)
	}
	return nil
}

// runWithProgress runs p while a bubbletea view renders its epochs.
// Quitting the view cancels the run.
func runWithProgress(ctx context.Context, p *pipeline.Pipeline) (*pipeline.Artifacts, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	view := tui.NewTrainView(p.Hyper.Epochs)
	prog := tea.NewProgram(view)
	p.OnEpoch = func(r domain.EpochRecord, hasValidation bool) {
		prog.Send(tui.EpochMsg{Record: r, HasValidation: hasValidation})
	}

	type result struct {
		artifacts *pipeline.Artifacts
		err       error
	}
	done := make(chan result, 1)
	go func() {
		a, err := p.Run(ctx)
		done <- result{a, err}
		prog.Send(tui.DoneMsg{Err: err})
	}()

	if _, err := prog.Run(); err != nil {
		cancel()
		<-done
		return nil, fmt.Errorf("progress view: %w", err)
	}
	if view.Canceled() {
		cancel()
	}
	res := <-done
	return res.artifacts, res.err
}

// printDiagnostics prints the loss spread and the test evaluation.
func printDiagnostics(a *pipeline.Artifacts) {
	if a.Spread != nil {
		fmt.Printf("Loss delta: %.4f\n", a.Spread.Delta)
	}
	if a.Test != nil {
		fmt.Printf("Test loss: %.4f - root_mean_squared_error: %.4f\n", a.Test.Loss, a.Test.RMSE)
	}
}
