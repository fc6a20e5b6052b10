package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "housefit",
	Short: "Fit median house value against median income",
	Long: `housefit trains a one-feature linear regression on the California housing
dataset, plots the fit and the loss curve, and evaluates it on the test set.

Set HOUSEFIT_OTEL_ENABLED and HOUSEFIT_OTEL_ENDPOINT to export training metrics.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
