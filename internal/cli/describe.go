package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/housefit/internal/dataset"
	"github.com/emiliopalmerini/housefit/internal/domain"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Show the first rows and a summary of both tables",
	Long: `Load the train and test tables, label already scaled, and print their
first rows and per-column statistics.

Examples:
  housefit describe            # First 10 rows
  housefit describe --rows 5   # First 5 rows`,
	RunE: runDescribe,
}

var (
	describeRows  int
	describeLabel string
)

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().IntVarP(&describeRows, "rows", "n", 10, "Number of rows to show")
	describeCmd.Flags().StringVar(&describeLabel, "label", domain.DefaultLabel, "Column to scale")
}

func runDescribe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	app, err := NewAppContext(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close(ctx) }()

	train, test, err := app.Loader(describeLabel).Load(ctx)
	if err != nil {
		return err
	}

	for _, t := range []struct {
		name  string
		table *domain.Table
	}{{"train", train}, {"test", test}} {
		fmt.Printf("%s (%d rows)\n\n", t.name, t.table.Len())
		printHead(os.Stdout, t.table.Head(describeRows))
		fmt.Println()
		printSummary(os.Stdout, dataset.Describe(t.table))
		fmt.Println()
	}
	return nil
}

// printHead writes the rows of t as a right-aligned table with one decimal.
func printHead(w io.Writer, t *domain.Table) {
	names := t.Names()
	widths := make([]int, len(names))
	cells := make([][]string, t.Len())
	for i := range cells {
		cells[i] = make([]string, len(names))
	}
	for j, name := range names {
		widths[j] = len(name)
		col, _ := t.Column(name)
		for i, v := range col {
			cells[i][j] = fmt.Sprintf("%.1f", v)
			widths[j] = max(widths[j], len(cells[i][j]))
		}
	}

	header := make([]string, len(names))
	for j, name := range names {
		header[j] = fmt.Sprintf("%*s", widths[j], name)
	}
	fmt.Fprintln(w, strings.Join(header, "  "))
	for _, row := range cells {
		out := make([]string, len(row))
		for j, c := range row {
			out[j] = fmt.Sprintf("%*s", widths[j], c)
		}
		fmt.Fprintln(w, strings.Join(out, "  "))
	}
}

// printSummary writes one line of statistics per column.
func printSummary(w io.Writer, summaries []dataset.ColumnSummary) {
	width := len("column")
	for _, s := range summaries {
		width = max(width, len(s.Name))
	}
	fmt.Fprintf(w, "%-*s  %8s  %10s  %10s  %10s  %10s\n", width, "column", "count", "mean", "std", "min", "max")
	for _, s := range summaries {
		fmt.Fprintf(w, "%-*s  %8d  %10.1f  %10.1f  %10.1f  %10.1f\n", width, s.Name, s.Count, s.Mean, s.Std, s.Min, s.Max)
	}
}
