package dataset

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/emiliopalmerini/housefit/internal/domain"
)

// ColumnSummary holds the descriptive statistics of one column.
type ColumnSummary struct {
	Name  string
	Count int
	Mean  float64
	Std   float64
	Min   float64
	Max   float64
}

// Describe summarizes every column of the table in column order.
func Describe(t *domain.Table) []ColumnSummary {
	names := t.Names()
	out := make([]ColumnSummary, 0, len(names))
	for _, name := range names {
		col, _ := t.Column(name)
		s := ColumnSummary{Name: name, Count: len(col)}
		if len(col) > 0 {
			s.Mean, s.Std = stat.MeanStdDev(col, nil)
			s.Min = floats.Min(col)
			s.Max = floats.Max(col)
		}
		out = append(out, s)
	}
	return out
}
