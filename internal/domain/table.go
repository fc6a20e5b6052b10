package domain

import (
	"fmt"
	"math/rand/v2"
)

// Table holds named numeric columns whose rows are aligned by position.
type Table struct {
	names   []string
	columns map[string][]float64
	rows    int
}

// NewTable builds a table from column names and values. Every column must
// have the same length and names must be unique.
func NewTable(names []string, values [][]float64) (*Table, error) {
	if len(names) != len(values) {
		return nil, fmt.Errorf("%d names for %d columns: %w", len(names), len(values), ErrLengthMismatch)
	}

	t := &Table{
		names:   make([]string, 0, len(names)),
		columns: make(map[string][]float64, len(names)),
	}
	for i, name := range names {
		if _, dup := t.columns[name]; dup {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		if i == 0 {
			t.rows = len(values[i])
		} else if len(values[i]) != t.rows {
			return nil, fmt.Errorf("column %q has %d rows, want %d: %w", name, len(values[i]), t.rows, ErrLengthMismatch)
		}
		t.names = append(t.names, name)
		t.columns[name] = values[i]
	}
	return t, nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return t.rows
}

// Names returns the column names in load order.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Column returns the values of a column. The slice is shared with the table.
func (t *Table) Column(name string) ([]float64, error) {
	col, ok := t.columns[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrColumnNotFound)
	}
	return col, nil
}

// Scale divides every value of the column by factor in place.
func (t *Table) Scale(name string, factor float64) error {
	col, err := t.Column(name)
	if err != nil {
		return err
	}
	for i := range col {
		col[i] /= factor
	}
	return nil
}

// Unscale multiplies every value of the column by factor in place, undoing Scale.
func (t *Table) Unscale(name string, factor float64) error {
	col, err := t.Column(name)
	if err != nil {
		return err
	}
	for i := range col {
		col[i] *= factor
	}
	return nil
}

// Permute returns a copy of the table with its rows in a random order.
func (t *Table) Permute(rng *rand.Rand) *Table {
	order := rng.Perm(t.rows)
	return t.pick(order)
}

// Rows returns a copy of the rows in [start, end).
func (t *Table) Rows(start, end int) *Table {
	if start < 0 {
		start = 0
	}
	if end > t.rows {
		end = t.rows
	}
	if end < start {
		end = start
	}
	order := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		order = append(order, i)
	}
	return t.pick(order)
}

// Head returns the first n rows.
func (t *Table) Head(n int) *Table {
	return t.Rows(0, n)
}

// SplitTail splits off the last floor(fraction*Len()) rows. Rows keep their
// order; nothing is shuffled here.
func (t *Table) SplitTail(fraction float64) (head, tail *Table, err error) {
	if fraction < 0 || fraction >= 1 {
		return nil, nil, fmt.Errorf("split %v: %w", fraction, ErrInvalidSplit)
	}
	cut := t.rows - ValidationRows(t.rows, fraction)
	return t.Rows(0, cut), t.Rows(cut, t.rows), nil
}

// ValidationRows is the number of rows a tail split of fraction holds out.
func ValidationRows(n int, fraction float64) int {
	return int(fraction * float64(n))
}

func (t *Table) pick(order []int) *Table {
	out := &Table{
		names:   t.Names(),
		columns: make(map[string][]float64, len(t.names)),
		rows:    len(order),
	}
	for _, name := range t.names {
		src := t.columns[name]
		dst := make([]float64, len(order))
		for i, row := range order {
			dst[i] = src[row]
		}
		out.columns[name] = dst
	}
	return out
}
