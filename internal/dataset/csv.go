package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sjwhitworth/golearn/base"

	"github.com/emiliopalmerini/housefit/internal/domain"
)

// ParseCSV reads a headered CSV where every column is numeric.
func ParseCSV(r io.Reader) (table *domain.Table, err error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, domain.ErrEmptyTable
	}
	if err := checkCells(raw); err != nil {
		return nil, err
	}

	// golearn panics on malformed rows instead of returning an error.
	defer func() {
		if p := recover(); p != nil {
			table, err = nil, fmt.Errorf("parsing csv: %v", p)
		}
	}()

	inst, err := base.ParseCSVToInstancesFromReader(bytes.NewReader(raw), true)
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}
	return fromInstances(inst)
}

func fromInstances(inst *base.DenseInstances) (*domain.Table, error) {
	_, rows := inst.Size()
	if rows == 0 {
		return nil, domain.ErrEmptyTable
	}

	attrs := inst.AllAttributes()
	names := make([]string, 0, len(attrs))
	values := make([][]float64, 0, len(attrs))
	for _, attr := range attrs {
		if _, ok := attr.(*base.FloatAttribute); !ok {
			return nil, fmt.Errorf("%q: %w", attr.GetName(), domain.ErrNonNumeric)
		}
		spec, err := inst.GetAttribute(attr)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", attr.GetName(), err)
		}
		col := make([]float64, rows)
		for i := 0; i < rows; i++ {
			col[i] = base.UnpackBytesToFloat(inst.Get(spec, i))
		}
		names = append(names, attr.GetName())
		values = append(values, col)
	}
	return domain.NewTable(names, values)
}

// checkCells rejects empty cells, which golearn would read as 0.
func checkCells(raw []byte) error {
	r := csv.NewReader(bytes.NewReader(raw))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("reading csv header: %w", err)
	}
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading csv: %w", err)
		}
		for i, cell := range record {
			if strings.TrimSpace(cell) != "" {
				continue
			}
			line, _ := r.FieldPos(i)
			name := fmt.Sprintf("#%d", i)
			if i < len(header) {
				name = header[i]
			}
			return fmt.Errorf("line %d column %q: %w", line, name, domain.ErrMissingValue)
		}
	}
}
