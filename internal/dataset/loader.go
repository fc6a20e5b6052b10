// Package dataset loads the housing tables.
package dataset

import (
	"context"
	"fmt"
	"log"

	"github.com/emiliopalmerini/housefit/internal/domain"
	"github.com/emiliopalmerini/housefit/internal/ports"
)

// Loader fetches the train and test tables and scales their label column.
type Loader struct {
	Train       ports.TableSource
	Test        ports.TableSource
	Label       string
	ScaleFactor float64
}

// NewLoader creates a loader that divides label by scaleFactor in both tables.
func NewLoader(train, test ports.TableSource, label string, scaleFactor float64) *Loader {
	return &Loader{
		Train:       train,
		Test:        test,
		Label:       label,
		ScaleFactor: scaleFactor,
	}
}

// Load fetches train then test. There is no retry: any failure is returned.
func (l *Loader) Load(ctx context.Context) (train, test *domain.Table, err error) {
	train, err = l.load(ctx, l.Train)
	if err != nil {
		return nil, nil, fmt.Errorf("loading train set: %w", err)
	}
	test, err = l.load(ctx, l.Test)
	if err != nil {
		return nil, nil, fmt.Errorf("loading test set: %w", err)
	}
	return train, test, nil
}

func (l *Loader) load(ctx context.Context, src ports.TableSource) (*domain.Table, error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	table, err := ParseCSV(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Location(), err)
	}
	if err := table.Scale(l.Label, l.ScaleFactor); err != nil {
		return nil, fmt.Errorf("%s: %w", src.Location(), err)
	}
	log.Printf("Loaded %d rows from %s", table.Len(), src.Location())
	return table, nil
}
