package training

import (
	"errors"
	"math"
	"testing"

	"github.com/emiliopalmerini/housefit/internal/domain"
	"github.com/emiliopalmerini/housefit/internal/model"
)

func TestEvaluate(t *testing.T) {
	tbl, _ := domain.NewTable([]string{"x", "y"}, [][]float64{{0, 1, 2, 3}, {1, 3, 5, 8}})
	m := model.Build(0, model.WithParams(2, 1))

	// residuals 0, 0, 0, -1
	ev, err := Evaluate(m, tbl, "x", "y")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if ev.Loss != 0.25 {
		t.Errorf("loss = %v, want 0.25", ev.Loss)
	}
	if ev.RMSE != 0.5 {
		t.Errorf("rmse = %v, want 0.5", ev.RMSE)
	}
	if ev.MAE != 0.25 {
		t.Errorf("mae = %v, want 0.25", ev.MAE)
	}
	// mean 4.25, total sum of squares 26.75
	if math.Abs(ev.R2-(1-1/26.75)) > 1e-12 {
		t.Errorf("r2 = %v", ev.R2)
	}
}

func TestEvaluate_ConstantLabel(t *testing.T) {
	tbl, _ := domain.NewTable([]string{"x", "y"}, [][]float64{{0, 1}, {2, 2}})
	ev, err := Evaluate(model.Build(0, model.WithParams(0, 2)), tbl, "x", "y")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if ev.Loss != 0 || ev.R2 != 0 {
		t.Errorf("eval = %+v, want zero loss and r2", ev)
	}
}

func TestEvaluate_Errors(t *testing.T) {
	empty, _ := domain.NewTable([]string{"x", "y"}, [][]float64{{}, {}})
	m := model.Build(0, model.WithParams(1, 0))
	if _, err := Evaluate(m, empty, "x", "y"); !errors.Is(err, domain.ErrEmptyTable) {
		t.Errorf("error = %v, want ErrEmptyTable", err)
	}

	tbl, _ := domain.NewTable([]string{"x"}, [][]float64{{1}})
	if _, err := Evaluate(m, tbl, "x", "y"); !errors.Is(err, domain.ErrColumnNotFound) {
		t.Errorf("error = %v, want ErrColumnNotFound", err)
	}
}
