package domain

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func TestHistory_Series(t *testing.T) {
	var h History
	h.HasValidation = true
	h.Append(EpochRecord{Epoch: 0, RMSE: 10, ValRMSE: 11})
	h.Append(EpochRecord{Epoch: 1, RMSE: 5, ValRMSE: 6})

	if h.Len() != 2 {
		t.Fatalf("Len = %d, want 2", h.Len())
	}
	if got := h.RMSE(); got[0] != 10 || got[1] != 5 {
		t.Errorf("RMSE() = %v", got)
	}
	if got := h.ValRMSE(); got[0] != 11 || got[1] != 6 {
		t.Errorf("ValRMSE() = %v", got)
	}
	if got := h.Epochs(); got[1] != 1 {
		t.Errorf("Epochs() = %v", got)
	}
	last, ok := h.Last()
	if !ok || last.Epoch != 1 {
		t.Errorf("Last() = %+v, %v", last, ok)
	}
}

func TestHistory_NoValidation(t *testing.T) {
	h := History{}
	h.Append(EpochRecord{Epoch: 0, RMSE: 1})
	if h.ValRMSE() != nil {
		t.Error("ValRMSE() must be nil without validation rows")
	}
	if _, ok := (&History{}).Last(); ok {
		t.Error("Last() on empty history must report false")
	}
}

func TestEval_Check(t *testing.T) {
	ok := Eval{Loss: 1, RMSE: 1, MAE: 1, R2: 0.5}
	if err := ok.Check(); err != nil {
		t.Errorf("Check() = %v", err)
	}
	bad := Eval{Loss: math.NaN()}
	if err := bad.Check(); err != ErrNaN {
		t.Errorf("Check() = %v, want ErrNaN", err)
	}
}

func TestEpochRecord_JSONKeepsZeroValidation(t *testing.T) {
	b, err := json.Marshal(EpochRecord{Epoch: 2, RMSE: 1.5, ValRMSE: 0})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"val_root_mean_squared_error":0`) {
		t.Errorf("json = %s, want the zero validation RMSE kept", b)
	}
}
