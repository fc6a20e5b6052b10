package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/emiliopalmerini/housefit/internal/domain"
)

func TestTrainView_TracksEpochs(t *testing.T) {
	v := NewTrainView(3)
	v.Update(EpochMsg{Record: domain.EpochRecord{Epoch: 0, RMSE: 200, ValRMSE: 210}, HasValidation: true})
	v.Update(EpochMsg{Record: domain.EpochRecord{Epoch: 1, RMSE: 120, ValRMSE: 125}, HasValidation: true})

	out := v.View()
	for _, want := range []string{"2/3", "120.00", "125.00", ":cancel"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
}

func TestTrainView_ValidationLine(t *testing.T) {
	tests := []struct {
		name          string
		hasValidation bool
		want          bool
	}{
		{"zero validation rmse is shown", true, true},
		{"no validation rows", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewTrainView(2)
			v.Update(EpochMsg{Record: domain.EpochRecord{Epoch: 0, RMSE: 4, ValRMSE: 0}, HasValidation: tt.hasValidation})
			if got := strings.Contains(v.View(), "val rmse"); got != tt.want {
				t.Errorf("val rmse shown = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrainView_DoneQuits(t *testing.T) {
	v := NewTrainView(1)
	_, cmd := v.Update(DoneMsg{})
	if cmd == nil {
		t.Fatal("DoneMsg should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("DoneMsg should quit the program")
	}
	if v.Canceled() {
		t.Error("a finished run is not canceled")
	}
	if !strings.Contains(v.View(), "done") {
		t.Error("view should report completion")
	}
}

func TestTrainView_Error(t *testing.T) {
	v := NewTrainView(1)
	v.Update(DoneMsg{Err: errors.New("loss diverged")})
	if !strings.Contains(v.View(), "failed: loss diverged") {
		t.Errorf("view = %q", v.View())
	}
}

func TestTrainView_Cancel(t *testing.T) {
	v := NewTrainView(5)
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil || !v.Canceled() {
		t.Error("ctrl+c should cancel the run")
	}
}
