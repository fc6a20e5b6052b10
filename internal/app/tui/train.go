package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/emiliopalmerini/housefit/internal/domain"
	"github.com/emiliopalmerini/housefit/internal/pkg/tui/components"
	"github.com/emiliopalmerini/housefit/internal/pkg/tui/theme"
)

// EpochMsg reports a finished epoch to the view.
type EpochMsg struct {
	Record        domain.EpochRecord
	HasValidation bool
}

// DoneMsg ends the view once the run returns.
type DoneMsg struct {
	Err error
}

// TrainView shows live training progress.
type TrainView struct {
	progress  components.Progress
	records   []domain.EpochRecord
	validated bool
	done      bool
	canceled  bool
	err       error
	help      components.HelpBar
	styles    *theme.Styles
}

// NewTrainView creates a view for a run of epochs epochs.
func NewTrainView(epochs int) *TrainView {
	return &TrainView{
		progress: components.NewProgress(epochs, 30),
		help:     components.NewHelpBar(components.KeyBinding{Key: "q", Desc: "cancel"}),
		styles:   theme.Default(),
	}
}

// Canceled reports whether the user quit before the run finished.
func (v *TrainView) Canceled() bool {
	return v.canceled
}

// Init implements tea.Model
func (v *TrainView) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (v *TrainView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if !v.done {
				v.canceled = true
			}
			return v, tea.Quit
		}

	case EpochMsg:
		v.records = append(v.records, msg.Record)
		v.validated = msg.HasValidation
		v.progress.SetCurrent(len(v.records))

	case DoneMsg:
		v.done = true
		v.err = msg.Err
		return v, tea.Quit
	}
	return v, nil
}

// View implements tea.Model
func (v *TrainView) View() string {
	lines := []string{
		v.styles.Title.Render("Training"),
		v.progress.View(),
	}

	if n := len(v.records); n > 0 {
		last := v.records[n-1]
		rmse := make([]float64, n)
		for i, r := range v.records {
			rmse[i] = r.RMSE
		}
		lines = append(lines,
			"",
			v.styles.Label.Render("epoch")+v.styles.Value.Render(fmt.Sprintf("%d", last.Epoch)),
			v.styles.Label.Render("rmse")+v.styles.Training.Render(fmt.Sprintf("%.2f", last.RMSE)),
		)
		if v.validated {
			lines = append(lines, v.styles.Label.Render("val rmse")+v.styles.Validation.Render(fmt.Sprintf("%.2f", last.ValRMSE)))
		}
		lines = append(lines, v.styles.Training.Render(components.RenderSparkline(rmse)))
	}

	switch {
	case v.err != nil:
		lines = append(lines, "", v.styles.Error.Render("failed: "+v.err.Error()))
	case v.done:
		lines = append(lines, "", v.styles.Success.Render("done"))
	default:
		lines = append(lines, "", v.help.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, strings.Join(lines, "\n")) + "\n"
}
