package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/emiliopalmerini/housefit/internal/pipeline"
	"github.com/emiliopalmerini/housefit/internal/pkg/tui/components"
	"github.com/emiliopalmerini/housefit/internal/pkg/tui/theme"
)

// renderSummary draws the run summary card.
func renderSummary(a *pipeline.Artifacts) string {
	s := theme.Default()
	row := func(label, value string) string {
		return s.Label.Render(label) + s.Value.Render(value)
	}

	lines := []string{
		s.Title.Render("Run " + shortID(a.RunID)),
		row("model", fmt.Sprintf("y = %.4f x + %.4f", a.Result.Weight, a.Result.Bias)),
		row("epochs", fmt.Sprintf("%d", a.Result.History.Len())),
		row("train rows", fmt.Sprintf("%d", a.Train.Len())),
		row("test rows", fmt.Sprintf("%d", a.TestSet.Len())),
	}

	if last, ok := a.Result.History.Last(); ok {
		lines = append(lines, row("final rmse", fmt.Sprintf("%.2f", last.RMSE)))
		if a.Result.History.HasValidation {
			lines = append(lines, row("final val rmse", fmt.Sprintf("%.2f", last.ValRMSE)))
		}
	}
	if a.Test != nil {
		lines = append(lines,
			row("test rmse", fmt.Sprintf("%.2f", a.Test.RMSE)),
			row("test mae", fmt.Sprintf("%.2f", a.Test.MAE)),
			row("test r2", fmt.Sprintf("%.4f", a.Test.R2)),
		)
	}
	if a.Spread == nil {
		lines = append(lines, s.Warning.Render("loss curve skipped: fewer than two epochs"))
	}
	if rmse := a.Result.History.RMSE(); len(rmse) > 1 {
		lines = append(lines, "", s.Label.Render("rmse")+s.Training.Render(components.RenderSparkline(rmse)))
	}
	lines = append(lines, s.Muted.Render(fmt.Sprintf("took %s", a.Duration.Round(time.Millisecond))))

	return s.Card.Render(lipgloss.JoinVertical(lipgloss.Left, strings.Join(lines, "\n")))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
