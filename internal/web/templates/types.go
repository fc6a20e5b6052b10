package templates

import "github.com/emiliopalmerini/housefit/internal/domain"

// ReportData is everything the run report renders.
type ReportData struct {
	RunID           string
	Hyperparameters domain.Hyperparameters
	Weight          float64
	Bias            float64
	History         domain.History
	Test            *domain.Eval
	LossDelta       float64
	TrainRows       int
	TestRows        int
	// Image sources for the two plots, relative paths or URLs.
	ModelImage string
	LossImage  string // empty when the run was too short for a loss curve
}
