package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/emiliopalmerini/housefit/internal/domain"
)

func testReport() ReportData {
	h := domain.History{HasValidation: true}
	h.Append(domain.EpochRecord{Epoch: 0, RMSE: 120.5, ValRMSE: 121})
	h.Append(domain.EpochRecord{Epoch: 1, RMSE: 84.25, ValRMSE: 85})
	return ReportData{
		RunID:           "3f2b9c1e-0000-4000-8000-000000000000",
		Hyperparameters: domain.DefaultHyperparameters(),
		Weight:          41.5,
		Bias:            43.25,
		History:         h,
		Test:            &domain.Eval{Loss: 7000, RMSE: 83.67, MAE: 62, R2: 0.48},
		LossDelta:       1.5,
		ModelImage:      "model.png",
		LossImage:       "loss.png",
	}
}

func render(t *testing.T, d ReportData) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Report(d).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return buf.String()
}

func TestReport_Render(t *testing.T) {
	out := render(t, testReport())
	for _, want := range []string{
		"<!doctype html>",
		"<title>housefit run 3f2b9c1e</title>",
		"y = 41.5000 &middot; x + 43.2500",
		`<img src="model.png"`,
		`<img src="loss.png"`,
		"<th>val rmse</th>",
		"<td>84.25</td>",
		"<td>83.67</td>",
		"median_income",
		"<td>30%</td>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestReport_WithoutValidationOrTest(t *testing.T) {
	d := testReport()
	d.History.HasValidation = false
	d.Test = nil
	d.LossImage = ""

	out := render(t, d)
	if strings.Contains(out, "val rmse") {
		t.Error("validation column rendered without validation rows")
	}
	if strings.Contains(out, "Test set") {
		t.Error("test section rendered without an evaluation")
	}
	if strings.Contains(out, "Loss curve") {
		t.Error("loss section rendered without an image")
	}
}

func TestReport_EscapesInput(t *testing.T) {
	d := testReport()
	d.Hyperparameters.Feature = "<script>alert(1)</script>"
	d.ModelImage = "javascript:alert(1)"

	out := render(t, d)
	if strings.Contains(out, "<script>") {
		t.Error("feature name was not escaped")
	}
	if strings.Contains(out, "javascript:") {
		t.Error("unsafe image source was rendered")
	}
}

func TestImageSrc(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"model.png", "model.png"},
		{"/plots/loss.png", "/plots/loss.png"},
		{"https://example.com/a.png", "https://example.com/a.png"},
		{"data:image/png;base64,AAAA", "about:invalid"},
	}
	for _, tt := range tests {
		if got := imageSrc(tt.in); got != tt.want {
			t.Errorf("imageSrc(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
