package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/emiliopalmerini/housefit/internal/domain"
	"github.com/emiliopalmerini/housefit/internal/pipeline"
	"github.com/emiliopalmerini/housefit/internal/training"
)

func testArtifacts(t *testing.T) *pipeline.Artifacts {
	t.Helper()
	train, err := domain.NewTable([]string{"median_income", "median_house_value"}, [][]float64{{1, 2}, {100, 200}})
	if err != nil {
		t.Fatal(err)
	}
	h := domain.History{HasValidation: true}
	h.Append(domain.EpochRecord{Epoch: 0, RMSE: 150, ValRMSE: 160})
	h.Append(domain.EpochRecord{Epoch: 1, RMSE: 90, ValRMSE: 95})
	return &pipeline.Artifacts{
		RunID:    "7d1c2a9e-1111-4000-8000-000000000000",
		Hyper:    domain.DefaultHyperparameters(),
		Train:    train,
		TestSet:  train,
		Result:   &training.Result{History: h, Weight: 40, Bias: 45},
		Test:     &domain.Eval{Loss: 8100, RMSE: 90, MAE: 70, R2: 0.4},
		ModelPNG: []byte("\x89PNG model"),
	}
}

func TestServer_Routes(t *testing.T) {
	srv := httptest.NewServer(NewServer(":0", testArtifacts(t)).Handler())
	defer srv.Close()

	tests := []struct {
		name        string
		path        string
		status      int
		contentType string
		body        string
	}{
		{"health", "/health", http.StatusOK, "", "ok"},
		{"report", "/", http.StatusOK, "text/html", `src="/plots/model.png"`},
		{"model plot", "/plots/model.png", http.StatusOK, "image/png", "PNG model"},
		{"missing loss plot", "/plots/loss.png", http.StatusNotFound, "", ""},
		{"history", "/api/history", http.StatusOK, "application/json", `"run_id":"7d1c2a9e`},
		{"unknown", "/nope", http.StatusNotFound, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tt.path)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			if tt.contentType != "" && !strings.HasPrefix(resp.Header.Get("Content-Type"), tt.contentType) {
				t.Errorf("Content-Type = %q, want %q", resp.Header.Get("Content-Type"), tt.contentType)
			}
			if tt.body != "" {
				body, err := io.ReadAll(resp.Body)
				if err != nil {
					t.Fatal(err)
				}
				if !strings.Contains(string(body), tt.body) {
					t.Errorf("body missing %q:\n%s", tt.body, body)
				}
			}
		})
	}
}

func TestServer_History(t *testing.T) {
	rec := httptest.NewRecorder()
	NewServer(":0", testArtifacts(t)).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/history", nil))

	var got historyResponse
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.HasValidation || len(got.Epochs) != 2 || got.RMSE[1] != 90 || got.ValRMSE[1] != 95 {
		t.Errorf("history = %+v", got)
	}
	if got.Test == nil || got.Test.RMSE != 90 {
		t.Errorf("test = %+v", got.Test)
	}
	if got.Weight != 40 || got.Bias != 45 {
		t.Errorf("weight, bias = %v, %v", got.Weight, got.Bias)
	}
}
