package dataset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/emiliopalmerini/housefit/internal/domain"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /train.csv", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleCSV))
	})
	mux.HandleFunc("GET /test.csv", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleCSV))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestLoader_Load(t *testing.T) {
	srv := testServer(t)
	l := NewLoader(
		NewHTTPSource(srv.URL+"/train.csv", srv.Client()),
		NewHTTPSource(srv.URL+"/test.csv", srv.Client()),
		domain.DefaultLabel, domain.DefaultScaleFactor,
	)

	train, test, err := l.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	for name, table := range map[string]*domain.Table{"train": train, "test": test} {
		if table.Len() == 0 {
			t.Errorf("%s table is empty", name)
		}
		label, err := table.Column(domain.DefaultLabel)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if got := floats.Max(label); got > sampleRawMax/1000 {
			t.Errorf("%s max label = %v, want <= %v", name, got, sampleRawMax/1000)
		}
		if label[0] != 66.9 {
			t.Errorf("%s label[0] = %v, want 66.9", name, label[0])
		}
	}
}

func TestLoader_HTTPError(t *testing.T) {
	srv := testServer(t)
	l := NewLoader(
		NewHTTPSource(srv.URL+"/missing.csv", srv.Client()),
		NewHTTPSource(srv.URL+"/test.csv", srv.Client()),
		domain.DefaultLabel, domain.DefaultScaleFactor,
	)

	_, _, err := l.Load(context.Background())
	if err == nil {
		t.Fatal("expected error for 404 source")
	}
	if !strings.Contains(err.Error(), "train set") {
		t.Errorf("error should name the train set, got: %v", err)
	}
}

func TestLoader_MissingLabel(t *testing.T) {
	srv := testServer(t)
	l := NewLoader(
		NewHTTPSource(srv.URL+"/train.csv", srv.Client()),
		NewHTTPSource(srv.URL+"/test.csv", srv.Client()),
		"price", domain.DefaultScaleFactor,
	)
	if _, _, err := l.Load(context.Background()); err == nil {
		t.Fatal("expected error for missing label column")
	}
}
