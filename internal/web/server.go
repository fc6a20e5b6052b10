package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/emiliopalmerini/housefit/internal/pipeline"
	"github.com/emiliopalmerini/housefit/internal/web/templates"
)

const (
	modelPath = "/plots/" + pipeline.ModelFile
	lossPath  = "/plots/" + pipeline.LossFile
)

// Server serves the report of one finished run.
type Server struct {
	router    chi.Router
	addr      string
	artifacts *pipeline.Artifacts
}

// NewServer creates a server for artifacts listening on addr.
func NewServer(addr string, a *pipeline.Artifacts) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		addr:      addr,
		artifacts: a,
	}
	s.setupRoutes()
	return s
}

// Handler returns the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.router.Get("/", templ.Handler(templates.Report(s.artifacts.Report(modelPath, lossPath))).ServeHTTP)
	s.router.Get(modelPath, s.servePNG(s.artifacts.ModelPNG))
	s.router.Get(lossPath, s.servePNG(s.artifacts.LossPNG))

	s.router.Get("/api/history", s.handleHistory)
}

func (s *Server) servePNG(data []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if len(data) == 0 {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(data)
	}
}

type historyResponse struct {
	RunID         string      `json:"run_id"`
	Epochs        []int       `json:"epochs"`
	RMSE          []float64   `json:"rmse"`
	HasValidation bool        `json:"has_validation"`
	ValRMSE       []float64   `json:"val_rmse,omitempty"`
	Weight        float64     `json:"weight"`
	Bias          float64     `json:"bias"`
	Test          *testResult `json:"test,omitempty"`
}

type testResult struct {
	Loss float64 `json:"loss"`
	RMSE float64 `json:"rmse"`
	MAE  float64 `json:"mae"`
	R2   float64 `json:"r2"`
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	a := s.artifacts
	h := a.Result.History
	resp := historyResponse{
		RunID:         a.RunID,
		Epochs:        h.Epochs(),
		RMSE:          h.RMSE(),
		HasValidation: h.HasValidation,
		ValRMSE:       h.ValRMSE(),
		Weight:        a.Result.Weight,
		Bias:          a.Result.Bias,
	}
	if a.Test != nil {
		resp.Test = &testResult{Loss: a.Test.Loss, RMSE: a.Test.RMSE, MAE: a.Test.MAE, R2: a.Test.R2}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Start serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         s.addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	fmt.Printf("Serving report at http://localhost%s\n", s.addr)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			fmt.Printf("Server shutdown error: %v\n", err)
		}
	}()

	err := server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
