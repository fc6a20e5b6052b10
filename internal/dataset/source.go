package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	TrainURL = "https://download.mlcc.google.com/mledu-datasets/california_housing_train.csv"
	TestURL  = "https://download.mlcc.google.com/mledu-datasets/california_housing_test.csv"
)

// HTTPSource fetches a CSV over HTTP.
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource creates a source for url. A nil client gets a default one
// with a 60s timeout.
func NewHTTPSource(url string, client *http.Client) *HTTPSource {
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	return &HTTPSource{url: url, client: client}
}

func (s *HTTPSource) Location() string {
	return s.url
}

// Open issues the GET request and returns the response body.
func (s *HTTPSource) Open(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", s.url, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("fetching %s: unexpected status %s", s.url, resp.Status)
	}
	return resp.Body, nil
}
