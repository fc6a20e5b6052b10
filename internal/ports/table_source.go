package ports

import (
	"context"
	"io"
)

// TableSource opens the raw CSV bytes of one dataset.
type TableSource interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	// Location names the source in errors and logs.
	Location() string
}
