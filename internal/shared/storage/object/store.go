package object

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned when no object exists under the requested key.
var ErrNotFound = errors.New("object not found")

// Reader opens stored objects by key. Content bundles are read through it once at startup.
type Reader interface {
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}
