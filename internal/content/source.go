package content

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"

	"guide-backend/internal/shared/storage/object"
	"guide-backend/internal/shared/util"
)

//go:embed data/*.yaml
var embedded embed.FS

// Object keys of the three content files.
const (
	CareersFile  = "careers.yaml"
	ShoulderFile = "shoulder.yaml"
	ResortsFile  = "resorts.yaml"
)

// EmbeddedSource serves the content files compiled into the binary.
type EmbeddedSource struct{}

// Open opens an embedded content file.
func (EmbeddedSource) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	clean, err := util.SanitizeKey(key)
	if err != nil {
		return nil, err
	}
	f, err := embedded.Open(path.Join("data", clean))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("open %s: %w", clean, object.ErrNotFound)
		}
		return nil, err
	}
	return f, nil
}

var _ object.Reader = EmbeddedSource{}
