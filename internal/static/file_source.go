package static

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// fileSource implements Source over a local directory.
type fileSource struct {
	dir    string
	logger zerolog.Logger
}

// NewFileSource creates a source reading files from dir.
func NewFileSource(dir string, logger zerolog.Logger) Source {
	return &fileSource{
		dir:    dir,
		logger: logger.With().Str("component", "static-file-source").Logger(),
	}
}

// Load reads name from the directory. Names containing a path separator are
// treated as missing so requests cannot escape dir.
func (s *fileSource) Load(ctx context.Context, name string) ([]byte, error) {
	if name == "" || filepath.Base(name) != name {
		return nil, ErrNotFound
	}

	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug().Str("file", path).Msg("static file not found")
			return nil, ErrNotFound
		}
		s.logger.Error().Err(err).Str("file", path).Msg("failed to read static file")
		return nil, fmt.Errorf("failed to read static file %s: %w", path, err)
	}

	return data, nil
}
