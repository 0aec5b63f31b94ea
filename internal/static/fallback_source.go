package static

import (
	"context"

	"github.com/rs/zerolog"
)

// fallbackSource tries a remote source first, then falls back to a local one.
type fallbackSource struct {
	remote Source
	local  Source
	logger zerolog.Logger
}

// NewFallbackSource creates a source that tries remote first and falls back to local
// on any remote error, including ErrNotFound. A nil remote uses local only.
func NewFallbackSource(remote, local Source, logger zerolog.Logger) Source {
	return &fallbackSource{
		remote: remote,
		local:  local,
		logger: logger.With().Str("component", "static-fallback-source").Logger(),
	}
}

func (s *fallbackSource) Load(ctx context.Context, name string) ([]byte, error) {
	if s.remote != nil {
		data, err := s.remote.Load(ctx, name)
		if err == nil {
			return data, nil
		}

		s.logger.Warn().
			Err(err).
			Str("file", name).
			Msg("failed to load from S3, falling back to local file system")
	}

	return s.local.Load(ctx, name)
}
