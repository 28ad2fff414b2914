package interfaces

import (
	"context"

	"github.com/haytac/emojipack/internal/emoji"
	"github.com/haytac/emojipack/internal/snippet"
)

// Source loads the emoji dataset. Abstracted so tests can substitute fixed
// fixtures for the live endpoint.
type Source interface {
	// Load returns records in source order, truncated to limit when
	// limit > 0.
	Load(ctx context.Context, limit int) ([]emoji.Record, error)

	// LoadRaw returns the rows unbound from the Record schema, for the
	// dataset key census.
	LoadRaw(ctx context.Context) ([]map[string]any, error)
}

// PackageWriter serializes assembled snippets into the output archive.
type PackageWriter interface {
	Write(snippets []snippet.Snippet, cfg snippet.PackageConfig) error
}
