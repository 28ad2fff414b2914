package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/haytac/emojipack/internal/config"
	"github.com/haytac/emojipack/internal/emoji"
	"github.com/haytac/emojipack/internal/snippet"
	"github.com/haytac/emojipack/pkg/interfaces"
)

// Application holds all dependencies for a pack generation run.
type Application struct {
	Config *config.AppConfig
	Source interfaces.Source
	Writer interfaces.PackageWriter
}

// NewApplication creates an application wired against the live dataset and
// the OS filesystem.
func NewApplication(cfg *config.AppConfig) *Application {
	return &Application{
		Config: cfg,
		Source: emoji.NewHTTPSource(cfg.SourceURL),
		Writer: snippet.NewWriter(afero.NewOsFs()),
	}
}

// Run executes the pipeline: load, derive, assemble, write. Strictly linear,
// one pass, no retries; the first stage failure aborts the run and its error
// carries the stage sentinel (emoji.ErrFetch, emoji.ErrParse,
// config.ErrValidation, snippet.ErrWrite).
func (a *Application) Run(ctx context.Context) error {
	if err := a.Config.Validate(); err != nil {
		return err
	}

	log.Info().Str("url", a.Config.SourceURL).Msg("Fetching emoji data")
	records, err := a.Source.Load(ctx, a.Config.Limit)
	if err != nil {
		return fmt.Errorf("loading emoji data: %w", err)
	}

	if !a.Config.KeepObsoleted {
		records = dropObsoleted(records)
	}

	log.Info().Int("records", len(records)).Msg("Assembling snippets")
	snippets, err := snippet.Assemble(records)
	if err != nil {
		return fmt.Errorf("assembling snippets: %w", err)
	}

	pkgCfg := snippet.PackageConfig{
		Prefix:            a.Config.Prefix,
		Suffix:            a.Config.Suffix,
		OutputPath:        a.Config.Output,
		AllowEmptyAffixes: a.Config.AllowEmptyAffixes,
	}
	if err := a.Writer.Write(snippets, pkgCfg); err != nil {
		return fmt.Errorf("writing snippet pack: %w", err)
	}

	log.Info().
		Int("records", len(records)).
		Int("snippets", len(snippets)).
		Str("output", a.Config.Output).
		Msg("Snippet pack generated")
	return nil
}

// dropObsoleted filters out records a newer sequence replaces, so a pack
// does not carry two snippets inserting old and new forms of the same glyph.
func dropObsoleted(records []emoji.Record) []emoji.Record {
	kept := records[:0:0]
	for _, rec := range records {
		if rec.Obsoleted() {
			log.Debug().Str("name", rec.Name).Str("obsoleted_by", rec.ObsoletedBy).Msg("Skipping obsoleted record")
			continue
		}
		kept = append(kept, rec)
	}
	return kept
}
