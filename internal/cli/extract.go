package cli

import (
	"context"
	"fmt"

	"github.com/mossline/scribe/internal/config"
	"github.com/mossline/scribe/internal/engine"
	"github.com/mossline/scribe/internal/logging"
	"github.com/mossline/scribe/internal/output"
	"github.com/mossline/scribe/internal/output/file"
	"github.com/mossline/scribe/internal/output/stdout"
	"github.com/mossline/scribe/internal/pipeline"
	"github.com/mossline/scribe/internal/source"
)

// runExtract performs one extraction run with the resolved configuration.
func runExtract(ctx context.Context, cfg config.Config) error {
	log := logging.New(cfg.Log)

	ctor, err := source.Get(cfg.Source.Provider)
	if err != nil {
		return err
	}
	src := ctor()

	var out output.Output
	var fileOut *file.Output
	switch cfg.Output.Mode {
	case "stdout":
		out = stdout.New()
	case "file":
		fileOut = file.New(cfg.Output.Dir, cfg.Output.Prefix)
		out = fileOut
	default:
		return fmt.Errorf("unknown output mode: %s", cfg.Output.Mode)
	}

	p := pipeline.New(src, engine.New(), out, log)
	defer p.Close()

	log.Info().Str("source", cfg.Source.Provider).Msg("starting extraction")
	stats, err := p.Run(ctx, source.Config{Path: cfg.Source.Path, Pattern: cfg.Source.Pattern})
	if err != nil {
		return fmt.Errorf("extraction: %w", err)
	}

	summary := log.Info().
		Int("files", stats.Files).
		Int("lines", stats.Lines).
		Int("skipped", stats.Skipped).
		Int("messages", stats.Messages)
	if fileOut != nil {
		summary = summary.Str("written", fileOut.Path())
	}
	summary.Msg("extraction complete")
	return nil
}
