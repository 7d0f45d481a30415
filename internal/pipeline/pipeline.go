// Package pipeline connects a source, the engine, and an output into the
// batch extraction pipeline: discover files, normalize every line, sort the
// whole corpus, assemble one document, write it.
package pipeline

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mossline/scribe/internal/engine"
	"github.com/mossline/scribe/internal/model"
	"github.com/mossline/scribe/internal/output"
	"github.com/mossline/scribe/internal/render"
	"github.com/mossline/scribe/internal/source"
)

// Session logs routinely carry multi-megabyte lines (pasted files, tool
// results); the scanner buffer must accommodate them.
const maxLineBytes = 16 * 1024 * 1024

// Pipeline drives one extraction run.
type Pipeline struct {
	source source.Source
	engine *engine.Engine
	output output.Output
	log    zerolog.Logger
}

// New creates a Pipeline from the given components.
func New(src source.Source, eng *engine.Engine, out output.Output, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		source: src,
		engine: eng,
		output: out,
		log:    log,
	}
}

// Run executes the full batch: discover, extract, write. The run always
// produces a document for whatever could be normalized — skips and
// unreadable files are logged and counted, never fatal.
func (p *Pipeline) Run(ctx context.Context, cfg source.Config) (engine.Stats, error) {
	files, err := p.source.Discover(cfg)
	if err != nil {
		return engine.Stats{}, fmt.Errorf("pipeline discover: %w", err)
	}
	if len(files) == 0 {
		p.log.Warn().Str("path", cfg.Path).Str("pattern", cfg.Pattern).
			Msg("no .jsonl files found; use --path to point at a session file or directory")
	}

	doc, stats, err := p.Extract(ctx, files)
	if err != nil {
		return stats, err
	}
	if err := p.output.Write(ctx, doc); err != nil {
		return stats, fmt.Errorf("pipeline output: %w", err)
	}
	return stats, nil
}

// Extract collects and sorts the corpus, then assembles the document.
func (p *Pipeline) Extract(ctx context.Context, files []string) (string, engine.Stats, error) {
	messages, stats, err := p.Collect(ctx, files)
	if err != nil {
		return "", stats, err
	}
	p.engine.Sort(messages)
	return render.Document(messages), stats, nil
}

// Collect reads every file line by line and normalizes each record. The
// whole corpus is materialized in memory before any ordering is finalized.
func (p *Pipeline) Collect(ctx context.Context, files []string) ([]model.Message, engine.Stats, error) {
	var messages []model.Message
	var stats engine.Stats

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return messages, stats, err
		}
		p.log.Debug().Str("file", path).Msg("processing")

		n, err := p.collectFile(path, &messages, &stats)
		if err != nil {
			p.log.Error().Err(err).Str("file", path).Msg("skipping unreadable source")
			continue
		}
		stats.Files++
		p.log.Debug().Str("file", path).Int("lines", n).Msg("processed")
	}

	stats.Messages = len(messages)
	return messages, stats, nil
}

// collectFile scans one JSONL file, appending canonical messages and
// updating counters. Returns the number of non-empty lines scanned.
func (p *Pipeline) collectFile(path string, messages *[]model.Message, stats *engine.Stats) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	provenance := filepath.Base(path)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	lineNum := 0
	scanned := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		scanned++
		stats.Lines++

		msg, err := p.engine.ProcessLine([]byte(line), provenance)
		if err != nil {
			stats.Skipped++
			if !errors.Is(err, engine.ErrNotMessage) {
				p.log.Warn().Str("file", path).Int("line", lineNum).Err(err).
					Msg("line is not valid JSON")
			}
			continue
		}
		*messages = append(*messages, msg)
	}
	return scanned, scanner.Err()
}

// Close shuts down the output.
func (p *Pipeline) Close() error {
	return p.output.Close()
}
