// Package scribe exposes the chat-log extraction pipeline as a library.
// It reconciles the divergent JSONL schemas written by conversational agent
// tools into one chronological markdown transcript.
package scribe

import (
	"context"
	"fmt"

	"github.com/mossline/scribe/internal/engine"
	"github.com/mossline/scribe/internal/pipeline"
	"github.com/mossline/scribe/internal/source"

	// Register source providers.
	_ "github.com/mossline/scribe/internal/source/claude"
	_ "github.com/mossline/scribe/internal/source/codex"
)

// Stats counts what an extraction run consumed and kept.
type Stats struct {
	Files    int
	Lines    int
	Skipped  int
	Messages int
}

// Result is the outcome of one extraction run.
type Result struct {
	Document string // the assembled markdown document
	Stats    Stats
}

// Extract discovers session logs, normalizes the whole corpus, and returns
// the assembled document. Unreadable files and unclassifiable records are
// skipped and counted, never fatal — the document covers whatever could be
// normalized.
func Extract(ctx context.Context, opts ...Option) (Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ctor, err := source.Get(o.provider)
	if err != nil {
		return Result{}, fmt.Errorf("scribe: %w", err)
	}
	src := ctor()

	files, err := src.Discover(source.Config{Path: o.path, Pattern: o.pattern})
	if err != nil {
		return Result{}, fmt.Errorf("scribe: %w", err)
	}

	p := pipeline.New(src, engine.New(), nil, o.logger)
	doc, stats, err := p.Extract(ctx, files)
	if err != nil {
		return Result{}, fmt.Errorf("scribe: %w", err)
	}

	return Result{
		Document: doc,
		Stats: Stats{
			Files:    stats.Files,
			Lines:    stats.Lines,
			Skipped:  stats.Skipped,
			Messages: stats.Messages,
		},
	}, nil
}
