// Package engine drives record normalization and whole-corpus aggregation.
package engine

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/mossline/scribe/internal/engine/normalizer"
	"github.com/mossline/scribe/internal/model"
)

// Stats counts what the run consumed and kept. Counters travel by value —
// no ambient state.
type Stats struct {
	Files    int // sources opened
	Lines    int // non-empty lines scanned
	Skipped  int // unparsable or unclassifiable lines
	Messages int // canonical messages extracted
}

// ErrNotMessage marks a structurally valid record whose role does not
// resolve to the closed user/assistant set. Skipped, never fatal.
var ErrNotMessage = fmt.Errorf("record is not a chat message")

// Engine normalizes raw lines into canonical messages.
type Engine struct{}

// New creates an Engine.
func New() *Engine {
	return &Engine{}
}

// ProcessLine decodes one JSONL line and normalizes it. Decode failures
// return the decode error; valid records outside the message set return
// ErrNotMessage. Both are skip signals to the caller, not aborts.
func (e *Engine) ProcessLine(line []byte, provenance string) (model.Message, error) {
	var rec model.RawRecord
	if err := json.Unmarshal(line, &rec); err != nil {
		return model.Message{}, fmt.Errorf("decode record: %w", err)
	}
	return e.Process(rec, provenance)
}

// Process normalizes one decoded record.
func (e *Engine) Process(rec model.RawRecord, provenance string) (model.Message, error) {
	msg, ok := normalizer.Normalize(rec, provenance)
	if !ok {
		return model.Message{}, ErrNotMessage
	}
	return msg, nil
}

// Sort orders messages chronologically by raw timestamp string, ascending,
// with "" (absent) sorting first. The sort is stable: ties and timestamp-less
// messages keep their input order. Batch semantics — callers must have
// consumed the whole corpus before sorting.
func (e *Engine) Sort(messages []model.Message) {
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp < messages[j].Timestamp
	})
}
