package codex

import (
	"github.com/mossline/scribe/internal/source"
)

// DefaultRoot is where the Codex CLI writes session JSONL files.
const DefaultRoot = "~/.codex/sessions"

func init() {
	source.Register("codex", func() source.Source {
		return &Source{}
	})
}

// Source discovers Codex CLI session logs.
type Source struct{}

func (s *Source) Discover(cfg source.Config) ([]string, error) {
	root := cfg.Path
	if root == "" {
		root = DefaultRoot
	}
	return source.DiscoverFiles(root, cfg.Pattern)
}
