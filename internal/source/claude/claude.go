package claude

import (
	"github.com/mossline/scribe/internal/source"
)

// DefaultRoot is where Claude Code writes per-project session JSONL files.
const DefaultRoot = "~/.claude/projects"

func init() {
	source.Register("claude", func() source.Source {
		return &Source{}
	})
}

// Source discovers Claude Code session logs.
type Source struct{}

func (s *Source) Discover(cfg source.Config) ([]string, error) {
	root := cfg.Path
	if root == "" {
		root = DefaultRoot
	}
	return source.DiscoverFiles(root, cfg.Pattern)
}
