// Package source locates agent session logs on disk. Providers know the
// default root of one agent's log layout; an explicit path overrides it.
package source

// Source is the interface all session-log source providers implement.
type Source interface {
	// Discover returns the .jsonl files to ingest, sorted. A missing root
	// yields an empty list, not an error.
	Discover(cfg Config) ([]string, error)
}

// Config holds discovery settings shared by all providers.
type Config struct {
	// Path points at a .jsonl file or a directory to search. Empty means
	// the provider's default root. A leading ~ expands to the home dir.
	Path string

	// Pattern is the glob applied under a directory Path.
	// Default: **/*.jsonl (recursive).
	Pattern string
}

// DefaultPattern matches session files recursively under a root.
const DefaultPattern = "**/*.jsonl"
