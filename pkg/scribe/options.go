package scribe

import "github.com/rs/zerolog"

type options struct {
	provider string
	path     string
	pattern  string
	logger   zerolog.Logger
}

// Option configures an extraction run.
type Option func(*options)

// WithProvider selects the source provider ("codex" or "claude").
// Default: "codex".
func WithProvider(name string) Option {
	return func(o *options) { o.provider = name }
}

// WithPath points the run at a .jsonl file or directory instead of the
// provider's default root.
func WithPath(path string) Option {
	return func(o *options) { o.path = path }
}

// WithPattern sets the glob applied under a directory path.
// Default: **/*.jsonl.
func WithPattern(pattern string) Option {
	return func(o *options) { o.pattern = pattern }
}

// WithLogger routes skip warnings and progress to the given logger.
// Default: discard.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.logger = log }
}

func defaultOptions() options {
	return options{
		provider: "codex",
		logger:   zerolog.Nop(),
	}
}
