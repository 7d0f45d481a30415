package file

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Option configures a file Output.
type Option func(*Output)

// WithClock overrides the timestamp source used in generated filenames.
func WithClock(now func() time.Time) Option {
	return func(o *Output) { o.now = now }
}

// Output writes each document to a timestamped markdown file under a
// directory, creating the directory on first write.
type Output struct {
	mu       sync.Mutex
	dir      string
	prefix   string
	now      func() time.Time
	lastPath string
}

// New creates a file output writing <prefix>-YYYYmmdd-HHMMSS.md under dir.
func New(dir, prefix string, opts ...Option) *Output {
	o := &Output{
		dir:    dir,
		prefix: prefix,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Write persists the document to a freshly named file.
func (o *Output) Write(_ context.Context, doc string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := os.MkdirAll(o.dir, 0755); err != nil {
		return fmt.Errorf("file output: mkdir %s: %w", o.dir, err)
	}

	name := fmt.Sprintf("%s-%s.md", o.prefix, o.now().Format("20060102-150405"))
	path := filepath.Join(o.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("file output: create %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	if _, err := w.WriteString(doc); err != nil {
		f.Close()
		return fmt.Errorf("file output: write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("file output: flush %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("file output: close %s: %w", path, err)
	}

	o.lastPath = path
	return nil
}

// Path returns where the last document was written, or "" before any write.
func (o *Output) Path() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.lastPath
}

// Close is a no-op: files are closed per write.
func (o *Output) Close() error {
	return nil
}
