package stdout

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Output writes documents to stdout, for piping into pagers or other tools.
type Output struct {
	w io.Writer
}

// New creates a stdout Output.
func New() *Output {
	return &Output{w: os.Stdout}
}

func (o *Output) Write(_ context.Context, doc string) error {
	if _, err := fmt.Fprintln(o.w, doc); err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
