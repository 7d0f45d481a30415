package output

import "context"

// Output defines the interface for document destinations.
type Output interface {
	Write(ctx context.Context, doc string) error
	Close() error
}
