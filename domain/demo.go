package domain

import (
	"context"
	"io"
)

// Demo is one runnable pattern demonstration
type Demo interface {
	// Name is the kind the demo was created from, e.g. "builder".
	Name() string
	// Run writes the demo's output to w.
	Run(ctx context.Context, w io.Writer) error
}
