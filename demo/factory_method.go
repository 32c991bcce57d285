package demo

import (
	"context"
	"creational/domain"
	"creational/shape"
	"io"
	"log/slog"
)

// FactoryMethodDemo draws shapes created by kind, then optionally the same
// shapes dispatched through the sum type.
type FactoryMethodDemo struct {
	kinds    []shape.Kind
	variants bool
}

// compile-time assertion that FactoryMethodDemo implements domain.Demo
var _ domain.Demo = (*FactoryMethodDemo)(nil)

// NewFactoryMethodDemo resolves shape names; an empty list means circle then
// rectangle.
func NewFactoryMethodDemo(shapes []string, variants bool) (*FactoryMethodDemo, error) {
	d := &FactoryMethodDemo{kinds: shape.Kinds(), variants: variants}
	if len(shapes) > 0 {
		d.kinds = make([]shape.Kind, 0, len(shapes))
		for _, name := range shapes {
			k, err := shape.ParseKind(name)
			if err != nil {
				return nil, err
			}
			d.kinds = append(d.kinds, k)
		}
	}
	return d, nil
}

// Name implements domain.Demo.
func (d *FactoryMethodDemo) Name() string { return "factory-method" }

// Run draws each kind via Create, then via the sum type when enabled.
func (d *FactoryMethodDemo) Run(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, k := range d.kinds {
		s, ok := shape.Create(k)
		if !ok {
			slog.Warn("no shape for kind", "kind", k)
			continue
		}
		s.Draw(w)
	}
	if !d.variants {
		return nil
	}
	for _, k := range d.kinds {
		v, ok := shape.VariantFor(k)
		if !ok {
			slog.Warn("no variant for kind", "kind", k)
			continue
		}
		v.Draw(w)
	}
	return nil
}
