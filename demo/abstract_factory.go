package demo

import (
	"context"
	"creational/domain"
	"creational/gui"
	"fmt"
	"io"
	"log/slog"
)

type platformFactory struct {
	platform gui.Platform
	factory  gui.Factory
}

// AbstractFactoryDemo renders one button and one checkbox per platform.
type AbstractFactoryDemo struct {
	factories []platformFactory
}

// compile-time assertion that AbstractFactoryDemo implements domain.Demo
var _ domain.Demo = (*AbstractFactoryDemo)(nil)

// NewAbstractFactoryDemo resolves every platform to its factory up front, so
// Run never branches on platform. An empty list means all platforms.
func NewAbstractFactoryDemo(platforms []string) (*AbstractFactoryDemo, error) {
	selected := gui.Platforms()
	if len(platforms) > 0 {
		selected = make([]gui.Platform, 0, len(platforms))
		for _, name := range platforms {
			p, err := gui.ParsePlatform(name)
			if err != nil {
				return nil, err
			}
			selected = append(selected, p)
		}
	}

	d := &AbstractFactoryDemo{}
	for _, p := range selected {
		f, err := gui.NewFactory(p)
		if err != nil {
			return nil, err
		}
		slog.Debug("factory selected", "platform", p)
		d.factories = append(d.factories, platformFactory{platform: p, factory: f})
	}
	return d, nil
}

// Name implements domain.Demo.
func (d *AbstractFactoryDemo) Name() string { return "abstract-factory" }

// Run paints each selected platform's widgets, separated by a blank line.
func (d *AbstractFactoryDemo) Run(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for i, pf := range d.factories {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Client: Testing %s GUI Factory:\n", pf.platform.Title())
		gui.Render(w, pf.factory)
	}
	return nil
}
