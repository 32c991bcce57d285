// Package demo wires the pattern packages into runnable client programs.
package demo

import (
	"creational/domain"
	"strings"
)

// Config selects what each demo exercises. Zero values fall back to the
// defaults: both platforms, both recipes, both shapes, sum-type pass enabled,
// text output.
type Config struct {
	Platforms    []string
	Recipes      []string
	Shapes       []string
	SkipVariants bool
	Format       string
}

// Names lists the demo kinds in run order.
func Names() []string {
	return []string{"abstract-factory", "builder", "factory-method"}
}

// NewDemo constructs a domain.Demo by kind: "abstract-factory", "builder" or
// "factory-method" (short forms "af", "b", "fm"), case-insensitively.
func NewDemo(kind string, cfg Config) (domain.Demo, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "abstract-factory", "af":
		return NewAbstractFactoryDemo(cfg.Platforms)
	case "builder", "b":
		return NewBuilderDemo(cfg.Recipes, cfg.Format)
	case "factory-method", "fm":
		return NewFactoryMethodDemo(cfg.Shapes, !cfg.SkipVariants)
	default:
		return nil, domain.NewUnknownKindError("demo", kind)
	}
}
