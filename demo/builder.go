package demo

import (
	"context"
	"creational/domain"
	"creational/house"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats for houses.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ParseFormat normalises an output format; empty means text.
func ParseFormat(format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", domain.NewInvalidOptionError("format", "must be text, json or yaml", format)
	}
}

// WriteHouses writes houses to w: one summary line each for text, a single
// array for json, a single sequence for yaml.
func WriteHouses(w io.Writer, format string, houses []house.House) error {
	format, err := ParseFormat(format)
	if err != nil {
		return err
	}
	switch format {
	case FormatJSON:
		b, err := json.MarshalIndent(houses, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(houses); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, h := range houses {
			if _, err := fmt.Fprintln(w, h); err != nil {
				return err
			}
		}
		return nil
	}
}

type namedRecipe struct {
	name   string
	recipe house.Recipe
}

// BuilderDemo builds one house per recipe with a single shared builder.
type BuilderDemo struct {
	recipes []namedRecipe
	format  string
}

// compile-time assertion that BuilderDemo implements domain.Demo
var _ domain.Demo = (*BuilderDemo)(nil)

// NewBuilderDemo resolves recipe names; an empty list means simple then luxury.
func NewBuilderDemo(recipes []string, format string) (*BuilderDemo, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		recipes = house.RecipeNames()
	}

	d := &BuilderDemo{format: f}
	for _, name := range recipes {
		r, err := house.RecipeByName(name)
		if err != nil {
			return nil, err
		}
		d.recipes = append(d.recipes, namedRecipe{name: strings.ToLower(strings.TrimSpace(name)), recipe: r})
	}
	return d, nil
}

// Name implements domain.Demo.
func (d *BuilderDemo) Name() string { return "builder" }

// Run builds every recipe with one builder and writes the houses.
func (d *BuilderDemo) Run(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b := house.NewBuilder()
	houses := make([]house.House, 0, len(d.recipes))
	for _, nr := range d.recipes {
		h := nr.recipe(b)
		slog.Debug("house built", "recipe", nr.name, "walls", h.Walls, "roof", h.Roof)
		houses = append(houses, h)
	}
	return WriteHouses(w, d.format, houses)
}
