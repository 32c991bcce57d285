// Package house demonstrates the Builder pattern: a House assembled step by
// step through a fluent Builder, optionally driven by a fixed recipe.
package house

import "fmt"

// House is a plain aggregate; any string is accepted for any field.
type House struct {
	Walls   string `json:"walls" yaml:"walls"`
	Doors   string `json:"doors" yaml:"doors"`
	Windows string `json:"windows" yaml:"windows"`
	Roof    string `json:"roof" yaml:"roof"`
}

// String summarises the house in walls, doors, windows, roof order.
func (h House) String() string {
	return fmt.Sprintf("House with %s, %s doors, %s windows and %s roof.",
		h.Walls, h.Doors, h.Windows, h.Roof)
}
