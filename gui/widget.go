// Package gui demonstrates the Abstract Factory pattern with a family of
// platform widgets.
package gui

import (
	"fmt"
	"io"
)

// Button is a paintable push button
type Button interface {
	Paint(w io.Writer)
}

// Checkbox is a paintable check box
type Checkbox interface {
	Paint(w io.Writer)
}

// WindowsButton renders as a Windows button
type WindowsButton struct{}

func (WindowsButton) Paint(w io.Writer) {
	fmt.Fprintln(w, "Rendering a Windows Button")
}

// WindowsCheckbox renders as a Windows checkbox
type WindowsCheckbox struct{}

func (WindowsCheckbox) Paint(w io.Writer) {
	fmt.Fprintln(w, "Rendering a Windows Checkbox")
}

// MacButton renders as a Mac button
type MacButton struct{}

func (MacButton) Paint(w io.Writer) {
	fmt.Fprintln(w, "Rendering a Mac Button")
}

// MacCheckbox renders as a Mac checkbox
type MacCheckbox struct{}

func (MacCheckbox) Paint(w io.Writer) {
	fmt.Fprintln(w, "Rendering a Mac Checkbox")
}
