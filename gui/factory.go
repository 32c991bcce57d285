package gui

import (
	"creational/domain"
	"io"
	"strings"
)

// Factory produces a matched Button and Checkbox pair. An implementation
// never mixes widgets of different platforms.
type Factory interface {
	CreateButton() Button
	CreateCheckbox() Checkbox
}

// WindowsFactory creates Windows widgets
type WindowsFactory struct{}

// compile-time assertions
var (
	_ Factory = WindowsFactory{}
	_ Factory = MacFactory{}
)

func (WindowsFactory) CreateButton() Button     { return &WindowsButton{} }
func (WindowsFactory) CreateCheckbox() Checkbox { return &WindowsCheckbox{} }

// MacFactory creates Mac widgets
type MacFactory struct{}

func (MacFactory) CreateButton() Button     { return &MacButton{} }
func (MacFactory) CreateCheckbox() Checkbox { return &MacCheckbox{} }

// Platform selects a widget family
type Platform string

const (
	Windows Platform = "windows"
	Mac     Platform = "mac"
)

// Platforms lists the supported platforms in display order.
func Platforms() []Platform {
	return []Platform{Windows, Mac}
}

// Title is the display name of the platform, e.g. "Windows".
func (p Platform) Title() string {
	switch p {
	case Windows:
		return "Windows"
	case Mac:
		return "Mac"
	default:
		return string(p)
	}
}

// ParsePlatform resolves a platform name, case-insensitively. "win", "darwin"
// and "macos" are accepted as aliases.
func ParsePlatform(name string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "windows", "win":
		return Windows, nil
	case "mac", "macos", "darwin":
		return Mac, nil
	default:
		return "", domain.NewUnknownKindError("platform", name)
	}
}

// NewFactory returns the widget factory for platform p.
func NewFactory(p Platform) (Factory, error) {
	switch p {
	case Windows:
		return WindowsFactory{}, nil
	case Mac:
		return MacFactory{}, nil
	default:
		return nil, domain.NewUnknownKindError("platform", string(p))
	}
}

// Render is the client routine: it asks f for one button and one checkbox and
// paints them, in that order, without knowing the platform.
func Render(w io.Writer, f Factory) {
	button := f.CreateButton()
	checkbox := f.CreateCheckbox()
	button.Paint(w)
	checkbox.Paint(w)
}
